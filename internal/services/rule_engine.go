package services

import (
	"fmt"
	"strings"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/models"
)

const (
	confidenceUncategorized = 0.50
	confidenceCategoryMatch = 0.80
	confidenceIncome        = 0.85

	// modelFallbackCap bounds the confidence of a rule result standing in
	// for a failed model call.
	modelFallbackCap = 0.50
)

// categoryKeywords maps a spending category to the description tokens
// that imply it. Order matters: the first category with a hit wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"meals", []string{"restaurant", "coffee", "cafe", "catering", "lunch", "dinner", "pizza", "deli", "bakery", "bar"}},
	{"office", []string{"office", "supplies", "stationery", "paper", "printer", "staples"}},
	{"travel", []string{"airline", "flight", "hotel", "airbnb", "uber", "lyft", "taxi", "train", "travel"}},
	{"software", []string{"software", "saas", "subscription", "cloud", "hosting", "github", "license", "domain"}},
	{"marketing", []string{"marketing", "advertising", "ads", "promotion", "sponsor", "billboard"}},
	{"professional", []string{"legal", "lawyer", "attorney", "accounting", "accountant", "consulting", "notary"}},
	{"utilities", []string{"electric", "electricity", "water", "internet", "phone", "utility", "telecom", "broadband"}},
	{"rent", []string{"rent", "lease", "landlord"}},
	{"insurance", []string{"insurance", "premium", "policy"}},
	{"vehicle", []string{"fuel", "gasoline", "gas station", "parking", "toll", "vehicle", "garage", "car wash"}},
}

// inferCategory scans the description for category keywords.
func inferCategory(description string) (string, bool) {
	desc := strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(desc, keyword) {
				return entry.category, true
			}
		}
	}
	return "", false
}

// selectFundingAccount picks the account money actually moved through.
// The transaction's own account wins when it resolves to a funding type;
// otherwise outflows prefer a credit-card liability and everything else
// falls back to a checking or savings asset.
func selectFundingAccount(trx models.RawTransaction, accounts []models.Account) *models.Account {
	if trx.AccountID != "" {
		for i := range accounts {
			if accounts[i].ID == trx.AccountID && accounts[i].IsFundingType() {
				return &accounts[i]
			}
		}
	}

	if trx.IsOutflow() {
		if acc := findAccountByName(accounts, models.AccountTypeLiability, "credit", "card"); acc != nil {
			return acc
		}
	}

	if acc := findAccountByName(accounts, models.AccountTypeAsset, "checking", "savings"); acc != nil {
		return acc
	}

	for i := range accounts {
		if accounts[i].Type == models.AccountTypeAsset {
			return &accounts[i]
		}
	}
	for i := range accounts {
		if accounts[i].IsFundingType() {
			return &accounts[i]
		}
	}
	return nil
}

func findAccountByName(accounts []models.Account, accountType string, nameHints ...string) *models.Account {
	for i := range accounts {
		if accounts[i].Type != accountType {
			continue
		}
		name := strings.ToLower(accounts[i].Name)
		for _, hint := range nameHints {
			if strings.Contains(name, hint) {
				return &accounts[i]
			}
		}
	}
	return nil
}

func categoryAccount(accounts []models.Account, category string) *models.Account {
	return findAccountByName(accounts, models.AccountTypeExpense, category)
}

func fallbackExpenseAccount(accounts []models.Account) *models.Account {
	if acc := findAccountByName(accounts, models.AccountTypeExpense, "uncategorized", "other", "misc", "general"); acc != nil {
		return acc
	}
	for i := range accounts {
		if accounts[i].Type == models.AccountTypeExpense {
			return &accounts[i]
		}
	}
	return nil
}

func incomeAccount(accounts []models.Account) *models.Account {
	if acc := findAccountByName(accounts, models.AccountTypeIncome, "sales", "revenue", "income"); acc != nil {
		return acc
	}
	for i := range accounts {
		if accounts[i].Type == models.AccountTypeIncome {
			return &accounts[i]
		}
	}
	return nil
}

// suggestPair is the rule half of the proposer: funding account on one
// side, a category-inferred expense or an income account on the other.
func suggestPair(trx models.RawTransaction, accounts []models.Account) (*models.EntrySuggestion, error) {
	funding := selectFundingAccount(trx, accounts)
	if funding == nil {
		return nil, common.ErrNoAccountAvailable
	}

	if !trx.IsOutflow() {
		income := incomeAccount(accounts)
		if income == nil {
			return nil, common.ErrNoAccountAvailable
		}
		return &models.EntrySuggestion{
			DebitAccountID:  funding.ID,
			CreditAccountID: income.ID,
			Confidence:      confidenceIncome,
			Explanation:     fmt.Sprintf("Money in, credited to %s", income.Name),
			Source:          models.EntrySourceRule,
		}, nil
	}

	if category, ok := inferCategory(trx.MerchantOrDescription()); ok {
		if expense := categoryAccount(accounts, category); expense != nil {
			return &models.EntrySuggestion{
				DebitAccountID:  expense.ID,
				CreditAccountID: funding.ID,
				Confidence:      confidenceCategoryMatch,
				Explanation:     fmt.Sprintf("Matched category %s, debited to %s", category, expense.Name),
				Source:          models.EntrySourceRule,
			}, nil
		}
	}

	expense := fallbackExpenseAccount(accounts)
	if expense == nil {
		return nil, common.ErrNoAccountAvailable
	}
	return &models.EntrySuggestion{
		DebitAccountID:  expense.ID,
		CreditAccountID: funding.ID,
		Confidence:      confidenceUncategorized,
		Explanation:     fmt.Sprintf("No category matched, debited to %s", expense.Name),
		Source:          models.EntrySourceRule,
	}, nil
}
