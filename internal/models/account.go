package models

import (
	"time"
)

const (
	AccountTypeAsset     = "asset"
	AccountTypeLiability = "liability"
	AccountTypeEquity    = "equity"
	AccountTypeIncome    = "income"
	AccountTypeExpense   = "expense"
)

const kindAccount = "account"

// Account is one row of the chart of accounts. Accounts are read-only to
// the lifecycle engine; they are provisioned by the account directory.
type Account struct {
	ID         string
	OwnerID    string
	Name       string
	Type       string
	IsBusiness bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (a Account) IsFundingType() bool {
	return a.Type == AccountTypeAsset || a.Type == AccountTypeLiability
}

type GetAccountsRequest struct {
	OwnerID string `json:"-"`
	Type    string `json:"type" query:"type" validate:"omitempty,oneof=asset liability equity income expense"`
}

type AccountResponse struct {
	Kind       string `json:"kind" example:"account"`
	ID         string `json:"id" example:"acc-checking"`
	Name       string `json:"name" example:"Checking"`
	Type       string `json:"type" example:"asset"`
	IsBusiness bool   `json:"isBusiness" example:"false"`
	CreatedAt  string `json:"createdAt" example:"2024-03-01T10:00:00Z"`
}

func (a Account) ToModelResponse() AccountResponse {
	return AccountResponse{
		Kind:       kindAccount,
		ID:         a.ID,
		Name:       a.Name,
		Type:       a.Type,
		IsBusiness: a.IsBusiness,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
