package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"
)

const logIdentifierRanker = "[SERVICE.RANKER]"

type RankerService interface {
	// RankAlternatives returns the other plausible account pairings for a
	// pending entry, best first. Terminal entries have no alternatives.
	RankAlternatives(ctx context.Context, ownerID, entryID string) ([]models.EntrySuggestion, error)

	// Invalidate drops the cached alternatives for an entry and cancels
	// any in-flight fetch. Called whenever the entry changes or leaves
	// pending.
	Invalidate(ctx context.Context, entryID string)
}

type ranker service

var _ RankerService = (*ranker)(nil)

func alternativesCacheKey(entryID string) string {
	return fmt.Sprintf("entry-engine:alternatives:%s", entryID)
}

func (s *ranker) RankAlternatives(ctx context.Context, ownerID, entryID string) (result []models.EntrySuggestion, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}

	en, err := s.srv.sqlRepo.GetProposedEntryRepository().GetByID(ctx, ownerID, entryID)
	if err != nil {
		return nil, err
	}
	if en.IsTerminal() {
		return []models.EntrySuggestion{}, nil
	}

	if cached, cacheErr := s.srv.alternativesCache.Get(ctx, alternativesCacheKey(entryID)); cacheErr == nil {
		return cached, nil
	}

	// Coalesce bursts: a newer request for the same entry cancels this
	// one instead of racing it.
	fetchCtx, done := s.srv.rankerFetches.Begin(ctx, entryID)
	defer done()

	result, err = s.computeAlternatives(fetchCtx, *en)
	if err != nil {
		return nil, err
	}

	if fetchCtx.Err() == nil {
		if cacheErr := s.srv.alternativesCache.Set(ctx, alternativesCacheKey(entryID), result, s.srv.conf.Ranker.CacheTTL); cacheErr != nil {
			log.Warn(ctx, logIdentifierRanker,
				log.String("status", "failed to cache alternatives"),
				log.String("entryId", entryID),
				log.Err(cacheErr))
		}
	}

	return result, nil
}

func (s *ranker) Invalidate(ctx context.Context, entryID string) {
	s.srv.rankerFetches.Cancel(entryID)
	if err := s.srv.alternativesCache.Delete(ctx, alternativesCacheKey(entryID)); err != nil {
		log.Warn(ctx, logIdentifierRanker,
			log.String("status", "failed to invalidate alternatives"),
			log.String("entryId", entryID),
			log.Err(err))
	}
}

func (s *ranker) computeAlternatives(ctx context.Context, en models.ProposedEntry) ([]models.EntrySuggestion, error) {
	accounts, err := s.srv.sqlRepo.GetAccountDirectoryInternalRepository().GetOwnerAccounts(ctx, en.OwnerID)
	if err != nil {
		return nil, err
	}

	outflow, funding := s.entryDirection(ctx, en, accounts)

	primaryKey := models.EntrySuggestion{DebitAccountID: en.DebitAccountID, CreditAccountID: en.CreditAccountID}.PairKey()
	seen := map[string]struct{}{primaryKey: {}}

	category, hasCategory := inferCategory(en.Memo)

	var alternatives []models.EntrySuggestion
	for _, account := range accounts {
		suggestion, ok := alternativeFor(en, account, funding, outflow, category, hasCategory)
		if !ok {
			continue
		}
		if _, dup := seen[suggestion.PairKey()]; dup {
			continue
		}
		seen[suggestion.PairKey()] = struct{}{}
		alternatives = append(alternatives, suggestion)
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		if alternatives[i].Confidence != alternatives[j].Confidence {
			return alternatives[i].Confidence > alternatives[j].Confidence
		}
		return alternatives[i].PairKey() < alternatives[j].PairKey()
	})

	if max := s.srv.conf.Ranker.MaxAlternatives; max > 0 && len(alternatives) > max {
		alternatives = alternatives[:max]
	}
	if alternatives == nil {
		alternatives = []models.EntrySuggestion{}
	}

	return alternatives, nil
}

// entryDirection recovers whether the underlying transaction was money
// out, plus the funding side of the primary pair. The stored transaction
// is authoritative when still around; otherwise the account types of the
// pair decide.
func (s *ranker) entryDirection(ctx context.Context, en models.ProposedEntry, accounts []models.Account) (outflow bool, fundingAccountID string) {
	if en.TransactionID != "" {
		trx, err := s.srv.sqlRepo.GetRawTransactionRepository().GetByID(ctx, en.OwnerID, en.TransactionID)
		if err == nil {
			if trx.IsOutflow() {
				return true, en.CreditAccountID
			}
			return false, en.DebitAccountID
		}
		if !errors.Is(err, common.ErrDataNotFound) {
			log.Warn(ctx, logIdentifierRanker,
				log.String("status", "failed to resolve transaction direction"),
				log.String("entryId", en.ID),
				log.Err(err))
		}
	}

	byID := make(map[string]models.Account, len(accounts))
	for _, account := range accounts {
		byID[account.ID] = account
	}

	if byID[en.CreditAccountID].Type == models.AccountTypeIncome {
		return false, en.DebitAccountID
	}
	return true, en.CreditAccountID
}

func alternativeFor(en models.ProposedEntry, account models.Account, fundingAccountID string, outflow bool, category string, hasCategory bool) (models.EntrySuggestion, bool) {
	if account.ID == fundingAccountID {
		return models.EntrySuggestion{}, false
	}

	if outflow {
		if account.Type != models.AccountTypeExpense {
			return models.EntrySuggestion{}, false
		}

		confidence := confidenceUncategorized
		explanation := fmt.Sprintf("Alternative expense account %s", account.Name)
		if hasCategory && categoryAccountMatches(account, category) {
			confidence = confidenceCategoryMatch
			explanation = fmt.Sprintf("Matches category %s via %s", category, account.Name)
		}

		return models.EntrySuggestion{
			DebitAccountID:  account.ID,
			CreditAccountID: fundingAccountID,
			Confidence:      confidence,
			Explanation:     explanation,
			Source:          models.EntrySourceRule,
		}, true
	}

	if account.Type != models.AccountTypeIncome {
		return models.EntrySuggestion{}, false
	}

	return models.EntrySuggestion{
		DebitAccountID:  fundingAccountID,
		CreditAccountID: account.ID,
		Confidence:      confidenceUncategorized,
		Explanation:     fmt.Sprintf("Alternative income account %s", account.Name),
		Source:          models.EntrySourceRule,
	}, true
}

func categoryAccountMatches(account models.Account, category string) bool {
	match := findAccountByName([]models.Account{account}, models.AccountTypeExpense, category)
	return match != nil
}
