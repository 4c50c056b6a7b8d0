package services

import (
	"context"
	"strings"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"

	"github.com/shopspring/decimal"
)

type DuplicateService interface {
	// CheckDuplicate scores the incoming transaction against the owner's
	// recent history and returns the best match at or above the accept
	// threshold, or nil. Pure read, idempotent.
	CheckDuplicate(ctx context.Context, req models.CheckDuplicateRequest) (*models.DuplicateMatch, error)

	// CheckDuplicateForTransaction is the ingestion-path variant working on
	// an already parsed transaction.
	CheckDuplicateForTransaction(ctx context.Context, trx models.RawTransaction) (*models.DuplicateMatch, error)
}

type duplicate service

var _ DuplicateService = (*duplicate)(nil)

func (s *duplicate) CheckDuplicate(ctx context.Context, req models.CheckDuplicateRequest) (match *models.DuplicateMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if req.OwnerID == "" {
		return nil, common.ErrUnauthenticated
	}

	amount, err := models.NewDecimal(req.Amount)
	if err != nil {
		return nil, common.ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, common.ErrInvalidFormatDate
	}

	return s.findDuplicate(ctx, req.OwnerID, req.Merchant, amount, date, req.ExcludeTransactionID)
}

func (s *duplicate) CheckDuplicateForTransaction(ctx context.Context, trx models.RawTransaction) (match *models.DuplicateMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if trx.OwnerID == "" {
		return nil, common.ErrUnauthenticated
	}

	return s.findDuplicate(ctx, trx.OwnerID, trx.MerchantOrDescription(), trx.Amount, trx.Date, trx.ID)
}

func (s *duplicate) findDuplicate(ctx context.Context, ownerID, merchant string, amount models.Decimal, date time.Time, excludeID string) (*models.DuplicateMatch, error) {
	cfg := s.srv.conf.Detector

	since := date.AddDate(0, 0, -cfg.WindowDays)
	candidates, err := s.srv.sqlRepo.GetRawTransactionRepository().GetRecentByOwner(ctx, ownerID, since, excludeID)
	if err != nil {
		return nil, err
	}

	tolerance, err := decimal.NewFromString(cfg.AmountTolerance)
	if err != nil {
		return nil, common.ErrInvalidAmount
	}

	var best *models.DuplicateMatch
	for _, candidate := range candidates {
		match, ok := score(cfg, tolerance, merchant, amount, date, candidate)
		if !ok {
			continue
		}

		if best == nil || match.Score > best.Score {
			m := match
			best = &m
		}
	}

	return best, nil
}

func score(cfg config.DetectorConfig, tolerance decimal.Decimal, merchant string, amount models.Decimal, date time.Time, candidate models.RawTransaction) (models.DuplicateMatch, bool) {
	dayDelta := absDays(date, candidate.Date)
	if dayDelta > cfg.DateToleranceDays {
		return models.DuplicateMatch{}, false
	}

	amountDelta := amount.Abs().Sub(candidate.Amount.Abs()).Abs()
	if amountDelta.GreaterThan(tolerance) {
		return models.DuplicateMatch{}, false
	}

	exact, matched := merchantsMatch(merchant, candidate.MerchantOrDescription())
	if !matched {
		return models.DuplicateMatch{}, false
	}

	amountDiff, _ := amountDelta.Float64()
	score := float64(cfg.BaseScore) - amountDiff*cfg.AmountDiffWeight - float64(dayDelta)*cfg.DaysDiffWeight
	if exact {
		score += float64(cfg.ExactMerchantBonus)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	if score < float64(cfg.AcceptThreshold) {
		return models.DuplicateMatch{}, false
	}

	return models.DuplicateMatch{
		TransactionID: candidate.ID,
		Score:         score,
		DayDelta:      dayDelta,
		AmountDelta:   models.Decimal{Decimal: amountDelta},
		ExactMerchant: exact,
	}, true
}

func absDays(a, b time.Time) int {
	days := int(a.Sub(b).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

func normalizeMerchant(merchant string) string {
	return strings.ToLower(strings.TrimSpace(merchant))
}

// merchantsMatch reports (exact, matched). Merchants match on equality,
// containment either way, or enough shared significant words. A shared
// word is one contained in (or containing) any candidate word, and the
// required count is min(2, wordCount/2) with a fractional half, so a
// single shared word carries short names.
func merchantsMatch(query, candidate string) (exact bool, matched bool) {
	q := normalizeMerchant(query)
	c := normalizeMerchant(candidate)

	if q == "" || c == "" {
		return false, false
	}

	if q == c {
		return true, true
	}

	if strings.Contains(q, c) || strings.Contains(c, q) {
		return false, true
	}

	wordCount := len(strings.Fields(q))
	candidateWords := strings.Fields(c)

	overlap := 0
	for _, w := range significantWords(q) {
		if wordsOverlap(candidateWords, w) {
			overlap++
		}
	}

	return false, overlap >= 2 || 2*overlap >= wordCount
}

func wordsOverlap(candidateWords []string, word string) bool {
	for _, cw := range candidateWords {
		if strings.Contains(cw, word) || strings.Contains(word, cw) {
			return true
		}
	}
	return false
}

func significantWords(merchant string) []string {
	var words []string
	for _, w := range strings.Fields(merchant) {
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}
