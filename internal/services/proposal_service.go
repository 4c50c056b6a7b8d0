package services

import (
	"context"
	"errors"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/common/suggester"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"
)

const logIdentifierProposal = "[SERVICE.PROPOSAL]"

type ProposalService interface {
	// Propose builds or refreshes the pending proposal for the request's
	// transaction. An unknown transaction id is stored as a manual
	// transaction first, so ad-hoc entries go through the same pipeline.
	Propose(ctx context.Context, ownerID string, req models.ProposeEntryRequest) (*models.ProposedEntry, error)

	// ProposeForTransaction is the ingestion-path variant for an already
	// persisted transaction.
	ProposeForTransaction(ctx context.Context, trx models.RawTransaction) (*models.ProposedEntry, error)
}

type proposal service

var _ ProposalService = (*proposal)(nil)

func (s *proposal) Propose(ctx context.Context, ownerID string, req models.ProposeEntryRequest) (en *models.ProposedEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}

	trx, err := s.srv.sqlRepo.GetRawTransactionRepository().GetByID(ctx, ownerID, req.TransactionID)
	if errors.Is(err, common.ErrDataNotFound) {
		trx, err = s.storeManualTransaction(ctx, ownerID, req)
	}
	if err != nil {
		return nil, err
	}

	return s.propose(ctx, *trx)
}

func (s *proposal) ProposeForTransaction(ctx context.Context, trx models.RawTransaction) (en *models.ProposedEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if trx.OwnerID == "" {
		return nil, common.ErrUnauthenticated
	}

	return s.propose(ctx, trx)
}

func (s *proposal) storeManualTransaction(ctx context.Context, ownerID string, req models.ProposeEntryRequest) (*models.RawTransaction, error) {
	amount, err := models.NewDecimal(req.Amount)
	if err != nil {
		return nil, common.ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, common.ErrInvalidFormatDate
	}

	trx := models.RawTransaction{
		ID:          req.TransactionID,
		OwnerID:     ownerID,
		Description: req.Description,
		Amount:      amount,
		Currency:    req.Currency,
		Date:        date,
		Source:      models.TransactionSourceManual,
		Status:      models.TransactionStatusPending,
	}
	if err := s.srv.sqlRepo.GetRawTransactionRepository().Store(ctx, &trx); err != nil {
		return nil, err
	}

	return &trx, nil
}

func (s *proposal) propose(ctx context.Context, trx models.RawTransaction) (*models.ProposedEntry, error) {
	accounts, err := s.srv.sqlRepo.GetAccountDirectoryInternalRepository().GetOwnerAccounts(ctx, trx.OwnerID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, common.ErrNoAccountAvailable
	}

	suggestion, err := suggestPair(trx, accounts)
	if err != nil {
		return nil, err
	}

	if s.srv.suggesterClient != nil {
		suggestion = s.reconcileWithModel(ctx, trx, accounts, suggestion)
	}

	en := models.ProposedEntry{
		ID:              s.srv.idgenerator.Generate("PE"),
		OwnerID:         trx.OwnerID,
		TransactionID:   trx.ID,
		Date:            trx.Date,
		Memo:            trx.MerchantOrDescription(),
		DebitAccountID:  suggestion.DebitAccountID,
		CreditAccountID: suggestion.CreditAccountID,
		Amount:          models.Decimal{Decimal: trx.Amount.Abs()},
		Currency:        trx.Currency,
		Confidence:      suggestion.Confidence,
		Source:          suggestion.Source,
		Explanation:     suggestion.Explanation,
		Status:          models.EntryStatusPending,
	}

	// A pending proposal for the same transaction is refreshed in place
	// rather than duplicated.
	pendings, err := s.srv.sqlRepo.GetProposedEntryRepository().GetPendingByTransactionID(ctx, trx.ID)
	if err != nil {
		return nil, err
	}
	for _, pending := range pendings {
		if pending.OwnerID == trx.OwnerID {
			en.ID = pending.ID
			break
		}
	}

	if err := s.srv.sqlRepo.GetProposedEntryRepository().Store(ctx, &en); err != nil {
		return nil, err
	}

	s.srv.Ranker.Invalidate(ctx, en.ID)

	return &en, nil
}

// reconcileWithModel asks the model for a pairing under a hard deadline.
// A usable answer replaces the rule result; any failure keeps the rule
// result with its confidence capped, since the model disagreeing with
// silence is weaker evidence than the rule alone.
func (s *proposal) reconcileWithModel(ctx context.Context, trx models.RawTransaction, accounts []models.Account, ruleSuggestion *models.EntrySuggestion) *models.EntrySuggestion {
	modelCtx, cancel := context.WithTimeout(ctx, s.srv.conf.Proposer.SuggesterTimeout)
	defer cancel()

	modelSuggestion, err := s.srv.suggesterClient.Suggest(modelCtx, suggester.Input{
		Description:     trx.MerchantOrDescription(),
		Amount:          trx.Amount.String(),
		Currency:        trx.Currency,
		Date:            trx.Date.Format("2006-01-02"),
		Accounts:        accounts,
		BusinessContext: s.srv.conf.Proposer.BusinessContext,
	})
	if err != nil {
		log.Warn(ctx, logIdentifierProposal,
			log.String("status", "suggester unavailable, keeping rule result"),
			log.String("transactionId", trx.ID),
			log.Err(err))

		capped := *ruleSuggestion
		if capped.Confidence > modelFallbackCap {
			capped.Confidence = modelFallbackCap
		}
		return &capped
	}

	modelSuggestion.Source = models.EntrySourceModel
	return modelSuggestion
}
