package services

import (
	"context"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"
	"github.com/ezfinancial/go-entry-engine/internal/repositories"
)

const logIdentifierLedger = "[SERVICE.LEDGER]"

type LedgerService interface {
	// Post writes the immutable final entry for an approved proposal:
	// one header plus exactly one debit and one credit line. It runs on
	// the repository handed in so the caller's transaction covers it.
	// An imbalance is a bug upstream; it aborts the post and is never
	// retried.
	Post(ctx context.Context, r repositories.SQLRepository, en models.ProposedEntry, approvedBy string) (*models.FinalEntry, error)

	GetEntry(ctx context.Context, ownerID, entryID string) (*models.FinalEntry, error)
}

type ledger service

var _ LedgerService = (*ledger)(nil)

func (s *ledger) Post(ctx context.Context, r repositories.SQLRepository, en models.ProposedEntry, approvedBy string) (fe *models.FinalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	entry := models.FinalEntry{
		ID:              s.srv.idgenerator.Generate("FE"),
		OwnerID:         en.OwnerID,
		ProposedEntryID: en.ID,
		Date:            en.Date,
		Memo:            en.Memo,
		Source:          en.Source,
		Status:          models.FinalEntryStatusPosted,
		Currency:        en.Currency,
		ApprovedAt:      time.Now().UTC(),
		ApprovedBy:      approvedBy,
	}
	entry.Lines = []models.EntryLine{
		{
			ID:        s.srv.idgenerator.Generate("EL"),
			AccountID: en.DebitAccountID,
			Side:      models.EntryLineSideDebit,
			Amount:    en.Amount,
			Currency:  en.Currency,
		},
		{
			ID:        s.srv.idgenerator.Generate("EL"),
			AccountID: en.CreditAccountID,
			Side:      models.EntryLineSideCredit,
			Amount:    en.Amount,
			Currency:  en.Currency,
		},
	}

	if !entry.Balanced() {
		log.Error(ctx, logIdentifierLedger,
			log.String("status", "entry lines do not balance"),
			log.String("proposedEntryId", en.ID),
			log.String("amount", en.Amount.String()))
		return nil, common.ErrLedgerImbalance
	}

	if err = r.GetFinalEntryRepository().Store(ctx, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *ledger) GetEntry(ctx context.Context, ownerID, entryID string) (fe *models.FinalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}

	return s.srv.sqlRepo.GetFinalEntryRepository().GetByID(ctx, ownerID, entryID)
}
