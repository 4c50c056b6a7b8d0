package services

import (
	"context"
	"errors"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/common/publisher"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"
	"github.com/ezfinancial/go-entry-engine/internal/repositories"

	"golang.org/x/sync/errgroup"
)

const logIdentifierApproval = "[SERVICE.APPROVAL]"

const (
	defaultEntriesPageSize = 20
	defaultBulkConcurrency = 8
)

type ApprovalService interface {
	GetByID(ctx context.Context, ownerID, entryID string) (*models.ProposedEntry, error)

	// GetList pages through the owner's proposals. It over-fetches one
	// row past the limit so the caller can tell whether more pages exist.
	GetList(ctx context.Context, req models.GetEntriesRequest) ([]models.ProposedEntry, int, error)

	// Approve flips a pending entry to approved and posts it to the
	// ledger in one transaction. Approve-time edits land atomically with
	// the status flip; a concurrent decision wins the race cleanly.
	Approve(ctx context.Context, ownerID, entryID string, req models.ApproveEntryRequest, approvedBy string) (*models.FinalEntry, error)

	Reject(ctx context.Context, ownerID, entryID string, req models.RejectEntryRequest) (*models.ProposedEntry, error)

	// RejectPendingForTransaction sweeps every pending proposal tied to a
	// transaction, used when the transaction itself goes away.
	RejectPendingForTransaction(ctx context.Context, ownerID, transactionID string) error

	BulkApprove(ctx context.Context, ownerID string, ids []string, approvedBy string) ([]models.BulkOutcome, error)
	BulkReject(ctx context.Context, ownerID string, ids []string) ([]models.BulkOutcome, error)
}

type approval service

var _ ApprovalService = (*approval)(nil)

func (s *approval) GetByID(ctx context.Context, ownerID, entryID string) (en *models.ProposedEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}

	return s.srv.sqlRepo.GetProposedEntryRepository().GetByID(ctx, ownerID, entryID)
}

func (s *approval) GetList(ctx context.Context, req models.GetEntriesRequest) (result []models.ProposedEntry, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if req.OwnerID == "" {
		return nil, 0, common.ErrUnauthenticated
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultEntriesPageSize
	}

	opts := models.EntryFilterOptions{
		OwnerID: req.OwnerID,
		Status:  req.Status,
		Limit:   limit + 1,
	}

	cursorToken := req.NextCursor
	isBackward := false
	if req.PrevCursor != "" {
		cursorToken = req.PrevCursor
		isBackward = true
	}
	if cursorToken != "" {
		cursor, err := models.DecodeEntryCursor(cursorToken)
		if err != nil {
			return nil, 0, err
		}
		cursor.IsBackward = isBackward
		opts.Cursor = cursor
	}

	result, err = s.srv.sqlRepo.GetProposedEntryRepository().GetList(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	total, err = s.srv.sqlRepo.GetProposedEntryRepository().CountAll(ctx, models.EntryFilterOptions{
		OwnerID: req.OwnerID,
		Status:  req.Status,
	})
	if err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

func (s *approval) Approve(ctx context.Context, ownerID, entryID string, req models.ApproveEntryRequest, approvedBy string) (fe *models.FinalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}
	if approvedBy == "" {
		approvedBy = ownerID
	}

	current, err := s.srv.sqlRepo.GetProposedEntryRepository().GetByID(ctx, ownerID, entryID)
	if err != nil {
		return nil, err
	}
	if current.IsTerminal() {
		return nil, common.ErrInvalidStateTransition
	}

	edited, err := applyApproveEdits(*current, req)
	if err != nil {
		return nil, err
	}

	var approved *models.ProposedEntry
	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		approved, err = r.GetProposedEntryRepository().ApproveIfPending(ctx, edited)
		if err != nil {
			// The row existed a moment ago, so a miss means a
			// concurrent decision landed first.
			if errors.Is(err, common.ErrNoRowsAffected) {
				return common.ErrInvalidStateTransition
			}
			return err
		}

		fe, err = s.srv.Ledger.Post(ctx, r, *approved, approvedBy)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.srv.Ranker.Invalidate(ctx, entryID)
	s.publishEntryPosted(ctx, *approved, *fe)

	return fe, nil
}

func (s *approval) Reject(ctx context.Context, ownerID, entryID string, req models.RejectEntryRequest) (en *models.ProposedEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}

	en, err = s.srv.sqlRepo.GetProposedEntryRepository().UpdateStatusIfPending(ctx, ownerID, entryID, models.EntryStatusRejected)
	if err != nil {
		if errors.Is(err, common.ErrNoRowsAffected) {
			return nil, s.resolveTransitionMiss(ctx, ownerID, entryID)
		}
		return nil, err
	}

	if req.Reason != "" {
		log.Info(ctx, logIdentifierApproval,
			log.String("status", "entry rejected"),
			log.String("entryId", entryID),
			log.String("reason", req.Reason))
	}

	s.srv.Ranker.Invalidate(ctx, entryID)

	return en, nil
}

func (s *approval) RejectPendingForTransaction(ctx context.Context, ownerID, transactionID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	pendings, err := s.srv.sqlRepo.GetProposedEntryRepository().GetPendingByTransactionID(ctx, transactionID)
	if err != nil {
		return err
	}

	for _, pending := range pendings {
		if ownerID != "" && pending.OwnerID != ownerID {
			continue
		}

		if _, err := s.srv.sqlRepo.GetProposedEntryRepository().UpdateStatusIfPending(ctx, pending.OwnerID, pending.ID, models.EntryStatusRejected); err != nil {
			// Lost the race to a concurrent decision; the sweep is
			// best-effort per entry.
			if errors.Is(err, common.ErrNoRowsAffected) {
				continue
			}
			return err
		}

		s.srv.Ranker.Invalidate(ctx, pending.ID)
	}

	return nil
}

func (s *approval) BulkApprove(ctx context.Context, ownerID string, ids []string, approvedBy string) ([]models.BulkOutcome, error) {
	return s.bulk(ctx, ownerID, ids, func(ctx context.Context, id string) error {
		_, err := s.Approve(ctx, ownerID, id, models.ApproveEntryRequest{}, approvedBy)
		return err
	})
}

func (s *approval) BulkReject(ctx context.Context, ownerID string, ids []string) ([]models.BulkOutcome, error) {
	return s.bulk(ctx, ownerID, ids, func(ctx context.Context, id string) error {
		_, err := s.Reject(ctx, ownerID, id, models.RejectEntryRequest{})
		return err
	})
}

// bulk runs decide per id under bounded concurrency. Individual failures
// land in their outcome and never abort the batch.
func (s *approval) bulk(ctx context.Context, ownerID string, ids []string, decide func(ctx context.Context, id string) error) (outcomes []models.BulkOutcome, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}

	outcomes = make([]models.BulkOutcome, len(ids))

	limit := s.srv.conf.Approval.BulkMaxConcurrency
	if limit <= 0 {
		limit = defaultBulkConcurrency
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			outcomes[i] = bulkOutcomeFor(id, decide(groupCtx, id))
			return nil
		})
	}

	// Workers never return an error; Wait only fences completion.
	_ = group.Wait()

	return outcomes, nil
}

// bulkOutcomeFor maps one decide result into its outcome row, reusing the
// published error catalogue for failure codes.
func bulkOutcomeFor(id string, err error) models.BulkOutcome {
	if err == nil {
		return models.BulkOutcome{ID: id, Status: models.BulkOutcomeSuccess}
	}

	key := models.ErrKeyInternalServerError
	switch {
	case errors.Is(err, common.ErrDataNotFound):
		key = models.ErrKeyEntryNotFound
	case errors.Is(err, common.ErrInvalidStateTransition):
		key = models.ErrKeyInvalidStateTransition
	case errors.Is(err, common.ErrUnauthenticated):
		key = models.ErrKeyUnauthenticated
	case errors.Is(err, common.ErrNoAccountAvailable):
		key = models.ErrKeyNoAccountAvailable
	case errors.Is(err, common.ErrLedgerImbalance):
		key = models.ErrKeyLedgerImbalance
	case errors.Is(err, common.ErrUpstreamTimeout):
		key = models.ErrKeyUpstreamTimeout
	case errors.Is(err, common.ErrInvalidAmount):
		key = models.ErrKeyAmountDecimalGreaterThan
	}

	detail := models.GetErrMap(key)

	return models.BulkOutcome{
		ID:     id,
		Status: models.BulkOutcomeFailed,
		Error:  detail.ErrorMessage.Error(),
		Code:   detail.Code,
	}
}

// resolveTransitionMiss decides what a conditional-update miss means:
// the entry never existed, or it is already decided.
func (s *approval) resolveTransitionMiss(ctx context.Context, ownerID, entryID string) error {
	if _, err := s.srv.sqlRepo.GetProposedEntryRepository().GetByID(ctx, ownerID, entryID); err != nil {
		return err
	}
	return common.ErrInvalidStateTransition
}

func (s *approval) publishEntryPosted(ctx context.Context, en models.ProposedEntry, fe models.FinalEntry) {
	event := models.EntryPostedEvent{
		EntryID:         fe.ID,
		ProposedEntryID: en.ID,
		OwnerID:         en.OwnerID,
		Amount:          en.Amount.String(),
		Currency:        en.Currency,
		DebitAccountID:  en.DebitAccountID,
		CreditAccountID: en.CreditAccountID,
		PostedAt:        fe.ApprovedAt,
	}

	// Best-effort: the ledger write already committed, a publish failure
	// only costs downstream a notification.
	if err := s.srv.entryPostedPub.Publish(ctx, event, publisher.WithKey(en.OwnerID)); err != nil {
		log.Error(ctx, logIdentifierApproval,
			log.String("status", "failed to publish entry posted event"),
			log.String("entryId", fe.ID),
			log.Err(err))
	}
}

func applyApproveEdits(current models.ProposedEntry, req models.ApproveEntryRequest) (models.ProposedEntry, error) {
	edited := current

	if req.DebitAccountID != "" {
		edited.DebitAccountID = req.DebitAccountID
	}
	if req.CreditAccountID != "" {
		edited.CreditAccountID = req.CreditAccountID
	}
	if req.Memo != "" {
		edited.Memo = req.Memo
	}
	if req.Amount != "" {
		amount, err := models.NewDecimal(req.Amount)
		if err != nil || !amount.IsPositive() {
			return models.ProposedEntry{}, common.ErrInvalidAmount
		}
		edited.Amount = amount
	}

	return edited, nil
}
