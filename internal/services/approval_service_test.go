package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (h testServiceHelper) expectAtomic() {
	h.mockSQLRepository.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, steps func(ctx context.Context, r repositories.SQLRepository) error) error {
			return steps(ctx, h.mockSQLRepository)
		})
}

func TestApprovalService_Approve(t *testing.T) {
	t.Run("approve posts to the ledger and publishes", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		entry := pendingProposedEntry()
		approved := *entry
		approved.Status = models.EntryStatusApproved

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(entry, nil)
		testHelper.expectAtomic()
		testHelper.mockProposedEntryRepository.EXPECT().
			ApproveIfPending(gomock.Any(), gomock.Any()).
			Return(&approved, nil)
		testHelper.mockIDGenerator.EXPECT().Generate("FE").Return("FE-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-2")
		testHelper.mockFinalEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fe *models.FinalEntry) error {
				assert.Equal(t, "PE-1", fe.ProposedEntryID)
				assert.Len(t, fe.Lines, 2)
				assert.True(t, fe.Balanced())
				return nil
			})
		testHelper.mockEntryPostedPublisher.EXPECT().
			Publish(gomock.Any(), gomock.AssignableToTypeOf(models.EntryPostedEvent{}), gomock.Any()).
			Return(nil)

		fe, err := testHelper.approvalService.Approve(context.Background(), "owner-1", "PE-1", models.ApproveEntryRequest{}, "reviewer-1")
		require.NoError(t, err)
		require.NotNil(t, fe)
		assert.Equal(t, "FE-1", fe.ID)
		assert.Equal(t, models.FinalEntryStatusPosted, fe.Status)
		assert.Equal(t, "reviewer-1", fe.ApprovedBy)
	})

	t.Run("approve-time edits land atomically with the flip", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		entry := pendingProposedEntry()
		approved := *entry
		approved.Status = models.EntryStatusApproved
		approved.DebitAccountID = "acc-software"

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(entry, nil)
		testHelper.expectAtomic()
		testHelper.mockProposedEntryRepository.EXPECT().
			ApproveIfPending(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, en models.ProposedEntry) (*models.ProposedEntry, error) {
				assert.Equal(t, "acc-software", en.DebitAccountID)
				assert.Equal(t, "12.99", en.Amount.String())
				return &approved, nil
			})
		testHelper.mockIDGenerator.EXPECT().Generate("FE").Return("FE-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-2")
		testHelper.mockFinalEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(nil)
		testHelper.mockEntryPostedPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := testHelper.approvalService.Approve(context.Background(), "owner-1", "PE-1", models.ApproveEntryRequest{
			DebitAccountID: "acc-software",
			Amount:         "12.99",
		}, "reviewer-1")
		require.NoError(t, err)
	})

	t.Run("already decided", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		entry := pendingProposedEntry()
		entry.Status = models.EntryStatusRejected

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(entry, nil)

		_, err := testHelper.approvalService.Approve(context.Background(), "owner-1", "PE-1", models.ApproveEntryRequest{}, "")
		assert.ErrorIs(t, err, common.ErrInvalidStateTransition)
	})

	t.Run("concurrent decision wins the race", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(pendingProposedEntry(), nil)
		testHelper.expectAtomic()
		testHelper.mockProposedEntryRepository.EXPECT().
			ApproveIfPending(gomock.Any(), gomock.Any()).
			Return(nil, common.ErrNoRowsAffected)

		_, err := testHelper.approvalService.Approve(context.Background(), "owner-1", "PE-1", models.ApproveEntryRequest{}, "")
		assert.ErrorIs(t, err, common.ErrInvalidStateTransition)
	})

	t.Run("only one of two concurrent approves lands", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		entry := pendingProposedEntry()
		approved := *entry
		approved.Status = models.EntryStatusApproved

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(entry, nil).
			Times(2)
		testHelper.mockSQLRepository.EXPECT().
			Atomic(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, steps func(ctx context.Context, r repositories.SQLRepository) error) error {
				return steps(ctx, testHelper.mockSQLRepository)
			}).
			Times(2)

		// First conditional update wins; the loser sees no row flipped.
		var decided atomic.Bool
		testHelper.mockProposedEntryRepository.EXPECT().
			ApproveIfPending(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ models.ProposedEntry) (*models.ProposedEntry, error) {
				if !decided.CompareAndSwap(false, true) {
					return nil, common.ErrNoRowsAffected
				}
				return &approved, nil
			}).
			Times(2)
		testHelper.mockIDGenerator.EXPECT().Generate("FE").Return("FE-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-2")
		testHelper.mockFinalEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(nil)
		testHelper.mockEntryPostedPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		errs := make(chan error, 2)
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := testHelper.approvalService.Approve(context.Background(), "owner-1", "PE-1", models.ApproveEntryRequest{}, "reviewer-1")
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var posted, lost int
		for err := range errs {
			if err == nil {
				posted++
				continue
			}
			assert.ErrorIs(t, err, common.ErrInvalidStateTransition)
			lost++
		}
		assert.Equal(t, 1, posted)
		assert.Equal(t, 1, lost)
	})

	t.Run("ledger failure rolls the approval back", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		entry := pendingProposedEntry()
		approved := *entry
		approved.Status = models.EntryStatusApproved

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(entry, nil)
		testHelper.expectAtomic()
		testHelper.mockProposedEntryRepository.EXPECT().
			ApproveIfPending(gomock.Any(), gomock.Any()).
			Return(&approved, nil)
		testHelper.mockIDGenerator.EXPECT().Generate("FE").Return("FE-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-2")
		testHelper.mockFinalEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := testHelper.approvalService.Approve(context.Background(), "owner-1", "PE-1", models.ApproveEntryRequest{}, "")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("publish failure does not fail the approval", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		entry := pendingProposedEntry()
		approved := *entry
		approved.Status = models.EntryStatusApproved

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(entry, nil)
		testHelper.expectAtomic()
		testHelper.mockProposedEntryRepository.EXPECT().
			ApproveIfPending(gomock.Any(), gomock.Any()).
			Return(&approved, nil)
		testHelper.mockIDGenerator.EXPECT().Generate("FE").Return("FE-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-2")
		testHelper.mockFinalEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(nil)
		testHelper.mockEntryPostedPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := testHelper.approvalService.Approve(context.Background(), "owner-1", "PE-1", models.ApproveEntryRequest{}, "")
		assert.NoError(t, err)
	})

	t.Run("invalid edit amount", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(pendingProposedEntry(), nil)

		_, err := testHelper.approvalService.Approve(context.Background(), "owner-1", "PE-1", models.ApproveEntryRequest{
			Amount: "-5.00",
		}, "")
		assert.ErrorIs(t, err, common.ErrInvalidAmount)
	})

	t.Run("missing owner", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		_, err := testHelper.approvalService.Approve(context.Background(), "", "PE-1", models.ApproveEntryRequest{}, "")
		assert.ErrorIs(t, err, common.ErrUnauthenticated)
	})
}

func TestApprovalService_Reject(t *testing.T) {
	t.Run("reject flips a pending entry", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		rejected := pendingProposedEntry()
		rejected.Status = models.EntryStatusRejected

		testHelper.mockProposedEntryRepository.EXPECT().
			UpdateStatusIfPending(gomock.Any(), "owner-1", "PE-1", models.EntryStatusRejected).
			Return(rejected, nil)

		en, err := testHelper.approvalService.Reject(context.Background(), "owner-1", "PE-1", models.RejectEntryRequest{Reason: "duplicate"})
		require.NoError(t, err)
		assert.Equal(t, models.EntryStatusRejected, en.Status)
	})

	t.Run("miss on an unknown entry", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		testHelper.mockProposedEntryRepository.EXPECT().
			UpdateStatusIfPending(gomock.Any(), "owner-1", "PE-missing", models.EntryStatusRejected).
			Return(nil, common.ErrNoRowsAffected)
		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-missing").
			Return(nil, common.ErrDataNotFound)

		_, err := testHelper.approvalService.Reject(context.Background(), "owner-1", "PE-missing", models.RejectEntryRequest{})
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})

	t.Run("miss on a decided entry", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		decided := pendingProposedEntry()
		decided.Status = models.EntryStatusApproved

		testHelper.mockProposedEntryRepository.EXPECT().
			UpdateStatusIfPending(gomock.Any(), "owner-1", "PE-1", models.EntryStatusRejected).
			Return(nil, common.ErrNoRowsAffected)
		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(decided, nil)

		_, err := testHelper.approvalService.Reject(context.Background(), "owner-1", "PE-1", models.RejectEntryRequest{})
		assert.ErrorIs(t, err, common.ErrInvalidStateTransition)
	})
}

func TestApprovalService_RejectPendingForTransaction(t *testing.T) {
	testHelper := serviceTestHelper(t)

	first := pendingProposedEntry()
	second := pendingProposedEntry()
	second.ID = "PE-2"

	testHelper.mockProposedEntryRepository.EXPECT().
		GetPendingByTransactionID(gomock.Any(), "trx-1").
		Return([]models.ProposedEntry{*first, *second}, nil)
	testHelper.mockProposedEntryRepository.EXPECT().
		UpdateStatusIfPending(gomock.Any(), "owner-1", "PE-1", models.EntryStatusRejected).
		Return(first, nil)
	// The second entry loses a race to a concurrent decision; the sweep
	// carries on.
	testHelper.mockProposedEntryRepository.EXPECT().
		UpdateStatusIfPending(gomock.Any(), "owner-1", "PE-2", models.EntryStatusRejected).
		Return(nil, common.ErrNoRowsAffected)

	err := testHelper.approvalService.RejectPendingForTransaction(context.Background(), "owner-1", "trx-1")
	assert.NoError(t, err)
}

func TestApprovalService_Bulk(t *testing.T) {
	t.Run("bulk reject reports per-id outcomes", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		rejected := pendingProposedEntry()
		rejected.Status = models.EntryStatusRejected

		testHelper.mockProposedEntryRepository.EXPECT().
			UpdateStatusIfPending(gomock.Any(), "owner-1", "PE-1", models.EntryStatusRejected).
			Return(rejected, nil)
		testHelper.mockProposedEntryRepository.EXPECT().
			UpdateStatusIfPending(gomock.Any(), "owner-1", "PE-missing", models.EntryStatusRejected).
			Return(nil, common.ErrNoRowsAffected)
		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-missing").
			Return(nil, common.ErrDataNotFound)

		outcomes, err := testHelper.approvalService.BulkReject(context.Background(), "owner-1", []string{"PE-1", "PE-missing"})
		require.NoError(t, err)
		require.Len(t, outcomes, 2)

		assert.Equal(t, models.BulkOutcome{ID: "PE-1", Status: models.BulkOutcomeSuccess}, outcomes[0])
		assert.Equal(t, "PE-missing", outcomes[1].ID)
		assert.Equal(t, models.BulkOutcomeFailed, outcomes[1].Status)
		assert.Equal(t, "GEE-4040", outcomes[1].Code)
	})

	t.Run("bulk approve failure never aborts the batch", func(t *testing.T) {
		testHelper := serviceTestHelper(t)

		entry := pendingProposedEntry()
		approved := *entry
		approved.Status = models.EntryStatusApproved

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(entry, nil)
		testHelper.expectAtomic()
		testHelper.mockProposedEntryRepository.EXPECT().
			ApproveIfPending(gomock.Any(), gomock.Any()).
			Return(&approved, nil)
		testHelper.mockIDGenerator.EXPECT().Generate("FE").Return("FE-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-1")
		testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-2")
		testHelper.mockFinalEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(nil)
		testHelper.mockEntryPostedPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		decided := pendingProposedEntry()
		decided.ID = "PE-decided"
		decided.Status = models.EntryStatusApproved
		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-decided").
			Return(decided, nil)

		outcomes, err := testHelper.approvalService.BulkApprove(context.Background(), "owner-1", []string{"PE-1", "PE-decided"}, "reviewer-1")
		require.NoError(t, err)
		require.Len(t, outcomes, 2)

		assert.Equal(t, models.BulkOutcomeSuccess, outcomes[0].Status)
		assert.Equal(t, models.BulkOutcomeFailed, outcomes[1].Status)
		assert.Equal(t, "GEE-4090", outcomes[1].Code)
	})
}

func TestApprovalService_GetList(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("over-fetches one row past the limit", func(t *testing.T) {
		testHelper.mockProposedEntryRepository.EXPECT().
			GetList(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts models.EntryFilterOptions) ([]models.ProposedEntry, error) {
				assert.Equal(t, 11, opts.Limit)
				assert.Equal(t, "owner-1", opts.OwnerID)
				assert.Equal(t, models.EntryStatusPending, opts.Status)
				return []models.ProposedEntry{*pendingProposedEntry()}, nil
			})
		testHelper.mockProposedEntryRepository.EXPECT().
			CountAll(gomock.Any(), models.EntryFilterOptions{OwnerID: "owner-1", Status: models.EntryStatusPending}).
			Return(1, nil)

		result, total, err := testHelper.approvalService.GetList(context.Background(), models.GetEntriesRequest{
			OwnerID: "owner-1",
			Status:  models.EntryStatusPending,
			Limit:   10,
		})
		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 1, total)
	})

	t.Run("backward cursor flips direction", func(t *testing.T) {
		cursor := models.EntryCursor{ID: "PE-1", CreatedAt: pendingProposedEntry().Date}

		testHelper.mockProposedEntryRepository.EXPECT().
			GetList(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts models.EntryFilterOptions) ([]models.ProposedEntry, error) {
				require.NotNil(t, opts.Cursor)
				assert.True(t, opts.Cursor.IsBackward)
				assert.Equal(t, "PE-1", opts.Cursor.ID)
				return nil, nil
			})
		testHelper.mockProposedEntryRepository.EXPECT().
			CountAll(gomock.Any(), gomock.Any()).
			Return(0, nil)

		_, _, err := testHelper.approvalService.GetList(context.Background(), models.GetEntriesRequest{
			OwnerID:    "owner-1",
			PrevCursor: cursor.Encode(),
		})
		require.NoError(t, err)
	})

	t.Run("bad cursor", func(t *testing.T) {
		_, _, err := testHelper.approvalService.GetList(context.Background(), models.GetEntriesRequest{
			OwnerID:    "owner-1",
			NextCursor: "not-a-cursor",
		})
		assert.Error(t, err)
	})
}
