package services_test

import (
	"context"
	"testing"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLedgerService_Post(t *testing.T) {
	testHelper := serviceTestHelper(t)

	entry := pendingProposedEntry()

	testHelper.mockIDGenerator.EXPECT().Generate("FE").Return("FE-1")
	testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-1")
	testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-2")
	testHelper.mockFinalEntryRepository.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fe *models.FinalEntry) error {
			require.Len(t, fe.Lines, 2)
			assert.Equal(t, models.EntryLineSideDebit, fe.Lines[0].Side)
			assert.Equal(t, models.EntryLineSideCredit, fe.Lines[1].Side)
			assert.Equal(t, fe.Lines[0].Amount.String(), fe.Lines[1].Amount.String())
			assert.True(t, fe.Balanced())
			return nil
		})

	fe, err := testHelper.ledgerService.Post(context.Background(), testHelper.mockSQLRepository, *entry, "reviewer-1")
	require.NoError(t, err)
	assert.Equal(t, "FE-1", fe.ID)
	assert.Equal(t, "PE-1", fe.ProposedEntryID)
	assert.Equal(t, models.FinalEntryStatusPosted, fe.Status)
	assert.Equal(t, "reviewer-1", fe.ApprovedBy)
	assert.Equal(t, entry.Currency, fe.Currency)
}

func TestLedgerService_Post_StoreFailure(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockIDGenerator.EXPECT().Generate("FE").Return("FE-1")
	testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-1")
	testHelper.mockIDGenerator.EXPECT().Generate("EL").Return("EL-2")
	testHelper.mockFinalEntryRepository.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	_, err := testHelper.ledgerService.Post(context.Background(), testHelper.mockSQLRepository, *pendingProposedEntry(), "reviewer-1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLedgerService_GetEntry(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("found", func(t *testing.T) {
		testHelper.mockFinalEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "FE-1").
			Return(&models.FinalEntry{ID: "FE-1", OwnerID: "owner-1"}, nil)

		fe, err := testHelper.ledgerService.GetEntry(context.Background(), "owner-1", "FE-1")
		require.NoError(t, err)
		assert.Equal(t, "FE-1", fe.ID)
	})

	t.Run("not found", func(t *testing.T) {
		testHelper.mockFinalEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "FE-missing").
			Return(nil, common.ErrDataNotFound)

		_, err := testHelper.ledgerService.GetEntry(context.Background(), "owner-1", "FE-missing")
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := testHelper.ledgerService.GetEntry(context.Background(), "", "FE-1")
		assert.ErrorIs(t, err, common.ErrUnauthenticated)
	})
}
