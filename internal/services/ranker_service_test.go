package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingProposedEntry() *models.ProposedEntry {
	return &models.ProposedEntry{
		ID:              "PE-1",
		OwnerID:         "owner-1",
		TransactionID:   "trx-1",
		Date:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Memo:            "Blue Bottle Coffee",
		DebitAccountID:  "acc-meals",
		CreditAccountID: "acc-card",
		Amount:          models.Decimal{Decimal: decimal.RequireFromString("4.50")},
		Currency:        "USD",
		Confidence:      0.80,
		Source:          models.EntrySourceRule,
		Status:          models.EntryStatusPending,
	}
}

func TestRankerService_RankAlternatives(t *testing.T) {
	testHelper := serviceTestHelper(t)

	outflowTrx := pendingTransaction("trx-1", "Blue Bottle Coffee", "-4.50")

	t.Run("outflow alternatives are other expense accounts", func(t *testing.T) {
		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(pendingProposedEntry(), nil)
		testHelper.mockRawTrxRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "trx-1").
			Return(&outflowTrx, nil)
		testHelper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(studioChartOfAccounts(), nil)

		alternatives, err := testHelper.rankerService.RankAlternatives(context.Background(), "owner-1", "PE-1")
		require.NoError(t, err)
		require.Len(t, alternatives, 2)

		for _, alternative := range alternatives {
			assert.Equal(t, "acc-card", alternative.CreditAccountID)
			assert.NotEqual(t, "acc-meals", alternative.DebitAccountID)
		}
		// Sorted best first.
		for i := 1; i < len(alternatives); i++ {
			assert.GreaterOrEqual(t, alternatives[i-1].Confidence, alternatives[i].Confidence)
		}
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		helper := serviceTestHelper(t)

		helper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(pendingProposedEntry(), nil).
			Times(2)
		helper.mockRawTrxRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "trx-1").
			Return(&outflowTrx, nil).
			Times(1)
		helper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(studioChartOfAccounts(), nil).
			Times(1)

		first, err := helper.rankerService.RankAlternatives(context.Background(), "owner-1", "PE-1")
		require.NoError(t, err)
		second, err := helper.rankerService.RankAlternatives(context.Background(), "owner-1", "PE-1")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("invalidate forces a refetch", func(t *testing.T) {
		helper := serviceTestHelper(t)

		helper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(pendingProposedEntry(), nil).
			Times(2)
		helper.mockRawTrxRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "trx-1").
			Return(&outflowTrx, nil).
			Times(2)
		helper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(studioChartOfAccounts(), nil).
			Times(2)

		_, err := helper.rankerService.RankAlternatives(context.Background(), "owner-1", "PE-1")
		require.NoError(t, err)

		helper.rankerService.Invalidate(context.Background(), "PE-1")

		_, err = helper.rankerService.RankAlternatives(context.Background(), "owner-1", "PE-1")
		require.NoError(t, err)
	})

	t.Run("terminal entry has no alternatives", func(t *testing.T) {
		approved := pendingProposedEntry()
		approved.Status = models.EntryStatusApproved

		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(approved, nil)

		alternatives, err := testHelper.rankerService.RankAlternatives(context.Background(), "owner-1", "PE-1")
		require.NoError(t, err)
		assert.Empty(t, alternatives)
	})

	t.Run("inflow alternatives are other income accounts", func(t *testing.T) {
		helper := serviceTestHelper(t)

		inflowEntry := pendingProposedEntry()
		inflowEntry.ID = "PE-2"
		inflowEntry.TransactionID = "trx-in"
		inflowEntry.DebitAccountID = "acc-checking"
		inflowEntry.CreditAccountID = "acc-sales"

		inflowTrx := pendingTransaction("trx-in", "Client Payment", "2500.00")
		accounts := append(studioChartOfAccounts(), models.Account{
			ID: "acc-interest", OwnerID: "owner-1", Name: "Interest Income", Type: models.AccountTypeIncome,
		})

		helper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-2").
			Return(inflowEntry, nil)
		helper.mockRawTrxRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "trx-in").
			Return(&inflowTrx, nil)
		helper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(accounts, nil)

		alternatives, err := helper.rankerService.RankAlternatives(context.Background(), "owner-1", "PE-2")
		require.NoError(t, err)
		require.Len(t, alternatives, 1)
		assert.Equal(t, "acc-checking", alternatives[0].DebitAccountID)
		assert.Equal(t, "acc-interest", alternatives[0].CreditAccountID)
	})

	t.Run("cap respects the configured maximum", func(t *testing.T) {
		helper := serviceTestHelper(t)

		accounts := studioChartOfAccounts()
		for _, extra := range []struct{ id, name string }{
			{"acc-travel", "Travel"},
			{"acc-rent", "Rent"},
			{"acc-insurance", "Insurance"},
		} {
			accounts = append(accounts, models.Account{
				ID: extra.id, OwnerID: "owner-1", Name: extra.name, Type: models.AccountTypeExpense,
			})
		}

		helper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-1").
			Return(pendingProposedEntry(), nil)
		helper.mockRawTrxRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "trx-1").
			Return(&outflowTrx, nil)
		helper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(accounts, nil)

		alternatives, err := helper.rankerService.RankAlternatives(context.Background(), "owner-1", "PE-1")
		require.NoError(t, err)
		assert.Len(t, alternatives, helper.config.Ranker.MaxAlternatives)
	})

	t.Run("unknown entry", func(t *testing.T) {
		testHelper.mockProposedEntryRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "PE-missing").
			Return(nil, common.ErrDataNotFound)

		_, err := testHelper.rankerService.RankAlternatives(context.Background(), "owner-1", "PE-missing")
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := testHelper.rankerService.RankAlternatives(context.Background(), "", "PE-1")
		assert.ErrorIs(t, err, common.ErrUnauthenticated)
	})
}
