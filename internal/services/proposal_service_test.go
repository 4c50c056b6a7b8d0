package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/common/matcher"
	"github.com/ezfinancial/go-entry-engine/internal/common/suggester"
	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func studioChartOfAccounts() []models.Account {
	return []models.Account{
		{ID: "acc-checking", OwnerID: "owner-1", Name: "Business Checking", Type: models.AccountTypeAsset},
		{ID: "acc-card", OwnerID: "owner-1", Name: "Company Credit Card", Type: models.AccountTypeLiability},
		{ID: "acc-meals", OwnerID: "owner-1", Name: "Meals & Entertainment", Type: models.AccountTypeExpense},
		{ID: "acc-software", OwnerID: "owner-1", Name: "Software Subscriptions", Type: models.AccountTypeExpense},
		{ID: "acc-other", OwnerID: "owner-1", Name: "Uncategorized Expenses", Type: models.AccountTypeExpense},
		{ID: "acc-sales", OwnerID: "owner-1", Name: "Sales Revenue", Type: models.AccountTypeIncome},
	}
}

func pendingTransaction(id, merchant, amount string) models.RawTransaction {
	return models.RawTransaction{
		ID:       id,
		OwnerID:  "owner-1",
		Merchant: merchant,
		Amount:   models.Decimal{Decimal: decimal.RequireFromString(amount)},
		Currency: "USD",
		Date:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:   models.TransactionStatusPending,
	}
}

func TestProposalService_ProposeForTransaction_RuleOnly(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ruleOnly := testHelper.newRuleOnlyServices()

	type args struct {
		trx models.RawTransaction
	}
	type want struct {
		debit      string
		credit     string
		confidence float64
		source     string
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		want    want
		wantErr error
	}{
		{
			name: "category match debits the matching expense account",
			args: args{trx: pendingTransaction("trx-1", "Blue Bottle Coffee", "-4.50")},
			doMock: func(args args) {
				testHelper.mockDirectoryRepository.EXPECT().
					GetOwnerAccounts(gomock.Any(), "owner-1").
					Return(studioChartOfAccounts(), nil)
				testHelper.mockProposedEntryRepository.EXPECT().
					GetPendingByTransactionID(gomock.Any(), "trx-1").
					Return(nil, nil)
				testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-1")
				testHelper.mockProposedEntryRepository.EXPECT().
					Store(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			want: want{debit: "acc-meals", credit: "acc-card", confidence: 0.80, source: models.EntrySourceRule},
		},
		{
			name: "no category falls back to uncategorized",
			args: args{trx: pendingTransaction("trx-2", "ACME Widgets", "-120.00")},
			doMock: func(args args) {
				testHelper.mockDirectoryRepository.EXPECT().
					GetOwnerAccounts(gomock.Any(), "owner-1").
					Return(studioChartOfAccounts(), nil)
				testHelper.mockProposedEntryRepository.EXPECT().
					GetPendingByTransactionID(gomock.Any(), "trx-2").
					Return(nil, nil)
				testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-2")
				testHelper.mockProposedEntryRepository.EXPECT().
					Store(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			want: want{debit: "acc-other", credit: "acc-card", confidence: 0.50, source: models.EntrySourceRule},
		},
		{
			name: "inflow credits income and debits funding",
			args: args{trx: pendingTransaction("trx-3", "Client Payment", "2500.00")},
			doMock: func(args args) {
				testHelper.mockDirectoryRepository.EXPECT().
					GetOwnerAccounts(gomock.Any(), "owner-1").
					Return(studioChartOfAccounts(), nil)
				testHelper.mockProposedEntryRepository.EXPECT().
					GetPendingByTransactionID(gomock.Any(), "trx-3").
					Return(nil, nil)
				testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-3")
				testHelper.mockProposedEntryRepository.EXPECT().
					Store(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			want: want{debit: "acc-checking", credit: "acc-sales", confidence: 0.85, source: models.EntrySourceRule},
		},
		{
			name: "transaction account wins when it is a funding account",
			args: args{
				trx: func() models.RawTransaction {
					trx := pendingTransaction("trx-4", "Blue Bottle Coffee", "-4.50")
					trx.AccountID = "acc-checking"
					return trx
				}(),
			},
			doMock: func(args args) {
				testHelper.mockDirectoryRepository.EXPECT().
					GetOwnerAccounts(gomock.Any(), "owner-1").
					Return(studioChartOfAccounts(), nil)
				testHelper.mockProposedEntryRepository.EXPECT().
					GetPendingByTransactionID(gomock.Any(), "trx-4").
					Return(nil, nil)
				testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-4")
				testHelper.mockProposedEntryRepository.EXPECT().
					Store(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			want: want{debit: "acc-meals", credit: "acc-checking", confidence: 0.80, source: models.EntrySourceRule},
		},
		{
			name: "no accounts at all",
			args: args{trx: pendingTransaction("trx-5", "Blue Bottle Coffee", "-4.50")},
			doMock: func(args args) {
				testHelper.mockDirectoryRepository.EXPECT().
					GetOwnerAccounts(gomock.Any(), "owner-1").
					Return(nil, nil)
			},
			wantErr: common.ErrNoAccountAvailable,
		},
		{
			name: "no expense account for an outflow",
			args: args{trx: pendingTransaction("trx-6", "Blue Bottle Coffee", "-4.50")},
			doMock: func(args args) {
				testHelper.mockDirectoryRepository.EXPECT().
					GetOwnerAccounts(gomock.Any(), "owner-1").
					Return([]models.Account{
						{ID: "acc-checking", Name: "Business Checking", Type: models.AccountTypeAsset},
					}, nil)
			},
			wantErr: common.ErrNoAccountAvailable,
		},
		{
			name: "missing owner",
			args: args{trx: models.RawTransaction{ID: "trx-7"}},

			wantErr: common.ErrUnauthenticated,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			en, err := ruleOnly.Proposal.ProposeForTransaction(context.Background(), tt.args.trx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, en)
			assert.Equal(t, tt.want.debit, en.DebitAccountID)
			assert.Equal(t, tt.want.credit, en.CreditAccountID)
			assert.Equal(t, tt.want.confidence, en.Confidence)
			assert.Equal(t, tt.want.source, en.Source)
			assert.Equal(t, models.EntryStatusPending, en.Status)
			assert.True(t, en.Amount.IsPositive())
		})
	}
}

func TestProposalService_ProposeForTransaction_Suggester(t *testing.T) {
	testHelper := serviceTestHelper(t)

	trx := pendingTransaction("trx-1", "Blue Bottle Coffee", "-4.50")

	t.Run("model answer wins with model source", func(t *testing.T) {
		testHelper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(studioChartOfAccounts(), nil)
		testHelper.mockSuggesterClient.EXPECT().
			Suggest(matcher.ContextWithTimeoutRange(time.Millisecond, 200*time.Millisecond), gomock.AssignableToTypeOf(suggester.Input{})).
			Return(&models.EntrySuggestion{
				DebitAccountID:  "acc-software",
				CreditAccountID: "acc-card",
				Confidence:      0.91,
				Explanation:     "Recurring charge for a developer tool.",
			}, nil)
		testHelper.mockProposedEntryRepository.EXPECT().
			GetPendingByTransactionID(gomock.Any(), "trx-1").
			Return(nil, nil)
		testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-1")
		testHelper.mockProposedEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(nil)

		en, err := testHelper.proposalService.ProposeForTransaction(context.Background(), trx)
		require.NoError(t, err)
		assert.Equal(t, "acc-software", en.DebitAccountID)
		assert.Equal(t, 0.91, en.Confidence)
		assert.Equal(t, models.EntrySourceModel, en.Source)
	})

	t.Run("model failure falls back to the capped rule result", func(t *testing.T) {
		testHelper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(studioChartOfAccounts(), nil)
		testHelper.mockSuggesterClient.EXPECT().
			Suggest(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)
		testHelper.mockProposedEntryRepository.EXPECT().
			GetPendingByTransactionID(gomock.Any(), "trx-1").
			Return(nil, nil)
		testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-1")
		testHelper.mockProposedEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(nil)

		en, err := testHelper.proposalService.ProposeForTransaction(context.Background(), trx)
		require.NoError(t, err)
		assert.Equal(t, "acc-meals", en.DebitAccountID)
		assert.Equal(t, 0.50, en.Confidence)
		assert.Equal(t, models.EntrySourceRule, en.Source)
	})

	t.Run("model slower than the deadline falls back", func(t *testing.T) {
		testHelper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(studioChartOfAccounts(), nil)
		testHelper.mockSuggesterClient.EXPECT().
			Suggest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in suggester.Input) (*models.EntrySuggestion, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})
		testHelper.mockProposedEntryRepository.EXPECT().
			GetPendingByTransactionID(gomock.Any(), "trx-1").
			Return(nil, nil)
		testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-1")
		testHelper.mockProposedEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(nil)

		en, err := testHelper.proposalService.ProposeForTransaction(context.Background(), trx)
		require.NoError(t, err)
		assert.Equal(t, models.EntrySourceRule, en.Source)
		assert.Equal(t, 0.50, en.Confidence)
	})
}

func TestProposalService_ProposeForTransaction_ReusesPendingProposal(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ruleOnly := testHelper.newRuleOnlyServices()

	trx := pendingTransaction("trx-1", "Blue Bottle Coffee", "-4.50")

	testHelper.mockDirectoryRepository.EXPECT().
		GetOwnerAccounts(gomock.Any(), "owner-1").
		Return(studioChartOfAccounts(), nil)
	testHelper.mockProposedEntryRepository.EXPECT().
		GetPendingByTransactionID(gomock.Any(), "trx-1").
		Return([]models.ProposedEntry{
			{ID: "PE-existing", OwnerID: "owner-1", TransactionID: "trx-1", Status: models.EntryStatusPending},
		}, nil)
	testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-fresh")
	testHelper.mockProposedEntryRepository.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, en *models.ProposedEntry) error {
			assert.Equal(t, "PE-existing", en.ID)
			return nil
		})

	en, err := ruleOnly.Proposal.ProposeForTransaction(context.Background(), trx)
	require.NoError(t, err)
	assert.Equal(t, "PE-existing", en.ID)
}

func TestProposalService_Propose(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ruleOnly := testHelper.newRuleOnlyServices()

	req := models.ProposeEntryRequest{
		TransactionID: "trx-manual",
		Description:   "Team lunch at the deli",
		Amount:        "-38.20",
		Currency:      "USD",
		Date:          "2024-03-15",
	}

	t.Run("known transaction is proposed as stored", func(t *testing.T) {
		testHelper.mockRawTrxRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "trx-manual").
			Return(func() *models.RawTransaction {
				trx := pendingTransaction("trx-manual", "Corner Deli", "-38.20")
				return &trx
			}(), nil)
		testHelper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(studioChartOfAccounts(), nil)
		testHelper.mockProposedEntryRepository.EXPECT().
			GetPendingByTransactionID(gomock.Any(), "trx-manual").
			Return(nil, nil)
		testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-1")
		testHelper.mockProposedEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(nil)

		en, err := ruleOnly.Proposal.Propose(context.Background(), "owner-1", req)
		require.NoError(t, err)
		assert.Equal(t, "acc-meals", en.DebitAccountID)
	})

	t.Run("unknown transaction is stored as manual first", func(t *testing.T) {
		testHelper.mockRawTrxRepository.EXPECT().
			GetByID(gomock.Any(), "owner-1", "trx-manual").
			Return(nil, common.ErrDataNotFound)
		testHelper.mockRawTrxRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, trx *models.RawTransaction) error {
				assert.Equal(t, models.TransactionSourceManual, trx.Source)
				assert.Equal(t, "owner-1", trx.OwnerID)
				return nil
			})
		testHelper.mockDirectoryRepository.EXPECT().
			GetOwnerAccounts(gomock.Any(), "owner-1").
			Return(studioChartOfAccounts(), nil)
		testHelper.mockProposedEntryRepository.EXPECT().
			GetPendingByTransactionID(gomock.Any(), "trx-manual").
			Return(nil, nil)
		testHelper.mockIDGenerator.EXPECT().Generate("PE").Return("PE-1")
		testHelper.mockProposedEntryRepository.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(nil)

		en, err := ruleOnly.Proposal.Propose(context.Background(), "owner-1", req)
		require.NoError(t, err)
		assert.Equal(t, "acc-meals", en.DebitAccountID)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := ruleOnly.Proposal.Propose(context.Background(), "", req)
		assert.ErrorIs(t, err, common.ErrUnauthenticated)
	})
}
