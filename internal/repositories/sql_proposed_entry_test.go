package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	mockDirectory "github.com/ezfinancial/go-entry-engine/internal/common/directory/mock"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestProposedEntryRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(proposedEntryTestSuite))
}

type proposedEntryTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    ProposedEntryRepository
}

func (suite *proposedEntryTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()
	mockCtrl := gomock.NewController(suite.t)
	mockDirectoryClient := mockDirectory.NewMockClient(mockCtrl)

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg, mockDirectoryClient).GetProposedEntryRepository()
}

func (suite *proposedEntryTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func proposedEntryRows() *sqlmock.Rows {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "ownerId", "transactionId", "date", "memo", "debitAccountId",
		"creditAccountId", "amount", "currency", "confidence", "source",
		"explanation", "status", "createdAt", "updatedAt",
	}).AddRow(
		"PE-1", "owner-1", "trx-1", now, "coffee", "acc-expense-meals",
		"acc-checking", "4.50", "USD", 0.85, "rule",
		"matched keyword coffee", "pending", now, now,
	)
}

func (suite *proposedEntryTestSuite) TestRepository_Store() {
	type args struct {
		ctx        context.Context
		entry      *models.ProposedEntry
		setupMocks func()
	}

	amount, _ := models.NewDecimal("4.50")

	testCases := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "test success",
			args: args{
				ctx: context.Background(),
				entry: &models.ProposedEntry{
					ID:              "PE-1",
					OwnerID:         "owner-1",
					TransactionID:   "trx-1",
					DebitAccountID:  "acc-expense-meals",
					CreditAccountID: "acc-checking",
					Amount:          amount,
					Currency:        "USD",
					Confidence:      0.85,
					Source:          models.EntrySourceRule,
					Status:          models.EntryStatusPending,
				},
				setupMocks: func() {
					rows := sqlmock.NewRows([]string{"createdAt", "updatedAt"}).
						AddRow(time.Now(), time.Now())
					suite.mock.ExpectQuery(regexp.QuoteMeta(storeProposedEntryQuery)).WillReturnRows(rows)
				},
			},
			wantErr: false,
		},
		{
			name: "test error insert",
			args: args{
				ctx:   context.Background(),
				entry: &models.ProposedEntry{ID: "PE-1"},
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(storeProposedEntryQuery)).
						WillReturnError(errors.New("insert failed"))
				},
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.args.setupMocks()

			err := suite.repo.Store(tc.args.ctx, tc.args.entry)
			assert.Equal(suite.t, tc.wantErr, err != nil)

			assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
		})
	}
}

func (suite *proposedEntryTestSuite) TestRepository_GetByID() {
	type args struct {
		ctx        context.Context
		ownerID    string
		id         string
		setupMocks func()
	}

	testCases := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "test success",
			args: args{
				ctx:     context.Background(),
				ownerID: "owner-1",
				id:      "PE-1",
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(getProposedEntryByIDQuery)).
						WithArgs("PE-1", "owner-1").
						WillReturnRows(proposedEntryRows())
				},
			},
		},
		{
			name: "test not found",
			args: args{
				ctx:     context.Background(),
				ownerID: "owner-1",
				id:      "PE-missing",
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(getProposedEntryByIDQuery)).
						WithArgs("PE-missing", "owner-1").
						WillReturnError(sql.ErrNoRows)
				},
			},
			wantErr: common.ErrDataNotFound,
		},
		{
			name: "test other owner cannot see the entry",
			args: args{
				ctx:     context.Background(),
				ownerID: "owner-2",
				id:      "PE-1",
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(getProposedEntryByIDQuery)).
						WithArgs("PE-1", "owner-2").
						WillReturnError(sql.ErrNoRows)
				},
			},
			wantErr: common.ErrDataNotFound,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.args.setupMocks()

			entry, err := suite.repo.GetByID(tc.args.ctx, tc.args.ownerID, tc.args.id)
			if tc.wantErr != nil {
				assert.ErrorIs(suite.t, err, tc.wantErr)
				assert.Nil(suite.t, entry)
			} else {
				assert.NoError(suite.t, err)
				assert.Equal(suite.t, "PE-1", entry.ID)
				assert.Equal(suite.t, models.EntryStatusPending, entry.Status)
			}

			assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
		})
	}
}

func (suite *proposedEntryTestSuite) TestRepository_UpdateStatusIfPending() {
	type args struct {
		ctx        context.Context
		status     string
		setupMocks func()
	}

	testCases := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "test reject pending entry",
			args: args{
				ctx:    context.Background(),
				status: models.EntryStatusRejected,
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(updateEntryStatusIfPendingQuery)).
						WithArgs(models.EntryStatusRejected, "PE-1", "owner-1").
						WillReturnRows(proposedEntryRows())
				},
			},
		},
		{
			name: "test already decided entry is not touched",
			args: args{
				ctx:    context.Background(),
				status: models.EntryStatusRejected,
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(updateEntryStatusIfPendingQuery)).
						WithArgs(models.EntryStatusRejected, "PE-1", "owner-1").
						WillReturnError(sql.ErrNoRows)
				},
			},
			wantErr: common.ErrNoRowsAffected,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.args.setupMocks()

			entry, err := suite.repo.UpdateStatusIfPending(tc.args.ctx, "owner-1", "PE-1", tc.args.status)
			if tc.wantErr != nil {
				assert.ErrorIs(suite.t, err, tc.wantErr)
			} else {
				assert.NoError(suite.t, err)
				assert.NotNil(suite.t, entry)
			}

			assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
		})
	}
}

func (suite *proposedEntryTestSuite) TestRepository_ApproveIfPending() {
	amount, _ := models.NewDecimal("5.00")

	entry := models.ProposedEntry{
		ID:              "PE-1",
		OwnerID:         "owner-1",
		DebitAccountID:  "acc-expense-meals",
		CreditAccountID: "acc-checking",
		Amount:          amount,
		Memo:            "edited memo",
	}

	suite.Run("test approve with edits", func() {
		suite.mock.ExpectQuery(regexp.QuoteMeta(approveEntryIfPendingQuery)).
			WithArgs("acc-expense-meals", "acc-checking", sqlmock.AnyArg(), "edited memo", "PE-1", "owner-1").
			WillReturnRows(proposedEntryRows())

		got, err := suite.repo.ApproveIfPending(context.Background(), entry)
		assert.NoError(suite.t, err)
		assert.NotNil(suite.t, got)
		assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
	})

	suite.Run("test approve loses the race", func() {
		suite.mock.ExpectQuery(regexp.QuoteMeta(approveEntryIfPendingQuery)).
			WillReturnError(sql.ErrNoRows)

		got, err := suite.repo.ApproveIfPending(context.Background(), entry)
		assert.ErrorIs(suite.t, err, common.ErrNoRowsAffected)
		assert.Nil(suite.t, got)
		assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
	})
}

func (suite *proposedEntryTestSuite) TestRepository_GetList() {
	opts := models.EntryFilterOptions{
		OwnerID: "owner-1",
		Status:  models.EntryStatusPending,
		Limit:   10,
	}

	suite.Run("test list pending entries", func() {
		query, _, err := buildListEntriesQuery(opts)
		require.NoError(suite.t, err)

		suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("owner-1", models.EntryStatusPending).
			WillReturnRows(proposedEntryRows())

		result, err := suite.repo.GetList(context.Background(), opts)
		assert.NoError(suite.t, err)
		assert.Len(suite.t, result, 1)
		assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
	})

	suite.Run("test backward page is returned in feed order", func() {
		backOpts := opts
		backOpts.Cursor = &models.EntryCursor{
			ID:         "PE-5",
			CreatedAt:  time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			IsBackward: true,
		}

		query, _, err := buildListEntriesQuery(backOpts)
		require.NoError(suite.t, err)

		now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{
			"id", "ownerId", "transactionId", "date", "memo", "debitAccountId",
			"creditAccountId", "amount", "currency", "confidence", "source",
			"explanation", "status", "createdAt", "updatedAt",
		}).
			AddRow("PE-3", "owner-1", "trx-3", now, "", "a", "b", "1.00", "USD", 0.8, "rule", "", "pending", now, now).
			AddRow("PE-4", "owner-1", "trx-4", now, "", "a", "b", "2.00", "USD", 0.8, "rule", "", "pending", now.Add(time.Minute), now)

		suite.mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

		result, err := suite.repo.GetList(context.Background(), backOpts)
		assert.NoError(suite.t, err)
		require.Len(suite.t, result, 2)
		assert.Equal(suite.t, "PE-4", result[0].ID)
		assert.Equal(suite.t, "PE-3", result[1].ID)
		assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
	})
}

func (suite *proposedEntryTestSuite) TestRepository_GetPendingByTransactionID() {
	suite.Run("test pending entries for removed transaction", func() {
		suite.mock.ExpectQuery(regexp.QuoteMeta(getPendingEntriesByTransactionIDQuery)).
			WithArgs("trx-1").
			WillReturnRows(proposedEntryRows())

		result, err := suite.repo.GetPendingByTransactionID(context.Background(), "trx-1")
		assert.NoError(suite.t, err)
		assert.Len(suite.t, result, 1)
		assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
	})
}
