package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	mockDirectory "github.com/ezfinancial/go-entry-engine/internal/common/directory/mock"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestAccountRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(accountTestSuite))
}

type accountTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	mock    sqlmock.Sqlmock
	repo    AccountRepository
}

func (suite *accountTestSuite) SetupTest() {
	var err error

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.t = suite.T()
	mockCtrl := gomock.NewController(suite.t)
	mockDirectoryClient := mockDirectory.NewMockClient(mockCtrl)

	suite.repo = NewSQLRepository(suite.writeDB, suite.writeDB, config.Config{}, mockDirectoryClient).GetAccountRepository()
}

func (suite *accountTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func accountRows() *sqlmock.Rows {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "ownerId", "name", "type", "isBusiness", "createdAt", "updatedAt",
	}).
		AddRow("acc-checking", "owner-1", "Checking", "asset", false, now, now).
		AddRow("acc-expense-meals", "owner-1", "Meals & Entertainment", "expense", false, now, now)
}

func (suite *accountTestSuite) TestRepository_GetList() {
	suite.Run("test list by owner", func() {
		opts := models.GetAccountsRequest{OwnerID: "owner-1"}

		query, _, err := buildListAccountQuery(opts)
		require.NoError(suite.t, err)

		suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("owner-1").
			WillReturnRows(accountRows())

		result, err := suite.repo.GetList(context.Background(), opts)
		assert.NoError(suite.t, err)
		require.Len(suite.t, result, 2)
		assert.True(suite.t, result[0].IsFundingType())
		assert.False(suite.t, result[1].IsFundingType())
		assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
	})

	suite.Run("test list filtered by type", func() {
		opts := models.GetAccountsRequest{OwnerID: "owner-1", Type: models.AccountTypeExpense}

		query, _, err := buildListAccountQuery(opts)
		require.NoError(suite.t, err)

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "ownerId", "name", "type", "isBusiness", "createdAt", "updatedAt",
		}).AddRow("acc-expense-meals", "owner-1", "Meals & Entertainment", "expense", false, now, now)

		suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("owner-1", models.AccountTypeExpense).
			WillReturnRows(rows)

		result, err := suite.repo.GetList(context.Background(), opts)
		assert.NoError(suite.t, err)
		assert.Len(suite.t, result, 1)
		assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
	})
}

func (suite *accountTestSuite) TestRepository_GetCachedList() {
	suite.Run("test second read served from cache", func() {
		opts := models.GetAccountsRequest{OwnerID: "owner-1"}

		query, _, err := buildListAccountQuery(opts)
		require.NoError(suite.t, err)

		// Single query expectation; the second call must not hit the database.
		suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("owner-1").
			WillReturnRows(accountRows())

		first, err := suite.repo.GetCachedList(context.Background(), "owner-1")
		assert.NoError(suite.t, err)
		assert.Len(suite.t, first, 2)

		second, err := suite.repo.GetCachedList(context.Background(), "owner-1")
		assert.NoError(suite.t, err)
		assert.Len(suite.t, second, 2)

		assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
	})
}

func (suite *accountTestSuite) TestRepository_Upsert() {
	suite.Run("test sync from directory", func() {
		suite.mock.ExpectExec(regexp.QuoteMeta(upsertAccountQuery)).
			WithArgs("acc-checking", "owner-1", "Checking", "asset", false).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := suite.repo.Upsert(context.Background(), models.Account{
			ID:      "acc-checking",
			OwnerID: "owner-1",
			Name:    "Checking",
			Type:    models.AccountTypeAsset,
		})
		assert.NoError(suite.t, err)
		assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
	})
}
