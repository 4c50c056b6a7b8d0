package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/common/cache"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"
)

type AccountRepository interface {
	GetList(ctx context.Context, opts models.GetAccountsRequest) (result []models.Account, err error)
	GetOneByID(ctx context.Context, ownerID, accountID string) (result *models.Account, err error)

	// GetCachedList serves the chart of accounts from an in-process cache.
	// Proposal and ranking read it on every transaction; the chart changes
	// rarely enough that a short TTL is safe.
	GetCachedList(ctx context.Context, ownerID string) (result []models.Account, err error)
	Upsert(ctx context.Context, en models.Account) (err error)
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

func (ar *accountRepository) GetList(ctx context.Context, opts models.GetAccountsRequest) (result []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	query, args, err := buildListAccountQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var account models.Account
		err = rows.Scan(
			&account.ID,
			&account.OwnerID,
			&account.Name,
			&account.Type,
			&account.IsBusiness,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (ar *accountRepository) GetOneByID(ctx context.Context, ownerID, accountID string) (result *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	var account models.Account
	err = db.QueryRowContext(ctx, getAccountByIDQuery, accountID, ownerID).
		Scan(
			&account.ID,
			&account.OwnerID,
			&account.Name,
			&account.Type,
			&account.IsBusiness,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return &account, nil
}

func (ar *accountRepository) GetCachedList(ctx context.Context, ownerID string) ([]models.Account, error) {
	return ar.r.cacheOwnerAccounts.GetOrSet(ctx, cache.GetOrSetOpts[[]models.Account]{
		Key: ownerID,
		TTL: 15 * time.Minute,
		Callback: func() ([]models.Account, error) {
			return ar.GetList(ctx, models.GetAccountsRequest{OwnerID: ownerID})
		},
	})
}

func (ar *accountRepository) Upsert(ctx context.Context, en models.Account) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, upsertAccountQuery,
		en.ID,
		en.OwnerID,
		en.Name,
		en.Type,
		en.IsBusiness,
	)

	return
}
