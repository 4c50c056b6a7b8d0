package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"

	"github.com/lib/pq"
)

type RawTransactionRepository interface {
	Store(ctx context.Context, en *models.RawTransaction) (err error)
	GetByID(ctx context.Context, ownerID, id string) (en *models.RawTransaction, err error)

	// GetRecentByOwner returns transactions dated on or after the given
	// instant, newest first. The duplicate detector scans this window.
	GetRecentByOwner(ctx context.Context, ownerID string, since time.Time, excludeID string) (result []models.RawTransaction, err error)
	UpdateStatus(ctx context.Context, id, status string) (err error)
}

type rawTransactionRepository sqlRepo

var _ RawTransactionRepository = (*rawTransactionRepository)(nil)

func (rtr *rawTransactionRepository) Store(ctx context.Context, en *models.RawTransaction) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rtr.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, storeRawTransactionQuery,
			en.ID,
			en.OwnerID,
			en.AccountID,
			en.Merchant,
			en.Description,
			en.Amount,
			en.Currency,
			en.Date,
			pq.Array(en.Category),
			en.Source,
			en.IsBusiness,
			en.ExternalSourceID,
			en.Status).
		Scan(&en.CreatedAt, &en.UpdatedAt)

	return
}

func (rtr *rawTransactionRepository) GetByID(ctx context.Context, ownerID, id string) (en *models.RawTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rtr.r.extractTxRead(ctx)

	var trx models.RawTransaction
	err = db.QueryRowContext(ctx, getRawTransactionByIDQuery, id, ownerID).
		Scan(
			&trx.ID,
			&trx.OwnerID,
			&trx.AccountID,
			&trx.Merchant,
			&trx.Description,
			&trx.Amount,
			&trx.Currency,
			&trx.Date,
			pq.Array(&trx.Category),
			&trx.Source,
			&trx.IsBusiness,
			&trx.ExternalSourceID,
			&trx.Status,
			&trx.CreatedAt,
			&trx.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return &trx, nil
}

func (rtr *rawTransactionRepository) GetRecentByOwner(ctx context.Context, ownerID string, since time.Time, excludeID string) (result []models.RawTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rtr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, getRecentRawTransactionsQuery, ownerID, since, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var trx models.RawTransaction
		err = rows.Scan(
			&trx.ID,
			&trx.OwnerID,
			&trx.AccountID,
			&trx.Merchant,
			&trx.Description,
			&trx.Amount,
			&trx.Currency,
			&trx.Date,
			pq.Array(&trx.Category),
			&trx.Source,
			&trx.IsBusiness,
			&trx.ExternalSourceID,
			&trx.Status,
			&trx.CreatedAt,
			&trx.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, trx)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (rtr *rawTransactionRepository) UpdateStatus(ctx context.Context, id, status string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rtr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, updateRawTransactionStatusQuery, status, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}
