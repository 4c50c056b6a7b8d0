package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ezfinancial/go-entry-engine/internal/common"
	"github.com/ezfinancial/go-entry-engine/internal/models"
	"github.com/ezfinancial/go-entry-engine/internal/monitoring"
)

type ProposedEntryRepository interface {
	Store(ctx context.Context, en *models.ProposedEntry) (err error)
	GetByID(ctx context.Context, ownerID, id string) (en *models.ProposedEntry, err error)
	GetPendingByTransactionID(ctx context.Context, transactionID string) (result []models.ProposedEntry, err error)
	GetList(ctx context.Context, opts models.EntryFilterOptions) (result []models.ProposedEntry, err error)
	CountAll(ctx context.Context, opts models.EntryFilterOptions) (total int, err error)

	// UpdateStatusIfPending is the compare-and-set gate on the lifecycle.
	// The update lands only when the row is still pending; a miss surfaces
	// as ErrNoRowsAffected and the caller decides whether the entry is
	// missing or already decided.
	UpdateStatusIfPending(ctx context.Context, ownerID, id, status string) (en *models.ProposedEntry, err error)

	// ApproveIfPending applies approve-time edits and flips the status in
	// the same conditional update, so an edit can never land on an entry
	// decided by a concurrent caller.
	ApproveIfPending(ctx context.Context, en models.ProposedEntry) (out *models.ProposedEntry, err error)
}

type proposedEntryRepository sqlRepo

var _ ProposedEntryRepository = (*proposedEntryRepository)(nil)

func (per *proposedEntryRepository) Store(ctx context.Context, en *models.ProposedEntry) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := per.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, storeProposedEntryQuery,
			en.ID,
			en.OwnerID,
			en.TransactionID,
			en.Date,
			en.Memo,
			en.DebitAccountID,
			en.CreditAccountID,
			en.Amount,
			en.Currency,
			en.Confidence,
			en.Source,
			en.Explanation,
			en.Status).
		Scan(&en.CreatedAt, &en.UpdatedAt)

	return
}

func (per *proposedEntryRepository) GetByID(ctx context.Context, ownerID, id string) (en *models.ProposedEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := per.r.extractTxRead(ctx)

	entry, err := scanProposedEntry(db.QueryRowContext(ctx, getProposedEntryByIDQuery, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return entry, nil
}

func (per *proposedEntryRepository) GetPendingByTransactionID(ctx context.Context, transactionID string) (result []models.ProposedEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := per.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, getPendingEntriesByTransactionIDQuery, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProposedEntries(rows)
}

func (per *proposedEntryRepository) GetList(ctx context.Context, opts models.EntryFilterOptions) (result []models.ProposedEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := per.r.extractTxRead(ctx)

	query, args, err := buildListEntriesQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result, err = collectProposedEntries(rows)
	if err != nil {
		return nil, err
	}

	// Backward pages are fetched in reverse order; restore the feed order
	// before handing the page up.
	if opts.Cursor != nil && opts.Cursor.IsBackward {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result, nil
}

func (per *proposedEntryRepository) CountAll(ctx context.Context, opts models.EntryFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := per.r.extractTxRead(ctx)

	query, args, err := buildCountEntriesQuery(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (per *proposedEntryRepository) UpdateStatusIfPending(ctx context.Context, ownerID, id, status string) (en *models.ProposedEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := per.r.extractTxWrite(ctx)

	entry, err := scanProposedEntry(db.QueryRowContext(ctx, updateEntryStatusIfPendingQuery, status, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNoRowsAffected
		}
		return nil, err
	}

	return entry, nil
}

func (per *proposedEntryRepository) ApproveIfPending(ctx context.Context, en models.ProposedEntry) (out *models.ProposedEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := per.r.extractTxWrite(ctx)

	entry, err := scanProposedEntry(db.QueryRowContext(ctx, approveEntryIfPendingQuery,
		en.DebitAccountID,
		en.CreditAccountID,
		en.Amount,
		en.Memo,
		en.ID,
		en.OwnerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNoRowsAffected
		}
		return nil, err
	}

	return entry, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProposedEntry(row rowScanner) (*models.ProposedEntry, error) {
	var en models.ProposedEntry
	err := row.Scan(
		&en.ID,
		&en.OwnerID,
		&en.TransactionID,
		&en.Date,
		&en.Memo,
		&en.DebitAccountID,
		&en.CreditAccountID,
		&en.Amount,
		&en.Currency,
		&en.Confidence,
		&en.Source,
		&en.Explanation,
		&en.Status,
		&en.CreatedAt,
		&en.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &en, nil
}

func collectProposedEntries(rows *sql.Rows) (result []models.ProposedEntry, err error) {
	for rows.Next() {
		entry, err := scanProposedEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
