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

type FinalEntryRepository interface {
	// Store inserts the entry header plus both lines. Callers run it
	// inside Atomic together with the approval update; rows are never
	// touched again after the insert.
	Store(ctx context.Context, en *models.FinalEntry) (err error)
	GetByID(ctx context.Context, ownerID, id string) (en *models.FinalEntry, err error)
	GetByProposedEntryID(ctx context.Context, ownerID, proposedEntryID string) (en *models.FinalEntry, err error)
}

type finalEntryRepository sqlRepo

var _ FinalEntryRepository = (*finalEntryRepository)(nil)

func (fer *finalEntryRepository) Store(ctx context.Context, en *models.FinalEntry) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := fer.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, storeFinalEntryQuery,
			en.ID,
			en.OwnerID,
			en.ProposedEntryID,
			en.Date,
			en.Memo,
			en.Source,
			en.Status,
			en.Currency,
			en.ApprovedAt,
			en.ApprovedBy).
		Scan(&en.CreatedAt)
	if err != nil {
		return err
	}

	for i := range en.Lines {
		line := &en.Lines[i]
		line.EntryID = en.ID
		if _, err = db.ExecContext(ctx, storeEntryLineQuery,
			line.ID,
			line.EntryID,
			line.AccountID,
			line.Side,
			line.Amount,
			line.Currency); err != nil {
			return fmt.Errorf("failed to store entry line %s: %w", line.ID, err)
		}
	}

	return nil
}

func (fer *finalEntryRepository) GetByID(ctx context.Context, ownerID, id string) (en *models.FinalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := fer.r.extractTxRead(ctx)

	entry, err := fer.scanEntry(db.QueryRowContext(ctx, getFinalEntryByIDQuery, id, ownerID))
	if err != nil {
		return nil, err
	}

	entry.Lines, err = fer.getLines(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (fer *finalEntryRepository) GetByProposedEntryID(ctx context.Context, ownerID, proposedEntryID string) (en *models.FinalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := fer.r.extractTxRead(ctx)

	entry, err := fer.scanEntry(db.QueryRowContext(ctx, getFinalEntryByProposedIDQuery, proposedEntryID, ownerID))
	if err != nil {
		return nil, err
	}

	entry.Lines, err = fer.getLines(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (fer *finalEntryRepository) scanEntry(row rowScanner) (*models.FinalEntry, error) {
	var en models.FinalEntry
	err := row.Scan(
		&en.ID,
		&en.OwnerID,
		&en.ProposedEntryID,
		&en.Date,
		&en.Memo,
		&en.Source,
		&en.Status,
		&en.Currency,
		&en.CreatedAt,
		&en.ApprovedAt,
		&en.ApprovedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return &en, nil
}

func (fer *finalEntryRepository) getLines(ctx context.Context, entryID string) (lines []models.EntryLine, err error) {
	db := fer.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, getEntryLinesByEntryIDQuery, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line models.EntryLine
		err = rows.Scan(
			&line.ID,
			&line.EntryID,
			&line.AccountID,
			&line.Side,
			&line.Amount,
			&line.Currency,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
