package repositories

import (
	"fmt"

	"github.com/ezfinancial/go-entry-engine/internal/models"

	sq "github.com/Masterminds/squirrel"
)

const proposedEntryColumns = `
		"id",
		"ownerId",
		"transactionId",
		"date",
		"memo",
		"debitAccountId",
		"creditAccountId",
		"amount",
		"currency",
		"confidence",
		"source",
		"explanation",
		"status",
		"createdAt",
		"updatedAt"`

const (
	storeProposedEntryQuery = `INSERT INTO "proposedEntry"
		(
		 "id",
		 "ownerId",
		 "transactionId",
		 "date",
		 "memo",
		 "debitAccountId",
		 "creditAccountId",
		 "amount",
		 "currency",
		 "confidence",
		 "source",
		 "explanation",
		 "status"
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT ("id") DO UPDATE SET
			"date" = EXCLUDED."date",
			"memo" = EXCLUDED."memo",
			"debitAccountId" = EXCLUDED."debitAccountId",
			"creditAccountId" = EXCLUDED."creditAccountId",
			"amount" = EXCLUDED."amount",
			"currency" = EXCLUDED."currency",
			"confidence" = EXCLUDED."confidence",
			"source" = EXCLUDED."source",
			"explanation" = EXCLUDED."explanation",
			"updatedAt" = now()
		RETURNING "createdAt", "updatedAt"`

	getProposedEntryByIDQuery = `SELECT` + proposedEntryColumns + `
		FROM "proposedEntry"
		WHERE "id" = $1 AND "ownerId" = $2`

	getPendingEntriesByTransactionIDQuery = `SELECT` + proposedEntryColumns + `
		FROM "proposedEntry"
		WHERE "transactionId" = $1 AND "status" = 'pending'
		ORDER BY "createdAt" DESC`

	updateEntryStatusIfPendingQuery = `
		UPDATE "proposedEntry"
		SET
			"status" = $1,
			"updatedAt" = now()
		WHERE "id" = $2 AND "ownerId" = $3 AND "status" = 'pending'
		RETURNING` + proposedEntryColumns

	approveEntryIfPendingQuery = `
		UPDATE "proposedEntry"
		SET
			"debitAccountId" = $1,
			"creditAccountId" = $2,
			"amount" = $3,
			"memo" = $4,
			"status" = 'approved',
			"updatedAt" = now()
		WHERE "id" = $5 AND "ownerId" = $6 AND "status" = 'pending'
		RETURNING` + proposedEntryColumns
)

func buildFilteredEntriesQuery(cols []string, opts models.EntryFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From(`"proposedEntry"`)

	if opts.OwnerID != "" {
		query = query.Where(sq.Eq{
			`"ownerId"`: opts.OwnerID,
		})
	}

	if opts.Status != "" {
		query = query.Where(sq.Eq{
			`"status"`: opts.Status,
		})
	}

	if opts.TransactionID != "" {
		query = query.Where(sq.Eq{
			`"transactionId"`: opts.TransactionID,
		})
	}

	return query
}

func buildListEntriesQuery(opts models.EntryFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"ownerId"`,
		`"transactionId"`,
		`"date"`,
		`"memo"`,
		`"debitAccountId"`,
		`"creditAccountId"`,
		`"amount"`,
		`"currency"`,
		`"confidence"`,
		`"source"`,
		`"explanation"`,
		`"status"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	query := buildFilteredEntriesQuery(columns, opts)

	// The feed is newest first, keyed on (createdAt, id) so that rows
	// created in the same instant still page deterministically.
	if opts.Cursor != nil {
		operator := "<"
		if opts.Cursor.IsBackward {
			operator = ">"
		}

		query = query.Where(
			fmt.Sprintf(`("createdAt", "id") %s (?, ?)`, operator),
			opts.Cursor.CreatedAt, opts.Cursor.ID,
		)
	}

	if opts.Cursor != nil && opts.Cursor.IsBackward {
		query = query.OrderBy(`"createdAt" asc, "id" asc`)
	} else {
		query = query.OrderBy(`"createdAt" desc, "id" desc`)
	}

	query = query.Limit(uint64(opts.Limit))

	return query.ToSql()
}

func buildCountEntriesQuery(opts models.EntryFilterOptions) (sql string, args []interface{}, err error) {
	countOpts := opts
	countOpts.Cursor = nil

	return buildFilteredEntriesQuery([]string{"COUNT(1)"}, countOpts).ToSql()
}
