package repositories

import (
	"github.com/ezfinancial/go-entry-engine/internal/models"

	sq "github.com/Masterminds/squirrel"
)

const (
	getAccountByIDQuery = `SELECT
						"id",
						"ownerId",
						"name",
						"type",
						"isBusiness",
						"createdAt",
						"updatedAt"
					FROM "account"
					WHERE "id" = $1 AND "ownerId" = $2`

	upsertAccountQuery = `INSERT INTO "account"
			("id", "ownerId", "name", "type", "isBusiness")
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ("id") DO UPDATE SET
			"name" = EXCLUDED."name",
			"type" = EXCLUDED."type",
			"isBusiness" = EXCLUDED."isBusiness",
			"updatedAt" = now()`
)

func buildListAccountQuery(opts models.GetAccountsRequest) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(
		`account."id"`,
		`account."ownerId"`,
		`account."name"`,
		`account."type"`,
		`account."isBusiness"`,
		`account."createdAt"`,
		`account."updatedAt"`,
	).From("account")

	if opts.OwnerID != "" {
		query = query.Where(sq.Eq{
			`account."ownerId"`: opts.OwnerID,
		})
	}

	if opts.Type != "" {
		query = query.Where(sq.Eq{
			`account."type"`: opts.Type,
		})
	}

	query = query.OrderBy(`account."name" asc`)

	return query.ToSql()
}
