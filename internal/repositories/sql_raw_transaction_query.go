package repositories

const rawTransactionColumns = `
		"id",
		"ownerId",
		"accountId",
		"merchant",
		"description",
		"amount",
		"currency",
		"date",
		"category",
		"source",
		"isBusiness",
		"externalSourceId",
		"status",
		"createdAt",
		"updatedAt"`

const (
	storeRawTransactionQuery = `INSERT INTO "rawTransaction"
		(
		 "id",
		 "ownerId",
		 "accountId",
		 "merchant",
		 "description",
		 "amount",
		 "currency",
		 "date",
		 "category",
		 "source",
		 "isBusiness",
		 "externalSourceId",
		 "status"
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT ("id") DO UPDATE SET
			"merchant" = EXCLUDED."merchant",
			"description" = EXCLUDED."description",
			"amount" = EXCLUDED."amount",
			"currency" = EXCLUDED."currency",
			"date" = EXCLUDED."date",
			"category" = EXCLUDED."category",
			"status" = EXCLUDED."status",
			"updatedAt" = now()
		RETURNING "createdAt", "updatedAt"`

	getRawTransactionByIDQuery = `SELECT` + rawTransactionColumns + `
		FROM "rawTransaction"
		WHERE "id" = $1 AND "ownerId" = $2`

	getRecentRawTransactionsQuery = `SELECT` + rawTransactionColumns + `
		FROM "rawTransaction"
		WHERE "ownerId" = $1
			AND "date" >= $2
			AND "id" <> $3
			AND "status" <> 'removed'
		ORDER BY "date" DESC`

	updateRawTransactionStatusQuery = `
		UPDATE "rawTransaction"
		SET
			"status" = $1,
			"updatedAt" = now()
		WHERE "id" = $2`
)
