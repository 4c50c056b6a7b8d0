package repositories

const finalEntryColumns = `
		"id",
		"ownerId",
		"proposedEntryId",
		"date",
		"memo",
		"source",
		"status",
		"currency",
		"createdAt",
		"approvedAt",
		"approvedBy"`

const (
	storeFinalEntryQuery = `INSERT INTO "finalEntry"
		(
		 "id",
		 "ownerId",
		 "proposedEntryId",
		 "date",
		 "memo",
		 "source",
		 "status",
		 "currency",
		 "approvedAt",
		 "approvedBy"
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING "createdAt"`

	storeEntryLineQuery = `INSERT INTO "entryLine"
		(
		 "id",
		 "entryId",
		 "accountId",
		 "side",
		 "amount",
		 "currency"
		)
		VALUES ($1, $2, $3, $4, $5, $6)`

	getFinalEntryByIDQuery = `SELECT` + finalEntryColumns + `
		FROM "finalEntry"
		WHERE "id" = $1 AND "ownerId" = $2`

	getFinalEntryByProposedIDQuery = `SELECT` + finalEntryColumns + `
		FROM "finalEntry"
		WHERE "proposedEntryId" = $1 AND "ownerId" = $2`

	getEntryLinesByEntryIDQuery = `SELECT
			"id",
			"entryId",
			"accountId",
			"side",
			"amount",
			"currency"
		FROM "entryLine"
		WHERE "entryId" = $1
		ORDER BY "side" ASC`
)
