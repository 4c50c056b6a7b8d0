package models

// DuplicateMatch is transient scoring output; it is produced and consumed
// within one detection call and never persisted.
type DuplicateMatch struct {
	TransactionID string
	// Score is 0-100 after clamping.
	Score float64
	// DayDelta is the absolute whole-day distance between the two dates.
	DayDelta int
	// AmountDelta is the absolute difference of the absolute amounts.
	AmountDelta Decimal
	// ExactMerchant marks a character-for-character merchant match after
	// normalization.
	ExactMerchant bool
}

type CheckDuplicateRequest struct {
	OwnerID  string `json:"-"`
	Merchant string `json:"merchant" query:"merchant" validate:"required"`
	Amount   string `json:"amount" query:"amount" validate:"required"`
	Currency string `json:"currency" query:"currency" validate:"omitempty,currency"`
	Date     string `json:"date" query:"date" validate:"required,date"`
	// ExcludeTransactionID keeps a transaction from matching itself when
	// re-checking an already ingested row.
	ExcludeTransactionID string `json:"excludeTransactionId,omitempty" query:"excludeTransactionId"`
}

type DuplicateMatchResponse struct {
	TransactionID string  `json:"transactionId"`
	Score         float64 `json:"score" example:"85"`
	DayDelta      int     `json:"dayDelta" example:"2"`
	AmountDelta   string  `json:"amountDelta" example:"0.25"`
}

type CheckDuplicateResponse struct {
	Kind        string                  `json:"kind" example:"duplicateCheck"`
	IsDuplicate bool                    `json:"isDuplicate"`
	Match       *DuplicateMatchResponse `json:"match,omitempty"`
}

func (m DuplicateMatch) ToModelResponse() DuplicateMatchResponse {
	return DuplicateMatchResponse{
		TransactionID: m.TransactionID,
		Score:         m.Score,
		DayDelta:      m.DayDelta,
		AmountDelta:   m.AmountDelta.String(),
	}
}
