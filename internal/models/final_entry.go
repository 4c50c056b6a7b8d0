package models

import (
	"time"
)

const (
	FinalEntryStatusPosted  = "posted"
	FinalEntryStatusPending = "pending"
)

const (
	EntryLineSideDebit  = "debit"
	EntryLineSideCredit = "credit"
)

const kindFinalEntry = "finalEntry"

// FinalEntry is an immutable posted ledger transaction. Only the ledger
// writer creates these; nothing updates or deletes them.
type FinalEntry struct {
	ID              string
	OwnerID         string
	ProposedEntryID string
	Date            time.Time
	Memo            string
	Source          string
	Status          string
	Currency        string
	CreatedAt       time.Time
	ApprovedAt      time.Time
	ApprovedBy      string

	Lines []EntryLine
}

// EntryLine is one side of a final entry. Amount is non-negative; the
// side carries the direction.
type EntryLine struct {
	ID        string
	EntryID   string
	AccountID string
	Side      string
	Amount    Decimal
	Currency  string
}

// Balanced reports whether debits equal credits exactly. Amounts are
// decimals, compared without tolerance.
func (e FinalEntry) Balanced() bool {
	var debit, credit Decimal
	for _, line := range e.Lines {
		switch line.Side {
		case EntryLineSideDebit:
			debit = Decimal{debit.Add(line.Amount.Decimal)}
		case EntryLineSideCredit:
			credit = Decimal{credit.Add(line.Amount.Decimal)}
		}
	}
	return debit.Equal(credit.Decimal)
}

type EntryLineResponse struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId"`
	Side      string `json:"side" example:"debit"`
	Amount    string `json:"amount" example:"42.50"`
	Currency  string `json:"currency" example:"USD"`
}

type FinalEntryResponse struct {
	Kind            string              `json:"kind" example:"finalEntry"`
	ID              string              `json:"id"`
	ProposedEntryID string              `json:"proposedEntryId"`
	Date            string              `json:"date" example:"2024-03-15"`
	Memo            string              `json:"memo,omitempty"`
	Source          string              `json:"source" example:"rule"`
	Status          string              `json:"status" example:"posted"`
	ApprovedAt      string              `json:"approvedAt"`
	ApprovedBy      string              `json:"approvedBy"`
	Lines           []EntryLineResponse `json:"lines"`
}

func (e FinalEntry) ToModelResponse() FinalEntryResponse {
	lines := make([]EntryLineResponse, 0, len(e.Lines))
	for _, line := range e.Lines {
		lines = append(lines, EntryLineResponse{
			ID:        line.ID,
			AccountID: line.AccountID,
			Side:      line.Side,
			Amount:    line.Amount.String(),
			Currency:  line.Currency,
		})
	}

	return FinalEntryResponse{
		Kind:            kindFinalEntry,
		ID:              e.ID,
		ProposedEntryID: e.ProposedEntryID,
		Date:            e.Date.UTC().Format("2006-01-02"),
		Memo:            e.Memo,
		Source:          e.Source,
		Status:          e.Status,
		ApprovedAt:      e.ApprovedAt.UTC().Format(time.RFC3339),
		ApprovedBy:      e.ApprovedBy,
		Lines:           lines,
	}
}

// EntryPostedEvent is published after a final entry lands in the ledger.
type EntryPostedEvent struct {
	EntryID         string    `json:"entryId"`
	ProposedEntryID string    `json:"proposedEntryId"`
	OwnerID         string    `json:"ownerId"`
	Amount          string    `json:"amount"`
	Currency        string    `json:"currency"`
	DebitAccountID  string    `json:"debitAccountId"`
	CreditAccountID string    `json:"creditAccountId"`
	PostedAt        time.Time `json:"postedAt"`
}
