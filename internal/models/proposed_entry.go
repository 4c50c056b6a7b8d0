package models

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const (
	EntryStatusPending  = "pending"
	EntryStatusApproved = "approved"
	EntryStatusRejected = "rejected"
)

const (
	EntrySourceRule   = "rule"
	EntrySourceModel  = "model"
	EntrySourceManual = "manual"
)

const kindProposedEntry = "proposedEntry"

// ProposedEntry is a candidate double-entry posting awaiting a decision.
// Rows are never deleted; the status walks pending -> approved|rejected
// and stops there.
type ProposedEntry struct {
	ID      string
	OwnerID string
	// TransactionID links back to the raw transaction, empty for manual
	// proposals.
	TransactionID   string
	Date            time.Time
	Memo            string
	DebitAccountID  string
	CreditAccountID string
	// Amount is always positive; direction lives in the account pair.
	Amount      Decimal
	Currency    string
	Confidence  float64
	Source      string
	Explanation string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p ProposedEntry) IsTerminal() bool {
	return p.Status == EntryStatusApproved || p.Status == EntryStatusRejected
}

type (
	ProposeEntryRequest struct {
		TransactionID string `json:"transactionId" validate:"required"`
		Description   string `json:"description" validate:"required"`
		Amount        string `json:"amount" validate:"required"`
		Currency      string `json:"currency" validate:"required,currency"`
		Date          string `json:"date" validate:"required,date"`
	}

	GetEntriesRequest struct {
		OwnerID    string `json:"-"`
		Status     string `json:"status" query:"status" validate:"omitempty,entryStatus"`
		Limit      int    `json:"limit" query:"limit" validate:"omitempty,gte=1,lte=100"`
		NextCursor string `json:"nextCursor" query:"nextCursor"`
		PrevCursor string `json:"prevCursor" query:"prevCursor"`
	}

	// ApproveEntryRequest allows approve-time edits: the caller may swap
	// either account or the amount before the entry is posted.
	ApproveEntryRequest struct {
		ApprovedBy      string `json:"approvedBy,omitempty"`
		DebitAccountID  string `json:"debitAccountId,omitempty"`
		CreditAccountID string `json:"creditAccountId,omitempty"`
		Amount          string `json:"amount,omitempty"`
		Memo            string `json:"memo,omitempty"`
	}

	RejectEntryRequest struct {
		Reason string `json:"reason,omitempty"`
	}

	BulkEntryRequest struct {
		IDs        []string `json:"ids" validate:"required,min=1,max=100,dive,required"`
		ApprovedBy string   `json:"approvedBy,omitempty"`
	}
)

type ProposedEntryResponse struct {
	Kind            string                     `json:"kind" example:"proposedEntry"`
	ID              string                     `json:"id" example:"PE-1711234567890abc"`
	TransactionID   string                     `json:"transactionId,omitempty"`
	Date            string                     `json:"date" example:"2024-03-15"`
	Memo            string                     `json:"memo,omitempty"`
	DebitAccountID  string                     `json:"debitAccountId"`
	CreditAccountID string                     `json:"creditAccountId"`
	Amount          string                     `json:"amount" example:"42.50"`
	Currency        string                     `json:"currency" example:"USD"`
	Confidence      float64                    `json:"confidence" example:"0.85"`
	Source          string                     `json:"source" example:"rule"`
	Explanation     string                     `json:"explanation,omitempty"`
	Status          string                     `json:"status" example:"pending"`
	Alternatives    []EntryAlternativeResponse `json:"alternatives,omitempty"`
	CreatedAt       string                     `json:"createdAt"`
	UpdatedAt       string                     `json:"updatedAt"`
}

func (p ProposedEntry) ToModelResponse() ProposedEntryResponse {
	return ProposedEntryResponse{
		Kind:            kindProposedEntry,
		ID:              p.ID,
		TransactionID:   p.TransactionID,
		Date:            p.Date.UTC().Format("2006-01-02"),
		Memo:            p.Memo,
		DebitAccountID:  p.DebitAccountID,
		CreditAccountID: p.CreditAccountID,
		Amount:          p.Amount.String(),
		Currency:        p.Currency,
		Confidence:      p.Confidence,
		Source:          p.Source,
		Explanation:     p.Explanation,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (p ProposedEntry) GetCursor() string {
	ec := EntryCursor{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
	}

	return ec.Encode()
}

// EntryFilterOptions is the repository-level view of a list request,
// with the cursor already decoded.
type EntryFilterOptions struct {
	OwnerID       string
	Status        string
	TransactionID string
	Limit         int
	Cursor        *EntryCursor
}

type EntryCursor struct {
	ID         string
	CreatedAt  time.Time
	IsBackward bool
}

func (ec EntryCursor) Encode() string {
	s := fmt.Sprintf("%s|%s", ec.ID, ec.CreatedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func DecodeEntryCursor(cursor string) (*EntryCursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cursor string: %w", err)
	}

	splitCursor := strings.Split(string(decodedBytes), "|")
	if len(splitCursor) != 2 {
		return nil, fmt.Errorf("failed to parse cursor: invalid format")
	}

	decodedTime, err := time.Parse(time.RFC3339Nano, splitCursor[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse cursor time: %w", err)
	}

	return &EntryCursor{
		ID:        splitCursor[0],
		CreatedAt: decodedTime,
	}, nil
}
