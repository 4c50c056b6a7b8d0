package models

import (
	"time"
)

const (
	TransactionStatusPending    = "pending"
	TransactionStatusPosted     = "posted"
	TransactionStatusCleared    = "cleared"
	TransactionStatusReconciled = "reconciled"
	TransactionStatusScheduled  = "scheduled"
	TransactionStatusRemoved    = "removed"
)

const (
	TransactionSourceBank    = "bank"
	TransactionSourceManual  = "manual"
	TransactionSourceReceipt = "receipt"
)

// RawTransaction is an ingested bank or manual transaction. The engine
// reads it and proposes entries from it; the only mutation the engine
// performs is the status flip driven by removal events.
type RawTransaction struct {
	ID      string
	OwnerID string
	// AccountID is the funding account the transaction settled against,
	// empty when the bank feed could not resolve one.
	AccountID string
	// Merchant is the cleaned counterparty name; Description is the raw
	// statement line.
	Merchant    string
	Description string
	// Amount is signed, negative means money leaving the owner.
	Amount   Decimal
	Currency string
	Date     time.Time
	// Category holds connector-provided category hints, broadest first.
	Category   []string
	Source     string
	IsBusiness bool
	// ExternalSourceID ties the row back to the upstream bank feed.
	ExternalSourceID string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (t RawTransaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// MerchantOrDescription favors the cleaned merchant name when the feed
// provided one.
func (t RawTransaction) MerchantOrDescription() string {
	if t.Merchant != "" {
		return t.Merchant
	}
	return t.Description
}

const (
	TransactionEventCreated = "transaction.created"
	TransactionEventRemoved = "transaction.removed"
)

// TransactionMessage is the payload consumed from the raw-transaction topic.
type TransactionMessage struct {
	Event            string   `json:"event"`
	TransactionID    string   `json:"transactionId"`
	OwnerID          string   `json:"ownerId"`
	AccountID        string   `json:"accountId,omitempty"`
	Merchant         string   `json:"merchant,omitempty"`
	Description      string   `json:"description"`
	Amount           string   `json:"amount"`
	Currency         string   `json:"currency"`
	Date             string   `json:"date"`
	Category         []string `json:"category,omitempty"`
	Source           string   `json:"source,omitempty"`
	IsBusiness       bool     `json:"isBusiness,omitempty"`
	ExternalSourceID string   `json:"externalSourceId,omitempty"`
}
