package model

import (
	"time"
)

type BalanceEntryKind string

const (
	BalanceCredit BalanceEntryKind = "credit"
	BalanceDebit  BalanceEntryKind = "debit"
)

// BalanceTransaction is a ledger entry adjusting a customer's standing
// credit at the provider. AmountCents carries the provider's sign
// convention: negative reduces what the customer owes (a credit).
type BalanceTransaction struct {
	ID                 string            `json:"id"`
	CustomerID         string            `json:"customer_id"`
	Kind               BalanceEntryKind  `json:"kind"`
	AmountCents        int64             `json:"amount_cents"`
	Currency           string            `json:"currency"`
	Description        string            `json:"description,omitempty"`
	EndingBalanceCents int64             `json:"ending_balance_cents"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	IdempotencyKey     string            `json:"idempotency_key"`
	CreatedAt          time.Time         `json:"created_at"`
}

// BalanceAdjustment describes a credit or debit a caller wants applied.
// AmountCents is always positive; the operation decides the sign sent to
// the provider.
type BalanceAdjustment struct {
	CustomerID  string
	AmountCents int64
	Currency    string
	Description string
	Metadata    map[string]any
}
