package model

import (
	"time"
)

// Operation tags identify the kind of side-effecting provider call. They
// prefix every derived idempotency key.
const (
	OpCreateCoupon        = "coupon"
	OpCreatePromotionCode = "promo-code"
	OpBalanceCredit       = "balance-credit"
	OpBalanceDebit        = "balance-debit"
)

// Operation is one audited provider call.
type Operation struct {
	ID             int64             `json:"id"`
	Operation      string            `json:"operation"`
	IdempotencyKey string            `json:"idempotency_key"`
	ResourceID     string            `json:"resource_id,omitempty"`
	TenantID       *string           `json:"tenant_id,omitempty"`
	UserID         *string           `json:"user_id,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
