package model

import (
	"time"
)

type CouponDuration string

const (
	DurationOnce      CouponDuration = "once"
	DurationRepeating CouponDuration = "repeating"
	DurationForever   CouponDuration = "forever"
)

// Coupon is the discount template as reshaped from the provider resource.
type Coupon struct {
	ID             string            `json:"id"`
	Name           string            `json:"name,omitempty"`
	PercentOff     *float64          `json:"percent_off,omitempty"`
	AmountOffCents *int64            `json:"amount_off_cents,omitempty"`
	Currency       string            `json:"currency,omitempty"`
	Duration       CouponDuration    `json:"duration"`
	DurationMonths *int64            `json:"duration_in_months,omitempty"`
	MaxRedemptions *int64            `json:"max_redemptions,omitempty"`
	RedeemBy       *time.Time        `json:"redeem_by,omitempty"`
	TimesRedeemed  int64             `json:"times_redeemed"`
	Valid          bool              `json:"valid"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	IdempotencyKey string            `json:"idempotency_key"`
	CreatedAt      time.Time         `json:"created_at"`
}

// CouponSpec describes the coupon a caller wants created. Metadata values
// may be absent; they are sanitized before reaching the provider.
type CouponSpec struct {
	Name           string
	PercentOff     *float64
	AmountOffCents *int64
	Currency       string
	Duration       CouponDuration
	DurationMonths *int64
	MaxRedemptions *int64
	RedeemBy       *time.Time
	Metadata       map[string]any
}
