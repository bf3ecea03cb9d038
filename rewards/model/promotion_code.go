package model

import (
	"time"
)

// PromotionCode is a user-facing, redeemable instantiation of a coupon.
type PromotionCode struct {
	ID             string            `json:"id"`
	Code           string            `json:"code"`
	CouponID       string            `json:"coupon_id"`
	Active         bool              `json:"active"`
	CustomerID     string            `json:"customer_id,omitempty"`
	MaxRedemptions *int64            `json:"max_redemptions,omitempty"`
	ExpiresAt      *time.Time        `json:"expires_at,omitempty"`
	TimesRedeemed  int64             `json:"times_redeemed"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	IdempotencyKey string            `json:"idempotency_key"`
	CreatedAt      time.Time         `json:"created_at"`
}

// PromotionCodeSpec describes the promotion code a caller wants created.
type PromotionCodeSpec struct {
	CouponID       string
	Code           string
	CustomerID     string
	MaxRedemptions *int64
	ExpiresAt      *time.Time
	Metadata       map[string]any
}
