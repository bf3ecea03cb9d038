package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/rewards/model"
)

// GrantRewardParams contains parameters for starting the reward grant workflow
type GrantRewardParams struct {
	GrantID        string  `json:"grant_id"`
	TenantID       string  `json:"tenant_id"`
	UserID         string  `json:"user_id"`
	CouponName     string  `json:"coupon_name"`
	PercentOff     *float64 `json:"percent_off,omitempty"`
	AmountOffCents *int64  `json:"amount_off_cents,omitempty"`
	Currency       string  `json:"currency,omitempty"`
	Duration       string  `json:"duration"`
	DurationMonths *int64  `json:"duration_in_months,omitempty"`
	Code           string  `json:"code"`
	MaxRedemptions *int64  `json:"max_redemptions,omitempty"`
	CustomerID     string  `json:"customer_id,omitempty"`
	CreditCents    int64   `json:"credit_cents,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// GrantRewardResult reports the provider resources the grant produced.
type GrantRewardResult struct {
	CouponID             string `json:"coupon_id"`
	PromotionCodeID      string `json:"promotion_code_id"`
	PromotionCode        string `json:"promotion_code"`
	BalanceTransactionID string `json:"balance_transaction_id,omitempty"`
}

// GrantReward provisions a full reward: a coupon, a redeemable promotion
// code on it and, when the grant carries a credit, a customer balance
// credit. If a later step fails the already-created coupon is deleted so
// the grant never leaves a half-provisioned reward behind.
func GrantReward(ctx workflow.Context, params GrantRewardParams) (*GrantRewardResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting reward grant workflow", "grantID", params.GrantID, "code", params.Code)

	coupon, err := createCoupon(ctx, params)
	if err != nil {
		logger.Error("Failed to create coupon", "grantID", params.GrantID, "error", err)
		return nil, err
	}

	result := &GrantRewardResult{CouponID: coupon.ID}

	promo, err := createPromotionCode(ctx, params, coupon.ID)
	if err != nil {
		logger.Error("Failed to create promotion code, rolling back coupon", "grantID", params.GrantID, "couponID", coupon.ID, "error", err)
		compensateCoupon(ctx, coupon.ID)
		return nil, err
	}
	result.PromotionCodeID = promo.ID
	result.PromotionCode = promo.Code

	if params.CreditCents > 0 && params.CustomerID != "" {
		txn, err := creditBalance(ctx, params)
		if err != nil {
			logger.Error("Failed to credit balance, rolling back coupon", "grantID", params.GrantID, "couponID", coupon.ID, "error", err)
			compensateCoupon(ctx, coupon.ID)
			return nil, err
		}
		result.BalanceTransactionID = txn.ID
	}

	logger.Info("Reward grant workflow completed", "grantID", params.GrantID, "couponID", result.CouponID, "promotionCodeID", result.PromotionCodeID)
	return result, nil
}

// createCoupon executes the CreateCoupon activity
func createCoupon(ctx workflow.Context, params GrantRewardParams) (*model.Coupon, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var coupon model.Coupon
	err := workflow.ExecuteActivity(activityCtx, CreateCouponActivity, params).Get(ctx, &coupon)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// createPromotionCode executes the CreatePromotionCode activity
func createPromotionCode(ctx workflow.Context, params GrantRewardParams, couponID string) (*model.PromotionCode, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var promo model.PromotionCode
	err := workflow.ExecuteActivity(activityCtx, CreatePromotionCodeActivity, params, couponID).Get(ctx, &promo)
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// creditBalance executes the CreditBalance activity
func creditBalance(ctx workflow.Context, params GrantRewardParams) (*model.BalanceTransaction, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var txn model.BalanceTransaction
	err := workflow.ExecuteActivity(activityCtx, CreditBalanceActivity, params).Get(ctx, &txn)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// compensateCoupon executes the DeleteCoupon activity on a best-effort
// basis; a failed compensation is logged, never surfaced.
func compensateCoupon(ctx workflow.Context, couponID string) {
	logger := workflow.GetLogger(ctx)
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	if err := workflow.ExecuteActivity(activityCtx, DeleteCouponActivity, couponID).Get(ctx, nil); err != nil {
		logger.Error("Failed to roll back coupon", "couponID", couponID, "error", err)
	} else {
		logger.Info("Successfully rolled back coupon", "couponID", couponID)
	}
}
