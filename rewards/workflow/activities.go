package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/rewards/business/reward"
	"encore.app/rewards/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	RewardBusiness reward.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(rewardBusiness reward.Business) {
	activityDeps = &ActivityDependencies{
		RewardBusiness: rewardBusiness,
	}
}

// CreateCouponActivity creates the grant's discount coupon at the provider
func CreateCouponActivity(ctx context.Context, params GrantRewardParams) (*model.Coupon, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing create coupon activity", "grantID", params.GrantID)

	if activityDeps == nil || activityDeps.RewardBusiness == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	spec := &model.CouponSpec{
		Name:           params.CouponName,
		PercentOff:     params.PercentOff,
		AmountOffCents: params.AmountOffCents,
		Currency:       params.Currency,
		Duration:       model.CouponDuration(params.Duration),
		DurationMonths: params.DurationMonths,
		MaxRedemptions: params.MaxRedemptions,
		Metadata:       grantMetadata(params),
	}

	coupon, err := activityDeps.RewardBusiness.CreateCoupon(ctx, spec)
	if err != nil {
		logger.Error("Failed to create coupon", "grantID", params.GrantID, "error", err)
		return nil, err
	}

	logger.Info("Successfully created coupon", "grantID", params.GrantID, "couponID", coupon.ID)
	return coupon, nil
}

// CreatePromotionCodeActivity creates the redeemable code on the grant's coupon
func CreatePromotionCodeActivity(ctx context.Context, params GrantRewardParams, couponID string) (*model.PromotionCode, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing create promotion code activity", "grantID", params.GrantID, "couponID", couponID)

	if activityDeps == nil || activityDeps.RewardBusiness == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	spec := &model.PromotionCodeSpec{
		CouponID:       couponID,
		Code:           params.Code,
		CustomerID:     params.CustomerID,
		MaxRedemptions: params.MaxRedemptions,
		Metadata:       grantMetadata(params),
	}

	promo, err := activityDeps.RewardBusiness.CreatePromotionCode(ctx, spec)
	if err != nil {
		logger.Error("Failed to create promotion code", "grantID", params.GrantID, "error", err)
		return nil, err
	}

	logger.Info("Successfully created promotion code", "grantID", params.GrantID, "promotionCodeID", promo.ID)
	return promo, nil
}

// CreditBalanceActivity applies the grant's customer balance credit
func CreditBalanceActivity(ctx context.Context, params GrantRewardParams) (*model.BalanceTransaction, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing credit balance activity", "grantID", params.GrantID, "customerID", params.CustomerID)

	if activityDeps == nil || activityDeps.RewardBusiness == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	adj := &model.BalanceAdjustment{
		CustomerID:  params.CustomerID,
		AmountCents: params.CreditCents,
		Currency:    params.Currency,
		Description: "reward grant " + params.GrantID,
		Metadata:    grantMetadata(params),
	}

	txn, err := activityDeps.RewardBusiness.CreditBalance(ctx, adj)
	if err != nil {
		logger.Error("Failed to credit balance", "grantID", params.GrantID, "error", err)
		return nil, err
	}

	logger.Info("Successfully credited balance", "grantID", params.GrantID, "transactionID", txn.ID)
	return txn, nil
}

// DeleteCouponActivity removes a coupon created by an earlier step of a
// grant that could not complete
func DeleteCouponActivity(ctx context.Context, couponID string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing delete coupon activity", "couponID", couponID)

	if activityDeps == nil || activityDeps.RewardBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.RewardBusiness.DeleteCoupon(ctx, couponID)
	if err != nil {
		logger.Error("Failed to delete coupon", "couponID", couponID, "error", err)
		return err
	}

	logger.Info("Successfully deleted coupon", "couponID", couponID)
	return nil
}

// grantMetadata builds the tracking metadata every provider call of a
// grant carries, merging in whatever the caller supplied.
func grantMetadata(params GrantRewardParams) map[string]any {
	md := make(map[string]any, len(params.Metadata)+3)
	for k, v := range params.Metadata {
		md[k] = v
	}
	md["grantId"] = params.GrantID
	if params.TenantID != "" {
		md["tenantId"] = params.TenantID
	}
	if params.UserID != "" {
		md["userId"] = params.UserID
	}
	return md
}
