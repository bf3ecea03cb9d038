package rewards

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/rewards/model"
)

type CreatePromotionCodeRequest struct {
	CouponID       string         `json:"coupon_id" validate:"required"`
	Code           string         `json:"code,omitempty" validate:"omitempty,alphanum,max=200"`
	CustomerID     string         `json:"customer_id,omitempty"`
	MaxRedemptions *int64         `json:"max_redemptions,omitempty" validate:"omitempty,gt=0"`
	ExpiresAt      *time.Time     `json:"expires_at,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

type PromotionCodeResponse struct {
	PromotionCode model.PromotionCode `json:"promotion_code"`
}

//encore:api public path=/v1/rewards/promotion-codes method=POST tag:idempotency
func (s *Service) CreatePromotionCode(ctx context.Context, req *CreatePromotionCodeRequest) (*PromotionCodeResponse, error) {
	result, err := s.business.CreatePromotionCode(ctx, &model.PromotionCodeSpec{
		CouponID:       req.CouponID,
		Code:           req.Code,
		CustomerID:     req.CustomerID,
		MaxRedemptions: req.MaxRedemptions,
		ExpiresAt:      req.ExpiresAt,
		Metadata:       req.Metadata,
	})
	if err != nil {
		rlog.Error("failed to create promotion code", "error", err)
		return nil, apiError(err)
	}

	return &PromotionCodeResponse{
		PromotionCode: *result,
	}, nil
}

// Validate implements validation for CreatePromotionCodeRequest using go-playground/validator
func (r *CreatePromotionCodeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.ExpiresAt != nil && r.ExpiresAt.Before(time.Now()) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "expires_at must be in the future"}
	}

	return nil
}
