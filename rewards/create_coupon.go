package rewards

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/rewards/model"
)

type CreateCouponRequest struct {
	Name           string         `json:"name" validate:"required"`
	PercentOff     *float64       `json:"percent_off,omitempty" validate:"omitempty,gt=0,lte=100"`
	AmountOffCents *int64         `json:"amount_off_cents,omitempty" validate:"omitempty,gt=0"`
	Currency       string         `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Duration       string         `json:"duration" validate:"required,oneof=once repeating forever"`
	DurationMonths *int64         `json:"duration_in_months,omitempty" validate:"omitempty,gt=0"`
	MaxRedemptions *int64         `json:"max_redemptions,omitempty" validate:"omitempty,gt=0"`
	RedeemBy       *time.Time     `json:"redeem_by,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

type CouponResponse struct {
	Coupon model.Coupon `json:"coupon"`
}

//encore:api public path=/v1/rewards/coupons method=POST tag:idempotency
func (s *Service) CreateCoupon(ctx context.Context, req *CreateCouponRequest) (*CouponResponse, error) {
	result, err := s.business.CreateCoupon(ctx, &model.CouponSpec{
		Name:           req.Name,
		PercentOff:     req.PercentOff,
		AmountOffCents: req.AmountOffCents,
		Currency:       req.Currency,
		Duration:       model.CouponDuration(req.Duration),
		DurationMonths: req.DurationMonths,
		MaxRedemptions: req.MaxRedemptions,
		RedeemBy:       req.RedeemBy,
		Metadata:       req.Metadata,
	})
	if err != nil {
		rlog.Error("failed to create coupon", "error", err)
		return nil, apiError(err)
	}

	return &CouponResponse{
		Coupon: *result,
	}, nil
}

// Validate implements validation for CreateCouponRequest using go-playground/validator
func (r *CreateCouponRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.PercentOff == nil && r.AmountOffCents == nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "one of percent_off or amount_off_cents is required"}
	}
	if r.PercentOff != nil && r.AmountOffCents != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "percent_off and amount_off_cents are mutually exclusive"}
	}
	if r.AmountOffCents != nil && r.Currency == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "currency is required with amount_off_cents"}
	}
	if r.Duration == string(model.DurationRepeating) && r.DurationMonths == nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "duration_in_months is required for repeating coupons"}
	}
	if r.RedeemBy != nil && r.RedeemBy.Before(time.Now()) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "redeem_by must be in the future"}
	}

	return nil
}
