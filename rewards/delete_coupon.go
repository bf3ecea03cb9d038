package rewards

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

//encore:api public path=/v1/rewards/coupons/:id method=DELETE
func (s *Service) DeleteCoupon(ctx context.Context, id string) error {
	if id == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid coupon ID"}
	}

	if err := s.business.DeleteCoupon(ctx, id); err != nil {
		rlog.Error("failed to delete coupon", "error", err, "id", id)
		return apiError(err)
	}

	return nil
}
