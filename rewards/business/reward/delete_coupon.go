package reward

import (
	"context"
)

// DeleteCoupon removes a coupon at the provider. Used as the compensation
// step when a later call in a multi-step grant fails.
func (b *business) DeleteCoupon(ctx context.Context, id string) error {
	return b.gateway.DeleteCoupon(ctx, id)
}
