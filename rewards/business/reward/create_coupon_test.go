package reward

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/rewards/idempotency"
	"encore.app/rewards/mocks/gateway/stripe_gateway"
	"encore.app/rewards/mocks/repository/operations_repo"
	"encore.app/rewards/model"
	"encore.app/rewards/repository/operations"
	"encore.app/rewards/stripegateway"
)

// runSynchronously replaces the async audit write with an inline call so
// tests can assert on it deterministically.
func runSynchronously(t *testing.T) {
	t.Helper()
	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
	t.Cleanup(func() { runAsync = prev })
}

func TestCreateCoupon(t *testing.T) {
	runSynchronously(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := stripe_gateway.NewMockGateway(ctrl)
	mockRepo := operations_repo.NewMockQuerier(ctrl)
	business := &business{gateway: mockGateway, operationRepo: mockRepo}

	percentOff := 25.0
	spec := &model.CouponSpec{
		Name:       "spring-sale",
		PercentOff: &percentOff,
		Duration:   model.DurationOnce,
		Metadata:   map[string]any{"tenantId": "t1", "userId": nil},
	}

	var sentParams stripegateway.CouponParams
	mockGateway.EXPECT().
		CreateCoupon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params stripegateway.CouponParams) (*model.Coupon, error) {
			sentParams = params
			return &model.Coupon{
				ID:             "co_123",
				Name:           "spring-sale",
				PercentOff:     &percentOff,
				Duration:       model.DurationOnce,
				Valid:          true,
				IdempotencyKey: params.IdempotencyKey,
			}, nil
		}).
		Times(1)

	var recorded operations.CreateOperationParams
	mockRepo.EXPECT().
		CreateOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg operations.CreateOperationParams) (operations.Operation, error) {
			recorded = arg
			return operations.Operation{ID: 1}, nil
		}).
		Times(1)

	coupon, err := business.CreateCoupon(context.Background(), spec)

	require.NoError(t, err)
	assert.Equal(t, "co_123", coupon.ID)

	// The derived key covers the sanitized call parameters, so rebuilding
	// the same params yields the same key.
	expectedParams := sentParams
	expectedParams.IdempotencyKey = ""
	assert.Equal(t, idempotency.DeriveKey(model.OpCreateCoupon, expectedParams), sentParams.IdempotencyKey)

	// Nil metadata values never reach the provider.
	assert.Equal(t, map[string]string{"tenantId": "t1"}, sentParams.Metadata)

	// The audit row carries the key, resource and extracted tenant.
	assert.Equal(t, model.OpCreateCoupon, recorded.Operation)
	assert.Equal(t, sentParams.IdempotencyKey, recorded.IdempotencyKey)
	assert.Equal(t, "co_123", recorded.ResourceID)
	require.True(t, recorded.TenantID.Valid)
	assert.Equal(t, "t1", recorded.TenantID.String)
	assert.False(t, recorded.UserID.Valid)
}

func TestCreateCoupon_DeterministicKeyAcrossCalls(t *testing.T) {
	runSynchronously(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := stripe_gateway.NewMockGateway(ctrl)
	mockRepo := operations_repo.NewMockQuerier(ctrl)
	business := &business{gateway: mockGateway, operationRepo: mockRepo}

	amountOff := int64(500)
	spec := func() *model.CouponSpec {
		return &model.CouponSpec{
			Name:           "fixed",
			AmountOffCents: &amountOff,
			Currency:       "usd",
			Duration:       model.DurationForever,
			Metadata:       map[string]any{"tenantId": "t1", "rewardId": "r9"},
		}
	}

	var keys []string
	mockGateway.EXPECT().
		CreateCoupon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params stripegateway.CouponParams) (*model.Coupon, error) {
			keys = append(keys, params.IdempotencyKey)
			return &model.Coupon{ID: "co_123"}, nil
		}).
		Times(2)
	mockRepo.EXPECT().
		CreateOperation(gomock.Any(), gomock.Any()).
		Return(operations.Operation{}, nil).
		Times(2)

	_, err := business.CreateCoupon(context.Background(), spec())
	require.NoError(t, err)
	_, err = business.CreateCoupon(context.Background(), spec())
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1])
}

func TestCreateCoupon_GatewayFailureSkipsAudit(t *testing.T) {
	runSynchronously(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := stripe_gateway.NewMockGateway(ctrl)
	mockRepo := operations_repo.NewMockQuerier(ctrl)
	business := &business{gateway: mockGateway, operationRepo: mockRepo}

	conflict := &idempotency.ConflictError{Key: "coupon-abc", Message: "stripe: key in use"}
	mockGateway.EXPECT().
		CreateCoupon(gomock.Any(), gomock.Any()).
		Return(nil, conflict).
		Times(1)

	percentOff := 10.0
	coupon, err := business.CreateCoupon(context.Background(), &model.CouponSpec{
		PercentOff: &percentOff,
		Duration:   model.DurationOnce,
	})

	assert.Nil(t, coupon)
	require.Error(t, err)
	// The typed conflict flows through untouched for callers to match on.
	assert.True(t, idempotency.IsConflict(err))
	key, ok := idempotency.KeyFromError(err)
	require.True(t, ok)
	assert.Equal(t, "coupon-abc", key)
}
