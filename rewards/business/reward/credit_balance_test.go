package reward

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/rewards/mocks/gateway/stripe_gateway"
	"encore.app/rewards/mocks/repository/operations_repo"
	"encore.app/rewards/model"
	"encore.app/rewards/repository/operations"
	"encore.app/rewards/stripegateway"
)

func TestCreditAndDebitBalance_SignConvention(t *testing.T) {
	runSynchronously(t)

	testCases := []struct {
		name           string
		call           func(b Business, adj *model.BalanceAdjustment) (*model.BalanceTransaction, error)
		expectedAmount int64
		expectedOp     string
	}{
		{
			name: "credit_sends_negative_amount",
			call: func(b Business, adj *model.BalanceAdjustment) (*model.BalanceTransaction, error) {
				return b.CreditBalance(context.Background(), adj)
			},
			expectedAmount: -1000,
			expectedOp:     model.OpBalanceCredit,
		},
		{
			name: "debit_sends_positive_amount",
			call: func(b Business, adj *model.BalanceAdjustment) (*model.BalanceTransaction, error) {
				return b.DebitBalance(context.Background(), adj)
			},
			expectedAmount: 1000,
			expectedOp:     model.OpBalanceDebit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGateway := stripe_gateway.NewMockGateway(ctrl)
			mockRepo := operations_repo.NewMockQuerier(ctrl)
			business := &business{gateway: mockGateway, operationRepo: mockRepo}

			var sentParams stripegateway.BalanceTransactionParams
			mockGateway.EXPECT().
				CreateBalanceTransaction(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params stripegateway.BalanceTransactionParams) (*model.BalanceTransaction, error) {
					sentParams = params
					return &model.BalanceTransaction{
						ID:          "cbtxn_1",
						CustomerID:  params.CustomerID,
						AmountCents: params.AmountCents,
					}, nil
				}).
				Times(1)

			var recorded operations.CreateOperationParams
			mockRepo.EXPECT().
				CreateOperation(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg operations.CreateOperationParams) (operations.Operation, error) {
					recorded = arg
					return operations.Operation{}, nil
				}).
				Times(1)

			txn, err := tc.call(business, &model.BalanceAdjustment{
				CustomerID:  "cus_1",
				AmountCents: 1000,
				Currency:    "usd",
				Metadata:    map[string]any{"tenant_id": "t1", "user_id": "u7"},
			})

			require.NoError(t, err)
			assert.Equal(t, tc.expectedAmount, sentParams.AmountCents)
			assert.Equal(t, "cbtxn_1", txn.ID)

			assert.Equal(t, tc.expectedOp, recorded.Operation)
			require.True(t, recorded.TenantID.Valid)
			assert.Equal(t, "t1", recorded.TenantID.String)
			require.True(t, recorded.UserID.Valid)
			assert.Equal(t, "u7", recorded.UserID.String)
		})
	}
}

func TestCreditBalance_RejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := stripe_gateway.NewMockGateway(ctrl)
	mockRepo := operations_repo.NewMockQuerier(ctrl)
	business := &business{gateway: mockGateway, operationRepo: mockRepo}

	for _, amount := range []int64{0, -5} {
		txn, err := business.CreditBalance(context.Background(), &model.BalanceAdjustment{
			CustomerID:  "cus_1",
			AmountCents: amount,
			Currency:    "usd",
		})

		assert.Nil(t, txn)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	}
}

func TestCreditBalance_DifferentAmountsDeriveDifferentKeys(t *testing.T) {
	runSynchronously(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := stripe_gateway.NewMockGateway(ctrl)
	mockRepo := operations_repo.NewMockQuerier(ctrl)
	business := &business{gateway: mockGateway, operationRepo: mockRepo}

	var keys []string
	mockGateway.EXPECT().
		CreateBalanceTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params stripegateway.BalanceTransactionParams) (*model.BalanceTransaction, error) {
			keys = append(keys, params.IdempotencyKey)
			return &model.BalanceTransaction{ID: "cbtxn_1"}, nil
		}).
		Times(2)
	mockRepo.EXPECT().
		CreateOperation(gomock.Any(), gomock.Any()).
		Return(operations.Operation{}, nil).
		Times(2)

	_, err := business.CreditBalance(context.Background(), &model.BalanceAdjustment{
		CustomerID: "cus_1", AmountCents: 1000, Currency: "usd",
	})
	require.NoError(t, err)
	_, err = business.CreditBalance(context.Background(), &model.BalanceAdjustment{
		CustomerID: "cus_1", AmountCents: 1001, Currency: "usd",
	})
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}
