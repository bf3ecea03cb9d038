package rewards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"

	"encore.dev/beta/errs"
)

func TestGrantRewardEndpoint(t *testing.T) {
	percentOff := 25.0

	validRequest := func() *GrantRewardRequest {
		return &GrantRewardRequest{
			GrantID:    "grant-abc",
			TenantID:   "tenant-1",
			CouponName: "Referral bonus",
			PercentOff: &percentOff,
			Duration:   "once",
			Code:       "REFER25",
		}
	}

	testCases := []struct {
		name              string
		mockTemporalError error
		expectedCode      errs.ErrCode
		expectSuccess     bool
	}{
		{
			name:          "starts_grant_workflow",
			expectSuccess: true,
		},
		{
			name:              "already_started_is_benign",
			mockTemporalError: serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""),
			expectSuccess:     true,
		},
		{
			name:              "temporal_unavailable",
			mockTemporalError: errors.New("connection refused"),
			expectedCode:      errs.Unavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			service := &Service{temporal: mockTemporal}

			mockTemporal.On("ExecuteWorkflow",
				mock.Anything, // context
				mock.MatchedBy(func(opts client.StartWorkflowOptions) bool {
					return opts.ID == "reward-grant-grant-abc" && opts.TaskQueue == taskQueue
				}),
				mock.Anything, // workflow function
				mock.Anything, // workflow args
			).Return(nil, tc.mockTemporalError)

			response, err := service.GrantReward(context.Background(), validRequest())

			if tc.expectSuccess {
				require.NoError(t, err)
				require.NotNil(t, response)
				assert.Equal(t, "grant-abc", response.GrantID)
				assert.Equal(t, "reward-grant-grant-abc", response.WorkflowID)
				return
			}

			require.Error(t, err)
			assert.Nil(t, response)
			var encoreErr *errs.Error
			require.ErrorAs(t, err, &encoreErr)
			assert.Equal(t, tc.expectedCode, encoreErr.Code)
		})
	}
}

func TestGrantRewardRequest_Validation(t *testing.T) {
	percentOff := 25.0
	amountOff := int64(500)

	base := func(mutate func(r *GrantRewardRequest)) *GrantRewardRequest {
		r := &GrantRewardRequest{
			GrantID:    "grant-abc",
			CouponName: "Referral bonus",
			PercentOff: &percentOff,
			Duration:   "once",
			Code:       "REFER25",
		}
		mutate(r)
		return r
	}

	testCases := []struct {
		name          string
		request       *GrantRewardRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: base(func(r *GrantRewardRequest) {}),
		},
		{
			name:          "missing_grant_id",
			request:       base(func(r *GrantRewardRequest) { r.GrantID = "" }),
			expectedError: "required",
		},
		{
			name:          "missing_code",
			request:       base(func(r *GrantRewardRequest) { r.Code = "" }),
			expectedError: "required",
		},
		{
			name: "both_discounts",
			request: base(func(r *GrantRewardRequest) {
				r.AmountOffCents = &amountOff
				r.Currency = "usd"
			}),
			expectedError: "mutually exclusive",
		},
		{
			name:          "no_discount",
			request:       base(func(r *GrantRewardRequest) { r.PercentOff = nil }),
			expectedError: "one of percent_off or amount_off_cents is required",
		},
		{
			name: "credit_without_customer",
			request: base(func(r *GrantRewardRequest) {
				r.CreditCents = 1000
				r.Currency = "usd"
			}),
			expectedError: "customer_id is required",
		},
		{
			name: "credit_without_currency",
			request: base(func(r *GrantRewardRequest) {
				r.CreditCents = 1000
				r.CustomerID = "cus_1"
			}),
			expectedError: "currency is required",
		},
		{
			name: "credit_fully_specified",
			request: base(func(r *GrantRewardRequest) {
				r.CreditCents = 1000
				r.CustomerID = "cus_1"
				r.Currency = "usd"
			}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
