package stripegateway

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"

	"encore.dev/beta/errs"

	"encore.app/rewards/idempotency"
)

func TestClassifyError_IdempotencyConflict(t *testing.T) {
	testCases := []struct {
		name      string
		stripeErr *stripe.Error
	}{
		{
			name:      "idempotency_error_type",
			stripeErr: &stripe.Error{Type: stripe.ErrorTypeIdempotency, Msg: "key reused with different params"},
		},
		{
			name:      "key_in_use_code",
			stripeErr: &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Code: stripe.ErrorCodeIdempotencyKeyInUse, Msg: "key in use"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyError(tc.stripeErr, "coupon-abc123")

			require.True(t, idempotency.IsConflict(err))
			key, ok := idempotency.KeyFromError(err)
			require.True(t, ok)
			assert.Equal(t, "coupon-abc123", key)
			assert.Contains(t, err.Error(), "stripe: ")
		})
	}
}

func TestClassifyError_CodedErrors(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode errs.ErrCode
	}{
		{
			name:         "invalid_request",
			err:          &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Msg: "no such customer"},
			expectedCode: errs.InvalidArgument,
		},
		{
			name:         "authentication_failure",
			err:          &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusUnauthorized, Msg: "invalid api key"},
			expectedCode: errs.Unauthenticated,
		},
		{
			name:         "provider_outage",
			err:          &stripe.Error{Type: stripe.ErrorTypeAPI, Msg: "something went wrong"},
			expectedCode: errs.Unavailable,
		},
		{
			name:         "non_provider_error",
			err:          fmt.Errorf("connection refused"),
			expectedCode: errs.Unavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyError(tc.err, "balance-credit-abc")

			assert.False(t, idempotency.IsConflict(err))

			var apiErr *errs.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.expectedCode, apiErr.Code)
			assert.Contains(t, apiErr.Message, "stripe: ")
		})
	}
}
