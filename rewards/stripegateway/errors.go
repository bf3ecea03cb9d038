package stripegateway

import (
	"errors"
	"net/http"

	"github.com/stripe/stripe-go/v78"

	"encore.dev/beta/errs"

	"encore.app/rewards/idempotency"
)

// errPrefix is prepended to every provider message we surface.
const errPrefix = "stripe: "

// classifyError maps a provider failure onto the closed error set callers
// match on: idempotency conflicts become the typed conflict error carrying
// the key the call was sent with; everything else becomes a coded API error.
// No retries happen here; compensation is the caller's job.
func classifyError(err error, idempotencyKey string) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return &errs.Error{Code: errs.Unavailable, Message: errPrefix + err.Error()}
	}

	if stripeErr.Type == stripe.ErrorTypeIdempotency || stripeErr.Code == stripe.ErrorCodeIdempotencyKeyInUse {
		return &idempotency.ConflictError{
			Key:     idempotencyKey,
			Message: errPrefix + stripeErr.Msg,
		}
	}

	if stripeErr.HTTPStatusCode == http.StatusUnauthorized {
		return &errs.Error{Code: errs.Unauthenticated, Message: errPrefix + stripeErr.Msg}
	}

	switch stripeErr.Type {
	case stripe.ErrorTypeInvalidRequest:
		return &errs.Error{Code: errs.InvalidArgument, Message: errPrefix + stripeErr.Msg}
	default:
		return &errs.Error{Code: errs.Unavailable, Message: errPrefix + stripeErr.Msg}
	}
}
