package rewards

import (
	"errors"

	"encore.dev/beta/errs"

	"encore.app/rewards/idempotency"
)

// apiError maps business-layer failures onto wire error codes. Idempotency
// conflicts surface as AlreadyExists with the offending key attached so the
// caller can inspect which request collided.
func apiError(err error) error {
	var conflict *idempotency.ConflictError
	if errors.As(err, &conflict) {
		return &errs.Error{
			Code:    errs.AlreadyExists,
			Message: conflict.Error(),
			Meta:    errs.Metadata{"idempotency_key": conflict.Key},
		}
	}

	var encoreErr *errs.Error
	if errors.As(err, &encoreErr) {
		return encoreErr
	}

	return &errs.Error{Code: errs.Internal, Message: "internal error"}
}
