package rewards

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/rewards/model"
)

type OperationResponse struct {
	Operation model.Operation `json:"operation"`
}

//encore:api public path=/v1/rewards/operations/key/:key method=GET
func (s *Service) GetOperation(ctx context.Context, key string) (*OperationResponse, error) {
	if key == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid idempotency key"}
	}

	result, err := s.business.GetOperation(ctx, key)
	if err != nil {
		rlog.Error("failed to get operation", "error", err, "key", key)
		return nil, apiError(err)
	}

	return &OperationResponse{
		Operation: *result,
	}, nil
}
