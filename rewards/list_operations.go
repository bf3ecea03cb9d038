package rewards

import (
	"context"

	"encore.dev/rlog"

	"encore.app/rewards/model"
)

type ListOperationsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListOperationsResponse struct {
	Operations []model.Operation `json:"operations"`
	TotalCount int64             `json:"total_count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

//encore:api public path=/v1/rewards/operations method=GET
func (s *Service) ListOperations(ctx context.Context, req *ListOperationsRequest) (*ListOperationsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	ops, totalCount, err := s.business.ListOperations(ctx, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list operations", "error", err)
		return nil, apiError(err)
	}

	response := &ListOperationsResponse{
		Operations: make([]model.Operation, len(ops)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	for i, op := range ops {
		response.Operations[i] = *op
	}

	return response, nil
}
