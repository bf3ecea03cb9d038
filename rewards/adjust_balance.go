package rewards

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/rewards/model"
)

type AdjustBalanceRequest struct {
	AmountCents int64          `json:"amount_cents" validate:"required,gt=0"`
	Currency    string         `json:"currency" validate:"required,len=3,alpha"`
	Description string         `json:"description,omitempty" validate:"omitempty,max=350"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type BalanceTransactionResponse struct {
	Transaction model.BalanceTransaction `json:"transaction"`
}

//encore:api public path=/v1/rewards/customers/:id/credits method=POST tag:idempotency
func (s *Service) CreditBalance(ctx context.Context, id string, req *AdjustBalanceRequest) (*BalanceTransactionResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	result, err := s.business.CreditBalance(ctx, &model.BalanceAdjustment{
		CustomerID:  id,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		rlog.Error("failed to credit balance", "error", err, "customer_id", id)
		return nil, apiError(err)
	}

	return &BalanceTransactionResponse{
		Transaction: *result,
	}, nil
}

//encore:api public path=/v1/rewards/customers/:id/debits method=POST tag:idempotency
func (s *Service) DebitBalance(ctx context.Context, id string, req *AdjustBalanceRequest) (*BalanceTransactionResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	result, err := s.business.DebitBalance(ctx, &model.BalanceAdjustment{
		CustomerID:  id,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		rlog.Error("failed to debit balance", "error", err, "customer_id", id)
		return nil, apiError(err)
	}

	return &BalanceTransactionResponse{
		Transaction: *result,
	}, nil
}

// Validate implements validation for AdjustBalanceRequest using go-playground/validator
func (r *AdjustBalanceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
