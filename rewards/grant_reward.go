package rewards

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/rewards/model"
	rewardworkflow "encore.app/rewards/workflow"
)

type GrantRewardRequest struct {
	GrantID        string         `json:"grant_id" validate:"required,max=100"`
	TenantID       string         `json:"tenant_id,omitempty"`
	UserID         string         `json:"user_id,omitempty"`
	CouponName     string         `json:"coupon_name" validate:"required"`
	PercentOff     *float64       `json:"percent_off,omitempty" validate:"omitempty,gt=0,lte=100"`
	AmountOffCents *int64         `json:"amount_off_cents,omitempty" validate:"omitempty,gt=0"`
	Currency       string         `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Duration       string         `json:"duration" validate:"required,oneof=once repeating forever"`
	DurationMonths *int64         `json:"duration_in_months,omitempty" validate:"omitempty,gt=0"`
	Code           string         `json:"code" validate:"required,alphanum,max=200"`
	MaxRedemptions *int64         `json:"max_redemptions,omitempty" validate:"omitempty,gt=0"`
	CustomerID     string         `json:"customer_id,omitempty"`
	CreditCents    int64          `json:"credit_cents,omitempty" validate:"omitempty,gt=0"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

type GrantRewardResponse struct {
	GrantID    string `json:"grant_id"`
	WorkflowID string `json:"workflow_id"`
}

// GrantReward starts the asynchronous provisioning of a full reward: coupon,
// promotion code and optional balance credit. The workflow ID is derived from
// the grant ID so resubmitting the same grant joins the running provisioning
// instead of starting a second one.
//
//encore:api public path=/v1/rewards/grants method=POST tag:idempotency
func (s *Service) GrantReward(ctx context.Context, req *GrantRewardRequest) (*GrantRewardResponse, error) {
	workflowID := fmt.Sprintf("reward-grant-%s", req.GrantID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := rewardworkflow.GrantRewardParams{
		GrantID:        req.GrantID,
		TenantID:       req.TenantID,
		UserID:         req.UserID,
		CouponName:     req.CouponName,
		PercentOff:     req.PercentOff,
		AmountOffCents: req.AmountOffCents,
		Currency:       req.Currency,
		Duration:       req.Duration,
		DurationMonths: req.DurationMonths,
		Code:           req.Code,
		MaxRedemptions: req.MaxRedemptions,
		CustomerID:     req.CustomerID,
		CreditCents:    req.CreditCents,
		Metadata:       req.Metadata,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, rewardworkflow.GrantReward, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("grant workflow already started", "grant_id", req.GrantID, "workflow_id", workflowID)
			return &GrantRewardResponse{GrantID: req.GrantID, WorkflowID: workflowID}, nil
		}
		rlog.Error("failed to start grant workflow", "grant_id", req.GrantID, "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start reward grant"}
	}

	return &GrantRewardResponse{GrantID: req.GrantID, WorkflowID: workflowID}, nil
}

// Validate implements validation for GrantRewardRequest using go-playground/validator
func (r *GrantRewardRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.PercentOff == nil && r.AmountOffCents == nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "one of percent_off or amount_off_cents is required"}
	}
	if r.PercentOff != nil && r.AmountOffCents != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "percent_off and amount_off_cents are mutually exclusive"}
	}
	if r.AmountOffCents != nil && r.Currency == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "currency is required with amount_off_cents"}
	}
	if r.Duration == string(model.DurationRepeating) && r.DurationMonths == nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "duration_in_months is required for repeating coupons"}
	}
	if r.CreditCents > 0 {
		if r.CustomerID == "" {
			return &errs.Error{Code: errs.InvalidArgument, Message: "customer_id is required with credit_cents"}
		}
		if r.Currency == "" {
			return &errs.Error{Code: errs.InvalidArgument, Message: "currency is required with credit_cents"}
		}
	}

	return nil
}
