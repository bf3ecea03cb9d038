package reward

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/rewards/idempotency"
	"encore.app/rewards/metadata"
	"encore.app/rewards/model"
	"encore.app/rewards/stripegateway"
)

// CreditBalance grants standing credit to a customer. The provider's sign
// convention has credits as negative amounts, so the positive adjustment is
// negated before the call.
func (b *business) CreditBalance(ctx context.Context, adj *model.BalanceAdjustment) (*model.BalanceTransaction, error) {
	return b.adjustBalance(ctx, model.OpBalanceCredit, -adj.AmountCents, adj)
}

// DebitBalance reclaims standing credit from a customer.
func (b *business) DebitBalance(ctx context.Context, adj *model.BalanceAdjustment) (*model.BalanceTransaction, error) {
	return b.adjustBalance(ctx, model.OpBalanceDebit, adj.AmountCents, adj)
}

func (b *business) adjustBalance(ctx context.Context, operation string, signedAmount int64, adj *model.BalanceAdjustment) (*model.BalanceTransaction, error) {
	if adj.AmountCents <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "adjustment amount must be positive"}
	}

	md := metadata.Merge(adj.Metadata)

	params := stripegateway.BalanceTransactionParams{
		CustomerID:  adj.CustomerID,
		AmountCents: signedAmount,
		Currency:    adj.Currency,
		Description: adj.Description,
		Metadata:    md,
	}
	params.IdempotencyKey = idempotency.DeriveKey(operation, params)

	txn, err := b.gateway.CreateBalanceTransaction(ctx, params)
	if err != nil {
		return nil, err
	}

	b.recordOperation(operation, params.IdempotencyKey, txn.ID, adj.Metadata, md)

	return txn, nil
}
