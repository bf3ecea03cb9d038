package stripegateway

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v78"

	"encore.app/rewards/model"
)

// BalanceTransactionParams describes a customer balance adjustment.
// AmountCents carries the provider's sign convention: negative reduces what
// the customer owes (a credit), positive increases it (a debit).
type BalanceTransactionParams struct {
	CustomerID     string
	AmountCents    int64
	Currency       string
	Description    string
	Metadata       map[string]string
	IdempotencyKey string
}

func (g *gateway) CreateBalanceTransaction(ctx context.Context, params BalanceTransactionParams) (*model.BalanceTransaction, error) {
	p := &stripe.CustomerBalanceTransactionParams{
		Customer: stripe.String(params.CustomerID),
		Amount:   stripe.Int64(params.AmountCents),
		Currency: stripe.String(params.Currency),
	}
	p.Context = ctx
	p.IdempotencyKey = stripe.String(params.IdempotencyKey)

	if params.Description != "" {
		p.Description = stripe.String(params.Description)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	txn, err := g.api.CustomerBalanceTransactions.New(p)
	if err != nil {
		return nil, classifyError(err, params.IdempotencyKey)
	}

	return convertBalanceTransaction(txn, params.IdempotencyKey), nil
}

func convertBalanceTransaction(txn *stripe.CustomerBalanceTransaction, idempotencyKey string) *model.BalanceTransaction {
	kind := model.BalanceDebit
	if txn.Amount < 0 {
		kind = model.BalanceCredit
	}

	out := &model.BalanceTransaction{
		ID:                 txn.ID,
		Kind:               kind,
		AmountCents:        txn.Amount,
		Currency:           string(txn.Currency),
		Description:        txn.Description,
		EndingBalanceCents: txn.EndingBalance,
		Metadata:           txn.Metadata,
		IdempotencyKey:     idempotencyKey,
		CreatedAt:          time.Unix(txn.Created, 0).UTC(),
	}

	if txn.Customer != nil {
		out.CustomerID = txn.Customer.ID
	}

	return out
}
