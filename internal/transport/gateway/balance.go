package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// GetBalance баланс connected account по валютам.
func (g *Gateway) GetBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	params := &stripe.BalanceRetrieveParams{}
	params.SetStripeAccount(accountID)

	b, err := g.client.V1Balance.Retrieve(ctx, params)
	if err != nil {
		return nil, upstreamErr("get balance", err)
	}

	balance := &domain.Balance{
		Available: make([]domain.Money, 0, len(b.Available)),
		Pending:   make([]domain.Money, 0, len(b.Pending)),
	}
	for _, a := range b.Available {
		balance.Available = append(balance.Available, domain.Money{
			Amount:   a.Amount,
			Currency: strings.ToUpper(string(a.Currency)),
		})
	}
	for _, p := range b.Pending {
		balance.Pending = append(balance.Pending, domain.Money{
			Amount:   p.Amount,
			Currency: strings.ToUpper(string(p.Currency)),
		})
	}
	return balance, nil
}

// ListPayouts последние limit выплат connected account на его банковский счет.
func (g *Gateway) ListPayouts(ctx context.Context, accountID string, limit int64) ([]domain.ProcessorPayout, error) {
	params := &stripe.PayoutListParams{}
	params.Limit = stripe.Int64(limit)
	params.SetStripeAccount(accountID)

	payouts := make([]domain.ProcessorPayout, 0, limit)
	for p, err := range g.client.V1Payouts.List(ctx, params) {
		if err != nil {
			return nil, upstreamErr("list payouts", err)
		}
		payouts = append(payouts, domain.ProcessorPayout{
			ID:          p.ID,
			Amount:      p.Amount,
			Currency:    strings.ToUpper(string(p.Currency)),
			Status:      string(p.Status),
			ArrivalDate: time.Unix(p.ArrivalDate, 0).UTC(),
			CreatedAt:   time.Unix(p.Created, 0).UTC(),
		})
		if int64(len(payouts)) >= limit {
			break
		}
	}
	return payouts, nil
}
