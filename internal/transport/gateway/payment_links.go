package gateway

import (
	"context"
	"strings"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
)

// CreatePaymentLink создает одноразовую платежную ссылку с переводом средств на connected account.
// Аккаунт должен принимать платежи, иначе вернется domain.ErrAccountNotReady.
func (g *Gateway) CreatePaymentLink(ctx context.Context, spec domain.PaymentLinkSpec) (*domain.PaymentLink, error) {
	status, err := g.GetAccountStatus(ctx, spec.DestinationAccountID)
	if err != nil {
		return nil, err
	}
	if !status.ChargesEnabled {
		return nil, domain.ErrAccountNotReady
	}

	currency := strings.ToLower(domain.NormalizeCurrency(spec.Currency))

	price, err := g.client.V1Prices.Create(ctx, &stripe.PriceCreateParams{
		Currency:   stripe.String(currency),
		UnitAmount: stripe.Int64(spec.Amount),
		ProductData: &stripe.PriceCreateProductDataParams{
			Name: stripe.String(spec.Description),
		},
	})
	if err != nil {
		return nil, upstreamErr("create price", err)
	}

	params := &stripe.PaymentLinkCreateParams{
		LineItems: []*stripe.PaymentLinkCreateLineItemParams{
			{
				Price:    stripe.String(price.ID),
				Quantity: stripe.Int64(1),
			},
		},
		Restrictions: &stripe.PaymentLinkCreateRestrictionsParams{
			CompletedSessions: &stripe.PaymentLinkCreateRestrictionsCompletedSessionsParams{
				Limit: stripe.Int64(completedSessionsLimit),
			},
		},
		TransferData: &stripe.PaymentLinkCreateTransferDataParams{
			Destination: stripe.String(spec.DestinationAccountID),
		},
		PaymentIntentData: &stripe.PaymentLinkCreatePaymentIntentDataParams{
			Description: stripe.String(spec.Description),
			Metadata:    paymentIntentMetadata(spec.Metadata),
		},
		Params: stripe.Params{
			Metadata: spec.Metadata,
		},
	}
	for _, methodType := range spec.PaymentMethodTypes {
		params.PaymentMethodTypes = append(params.PaymentMethodTypes, stripe.String(methodType))
	}

	link, err := g.client.V1PaymentLinks.Create(ctx, params)
	if err != nil {
		return nil, upstreamErr("create payment link", err)
	}

	g.l.WithFields(logrus.Fields{
		"paymentLinkID": link.ID,
		"accountID":     spec.DestinationAccountID,
		"amount":        spec.Amount,
		"currency":      currency,
	}).Info("payment link created")

	return &domain.PaymentLink{ID: link.ID, URL: link.URL}, nil
}

// CancelPaymentLink отмена ссылки мерчантом. Для процессора это та же деактивация, история ссылки сохраняется.
func (g *Gateway) CancelPaymentLink(ctx context.Context, paymentLinkID string) error {
	return g.DeactivatePaymentLink(ctx, paymentLinkID)
}

// DeactivatePaymentLink выключает ссылку, после чего оплата по ней невозможна.
func (g *Gateway) DeactivatePaymentLink(ctx context.Context, paymentLinkID string) error {
	_, err := g.client.V1PaymentLinks.Update(ctx, paymentLinkID, &stripe.PaymentLinkUpdateParams{
		Active: stripe.Bool(false),
	})
	if err != nil {
		return upstreamErr("deactivate payment link", err)
	}
	return nil
}

// paymentIntentMetadata метаданные ссылки плюс метка источника, по которой диспетчер вебхуков
// не создает дубль транзакции для payment intent этой ссылки.
func paymentIntentMetadata(metadata map[string]string) map[string]string {
	result := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		result[k] = v
	}
	result[domain.MetadataSource] = domain.SourcePaymentLink
	return result
}
