// Package gateway адаптер платежного процессора (Stripe connected accounts, платежные ссылки, вебхуки).
package gateway

import (
	"context"
	"errors"
	"net/url"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
)

const (
	accountTypeExpress     = "express"
	accountLinkOnboarding  = "account_onboarding"
	paymentMethodCard      = "card"
	completedSessionsLimit = 1
)

// Config явная конфигурация адаптера. Backends нужен только в тестах для подмены адреса API.
type Config struct {
	SecretKey            string
	WebhookSecret        string
	OnboardingRefreshURL string
	OnboardingReturnURL  string
	BusinessURL          string
	Backends             *stripe.Backends
}

type Gateway struct {
	client *stripe.Client
	cfg    Config
	l      *logrus.Entry
}

func New(cfg Config, l *logrus.Logger) *Gateway {
	var opts []stripe.ClientOption
	if cfg.Backends != nil {
		opts = append(opts, stripe.WithBackends(cfg.Backends))
	}

	return &Gateway{
		client: stripe.NewClient(cfg.SecretKey, opts...),
		cfg:    cfg,
		l: l.WithFields(logrus.Fields{
			"component": "gateway",
			"module":    "stripe",
		}),
	}
}

// GetAccountStatus возвращает состояние connected account.
func (g *Gateway) GetAccountStatus(ctx context.Context, accountID string) (*domain.AccountStatus, error) {
	account, err := g.client.V1Accounts.GetByID(ctx, accountID, &stripe.AccountRetrieveParams{})
	if err != nil {
		return nil, upstreamErr("get account", err)
	}
	return convertAccount(account), nil
}

// GetPaymentMethod возвращает тип и реквизиты карты способа оплаты.
func (g *Gateway) GetPaymentMethod(ctx context.Context, id string) (*domain.PaymentMethodDescriptor, error) {
	pm, err := g.client.V1PaymentMethods.Retrieve(ctx, id, &stripe.PaymentMethodRetrieveParams{})
	if err != nil {
		return nil, upstreamErr("get payment method", err)
	}
	descriptor := convertPaymentMethod(pm)
	return &descriptor, nil
}

// GetPaymentIntentOutcome payment intent с развернутым способом оплаты. Инвойсы не несут ни реквизитов
// карты, ни причины отказа, они есть только у payment intent.
func (g *Gateway) GetPaymentIntentOutcome(ctx context.Context, id string) (*domain.PaymentIntentOutcome, error) {
	params := &stripe.PaymentIntentRetrieveParams{}
	params.AddExpand("payment_method")

	pi, err := g.client.V1PaymentIntents.Retrieve(ctx, id, params)
	if err != nil {
		return nil, upstreamErr("get payment intent", err)
	}

	outcome := &domain.PaymentIntentOutcome{ID: pi.ID}
	if pi.PaymentMethod != nil {
		outcome.PaymentMethod = convertPaymentMethod(pi.PaymentMethod)
	}
	if pi.LastPaymentError != nil {
		outcome.FailureMessage = pi.LastPaymentError.Msg
	}
	return outcome, nil
}

func convertPaymentMethod(pm *stripe.PaymentMethod) domain.PaymentMethodDescriptor {
	descriptor := domain.PaymentMethodDescriptor{Type: string(pm.Type)}
	if pm.Card != nil {
		descriptor.CardBrand = string(pm.Card.Brand)
		descriptor.CardLast4 = pm.Card.Last4
	}
	return descriptor
}

func convertAccount(account *stripe.Account) *domain.AccountStatus {
	status := &domain.AccountStatus{
		AccountID:        account.ID,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
	}
	if account.Requirements != nil {
		status.Requirements = domain.AccountRequirements{
			CurrentlyDue:   account.Requirements.CurrentlyDue,
			PastDue:        account.Requirements.PastDue,
			EventuallyDue:  account.Requirements.EventuallyDue,
			DisabledReason: string(account.Requirements.DisabledReason),
		}
	}
	return status
}

// upstreamErr оборачивает ошибку SDK в domain.UpstreamError. Текст ошибки процессора пробрасывается клиенту
// для всех типов кроме api_error.
func upstreamErr(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		var message string
		if stripeErr.Type != stripe.ErrorTypeAPI {
			message = stripeErr.Msg
		}
		return domain.NewUpstreamError(op, message, err)
	}
	return domain.NewUpstreamError(op, "", err)
}

// isHTTPSURL абсолютный https адрес с хостом.
func isHTTPSURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}
