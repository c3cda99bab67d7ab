package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/paylink/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 30 * time.Second
)

const (
	RouteGroup              = "/api"
	PaymentLinksRoute       = "/payment-links"
	PaymentLinkCancelRoute  = "/payment-links/:id/cancel"
	PaymentLinkExpireRoute  = "/payment-links/:id/expire"
	TransactionsRoute       = "/transactions/:userId"
	AccountsRoute           = "/accounts"
	OnboardingLinkRoute     = "/accounts/onboarding-link"
	AccountStatusRoute      = "/accounts/status"
	AccountBalanceRoute     = "/accounts/balance"
	ProcessorPayoutsRoute   = "/accounts/processor-payouts"
	PayoutsRoute            = "/payouts"
	PushTokensRoute         = "/push-tokens"
	PushTokenRoute          = "/push-tokens/:token"
	PaymentWebhooksRoute    = "/webhooks/payments"
	SignatureHeader         = "Stripe-Signature"
	FallbackSignatureHeader = "signature"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	PaymentLinkService PaymentLinkServicer
	WebhookService     WebhookServicer
	AccountService     AccountServicer
	PayoutService      PayoutServicer
	JWTSecretKey       []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	paymentLinksHandler := NewPaymentLinksHandler(args.PaymentLinkService)
	webhooksHandler := NewWebhooksHandler(args.WebhookService)
	accountsHandler := NewAccountsHandler(args.AccountService)
	payoutsHandler := NewPayoutsHandler(args.PayoutService)

	api := r.Group(RouteGroup)

	// подлинность вебхука подтверждается подписью процессора, а не токеном пользователя
	api.POST(PaymentWebhooksRoute, webhooksHandler.Payments)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(PaymentLinksRoute, paymentLinksHandler.Create)
	api.POST(PaymentLinkCancelRoute, paymentLinksHandler.Cancel)
	api.POST(PaymentLinkExpireRoute, paymentLinksHandler.Expire)
	api.GET(TransactionsRoute, paymentLinksHandler.Transactions)

	api.POST(AccountsRoute, accountsHandler.Create)
	api.DELETE(AccountsRoute, accountsHandler.Delete)
	api.POST(OnboardingLinkRoute, accountsHandler.OnboardingLink)
	api.GET(AccountStatusRoute, accountsHandler.Status)
	api.GET(AccountBalanceRoute, accountsHandler.Balance)
	api.GET(ProcessorPayoutsRoute, accountsHandler.ProcessorPayouts)

	api.GET(PayoutsRoute, payoutsHandler.Index)

	api.POST(PushTokensRoute, accountsHandler.RegisterPushToken)
	api.DELETE(PushTokenRoute, accountsHandler.RemovePushToken)
	return r, nil
}
