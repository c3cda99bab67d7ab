package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/service"
)

type PaymentLinkServicer interface {
	Create(ctx context.Context, args service.CreatePaymentLinkArgs) (*service.CreatedPaymentLink, error)
	Cancel(ctx context.Context, requesterID, id string) (*domain.Transaction, error)
	Expire(ctx context.Context, requesterID, id string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, requesterID, ownerID string) ([]domain.Transaction, error)
}

type WebhookServicer interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type AccountServicer interface {
	CreateConnectedAccount(ctx context.Context, args service.CreateConnectedAccountArgs) (*domain.User, error)
	CreateOnboardingLink(ctx context.Context, userID, refreshURL, returnURL string) (string, error)
	GetAccountStatus(ctx context.Context, userID string) (*domain.AccountStatus, error)
	GetBalance(ctx context.Context, userID string) (*domain.Balance, error)
	ListProcessorPayouts(ctx context.Context, userID string, limit int64) ([]domain.ProcessorPayout, error)
	DeleteAccount(ctx context.Context, userID string, ban bool, reason string) error
	RegisterPushToken(ctx context.Context, userID, token, platform string) error
	RemovePushToken(ctx context.Context, userID, token string) error
}

type PayoutServicer interface {
	ListPayouts(ctx context.Context, userID string) ([]domain.Payout, error)
}
