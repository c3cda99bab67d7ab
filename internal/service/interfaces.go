package service

import (
	"context"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	CreateIfNotExists(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, bool, error)
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	FindByPaymentLinkID(ctx context.Context, paymentLinkID string) (*domain.Transaction, error)
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Transaction, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
	MarkCompletedByPaymentIntentID(
		ctx context.Context,
		paymentIntentID string,
		args repoargs.CompleteTransaction,
	) (*domain.Transaction, error)
	MarkCompletedByPaymentLinkID(
		ctx context.Context,
		paymentLinkID string,
		args repoargs.CompleteTransaction,
	) (*domain.Transaction, error)
	MarkFailedByPaymentIntentID(
		ctx context.Context,
		paymentIntentID string,
		args repoargs.FailTransaction,
	) (*domain.Transaction, error)
	MarkFailedByPaymentLinkID(
		ctx context.Context,
		paymentLinkID string,
		args repoargs.FailTransaction,
	) (*domain.Transaction, error)
	MarkCancelled(ctx context.Context, id string) (*domain.Transaction, error)
	SumCompletedByUser(ctx context.Context, userID string) ([]repoargs.CurrencyAmount, error)
}

type UserRepository interface {
	Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByProcessorAccountID(ctx context.Context, accountID string) (*domain.User, error)
	UpdateProcessorAccount(ctx context.Context, args repoargs.UpdateProcessorAccount) (*domain.User, error)
	MarkOnboardingCompleted(ctx context.Context, userID string) (bool, error)
	ListPayoutEligible(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
	CreateTombstone(ctx context.Context, emailHash, reason string) error
	IsEmailBanned(ctx context.Context, emailHash string) (bool, error)
}

type PayoutRepository interface {
	GetRule(ctx context.Context) (*domain.PayoutRule, error)
	Create(ctx context.Context, args repoargs.CreatePayout) (*domain.Payout, error)
	MarkCompleted(ctx context.Context, id string, completedAt, nextPayoutAt time.Time) (*domain.Payout, error)
	LastCompleted(ctx context.Context, userID, currency string) (*domain.Payout, error)
	SumByUser(ctx context.Context, userID string) ([]repoargs.CurrencyDecimal, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Payout, error)
}

type PushTokenRepository interface {
	Upsert(ctx context.Context, token domain.PushToken) error
	Delete(ctx context.Context, userID, token string) error
	DeleteByToken(ctx context.Context, token string) error
	ListByUserID(ctx context.Context, userID string) ([]domain.PushToken, error)
}

type WebhookEventRepository interface {
	Register(ctx context.Context, args repoargs.RegisterWebhookEvent) (*domain.WebhookEvent, error)
	MarkProcessed(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, reason string) error
}

// PaymentGateway операции платежного процессора.
type PaymentGateway interface {
	CreateOrUpdateConnectedAccount(ctx context.Context, profile domain.ConnectedAccountProfile) (string, error)
	CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	GetAccountStatus(ctx context.Context, accountID string) (*domain.AccountStatus, error)
	CreatePaymentLink(ctx context.Context, spec domain.PaymentLinkSpec) (*domain.PaymentLink, error)
	CancelPaymentLink(ctx context.Context, paymentLinkID string) error
	DeactivatePaymentLink(ctx context.Context, paymentLinkID string) error
	GetBalance(ctx context.Context, accountID string) (*domain.Balance, error)
	ListPayouts(ctx context.Context, accountID string, limit int64) ([]domain.ProcessorPayout, error)
	GetPaymentMethod(ctx context.Context, id string) (*domain.PaymentMethodDescriptor, error)
	GetPaymentIntentOutcome(ctx context.Context, id string) (*domain.PaymentIntentOutcome, error)
	VerifyAndDecodeWebhook(payload []byte, signature string) (*domain.ProcessorEvent, error)
}

// Notifier ставит уведомление в очередь доставки. Не блокирует и не возвращает ошибок.
type Notifier interface {
	Enqueue(n domain.Notification)
}

type AccountStatusCache interface {
	Get(ctx context.Context, key string) (*domain.AccountStatus, bool)
	Set(ctx context.Context, key string, value *domain.AccountStatus)
	Delete(ctx context.Context, key string)
}
