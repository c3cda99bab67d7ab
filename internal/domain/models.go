package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                  string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	MemberSince         time.Time
	Email               string
	FullName            string
	AppleID             string
	GoogleID            string
	ProcessorAccountID  string
	Country             string
	DefaultCurrency     string
	OnboardingCompleted bool
	Banned              bool
	BanReason           string
}

// HasProcessorAccount сообщает, привязан ли к пользователю connected account процессора.
func (u *User) HasProcessorAccount() bool {
	return u.ProcessorAccountID != ""
}

// Transaction запись леджера о платеже в пользу мерчанта. Сумма хранится в минорных единицах валюты.
type Transaction struct {
	ID                string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	UserID            string
	Amount            int64
	Currency          string
	Description       string
	Status            TransactionStatus
	PaymentIntentID   string
	PaymentLinkID     string
	CheckoutSessionID string
	PaymentLinkURL    string
	CustomerName      string
	CustomerEmail     string
	PaymentMethodType string
	CardBrand         string
	CardLast4         string
	Notes             string
	FailureReason     string
	AttemptCount      int64
	Metadata          map[string]any
	ExpiresAt         *time.Time
	CompletedAt       *time.Time
	FailedAt          *time.Time
}

// MajorAmount переводит сумму из минорных единиц в основные (2500 -> 25.00).
func (t *Transaction) MajorAmount() decimal.Decimal {
	return MajorUnits(t.Amount)
}

// MajorUnits переводит сумму в минорных единицах в основные.
func MajorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -minorUnitsExp)
}

// PayoutRule глобальные правила автоматических выплат. Существует в единственном экземпляре.
type PayoutRule struct {
	FirstPayoutDelay time.Duration
	MinPayoutDelay   time.Duration
	MaxPayoutDelay   time.Duration
	MinimumAmount    decimal.Decimal
	UpdatedAt        time.Time
}

type Payout struct {
	ID           string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserID       string
	Amount       decimal.Decimal
	Currency     string
	Status       PayoutStatus
	Description  string
	ScheduledAt  time.Time
	CompletedAt  *time.Time
	NextPayoutAt *time.Time
}

type PushToken struct {
	Token     string
	UserID    string
	Platform  string
	CreatedAt time.Time
}

// Notification push уведомление для всех устройств пользователя.
type Notification struct {
	UserID string
	Title  string
	Body   string
	Data   map[string]string
}

// WebhookEvent журнал принятых событий процессора.
type WebhookEvent struct {
	ID              string
	Type            string
	ReceivedCount   int64
	ProcessedAt     *time.Time
	ProcessingError string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (e *WebhookEvent) IsProcessed() bool {
	return e.ProcessedAt != nil
}
