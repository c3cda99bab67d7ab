package repoargs

import (
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	ID                string
	UserID            string
	Amount            int64
	Currency          string
	Description       string
	Status            domain.TransactionStatus
	PaymentIntentID   string
	PaymentLinkID     string
	PaymentLinkURL    string
	CustomerName      string
	CustomerEmail     string
	PaymentMethodType string
	CardBrand         string
	CardLast4         string
	Notes             string
	Metadata          map[string]any
	ExpiresAt         *time.Time
	CompletedAt       *time.Time
}

// CompleteTransaction данные, записываемые при переводе транзакции в completed. Пустые строки не затирают
// уже сохраненные значения.
type CompleteTransaction struct {
	PaymentIntentID   string
	CheckoutSessionID string
	CustomerName      string
	CustomerEmail     string
	PaymentMethodType string
	CardBrand         string
	CardLast4         string
	CompletedAt       time.Time
}

type FailTransaction struct {
	Reason       string
	AttemptCount int64
	FailedAt     time.Time
}

// CurrencyAmount сумма в минорных единицах, сгруппированная по валюте.
type CurrencyAmount struct {
	Currency string
	Amount   int64
}

// CurrencyDecimal сумма в основных единицах, сгруппированная по валюте.
type CurrencyDecimal struct {
	Currency string
	Amount   decimal.Decimal
}
