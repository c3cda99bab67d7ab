package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePayout struct {
	ID          string
	UserID      string
	Amount      decimal.Decimal
	Currency    string
	Description string
	ScheduledAt time.Time
}

type RegisterWebhookEvent struct {
	ID      string
	Type    string
	Payload []byte
}
