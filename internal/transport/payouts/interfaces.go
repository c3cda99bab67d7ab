package payouts

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
)

type Servicer interface {
	RunAutoPayouts(ctx context.Context) (int, error)
}
