package notifier

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/transport/push/client"
)

type PushClient interface {
	Send(ctx context.Context, messages []client.Message) ([]error, error)
}

type Servicer interface {
	PushTokens(ctx context.Context, userID string) ([]domain.PushToken, error)
	ForgetPushToken(ctx context.Context, token string) error
}
