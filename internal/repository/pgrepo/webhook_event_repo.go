package pgrepo

import (
	"context"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/pkg/uow"
)

const webhookEventColumns = `id, type, received_count, processed_at, processing_error, created_at, updated_at`

type WebhookEventRepository struct {
	conn uow.DBTX
}

func NewWebhookEventRepository(conn uow.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{conn: conn}
}

// Register фиксирует получение события. Повторная доставка увеличивает received_count и возвращает
// существующую запись, по которой можно понять, обработано ли событие.
func (r *WebhookEventRepository) Register(
	ctx context.Context,
	args repoargs.RegisterWebhookEvent,
) (*domain.WebhookEvent, error) {
	var e domain.WebhookEvent
	err := r.conn.QueryRow(ctx,
		`INSERT INTO webhook_events (id, type, payload) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET received_count = webhook_events.received_count + 1, updated_at = NOW()
		RETURNING `+webhookEventColumns,
		args.ID, args.Type, args.Payload,
	).Scan(&e.ID, &e.Type, &e.ReceivedCount, &e.ProcessedAt, &e.ProcessingError, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "registering webhook event `%s`", args.ID)
	}
	return &e, nil
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, id string) error {
	_, err := r.conn.Exec(ctx,
		`UPDATE webhook_events SET processed_at = NOW(), processing_error = '', updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return convertErr(err, "marking webhook event `%s` processed", id)
	}
	return nil
}

func (r *WebhookEventRepository) MarkFailed(ctx context.Context, id, reason string) error {
	_, err := r.conn.Exec(ctx,
		`UPDATE webhook_events SET processing_error = $2, updated_at = NOW() WHERE id = $1`,
		id, reason,
	)
	if err != nil {
		return convertErr(err, "marking webhook event `%s` failed", id)
	}
	return nil
}
