package pgrepo

import (
	"context"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type PushTokenRepository struct {
	conn uow.DBTX
}

func NewPushTokenRepository(conn uow.DBTX) *PushTokenRepository {
	return &PushTokenRepository{conn: conn}
}

// Upsert сохраняет токен. Токен, ранее принадлежавший другому пользователю, переходит текущему.
func (r *PushTokenRepository) Upsert(ctx context.Context, token domain.PushToken) error {
	_, err := r.conn.Exec(ctx,
		`INSERT INTO push_tokens (token, user_id, platform) VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform`,
		token.Token, token.UserID, token.Platform,
	)
	if err != nil {
		return convertErr(err, "saving push token of user `%s`", token.UserID)
	}
	return nil
}

func (r *PushTokenRepository) Delete(ctx context.Context, userID, token string) error {
	if _, err := r.conn.Exec(ctx, "DELETE FROM push_tokens WHERE user_id = $1 AND token = $2", userID, token); err != nil {
		return convertErr(err, "deleting push token of user `%s`", userID)
	}
	return nil
}

func (r *PushTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.conn.Exec(ctx, "DELETE FROM push_tokens WHERE token = $1", token); err != nil {
		return convertErr(err, "deleting push token")
	}
	return nil
}

func (r *PushTokenRepository) ListByUserID(ctx context.Context, userID string) ([]domain.PushToken, error) {
	rows, err := r.conn.Query(ctx,
		"SELECT token, user_id, platform, created_at FROM push_tokens WHERE user_id = $1 ORDER BY created_at",
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "listing push tokens of user `%s`", userID)
	}
	tokens, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PushToken, error) {
		var t domain.PushToken
		scanErr := row.Scan(&t.Token, &t.UserID, &t.Platform, &t.CreatedAt)
		return t, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting push tokens of user `%s`", userID)
	}
	return tokens, nil
}
