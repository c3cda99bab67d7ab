package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const payoutColumns = `id::text, created_at, updated_at, user_id, amount, currency, status::text, description,
	scheduled_at, completed_at, next_payout_at`

const day = 24 * time.Hour

type PayoutRepository struct {
	conn uow.DBTX
}

func NewPayoutRepository(conn uow.DBTX) *PayoutRepository {
	return &PayoutRepository{conn: conn}
}

// GetRule возвращает глобальные правила выплат. Строка создается миграцией.
func (r *PayoutRepository) GetRule(ctx context.Context) (*domain.PayoutRule, error) {
	var rule domain.PayoutRule
	var firstDays, minDays, maxDays int64
	err := r.conn.QueryRow(ctx,
		`SELECT first_payout_delay_days, min_payout_delay_days, max_payout_delay_days, minimum_amount, updated_at
		FROM payout_rules WHERE id = 1`,
	).Scan(&firstDays, &minDays, &maxDays, &rule.MinimumAmount, &rule.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting payout rule")
	}
	rule.FirstPayoutDelay = time.Duration(firstDays) * day
	rule.MinPayoutDelay = time.Duration(minDays) * day
	rule.MaxPayoutDelay = time.Duration(maxDays) * day
	return &rule, nil
}

func (r *PayoutRepository) Create(ctx context.Context, args repoargs.CreatePayout) (*domain.Payout, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO payouts (id, user_id, amount, currency, status, description, scheduled_at)
		VALUES ($1::text::uuid, $2, $3, $4, 'pending', $5, $6) RETURNING `+payoutColumns,
		args.ID, args.UserID, args.Amount, args.Currency, args.Description, args.ScheduledAt,
	)
	p, err := scanPayout(row)
	if err != nil {
		return nil, convertErr(err, "creating payout for user `%s`", args.UserID)
	}
	return p, nil
}

func (r *PayoutRepository) MarkCompleted(
	ctx context.Context,
	id string,
	completedAt, nextPayoutAt time.Time,
) (*domain.Payout, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE payouts SET status = 'completed', completed_at = $2, next_payout_at = $3, updated_at = NOW()
		WHERE id = $1::text::uuid RETURNING `+payoutColumns,
		id, completedAt, nextPayoutAt,
	)
	p, err := scanPayout(row)
	if err != nil {
		return nil, convertErr(err, "completing payout `%s`", id)
	}
	return p, nil
}

// LastCompleted последняя завершенная выплата пользователя в валюте currency.
func (r *PayoutRepository) LastCompleted(ctx context.Context, userID, currency string) (*domain.Payout, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+payoutColumns+` FROM payouts
		WHERE user_id = $1 AND currency = $2 AND status = 'completed'
		ORDER BY completed_at DESC LIMIT 1`,
		userID, currency,
	)
	p, err := scanPayout(row)
	if err != nil {
		return nil, convertErr(err, "getting last payout of user `%s`", userID)
	}
	return p, nil
}

// SumByUser суммы выплат (кроме failed) пользователя по валютам.
func (r *PayoutRepository) SumByUser(ctx context.Context, userID string) ([]repoargs.CurrencyDecimal, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT currency, SUM(amount) FROM payouts
		WHERE user_id = $1 AND status <> 'failed' GROUP BY currency ORDER BY currency`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "summing payouts of user `%s`", userID)
	}
	sums, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repoargs.CurrencyDecimal, error) {
		var sum repoargs.CurrencyDecimal
		scanErr := row.Scan(&sum.Currency, &sum.Amount)
		return sum, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting payout sums of user `%s`", userID)
	}
	return sums, nil
}

func (r *PayoutRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Payout, error) {
	rows, err := r.conn.Query(ctx,
		"SELECT "+payoutColumns+" FROM payouts WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, convertErr(err, "listing payouts of user `%s`", userID)
	}
	payouts, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payout, error) {
		p, scanErr := scanPayout(row)
		if scanErr != nil {
			return domain.Payout{}, scanErr
		}
		return *p, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting payouts of user `%s`", userID)
	}
	return payouts, nil
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	var p domain.Payout
	var status string
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.UserID, &p.Amount, &p.Currency, &status, &p.Description,
		&p.ScheduledAt, &p.CompletedAt, &p.NextPayoutAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	p.Status = domain.PayoutStatus(status)
	return &p, nil
}
