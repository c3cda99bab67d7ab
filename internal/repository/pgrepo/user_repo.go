package pgrepo

import (
	"context"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, member_since, email, full_name, COALESCE(apple_id, ''),
	COALESCE(google_id, ''), COALESCE(processor_account_id, ''), country, default_currency, onboarding_completed,
	banned, ban_reason`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func (r *UserRepository) Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	currency := args.DefaultCurrency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	row := r.conn.QueryRow(ctx,
		`INSERT INTO users (id, email, full_name, apple_id, google_id, country, default_currency)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7) RETURNING `+userColumns,
		args.ID, args.Email, args.FullName, args.AppleID, args.GoogleID, args.Country, currency,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", args.ID)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(r.conn.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		return nil, convertErr(err, "finding user `%s`", id)
	}
	return u, nil
}

func (r *UserRepository) FindByProcessorAccountID(ctx context.Context, accountID string) (*domain.User, error) {
	u, err := scanUser(r.conn.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE processor_account_id = $1", accountID))
	if err != nil {
		return nil, convertErr(err, "finding user by processor account `%s`", accountID)
	}
	return u, nil
}

func (r *UserRepository) UpdateProcessorAccount(
	ctx context.Context,
	args repoargs.UpdateProcessorAccount,
) (*domain.User, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE users SET processor_account_id = $2,
			country = COALESCE(NULLIF($3, ''), country),
			default_currency = COALESCE(NULLIF($4, ''), default_currency),
			updated_at = NOW()
		WHERE id = $1 RETURNING `+userColumns,
		args.UserID, args.AccountID, args.Country, args.DefaultCurrency,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "updating processor account of user `%s`", args.UserID)
	}
	return u, nil
}

// MarkOnboardingCompleted выставляет флаг завершенного онбординга. Возвращает true только если флаг был
// изменен этим вызовом.
func (r *UserRepository) MarkOnboardingCompleted(ctx context.Context, userID string) (bool, error) {
	tag, err := r.conn.Exec(ctx,
		`UPDATE users SET onboarding_completed = TRUE, updated_at = NOW()
		WHERE id = $1 AND onboarding_completed = FALSE`,
		userID,
	)
	if err != nil {
		return false, convertErr(err, "marking onboarding completed for user `%s`", userID)
	}
	return tag.RowsAffected() > 0, nil
}

// ListPayoutEligible пользователи, которым возможны автоматические выплаты.
func (r *UserRepository) ListPayoutEligible(ctx context.Context) ([]domain.User, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+userColumns+` FROM users
		WHERE onboarding_completed AND NOT banned AND processor_account_id IS NOT NULL ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing payout eligible users")
	}
	users, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		u, scanErr := scanUser(row)
		if scanErr != nil {
			return domain.User{}, scanErr
		}
		return *u, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting payout eligible users")
	}
	return users, nil
}

// Delete удаляет пользователя. Транзакции, выплаты и push токены удаляются каскадно.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return convertErr(err, "deleting user `%s`", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting user `%s`", id)
	}
	return nil
}

func (r *UserRepository) CreateTombstone(ctx context.Context, emailHash, reason string) error {
	_, err := r.conn.Exec(ctx,
		`INSERT INTO banned_emails (email_hash, reason) VALUES ($1, $2)
		ON CONFLICT (email_hash) DO UPDATE SET reason = EXCLUDED.reason`,
		emailHash, reason,
	)
	if err != nil {
		return convertErr(err, "creating email tombstone")
	}
	return nil
}

func (r *UserRepository) IsEmailBanned(ctx context.Context, emailHash string) (bool, error) {
	var banned bool
	err := r.conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM banned_emails WHERE email_hash = $1)", emailHash).Scan(&banned)
	if err != nil {
		return false, convertErr(err, "checking email tombstone")
	}
	return banned, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.MemberSince, &u.Email, &u.FullName, &u.AppleID, &u.GoogleID,
		&u.ProcessorAccountID, &u.Country, &u.DefaultCurrency, &u.OnboardingCompleted, &u.Banned, &u.BanReason,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &u, nil
}
