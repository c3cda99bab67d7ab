package pgrepo

import (
	"context"
	"errors"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, created_at, updated_at, user_id, amount, currency, description, status::text,
	COALESCE(payment_intent_id, ''), COALESCE(payment_link_id, ''), COALESCE(checkout_session_id, ''),
	payment_link_url, customer_name, customer_email, payment_method_type, card_brand, card_last4, notes,
	failure_reason, attempt_count, metadata, expires_at, completed_at, failed_at`

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

const transactionInsertSQL = `INSERT INTO transactions (id, user_id, amount, currency, description, status,
	payment_intent_id, payment_link_id, payment_link_url, customer_name, customer_email, payment_method_type,
	card_brand, card_last4, notes, metadata, expires_at, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

func transactionInsertArgs(args repoargs.CreateTransaction) []any {
	metadata := args.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	status := args.Status
	if status == "" {
		status = domain.TransactionStatusPending
	}
	return []any{
		args.ID, args.UserID, args.Amount, args.Currency, args.Description, string(status),
		args.PaymentIntentID, args.PaymentLinkID, args.PaymentLinkURL, args.CustomerName, args.CustomerEmail,
		args.PaymentMethodType, args.CardBrand, args.CardLast4, args.Notes, metadata, args.ExpiresAt,
		args.CompletedAt,
	}
}

func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx, transactionInsertSQL+" RETURNING "+transactionColumns, transactionInsertArgs(args)...)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction `%s`", args.ID)
	}
	return t, nil
}

// CreateIfNotExists создает транзакцию, если записи с таким id или идентификаторами процессора еще нет.
// Второе возвращаемое значение сообщает, была ли запись создана.
func (r *TransactionRepository) CreateIfNotExists(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, bool, error) {
	row := r.conn.QueryRow(ctx,
		transactionInsertSQL+" ON CONFLICT DO NOTHING RETURNING "+transactionColumns,
		transactionInsertArgs(args)...,
	)
	t, err := scanTransaction(row)
	if err == nil {
		return t, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, convertErr(err, "creating transaction `%s` if not exists", args.ID)
	}

	existing, findErr := r.FindByID(ctx, args.ID)
	if errors.Is(findErr, domain.ErrRecordNotFound) && args.PaymentIntentID != "" {
		existing, findErr = r.FindByPaymentIntentID(ctx, args.PaymentIntentID)
	}
	if findErr != nil {
		return nil, false, findErr
	}
	return existing, false, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by id `%s`", id)
	}
	return t, nil
}

func (r *TransactionRepository) FindByPaymentLinkID(ctx context.Context, paymentLinkID string) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE payment_link_id = $1", paymentLinkID)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by payment link `%s`", paymentLinkID)
	}
	return t, nil
}

func (r *TransactionRepository) FindByPaymentIntentID(
	ctx context.Context,
	paymentIntentID string,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE payment_intent_id = $1", paymentIntentID)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by payment intent `%s`", paymentIntentID)
	}
	return t, nil
}

// ListByUserID возвращает транзакции пользователя, отсортированные по дате создания по убыванию.
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	rows, err := r.conn.Query(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, convertErr(err, "listing transactions of user `%s`", userID)
	}
	transactions, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		t, scanErr := scanTransaction(row)
		if scanErr != nil {
			return domain.Transaction{}, scanErr
		}
		return *t, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting transactions of user `%s`", userID)
	}
	return transactions, nil
}

const transactionCompleteSet = `SET status = 'completed',
	payment_intent_id = COALESCE(NULLIF($2, ''), payment_intent_id),
	checkout_session_id = COALESCE(NULLIF($3, ''), checkout_session_id),
	customer_name = COALESCE(NULLIF($4, ''), customer_name),
	customer_email = COALESCE(NULLIF($5, ''), customer_email),
	payment_method_type = COALESCE(NULLIF($6, ''), payment_method_type),
	card_brand = COALESCE(NULLIF($7, ''), card_brand),
	card_last4 = COALESCE(NULLIF($8, ''), card_last4),
	completed_at = $9,
	updated_at = NOW()`

func completeArgs(correlation string, args repoargs.CompleteTransaction) []any {
	return []any{
		correlation, args.PaymentIntentID, args.CheckoutSessionID, args.CustomerName, args.CustomerEmail,
		args.PaymentMethodType, args.CardBrand, args.CardLast4, args.CompletedAt,
	}
}

// MarkCompletedByPaymentIntentID безусловно переводит транзакцию в completed.
func (r *TransactionRepository) MarkCompletedByPaymentIntentID(
	ctx context.Context,
	paymentIntentID string,
	args repoargs.CompleteTransaction,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		"UPDATE transactions "+transactionCompleteSet+" WHERE payment_intent_id = $1 RETURNING "+transactionColumns,
		completeArgs(paymentIntentID, args)...,
	)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "completing transaction by payment intent `%s`", paymentIntentID)
	}
	return t, nil
}

// MarkCompletedByPaymentLinkID безусловно переводит транзакцию в completed.
func (r *TransactionRepository) MarkCompletedByPaymentLinkID(
	ctx context.Context,
	paymentLinkID string,
	args repoargs.CompleteTransaction,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		"UPDATE transactions "+transactionCompleteSet+" WHERE payment_link_id = $1 RETURNING "+transactionColumns,
		completeArgs(paymentLinkID, args)...,
	)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "completing transaction by payment link `%s`", paymentLinkID)
	}
	return t, nil
}

const transactionFailSet = `SET status = 'failed',
	failure_reason = $2,
	attempt_count = GREATEST(attempt_count, $3),
	failed_at = $4,
	updated_at = NOW()`

func (r *TransactionRepository) MarkFailedByPaymentIntentID(
	ctx context.Context,
	paymentIntentID string,
	args repoargs.FailTransaction,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		"UPDATE transactions "+transactionFailSet+" WHERE payment_intent_id = $1 RETURNING "+transactionColumns,
		paymentIntentID, args.Reason, args.AttemptCount, args.FailedAt,
	)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "failing transaction by payment intent `%s`", paymentIntentID)
	}
	return t, nil
}

func (r *TransactionRepository) MarkFailedByPaymentLinkID(
	ctx context.Context,
	paymentLinkID string,
	args repoargs.FailTransaction,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		"UPDATE transactions "+transactionFailSet+" WHERE payment_link_id = $1 RETURNING "+transactionColumns,
		paymentLinkID, args.Reason, args.AttemptCount, args.FailedAt,
	)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "failing transaction by payment link `%s`", paymentLinkID)
	}
	return t, nil
}

// MarkCancelled переводит pending транзакцию в cancelled. Если транзакция уже не pending,
// вернется domain.ErrRecordNotFound.
func (r *TransactionRepository) MarkCancelled(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE transactions SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'pending' RETURNING `+transactionColumns,
		id,
	)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "cancelling transaction `%s`", id)
	}
	return t, nil
}

// SumCompletedByUser суммы завершенных транзакций пользователя по валютам в минорных единицах.
func (r *TransactionRepository) SumCompletedByUser(
	ctx context.Context,
	userID string,
) ([]repoargs.CurrencyAmount, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT currency, SUM(amount)::bigint FROM transactions
		WHERE user_id = $1 AND status = 'completed' GROUP BY currency ORDER BY currency`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "summing completed transactions of user `%s`", userID)
	}
	sums, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repoargs.CurrencyAmount, error) {
		var sum repoargs.CurrencyAmount
		scanErr := row.Scan(&sum.Currency, &sum.Amount)
		return sum, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting completed sums of user `%s`", userID)
	}
	return sums, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var status string
	var expiresAt, completedAt, failedAt *time.Time

	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.UserID, &t.Amount, &t.Currency, &t.Description, &status,
		&t.PaymentIntentID, &t.PaymentLinkID, &t.CheckoutSessionID,
		&t.PaymentLinkURL, &t.CustomerName, &t.CustomerEmail, &t.PaymentMethodType, &t.CardBrand, &t.CardLast4,
		&t.Notes, &t.FailureReason, &t.AttemptCount, &t.Metadata, &expiresAt, &completedAt, &failedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	t.Status = domain.TransactionStatus(status)
	t.ExpiresAt = expiresAt
	t.CompletedAt = completedAt
	t.FailedAt = failedAt
	return &t, nil
}
