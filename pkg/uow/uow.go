package uow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

// Pool соединение, способное открывать транзакции. *pgxpool.Pool удовлетворяет интерфейсу.
type Pool interface {
	DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type UnitOfWork struct {
	conn         Pool
	txOptions    pgx.TxOptions
	mu           sync.RWMutex
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(conn Pool) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// SetTxOptions задает параметры транзакций, открываемых в Do. По умолчанию read committed.
func (u *UnitOfWork) SetTxOptions(opts pgx.TxOptions) *UnitOfWork {
	u.txOptions = opts
	return u
}

// Register регистрирует фабрику репозитория. Повторная регистрация имени вернет ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.repositories[name]; ok {
		return fmt.Errorf("%w: %s", ErrRepositoryAlreadyRegistered, name)
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет fn внутри транзакции. Ошибка fn или паника откатывает транзакцию.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, u.txOptions)
	if txErr != nil {
		return fmt.Errorf("[uow] begin transaction: %w", txErr)
	}
	defer func() {
		// rollback после commit вернет pgx.ErrTxClosed, это штатная ситуация.
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	u.mu.RLock()
	factories := make(map[RepositoryName]RepositoryFactory, len(u.repositories))
	for name, factory := range u.repositories {
		factories[name] = factory
	}
	u.mu.RUnlock()

	if transErr := fn(ctx, NewTransaction(tx, factories)); transErr != nil {
		return transErr
	}
	if commitErr := tx.Commit(ctx); commitErr != nil {
		return fmt.Errorf("[uow] commit: %w", commitErr)
	}
	return nil
}

// GetRepository возвращает репозиторий поверх пула соединений или ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	u.mu.RLock()
	repoFactory, ok := u.repositories[name]
	u.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryNotRegistered, name)
	}
	return repoFactory(u.conn), nil
}

// GetRepositoryAs возвращает репозиторий по имени name, приведенный к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrInvalidRepositoryType, name)
	}
	return r, nil
}
