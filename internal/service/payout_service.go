package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const autoPayoutDescription = "Automatic payout"

type PayoutService struct {
	uow        uow.UOW
	userRepo   UserRepository
	txRepo     TransactionRepository
	payoutRepo PayoutRepository
	now        func() time.Time
	l          *logrus.Entry
}

func NewPayoutService(u uow.UOW, l *logrus.Logger) (*PayoutService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	txRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err
	}
	payoutRepo, err := uow.GetRepositoryAs[PayoutRepository](u, uow.RepositoryName(repoargs.PayoutRepoName))
	if err != nil {
		return nil, err
	}
	return &PayoutService{
		uow:        u,
		userRepo:   userRepo,
		txRepo:     txRepo,
		payoutRepo: payoutRepo,
		now:        time.Now,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "payouts",
		}),
	}, nil
}

// RunAutoPayouts выплачивает доступный остаток пользователям, у которых подошел срок выплаты.
//
// Алгоритм работы:
//  1. Загружает правила выплат и пользователей, которым выплаты возможны.
//  2. По каждой валюте считает остаток: сумма завершенных транзакций минус сумма выплат.
//  3. Если срок подошел и остаток не меньше минимального, создает выплату, выполняет перевод
//     и отмечает выплату завершенной со случайной датой следующей выплаты.
//
// Ошибка по одному пользователю не останавливает обработку остальных. Возвращает кол-во выплат и
// объединенную ошибку.
func (s *PayoutService) RunAutoPayouts(ctx context.Context) (int, error) {
	rule, err := s.payoutRepo.GetRule(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading payout rule: %w", err)
	}
	users, err := s.userRepo.ListPayoutEligible(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading payout eligible users: %w", err)
	}

	var result *multierror.Error
	var count int
	for _, user := range users {
		if ctx.Err() != nil {
			result = multierror.Append(result, ctx.Err())
			break
		}
		n, userErr := s.payoutUser(ctx, rule, user)
		count += n
		if userErr != nil {
			result = multierror.Append(result, fmt.Errorf("user `%s`: %w", user.ID, userErr))
		}
	}
	return count, result.ErrorOrNil()
}

func (s *PayoutService) payoutUser(ctx context.Context, rule *domain.PayoutRule, user domain.User) (int, error) {
	balances, err := s.availableBalances(ctx, user.ID)
	if err != nil {
		return 0, err
	}

	var count int
	for _, currency := range slices.Sorted(maps.Keys(balances)) {
		available := balances[currency]
		if available.LessThan(rule.MinimumAmount) || !available.IsPositive() {
			continue
		}

		due, dueErr := s.isDue(ctx, rule, user, currency)
		if dueErr != nil {
			return count, dueErr
		}
		if !due {
			continue
		}

		if payoutErr := s.payout(ctx, rule, user, currency, available); payoutErr != nil {
			return count, payoutErr
		}
		count++
	}
	return count, nil
}

func (s *PayoutService) payout(
	ctx context.Context,
	rule *domain.PayoutRule,
	user domain.User,
	currency string,
	amount decimal.Decimal,
) error {
	now := s.now()
	payout, err := s.payoutRepo.Create(ctx, repoargs.CreatePayout{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Amount:      amount,
		Currency:    currency,
		Description: autoPayoutDescription,
		ScheduledAt: now,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.issueTransfer(user, payout)

	next := now.Add(randomDelay(rule.MinPayoutDelay, rule.MaxPayoutDelay))
	if _, markErr := s.payoutRepo.MarkCompleted(ctx, payout.ID, now, next); markErr != nil {
		return markErr //nolint:wrapcheck
	}
	return nil
}

// issueTransfer перевод на банковский счет пользователя. Реальный перевод не выполняется, только логируется.
func (s *PayoutService) issueTransfer(user domain.User, payout *domain.Payout) {
	s.l.WithFields(logrus.Fields{
		"userID":    user.ID,
		"accountID": user.ProcessorAccountID,
		"payoutID":  payout.ID,
		"amount":    payout.Amount.StringFixed(2),
		"currency":  payout.Currency,
	}).Info("payout transfer issued")
}

// isDue первая выплата возможна через FirstPayoutDelay после регистрации, следующие по NextPayoutAt
// последней выплаты.
func (s *PayoutService) isDue(
	ctx context.Context,
	rule *domain.PayoutRule,
	user domain.User,
	currency string,
) (bool, error) {
	now := s.now()
	last, err := s.payoutRepo.LastCompleted(ctx, user.ID, currency)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return !now.Before(user.MemberSince.Add(rule.FirstPayoutDelay)), nil
		}
		return false, err //nolint:wrapcheck
	}
	if last.NextPayoutAt == nil {
		return true, nil
	}
	return !now.Before(*last.NextPayoutAt), nil
}

// availableBalances остаток к выплате в основных единицах по валютам.
func (s *PayoutService) availableBalances(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	completed, err := s.txRepo.SumCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	paid, err := s.payoutRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	balances := make(map[string]decimal.Decimal, len(completed))
	for _, sum := range completed {
		balances[sum.Currency] = balances[sum.Currency].Add(domain.MajorUnits(sum.Amount))
	}
	for _, sum := range paid {
		balances[sum.Currency] = balances[sum.Currency].Sub(sum.Amount)
	}
	return balances, nil
}

// ListPayouts выплаты пользователя, новые первыми.
func (s *PayoutService) ListPayouts(ctx context.Context, userID string) ([]domain.Payout, error) {
	payouts, err := s.payoutRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payouts, nil
}
