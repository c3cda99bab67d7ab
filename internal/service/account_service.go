package service

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

const defaultProcessorPayoutsLimit = 10

type AccountService struct {
	uow         uow.UOW
	userRepo    UserRepository
	pushRepo    PushTokenRepository
	gateway     PaymentGateway
	statusCache AccountStatusCache
	l           *logrus.Entry
}

func NewAccountService(
	u uow.UOW,
	gateway PaymentGateway,
	statusCache AccountStatusCache,
	l *logrus.Logger,
) (*AccountService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	pushRepo, err := uow.GetRepositoryAs[PushTokenRepository](u, uow.RepositoryName(repoargs.PushTokenRepoName))
	if err != nil {
		return nil, err
	}
	return &AccountService{
		uow:         u,
		userRepo:    userRepo,
		pushRepo:    pushRepo,
		gateway:     gateway,
		statusCache: statusCache,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "accounts",
		}),
	}, nil
}

type CreateConnectedAccountArgs struct {
	UserID       string
	Email        string
	FullName     string
	Country      string
	Currency     string
	BusinessName string
	BusinessURL  string
}

// CreateConnectedAccount создает (или обновляет существующий) connected account пользователя. Если
// пользователя еще нет в базе, он создается. Почта из списка заблокированных отклоняется.
//
// Сохранение id аккаунта не транзакционно с его созданием у процессора: при ошибке записи аккаунт
// остается у процессора без локальной привязки, что логируется.
func (s *AccountService) CreateConnectedAccount(
	ctx context.Context,
	args CreateConnectedAccountArgs,
) (*domain.User, error) {
	if args.UserID == "" {
		return nil, domain.NewValidationError("user id is required")
	}

	if args.Email != "" {
		banned, err := s.userRepo.IsEmailBanned(ctx, emailHash(args.Email))
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		if banned {
			return nil, domain.ErrForbidden
		}
	}

	user, err := s.findOrCreateUser(ctx, args)
	if err != nil {
		return nil, err
	}
	if user.Banned {
		return nil, domain.ErrForbidden
	}

	email := args.Email
	if email == "" {
		email = user.Email
	}
	accountID, err := s.gateway.CreateOrUpdateConnectedAccount(ctx, domain.ConnectedAccountProfile{
		AccountID:    user.ProcessorAccountID,
		UserID:       user.ID,
		Email:        email,
		Country:      args.Country,
		Currency:     args.Currency,
		BusinessName: args.BusinessName,
		BusinessURL:  args.BusinessURL,
	})
	if err != nil {
		s.l.WithError(err).WithField("userID", user.ID).Error("creating connected account")
		return nil, err //nolint:wrapcheck
	}
	if accountID == user.ProcessorAccountID {
		return user, nil
	}

	updated, err := s.userRepo.UpdateProcessorAccount(ctx, repoargs.UpdateProcessorAccount{
		UserID:          user.ID,
		AccountID:       accountID,
		Country:         strings.ToUpper(args.Country),
		DefaultCurrency: strings.ToUpper(args.Currency),
	})
	if err != nil {
		s.l.WithError(err).WithFields(logrus.Fields{
			"userID":    user.ID,
			"accountID": accountID,
		}).Error("orphaned connected account: saving account id failed")
		return nil, err //nolint:wrapcheck
	}
	return updated, nil
}

func (s *AccountService) findOrCreateUser(ctx context.Context, args CreateConnectedAccountArgs) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, args.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err //nolint:wrapcheck
	}

	created, createErr := s.userRepo.Create(ctx, repoargs.CreateUser{
		ID:              args.UserID,
		Email:           args.Email,
		FullName:        args.FullName,
		Country:         strings.ToUpper(args.Country),
		DefaultCurrency: domain.NormalizeCurrency(args.Currency),
	})
	if createErr != nil {
		return nil, createErr //nolint:wrapcheck
	}
	s.l.WithField("userID", created.ID).Info("user created on connected account request")
	return created, nil
}

// CreateOnboardingLink одноразовая ссылка на онбординг у процессора.
func (s *AccountService) CreateOnboardingLink(ctx context.Context, userID, refreshURL, returnURL string) (string, error) {
	user, err := s.accountOwner(ctx, userID)
	if err != nil {
		return "", err
	}
	link, err := s.gateway.CreateOnboardingLink(ctx, user.ProcessorAccountID, refreshURL, returnURL)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	return link, nil
}

// GetAccountStatus состояние connected account пользователя. Ответ процессора кешируется. Если аккаунт
// начал принимать платежи, выставляется флаг завершенного онбординга.
func (s *AccountService) GetAccountStatus(ctx context.Context, userID string) (*domain.AccountStatus, error) {
	user, err := s.accountOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	status, cached := s.statusCache.Get(ctx, user.ProcessorAccountID)
	if !cached {
		status, err = s.gateway.GetAccountStatus(ctx, user.ProcessorAccountID)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		s.statusCache.Set(ctx, user.ProcessorAccountID, status)
	}

	if status.OnboardingComplete() && !user.OnboardingCompleted {
		if _, markErr := s.userRepo.MarkOnboardingCompleted(ctx, user.ID); markErr != nil {
			s.l.WithError(markErr).WithField("userID", user.ID).Warn("marking onboarding completed")
		}
	}
	return status, nil
}

func (s *AccountService) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	user, err := s.accountOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.gateway.GetBalance(ctx, user.ProcessorAccountID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return balance, nil
}

// ListProcessorPayouts выплаты процессора на банковский счет пользователя. limit <= 0 заменяется значением
// по умолчанию.
func (s *AccountService) ListProcessorPayouts(
	ctx context.Context,
	userID string,
	limit int64,
) ([]domain.ProcessorPayout, error) {
	user, err := s.accountOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultProcessorPayoutsLimit
	}
	payouts, err := s.gateway.ListPayouts(ctx, user.ProcessorAccountID, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payouts, nil
}

// DeleteAccount удаляет пользователя вместе с транзакциями, выплатами и push токенами. При ban почта
// пользователя попадает в список заблокированных. Connected account у процессора не удаляется.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string, ban bool, reason string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if ban && user.Email != "" {
			if tombErr := repo.CreateTombstone(c, emailHash(user.Email), reason); tombErr != nil {
				return tombErr //nolint:wrapcheck
			}
		}
		return repo.Delete(c, user.ID) //nolint:wrapcheck
	})
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}

	if user.HasProcessorAccount() {
		s.statusCache.Delete(ctx, user.ProcessorAccountID)
	}
	s.l.WithFields(logrus.Fields{
		"userID": user.ID,
		"banned": ban,
	}).Info("account deleted")
	return nil
}

func (s *AccountService) RegisterPushToken(ctx context.Context, userID, token, platform string) error {
	if strings.TrimSpace(token) == "" {
		return domain.NewValidationError("token is required")
	}
	return s.pushRepo.Upsert(ctx, domain.PushToken{ //nolint:wrapcheck
		Token:    token,
		UserID:   userID,
		Platform: platform,
	})
}

func (s *AccountService) RemovePushToken(ctx context.Context, userID, token string) error {
	return s.pushRepo.Delete(ctx, userID, token) //nolint:wrapcheck
}

// PushTokens токены всех устройств пользователя.
func (s *AccountService) PushTokens(ctx context.Context, userID string) ([]domain.PushToken, error) {
	tokens, err := s.pushRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return tokens, nil
}

// ForgetPushToken удаляет токен, который push шлюз признал недействительным.
func (s *AccountService) ForgetPushToken(ctx context.Context, token string) error {
	return s.pushRepo.DeleteByToken(ctx, token) //nolint:wrapcheck
}

func (s *AccountService) accountOwner(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !user.HasProcessorAccount() {
		return nil, domain.ErrNoProcessorAccount
	}
	return user, nil
}

// emailHash BLAKE2b-256 от почты в нижнем регистре. В списке заблокированных почта в открытом виде не хранится.
func emailHash(email string) string {
	sum := blake2b.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}
