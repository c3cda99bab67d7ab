package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/sirupsen/logrus"
)

const defaultPaymentDescription = "Payment request"

type PaymentLinkService struct {
	uow      uow.UOW
	txRepo   TransactionRepository
	userRepo UserRepository
	gateway  PaymentGateway
	l        *logrus.Entry
}

func NewPaymentLinkService(u uow.UOW, gateway PaymentGateway, l *logrus.Logger) (*PaymentLinkService, error) {
	txRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err
	}
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	return &PaymentLinkService{
		uow:      u,
		txRepo:   txRepo,
		userRepo: userRepo,
		gateway:  gateway,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "payment_links",
		}),
	}, nil
}

type CreatePaymentLinkArgs struct {
	RequesterID    string
	MerchantUserID string
	// Amount в минорных единицах валюты.
	Amount        int64
	Currency      string
	Description   string
	CustomerName  string
	CustomerEmail string
	Notes         string
	DueDate       *time.Time
}

type CreatedPaymentLink struct {
	TransactionID string
	PaymentLinkID string
	URL           string
	Status        domain.TransactionStatus
}

// Create создает платежную ссылку у процессора и pending транзакцию в леджере.
//
// Алгоритм работы:
//  1. Проверяет аргументы, права запросившего и наличие у мерчанта connected account.
//  2. Создает ссылку у процессора. Для JMD способы оплаты ограничены картой.
//  3. Сохраняет транзакцию с id, выведенным из id ссылки.
//
// Если ссылка создана, а запись в леджер не удалась, ссылка остается у процессора без локальной строки.
// Такая ситуация логируется, а созданная ссылка возвращается вызывающему.
func (s *PaymentLinkService) Create(ctx context.Context, args CreatePaymentLinkArgs) (*CreatedPaymentLink, error) {
	if args.MerchantUserID == "" {
		return nil, domain.NewValidationError("merchantUserId is required")
	}
	if args.Amount <= 0 {
		return nil, domain.NewValidationError("amount must be greater than zero")
	}
	if args.RequesterID != args.MerchantUserID {
		return nil, domain.ErrForbidden
	}

	merchant, err := s.userRepo.FindByID(ctx, args.MerchantUserID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if merchant.Banned {
		return nil, domain.ErrForbidden
	}
	if !merchant.HasProcessorAccount() {
		return nil, domain.ErrNoProcessorAccount
	}

	currency := domain.NormalizeCurrency(args.Currency)
	description := singleLine(args.Description, defaultPaymentDescription)
	metadata := paymentLinkMetadata(merchant.ID, args)

	link, err := s.gateway.CreatePaymentLink(ctx, domain.PaymentLinkSpec{
		DestinationAccountID: merchant.ProcessorAccountID,
		Amount:               args.Amount,
		Currency:             currency,
		Description:          description,
		PaymentMethodTypes:   paymentMethodTypesFor(currency),
		Metadata:             metadata,
	})
	if err != nil {
		s.l.WithError(err).WithField("userID", merchant.ID).Error("creating payment link")
		return nil, err //nolint:wrapcheck
	}

	transactionID := domain.TransactionIDForPaymentLink(link.ID)
	_, createErr := s.txRepo.Create(ctx, repoargs.CreateTransaction{
		ID:             transactionID,
		UserID:         merchant.ID,
		Amount:         args.Amount,
		Currency:       currency,
		Description:    description,
		Status:         domain.TransactionStatusPending,
		PaymentLinkID:  link.ID,
		PaymentLinkURL: link.URL,
		CustomerName:   args.CustomerName,
		CustomerEmail:  args.CustomerEmail,
		Notes:          args.Notes,
		Metadata:       toAnyMap(metadata),
		ExpiresAt:      args.DueDate,
	})
	if createErr != nil {
		s.l.WithError(createErr).WithFields(logrus.Fields{
			"userID":        merchant.ID,
			"paymentLinkID": link.ID,
			"transactionID": transactionID,
		}).Error("orphaned payment link: ledger write failed")
	}

	return &CreatedPaymentLink{
		TransactionID: transactionID,
		PaymentLinkID: link.ID,
		URL:           link.URL,
		Status:        domain.TransactionStatusPending,
	}, nil
}

// Cancel отменяет pending транзакцию по запросу ее владельца. Если к транзакции привязана ссылка,
// сначала деактивируется ссылка у процессора.
func (s *PaymentLinkService) Cancel(ctx context.Context, requesterID, id string) (*domain.Transaction, error) {
	t, err := s.resolveOwned(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}
	if t.Status != domain.TransactionStatusPending {
		return nil, domain.NewInvalidStateError(t.Status)
	}

	if t.PaymentLinkID != "" {
		if cancelErr := s.gateway.CancelPaymentLink(ctx, t.PaymentLinkID); cancelErr != nil {
			s.l.WithError(cancelErr).WithFields(logrus.Fields{
				"userID":        t.UserID,
				"paymentLinkID": t.PaymentLinkID,
			}).Error("cancelling payment link")
			return nil, cancelErr //nolint:wrapcheck
		}
	}

	cancelled, err := s.txRepo.MarkCancelled(ctx, t.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			// статус сменился вебхуком между чтением и записью
			return nil, s.currentStateError(ctx, t)
		}
		return nil, err //nolint:wrapcheck
	}
	return cancelled, nil
}

// Expire деактивирует ссылку у процессора в любом случае. Транзакция переводится в cancelled, только если
// она еще pending, терминальный статус не меняется.
func (s *PaymentLinkService) Expire(ctx context.Context, requesterID, id string) (*domain.Transaction, error) {
	t, err := s.resolveOwned(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}
	if t.PaymentLinkID == "" {
		return nil, domain.NewValidationError("transaction %s has no payment link", t.ID)
	}

	if deactivateErr := s.gateway.DeactivatePaymentLink(ctx, t.PaymentLinkID); deactivateErr != nil {
		s.l.WithError(deactivateErr).WithFields(logrus.Fields{
			"userID":        t.UserID,
			"paymentLinkID": t.PaymentLinkID,
		}).Error("expiring payment link")
		return nil, deactivateErr //nolint:wrapcheck
	}

	if t.Status != domain.TransactionStatusPending {
		return t, nil
	}

	cancelled, err := s.txRepo.MarkCancelled(ctx, t.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return s.txRepo.FindByID(ctx, t.ID) //nolint:wrapcheck
		}
		return nil, err //nolint:wrapcheck
	}
	return cancelled, nil
}

// ListTransactions транзакции пользователя ownerID. Чужие транзакции недоступны.
func (s *PaymentLinkService) ListTransactions(
	ctx context.Context,
	requesterID, ownerID string,
) ([]domain.Transaction, error) {
	if requesterID == "" || requesterID != ownerID {
		return nil, domain.ErrForbidden
	}
	transactions, err := s.txRepo.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

func (s *PaymentLinkService) resolveOwned(ctx context.Context, requesterID, id string) (*domain.Transaction, error) {
	t, err := s.resolveTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if requesterID == "" || t.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	return t, nil
}

// resolveTransaction ищет транзакцию по очереди: по id, по id платежной ссылки, по id ссылки без префикса
// TransactionIDPrefix. Мобильный клиент и вебхуки оперируют разными форматами id одной транзакции,
// поэтому нужны все три способа, пока старые строки не переведены на единый формат.
func (s *PaymentLinkService) resolveTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	if id == "" {
		return nil, domain.NewValidationError("transaction id is required")
	}

	lookups := []func(context.Context, string) (*domain.Transaction, error){
		s.txRepo.FindByID,
		s.txRepo.FindByPaymentLinkID,
		func(c context.Context, v string) (*domain.Transaction, error) {
			stripped, found := strings.CutPrefix(v, domain.TransactionIDPrefix)
			if !found || stripped == "" {
				return nil, domain.ErrRecordNotFound
			}
			return s.txRepo.FindByPaymentLinkID(c, stripped) //nolint:wrapcheck
		},
	}

	for _, lookup := range lookups {
		t, err := lookup(ctx, id)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("transaction `%s`: %w", id, domain.ErrRecordNotFound)
}

func (s *PaymentLinkService) currentStateError(ctx context.Context, t *domain.Transaction) error {
	current, err := s.txRepo.FindByID(ctx, t.ID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return domain.NewInvalidStateError(current.Status)
}

// paymentMethodTypesFor ограничение способов оплаты по валюте. nil означает способы по умолчанию процессора.
func paymentMethodTypesFor(currency string) []string {
	if currency == domain.CurrencyJMD {
		return []string{"card"}
	}
	return nil
}

func paymentLinkMetadata(merchantID string, args CreatePaymentLinkArgs) map[string]string {
	metadata := map[string]string{
		domain.MetadataMerchantUserID: merchantID,
	}
	if args.CustomerName != "" {
		metadata[domain.MetadataCustomerName] = args.CustomerName
	}
	if args.CustomerEmail != "" {
		metadata[domain.MetadataCustomerEmail] = args.CustomerEmail
	}
	return metadata
}

// singleLine схлопывает пробельные символы (включая переводы строк) в одиночные пробелы.
func singleLine(value, defaultValue string) string {
	line := strings.Join(strings.Fields(value), " ")
	if line == "" {
		return defaultValue
	}
	return line
}

func toAnyMap(m map[string]string) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
