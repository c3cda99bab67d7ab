package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/sirupsen/logrus"
)

const defaultFailureReason = "Payment failed"

type eventHandler func(ctx context.Context, event *domain.ProcessorEvent) error

// WebhookService сверяет события процессора с леджером. Каждое событие применяется прямой записью статуса
// по идентификатору процессора, без сравнения с текущим статусом.
type WebhookService struct {
	uow         uow.UOW
	txRepo      TransactionRepository
	userRepo    UserRepository
	eventRepo   WebhookEventRepository
	gateway     PaymentGateway
	notifier    Notifier
	statusCache AccountStatusCache
	handlers    map[string]eventHandler
	now         func() time.Time
	l           *logrus.Entry
}

func NewWebhookService(
	u uow.UOW,
	gateway PaymentGateway,
	notifier Notifier,
	statusCache AccountStatusCache,
	l *logrus.Logger,
) (*WebhookService, error) {
	txRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err
	}
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	eventRepo, err := uow.GetRepositoryAs[WebhookEventRepository](u, uow.RepositoryName(repoargs.WebhookEventRepoName))
	if err != nil {
		return nil, err
	}

	s := &WebhookService{
		uow:         u,
		txRepo:      txRepo,
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		gateway:     gateway,
		notifier:    notifier,
		statusCache: statusCache,
		now:         time.Now,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "webhooks",
		}),
	}
	s.handlers = map[string]eventHandler{
		domain.EventPaymentIntentSucceeded:   s.handlePaymentIntentSucceeded,
		domain.EventPaymentIntentFailed:      s.handlePaymentIntentFailed,
		domain.EventCheckoutSessionCompleted: s.handleCheckoutSessionCompleted,
		domain.EventInvoicePaymentSucceeded:  s.handleInvoicePaymentSucceeded,
		domain.EventInvoicePaymentFailed:     s.handleInvoicePaymentFailed,
		domain.EventAccountUpdated:           s.handleAccountUpdated,
	}
	return s, nil
}

// HandleWebhook проверяет подпись, регистрирует событие в журнале и применяет его к леджеру.
//
// Ошибка проверки подписи или разбора возвращается до любых записей. Ошибка обработчика фиксируется в журнале
// и возвращается вызывающему, чтобы процессор повторил доставку. Журнал событий ведется по возможности:
// его ошибки только логируются.
func (s *WebhookService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyAndDecodeWebhook(payload, signature)
	if err != nil {
		s.l.WithError(err).Warn("rejected webhook")
		return err //nolint:wrapcheck
	}

	l := s.l.WithFields(logrus.Fields{
		"eventID":   event.ID,
		"eventType": event.Type,
	})

	if s.alreadyProcessed(ctx, l, event, payload) {
		l.Info("event already processed, skipping")
		return nil
	}

	handler, ok := s.handlers[event.Type]
	if !ok {
		l.Debug("unhandled event type")
		s.markProcessed(ctx, l, event.ID)
		return nil
	}

	if handleErr := handler(ctx, event); handleErr != nil {
		l.WithError(handleErr).Error("handling event")
		if markErr := s.eventRepo.MarkFailed(ctx, event.ID, handleErr.Error()); markErr != nil {
			l.WithError(markErr).Warn("marking event failed")
		}
		return fmt.Errorf("handling event `%s`: %w", event.ID, handleErr)
	}

	s.markProcessed(ctx, l, event.ID)
	return nil
}

func (s *WebhookService) alreadyProcessed(
	ctx context.Context,
	l *logrus.Entry,
	event *domain.ProcessorEvent,
	payload []byte,
) bool {
	registered, err := s.eventRepo.Register(ctx, repoargs.RegisterWebhookEvent{
		ID:      event.ID,
		Type:    event.Type,
		Payload: payload,
	})
	if err != nil {
		l.WithError(err).Warn("registering event")
		return false
	}
	return registered.IsProcessed()
}

func (s *WebhookService) markProcessed(ctx context.Context, l *logrus.Entry, id string) {
	if err := s.eventRepo.MarkProcessed(ctx, id); err != nil {
		l.WithError(err).Warn("marking event processed")
	}
}

// handlePaymentIntentSucceeded завершает транзакцию по payment intent. Если транзакции нет, создает
// completed транзакцию для платежа, прошедшего мимо платежных ссылок.
func (s *WebhookService) handlePaymentIntentSucceeded(ctx context.Context, event *domain.ProcessorEvent) error {
	pi := event.PaymentIntent
	if pi == nil {
		return domain.ErrMalformedPayload
	}

	existing, err := s.txRepo.FindByPaymentIntentID(ctx, pi.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return s.synthesizeCompleted(ctx, event)
		}
		return err //nolint:wrapcheck
	}

	descriptor := s.paymentMethod(ctx, pi)
	updated, err := s.txRepo.MarkCompletedByPaymentIntentID(ctx, pi.ID, repoargs.CompleteTransaction{
		PaymentMethodType: descriptor.Type,
		CardBrand:         descriptor.CardBrand,
		CardLast4:         descriptor.CardLast4,
		CompletedAt:       s.now(),
	})
	if err != nil {
		return err //nolint:wrapcheck
	}
	s.notifyTransition(existing.Status, updated)
	return nil
}

func (s *WebhookService) synthesizeCompleted(ctx context.Context, event *domain.ProcessorEvent) error {
	pi := event.PaymentIntent
	l := s.l.WithField("paymentIntentID", pi.ID)

	// транзакцию по ссылке завершит checkout.session.completed, дубль не нужен
	if pi.Metadata[domain.MetadataSource] == domain.SourcePaymentLink {
		l.Debug("payment intent belongs to a payment link, skipping")
		return nil
	}

	owner, err := s.resolveOwner(ctx, pi.DestinationAccountID, event.Account)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			l.Warn("no owner for payment intent, skipping")
			return nil
		}
		return err
	}

	descriptor := s.paymentMethod(ctx, pi)
	completedAt := s.now()
	t, created, err := s.txRepo.CreateIfNotExists(ctx, repoargs.CreateTransaction{
		ID:                domain.TransactionIDForPaymentIntent(pi.ID),
		UserID:            owner.ID,
		Amount:            pi.Amount,
		Currency:          domain.NormalizeCurrency(pi.Currency),
		Description:       singleLine(pi.Description, defaultPaymentDescription),
		Status:            domain.TransactionStatusCompleted,
		PaymentIntentID:   pi.ID,
		CustomerEmail:     pi.ReceiptEmail,
		PaymentMethodType: descriptor.Type,
		CardBrand:         descriptor.CardBrand,
		CardLast4:         descriptor.CardLast4,
		Metadata:          toAnyMap(pi.Metadata),
		CompletedAt:       &completedAt,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}
	if created {
		l.WithField("transactionID", t.ID).Info("synthesized completed transaction")
		s.notifier.Enqueue(paymentReceivedNotification(t))
	}
	return nil
}

func (s *WebhookService) handlePaymentIntentFailed(ctx context.Context, event *domain.ProcessorEvent) error {
	pi := event.PaymentIntent
	if pi == nil {
		return domain.ErrMalformedPayload
	}

	existing, err := s.txRepo.FindByPaymentIntentID(ctx, pi.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.l.WithField("paymentIntentID", pi.ID).Info("no transaction for failed payment intent")
			return nil
		}
		return err //nolint:wrapcheck
	}

	updated, err := s.txRepo.MarkFailedByPaymentIntentID(ctx, pi.ID, repoargs.FailTransaction{
		Reason:   failureReason(pi.FailureMessage),
		FailedAt: s.now(),
	})
	if err != nil {
		return err //nolint:wrapcheck
	}
	s.notifyTransition(existing.Status, updated)
	return nil
}

// handleCheckoutSessionCompleted применяется только к оплаченным сессиям платежных ссылок.
func (s *WebhookService) handleCheckoutSessionCompleted(ctx context.Context, event *domain.ProcessorEvent) error {
	session := event.CheckoutSession
	if session == nil {
		return domain.ErrMalformedPayload
	}
	if session.PaymentStatus != domain.CheckoutSessionPaymentStatusOK || session.PaymentLinkID == "" {
		s.l.WithField("checkoutSessionID", session.ID).Debug("checkout session is not a paid payment link session")
		return nil
	}

	return s.completeByPaymentLink(ctx, session.PaymentLinkID, repoargs.CompleteTransaction{
		PaymentIntentID:   session.PaymentIntentID,
		CheckoutSessionID: session.ID,
		CustomerName:      session.CustomerName,
		CustomerEmail:     session.CustomerEmail,
		CompletedAt:       s.now(),
	})
}

// handleInvoicePaymentSucceeded у инвойса нет ссылки на способ оплаты, реквизиты карты приходят
// с payment_intent.succeeded.
func (s *WebhookService) handleInvoicePaymentSucceeded(ctx context.Context, event *domain.ProcessorEvent) error {
	invoice := event.Invoice
	if invoice == nil {
		return domain.ErrMalformedPayload
	}
	if invoice.PaymentLinkID == "" {
		return nil
	}

	outcome := s.paymentIntentOutcome(ctx, invoice.PaymentIntentID)
	return s.completeByPaymentLink(ctx, invoice.PaymentLinkID, repoargs.CompleteTransaction{
		PaymentIntentID:   invoice.PaymentIntentID,
		PaymentMethodType: outcome.PaymentMethod.Type,
		CardBrand:         outcome.PaymentMethod.CardBrand,
		CardLast4:         outcome.PaymentMethod.CardLast4,
		CompletedAt:       s.now(),
	})
}

func (s *WebhookService) handleInvoicePaymentFailed(ctx context.Context, event *domain.ProcessorEvent) error {
	invoice := event.Invoice
	if invoice == nil {
		return domain.ErrMalformedPayload
	}
	if invoice.PaymentLinkID == "" {
		return nil
	}

	existing, err := s.txRepo.FindByPaymentLinkID(ctx, invoice.PaymentLinkID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.l.WithField("paymentLinkID", invoice.PaymentLinkID).Info("no transaction for failed invoice")
			return nil
		}
		return err //nolint:wrapcheck
	}

	message := invoice.FailureMessage
	if message == "" {
		message = s.paymentIntentOutcome(ctx, invoice.PaymentIntentID).FailureMessage
	}

	updated, err := s.txRepo.MarkFailedByPaymentLinkID(ctx, invoice.PaymentLinkID, repoargs.FailTransaction{
		Reason:       failureReason(message),
		AttemptCount: invoice.AttemptCount,
		FailedAt:     s.now(),
	})
	if err != nil {
		return err //nolint:wrapcheck
	}
	s.notifyTransition(existing.Status, updated)
	return nil
}

// handleAccountUpdated отмечает завершение онбординга. Приветственное уведомление отправляется только
// при первой смене флага.
func (s *WebhookService) handleAccountUpdated(ctx context.Context, event *domain.ProcessorEvent) error {
	account := event.ConnectedAccount
	if account == nil {
		return domain.ErrMalformedPayload
	}
	accountID := account.AccountID
	if accountID == "" {
		accountID = event.Account
	}
	s.statusCache.Delete(ctx, accountID)

	user, err := s.userRepo.FindByProcessorAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.l.WithField("accountID", accountID).Info("no user for connected account")
			return nil
		}
		return err //nolint:wrapcheck
	}

	if !account.OnboardingComplete() {
		return nil
	}

	flipped, err := s.userRepo.MarkOnboardingCompleted(ctx, user.ID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if flipped {
		s.l.WithField("userID", user.ID).Info("onboarding completed")
		s.notifier.Enqueue(accountReadyNotification(user.ID))
	}
	return nil
}

// completeByPaymentLink завершает транзакцию платежной ссылки. Если payment intent уже закреплен за другой
// строкой, транзакция завершается без него.
func (s *WebhookService) completeByPaymentLink(
	ctx context.Context,
	paymentLinkID string,
	args repoargs.CompleteTransaction,
) error {
	l := s.l.WithField("paymentLinkID", paymentLinkID)

	existing, err := s.txRepo.FindByPaymentLinkID(ctx, paymentLinkID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			l.Warn("no transaction for payment link")
			return nil
		}
		return err //nolint:wrapcheck
	}

	updated, err := s.txRepo.MarkCompletedByPaymentLinkID(ctx, paymentLinkID, args)
	if errors.Is(err, domain.ErrDuplicateKey) && args.PaymentIntentID != "" {
		l.WithField("paymentIntentID", args.PaymentIntentID).Warn("payment intent is attached to another transaction")
		args.PaymentIntentID = ""
		updated, err = s.txRepo.MarkCompletedByPaymentLinkID(ctx, paymentLinkID, args)
	}
	if err != nil {
		return err //nolint:wrapcheck
	}
	s.notifyTransition(existing.Status, updated)
	return nil
}

// resolveOwner пользователь первого найденного connected account из списка.
func (s *WebhookService) resolveOwner(ctx context.Context, accountIDs ...string) (*domain.User, error) {
	for _, accountID := range accountIDs {
		if accountID == "" {
			continue
		}
		user, err := s.userRepo.FindByProcessorAccountID(ctx, accountID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err //nolint:wrapcheck
		}
	}
	return nil, domain.ErrRecordNotFound
}

// paymentMethod реквизиты способа оплаты. Ошибка процессора не мешает сверке, остается тип из события.
func (s *WebhookService) paymentMethod(ctx context.Context, pi *domain.PaymentIntentEvent) domain.PaymentMethodDescriptor {
	fallback := domain.PaymentMethodDescriptor{Type: pi.PaymentMethodType}
	if pi.PaymentMethodID == "" {
		return fallback
	}
	descriptor, err := s.gateway.GetPaymentMethod(ctx, pi.PaymentMethodID)
	if err != nil {
		s.l.WithError(err).WithField("paymentMethodID", pi.PaymentMethodID).Warn("fetching payment method")
		return fallback
	}
	return *descriptor
}

// paymentIntentOutcome ошибка процессора не мешает сверке инвойса, поля просто остаются пустыми.
func (s *WebhookService) paymentIntentOutcome(ctx context.Context, paymentIntentID string) domain.PaymentIntentOutcome {
	if paymentIntentID == "" {
		return domain.PaymentIntentOutcome{}
	}
	outcome, err := s.gateway.GetPaymentIntentOutcome(ctx, paymentIntentID)
	if err != nil {
		s.l.WithError(err).WithField("paymentIntentID", paymentIntentID).Warn("fetching payment intent")
		return domain.PaymentIntentOutcome{ID: paymentIntentID}
	}
	return *outcome
}

// notifyTransition уведомляет только о смене статуса, повторная доставка события уведомление не дублирует.
func (s *WebhookService) notifyTransition(previous domain.TransactionStatus, t *domain.Transaction) {
	if previous == t.Status {
		return
	}
	switch t.Status { //nolint:exhaustive
	case domain.TransactionStatusCompleted:
		s.notifier.Enqueue(paymentReceivedNotification(t))
	case domain.TransactionStatusFailed:
		s.notifier.Enqueue(paymentFailedNotification(t))
	}
}

func failureReason(message string) string {
	if message == "" {
		return defaultFailureReason
	}
	return message
}
