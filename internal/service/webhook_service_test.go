package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/internal/service/mocks"
	"github.com/fsdevblog/paylink/pkg/uow"
	uowmocks "github.com/fsdevblog/paylink/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

var testPayload = []byte(`{"id":"evt_test"}`)

const testSignature = "t=1,v1=signature"

type WebhookServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTxRepo    *mocks.MockTransactionRepository
	mockUserRepo  *mocks.MockUserRepository
	mockEventRepo *mocks.MockWebhookEventRepository
	mockGateway   *mocks.MockPaymentGateway
	mockNotifier  *mocks.MockNotifier
	mockCache     *mocks.MockAccountStatusCache
	service       *WebhookService
	now           time.Time
}

func TestWebhookServiceSuite(t *testing.T) {
	suite.Run(t, new(WebhookServiceTestSuite))
}

func (s *WebhookServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockEventRepo = mocks.NewMockWebhookEventRepository(s.mockCtrl)
	s.mockGateway = mocks.NewMockPaymentGateway(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockCache = mocks.NewMockAccountStatusCache(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WebhookEventRepoName)).
		Return(s.mockEventRepo, nil).AnyTimes()

	service, err := NewWebhookService(s.mockUOW, s.mockGateway, s.mockNotifier, s.mockCache, discardLogger())
	s.Require().NoError(err)

	s.now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return s.now }
	s.service = service
}

func (s *WebhookServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// deliver мокает проверку подписи и журнал событий для event.
func (s *WebhookServiceTestSuite) deliver(event *domain.ProcessorEvent, processed bool) {
	s.mockGateway.EXPECT().VerifyAndDecodeWebhook(testPayload, testSignature).Return(event, nil)

	registered := &domain.WebhookEvent{ID: event.ID, Type: event.Type, ReceivedCount: 1}
	if processed {
		processedAt := s.now
		registered.ProcessedAt = &processedAt
	}
	s.mockEventRepo.EXPECT().Register(gomock.Any(), repoargs.RegisterWebhookEvent{
		ID:      event.ID,
		Type:    event.Type,
		Payload: testPayload,
	}).Return(registered, nil)
}

func (s *WebhookServiceTestSuite) expectProcessed(eventID string) {
	s.mockEventRepo.EXPECT().MarkProcessed(gomock.Any(), eventID).Return(nil)
}

func checkoutEvent(id, paymentLinkID, paymentStatus string) *domain.ProcessorEvent {
	return &domain.ProcessorEvent{
		ID:   id,
		Type: domain.EventCheckoutSessionCompleted,
		CheckoutSession: &domain.CheckoutSessionEvent{
			ID:              "cs_1",
			PaymentStatus:   paymentStatus,
			PaymentLinkID:   paymentLinkID,
			PaymentIntentID: "pi_1",
			CustomerEmail:   "buyer@example.com",
			CustomerName:    "Jane Buyer",
		},
	}
}

func (s *WebhookServiceTestSuite) TestInvalidSignature() {
	s.mockGateway.EXPECT().VerifyAndDecodeWebhook(testPayload, testSignature).
		Return(nil, fmt.Errorf("%w: bad header", domain.ErrInvalidSignature))

	err := s.service.HandleWebhook(s.T().Context(), testPayload, testSignature)
	s.Require().ErrorIs(err, domain.ErrInvalidSignature)
}

func (s *WebhookServiceTestSuite) TestCheckoutSessionCompletedTwice() {
	merchant := fakeMerchant()
	pending := fakePendingTransaction(merchant.ID, "pl_123")
	completed := *pending
	completed.Status = domain.TransactionStatusCompleted
	event := checkoutEvent("evt_1", "pl_123", domain.CheckoutSessionPaymentStatusOK)

	// первая доставка
	s.deliver(event, false)
	s.mockTxRepo.EXPECT().FindByPaymentLinkID(gomock.Any(), "pl_123").Return(pending, nil)
	s.mockTxRepo.EXPECT().MarkCompletedByPaymentLinkID(gomock.Any(), "pl_123", repoargs.CompleteTransaction{
		PaymentIntentID:   "pi_1",
		CheckoutSessionID: "cs_1",
		CustomerName:      "Jane Buyer",
		CustomerEmail:     "buyer@example.com",
		CompletedAt:       s.now,
	}).Return(&completed, nil)
	s.mockNotifier.EXPECT().Enqueue(gomock.Any()).Do(func(n domain.Notification) {
		s.Equal(merchant.ID, n.UserID)
		s.Equal(notificationTypePaymentReceived, n.Data["type"])
		s.Contains(n.Body, "25.00 USD")
	}).Times(1)
	s.expectProcessed("evt_1")

	s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))

	// повторная доставка уже обработанного события ничего не пишет
	s.deliver(event, true)
	s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
}

func (s *WebhookServiceTestSuite) TestCheckoutSessionRedeliveredWithoutJournal() {
	merchant := fakeMerchant()
	completed := fakePendingTransaction(merchant.ID, "pl_123")
	completed.Status = domain.TransactionStatusCompleted
	event := checkoutEvent("evt_1", "pl_123", domain.CheckoutSessionPaymentStatusOK)

	s.mockGateway.EXPECT().VerifyAndDecodeWebhook(testPayload, testSignature).Return(event, nil)
	s.mockEventRepo.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUnknown)
	s.mockTxRepo.EXPECT().FindByPaymentLinkID(gomock.Any(), "pl_123").Return(completed, nil)
	s.mockTxRepo.EXPECT().MarkCompletedByPaymentLinkID(gomock.Any(), "pl_123", gomock.Any()).
		Return(completed, nil)
	s.mockEventRepo.EXPECT().MarkProcessed(gomock.Any(), "evt_1").Return(domain.ErrUnknown)
	// статус не изменился, уведомления нет
	s.mockNotifier.EXPECT().Enqueue(gomock.Any()).Times(0)

	s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
}

func (s *WebhookServiceTestSuite) TestCheckoutSessionIgnored() {
	cases := []struct {
		name  string
		event *domain.ProcessorEvent
	}{
		{name: "unpaid", event: checkoutEvent("evt_unpaid", "pl_123", "unpaid")},
		{name: "no payment link", event: checkoutEvent("evt_nolink", "", domain.CheckoutSessionPaymentStatusOK)},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.deliver(t.event, false)
			s.expectProcessed(t.event.ID)
			s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
		})
	}
}

func (s *WebhookServiceTestSuite) TestCheckoutSessionPaymentIntentTaken() {
	merchant := fakeMerchant()
	pending := fakePendingTransaction(merchant.ID, "pl_123")
	completed := *pending
	completed.Status = domain.TransactionStatusCompleted
	event := checkoutEvent("evt_1", "pl_123", domain.CheckoutSessionPaymentStatusOK)

	s.deliver(event, false)
	s.mockTxRepo.EXPECT().FindByPaymentLinkID(gomock.Any(), "pl_123").Return(pending, nil)
	gomock.InOrder(
		s.mockTxRepo.EXPECT().MarkCompletedByPaymentLinkID(gomock.Any(), "pl_123", gomock.Any()).
			Return(nil, domain.ErrDuplicateKey),
		s.mockTxRepo.EXPECT().MarkCompletedByPaymentLinkID(gomock.Any(), "pl_123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, args repoargs.CompleteTransaction) (*domain.Transaction, error) {
				s.Empty(args.PaymentIntentID)
				s.Equal("cs_1", args.CheckoutSessionID)
				return &completed, nil
			}),
	)
	s.mockNotifier.EXPECT().Enqueue(gomock.Any())
	s.expectProcessed("evt_1")

	s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
}

func (s *WebhookServiceTestSuite) TestPaymentIntentSucceededExisting() {
	merchant := fakeMerchant()
	pending := fakePendingTransaction(merchant.ID, "pl_123")
	pending.PaymentIntentID = "pi_1"
	completed := *pending
	completed.Status = domain.TransactionStatusCompleted

	event := &domain.ProcessorEvent{
		ID:   "evt_pi",
		Type: domain.EventPaymentIntentSucceeded,
		PaymentIntent: &domain.PaymentIntentEvent{
			ID:                "pi_1",
			Amount:            2500,
			Currency:          "usd",
			PaymentMethodID:   "pm_1",
			PaymentMethodType: "card",
			Metadata:          map[string]string{domain.MetadataSource: domain.SourcePaymentLink},
		},
	}

	s.deliver(event, false)
	s.mockTxRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_1").Return(pending, nil)
	s.mockGateway.EXPECT().GetPaymentMethod(gomock.Any(), "pm_1").
		Return(&domain.PaymentMethodDescriptor{Type: "card", CardBrand: "visa", CardLast4: "4242"}, nil)
	s.mockTxRepo.EXPECT().MarkCompletedByPaymentIntentID(gomock.Any(), "pi_1", repoargs.CompleteTransaction{
		PaymentMethodType: "card",
		CardBrand:         "visa",
		CardLast4:         "4242",
		CompletedAt:       s.now,
	}).Return(&completed, nil)
	s.mockNotifier.EXPECT().Enqueue(gomock.Any())
	s.expectProcessed("evt_pi")

	s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
}

func (s *WebhookServiceTestSuite) TestPaymentIntentSucceededSynthesizes() {
	merchant := fakeMerchant()
	event := &domain.ProcessorEvent{
		ID:      "evt_direct",
		Type:    domain.EventPaymentIntentSucceeded,
		Account: "acct_platform_event",
		PaymentIntent: &domain.PaymentIntentEvent{
			ID:                   "pi_direct",
			Amount:               4200,
			Currency:             "jmd",
			Description:          "Tip",
			DestinationAccountID: merchant.ProcessorAccountID,
			PaymentMethodID:      "pm_2",
			PaymentMethodType:    "card",
			ReceiptEmail:         "buyer@example.com",
		},
	}

	s.deliver(event, false)
	s.mockTxRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_direct").Return(nil, domain.ErrRecordNotFound)
	s.mockUserRepo.EXPECT().FindByProcessorAccountID(gomock.Any(), merchant.ProcessorAccountID).Return(merchant, nil)
	s.mockGateway.EXPECT().GetPaymentMethod(gomock.Any(), "pm_2").Return(nil, domain.ErrUnknown)
	s.mockTxRepo.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, bool, error) {
			s.Equal("txn_pi_direct", args.ID)
			s.Equal(merchant.ID, args.UserID)
			s.Equal(domain.TransactionStatusCompleted, args.Status)
			s.Equal(domain.CurrencyJMD, args.Currency)
			s.Equal(int64(4200), args.Amount)
			s.Equal("card", args.PaymentMethodType)
			s.Require().NotNil(args.CompletedAt)
			s.Equal(s.now, *args.CompletedAt)
			return &domain.Transaction{
				ID:       args.ID,
				UserID:   args.UserID,
				Amount:   args.Amount,
				Currency: args.Currency,
				Status:   args.Status,
			}, true, nil
		})
	s.mockNotifier.EXPECT().Enqueue(gomock.Any())
	s.expectProcessed("evt_direct")

	s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
}

func (s *WebhookServiceTestSuite) TestPaymentIntentSucceededNotSynthesized() {
	s.Run("payment link source", func() {
		event := &domain.ProcessorEvent{
			ID:   "evt_link",
			Type: domain.EventPaymentIntentSucceeded,
			PaymentIntent: &domain.PaymentIntentEvent{
				ID:       "pi_link",
				Amount:   100,
				Metadata: map[string]string{domain.MetadataSource: domain.SourcePaymentLink},
			},
		}
		s.deliver(event, false)
		s.mockTxRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_link").Return(nil, domain.ErrRecordNotFound)
		s.expectProcessed("evt_link")

		s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
	})

	s.Run("no owner", func() {
		event := &domain.ProcessorEvent{
			ID:      "evt_orphan",
			Type:    domain.EventPaymentIntentSucceeded,
			Account: "acct_unknown_event",
			PaymentIntent: &domain.PaymentIntentEvent{
				ID:                   "pi_orphan",
				Amount:               100,
				DestinationAccountID: "acct_unknown",
			},
		}
		s.deliver(event, false)
		s.mockTxRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_orphan").Return(nil, domain.ErrRecordNotFound)
		s.mockUserRepo.EXPECT().FindByProcessorAccountID(gomock.Any(), "acct_unknown").
			Return(nil, domain.ErrRecordNotFound)
		s.mockUserRepo.EXPECT().FindByProcessorAccountID(gomock.Any(), "acct_unknown_event").
			Return(nil, domain.ErrRecordNotFound)
		s.expectProcessed("evt_orphan")

		s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
	})
}

func (s *WebhookServiceTestSuite) TestPaymentIntentFailed() {
	merchant := fakeMerchant()
	pending := fakePendingTransaction(merchant.ID, "pl_123")
	failed := *pending
	failed.Status = domain.TransactionStatusFailed
	failed.FailureReason = "Your card was declined."

	event := &domain.ProcessorEvent{
		ID:   "evt_fail",
		Type: domain.EventPaymentIntentFailed,
		PaymentIntent: &domain.PaymentIntentEvent{
			ID:             "pi_1",
			FailureMessage: "Your card was declined.",
		},
	}

	s.deliver(event, false)
	s.mockTxRepo.EXPECT().FindByPaymentIntentID(gomock.Any(), "pi_1").Return(pending, nil)
	s.mockTxRepo.EXPECT().MarkFailedByPaymentIntentID(gomock.Any(), "pi_1", repoargs.FailTransaction{
		Reason:   "Your card was declined.",
		FailedAt: s.now,
	}).Return(&failed, nil)
	s.mockNotifier.EXPECT().Enqueue(gomock.Any()).Do(func(n domain.Notification) {
		s.Equal(notificationTypePaymentFailed, n.Data["type"])
		s.Contains(n.Body, "Your card was declined.")
	})
	s.expectProcessed("evt_fail")

	s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
}

func (s *WebhookServiceTestSuite) TestInvoiceEvents() {
	merchant := fakeMerchant()
	pending := fakePendingTransaction(merchant.ID, "pl_inv")
	failed := *pending
	failed.Status = domain.TransactionStatusFailed

	s.Run("failed records attempts", func() {
		event := &domain.ProcessorEvent{
			ID:      "evt_inv_fail",
			Type:    domain.EventInvoicePaymentFailed,
			Invoice: &domain.InvoiceEvent{ID: "in_1", PaymentLinkID: "pl_inv", AttemptCount: 3},
		}
		s.deliver(event, false)
		s.mockTxRepo.EXPECT().FindByPaymentLinkID(gomock.Any(), "pl_inv").Return(pending, nil)
		s.mockTxRepo.EXPECT().MarkFailedByPaymentLinkID(gomock.Any(), "pl_inv", repoargs.FailTransaction{
			Reason:       defaultFailureReason,
			AttemptCount: 3,
			FailedAt:     s.now,
		}).Return(&failed, nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any())
		s.expectProcessed("evt_inv_fail")

		s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
	})

	s.Run("failed takes reason from payment intent", func() {
		event := &domain.ProcessorEvent{
			ID:   "evt_inv_fail_pi",
			Type: domain.EventInvoicePaymentFailed,
			Invoice: &domain.InvoiceEvent{
				ID: "in_3", PaymentLinkID: "pl_inv", PaymentIntentID: "pi_inv", AttemptCount: 1,
			},
		}
		s.deliver(event, false)
		s.mockTxRepo.EXPECT().FindByPaymentLinkID(gomock.Any(), "pl_inv").Return(pending, nil)
		s.mockGateway.EXPECT().GetPaymentIntentOutcome(gomock.Any(), "pi_inv").
			Return(&domain.PaymentIntentOutcome{ID: "pi_inv", FailureMessage: "Insufficient funds."}, nil)
		s.mockTxRepo.EXPECT().MarkFailedByPaymentLinkID(gomock.Any(), "pl_inv", repoargs.FailTransaction{
			Reason:       "Insufficient funds.",
			AttemptCount: 1,
			FailedAt:     s.now,
		}).Return(&failed, nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any())
		s.expectProcessed("evt_inv_fail_pi")

		s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
	})

	s.Run("failed falls back to default reason when payment intent is unavailable", func() {
		event := &domain.ProcessorEvent{
			ID:   "evt_inv_fail_err",
			Type: domain.EventInvoicePaymentFailed,
			Invoice: &domain.InvoiceEvent{
				ID: "in_4", PaymentLinkID: "pl_inv", PaymentIntentID: "pi_inv", AttemptCount: 2,
			},
		}
		s.deliver(event, false)
		s.mockTxRepo.EXPECT().FindByPaymentLinkID(gomock.Any(), "pl_inv").Return(pending, nil)
		s.mockGateway.EXPECT().GetPaymentIntentOutcome(gomock.Any(), "pi_inv").Return(nil, domain.ErrUnknown)
		s.mockTxRepo.EXPECT().MarkFailedByPaymentLinkID(gomock.Any(), "pl_inv", repoargs.FailTransaction{
			Reason:       defaultFailureReason,
			AttemptCount: 2,
			FailedAt:     s.now,
		}).Return(&failed, nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any())
		s.expectProcessed("evt_inv_fail_err")

		s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
	})

	s.Run("succeeded attaches payment method", func() {
		completed := *pending
		completed.Status = domain.TransactionStatusCompleted
		event := &domain.ProcessorEvent{
			ID:      "evt_inv_paid",
			Type:    domain.EventInvoicePaymentSucceeded,
			Invoice: &domain.InvoiceEvent{ID: "in_5", PaymentLinkID: "pl_inv", PaymentIntentID: "pi_inv"},
		}
		s.deliver(event, false)
		s.mockGateway.EXPECT().GetPaymentIntentOutcome(gomock.Any(), "pi_inv").
			Return(&domain.PaymentIntentOutcome{
				ID:            "pi_inv",
				PaymentMethod: domain.PaymentMethodDescriptor{Type: "card", CardBrand: "visa", CardLast4: "4242"},
			}, nil)
		s.mockTxRepo.EXPECT().FindByPaymentLinkID(gomock.Any(), "pl_inv").Return(pending, nil)
		s.mockTxRepo.EXPECT().MarkCompletedByPaymentLinkID(gomock.Any(), "pl_inv", repoargs.CompleteTransaction{
			PaymentIntentID:   "pi_inv",
			PaymentMethodType: "card",
			CardBrand:         "visa",
			CardLast4:         "4242",
			CompletedAt:       s.now,
		}).Return(&completed, nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any())
		s.expectProcessed("evt_inv_paid")

		s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
	})

	s.Run("succeeded without payment method details", func() {
		completed := *pending
		completed.Status = domain.TransactionStatusCompleted
		event := &domain.ProcessorEvent{
			ID:      "evt_inv_paid_err",
			Type:    domain.EventInvoicePaymentSucceeded,
			Invoice: &domain.InvoiceEvent{ID: "in_6", PaymentLinkID: "pl_inv", PaymentIntentID: "pi_inv"},
		}
		s.deliver(event, false)
		s.mockGateway.EXPECT().GetPaymentIntentOutcome(gomock.Any(), "pi_inv").Return(nil, domain.ErrUnknown)
		s.mockTxRepo.EXPECT().FindByPaymentLinkID(gomock.Any(), "pl_inv").Return(pending, nil)
		s.mockTxRepo.EXPECT().MarkCompletedByPaymentLinkID(gomock.Any(), "pl_inv", repoargs.CompleteTransaction{
			PaymentIntentID: "pi_inv",
			CompletedAt:     s.now,
		}).Return(&completed, nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any())
		s.expectProcessed("evt_inv_paid_err")

		s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
	})

	s.Run("succeeded without payment link", func() {
		event := &domain.ProcessorEvent{
			ID:      "evt_inv_ok",
			Type:    domain.EventInvoicePaymentSucceeded,
			Invoice: &domain.InvoiceEvent{ID: "in_2", PaymentIntentID: "pi_2"},
		}
		s.deliver(event, false)
		s.expectProcessed("evt_inv_ok")

		s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
	})
}

func (s *WebhookServiceTestSuite) TestAccountUpdated() {
	merchant := fakeMerchant()

	cases := []struct {
		name       string
		charges    bool
		flipped    bool
		wantNotify int
	}{
		{name: "onboarding completed", charges: true, flipped: true, wantNotify: 1},
		{name: "already completed", charges: true, flipped: false},
		{name: "charges disabled", charges: false},
	}

	for i, t := range cases {
		s.Run(t.name, func() {
			eventID := fmt.Sprintf("evt_acct_%d", i)
			event := &domain.ProcessorEvent{
				ID:      eventID,
				Type:    domain.EventAccountUpdated,
				Account: merchant.ProcessorAccountID,
				ConnectedAccount: &domain.AccountStatus{
					AccountID:      merchant.ProcessorAccountID,
					ChargesEnabled: t.charges,
				},
			}
			s.deliver(event, false)
			s.mockCache.EXPECT().Delete(gomock.Any(), merchant.ProcessorAccountID)
			s.mockUserRepo.EXPECT().FindByProcessorAccountID(gomock.Any(), merchant.ProcessorAccountID).
				Return(merchant, nil)
			if t.charges {
				s.mockUserRepo.EXPECT().MarkOnboardingCompleted(gomock.Any(), merchant.ID).Return(t.flipped, nil)
			}
			s.mockNotifier.EXPECT().Enqueue(gomock.Any()).Times(t.wantNotify)
			s.expectProcessed(eventID)

			s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
		})
	}
}

func (s *WebhookServiceTestSuite) TestHandlerErrorIsReturned() {
	merchant := fakeMerchant()
	pending := fakePendingTransaction(merchant.ID, "pl_123")
	event := checkoutEvent("evt_err", "pl_123", domain.CheckoutSessionPaymentStatusOK)

	s.deliver(event, false)
	s.mockTxRepo.EXPECT().FindByPaymentLinkID(gomock.Any(), "pl_123").Return(pending, nil)
	s.mockTxRepo.EXPECT().MarkCompletedByPaymentLinkID(gomock.Any(), "pl_123", gomock.Any()).
		Return(nil, domain.ErrUnknown)
	s.mockEventRepo.EXPECT().MarkFailed(gomock.Any(), "evt_err", gomock.Any()).Return(nil)

	err := s.service.HandleWebhook(s.T().Context(), testPayload, testSignature)
	s.Require().ErrorIs(err, domain.ErrUnknown)
}

func (s *WebhookServiceTestSuite) TestUnknownEventType() {
	event := &domain.ProcessorEvent{ID: "evt_other", Type: "customer.created"}

	s.deliver(event, false)
	s.expectProcessed("evt_other")

	s.Require().NoError(s.service.HandleWebhook(s.T().Context(), testPayload, testSignature))
}
