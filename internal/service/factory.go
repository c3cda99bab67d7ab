package service

import (
	"fmt"

	"github.com/fsdevblog/paylink/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	PaymentLinkService *PaymentLinkService
	WebhookService     *WebhookService
	AccountService     *AccountService
	PayoutService      *PayoutService
}

// Dependencies внешние зависимости сервисов.
type Dependencies struct {
	Gateway     PaymentGateway
	Notifier    Notifier
	StatusCache AccountStatusCache
	Logger      *logrus.Logger
}

func Factory(unitOfWork uow.UOW, deps Dependencies) (*AppServices, error) {
	paymentLinkService, paymentLinkErr := NewPaymentLinkService(unitOfWork, deps.Gateway, deps.Logger)
	if paymentLinkErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentLinkErr.Error())
	}

	webhookService, webhookErr := NewWebhookService(
		unitOfWork, deps.Gateway, deps.Notifier, deps.StatusCache, deps.Logger,
	)
	if webhookErr != nil {
		return nil, fmt.Errorf("service factory: %s", webhookErr.Error())
	}

	accountService, accountErr := NewAccountService(unitOfWork, deps.Gateway, deps.StatusCache, deps.Logger)
	if accountErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountErr.Error())
	}

	payoutService, payoutErr := NewPayoutService(unitOfWork, deps.Logger)
	if payoutErr != nil {
		return nil, fmt.Errorf("service factory: %s", payoutErr.Error())
	}

	return &AppServices{
		PaymentLinkService: paymentLinkService,
		WebhookService:     webhookService,
		AccountService:     accountService,
		PayoutService:      payoutService,
	}, nil
}
