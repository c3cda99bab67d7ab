package service

import (
	"fmt"

	"github.com/fsdevblog/paylink/internal/domain"
)

const (
	notificationTypePaymentReceived = "payment_received"
	notificationTypePaymentFailed   = "payment_failed"
	notificationTypeAccountReady    = "account_ready"
)

func paymentReceivedNotification(t *domain.Transaction) domain.Notification {
	from := t.CustomerName
	if from == "" {
		from = "a customer"
	}
	return domain.Notification{
		UserID: t.UserID,
		Title:  "Payment received",
		Body:   fmt.Sprintf("You received %s %s from %s", t.MajorAmount().StringFixed(2), t.Currency, from),
		Data: map[string]string{
			"type":          notificationTypePaymentReceived,
			"transactionId": t.ID,
		},
	}
}

func paymentFailedNotification(t *domain.Transaction) domain.Notification {
	return domain.Notification{
		UserID: t.UserID,
		Title:  "Payment failed",
		Body: fmt.Sprintf("A payment of %s %s could not be completed: %s",
			t.MajorAmount().StringFixed(2), t.Currency, t.FailureReason),
		Data: map[string]string{
			"type":          notificationTypePaymentFailed,
			"transactionId": t.ID,
		},
	}
}

func accountReadyNotification(userID string) domain.Notification {
	return domain.Notification{
		UserID: userID,
		Title:  "You're ready to get paid",
		Body:   "Your payout account is verified. You can now send payment links.",
		Data: map[string]string{
			"type": notificationTypeAccountReady,
		},
	}
}
