package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// VerifyAndDecodeWebhook проверяет подпись вебхука секретом из конфигурации и декодирует событие.
func (g *Gateway) VerifyAndDecodeWebhook(payload []byte, signature string) (*domain.ProcessorEvent, error) {
	return VerifyAndDecode(payload, signature, g.cfg.WebhookSecret)
}

// VerifyAndDecode проверяет подпись заголовка Stripe-Signature и приводит объект события к доменному виду.
// Ошибка подписи оборачивает domain.ErrInvalidSignature, ошибка разбора domain.ErrMalformedPayload.
// Неизвестные типы событий возвращаются без объекта.
func VerifyAndDecode(payload []byte, signature, secret string) (*domain.ProcessorEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSignature, err.Error())
	}

	result := &domain.ProcessorEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Account: event.Account,
		Created: time.Unix(event.Created, 0).UTC(),
	}
	if event.Data == nil {
		return nil, fmt.Errorf("%w: event `%s` has no data", domain.ErrMalformedPayload, event.ID)
	}

	var decodeErr error
	switch result.Type {
	case domain.EventPaymentIntentSucceeded, domain.EventPaymentIntentFailed:
		result.PaymentIntent, decodeErr = decodePaymentIntent(event.Data.Raw)
	case domain.EventCheckoutSessionCompleted:
		result.CheckoutSession, decodeErr = decodeCheckoutSession(event.Data.Raw)
	case domain.EventInvoicePaymentSucceeded, domain.EventInvoicePaymentFailed:
		result.Invoice, decodeErr = decodeInvoice(event.Data.Raw)
	case domain.EventAccountUpdated:
		result.ConnectedAccount, decodeErr = decodeAccount(event.Data.Raw)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: event `%s`: %s", domain.ErrMalformedPayload, event.ID, decodeErr.Error())
	}

	return result, nil
}

func decodePaymentIntent(raw json.RawMessage) (*domain.PaymentIntentEvent, error) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(raw, &pi); err != nil {
		return nil, err //nolint:wrapcheck
	}

	result := &domain.PaymentIntentEvent{
		ID:           pi.ID,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Description:  pi.Description,
		ReceiptEmail: pi.ReceiptEmail,
		Metadata:     pi.Metadata,
	}
	if pi.TransferData != nil && pi.TransferData.Destination != nil {
		result.DestinationAccountID = pi.TransferData.Destination.ID
	}
	if pi.PaymentMethod != nil {
		result.PaymentMethodID = pi.PaymentMethod.ID
		result.PaymentMethodType = string(pi.PaymentMethod.Type)
	}
	if result.PaymentMethodType == "" && len(pi.PaymentMethodTypes) > 0 {
		result.PaymentMethodType = pi.PaymentMethodTypes[0]
	}
	if pi.LastPaymentError != nil {
		result.FailureMessage = pi.LastPaymentError.Msg
	}
	return result, nil
}

func decodeCheckoutSession(raw json.RawMessage) (*domain.CheckoutSessionEvent, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err //nolint:wrapcheck
	}

	result := &domain.CheckoutSessionEvent{
		ID:            session.ID,
		PaymentStatus: string(session.PaymentStatus),
		CustomerEmail: session.CustomerEmail,
	}
	if session.PaymentLink != nil {
		result.PaymentLinkID = session.PaymentLink.ID
	}
	if session.PaymentIntent != nil {
		result.PaymentIntentID = session.PaymentIntent.ID
	}
	if session.CustomerDetails != nil {
		result.CustomerName = session.CustomerDetails.Name
		if session.CustomerDetails.Email != "" {
			result.CustomerEmail = session.CustomerDetails.Email
		}
	}
	return result, nil
}

// invoicePayload поля инвойса, нужные для сверки. Связи могут прийти как id, так и развернутым объектом.
type invoicePayload struct {
	ID            string          `json:"id"`
	PaymentLink   json.RawMessage `json:"payment_link"`
	PaymentIntent json.RawMessage `json:"payment_intent"`
	AttemptCount  int64           `json:"attempt_count"`
}

// expandedPaymentIntent причина отказа, если payment_intent инвойса пришел развернутым.
type expandedPaymentIntent struct {
	LastPaymentError *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

func decodeInvoice(raw json.RawMessage) (*domain.InvoiceEvent, error) {
	var invoice invoicePayload
	if err := json.Unmarshal(raw, &invoice); err != nil {
		return nil, err //nolint:wrapcheck
	}

	paymentLinkID, err := expandableID(invoice.PaymentLink)
	if err != nil {
		return nil, fmt.Errorf("payment_link: %w", err)
	}
	paymentIntentID, err := expandableID(invoice.PaymentIntent)
	if err != nil {
		return nil, fmt.Errorf("payment_intent: %w", err)
	}

	result := &domain.InvoiceEvent{
		ID:              invoice.ID,
		PaymentLinkID:   paymentLinkID,
		PaymentIntentID: paymentIntentID,
		AttemptCount:    invoice.AttemptCount,
	}
	if len(invoice.PaymentIntent) > 0 && invoice.PaymentIntent[0] == '{' {
		var pi expandedPaymentIntent
		if err := json.Unmarshal(invoice.PaymentIntent, &pi); err != nil {
			return nil, fmt.Errorf("payment_intent: %w", err)
		}
		if pi.LastPaymentError != nil {
			result.FailureMessage = pi.LastPaymentError.Message
		}
	}
	return result, nil
}

func decodeAccount(raw json.RawMessage) (*domain.AccountStatus, error) {
	var account stripe.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return convertAccount(&account), nil
}

// expandableID достает id из строки или объекта вида {"id": "..."}.
func expandableID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err //nolint:wrapcheck
	}
	return obj.ID, nil
}
