package gateway

import (
	"testing"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test_secret"

type WebhookTestSuite struct {
	suite.Suite
}

func TestWebhookSuite(t *testing.T) {
	suite.Run(t, new(WebhookTestSuite))
}

func (s *WebhookTestSuite) sign(payload string) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func (s *WebhookTestSuite) TestVerifyAndDecode() {
	cases := []struct {
		name    string
		payload string
		check   func(e *domain.ProcessorEvent)
	}{
		{
			name: "payment intent succeeded",
			payload: `{"id":"evt_1","object":"event","type":"payment_intent.succeeded","created":1700000000,
				"data":{"object":{"id":"pi_1","object":"payment_intent","amount":2500,"currency":"usd",
				"description":"Logo","payment_method":"pm_1","payment_method_types":["card"],
				"transfer_data":{"destination":"acct_ready"},"metadata":{"source":"payment_link"}}}}`,
			check: func(e *domain.ProcessorEvent) {
				s.Require().NotNil(e.PaymentIntent)
				s.Equal("pi_1", e.PaymentIntent.ID)
				s.Equal(int64(2500), e.PaymentIntent.Amount)
				s.Equal("acct_ready", e.PaymentIntent.DestinationAccountID)
				s.Equal("pm_1", e.PaymentIntent.PaymentMethodID)
				s.Equal("card", e.PaymentIntent.PaymentMethodType)
				s.Equal(domain.SourcePaymentLink, e.PaymentIntent.Metadata[domain.MetadataSource])
			},
		},
		{
			name: "payment intent failed",
			payload: `{"id":"evt_2","object":"event","type":"payment_intent.payment_failed","created":1700000000,
				"data":{"object":{"id":"pi_2","object":"payment_intent","amount":100,"currency":"usd",
				"last_payment_error":{"type":"card_error","message":"Your card was declined."}}}}`,
			check: func(e *domain.ProcessorEvent) {
				s.Require().NotNil(e.PaymentIntent)
				s.Equal("Your card was declined.", e.PaymentIntent.FailureMessage)
			},
		},
		{
			name: "checkout session completed",
			payload: `{"id":"evt_3","object":"event","type":"checkout.session.completed","created":1700000000,
				"data":{"object":{"id":"cs_1","object":"checkout.session","payment_status":"paid",
				"payment_link":"plink_123","payment_intent":"pi_3",
				"customer_details":{"email":"buyer@example.com","name":"Jane Buyer"}}}}`,
			check: func(e *domain.ProcessorEvent) {
				s.Require().NotNil(e.CheckoutSession)
				s.Equal("plink_123", e.CheckoutSession.PaymentLinkID)
				s.Equal("pi_3", e.CheckoutSession.PaymentIntentID)
				s.Equal(domain.CheckoutSessionPaymentStatusOK, e.CheckoutSession.PaymentStatus)
				s.Equal("buyer@example.com", e.CheckoutSession.CustomerEmail)
				s.Equal("Jane Buyer", e.CheckoutSession.CustomerName)
			},
		},
		{
			name: "invoice payment failed",
			payload: `{"id":"evt_4","object":"event","type":"invoice.payment_failed","created":1700000000,
				"data":{"object":{"id":"in_1","object":"invoice","payment_link":{"id":"plink_9"},
				"payment_intent":"pi_9","attempt_count":2}}}`,
			check: func(e *domain.ProcessorEvent) {
				s.Require().NotNil(e.Invoice)
				s.Equal("plink_9", e.Invoice.PaymentLinkID)
				s.Equal("pi_9", e.Invoice.PaymentIntentID)
				s.Equal(int64(2), e.Invoice.AttemptCount)
				s.Empty(e.Invoice.FailureMessage)
			},
		},
		{
			name: "invoice payment failed with expanded payment intent",
			payload: `{"id":"evt_4b","object":"event","type":"invoice.payment_failed","created":1700000000,
				"data":{"object":{"id":"in_2","object":"invoice","payment_link":"plink_9",
				"payment_intent":{"id":"pi_10","object":"payment_intent",
				"last_payment_error":{"type":"card_error","message":"Your card was declined."}},
				"attempt_count":1,"last_finalization_error":{"message":"finalization failed"}}}}`,
			check: func(e *domain.ProcessorEvent) {
				s.Require().NotNil(e.Invoice)
				s.Equal("plink_9", e.Invoice.PaymentLinkID)
				s.Equal("pi_10", e.Invoice.PaymentIntentID)
				s.Equal("Your card was declined.", e.Invoice.FailureMessage)
			},
		},
		{
			name: "account updated",
			payload: `{"id":"evt_5","object":"event","type":"account.updated","account":"acct_ready",
				"created":1700000000,"data":{"object":{"id":"acct_ready","object":"account",
				"charges_enabled":true,"payouts_enabled":false,"details_submitted":true}}}`,
			check: func(e *domain.ProcessorEvent) {
				s.Equal("acct_ready", e.Account)
				s.Require().NotNil(e.ConnectedAccount)
				s.True(e.ConnectedAccount.ChargesEnabled)
				s.False(e.ConnectedAccount.PayoutsEnabled)
			},
		},
		{
			name: "unknown type",
			payload: `{"id":"evt_6","object":"event","type":"customer.created","created":1700000000,
				"data":{"object":{"id":"cus_1","object":"customer"}}}`,
			check: func(e *domain.ProcessorEvent) {
				s.Equal("customer.created", e.Type)
				s.Nil(e.PaymentIntent)
				s.Nil(e.CheckoutSession)
				s.Nil(e.Invoice)
				s.Nil(e.ConnectedAccount)
			},
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			event, err := VerifyAndDecode([]byte(t.payload), s.sign(t.payload), testWebhookSecret)
			s.Require().NoError(err)
			s.Equal(int64(1700000000), event.Created.Unix())
			t.check(event)
		})
	}
}

func (s *WebhookTestSuite) TestVerifyAndDecodeInvalidSignature() {
	payload := `{"id":"evt_1","object":"event","type":"account.updated","data":{"object":{}}}`

	_, err := VerifyAndDecode([]byte(payload), "t=1,v1=deadbeef", testWebhookSecret)
	s.Require().ErrorIs(err, domain.ErrInvalidSignature)

	_, err = VerifyAndDecode([]byte(payload), s.sign(payload), "whsec_other")
	s.Require().ErrorIs(err, domain.ErrInvalidSignature)
}

func (s *WebhookTestSuite) TestVerifyAndDecodeMalformed() {
	payload := `{"id":"evt_7","object":"event","type":"invoice.payment_failed","created":1700000000,
		"data":{"object":{"id":"in_1","object":"invoice","payment_link":42}}}`

	_, err := VerifyAndDecode([]byte(payload), s.sign(payload), testWebhookSecret)
	s.Require().ErrorIs(err, domain.ErrMalformedPayload)
}
