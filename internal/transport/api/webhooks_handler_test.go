package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const testWebhookPayload = `{"id":"evt_1","type":"checkout.session.completed","data":{"object":{}}}`

type WebhooksHandlerTestSuite struct {
	routerTestSuite
}

func TestWebhooksHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhooksHandlerTestSuite))
}

// request вебхук приходит без JWT токена.
func (s *WebhooksHandlerTestSuite) request(body string, headers map[string]string) *http.Response {
	opts := []func(*testutils.RequestOptions){testutils.WithJSON()}
	for k, v := range headers {
		opts = append(opts, testutils.WithHeader(k, v))
	}
	return testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + PaymentWebhooksRoute,
		Body:   strings.NewReader(body),
	}, opts...)
}

func (s *WebhooksHandlerTestSuite) TestPayments() {
	cases := []struct {
		name   string
		header string
	}{
		{name: "processor header", header: SignatureHeader},
		{name: "fallback header", header: FallbackSignatureHeader},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockWebhooks.EXPECT().
				HandleWebhook(gomock.Any(), []byte(testWebhookPayload), "t=1,v1=abc").
				Return(nil)

			resp := s.request(testWebhookPayload, map[string]string{t.header: "t=1,v1=abc"})
			s.Equal(http.StatusOK, resp.StatusCode)

			var body map[string]bool
			s.decodeBody(resp, &body)
			s.True(body["received"])
		})
	}
}

func (s *WebhooksHandlerTestSuite) TestPaymentsMissingSignature() {
	s.mockWebhooks.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp := s.request(testWebhookPayload, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	s.decodeBody(resp, &body)
	s.Equal(errMissingSignature.Error(), body["error"])
}

func (s *WebhooksHandlerTestSuite) TestPaymentsTooLarge() {
	s.mockWebhooks.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp := s.request(strings.Repeat("a", maxWebhookPayloadBytes+1), map[string]string{SignatureHeader: "t=1,v1=abc"})
	s.Equal(http.StatusRequestEntityTooLarge, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}

func (s *WebhooksHandlerTestSuite) TestPaymentsErrors() {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid signature", err: domain.ErrInvalidSignature, wantStatus: http.StatusBadRequest},
		{name: "malformed payload", err: domain.ErrMalformedPayload, wantStatus: http.StatusBadRequest},
		{name: "storage failure", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockWebhooks.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(t.err)

			resp := s.request(testWebhookPayload, map[string]string{SignatureHeader: "t=1,v1=abc"})
			s.Equal(t.wantStatus, resp.StatusCode)
			s.Require().NoError(resp.Body.Close())
		})
	}
}
