package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/service"
	"github.com/fsdevblog/paylink/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AccountsHandlerTestSuite struct {
	routerTestSuite
}

func TestAccountsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountsHandlerTestSuite))
}

func (s *AccountsHandlerTestSuite) request(method, url string, body any) *http.Response {
	reader := bytes.NewReader(nil)
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	return testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
		Body:   reader,
	}, testutils.WithJSON(), testutils.WithBearer(s.currentUserJWTToken))
}

func (s *AccountsHandlerTestSuite) TestCreate() {
	s.mockAccounts.EXPECT().CreateConnectedAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.CreateConnectedAccountArgs) (*domain.User, error) {
			s.Equal(s.currentUserID, args.UserID)
			s.Equal("merchant@example.com", args.Email)
			s.Equal("jm", args.Country)
			return &domain.User{
				ID:                 s.currentUserID,
				ProcessorAccountID: "acct_123",
				Country:            "JM",
				DefaultCurrency:    domain.CurrencyJMD,
			}, nil
		})

	resp := s.request(http.MethodPost, AccountsRoute, map[string]string{
		"email":    "merchant@example.com",
		"fullName": "Kingston Designs",
		"country":  "jm",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body AccountResponse
	s.decodeBody(resp, &body)
	s.Equal("acct_123", body.AccountID)
	s.Equal(domain.CurrencyJMD, body.DefaultCurrency)
	s.False(body.OnboardingCompleted)
}

func (s *AccountsHandlerTestSuite) TestCreateInvalidParams() {
	cases := []struct {
		name   string
		params map[string]string
	}{
		{name: "bad email", params: map[string]string{"email": "merchant"}},
		{name: "long country", params: map[string]string{"country": "JAM"}},
		{name: "bad business url", params: map[string]string{"businessUrl": "not a url"}},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := s.request(http.MethodPost, AccountsRoute, t.params)
			s.Equal(http.StatusBadRequest, resp.StatusCode)
			s.Require().NoError(resp.Body.Close())
		})
	}
}

func (s *AccountsHandlerTestSuite) TestOnboardingLink() {
	s.Run("urls from body", func() {
		s.mockAccounts.EXPECT().
			CreateOnboardingLink(gomock.Any(), s.currentUserID, "https://app.test/refresh", "https://app.test/return").
			Return("https://connect.stripe.com/setup/abc", nil)

		resp := s.request(http.MethodPost, OnboardingLinkRoute, map[string]string{
			"refreshUrl": "https://app.test/refresh",
			"returnUrl":  "https://app.test/return",
		})
		s.Equal(http.StatusOK, resp.StatusCode)

		var body map[string]string
		s.decodeBody(resp, &body)
		s.Equal("https://connect.stripe.com/setup/abc", body["url"])
	})

	s.Run("chunked empty body", func() {
		s.mockAccounts.EXPECT().CreateOnboardingLink(gomock.Any(), s.currentUserID, "", "").
			Return("https://connect.stripe.com/setup/def", nil)

		resp := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodPost,
			URL:    RouteGroup + OnboardingLinkRoute,
			Body:   io.MultiReader(),
		}, testutils.WithJSON(), testutils.WithBearer(s.currentUserJWTToken))
		s.Equal(http.StatusOK, resp.StatusCode)

		var body map[string]string
		s.decodeBody(resp, &body)
		s.Equal("https://connect.stripe.com/setup/def", body["url"])
	})

	s.Run("invalid redirect", func() {
		s.mockAccounts.EXPECT().CreateOnboardingLink(gomock.Any(), s.currentUserID, "", "").
			Return("", domain.ErrInvalidRedirectURL)

		resp := s.request(http.MethodPost, OnboardingLinkRoute, nil)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Require().NoError(resp.Body.Close())
	})
}

func (s *AccountsHandlerTestSuite) TestStatus() {
	s.mockAccounts.EXPECT().GetAccountStatus(gomock.Any(), s.currentUserID).
		Return(&domain.AccountStatus{AccountID: "acct_123", ChargesEnabled: true, DetailsSubmitted: true}, nil)

	resp := s.request(http.MethodGet, AccountStatusRoute, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Status             domain.AccountStatus `json:"status"`
		OnboardingComplete bool                 `json:"onboardingComplete"`
	}
	s.decodeBody(resp, &body)
	s.Equal("acct_123", body.Status.AccountID)
	s.True(body.OnboardingComplete)
}

func (s *AccountsHandlerTestSuite) TestStatusWithoutAccount() {
	s.mockAccounts.EXPECT().GetAccountStatus(gomock.Any(), s.currentUserID).
		Return(nil, domain.ErrNoProcessorAccount)

	resp := s.request(http.MethodGet, AccountStatusRoute, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Require().NoError(resp.Body.Close())
}

func (s *AccountsHandlerTestSuite) TestBalance() {
	s.mockAccounts.EXPECT().GetBalance(gomock.Any(), s.currentUserID).Return(&domain.Balance{
		Available: []domain.Money{{Amount: 12050, Currency: "usd"}},
		Pending:   []domain.Money{{Amount: 300, Currency: "usd"}},
	}, nil)

	resp := s.request(http.MethodGet, AccountBalanceRoute, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body BalanceResponse
	s.decodeBody(resp, &body)
	s.Require().Len(body.Available, 1)
	s.InDelta(120.50, body.Available[0].Amount, 0.0001)
	s.Require().Len(body.Pending, 1)
	s.InDelta(3.00, body.Pending[0].Amount, 0.0001)
}

func (s *AccountsHandlerTestSuite) TestProcessorPayouts() {
	arrival := time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)

	s.Run("default limit", func() {
		s.mockAccounts.EXPECT().ListProcessorPayouts(gomock.Any(), s.currentUserID, int64(0)).
			Return([]domain.ProcessorPayout{
				{ID: "po_1", Amount: 9900, Currency: "usd", Status: "paid", ArrivalDate: arrival, CreatedAt: arrival},
			}, nil)

		resp := s.request(http.MethodGet, ProcessorPayoutsRoute, nil)
		s.Equal(http.StatusOK, resp.StatusCode)

		var body []ProcessorPayoutResponse
		s.decodeBody(resp, &body)
		s.Require().Len(body, 1)
		s.InDelta(99.00, body[0].Amount, 0.0001)
		s.Equal(arrival.Format(time.RFC3339), body[0].ArrivalDate)
	})

	s.Run("explicit limit", func() {
		s.mockAccounts.EXPECT().ListProcessorPayouts(gomock.Any(), s.currentUserID, int64(5)).
			Return([]domain.ProcessorPayout{}, nil)

		resp := s.request(http.MethodGet, ProcessorPayoutsRoute+"?limit=5", nil)
		s.Equal(http.StatusOK, resp.StatusCode)
		s.Require().NoError(resp.Body.Close())
	})

	for _, limit := range []string{"0", "101", "ten"} {
		s.Run("invalid limit "+limit, func() {
			resp := s.request(http.MethodGet, ProcessorPayoutsRoute+"?limit="+limit, nil)
			s.Equal(http.StatusBadRequest, resp.StatusCode)
			s.Require().NoError(resp.Body.Close())
		})
	}
}

func (s *AccountsHandlerTestSuite) TestDelete() {
	s.Run("without ban", func() {
		s.mockAccounts.EXPECT().DeleteAccount(gomock.Any(), s.currentUserID, false, "").Return(nil)

		resp := s.request(http.MethodDelete, AccountsRoute, nil)
		s.Equal(http.StatusNoContent, resp.StatusCode)
		s.Require().NoError(resp.Body.Close())
	})

	s.Run("with ban", func() {
		s.mockAccounts.EXPECT().DeleteAccount(gomock.Any(), s.currentUserID, true, "chargebacks").Return(nil)

		resp := s.request(http.MethodDelete, AccountsRoute, map[string]any{"ban": true, "reason": "chargebacks"})
		s.Equal(http.StatusNoContent, resp.StatusCode)
		s.Require().NoError(resp.Body.Close())
	})

	s.Run("missing user", func() {
		s.mockAccounts.EXPECT().DeleteAccount(gomock.Any(), s.currentUserID, false, "").
			Return(domain.ErrRecordNotFound)

		resp := s.request(http.MethodDelete, AccountsRoute, nil)
		s.Equal(http.StatusNotFound, resp.StatusCode)
		s.Require().NoError(resp.Body.Close())
	})
}

func (s *AccountsHandlerTestSuite) TestPushTokens() {
	s.Run("register", func() {
		s.mockAccounts.EXPECT().
			RegisterPushToken(gomock.Any(), s.currentUserID, "ExponentPushToken[abc]", "ios").
			Return(nil)

		resp := s.request(http.MethodPost, PushTokensRoute, map[string]string{
			"token":    "ExponentPushToken[abc]",
			"platform": "ios",
		})
		s.Equal(http.StatusNoContent, resp.StatusCode)
		s.Require().NoError(resp.Body.Close())
	})

	s.Run("unknown platform", func() {
		resp := s.request(http.MethodPost, PushTokensRoute, map[string]string{
			"token":    "ExponentPushToken[abc]",
			"platform": "symbian",
		})
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Require().NoError(resp.Body.Close())
	})

	s.Run("remove", func() {
		s.mockAccounts.EXPECT().RemovePushToken(gomock.Any(), s.currentUserID, "abc").Return(nil)

		resp := s.request(http.MethodDelete, "/push-tokens/abc", nil)
		s.Equal(http.StatusNoContent, resp.StatusCode)
		s.Require().NoError(resp.Body.Close())
	})
}
