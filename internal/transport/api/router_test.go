package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/paylink/internal/logger"
	"github.com/fsdevblog/paylink/internal/transport/api/mocks"
	"github.com/fsdevblog/paylink/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// routerTestSuite общая основа для тестов обработчиков: роутер с моками сервисов и токен текущего пользователя.
type routerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockPaymentLinks    *mocks.MockPaymentLinkServicer
	mockWebhooks        *mocks.MockWebhookServicer
	mockAccounts        *mocks.MockAccountServicer
	mockPayouts         *mocks.MockPayoutServicer
	jwtSecret           []byte
	currentUserID       string
	currentUserJWTToken string
}

func (s *routerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())

	s.mockPaymentLinks = mocks.NewMockPaymentLinkServicer(s.mockCtrl)
	s.mockWebhooks = mocks.NewMockWebhookServicer(s.mockCtrl)
	s.mockAccounts = mocks.NewMockAccountServicer(s.mockCtrl)
	s.mockPayouts = mocks.NewMockPayoutServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, err := New(RouterArgs{
		Logger:             logger.New(io.Discard),
		PaymentLinkService: s.mockPaymentLinks,
		WebhookService:     s.mockWebhooks,
		AccountService:     s.mockAccounts,
		PayoutService:      s.mockPayouts,
		JWTSecretKey:       s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router

	s.currentUserID = "apple|000123.abc"
	token, tokenErr := tokens.GenerateUserJWT(s.currentUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.currentUserJWTToken = token
}

func (s *routerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// decodeBody читает JSON ответ и закрывает тело.
func (s *routerTestSuite) decodeBody(resp *http.Response, dst any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(dst))
}
