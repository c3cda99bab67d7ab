package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/service"
	"github.com/fsdevblog/paylink/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

const maxProcessorPayoutsLimit = 100

type AccountsHandler struct {
	svs AccountServicer
}

func NewAccountsHandler(svs AccountServicer) *AccountsHandler {
	return &AccountsHandler{
		svs: svs,
	}
}

type CreateAccountParams struct {
	Email        string `json:"email"        binding:"omitempty,email"`
	FullName     string `json:"fullName"     binding:"omitempty,max_bytes=255,single_line"`
	Country      string `json:"country"      binding:"omitempty,len=2,alpha"`
	Currency     string `json:"currency"     binding:"omitempty,len=3,alpha"`
	BusinessName string `json:"businessName" binding:"omitempty,max_bytes=255,single_line"`
	BusinessURL  string `json:"businessUrl"  binding:"omitempty,url"`
}

type AccountResponse struct {
	UserID              string `json:"userId"`
	AccountID           string `json:"accountId"`
	Country             string `json:"country"`
	DefaultCurrency     string `json:"defaultCurrency"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}

// Create POST RouteGroup + AccountsRoute.
func (h *AccountsHandler) Create(c *gin.Context) {
	var params CreateAccountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.svs.CreateConnectedAccount(reqCtx, service.CreateConnectedAccountArgs{
		UserID:       middlewares.CurrentUserID(c),
		Email:        params.Email,
		FullName:     params.FullName,
		Country:      params.Country,
		Currency:     params.Currency,
		BusinessName: params.BusinessName,
		BusinessURL:  params.BusinessURL,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{
		UserID:              user.ID,
		AccountID:           user.ProcessorAccountID,
		Country:             user.Country,
		DefaultCurrency:     user.DefaultCurrency,
		OnboardingCompleted: user.OnboardingCompleted,
	})
}

type OnboardingLinkParams struct {
	RefreshURL string `json:"refreshUrl"`
	ReturnURL  string `json:"returnUrl"`
}

// OnboardingLink POST RouteGroup + OnboardingLinkRoute. Пустые адреса заменяются адресами из конфигурации,
// проверка схемы выполняется в шлюзе.
func (h *AccountsHandler) OnboardingLink(c *gin.Context) {
	var params OnboardingLinkParams
	if !bindOptionalJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	url, err := h.svs.CreateOnboardingLink(reqCtx, middlewares.CurrentUserID(c), params.RefreshURL, params.ReturnURL)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Status GET RouteGroup + AccountStatusRoute.
func (h *AccountsHandler) Status(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	status, err := h.svs.GetAccountStatus(reqCtx, middlewares.CurrentUserID(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             status,
		"onboardingComplete": status.OnboardingComplete(),
	})
}

type MoneyResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type BalanceResponse struct {
	Available []MoneyResponse `json:"available"`
	Pending   []MoneyResponse `json:"pending"`
}

// Balance GET RouteGroup + AccountBalanceRoute.
func (h *AccountsHandler) Balance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.GetBalance(reqCtx, middlewares.CurrentUserID(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Available: moneyResponse(balance.Available),
		Pending:   moneyResponse(balance.Pending),
	})
}

type ProcessorPayoutResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	ArrivalDate string  `json:"arrivalDate"`
	CreatedAt   string  `json:"createdAt"`
}

// ProcessorPayouts GET RouteGroup + ProcessorPayoutsRoute?limit=N.
func (h *AccountsHandler) ProcessorPayouts(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || parsed <= 0 || parsed > maxProcessorPayoutsLimit {
			abortWithDomainError(c, domain.NewValidationError("limit must be between 1 and %d", maxProcessorPayoutsLimit))
			return
		}
		limit = parsed
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payouts, err := h.svs.ListProcessorPayouts(reqCtx, middlewares.CurrentUserID(c), limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]ProcessorPayoutResponse, len(payouts))
	for i, p := range payouts {
		response[i] = ProcessorPayoutResponse{
			ID:          p.ID,
			Amount:      majorUnits(p.Amount),
			Currency:    p.Currency,
			Status:      p.Status,
			ArrivalDate: p.ArrivalDate.Format(time.RFC3339),
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, response)
}

type DeleteAccountParams struct {
	Ban    bool   `json:"ban"`
	Reason string `json:"reason" binding:"omitempty,max_bytes=500"`
}

// Delete DELETE RouteGroup + AccountsRoute.
func (h *AccountsHandler) Delete(c *gin.Context) {
	var params DeleteAccountParams
	if !bindOptionalJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.DeleteAccount(reqCtx, middlewares.CurrentUserID(c), params.Ban, params.Reason); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}

type PushTokenParams struct {
	Token    string `json:"token"    binding:"required,max_bytes=255"`
	Platform string `json:"platform" binding:"omitempty,oneof=ios android web"`
}

// RegisterPushToken POST RouteGroup + PushTokensRoute.
func (h *AccountsHandler) RegisterPushToken(c *gin.Context) {
	var params PushTokenParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := h.svs.RegisterPushToken(reqCtx, middlewares.CurrentUserID(c), params.Token, params.Platform)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}

// RemovePushToken DELETE RouteGroup + PushTokenRoute.
func (h *AccountsHandler) RemovePushToken(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.RemovePushToken(reqCtx, middlewares.CurrentUserID(c), c.Param("token")); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}

func moneyResponse(amounts []domain.Money) []MoneyResponse {
	response := make([]MoneyResponse, len(amounts))
	for i, m := range amounts {
		response[i] = MoneyResponse{
			Amount:   majorUnits(m.Amount),
			Currency: m.Currency,
		}
	}
	return response
}
