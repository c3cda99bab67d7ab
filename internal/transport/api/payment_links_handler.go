package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/service"
	"github.com/fsdevblog/paylink/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type PaymentLinksHandler struct {
	svs PaymentLinkServicer
}

func NewPaymentLinksHandler(svs PaymentLinkServicer) *PaymentLinksHandler {
	return &PaymentLinksHandler{
		svs: svs,
	}
}

// Amount в минорных единицах (центах).
type CreatePaymentLinkParams struct {
	MerchantUserID string     `json:"merchantUserId" binding:"required,max_bytes=255"`
	Amount         int64      `json:"amount"         binding:"required,gt=0"`
	Currency       string     `json:"currency"       binding:"omitempty,len=3,alpha"`
	Description    string     `json:"description"    binding:"omitempty,max_bytes=500"`
	CustomerName   string     `json:"customerName"   binding:"omitempty,max_bytes=255,single_line"`
	CustomerEmail  string     `json:"customerEmail"  binding:"omitempty,email"`
	Notes          string     `json:"notes"          binding:"omitempty,max_bytes=2000"`
	DueDate        *time.Time `json:"dueDate"`
}

type CreatePaymentLinkResponse struct {
	ID            string                   `json:"id"`
	PaymentLinkID string                   `json:"paymentLinkId"`
	URL           string                   `json:"url"`
	Status        domain.TransactionStatus `json:"status"`
}

// Create POST RouteGroup + PaymentLinksRoute.
func (h *PaymentLinksHandler) Create(c *gin.Context) {
	var params CreatePaymentLinkParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	currency := domain.NormalizeCurrency(params.Currency)
	if currencyErr := validateCurrency(currency); currencyErr != nil {
		abortWithDomainError(c, domain.NewValidationError("unsupported currency `%s`", params.Currency))
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	link, err := h.svs.Create(reqCtx, service.CreatePaymentLinkArgs{
		RequesterID:    middlewares.CurrentUserID(c),
		MerchantUserID: params.MerchantUserID,
		Amount:         params.Amount,
		Currency:       currency,
		Description:    params.Description,
		CustomerName:   params.CustomerName,
		CustomerEmail:  params.CustomerEmail,
		Notes:          params.Notes,
		DueDate:        params.DueDate,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreatePaymentLinkResponse{
		ID:            link.TransactionID,
		PaymentLinkID: link.PaymentLinkID,
		URL:           link.URL,
		Status:        link.Status,
	})
}

// OwnerParams userId владельца транзакции. Необязателен: по умолчанию берется текущий пользователь.
type OwnerParams struct {
	UserID string `json:"userId"`
}

type DeactivatedLinkResponse struct {
	ID     string                   `json:"id"`
	Active bool                     `json:"active"`
	Status domain.TransactionStatus `json:"status"`
}

// Cancel POST RouteGroup + PaymentLinkCancelRoute.
func (h *PaymentLinksHandler) Cancel(c *gin.Context) {
	h.deactivate(c, h.svs.Cancel)
}

// Expire POST RouteGroup + PaymentLinkExpireRoute.
func (h *PaymentLinksHandler) Expire(c *gin.Context) {
	h.deactivate(c, h.svs.Expire)
}

func (h *PaymentLinksHandler) deactivate(
	c *gin.Context,
	op func(ctx context.Context, requesterID, id string) (*domain.Transaction, error),
) {
	requesterID, ok := requesterFromBody(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := op(reqCtx, requesterID, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeactivatedLinkResponse{
		ID:     t.ID,
		Active: false,
		Status: t.Status,
	})
}

// requesterFromBody сверяет userId из тела с текущим пользователем. Пустое тело допустимо.
func requesterFromBody(c *gin.Context) (string, bool) {
	currentUserID := middlewares.CurrentUserID(c)

	var params OwnerParams
	if !bindOptionalJSON(c, &params) {
		return "", false
	}
	if params.UserID != "" && params.UserID != currentUserID {
		abortWithDomainError(c, domain.ErrForbidden)
		return "", false
	}
	return currentUserID, true
}

type TransactionResponse struct {
	ID                string                   `json:"id"`
	Amount            float64                  `json:"amount"`
	Currency          string                   `json:"currency"`
	Description       string                   `json:"description"`
	Status            domain.TransactionStatus `json:"status"`
	PaymentLinkID     string                   `json:"paymentLinkId,omitempty"`
	PaymentLinkURL    string                   `json:"paymentLinkUrl,omitempty"`
	CustomerName      string                   `json:"customerName,omitempty"`
	CustomerEmail     string                   `json:"customerEmail,omitempty"`
	PaymentMethodType string                   `json:"paymentMethodType,omitempty"`
	CardBrand         string                   `json:"cardBrand,omitempty"`
	CardLast4         string                   `json:"cardLast4,omitempty"`
	Notes             string                   `json:"notes,omitempty"`
	FailureReason     string                   `json:"failureReason,omitempty"`
	CreatedAt         string                   `json:"createdAt"`
	ExpiresAt         *time.Time               `json:"expiresAt,omitempty"`
	CompletedAt       *time.Time               `json:"completedAt,omitempty"`
	FailedAt          *time.Time               `json:"failedAt,omitempty"`
}

// Transactions GET RouteGroup + TransactionsRoute.
func (h *PaymentLinksHandler) Transactions(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.ListTransactions(reqCtx, middlewares.CurrentUserID(c), c.Param("userId"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = TransactionResponse{
			ID:                t.ID,
			Amount:            majorUnits(t.Amount),
			Currency:          t.Currency,
			Description:       t.Description,
			Status:            t.Status,
			PaymentLinkID:     t.PaymentLinkID,
			PaymentLinkURL:    t.PaymentLinkURL,
			CustomerName:      t.CustomerName,
			CustomerEmail:     t.CustomerEmail,
			PaymentMethodType: t.PaymentMethodType,
			CardBrand:         t.CardBrand,
			CardLast4:         t.CardLast4,
			Notes:             t.Notes,
			FailureReason:     t.FailureReason,
			CreatedAt:         t.CreatedAt.Format(time.RFC3339),
			ExpiresAt:         t.ExpiresAt,
			CompletedAt:       t.CompletedAt,
			FailedAt:          t.FailedAt,
		}
	}

	c.JSON(http.StatusOK, response)
}

// validateCurrency проверяет код валюты по ISO 4217 тем же валидатором, что и тело запроса.
func validateCurrency(currency string) error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	return v.Var(currency, "iso4217") //nolint:wrapcheck
}
