package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// abortWithDomainError переводит ошибку сервисного слоя в http ответ. Текст ошибки показывается клиенту
// только для ошибок валидации и безопасных сообщений процессора.
func abortWithDomainError(c *gin.Context, err error) {
	var stateErr *domain.InvalidStateError
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.As(err, &stateErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  stateErr.Error(),
			"status": stateErr.Current,
		})
	case errors.Is(err, context.DeadlineExceeded):
		_ = c.AbortWithError(http.StatusRequestTimeout, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoProcessorAccount),
		errors.Is(err, domain.ErrAccountNotReady),
		errors.Is(err, domain.ErrInvalidRedirectURL),
		errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrMalformedPayload):
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrForbidden):
		_ = c.AbortWithError(http.StatusForbidden, err).SetType(gin.ErrorTypePrivate)
	case errors.As(err, &upstreamErr) && upstreamErr.Message != "":
		// первая ошибка уходит клиенту, вторая только в лог
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New(upstreamErr.Message)).
			SetType(gin.ErrorTypePublic)
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

func abortWithBindError(c *gin.Context, err error) {
	_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind | gin.ErrorTypePublic)
}

// majorUnits сумма в основных единицах валюты для ответа клиенту.
func majorUnits(amount int64) float64 {
	return domain.MajorUnits(amount).InexactFloat64()
}

func decimalUnits(amount decimal.Decimal) float64 {
	return amount.InexactFloat64()
}

// bindOptionalJSON разбирает необязательное JSON тело. Пустое тело, в том числе переданное chunked,
// оставляет dst нетронутым. При ошибке разбора запрос прерывается.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		abortWithBindError(c, err)
		return false
	}
	return true
}
