package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxWebhookPayloadBytes процессор не присылает события больше 512KB.
const maxWebhookPayloadBytes = 512 * 1024

var errMissingSignature = errors.New("missing webhook signature")

type WebhooksHandler struct {
	svs WebhookServicer
}

func NewWebhooksHandler(svs WebhookServicer) *WebhooksHandler {
	return &WebhooksHandler{
		svs: svs,
	}
}

// Payments POST RouteGroup + PaymentWebhooksRoute. Тело читается как есть: подпись считается от сырых байт.
func (h *WebhooksHandler) Payments(c *gin.Context) {
	signature := c.GetHeader(SignatureHeader)
	if signature == "" {
		signature = c.GetHeader(FallbackSignatureHeader)
	}
	if signature == "" {
		_ = c.AbortWithError(http.StatusBadRequest, errMissingSignature).SetType(gin.ErrorTypePublic)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookPayloadBytes)
	payload, err := c.GetRawData()
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			_ = c.AbortWithError(http.StatusRequestEntityTooLarge, err).SetType(gin.ErrorTypePrivate)
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePrivate)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if handleErr := h.svs.HandleWebhook(reqCtx, payload, signature); handleErr != nil {
		abortWithDomainError(c, handleErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
