package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type PayoutsHandler struct {
	svs PayoutServicer
}

func NewPayoutsHandler(svs PayoutServicer) *PayoutsHandler {
	return &PayoutsHandler{
		svs: svs,
	}
}

type PayoutResponse struct {
	ID           string              `json:"id"`
	Amount       float64             `json:"amount"`
	Currency     string              `json:"currency"`
	Status       domain.PayoutStatus `json:"status"`
	Description  string              `json:"description"`
	ScheduledAt  string              `json:"scheduledAt"`
	CompletedAt  *time.Time          `json:"completedAt,omitempty"`
	NextPayoutAt *time.Time          `json:"nextPayoutAt,omitempty"`
}

// Index GET RouteGroup + PayoutsRoute.
func (h *PayoutsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payouts, err := h.svs.ListPayouts(reqCtx, middlewares.CurrentUserID(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]PayoutResponse, len(payouts))
	for i, p := range payouts {
		response[i] = PayoutResponse{
			ID:           p.ID,
			Amount:       decimalUnits(p.Amount),
			Currency:     p.Currency,
			Status:       p.Status,
			Description:  p.Description,
			ScheduledAt:  p.ScheduledAt.Format(time.RFC3339),
			CompletedAt:  p.CompletedAt,
			NextPayoutAt: p.NextPayoutAt,
		}
	}
	c.JSON(http.StatusOK, response)
}
