package handlers

import (
	"net/http"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentApprover settles a pending charge on a simulated provider.
type PaymentApprover interface {
	Approve(paymentID string) (entities.GatewayPayment, error)
}

// SandboxHandler is only mounted when the gateway runs in mock mode. It lets a
// local run pay a pix code or boleto; the order is confirmed by the next
// payment-status poll, the same way a missed webhook is recovered.
type SandboxHandler struct {
	approver PaymentApprover
}

func NewSandboxHandler(approver PaymentApprover) *SandboxHandler {
	return &SandboxHandler{approver: approver}
}

// ApprovePayment
//
// @Summary Approve a mock payment
// @Tags sandbox
// @Produce json
// @Param payment_id path string true "Provider payment id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/sandbox/payments/{payment_id}/approve [post]
func (h *SandboxHandler) ApprovePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	p, err := h.approver.Approve(paymentID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	logger.Info("[payment][sandbox] payment approved",
		zap.String("provider_payment_id", p.ID),
		zap.String("order_id", p.ExternalReference),
	)
	c.JSON(http.StatusOK, gin.H{
		"payment_id": p.ID,
		"order_id":   p.ExternalReference,
		"status":     p.Status,
	})
}
