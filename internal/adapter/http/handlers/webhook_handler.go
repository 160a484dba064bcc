package handlers

import (
	"errors"
	"io"
	"net/http"

	"storefront_orders/internal/adapter/http/dto/request"
	"storefront_orders/internal/adapter/http/middleware"
	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase"
	"storefront_orders/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SignatureHeader         = "x-signature"
	ProviderRequestIDHeader = "x-request-id"
)

// WebhookHandler receives Mercado Pago payment notifications.
type WebhookHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewWebhookHandler(uc usecase.IReconciliationUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// ReceiveMercadoPago acknowledges every notification it can attribute to a
// payment. Processing failures are logged by the use case and still answered
// with 200 so the provider does not redeliver forever; the poll path covers
// anything that was missed.
//
// @Summary Mercado Pago webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param payload body request.WebhookRequest false "Notification"
// @Success 200 {object} map[string]string
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/webhooks/mercadopago [post]
func (h *WebhookHandler) ReceiveMercadoPago(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		logger.Info("[payment][webhook] unreadable body, falling back to query", zap.Error(err))
	}

	query := c.Request.URL.Query()
	n := entities.PaymentNotification{
		PaymentID: payload.ResolvePaymentID(query),
		Topic:     payload.ResolveTopic(query),
		RequestID: c.GetHeader(ProviderRequestIDHeader),
		Signature: c.GetHeader(SignatureHeader),
	}

	outcome, err := h.usecase.HandleNotification(c.Request.Context(), n)
	if err != nil {
		logger.Info("[payment][webhook] rejected", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	logger.Info("[payment][webhook] processed", zap.String("payment_id", n.PaymentID), zap.String("outcome", string(outcome)))
	c.JSON(http.StatusOK, gin.H{"status": string(outcome)})
}
