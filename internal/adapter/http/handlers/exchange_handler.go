package handlers

import (
	"net/http"
	"strings"

	"storefront_orders/internal/adapter/http/dto/request"
	"storefront_orders/internal/adapter/http/dto/response"
	"storefront_orders/internal/adapter/http/middleware"
	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase"
	"storefront_orders/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExchangeHandler struct {
	usecase usecase.IExchangeUseCase
}

func NewExchangeHandler(uc usecase.IExchangeUseCase) *ExchangeHandler {
	return &ExchangeHandler{usecase: uc}
}

// RequestExchange opens an exchange or return for a paid order.
//
// @Summary Request an exchange
// @Tags exchanges
// @Accept json
// @Produce json
// @Param order_id path string true "Order id"
// @Param payload body request.ExchangeCreateRequest true "Exchange payload"
// @Success 201 {object} response.ExchangeResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/orders/{order_id}/exchanges [post]
func (h *ExchangeHandler) RequestExchange(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	orderID := c.Param("order_id")

	var payload request.ExchangeCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.WithMessage(err.Error()).ToHTTPError())
		return
	}

	ex, err := h.usecase.RequestExchange(c.Request.Context(), actor, orderID, payload.ToCommand())
	if err != nil {
		logger.Info("[exchange][handler] request failed", zap.String("order_id", orderID), zap.String("user_id", actor.UserID), zap.Error(err))
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Info("[exchange][handler] request success", zap.String("order_id", orderID), zap.String("exchange_id", ex.ID))
	c.JSON(http.StatusCreated, response.FromExchange(ex))
}

// ListExchanges returns the caller's requests, or every request for staff.
//
// @Summary List exchanges
// @Tags exchanges
// @Produce json
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {array} response.ExchangeResponse
// @Router /v1/exchanges [get]
func (h *ExchangeHandler) ListExchanges(c *gin.Context) {
	status := entities.ExchangeStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
	list, err := h.usecase.ListExchanges(c.Request.Context(), middleware.ActorFrom(c), status)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExchanges(list))
}

// ResolveExchange approves or rejects a pending request.
//
// @Summary Resolve an exchange
// @Tags exchanges
// @Accept json
// @Produce json
// @Param exchange_id path string true "Exchange id"
// @Param payload body request.ExchangeResolveRequest true "Decision"
// @Success 200 {object} response.ExchangeResponse
// @Failure 403 {object} pkg.HTTPError
// @Router /v1/exchanges/{exchange_id} [patch]
func (h *ExchangeHandler) ResolveExchange(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	exchangeID := c.Param("exchange_id")

	var payload request.ExchangeResolveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.WithMessage(err.Error()).ToHTTPError())
		return
	}

	ex, err := h.usecase.ResolveExchange(c.Request.Context(), actor, exchangeID, *payload.Approve, strings.TrimSpace(payload.AdminNotes))
	if err != nil {
		logger.Info("[exchange][handler] resolve failed", zap.String("exchange_id", exchangeID), zap.String("user_id", actor.UserID), zap.Error(err))
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Info("[exchange][handler] resolve success", zap.String("exchange_id", exchangeID), zap.String("status", string(ex.Status)))
	c.JSON(http.StatusOK, response.FromExchange(ex))
}
