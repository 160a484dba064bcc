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

// OrderHandler exposes checkout and the order read/cancel endpoints.
type OrderHandler struct {
	usecase        usecase.IOrderUseCase
	reconciliation usecase.IReconciliationUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase, reconciliation usecase.IReconciliationUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, reconciliation: reconciliation}
}

// CreateOrder reserves stock, prices the order and submits the payment.
//
// A failed payment submission still answers 201: the order exists in PENDING
// and payment_error tells the client to retry through the payment-status or
// pix-code endpoints.
//
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param payload body request.CreateOrderRequest true "Checkout payload"
// @Success 201 {object} response.CreateOrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	log := logger.WithRequestID(middleware.RequestIDFrom(c))

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Info("[order][handler] invalid payload", zap.String("user_id", actor.UserID), zap.Error(err))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.WithMessage(err.Error()).ToHTTPError())
		return
	}

	log.Info("[order][handler] create start", zap.String("user_id", actor.UserID), zap.Int("items", len(payload.Items)),
		zap.String("payment_method", payload.PaymentMethod))
	created, err := h.usecase.CreateOrder(c.Request.Context(), actor, payload.ToCommand())
	if err != nil {
		log.Warn("[order][handler] create failed", zap.String("user_id", actor.UserID), zap.Error(err))
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.CreateOrderResponse{Order: response.FromOrder(created.Order), Payment: created.Payment}
	if created.PaymentError != nil {
		res.PaymentError = mapDomainError(created.PaymentError).Message
		log.Warn("[order][handler] order stored without payment", zap.String("order_id", created.Order.ID), zap.Error(created.PaymentError))
	}
	log.Info("[order][handler] create success", zap.String("order_id", created.Order.ID), zap.Int64("total_cents", int64(created.Order.Total)))
	c.JSON(http.StatusCreated, res)
}

// GetOrder returns one order visible to the caller.
//
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param order_id path string true "Order id"
// @Success 200 {object} response.OrderResponse
// @Failure 403 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), middleware.ActorFrom(c), c.Param("order_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListMyOrders returns the caller's orders, newest first.
//
// @Summary List my orders
// @Tags orders
// @Produce json
// @Success 200 {array} response.OrderResponse
// @Router /v1/orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.usecase.ListMyOrders(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ListAllOrders is the back-office listing, optionally filtered by ?status=.
//
// @Summary List all orders
// @Tags admin
// @Produce json
// @Param status query string false "Order status"
// @Success 200 {array} response.OrderResponse
// @Failure 403 {object} pkg.HTTPError
// @Router /v1/admin/orders [get]
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	status := entities.OrderStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
	orders, err := h.usecase.ListAllOrders(c.Request.Context(), middleware.ActorFrom(c), status)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CancelOrder cancels a PENDING order and returns its stock.
//
// @Summary Cancel an order
// @Tags orders
// @Produce json
// @Param order_id path string true "Order id"
// @Success 200 {object} response.OrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/orders/{order_id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	orderID := c.Param("order_id")

	order, err := h.usecase.CancelOrder(c.Request.Context(), actor, orderID)
	if err != nil {
		logger.Info("[order][handler] cancel failed", zap.String("order_id", orderID), zap.String("user_id", actor.UserID), zap.Error(err))
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Info("[order][handler] cancel success", zap.String("order_id", orderID), zap.String("user_id", actor.UserID))
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetPaymentStatus polls the gateway for a PENDING order.
//
// @Summary Poll payment status
// @Tags orders
// @Produce json
// @Param order_id path string true "Order id"
// @Success 200 {object} response.PaymentStatusResponse
// @Router /v1/orders/{order_id}/payment-status [get]
func (h *OrderHandler) GetPaymentStatus(c *gin.Context) {
	view, err := h.reconciliation.PollPaymentStatus(c.Request.Context(), middleware.ActorFrom(c), c.Param("order_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentStatus(view))
}

// GetPixCode returns the QR code of the payment attached to a pix order.
//
// @Summary Get pix code
// @Tags orders
// @Produce json
// @Param order_id path string true "Order id"
// @Success 200 {object} entities.PaymentArtifact
// @Router /v1/orders/{order_id}/pix-code [get]
func (h *OrderHandler) GetPixCode(c *gin.Context) {
	artifact, err := h.usecase.GetPixCode(c.Request.Context(), middleware.ActorFrom(c), c.Param("order_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, artifact)
}
