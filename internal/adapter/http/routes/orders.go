package routes

import (
	"storefront_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders     = "/orders"
	PathExchanges  = "/exchanges"
	PathCards      = "/cards"
	PathAdmin      = "/admin"
	PathTopSellers = "/products/top-sellers"
	PathWebhooks   = "/webhooks"
	PathSandbox    = "/sandbox"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, exchangeHandler *handlers.ExchangeHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListMyOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.POST("/:order_id/cancel", orderHandler.CancelOrder)
		orders.GET("/:order_id/payment-status", orderHandler.GetPaymentStatus)
		orders.GET("/:order_id/pix-code", orderHandler.GetPixCode)
		orders.POST("/:order_id/exchanges", exchangeHandler.RequestExchange)
	}
}

func addExchangeRoutes(rg *gin.RouterGroup, exchangeHandler *handlers.ExchangeHandler) {
	exchanges := rg.Group(PathExchanges)
	{
		exchanges.GET("", exchangeHandler.ListExchanges)
		exchanges.PATCH("/:exchange_id", exchangeHandler.ResolveExchange)
	}
}

func addCardRoutes(rg *gin.RouterGroup, cardHandler *handlers.CardHandler) {
	cards := rg.Group(PathCards)
	{
		cards.GET("", cardHandler.ListCards)
		cards.POST("", cardHandler.SaveCard)
		cards.DELETE("/:card_id", cardHandler.DeleteCard)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET(PathOrders, orderHandler.ListAllOrders)
	}
}
