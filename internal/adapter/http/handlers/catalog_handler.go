package handlers

import (
	"net/http"
	"time"

	"storefront_orders/internal/adapter/http/dto/response"
	"storefront_orders/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	topSellers usecase.ITopSellersProvider
	now        func() time.Time
}

func NewCatalogHandler(topSellers usecase.ITopSellersProvider) *CatalogHandler {
	return &CatalogHandler{topSellers: topSellers, now: time.Now}
}

// TopSellers serves the latest precomputed ranking. It never recomputes.
//
// @Summary Top sellers
// @Tags products
// @Produce json
// @Success 200 {object} response.TopSellersResponse
// @Router /v1/products/top-sellers [get]
func (h *CatalogHandler) TopSellers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTopSellers(h.topSellers.Current(), h.now()))
}
