package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront_orders/internal/adapter/http/dto/response"
	"storefront_orders/internal/adapter/http/handlers/mocks"
	"storefront_orders/internal/adapter/http/middleware"
	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *CardHandler) *gin.Engine {
		r := gin.New()
		g := r.Group("/v1", middleware.Authenticate())
		g.GET("/cards", h.ListCards)
		g.POST("/cards", h.SaveCard)
		g.DELETE("/cards/:card_id", h.DeleteCard)
		return r
	}

	t.Run("save card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICardUseCase(ctrl)
		uc.EXPECT().SaveCard(gomock.Any(), gomock.Any(), "tok-1", entities.Payer{Email: "buyer@test.com"}).
			Return(entities.SavedCard{ID: "card-1", LastFourDigits: "4242"}, nil)

		w := doRequest(newRouter(NewCardHandler(uc)), http.MethodPost, "/v1/cards", `{"token":"tok-1","payer":{"email":"buyer@test.com"}}`, buyer)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("provider rejects credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICardUseCase(ctrl)
		uc.EXPECT().ListCards(gomock.Any(), gomock.Any()).
			Return(nil, entities.NewGatewayError("list cards", usecase.ErrPaymentGatewayUnauthorized))

		w := doRequest(newRouter(NewCardHandler(uc)), http.MethodGet, "/v1/cards", "", buyer)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if !json.Valid(w.Body.Bytes()) || !strings.Contains(w.Body.String(), "PAYMENT_PROVIDER_UNAUTHORIZED") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("delete missing card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICardUseCase(ctrl)
		uc.EXPECT().DeleteCard(gomock.Any(), gomock.Any(), "card-9").Return(entities.NewNotFoundError("card", "card-9"))

		w := doRequest(newRouter(NewCardHandler(uc)), http.MethodDelete, "/v1/cards/card-9", "", buyer)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_TopSellers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockITopSellersProvider(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	provider.EXPECT().Current().Return(entities.TopSellersSnapshot{
		Items:      []entities.TopSeller{{ProductID: "p-1", ProductName: "Tee", Quantity: 9}},
		ComputedAt: now.Add(-2 * time.Hour),
		StaleAfter: now.Add(-time.Hour),
	})

	h := NewCatalogHandler(provider)
	h.now = func() time.Time { return now }
	r := gin.New()
	r.GET("/v1/products/top-sellers", h.TopSellers)

	w := doRequest(r, http.MethodGet, "/v1/products/top-sellers", "", nil)
	var body response.TopSellersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusOK || !body.Stale || len(body.Items) != 1 {
		t.Fatalf("unexpected response %d %+v", w.Code, body)
	}
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHealthHandler("test", map[string]HealthCheck{
		"store": func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})
	r := gin.New()
	r.GET("/ping", h.Ping)
	r.GET("/health", h.Health)

	if w := doRequest(r, http.MethodGet, "/ping", "", nil); w.Code != http.StatusOK {
		t.Fatalf("ping: %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/health", "", nil); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("health: %d", w.Code)
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		code string
		http int
	}{
		{entities.NewValidationError("bad zip"), "VALIDATION_ERROR", http.StatusBadRequest},
		{entities.NewInsufficientStockError("sl-1", 3), "INSUFFICIENT_STOCK", http.StatusConflict},
		{entities.NewNotFoundError("order", "o-1"), "NOT_FOUND", http.StatusNotFound},
		{entities.NewConcurrentModificationError("order", "o-1"), "INVALID_TRANSITION", http.StatusConflict},
		{entities.NewForbiddenError("order", "o-1"), "FORBIDDEN", http.StatusForbidden},
		{entities.NewGatewayError("create payment", errors.New("eof")), "PAYMENT_PROVIDER_ERROR", http.StatusBadGateway},
		{entities.NewGatewayError("create payment", usecase.ErrPaymentGatewayInvalidUsers), "PAYMENT_PROVIDER_INVALID_USERS", http.StatusBadRequest},
		{errors.New("disk full"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := mapDomainError(tt.err)
			if got.Code != tt.code || got.HTTPStatus != tt.http {
				t.Fatalf("got %s/%d, want %s/%d", got.Code, got.HTTPStatus, tt.code, tt.http)
			}
		})
	}
}
