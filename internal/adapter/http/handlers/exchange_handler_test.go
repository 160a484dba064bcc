package handlers

import (
	"net/http"
	"testing"

	"storefront_orders/internal/adapter/http/handlers/mocks"
	"storefront_orders/internal/adapter/http/middleware"
	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newExchangeRouter(h *ExchangeHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", middleware.Authenticate())
	g.POST("/orders/:order_id/exchanges", h.RequestExchange)
	g.GET("/exchanges", h.ListExchanges)
	g.PATCH("/exchanges/:exchange_id", h.ResolveExchange)
	return r
}

func TestExchangeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staff := map[string]string{middleware.UserIDHeader: "admin", middleware.UserPermissionsHeader: entities.PermissionExchangesManage}

	t.Run("request created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		uc.EXPECT().RequestExchange(gomock.Any(), entities.Actor{UserID: "u-1"}, "o-1", usecase.RequestExchangeCommand{
			Kind: entities.ExchangeKindReturn, Reason: "too small",
		}).Return(entities.ExchangeRequest{ID: "ex-1", OrderID: "o-1", Status: entities.ExchangeStatusPending}, nil)

		w := doRequest(newExchangeRouter(NewExchangeHandler(uc)), http.MethodPost, "/v1/orders/o-1/exchanges",
			`{"kind":"Return","reason":" too small "}`, buyer)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("request on unpaid order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		uc.EXPECT().RequestExchange(gomock.Any(), gomock.Any(), "o-1", gomock.Any()).
			Return(entities.ExchangeRequest{}, entities.NewInvalidTransitionError("order", "o-1", entities.OrderStatusPending, entities.OrderStatusExchangeRequested))

		w := doRequest(newExchangeRouter(NewExchangeHandler(uc)), http.MethodPost, "/v1/orders/o-1/exchanges", `{"reason":"x"}`, buyer)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("resolve requires decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExchangeUseCase(ctrl)

		w := doRequest(newExchangeRouter(NewExchangeHandler(uc)), http.MethodPatch, "/v1/exchanges/ex-1", `{"admin_notes":"ok"}`, staff)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("resolve rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		uc.EXPECT().ResolveExchange(gomock.Any(), gomock.Any(), "ex-1", false, "no stock").
			Return(entities.ExchangeRequest{ID: "ex-1", Status: entities.ExchangeStatusRejected}, nil)

		w := doRequest(newExchangeRouter(NewExchangeHandler(uc)), http.MethodPatch, "/v1/exchanges/ex-1",
			`{"approve":false,"admin_notes":"no stock"}`, staff)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("list forwards status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		uc.EXPECT().ListExchanges(gomock.Any(), gomock.Any(), entities.ExchangeStatusPending).Return(nil, nil)

		w := doRequest(newExchangeRouter(NewExchangeHandler(uc)), http.MethodGet, "/v1/exchanges?status=pending", "", staff)
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
