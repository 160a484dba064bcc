package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/infrastructure/payments"

	"github.com/gin-gonic/gin"
)

func TestSandboxHandler_ApprovePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gw, err := payments.NewMercadoPagoGateway(payments.GatewayOptions{Mock: true})
	if err != nil {
		t.Fatalf("mock gateway: %v", err)
	}

	p, err := gw.CreatePayment(context.Background(), entities.PaymentRequest{
		OrderID: "ord-1",
		Method:  entities.PaymentMethodPix,
		Amount:  16800,
		Payer:   entities.Payer{Email: "buyer@test.com"},
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	r := gin.New()
	r.POST("/v1/sandbox/payments/:payment_id/approve", NewSandboxHandler(gw.Mock()).ApprovePayment)

	tests := []struct {
		name     string
		id       string
		wantCode int
		wantBody string
	}{
		{name: "pending pix is approved", id: p.ID, wantCode: http.StatusOK, wantBody: `"status":"approved"`},
		{name: "approving twice is harmless", id: p.ID, wantCode: http.StatusOK, wantBody: `"order_id":"ord-1"`},
		{name: "unknown payment", id: "nope", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/v1/sandbox/payments/"+tt.id+"/approve", "", nil)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}
