package entities

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError(t *testing.T) {
	t.Run("kind is matched through wrapping", func(t *testing.T) {
		err := fmt.Errorf("create order: %w", NewInsufficientStockError("sku-1", 2))
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		de, ok := DomainErrorOf(err)
		if !ok || de.ID != "sku-1" {
			t.Fatalf("expected domain error for sku-1, got %+v", de)
		}
		if de.Error() != "insufficient stock: stock_line sku-1: requested 2" {
			t.Fatalf("unexpected message: %s", de.Error())
		}
	})

	t.Run("gateway error keeps cause", func(t *testing.T) {
		cause := errors.New("timeout")
		err := NewGatewayError("create payment", cause)
		if !errors.Is(err, ErrGateway) || !errors.Is(err, cause) {
			t.Fatalf("expected gateway kind and cause, got %v", err)
		}
	})

	t.Run("late payment is an invalid transition", func(t *testing.T) {
		if !errors.Is(ErrLatePayment, ErrInvalidTransition) {
			t.Fatal("ErrLatePayment must wrap ErrInvalidTransition")
		}
	})

	t.Run("not found message", func(t *testing.T) {
		if got := NewNotFoundError("order", "o-1").Error(); got != "not found: order o-1" {
			t.Fatalf("unexpected message: %s", got)
		}
	})
}
