package handlers

import (
	"errors"
	"net/http"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase"
	"storefront_orders/pkg"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapDomainError turns a use case error into the API error shape.
//
// Gateway failures the use cases already classified keep the provider codes
// clients were built against; any other gateway failure is a 502.
func mapDomainError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	reason := ""
	if de, ok := entities.DomainErrorOf(err); ok {
		reason = de.Error()
	}

	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", reason, err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientStock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", reason, err, http.StatusConflict)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", reason, err, http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition), errors.Is(err, entities.ErrConcurrentModification):
		return pkg.NewDomainError("INVALID_TRANSITION", reason, err, http.StatusConflict)
	case errors.Is(err, entities.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Operation not allowed for this caller", err, http.StatusForbidden)
	case errors.Is(err, entities.ErrGateway):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
