package usecase

import (
	"errors"
	"fmt"
	"strings"

	"storefront_orders/internal/domain/entities"
)

var (
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
)

// classifyGatewayError wraps a provider failure as a gateway DomainError,
// tagging the well-known Mercado Pago failures so handlers can map them.
// Errors the adapter already classified pass through unchanged.
func classifyGatewayError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := entities.DomainErrorOf(err); ok {
		return err
	}
	switch {
	case isGatewayCustomerNotFound(err):
		err = fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case isGatewayInvalidUsers(err):
		err = fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case isGatewayUnauthorized(err):
		err = fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case isGatewayBadRequest(err):
		err = fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return entities.NewGatewayError(operation, err)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
