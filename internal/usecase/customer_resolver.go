package usecase

import (
	"context"
	"strings"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/infrastructure/metrics"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"

	"go.uber.org/zap"
)

// CustomerResolver maps a user to a gateway customer, creating one on first use.
type CustomerResolver struct {
	customers interfaces.ICustomerRepository
	gateway   interfaces.IPaymentGateway
	timeout   time.Duration
	now       func() time.Time
}

func NewCustomerResolver(customers interfaces.ICustomerRepository, gateway interfaces.IPaymentGateway, timeout time.Duration) *CustomerResolver {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CustomerResolver{customers: customers, gateway: gateway, timeout: timeout, now: time.Now}
}

// Lookup returns the stored gateway customer id, or "" when the user has none.
func (r *CustomerResolver) Lookup(ctx context.Context, userID string) (string, error) {
	c, err := r.customers.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	return c.GatewayCustomerID, nil
}

// Resolve returns the gateway customer id of userID. When none is stored it
// searches the gateway by e-mail, creates the customer if needed and keeps the
// first id stored for the user.
func (r *CustomerResolver) Resolve(ctx context.Context, userID string, payer entities.Payer) (string, error) {
	id, err := r.Lookup(ctx, userID)
	if err != nil || id != "" {
		return id, err
	}

	if r.gateway == nil {
		return "", entities.NewGatewayError("resolve customer", ErrPaymentGatewayNotConfigured)
	}
	email := strings.TrimSpace(payer.Email)
	if email == "" {
		return "", entities.NewValidationError("payer.email is required")
	}

	gc, err := r.search(ctx, email)
	if err != nil {
		return "", err
	}
	if gc.ID == "" {
		payer.Email = email
		if gc, err = r.create(ctx, payer); err != nil {
			return "", err
		}
		logger.Info("[payment][customer] gateway customer created", zap.String("user_id", userID), zap.String("customer_id", gc.ID))
	}

	saved, err := r.customers.SaveIfAbsent(ctx, entities.Customer{
		UserID:            userID,
		GatewayCustomerID: gc.ID,
		Email:             email,
		CreatedAt:         r.now().UTC(),
	})
	if err != nil {
		return "", err
	}
	return saved.GatewayCustomerID, nil
}

func (r *CustomerResolver) search(ctx context.Context, email string) (gc entities.GatewayCustomer, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer func(start time.Time) { metrics.ObserveGateway("search_customer", start, err) }(time.Now())

	gc, err = r.gateway.SearchCustomer(ctx, email)
	if err != nil {
		return entities.GatewayCustomer{}, classifyGatewayError("search customer", err)
	}
	return gc, nil
}

func (r *CustomerResolver) create(ctx context.Context, payer entities.Payer) (gc entities.GatewayCustomer, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	defer func(start time.Time) { metrics.ObserveGateway("create_customer", start, err) }(time.Now())

	gc, err = r.gateway.CreateCustomer(ctx, payer)
	if err != nil {
		return entities.GatewayCustomer{}, classifyGatewayError("create customer", err)
	}
	return gc, nil
}
