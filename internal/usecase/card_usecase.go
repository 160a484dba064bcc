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

// ICardUseCase manages the cards saved on the caller's gateway customer.
type ICardUseCase interface {
	ListCards(ctx context.Context, actor entities.Actor) ([]entities.SavedCard, error)
	SaveCard(ctx context.Context, actor entities.Actor, token string, payer entities.Payer) (entities.SavedCard, error)
	DeleteCard(ctx context.Context, actor entities.Actor, cardID string) error
}

type CardUseCase struct {
	gateway   interfaces.IPaymentGateway
	customers *CustomerResolver
	timeout   time.Duration
}

var _ ICardUseCase = (*CardUseCase)(nil)

func NewCardUseCase(gateway interfaces.IPaymentGateway, customers *CustomerResolver, timeout time.Duration) *CardUseCase {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CardUseCase{gateway: gateway, customers: customers, timeout: timeout}
}

// ListCards returns an empty list for users that never paid by card.
func (u *CardUseCase) ListCards(ctx context.Context, actor entities.Actor) (cards []entities.SavedCard, err error) {
	if !actor.Authenticated() {
		return nil, entities.NewForbiddenError("card", "")
	}
	customerID, err := u.customers.Lookup(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return []entities.SavedCard{}, nil
	}
	if u.gateway == nil {
		return nil, entities.NewGatewayError("list cards", ErrPaymentGatewayNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	defer func(start time.Time) { metrics.ObserveGateway("list_cards", start, err) }(time.Now())

	cards, err = u.gateway.ListCards(ctx, customerID)
	if err != nil {
		return nil, classifyGatewayError("list cards", err)
	}
	if cards == nil {
		cards = []entities.SavedCard{}
	}
	return cards, nil
}

func (u *CardUseCase) SaveCard(ctx context.Context, actor entities.Actor, token string, payer entities.Payer) (card entities.SavedCard, err error) {
	if !actor.Authenticated() {
		return entities.SavedCard{}, entities.NewForbiddenError("card", "")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.SavedCard{}, entities.NewValidationError("token is required")
	}
	if u.gateway == nil {
		return entities.SavedCard{}, entities.NewGatewayError("save card", ErrPaymentGatewayNotConfigured)
	}
	customerID, err := u.customers.Resolve(ctx, actor.UserID, payer)
	if err != nil {
		return entities.SavedCard{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	defer func(start time.Time) { metrics.ObserveGateway("save_card", start, err) }(time.Now())

	card, err = u.gateway.SaveCard(ctx, customerID, token)
	if err != nil {
		return entities.SavedCard{}, classifyGatewayError("save card", err)
	}
	logger.Info("[card][usecase] card saved", zap.String("user_id", actor.UserID), zap.String("card_id", card.ID))
	return card, nil
}

func (u *CardUseCase) DeleteCard(ctx context.Context, actor entities.Actor, cardID string) (err error) {
	if !actor.Authenticated() {
		return entities.NewForbiddenError("card", cardID)
	}
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.NewValidationError("card id is required")
	}
	customerID, err := u.customers.Lookup(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if customerID == "" {
		return entities.NewNotFoundError("card", cardID)
	}
	if u.gateway == nil {
		return entities.NewGatewayError("delete card", ErrPaymentGatewayNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	defer func(start time.Time) { metrics.ObserveGateway("delete_card", start, err) }(time.Now())

	if err = u.gateway.DeleteCard(ctx, customerID, cardID); err != nil {
		return classifyGatewayError("delete card", err)
	}
	logger.Info("[card][usecase] card deleted", zap.String("user_id", actor.UserID), zap.String("card_id", cardID))
	return nil
}
