package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/customercard"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const defaultBoletoMethodID = "bolbradesco"

// searchLimit bounds how many payments are read per external reference.
const searchLimit = 30

type paymentAPI interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

type customerAPI interface {
	Create(ctx context.Context, request customer.Request) (*customer.Response, error)
	Search(ctx context.Context, request customer.SearchRequest) (*customer.SearchResponse, error)
}

type cardAPI interface {
	Create(ctx context.Context, customerID string, request customercard.Request) (*customercard.Response, error)
	List(ctx context.Context, customerID string) ([]customercard.Response, error)
	Delete(ctx context.Context, customerID, cardID string) (*customercard.Response, error)
}

type GatewayOptions struct {
	AccessToken    string
	Mock           bool
	BoletoMethodID string
	// HTTPTimeout bounds a single HTTP exchange with the provider.
	HTTPTimeout time.Duration
}

// MercadoPagoGateway implements IPaymentGateway on top of the Mercado Pago SDK,
// or on an in-memory ledger when mock mode is enabled.
type MercadoPagoGateway struct {
	payments  paymentAPI
	customers customerAPI
	cards     cardAPI
	mock      *MockLedger
	boletoID  string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts GatewayOptions) (*MercadoPagoGateway, error) {
	boletoID := opts.BoletoMethodID
	if boletoID == "" {
		boletoID = defaultBoletoMethodID
	}
	if opts.Mock {
		logger.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mock: NewMockLedger(time.Now), boletoID: boletoID}, nil
	}

	if opts.AccessToken == "" {
		logger.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	httpClient := &http.Client{
		Timeout:   opts.HTTPTimeout,
		Transport: idempotencyTransport{base: http.DefaultTransport},
	}
	cfg, err := config.New(opts.AccessToken, config.WithHTTPClient(httpClient))
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments:  payment.NewClient(cfg),
		customers: customer.NewClient(cfg),
		cards:     customercard.NewClient(cfg),
		boletoID:  boletoID,
	}, nil
}

// Mock returns the in-memory ledger, or nil when the real provider is used.
func (g *MercadoPagoGateway) Mock() *MockLedger {
	if g == nil {
		return nil
	}
	return g.mock
}

func (g *MercadoPagoGateway) ready() error {
	if g == nil || (g.mock == nil && g.payments == nil) {
		logger.Error("[payment][gateway] gateway not configured")
		return ErrMercadoPagoGatewayNotConfigured
	}
	return nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.GatewayPayment, error) {
	if err := g.ready(); err != nil {
		return entities.GatewayPayment{}, err
	}
	body, err := buildPaymentRequest(req, g.boletoID)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	if g.mock != nil {
		return g.mock.createPayment(req, body), nil
	}

	logger.Info("[payment][gateway] create start",
		zap.String("order_id", req.OrderID),
		zap.String("method", string(req.Method)),
	)

	var sdkReq payment.Request
	if err := convert(body, &sdkReq); err != nil {
		return entities.GatewayPayment{}, fmt.Errorf("build payment request: %w", err)
	}
	resp, err := g.payments.Create(WithIdempotencyKey(ctx, req.IdempotencyKey), sdkReq)
	if err != nil {
		logger.Error("[payment][gateway] sdk create failed", zap.String("order_id", req.OrderID), zap.Error(err))
		return entities.GatewayPayment{}, err
	}

	p, err := decodePayment(resp)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	logger.Info("[payment][gateway] create success",
		zap.String("provider_payment_id", p.ID),
		zap.String("provider_status", p.Status),
	)
	return p, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	if err := g.ready(); err != nil {
		return entities.GatewayPayment{}, err
	}
	if g.mock != nil {
		return g.mock.getPayment(paymentID), nil
	}

	id, ok := parsePaymentID(paymentID)
	if !ok {
		return entities.GatewayPayment{}, nil
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return entities.GatewayPayment{}, nil
		}
		logger.Error("[payment][gateway] sdk get failed", zap.String("payment_id", paymentID), zap.Error(err))
		return entities.GatewayPayment{}, err
	}
	return decodePayment(resp)
}

func (g *MercadoPagoGateway) SearchPayments(ctx context.Context, externalReference string) ([]entities.GatewayPayment, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	if g.mock != nil {
		return g.mock.searchPayments(externalReference), nil
	}

	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Limit: searchLimit,
		Filters: map[string]string{
			"external_reference": externalReference,
			"sort":               "date_created",
			"criteria":           "desc",
		},
	})
	if err != nil {
		logger.Error("[payment][gateway] sdk search failed", zap.String("external_reference", externalReference), zap.Error(err))
		return nil, err
	}

	var page wireSearch
	if err := convert(resp, &page); err != nil {
		return nil, fmt.Errorf("decode payment search: %w", err)
	}
	out := make([]entities.GatewayPayment, 0, len(page.Results))
	for _, raw := range page.Results {
		p, err := decodePayment(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (g *MercadoPagoGateway) SearchCustomer(ctx context.Context, email string) (entities.GatewayCustomer, error) {
	if err := g.ready(); err != nil {
		return entities.GatewayCustomer{}, err
	}
	if g.mock != nil {
		return g.mock.searchCustomer(email), nil
	}

	resp, err := g.customers.Search(ctx, customer.SearchRequest{
		Limit:   1,
		Filters: map[string]string{"email": email},
	})
	if err != nil {
		return entities.GatewayCustomer{}, err
	}
	var page struct {
		Results []wireCustomer `json:"results"`
	}
	if err := convert(resp, &page); err != nil {
		return entities.GatewayCustomer{}, fmt.Errorf("decode customer search: %w", err)
	}
	if len(page.Results) == 0 {
		return entities.GatewayCustomer{}, nil
	}
	return entities.GatewayCustomer{ID: page.Results[0].ID, Email: page.Results[0].Email}, nil
}

func (g *MercadoPagoGateway) CreateCustomer(ctx context.Context, payer entities.Payer) (entities.GatewayCustomer, error) {
	if err := g.ready(); err != nil {
		return entities.GatewayCustomer{}, err
	}
	if g.mock != nil {
		return g.mock.createCustomer(payer), nil
	}

	body := wireCustomerRequest{Email: payer.Email, FirstName: payer.FirstName, LastName: payer.LastName}
	if payer.DocumentNumber != "" {
		body.Identification = &wireIdentification{Type: payer.DocumentType, Number: payer.DocumentNumber}
	}
	var sdkReq customer.Request
	if err := convert(body, &sdkReq); err != nil {
		return entities.GatewayCustomer{}, fmt.Errorf("build customer request: %w", err)
	}
	resp, err := g.customers.Create(ctx, sdkReq)
	if err != nil {
		logger.Error("[payment][gateway] sdk customer create failed", zap.Error(err))
		return entities.GatewayCustomer{}, err
	}
	var c wireCustomer
	if err := convert(resp, &c); err != nil {
		return entities.GatewayCustomer{}, fmt.Errorf("decode customer: %w", err)
	}
	return entities.GatewayCustomer{ID: c.ID, Email: c.Email}, nil
}

func (g *MercadoPagoGateway) SaveCard(ctx context.Context, customerID, token string) (entities.SavedCard, error) {
	if err := g.ready(); err != nil {
		return entities.SavedCard{}, err
	}
	if g.mock != nil {
		return g.mock.saveCard(customerID, token)
	}

	var sdkReq customercard.Request
	if err := convert(map[string]string{"token": token}, &sdkReq); err != nil {
		return entities.SavedCard{}, fmt.Errorf("build card request: %w", err)
	}
	resp, err := g.cards.Create(ctx, customerID, sdkReq)
	if err != nil {
		logger.Error("[payment][gateway] sdk card create failed", zap.String("customer_id", customerID), zap.Error(err))
		return entities.SavedCard{}, err
	}
	var c wireCard
	if err := convert(resp, &c); err != nil {
		return entities.SavedCard{}, fmt.Errorf("decode card: %w", err)
	}
	return c.toEntity(), nil
}

func (g *MercadoPagoGateway) ListCards(ctx context.Context, customerID string) ([]entities.SavedCard, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	if g.mock != nil {
		return g.mock.listCards(customerID), nil
	}

	resp, err := g.cards.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	var cards []wireCard
	if err := convert(resp, &cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	out := make([]entities.SavedCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.toEntity())
	}
	return out, nil
}

func (g *MercadoPagoGateway) DeleteCard(ctx context.Context, customerID, cardID string) error {
	if err := g.ready(); err != nil {
		return err
	}
	if g.mock != nil {
		return g.mock.deleteCard(customerID, cardID)
	}

	if _, err := g.cards.Delete(ctx, customerID, cardID); err != nil {
		if isNotFound(err) {
			return entities.NewNotFoundError("card", cardID)
		}
		return err
	}
	return nil
}

func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") ||
		strings.Contains(msg, "\"error\":\"not_found\"") ||
		strings.Contains(msg, "resource not found")
}
