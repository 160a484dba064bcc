package payments

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"storefront_orders/internal/domain/entities"
)

// The SDK request and response types are filled and read through their JSON
// form, which follows the public Mercado Pago REST contract.

const mpDateLayout = "2006-01-02T15:04:05.000-07:00"

type wireIdentification struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
}

type wireAddress struct {
	ZipCode      string `json:"zip_code,omitempty"`
	StreetName   string `json:"street_name,omitempty"`
	StreetNumber string `json:"street_number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	FederalUnit  string `json:"federal_unit,omitempty"`
}

type wirePayer struct {
	Type           string              `json:"type,omitempty"`
	ID             string              `json:"id,omitempty"`
	Email          string              `json:"email,omitempty"`
	FirstName      string              `json:"first_name,omitempty"`
	LastName       string              `json:"last_name,omitempty"`
	Identification *wireIdentification `json:"identification,omitempty"`
	Address        *wireAddress        `json:"address,omitempty"`
}

type wirePaymentRequest struct {
	TransactionAmount float64    `json:"transaction_amount"`
	Description       string     `json:"description,omitempty"`
	ExternalReference string     `json:"external_reference"`
	NotificationURL   string     `json:"notification_url,omitempty"`
	PaymentMethodID   string     `json:"payment_method_id"`
	Token             string     `json:"token,omitempty"`
	Installments      int        `json:"installments,omitempty"`
	DateOfExpiration  string     `json:"date_of_expiration,omitempty"`
	Payer             *wirePayer `json:"payer"`
}

type wirePayment struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	StatusDetail      string      `json:"status_detail"`
	ExternalReference string      `json:"external_reference"`
	PaymentMethodID   string      `json:"payment_method_id"`
	PaymentTypeID     string      `json:"payment_type_id"`
	TransactionAmount float64     `json:"transaction_amount"`
	DateCreated       *time.Time  `json:"date_created"`
	DateApproved      *time.Time  `json:"date_approved"`

	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`

	TransactionDetails struct {
		ExternalResourceURL string `json:"external_resource_url"`
		DigitableLine       string `json:"digitable_line"`
	} `json:"transaction_details"`

	Barcode struct {
		Content string `json:"content"`
	} `json:"barcode"`
}

type wireSearch struct {
	Results []json.RawMessage `json:"results"`
}

type wireCustomerRequest struct {
	Email          string              `json:"email"`
	FirstName      string              `json:"first_name,omitempty"`
	LastName       string              `json:"last_name,omitempty"`
	Identification *wireIdentification `json:"identification,omitempty"`
}

type wireCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type wireCard struct {
	ID              string `json:"id"`
	FirstSixDigits  string `json:"first_six_digits"`
	LastFourDigits  string `json:"last_four_digits"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	PaymentMethod   struct {
		ID string `json:"id"`
	} `json:"payment_method"`
	Cardholder struct {
		Name string `json:"name"`
	} `json:"cardholder"`
}

// convert moves a value between two JSON-compatible types.
func convert(from, to any) error {
	b, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, to)
}

func buildPaymentRequest(req entities.PaymentRequest, boletoMethodID string) (wirePaymentRequest, error) {
	out := wirePaymentRequest{
		TransactionAmount: req.Amount.Float64(),
		Description:       req.Description,
		ExternalReference: req.OrderID,
		NotificationURL:   req.NotificationURL,
		Payer:             payerOf(req.Payer),
	}

	switch req.Method {
	case entities.PaymentMethodPix:
		out.PaymentMethodID = "pix"
		if !req.ExpiresAt.IsZero() {
			out.DateOfExpiration = req.ExpiresAt.Format(mpDateLayout)
		}
	case entities.PaymentMethodBoleto:
		out.PaymentMethodID = boletoMethodID
		out.Payer.Address = &wireAddress{
			ZipCode:      req.Address.Zip,
			StreetName:   req.Address.Street,
			StreetNumber: req.Address.Number,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			FederalUnit:  req.Address.State,
		}
	case entities.PaymentMethodCard:
		out.PaymentMethodID = req.Card.PaymentMethodID
		out.Token = req.Card.Token
		out.Installments = req.Card.Installments
		if req.CustomerID != "" {
			out.Payer.Type = "customer"
			out.Payer.ID = req.CustomerID
		}
	default:
		return wirePaymentRequest{}, entities.NewValidationError(fmt.Sprintf("unsupported payment method %q", req.Method))
	}
	return out, nil
}

func payerOf(p entities.Payer) *wirePayer {
	out := &wirePayer{Email: p.Email, FirstName: p.FirstName, LastName: p.LastName}
	if p.DocumentNumber != "" {
		out.Identification = &wireIdentification{Type: p.DocumentType, Number: p.DocumentNumber}
	}
	return out
}

func (w wirePayment) toEntity() entities.GatewayPayment {
	p := entities.GatewayPayment{
		ID:                w.ID.String(),
		Status:            w.Status,
		StatusDetail:      w.StatusDetail,
		ExternalReference: w.ExternalReference,
		PaymentMethodID:   w.PaymentMethodID,
		PaymentTypeID:     w.PaymentTypeID,
		Amount:            entities.NewMoneyFromFloat(w.TransactionAmount),
		QRCode:            w.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64:      w.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:         w.PointOfInteraction.TransactionData.TicketURL,
		Barcode:           w.TransactionDetails.DigitableLine,
	}
	if p.ID == "0" {
		p.ID = ""
	}
	if p.TicketURL == "" {
		p.TicketURL = w.TransactionDetails.ExternalResourceURL
	}
	if p.Barcode == "" {
		p.Barcode = w.Barcode.Content
	}
	if w.DateCreated != nil {
		p.DateCreated = w.DateCreated.UTC()
	}
	if w.DateApproved != nil && !w.DateApproved.IsZero() {
		approved := w.DateApproved.UTC()
		p.DateApproved = &approved
	}
	return p
}

func decodePayment(resp any) (entities.GatewayPayment, error) {
	var w wirePayment
	if err := convert(resp, &w); err != nil {
		return entities.GatewayPayment{}, fmt.Errorf("decode payment: %w", err)
	}
	return w.toEntity(), nil
}

func (w wireCard) toEntity() entities.SavedCard {
	return entities.SavedCard{
		ID:              w.ID,
		FirstSixDigits:  w.FirstSixDigits,
		LastFourDigits:  w.LastFourDigits,
		PaymentMethodID: w.PaymentMethod.ID,
		ExpirationMonth: w.ExpirationMonth,
		ExpirationYear:  w.ExpirationYear,
		HolderName:      w.Cardholder.Name,
	}
}

func parsePaymentID(id string) (int, bool) {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
