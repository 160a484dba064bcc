package entities

import "time"

// Gateway payment statuses as reported by Mercado Pago.
const (
	GatewayStatusApproved   = "approved"
	GatewayStatusPending    = "pending"
	GatewayStatusInProcess  = "in_process"
	GatewayStatusRejected   = "rejected"
	GatewayStatusCancelled  = "cancelled"
	GatewayStatusRefunded   = "refunded"
	GatewayStatusAuthorized = "authorized"
)

// Payer is the buyer identity forwarded to the gateway.
type Payer struct {
	Email          string `json:"email"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}

// CardDetails are the tokenized card fields of a card checkout.
type CardDetails struct {
	Token           string `json:"token"`
	PaymentMethodID string `json:"payment_method_id"`
	IssuerID        string `json:"issuer_id,omitempty"`
	Installments    int    `json:"installments"`
}

// PaymentRequest is an instrument-specific charge submitted to the gateway.
type PaymentRequest struct {
	OrderID         string
	Method          PaymentMethod
	Description     string
	Amount          Money
	Payer           Payer
	Address         Address
	Card            CardDetails
	CustomerID      string
	NotificationURL string
	ExpiresAt       time.Time
	IdempotencyKey  string
}

// GatewayPayment is the normalized view of a gateway payment record.
type GatewayPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	PaymentMethodID   string
	PaymentTypeID     string
	Amount            Money
	DateCreated       time.Time
	DateApproved      *time.Time
	QRCode            string
	QRCodeBase64      string
	TicketURL         string
	Barcode           string
}

func (p GatewayPayment) Approved() bool {
	return p.Status == GatewayStatusApproved
}

// PaymentArtifact is what the buyer needs to complete a payment.
type PaymentArtifact struct {
	Method       PaymentMethod `json:"method"`
	PaymentID    string        `json:"payment_id"`
	Status       string        `json:"status"`
	StatusDetail string        `json:"status_detail,omitempty"`
	QRCode       string        `json:"qr_code,omitempty"`
	QRCodeBase64 string        `json:"qr_code_base64,omitempty"`
	TicketURL    string        `json:"ticket_url,omitempty"`
	Barcode      string        `json:"barcode,omitempty"`
}

func ArtifactFromPayment(method PaymentMethod, p GatewayPayment) PaymentArtifact {
	return PaymentArtifact{
		Method:       method,
		PaymentID:    p.ID,
		Status:       p.Status,
		StatusDetail: p.StatusDetail,
		QRCode:       p.QRCode,
		QRCodeBase64: p.QRCodeBase64,
		TicketURL:    p.TicketURL,
		Barcode:      p.Barcode,
	}
}

// Customer caches the gateway customer id of a user.
type Customer struct {
	UserID            string    `json:"user_id"`
	GatewayCustomerID string    `json:"gateway_customer_id"`
	Email             string    `json:"email"`
	CreatedAt         time.Time `json:"created_at"`
}

type GatewayCustomer struct {
	ID    string
	Email string
}

// SavedCard is a card stored on the gateway customer.
type SavedCard struct {
	ID              string `json:"id"`
	FirstSixDigits  string `json:"first_six_digits,omitempty"`
	LastFourDigits  string `json:"last_four_digits"`
	PaymentMethodID string `json:"payment_method_id"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	HolderName      string `json:"holder_name,omitempty"`
}

// PaymentNotification is an inbound webhook delivery.
type PaymentNotification struct {
	PaymentID string
	Topic     string
	RequestID string
	Signature string
}

// PaymentStatusView is returned by the polling path.
type PaymentStatusView struct {
	OrderID       string      `json:"order_id"`
	OrderStatus   OrderStatus `json:"order_status"`
	PaymentID     string      `json:"payment_id,omitempty"`
	PaymentStatus string      `json:"payment_status,omitempty"`
	PaidAt        *time.Time  `json:"paid_at,omitempty"`
}
