package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"
)

var (
	ErrMissingSignature = errors.New("webhook signature missing")
	ErrInvalidSignature = errors.New("webhook signature mismatch")
)

// SignatureVerifier checks the x-signature header Mercado Pago sends with each
// notification ("ts=<unix>,v1=<hex hmac>").
type SignatureVerifier struct {
	secret []byte
}

var _ interfaces.INotificationVerifier = (*SignatureVerifier)(nil)

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

// Verify accepts every notification when no secret is configured.
func (v *SignatureVerifier) Verify(n entities.PaymentNotification) error {
	if v == nil || len(v.secret) == 0 {
		return nil
	}
	ts, sig := parseSignatureHeader(n.Signature)
	if ts == "" || sig == "" {
		return ErrMissingSignature
	}

	got, err := hex.DecodeString(sig)
	if err != nil {
		return ErrInvalidSignature
	}
	if !hmac.Equal(got, v.sign(n.PaymentID, n.RequestID, ts)) {
		return ErrInvalidSignature
	}
	return nil
}

func (v *SignatureVerifier) sign(paymentID, requestID, ts string) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(SignatureManifest(paymentID, requestID, ts)))
	return mac.Sum(nil)
}

// Sign returns the header value a sender holding the same secret would send.
func (v *SignatureVerifier) Sign(paymentID, requestID, ts string) string {
	return "ts=" + ts + ",v1=" + hex.EncodeToString(v.sign(paymentID, requestID, ts))
}

func SignatureManifest(paymentID, requestID, ts string) string {
	return "id:" + paymentID + ";request-id:" + requestID + ";ts:" + ts + ";"
}

func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		k, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(val)
		case "v1":
			v1 = strings.TrimSpace(val)
		}
	}
	return ts, v1
}
