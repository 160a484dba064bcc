package request

import (
	"net/url"
	"strings"
)

// WebhookRequest accepts both notification shapes Mercado Pago sends: the
// JSON body ({"type":"payment","data":{"id":"123"}}) and the legacy query
// string (?topic=payment&id=123 or ?type=payment&data.id=123).
type WebhookRequest struct {
	Type   string `json:"type"`
	Topic  string `json:"topic"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (r WebhookRequest) ResolvePaymentID(query url.Values) string {
	for _, v := range []string{r.Data.ID, query.Get("data.id"), query.Get("id")} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func (r WebhookRequest) ResolveTopic(query url.Values) string {
	for _, v := range []string{r.Type, r.Topic, query.Get("type"), query.Get("topic")} {
		if v = strings.TrimSpace(v); v != "" {
			return strings.ToLower(v)
		}
	}
	if strings.HasPrefix(r.Action, "payment.") {
		return "payment"
	}
	return ""
}
