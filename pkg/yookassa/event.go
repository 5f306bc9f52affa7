package yookassa

import "encoding/json"

const EventPaymentSucceeded = "payment.succeeded"

// WebhookEvent is the validated descriptor of an inbound notification.
// PaymentID is populated only for settlement events.
type WebhookEvent struct {
	Type      string
	PaymentID string
}

func (e WebhookEvent) IsSettlement() bool {
	return e.Type == EventPaymentSucceeded
}

type webhookPayload struct {
	Event  string          `json:"event"`
	Object json.RawMessage `json:"object"`
}

type webhookObject struct {
	ID json.RawMessage `json:"id"`
}

// ParseWebhookEvent validates the raw notification body. YooKassa retries
// deliveries until it sees a 2xx, so a non-settlement event parses cleanly
// and is left for the caller to acknowledge as ignored. No signature check
// is performed; the endpoint trusts the transport.
func ParseWebhookEvent(body []byte) (WebhookEvent, error) {
	var payload webhookPayload
	if len(body) == 0 {
		return WebhookEvent{}, ErrInvalidJSON
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return WebhookEvent{}, ErrInvalidJSON
	}

	if payload.Event != EventPaymentSucceeded {
		return WebhookEvent{Type: payload.Event}, nil
	}

	var object webhookObject
	if len(payload.Object) > 0 {
		if err := json.Unmarshal(payload.Object, &object); err != nil {
			return WebhookEvent{}, ErrMissingObjectID
		}
	}

	var id string
	if len(object.ID) == 0 || json.Unmarshal(object.ID, &id) != nil || id == "" {
		return WebhookEvent{}, ErrMissingObjectID
	}

	return WebhookEvent{Type: payload.Event, PaymentID: id}, nil
}
