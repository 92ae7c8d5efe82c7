package worker

import (
	"encoding/json"
	"fmt"
)

// Gateway webhook event names this worker understands.
const (
	eventTransferSuccess  = "transfer.success"
	eventTransferFailed   = "transfer.failed"
	eventTransferReversed = "transfer.reversed"
)

// Event is a closed union over the gateway webhook events the worker
// handles. Adding a new gateway event kind means adding a variant here and a
// case to the dispatch switch, which the compiler then checks.
type Event interface {
	isEvent()
}

// TransferSuccess reports a completed outbound transfer.
type TransferSuccess struct {
	Reference    string
	Amount       int64
	TransferCode string
}

// TransferFailed reports a failed outbound transfer. The wallet was never
// debited, so no compensation is needed.
type TransferFailed struct {
	Reference string
	Reason    string
}

// TransferReversed reports a transfer the provider reversed after the fact.
type TransferReversed struct {
	Reference string
}

// Unhandled carries an event type the worker does not know. Logged and
// dropped, never retried.
type Unhandled struct {
	EventType string
}

func (TransferSuccess) isEvent()  {}
func (TransferFailed) isEvent()   {}
func (TransferReversed) isEvent() {}
func (Unhandled) isEvent()        {}

// webhookPayload is the raw shape pushed by the webhook receiver.
type webhookPayload struct {
	Event string `json:"event"`
	Data  struct {
		Reference    string `json:"reference"`
		Amount       int64  `json:"amount"`
		TransferCode string `json:"transfer_code"`
		Reason       string `json:"reason"`
		Status       string `json:"status"`
	} `json:"data"`
}

// ParseEvent decodes a raw webhook payload into its event variant.
func ParseEvent(body []byte) (Event, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal webhook payload: %w", err)
	}

	switch payload.Event {
	case eventTransferSuccess:
		return TransferSuccess{
			Reference:    payload.Data.Reference,
			Amount:       payload.Data.Amount,
			TransferCode: payload.Data.TransferCode,
		}, nil
	case eventTransferFailed:
		return TransferFailed{
			Reference: payload.Data.Reference,
			Reason:    payload.Data.Reason,
		}, nil
	case eventTransferReversed:
		return TransferReversed{Reference: payload.Data.Reference}, nil
	default:
		return Unhandled{EventType: payload.Event}, nil
	}
}
