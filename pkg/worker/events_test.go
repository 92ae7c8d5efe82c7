package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEvent(t *testing.T) {
	t.Run("Transfer Success", func(t *testing.T) {
		body := `{"event":"transfer.success","data":{"reference":"WDR-1","amount":600,"transfer_code":"TRF_1"}}`

		event, err := ParseEvent([]byte(body))

		assert.NoError(t, err)
		success, ok := event.(TransferSuccess)
		assert.True(t, ok)
		assert.Equal(t, "WDR-1", success.Reference)
		assert.Equal(t, int64(600), success.Amount)
		assert.Equal(t, "TRF_1", success.TransferCode)
	})

	t.Run("Transfer Failed", func(t *testing.T) {
		body := `{"event":"transfer.failed","data":{"reference":"WDR-1","reason":"insufficient provider balance"}}`

		event, err := ParseEvent([]byte(body))

		assert.NoError(t, err)
		failed, ok := event.(TransferFailed)
		assert.True(t, ok)
		assert.Equal(t, "insufficient provider balance", failed.Reason)
	})

	t.Run("Transfer Reversed", func(t *testing.T) {
		event, err := ParseEvent([]byte(`{"event":"transfer.reversed","data":{"reference":"WDR-1"}}`))

		assert.NoError(t, err)
		_, ok := event.(TransferReversed)
		assert.True(t, ok)
	})

	t.Run("Unknown Event Kind", func(t *testing.T) {
		event, err := ParseEvent([]byte(`{"event":"charge.success","data":{"reference":"PAY-1"}}`))

		assert.NoError(t, err)
		unhandled, ok := event.(Unhandled)
		assert.True(t, ok)
		assert.Equal(t, "charge.success", unhandled.EventType)
	})

	t.Run("Malformed Payload", func(t *testing.T) {
		_, err := ParseEvent([]byte(`{not json`))

		assert.Error(t, err)
	})
}
