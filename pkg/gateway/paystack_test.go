package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	t.Run("Success Status Mapped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transaction/verify/PAY-1", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))
			w.Write([]byte(`{"status":true,"data":{"status":"success","reference":"PAY-1","amount":100000,"currency":"NGN","channel":"card","gateway_response":"Approved"}}`))
		}))
		defer server.Close()

		p := NewPaystack(server.URL, "sk_test_abc")
		v, err := p.Verify(context.Background(), "PAY-1")

		assert.NoError(t, err)
		assert.Equal(t, StatusSuccess, v.Status)
		assert.Equal(t, int64(100000), v.Amount)
		assert.Equal(t, "NGN", v.Currency)
		assert.Equal(t, "card", v.Meta["channel"])
	})

	t.Run("In-Flight Provider Statuses Collapse To Ongoing", func(t *testing.T) {
		for _, providerStatus := range []string{"ongoing", "pending", "processing", "queued"} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"status": true,
					"data":   map[string]any{"status": providerStatus, "amount": 100000},
				})
			}))

			p := NewPaystack(server.URL, "sk_test_abc")
			v, err := p.Verify(context.Background(), "PAY-1")
			server.Close()

			assert.NoError(t, err)
			assert.Equal(t, StatusOngoing, v.Status, "provider status %q", providerStatus)
		}
	})

	t.Run("Rejected Reference Is Failed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
		}))
		defer server.Close()

		p := NewPaystack(server.URL, "sk_test_abc")
		v, err := p.Verify(context.Background(), "ghost")

		assert.NoError(t, err)
		assert.Equal(t, StatusFailed, v.Status)
	})

	t.Run("Server Error Surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		p := NewPaystack(server.URL, "sk_test_abc")
		_, err := p.Verify(context.Background(), "PAY-1")

		assert.Error(t, err)
	})
}

func TestInitiateTransfer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transfer", r.URL.Path)

			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "balance", body["source"])
			assert.Equal(t, "RCP_1", body["recipient"])
			assert.Equal(t, "WDR-1", body["reference"])

			w.Write([]byte(`{"status":true,"data":{"transfer_code":"TRF_1","status":"pending"}}`))
		}))
		defer server.Close()

		p := NewPaystack(server.URL, "sk_test_abc")
		result, err := p.InitiateTransfer(context.Background(), "RCP_1", 600, "WDR-1", "payout")

		assert.NoError(t, err)
		assert.Equal(t, "TRF_1", result.TransferCode)
	})

	t.Run("Rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status":false,"message":"insufficient balance"}`))
		}))
		defer server.Close()

		p := NewPaystack(server.URL, "sk_test_abc")
		_, err := p.InitiateTransfer(context.Background(), "RCP_1", 600, "WDR-1", "payout")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient balance")
	})
}

func TestCreateRecipient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transferrecipient", r.URL.Path)

		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "nuban", body["type"])
		assert.Equal(t, "0123456789", body["account_number"])

		w.Write([]byte(`{"status":true,"data":{"recipient_code":"RCP_1","details":{"account_name":"ADA L","bank_name":"GTBank"}}}`))
	}))
	defer server.Close()

	p := NewPaystack(server.URL, "sk_test_abc")
	result, err := p.CreateRecipient(context.Background(), Recipient{
		Name: "Ada L.", AccountNumber: "0123456789", BankCode: "058", Currency: "NGN",
	})

	assert.NoError(t, err)
	assert.Equal(t, "RCP_1", result.RecipientCode)
	assert.Equal(t, "ADA L", result.AccountName)
	assert.Equal(t, "GTBank", result.BankName)
}
