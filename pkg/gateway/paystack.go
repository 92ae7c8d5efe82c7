package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Provider name recorded on ledger entries created from this gateway.
const ProviderPaystack = "PAYSTACK"

const defaultTimeout = 15 * time.Second

// Paystack implements PaymentGateway against the Paystack REST API.
type Paystack struct {
	BaseURL   string
	SecretKey string
	Client    *http.Client
}

// NewPaystack creates a Paystack gateway adapter with a bounded HTTP timeout.
func NewPaystack(baseURL, secretKey string) *Paystack {
	return &Paystack{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		Client:    &http.Client{Timeout: defaultTimeout},
	}
}

// Make sure we conform to the interface
var _ PaymentGateway = (*Paystack)(nil)

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status          string `json:"status"`
		Reference       string `json:"reference"`
		Amount          int64  `json:"amount"`
		Currency        string `json:"currency"`
		Channel         string `json:"channel"`
		GatewayResponse string `json:"gateway_response"`
		PaidAt          string `json:"paid_at"`
		IPAddress       string `json:"ip_address"`
	} `json:"data"`
}

// Verify checks a payment reference with Paystack and collapses the
// provider's status vocabulary into success/ongoing/failed.
func (p *Paystack) Verify(ctx context.Context, reference string) (*Verification, error) {
	var res verifyResponse
	if err := p.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to verify transaction with paystack: %w", err)
	}

	if !res.Status {
		return &Verification{Status: StatusFailed}, nil
	}

	v := &Verification{
		Amount:   res.Data.Amount,
		Currency: res.Data.Currency,
		Meta: map[string]string{
			"provider_status":  res.Data.Status,
			"gateway_response": res.Data.GatewayResponse,
			"channel":          res.Data.Channel,
			"paid_at":          res.Data.PaidAt,
			"ip_address":       res.Data.IPAddress,
		},
	}

	switch res.Data.Status {
	case "success":
		v.Status = StatusSuccess
	case "ongoing", "pending", "processing", "queued":
		v.Status = StatusOngoing
	default:
		v.Status = StatusFailed
	}

	return v, nil
}

type transferResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		TransferCode string `json:"transfer_code"`
		Status       string `json:"status"`
	} `json:"data"`
}

// InitiateTransfer starts an outbound transfer from the Paystack balance.
func (p *Paystack) InitiateTransfer(ctx context.Context, recipientCode string, amount int64, reference, reason string) (*TransferResult, error) {
	body := map[string]any{
		"source":    "balance",
		"amount":    strconv.FormatInt(amount, 10),
		"recipient": recipientCode,
		"reference": reference,
		"reason":    reason,
	}

	var res transferResponse
	if err := p.do(ctx, http.MethodPost, "/transfer", body, &res); err != nil {
		return nil, fmt.Errorf("failed to initiate transfer with paystack: %w", err)
	}

	if !res.Status {
		return nil, fmt.Errorf("paystack rejected transfer: %s", res.Message)
	}

	return &TransferResult{TransferCode: res.Data.TransferCode, Status: res.Data.Status}, nil
}

type recipientResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		RecipientCode string `json:"recipient_code"`
		Details       struct {
			AccountName string `json:"account_name"`
			BankName    string `json:"bank_name"`
		} `json:"details"`
	} `json:"data"`
}

// CreateRecipient registers a bank account as a nuban transfer recipient.
func (p *Paystack) CreateRecipient(ctx context.Context, recipient Recipient) (*RecipientResult, error) {
	body := map[string]any{
		"type":           "nuban",
		"name":           recipient.Name,
		"account_number": recipient.AccountNumber,
		"bank_code":      recipient.BankCode,
		"currency":       recipient.Currency,
	}

	var res recipientResponse
	if err := p.do(ctx, http.MethodPost, "/transferrecipient", body, &res); err != nil {
		return nil, fmt.Errorf("failed to create transfer recipient with paystack: %w", err)
	}

	if !res.Status {
		return nil, fmt.Errorf("paystack rejected recipient: %s", res.Message)
	}

	return &RecipientResult{
		RecipientCode: res.Data.RecipientCode,
		AccountName:   res.Data.Details.AccountName,
		BankName:      res.Data.Details.BankName,
	}, nil
}

func (p *Paystack) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.SecretKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("paystack API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode paystack response: %w", err)
	}

	return nil
}
