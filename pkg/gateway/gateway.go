package gateway

import (
	"context"
)

// VerificationStatus is the collapsed outcome of a payment verification.
type VerificationStatus string

const (
	StatusSuccess VerificationStatus = "success"
	StatusOngoing VerificationStatus = "ongoing"
	StatusFailed  VerificationStatus = "failed"
)

// Verification is the result of verifying a payment reference.
type Verification struct {
	Status   VerificationStatus
	Amount   int64 // minor units
	Currency string
	Meta     map[string]string // opaque gateway response snapshot
}

// Recipient describes a bank account to create a transfer recipient for.
type Recipient struct {
	Name          string
	AccountNumber string
	BankCode      string
	Currency      string
}

// RecipientResult is the gateway's handle for an approved recipient.
type RecipientResult struct {
	RecipientCode string
	AccountName   string
	BankName      string
}

// TransferResult is the gateway's handle for an initiated transfer.
type TransferResult struct {
	TransferCode string
	Status       string
}

// PaymentGateway is the external payment provider contract consumed by the
// core. The provider is treated as untrusted and possibly slow; every call
// is bounded by the adapter's HTTP timeout. Verify and InitiateTransfer are
// idempotent on the reference from the gateway's side, so duplicate calls
// are safe.
type PaymentGateway interface {
	// Verify checks the outcome of a payment reference.
	Verify(ctx context.Context, reference string) (*Verification, error)

	// InitiateTransfer starts an outbound transfer to a recipient. Amount is
	// in minor units; reference is the caller's idempotency key.
	InitiateTransfer(ctx context.Context, recipientCode string, amount int64, reference, reason string) (*TransferResult, error)

	// CreateRecipient registers a bank account as a transfer recipient.
	CreateRecipient(ctx context.Context, recipient Recipient) (*RecipientResult, error)
}
