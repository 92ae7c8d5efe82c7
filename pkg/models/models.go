package models

import (
	"time"
)

// BookingStatus defines the lifecycle states of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingReserved  BookingStatus = "RESERVED"
	BookingBooked    BookingStatus = "BOOKED"
	BookingDeclined  BookingStatus = "DECLINED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking represents a reservation of a listing for a date range.
type Booking struct {
	Id               string        `json:"id" dynamodbav:"id"`
	CustomerId       string        `json:"customer_id" dynamodbav:"customer_id"`
	PropertyOwnerId  string        `json:"property_owner_id" dynamodbav:"property_owner_id"`
	ListingId        string        `json:"listing_id" dynamodbav:"listing_id"`
	StartDate        string        `json:"start_date" dynamodbav:"start_date"`
	EndDate          string        `json:"end_date" dynamodbav:"end_date"`
	Status           BookingStatus `json:"status" dynamodbav:"status"`
	PaymentReference string        `json:"payment_reference,omitempty" dynamodbav:"payment_reference,omitempty"`
	CreatedAt        time.Time     `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" dynamodbav:"updated_at"`
}

// TransactionStatus defines the possible states of a ledger entry.
// Transitions are monotonic: a terminal status never moves back to an
// in-flight one.
type TransactionStatus string

const (
	TxPending    TransactionStatus = "PENDING"
	TxOngoing    TransactionStatus = "ONGOING"
	TxProcessing TransactionStatus = "PROCESSING"
	TxQueued     TransactionStatus = "QUEUED"
	TxSuccess    TransactionStatus = "SUCCESS"
	TxFailed     TransactionStatus = "FAILED"
	TxAbandoned  TransactionStatus = "ABANDONED"
	TxReversed   TransactionStatus = "REVERSED"
)

// Terminal reports whether the status is final.
func (s TransactionStatus) Terminal() bool {
	switch s {
	case TxSuccess, TxFailed, TxAbandoned, TxReversed:
		return true
	}
	return false
}

// TransactionType classifies the direction of a money movement.
type TransactionType string

const (
	TxPayment       TransactionType = "PAYMENT"
	TxWalletInflow  TransactionType = "WALLET_INFLOW"
	TxWalletOutflow TransactionType = "WALLET_OUTFLOW"
)

// Transaction is an immutable record of a single money movement, keyed by a
// provider-issued idempotency reference. Write-once except for status.
type Transaction struct {
	Id                string            `json:"id" dynamodbav:"id"`
	Reference         string            `json:"reference" dynamodbav:"reference"`
	Type              TransactionType   `json:"type" dynamodbav:"type"`
	Status            TransactionStatus `json:"status" dynamodbav:"status"`
	Amount            int64             `json:"amount" dynamodbav:"amount"`
	Currency          string            `json:"currency" dynamodbav:"currency"`
	Provider          string            `json:"provider" dynamodbav:"provider"`
	WalletId          string            `json:"wallet_id,omitempty" dynamodbav:"wallet_id,omitempty"`
	CustomerId        string            `json:"customer_id,omitempty" dynamodbav:"customer_id,omitempty"`
	BookingId         string            `json:"booking_id,omitempty" dynamodbav:"booking_id,omitempty"`
	ParentTransaction string            `json:"parent_transaction,omitempty" dynamodbav:"parent_transaction,omitempty"`
	Description       string            `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Meta              map[string]string `json:"meta,omitempty" dynamodbav:"meta,omitempty"`
	CreatedAt         time.Time         `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" dynamodbav:"updated_at"`
}

// WalletStatus defines the possible states of a wallet.
type WalletStatus string

const (
	WalletActive   WalletStatus = "ACTIVE"
	WalletInactive WalletStatus = "INACTIVE"
	WalletBlocked  WalletStatus = "BLOCKED"
)

// PlatformWalletKey is the reserved customer_id of the singleton company
// wallet. Keying the singleton on the wallet table's partition key lets the
// uniqueness constraint enforce "exactly one" under concurrent creates.
const PlatformWalletKey = "COMPANY"

// DefaultCurrency is applied to wallets and ledger entries created internally.
const DefaultCurrency = "NGN"

// WithdrawalDetails holds the bank recipient info needed to pay out of a wallet.
type WithdrawalDetails struct {
	AccountName   string `json:"account_name" dynamodbav:"account_name"`
	AccountNo     string `json:"account_no" dynamodbav:"account_no"`
	BankCode      string `json:"bank_code" dynamodbav:"bank_code"`
	BankName      string `json:"bank_name" dynamodbav:"bank_name"`
	RecipientCode string `json:"recipient_code" dynamodbav:"recipient_code"`
}

// WalletHistoryEntry is one bounded-history record kept on the wallet itself.
type WalletHistoryEntry struct {
	Reference   string    `json:"reference" dynamodbav:"reference"`
	Amount      int64     `json:"amount" dynamodbav:"amount"`
	Type        string    `json:"type" dynamodbav:"type"`
	Description string    `json:"description" dynamodbav:"description"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Wallet is a balance holder. One wallet per customer, plus the singleton
// platform wallet that accumulates the commission share.
type Wallet struct {
	Id                     string               `json:"id" dynamodbav:"id"`
	CustomerId             string               `json:"customer_id" dynamodbav:"customer_id"`
	IsCompanyWallet        bool                 `json:"is_company_wallet" dynamodbav:"is_company_wallet"`
	Balance                int64                `json:"balance" dynamodbav:"balance"`
	Currency               string               `json:"currency" dynamodbav:"currency"`
	Status                 WalletStatus         `json:"status" dynamodbav:"status"`
	CanWithdraw            bool                 `json:"can_withdraw" dynamodbav:"can_withdraw"`
	CanDeposit             bool                 `json:"can_deposit" dynamodbav:"can_deposit"`
	IsWithdrawalAccountSet bool                 `json:"is_withdrawal_account_set" dynamodbav:"is_withdrawal_account_set"`
	WithdrawalDetails      *WithdrawalDetails   `json:"withdrawal_details,omitempty" dynamodbav:"withdrawal_details,omitempty"`
	History                []WalletHistoryEntry `json:"history,omitempty" dynamodbav:"history,omitempty"`
	CreatedAt              time.Time            `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt              time.Time            `json:"updated_at" dynamodbav:"updated_at"`
}
