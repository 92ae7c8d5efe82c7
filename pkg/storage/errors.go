package storage

import "errors"

// ErrInsufficientFunds is returned when a wallet's balance cannot cover a debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAlreadyProcessing is returned when a settlement attempt collides with a
// non-failed transaction for the same booking or idempotency reference.
var ErrAlreadyProcessing = errors.New("settlement already processing")

// ErrBookingNotFound is returned when a booking id does not resolve to a record.
var ErrBookingNotFound = errors.New("booking not found")

// ErrWalletNotFound is returned when a wallet lookup resolves to nothing.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrTransactionNotFound is returned when a reference does not resolve to a ledger entry.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrDepositsDisabled is returned when crediting a wallet with can_deposit false.
var ErrDepositsDisabled = errors.New("wallet deposits disabled")

// ErrWithdrawalsDisabled is returned when debiting a wallet with can_withdraw false.
var ErrWithdrawalsDisabled = errors.New("wallet withdrawals disabled")

// ErrInvalidAmount is returned for zero or negative amounts.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrBookingStateConflict is returned when a booking status update loses to a
// concurrent transition, e.g. a second settlement racing the first.
var ErrBookingStateConflict = errors.New("booking state conflict")

// ErrStaleStatus is returned when a ledger status update finds the entry no
// longer in any of the expected states. Status transitions are monotonic.
var ErrStaleStatus = errors.New("transaction status already advanced")
