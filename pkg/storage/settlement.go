package storage

import (
	"context"

	"github.com/chijiooke/real-stay/pkg/models"
)

// SettleBookingInput carries everything the atomic settlement write touches.
// The parent PAYMENT entry and both WALLET_INFLOW children are inserted, both
// wallets credited, and the booking moved to BOOKED, in one commit.
type SettleBookingInput struct {
	Parent        *models.Transaction
	OwnerInflow   *models.Transaction
	CompanyInflow *models.Transaction
	OwnerShare    int64
	PlatformShare int64
	OwnerWallet   *models.Wallet
	Booking       *models.Booking
}

// SettlementStore defines the highly-privileged interface for the atomic
// settlement unit of work. Writes span the transactions, wallets and bookings
// tables; all succeed or none do. It should only be exposed to the
// settlement orchestrator and the reconciliation worker.
type SettlementStore interface {
	// SettleBooking commits the full settlement in one atomic write.
	// A duplicate idempotency reference surfaces as ErrAlreadyProcessing; a
	// lost booking-status race as ErrBookingStateConflict; a disabled wallet
	// as ErrDepositsDisabled. Nothing is partially applied.
	SettleBooking(ctx context.Context, in SettleBookingInput) error

	// CompleteOutflow atomically debits the customer wallet for an
	// already-initiated withdrawal and marks its WALLET_OUTFLOW entry SUCCESS.
	// The status update is conditional on the entry still being ONGOING, so a
	// redelivered webhook is a safe no-op (ErrStaleStatus).
	CompleteOutflow(ctx context.Context, tx *models.Transaction) error

	// ReverseOutflow re-credits the wallet for a withdrawal the provider
	// reversed after confirming it and moves the entry SUCCESS -> REVERSED.
	// Conditional on the entry still being SUCCESS (ErrStaleStatus otherwise).
	ReverseOutflow(ctx context.Context, tx *models.Transaction) error
}

// Storage defines the root interface for the entire data layer. Components
// should depend on the more granular interfaces instead of this one.
type Storage interface {
	LedgerStore
	WalletStore
	BookingStore
	SettlementStore
}
