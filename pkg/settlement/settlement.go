package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chijiooke/real-stay/pkg/gateway"
	"github.com/chijiooke/real-stay/pkg/models"
	"github.com/chijiooke/real-stay/pkg/storage"
)

// ErrInvalidPayment is returned when the gateway rejects the payment or the
// verified amount is not positive. Never retried automatically.
var ErrInvalidPayment = errors.New("payment not successful")

// DefaultOwnerSharePercent is the percentage of a verified payment credited
// to the property owner's wallet; the platform wallet takes the remainder as
// commission. A policy constant, not business logic: override on the Service
// to change the split.
const DefaultOwnerSharePercent = 90

// Store is the data-layer surface the orchestrator needs.
type Store interface {
	storage.BookingReader
	storage.LedgerReader
	GetWalletByCustomer(ctx context.Context, customerID string) (*models.Wallet, error)
	GetPlatformWallet(ctx context.Context) (*models.Wallet, error)
	SettleBooking(ctx context.Context, in storage.SettleBookingInput) error
}

// Service ties a booking to a verified payment: it computes the split,
// credits both wallets, writes the ledger entries and advances the booking,
// all inside one atomic unit of work.
type Service struct {
	Store             Store
	Gateway           gateway.PaymentGateway
	Logger            *slog.Logger
	OwnerSharePercent int64
}

// New creates a settlement Service with the default split policy.
func New(store Store, gw gateway.PaymentGateway, logger *slog.Logger) *Service {
	return &Service{
		Store:             store,
		Gateway:           gw,
		Logger:            logger,
		OwnerSharePercent: DefaultOwnerSharePercent,
	}
}

// Split divides a verified amount between the property owner and the
// platform. The owner share floors on integer division and the platform
// share takes the remainder, so the two always sum to the input exactly.
func (s *Service) Split(amount int64) (ownerShare, platformShare int64) {
	ownerShare = amount * s.OwnerSharePercent / 100
	platformShare = amount - ownerShare
	return ownerShare, platformShare
}

// CompleteBooking settles a booking against a verified payment reference.
//
// A payment the gateway still reports as in progress is not an error: the
// booking is returned unchanged and the caller retries later. Every other
// failure leaves state exactly as it was before the call; the atomic write
// in SettleBooking commits everything or nothing.
func (s *Service) CompleteBooking(ctx context.Context, paymentReference, bookingID string) (*models.Booking, error) {
	booking, err := s.Store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Idempotency guard: an existing non-failed ledger entry for this booking
	// means an earlier attempt committed or is still in flight. The entry for
	// the reference being settled right now is the exception; the pending loop
	// resumes exactly that entry when it got stuck before the atomic write.
	existing, err := s.Store.FindActiveTransactionByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for in-flight settlement: %w", err)
	}
	if existing != nil && (existing.Reference != paymentReference || existing.Status == models.TxSuccess) {
		return nil, storage.ErrAlreadyProcessing
	}

	verification, err := s.Gateway.Verify(ctx, paymentReference)
	if err != nil {
		return nil, fmt.Errorf("failed to verify payment %s: %w", paymentReference, err)
	}

	if verification.Status == gateway.StatusOngoing {
		// Still in progress on the provider's side. Nothing written.
		s.Logger.Info("payment still in progress, skipping settlement",
			"reference", paymentReference, "booking_id", bookingID)
		return booking, nil
	}

	if verification.Status != gateway.StatusSuccess || verification.Amount <= 0 {
		return nil, ErrInvalidPayment
	}

	ownerShare, platformShare := s.Split(verification.Amount)

	ownerWallet, err := s.Store.GetWalletByCustomer(ctx, booking.PropertyOwnerId)
	if err != nil {
		return nil, fmt.Errorf("failed to get property owner wallet: %w", err)
	}
	platformWallet, err := s.Store.GetPlatformWallet(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform wallet: %w", err)
	}

	currency := verification.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	parent := &models.Transaction{
		Reference:   paymentReference,
		Type:        models.TxPayment,
		Status:      models.TxSuccess,
		Amount:      verification.Amount,
		Currency:    currency,
		Provider:    gateway.ProviderPaystack,
		CustomerId:  booking.CustomerId,
		BookingId:   bookingID,
		Meta:        verification.Meta,
		Description: fmt.Sprintf("Payment for booking %s", bookingID),
	}
	ownerInflow := &models.Transaction{
		Reference:         paymentReference + "-owner-share",
		ParentTransaction: paymentReference,
		Type:              models.TxWalletInflow,
		Status:            models.TxSuccess,
		Amount:            ownerShare,
		Currency:          currency,
		Provider:          gateway.ProviderPaystack,
		WalletId:          ownerWallet.Id,
		CustomerId:        booking.PropertyOwnerId,
		BookingId:         bookingID,
		Description:       fmt.Sprintf("Owner share for booking %s", bookingID),
	}
	companyInflow := &models.Transaction{
		Reference:         paymentReference + "-company-share",
		ParentTransaction: paymentReference,
		Type:              models.TxWalletInflow,
		Status:            models.TxSuccess,
		Amount:            platformShare,
		Currency:          currency,
		Provider:          gateway.ProviderPaystack,
		WalletId:          platformWallet.Id,
		BookingId:         bookingID,
		Description:       fmt.Sprintf("Company share for booking %s", bookingID),
	}

	err = s.Store.SettleBooking(ctx, storage.SettleBookingInput{
		Parent:        parent,
		OwnerInflow:   ownerInflow,
		CompanyInflow: companyInflow,
		OwnerShare:    ownerShare,
		PlatformShare: platformShare,
		OwnerWallet:   ownerWallet,
		Booking:       booking,
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("booking settled",
		"booking_id", bookingID,
		"reference", paymentReference,
		"owner_share", ownerShare,
		"platform_share", platformShare)

	booking.Status = models.BookingBooked
	booking.PaymentReference = paymentReference
	return booking, nil
}
