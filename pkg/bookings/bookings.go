package bookings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chijiooke/real-stay/pkg/models"
	"github.com/chijiooke/real-stay/pkg/storage"
)

// ErrDatesUnavailable is returned when the requested date range collides with
// an existing reservation on the listing.
var ErrDatesUnavailable = errors.New("listing already booked or reserved for the selected dates")

// ErrInvalidReview is returned for review transitions the state machine does
// not allow, e.g. cancelling a BOOKED booking or reviewing straight to BOOKED.
var ErrInvalidReview = errors.New("invalid booking review")

// Service manages the reservation side of a booking's lifecycle. Settlement
// is the only path that moves a booking to BOOKED.
type Service struct {
	Store  storage.BookingStore
	Logger *slog.Logger
}

// New creates a booking Service.
func New(store storage.BookingStore, logger *slog.Logger) *Service {
	return &Service{Store: store, Logger: logger}
}

// RequestReservation creates a PENDING booking after checking that no
// RESERVED or BOOKED booking overlaps the requested date range.
func (s *Service) RequestReservation(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.StartDate > booking.EndDate {
		return nil, fmt.Errorf("start date is after end date")
	}

	conflict, err := s.Store.FindOverlappingBooking(ctx, booking.ListingId, booking.StartDate, booking.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check listing availability: %w", err)
	}
	if conflict != nil {
		return nil, ErrDatesUnavailable
	}

	booking.Status = models.BookingPending
	created, err := s.Store.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("reservation requested",
		"booking_id", created.Id, "listing_id", created.ListingId)
	return created, nil
}

// ReviewReservation moves a PENDING booking to RESERVED, DECLINED or
// CANCELLED. A BOOKED booking can only be undone through an explicit
// compensating action, never through review.
func (s *Service) ReviewReservation(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	switch status {
	case models.BookingReserved, models.BookingDeclined, models.BookingCancelled:
	default:
		return nil, ErrInvalidReview
	}

	booking, err := s.Store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingBooked {
		return nil, ErrInvalidReview
	}

	return s.Store.UpdateBookingStatus(ctx, bookingID,
		[]models.BookingStatus{models.BookingPending, models.BookingReserved}, status)
}
