package storage

import (
	"context"

	"github.com/chijiooke/real-stay/pkg/models"
)

// BookingReader defines the interface for reading bookings.
type BookingReader interface {
	// GetBooking retrieves a booking by id. Returns ErrBookingNotFound when absent.
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)

	// FindOverlappingBooking returns a booking on the listing whose date range
	// overlaps [startDate, endDate] while RESERVED or BOOKED, or nil, nil.
	FindOverlappingBooking(ctx context.Context, listingID, startDate, endDate string) (*models.Booking, error)
}

// BookingManager defines the interface for creating and reviewing bookings
// outside of settlement.
type BookingManager interface {
	// CreateBooking inserts a new booking record.
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)

	// UpdateBookingStatus moves a booking between states, conditional on its
	// current status being one of `from`. Returns ErrBookingStateConflict
	// when the booking has already moved.
	UpdateBookingStatus(ctx context.Context, bookingID string, from []models.BookingStatus, to models.BookingStatus) (*models.Booking, error)
}

// BookingStore combines the reader and manager interfaces.
type BookingStore interface {
	BookingReader
	BookingManager
}
