package storage

import (
	"context"

	"github.com/chijiooke/real-stay/pkg/models"
)

// LedgerReader defines the interface for reading ledger entries.
type LedgerReader interface {
	// GetTransactionByReference retrieves a ledger entry by its idempotency
	// reference. Returns ErrTransactionNotFound when absent.
	GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)

	// FindActiveTransactionByBooking retrieves the first ledger entry for the
	// booking that is not FAILED or REVERSED, or nil, nil when every entry is
	// a terminal failure. The settlement idempotency guard is built on this.
	FindActiveTransactionByBooking(ctx context.Context, bookingID string) (*models.Transaction, error)

	// ListTransactionsByCustomer retrieves all ledger entries for a customer.
	ListTransactionsByCustomer(ctx context.Context, customerID string) ([]models.Transaction, error)
}

// LedgerWriter defines the interface for appending to and advancing the ledger.
type LedgerWriter interface {
	// CreateTransaction inserts a new ledger entry. A duplicate-reference
	// conflict is not an error: the existing entry is returned instead, which
	// is what makes webhook replays safe.
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// CreateSplitPair inserts two entries linked to the same parent reference
	// in one atomic write. Both commit or neither does.
	CreateSplitPair(ctx context.Context, parentRef string, childA, childB *models.Transaction) (*models.Transaction, *models.Transaction, error)

	// UpdateTransactionStatus advances an entry's status only if its current
	// status is one of `from`. Returns ErrStaleStatus when the entry has
	// already moved on, preserving monotonic transitions.
	UpdateTransactionStatus(ctx context.Context, reference string, from []models.TransactionStatus, to models.TransactionStatus, metaPatch map[string]string) error
}

// LedgerStore combines the reader and writer interfaces.
type LedgerStore interface {
	LedgerReader
	LedgerWriter
}
