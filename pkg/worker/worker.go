package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chijiooke/real-stay/pkg/gateway"
	"github.com/chijiooke/real-stay/pkg/models"
	"github.com/chijiooke/real-stay/pkg/queue"
	"github.com/chijiooke/real-stay/pkg/storage"
)

// Store is the data-layer surface the worker needs.
type Store interface {
	GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, reference string, from []models.TransactionStatus, to models.TransactionStatus, metaPatch map[string]string) error
	CompleteOutflow(ctx context.Context, tx *models.Transaction) error
	ReverseOutflow(ctx context.Context, tx *models.Transaction) error
}

// BookingSettler drives payment-side completion for the pending loop.
type BookingSettler interface {
	CompleteBooking(ctx context.Context, paymentReference, bookingID string) (*models.Booking, error)
}

// Consumer is one supervised queue-drain loop.
type Consumer interface {
	Run(ctx context.Context, handler queue.Handler) error
}

// Worker replays gateway state into the ledger and wallets when the
// synchronous settlement path did not complete. Two independent loops
// consume the outflow-events and pending-confirmation queues; both run until
// the context is cancelled and isolate per-item failures.
type Worker struct {
	Outflow    Consumer
	Pending    Consumer
	Store      Store
	Settlement BookingSettler
	Gateway    gateway.PaymentGateway
	Logger     *slog.Logger
}

// Run starts both consumption loops and blocks until the context is
// cancelled or a loop exits.
func (w *Worker) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 2)
	go func() { done <- w.Outflow.Run(ctx, w.HandleOutflowEvent) }()
	go func() { done <- w.Pending.Run(ctx, w.HandlePendingReference) }()

	err := <-done
	cancel()
	<-done
	return err
}

// HandleOutflowEvent dispatches one raw webhook payload by event kind.
// Returning nil acknowledges the message; errors leave it for redelivery.
func (w *Worker) HandleOutflowEvent(ctx context.Context, body string) error {
	event, err := ParseEvent([]byte(body))
	if err != nil {
		// Undecodable payloads will never parse on redelivery either.
		w.Logger.Error("dropping malformed webhook payload", "error", err)
		return nil
	}

	switch ev := event.(type) {
	case TransferSuccess:
		return w.handleTransferSuccess(ctx, ev)
	case TransferFailed:
		return w.markTransfer(ctx, ev.Reference, models.TxFailed, map[string]string{"reason": ev.Reason})
	case TransferReversed:
		return w.handleTransferReversed(ctx, ev)
	case Unhandled:
		w.Logger.Warn("dropping unhandled gateway event", "event", ev.EventType)
		return nil
	default:
		return fmt.Errorf("unreachable event variant %T", event)
	}
}

// handleTransferSuccess debits the customer wallet for the already-initiated
// withdrawal and marks the ledger entry SUCCESS in one atomic write.
func (w *Worker) handleTransferSuccess(ctx context.Context, ev TransferSuccess) error {
	tx, err := w.Store.GetTransactionByReference(ctx, ev.Reference)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			w.Logger.Warn("transfer.success for unknown reference, dropping", "reference", ev.Reference)
			return nil
		}
		return fmt.Errorf("failed to load transaction %s: %w", ev.Reference, err)
	}

	if tx.Status != models.TxOngoing {
		// Already resolved; a redelivered webhook is a no-op.
		w.Logger.Info("transfer already resolved, skipping",
			"reference", ev.Reference, "status", string(tx.Status))
		return nil
	}

	if err := w.Store.CompleteOutflow(ctx, tx); err != nil {
		if errors.Is(err, storage.ErrStaleStatus) {
			return nil
		}
		return fmt.Errorf("failed to complete outflow %s: %w", ev.Reference, err)
	}

	w.Logger.Info("withdrawal settled", "reference", ev.Reference, "amount", tx.Amount)
	return nil
}

// handleTransferReversed undoes a withdrawal the provider walked back. A
// reversal that lands after the debit committed re-credits the wallet; one
// that lands earlier only needs the ledger entry marked.
func (w *Worker) handleTransferReversed(ctx context.Context, ev TransferReversed) error {
	tx, err := w.Store.GetTransactionByReference(ctx, ev.Reference)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			w.Logger.Warn("transfer.reversed for unknown reference, dropping", "reference", ev.Reference)
			return nil
		}
		return fmt.Errorf("failed to load transaction %s: %w", ev.Reference, err)
	}

	if tx.Status == models.TxSuccess {
		if err := w.Store.ReverseOutflow(ctx, tx); err != nil {
			if errors.Is(err, storage.ErrStaleStatus) {
				return nil
			}
			return fmt.Errorf("failed to reverse outflow %s: %w", ev.Reference, err)
		}
		w.Logger.Info("withdrawal reversed", "reference", ev.Reference, "amount", tx.Amount)
		return nil
	}

	return w.markTransfer(ctx, ev.Reference, models.TxReversed, nil)
}

// markTransfer advances a withdrawal entry that has not debited the wallet
// yet to a terminal status.
func (w *Worker) markTransfer(ctx context.Context, reference string, to models.TransactionStatus, meta map[string]string) error {
	from := []models.TransactionStatus{models.TxOngoing, models.TxProcessing, models.TxQueued, models.TxPending}

	err := w.Store.UpdateTransactionStatus(ctx, reference, from, to, meta)
	if err != nil {
		if errors.Is(err, storage.ErrStaleStatus) || errors.Is(err, storage.ErrTransactionNotFound) {
			w.Logger.Warn("transfer status update skipped",
				"reference", reference, "target", string(to), "error", err)
			return nil
		}
		return fmt.Errorf("failed to mark transfer %s as %s: %w", reference, to, err)
	}

	w.Logger.Info("transfer marked", "reference", reference, "status", string(to))
	return nil
}

// HandlePendingReference resolves a transaction whose outcome was unknown at
// initiation time, e.g. because the gateway was unreachable.
func (w *Worker) HandlePendingReference(ctx context.Context, body string) error {
	var reference string
	if err := json.Unmarshal([]byte(body), &reference); err != nil {
		reference = body
	}

	tx, err := w.Store.GetTransactionByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			w.Logger.Warn("pending reference has no transaction, dropping", "reference", reference)
			return nil
		}
		return fmt.Errorf("failed to load transaction %s: %w", reference, err)
	}

	if tx.Status != models.TxOngoing {
		w.Logger.Info("transaction already resolved, skipping",
			"reference", reference, "status", string(tx.Status))
		return nil
	}

	switch tx.Type {
	case models.TxPayment:
		booking, err := w.Settlement.CompleteBooking(ctx, tx.Reference, tx.BookingId)
		if errors.Is(err, storage.ErrAlreadyProcessing) {
			// A concurrent attempt already committed.
			return nil
		}
		if err != nil {
			return err
		}
		if booking.Status != models.BookingBooked {
			// Gateway still reports the payment in progress; keep the
			// reference queued for another pass.
			return fmt.Errorf("payment %s still in progress", tx.Reference)
		}
		return nil
	case models.TxWalletOutflow:
		return w.reconcileOutflow(ctx, tx)
	default:
		w.Logger.Warn("pending reference of unexpected type, dropping",
			"reference", reference, "type", string(tx.Type))
		return nil
	}
}

// reconcileOutflow re-polls the gateway for a withdrawal's outcome and drives
// the same completion logic the webhook path uses.
func (w *Worker) reconcileOutflow(ctx context.Context, tx *models.Transaction) error {
	verification, err := w.Gateway.Verify(ctx, tx.Reference)
	if err != nil {
		return fmt.Errorf("failed to re-verify transfer %s: %w", tx.Reference, err)
	}

	switch verification.Status {
	case gateway.StatusSuccess:
		if err := w.Store.CompleteOutflow(ctx, tx); err != nil && !errors.Is(err, storage.ErrStaleStatus) {
			return fmt.Errorf("failed to complete outflow %s: %w", tx.Reference, err)
		}
		return nil
	case gateway.StatusFailed:
		return w.markTransfer(ctx, tx.Reference, models.TxFailed, verification.Meta)
	default:
		// Still in flight on the provider's side; keep the reference queued.
		return fmt.Errorf("transfer %s still in progress", tx.Reference)
	}
}
