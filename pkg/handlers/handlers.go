package handlers

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/chijiooke/real-stay/pkg/bookings"
	"github.com/chijiooke/real-stay/pkg/models"
	"github.com/chijiooke/real-stay/pkg/queue"
	"github.com/chijiooke/real-stay/pkg/settlement"
	"github.com/chijiooke/real-stay/pkg/storage"
	"github.com/chijiooke/real-stay/pkg/wallets"
	"github.com/go-chi/chi/v5"
)

// Handler holds the application's dependencies for the HTTP surface.
type Handler struct {
	Bookings      *bookings.Service
	Settlement    *settlement.Service
	Wallets       *wallets.Service
	WalletStore   storage.WalletStore
	Ledger        storage.LedgerReader
	OutflowQueue  queue.Publisher
	WebhookSecret string
	Logger        *slog.Logger
}

// Routes mounts every endpoint on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/bookings", h.RequestReservation)
	r.Patch("/bookings/{bookingID}/review", h.ReviewReservation)
	r.Post("/bookings/{bookingID}/complete", h.CompleteBooking)

	r.Get("/wallets/{customerID}", h.GetWallet)
	r.Get("/wallets/{customerID}/transactions", h.ListTransactions)
	r.Post("/wallets/{customerID}/activate", h.ActivateWallet)
	r.Post("/wallets/{customerID}/withdrawal-account", h.AddWithdrawalAccount)
	r.Post("/wallets/{customerID}/withdraw", h.Withdraw)

	r.Post("/webhooks/paystack", h.PaystackWebhook)
}

// RequestReservation handles the logic for requesting a new reservation.
func (h *Handler) RequestReservation(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	created, err := h.Bookings.RequestReservation(r.Context(), &booking)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, created)
}

// ReviewReservation moves a pending reservation to reserved, declined or cancelled.
func (h *Handler) ReviewReservation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.ReviewReservation(r.Context(), chi.URLParam(r, "bookingID"), body.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, booking)
}

// CompleteBooking settles a booking against a verified payment reference.
func (h *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reference string `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Reference == "" {
		http.Error(w, "Invalid request body: reference is required", http.StatusBadRequest)
		return
	}

	booking, err := h.Settlement.CompleteBooking(r.Context(), body.Reference, chi.URLParam(r, "bookingID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, booking)
}

// GetWallet retrieves a customer's wallet.
func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.WalletStore.GetWalletByCustomer(r.Context(), chi.URLParam(r, "customerID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wallet)
}

// ListTransactions retrieves a customer's ledger entries.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Ledger.ListTransactionsByCustomer(r.Context(), chi.URLParam(r, "customerID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, txs)
}

// ActivateWallet enables a wallet after the external KYC check passes.
func (h *Handler) ActivateWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.Wallets.Activate(r.Context(), chi.URLParam(r, "customerID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wallet)
}

// AddWithdrawalAccount registers a bank account as the wallet's payout target.
func (h *Handler) AddWithdrawalAccount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AccountName string `json:"account_name"`
		AccountNo   string `json:"account_no"`
		BankCode    string `json:"bank_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	wallet, err := h.Wallets.AddWithdrawalAccount(r.Context(), chi.URLParam(r, "customerID"),
		body.AccountName, body.AccountNo, body.BankCode)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wallet)
}

// Withdraw initiates an outbound transfer from the wallet.
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	tx, err := h.Wallets.Withdraw(r.Context(), chi.URLParam(r, "customerID"), body.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, tx)
}

// PaystackWebhook authenticates an inbound gateway event and enqueues it for
// the reconciliation worker. The receiver does no processing of its own;
// returning 200 quickly keeps the provider from hammering retries.
func (h *Handler) PaystackWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	mac := hmac.New(sha512.New, []byte(h.WebhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(r.Header.Get("x-paystack-signature"))) {
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	if err := h.OutflowQueue.Publish(r.Context(), json.RawMessage(payload)); err != nil {
		h.Logger.Error("failed to enqueue webhook event", "error", err)
		// Non-200 makes the provider redeliver later.
		http.Error(w, "Failed to queue event", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "queued"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Logger.Error("failed to write response", "error", err)
	}
}

// writeError maps the error taxonomy to HTTP statuses so callers can decide
// to retry, show "payment processing" or surface a hard failure.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrBookingNotFound),
		errors.Is(err, storage.ErrWalletNotFound),
		errors.Is(err, storage.ErrTransactionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrAlreadyProcessing),
		errors.Is(err, storage.ErrBookingStateConflict),
		errors.Is(err, bookings.ErrDatesUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrInsufficientFunds),
		errors.Is(err, storage.ErrDepositsDisabled),
		errors.Is(err, storage.ErrWithdrawalsDisabled),
		errors.Is(err, wallets.ErrNoWithdrawalAccount):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrInvalidAmount),
		errors.Is(err, bookings.ErrInvalidReview),
		errors.Is(err, settlement.ErrInvalidPayment):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.Logger.Error("internal error", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
