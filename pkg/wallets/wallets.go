package wallets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chijiooke/real-stay/pkg/gateway"
	"github.com/chijiooke/real-stay/pkg/models"
	"github.com/chijiooke/real-stay/pkg/queue"
	"github.com/chijiooke/real-stay/pkg/storage"
	"github.com/google/uuid"
)

// ErrNoWithdrawalAccount is returned when withdrawing from a wallet with no
// recipient details on file.
var ErrNoWithdrawalAccount = errors.New("withdrawal account not set")

// Service covers the wallet operations outside of settlement: recipient
// setup, withdrawal initiation and activation after the external KYC check.
type Service struct {
	Wallets storage.WalletStore
	Ledger  storage.LedgerStore
	Gateway gateway.PaymentGateway
	// Pending receives references whose gateway outcome is unknown; the
	// reconciliation worker resolves them later.
	Pending queue.Publisher
	Logger  *slog.Logger
}

// New creates a wallet Service.
func New(wallets storage.WalletStore, ledger storage.LedgerStore, gw gateway.PaymentGateway, pending queue.Publisher, logger *slog.Logger) *Service {
	return &Service{Wallets: wallets, Ledger: ledger, Gateway: gw, Pending: pending, Logger: logger}
}

// Activate flips a customer's wallet to ACTIVE once the external eligibility
// check has passed.
func (s *Service) Activate(ctx context.Context, customerID string) (*models.Wallet, error) {
	return s.Wallets.ActivateWallet(ctx, customerID)
}

// AddWithdrawalAccount registers the bank account with the gateway and stores
// the resulting recipient details on the wallet.
func (s *Service) AddWithdrawalAccount(ctx context.Context, customerID, accountName, accountNo, bankCode string) (*models.Wallet, error) {
	wallet, err := s.Wallets.GetWalletByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result, err := s.Gateway.CreateRecipient(ctx, gateway.Recipient{
		Name:          accountName,
		AccountNumber: accountNo,
		BankCode:      bankCode,
		Currency:      wallet.Currency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer recipient: %w", err)
	}

	return s.Wallets.SetWithdrawalDetails(ctx, customerID, models.WithdrawalDetails{
		AccountName:   result.AccountName,
		AccountNo:     accountNo,
		BankCode:      bankCode,
		BankName:      result.BankName,
		RecipientCode: result.RecipientCode,
	})
}

// Withdraw initiates an outbound transfer from a customer's wallet.
//
// The wallet is not debited here: a WALLET_OUTFLOW entry is written ONGOING
// and the balance moves only when the gateway confirms the transfer through
// the reconciliation worker. If the gateway is unreachable after the ledger
// entry is committed, the reference is pushed onto the pending-confirmation
// queue so the worker can resolve the unknown outcome later.
func (s *Service) Withdraw(ctx context.Context, customerID string, amount int64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, storage.ErrInvalidAmount
	}

	wallet, err := s.Wallets.GetWalletByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !wallet.CanWithdraw {
		return nil, storage.ErrWithdrawalsDisabled
	}
	if !wallet.IsWithdrawalAccountSet || wallet.WithdrawalDetails == nil {
		return nil, ErrNoWithdrawalAccount
	}
	if wallet.Balance < amount {
		return nil, storage.ErrInsufficientFunds
	}

	reference := "WDR-" + uuid.New().String()
	tx := &models.Transaction{
		Reference:   reference,
		Type:        models.TxWalletOutflow,
		Status:      models.TxOngoing,
		Amount:      amount,
		Currency:    wallet.Currency,
		Provider:    gateway.ProviderPaystack,
		WalletId:    wallet.Id,
		CustomerId:  customerID,
		Description: fmt.Sprintf("Withdrawal to %s (%s)", wallet.WithdrawalDetails.BankName, wallet.WithdrawalDetails.AccountNo),
	}

	tx, err = s.Ledger.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}

	result, err := s.Gateway.InitiateTransfer(ctx, wallet.WithdrawalDetails.RecipientCode, amount, reference, tx.Description)
	if err != nil {
		// The outcome is unknown: the transfer may or may not have been
		// accepted. Hand the reference to the reconciliation worker instead
		// of guessing.
		s.Logger.Error("transfer initiation failed, queueing for reconciliation",
			"reference", reference, "error", err)
		if qErr := s.Pending.Publish(ctx, reference); qErr != nil {
			return nil, fmt.Errorf("failed to queue withdrawal %s for reconciliation: %w", reference, qErr)
		}
		return tx, nil
	}

	if err := s.Ledger.UpdateTransactionStatus(ctx, reference,
		[]models.TransactionStatus{models.TxOngoing}, models.TxOngoing,
		map[string]string{"transfer_code": result.TransferCode, "provider_status": result.Status},
	); err != nil && !errors.Is(err, storage.ErrStaleStatus) {
		s.Logger.Error("failed to attach transfer code", "reference", reference, "error", err)
	}

	s.Logger.Info("withdrawal initiated",
		"reference", reference, "customer_id", customerID, "amount", amount)
	return tx, nil
}
