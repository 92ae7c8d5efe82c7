package storage

import (
	"context"

	"github.com/chijiooke/real-stay/pkg/models"
)

// WalletStore defines the interface for managing wallets and their balances.
// All balance mutation is backed by conditional updates at the database layer,
// never check-then-act in application code.
type WalletStore interface {
	// EnsurePlatformWallet creates the singleton company wallet if it does not
	// exist. Concurrent callers converge on one record: the losing writer
	// catches the uniqueness violation and re-fetches.
	EnsurePlatformWallet(ctx context.Context) (*models.Wallet, error)

	// EnsureWallet creates a wallet for the customer if one does not exist,
	// with the same race handling. New wallets start INACTIVE until KYC.
	EnsureWallet(ctx context.Context, customerID string) (*models.Wallet, error)

	// GetWalletByCustomer retrieves a customer's wallet.
	// Returns ErrWalletNotFound when absent.
	GetWalletByCustomer(ctx context.Context, customerID string) (*models.Wallet, error)

	// GetPlatformWallet retrieves the singleton company wallet.
	GetPlatformWallet(ctx context.Context) (*models.Wallet, error)

	// CreditWallet atomically increments the balance and appends a bounded
	// history entry. Fails with ErrDepositsDisabled when can_deposit is false
	// and ErrInvalidAmount when amount <= 0.
	CreditWallet(ctx context.Context, customerID string, amount int64, entry models.WalletHistoryEntry) (*models.Wallet, error)

	// DebitWallet atomically decrements the balance only while
	// balance >= amount and can_withdraw is true; otherwise fails with
	// ErrInsufficientFunds or ErrWithdrawalsDisabled.
	DebitWallet(ctx context.Context, customerID string, amount int64, entry models.WalletHistoryEntry) (*models.Wallet, error)

	// ActivateWallet flips the wallet to ACTIVE with deposits and withdrawals
	// enabled, after the external eligibility (KYC) check has passed.
	ActivateWallet(ctx context.Context, customerID string) (*models.Wallet, error)

	// SetWithdrawalDetails stores the bank recipient info and marks the
	// withdrawal account as set.
	SetWithdrawalDetails(ctx context.Context, customerID string, details models.WithdrawalDetails) (*models.Wallet, error)
}
