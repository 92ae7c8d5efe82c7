package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chijiooke/real-stay/pkg/models"
)

// WalletEnsurer is the slice of the wallet store the bootstrap needs.
type WalletEnsurer interface {
	EnsurePlatformWallet(ctx context.Context) (*models.Wallet, error)
	EnsureWallet(ctx context.Context, customerID string) (*models.Wallet, error)
}

// CustomerDirectory lists customer ids eligible for a wallet. The user
// system lives outside this core; it only needs to enumerate ids.
type CustomerDirectory interface {
	ListCustomerIDs(ctx context.Context) ([]string, error)
}

// StaticDirectory is a fixed list of customer ids, fed from configuration
// when no user service is reachable at startup.
type StaticDirectory []string

func (d StaticDirectory) ListCustomerIDs(_ context.Context) ([]string, error) {
	return d, nil
}

// Run is the explicit idempotent bootstrap invoked once at process start:
// it creates the platform wallet if missing, then sweeps every known
// customer and creates any missing wallets. Safe to run concurrently across
// processes; the store's uniqueness handling converges duplicates.
//
// A missing platform wallet is fatal for the process; a failure on one
// customer's wallet is logged and the sweep continues.
func Run(ctx context.Context, wallets WalletEnsurer, customers CustomerDirectory, logger *slog.Logger) error {
	if _, err := wallets.EnsurePlatformWallet(ctx); err != nil {
		return fmt.Errorf("failed to ensure platform wallet: %w", err)
	}

	ids, err := customers.ListCustomerIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list customers for wallet sweep: %w", err)
	}

	var failed int
	for _, id := range ids {
		if _, err := wallets.EnsureWallet(ctx, id); err != nil {
			failed++
			logger.Error("failed to ensure customer wallet", "customer_id", id, "error", err)
		}
	}

	logger.Info("wallet bootstrap complete", "customers", len(ids), "failed", failed)
	return nil
}
