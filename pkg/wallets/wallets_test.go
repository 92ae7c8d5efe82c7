package wallets

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/chijiooke/real-stay/pkg/gateway"
	gatewaymocks "github.com/chijiooke/real-stay/pkg/gateway/mocks"
	"github.com/chijiooke/real-stay/pkg/models"
	queuemocks "github.com/chijiooke/real-stay/pkg/queue/mocks"
	"github.com/chijiooke/real-stay/pkg/storage"
	storagemocks "github.com/chijiooke/real-stay/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fundedWallet() *models.Wallet {
	return &models.Wallet{
		Id:                     "wallet-1",
		CustomerId:             "user-1",
		Balance:                1000,
		Currency:               "NGN",
		Status:                 models.WalletActive,
		CanWithdraw:            true,
		CanDeposit:             true,
		IsWithdrawalAccountSet: true,
		WithdrawalDetails: &models.WithdrawalDetails{
			AccountName:   "Ada L.",
			AccountNo:     "0123456789",
			BankCode:      "058",
			BankName:      "GTBank",
			RecipientCode: "RCP_1",
		},
	}
}

func TestWithdraw(t *testing.T) {
	t.Run("Success Initiates Transfer Without Debiting", func(t *testing.T) {
		mockStorage := new(storagemocks.Storage)
		mockGateway := new(gatewaymocks.PaymentGateway)
		mockQueue := new(queuemocks.Publisher)
		svc := New(mockStorage, mockStorage, mockGateway, mockQueue, testLogger())

		mockStorage.On("GetWalletByCustomer", mock.Anything, "user-1").Return(fundedWallet(), nil)
		mockStorage.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.Type == models.TxWalletOutflow && tx.Status == models.TxOngoing && tx.Amount == 600
		})).Return(func(_ context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
		mockGateway.On("InitiateTransfer", mock.Anything, "RCP_1", int64(600), mock.Anything, mock.Anything).
			Return(&gateway.TransferResult{TransferCode: "TRF_1", Status: "pending"}, nil)
		mockStorage.On("UpdateTransactionStatus", mock.Anything, mock.Anything,
			[]models.TransactionStatus{models.TxOngoing}, models.TxOngoing, mock.Anything).Return(nil)

		tx, err := svc.Withdraw(context.Background(), "user-1", 600)

		assert.NoError(t, err)
		assert.Equal(t, models.TxOngoing, tx.Status)
		mockStorage.AssertNotCalled(t, "DebitWallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockQueue.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		mockStorage.AssertExpectations(t)
		mockGateway.AssertExpectations(t)
	})

	t.Run("Unknown Gateway Outcome Goes To Reconciliation", func(t *testing.T) {
		mockStorage := new(storagemocks.Storage)
		mockGateway := new(gatewaymocks.PaymentGateway)
		mockQueue := new(queuemocks.Publisher)
		svc := New(mockStorage, mockStorage, mockGateway, mockQueue, testLogger())

		mockStorage.On("GetWalletByCustomer", mock.Anything, "user-1").Return(fundedWallet(), nil)
		mockStorage.On("CreateTransaction", mock.Anything, mock.Anything).
			Return(func(_ context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
		mockGateway.On("InitiateTransfer", mock.Anything, "RCP_1", int64(600), mock.Anything, mock.Anything).
			Return(nil, errors.New("gateway timeout"))
		mockQueue.On("Publish", mock.Anything, mock.AnythingOfType("string")).Return(nil)

		tx, err := svc.Withdraw(context.Background(), "user-1", 600)

		assert.NoError(t, err)
		assert.Equal(t, models.TxOngoing, tx.Status)
		mockQueue.AssertExpectations(t)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockStorage := new(storagemocks.Storage)
		svc := New(mockStorage, mockStorage, new(gatewaymocks.PaymentGateway), new(queuemocks.Publisher), testLogger())

		mockStorage.On("GetWalletByCustomer", mock.Anything, "user-1").Return(fundedWallet(), nil)

		_, err := svc.Withdraw(context.Background(), "user-1", 5000)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockStorage.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})

	t.Run("No Withdrawal Account", func(t *testing.T) {
		mockStorage := new(storagemocks.Storage)
		svc := New(mockStorage, mockStorage, new(gatewaymocks.PaymentGateway), new(queuemocks.Publisher), testLogger())

		wallet := fundedWallet()
		wallet.IsWithdrawalAccountSet = false
		wallet.WithdrawalDetails = nil
		mockStorage.On("GetWalletByCustomer", mock.Anything, "user-1").Return(wallet, nil)

		_, err := svc.Withdraw(context.Background(), "user-1", 600)

		assert.ErrorIs(t, err, ErrNoWithdrawalAccount)
	})

	t.Run("Withdrawals Disabled", func(t *testing.T) {
		mockStorage := new(storagemocks.Storage)
		svc := New(mockStorage, mockStorage, new(gatewaymocks.PaymentGateway), new(queuemocks.Publisher), testLogger())

		wallet := fundedWallet()
		wallet.CanWithdraw = false
		mockStorage.On("GetWalletByCustomer", mock.Anything, "user-1").Return(wallet, nil)

		_, err := svc.Withdraw(context.Background(), "user-1", 600)

		assert.ErrorIs(t, err, storage.ErrWithdrawalsDisabled)
	})

	t.Run("Rejects Non-Positive Amount", func(t *testing.T) {
		mockStorage := new(storagemocks.Storage)
		svc := New(mockStorage, mockStorage, new(gatewaymocks.PaymentGateway), new(queuemocks.Publisher), testLogger())

		_, err := svc.Withdraw(context.Background(), "user-1", -1)

		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
		mockStorage.AssertNotCalled(t, "GetWalletByCustomer", mock.Anything, mock.Anything)
	})
}

func TestAddWithdrawalAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storagemocks.Storage)
		mockGateway := new(gatewaymocks.PaymentGateway)
		svc := New(mockStorage, mockStorage, mockGateway, new(queuemocks.Publisher), testLogger())

		mockStorage.On("GetWalletByCustomer", mock.Anything, "user-1").
			Return(&models.Wallet{CustomerId: "user-1", Currency: "NGN"}, nil)
		mockGateway.On("CreateRecipient", mock.Anything, gateway.Recipient{
			Name: "Ada L.", AccountNumber: "0123456789", BankCode: "058", Currency: "NGN",
		}).Return(&gateway.RecipientResult{
			RecipientCode: "RCP_1", AccountName: "ADA L", BankName: "GTBank",
		}, nil)
		mockStorage.On("SetWithdrawalDetails", mock.Anything, "user-1", models.WithdrawalDetails{
			AccountName: "ADA L", AccountNo: "0123456789", BankCode: "058",
			BankName: "GTBank", RecipientCode: "RCP_1",
		}).Return(fundedWallet(), nil)

		wallet, err := svc.AddWithdrawalAccount(context.Background(), "user-1", "Ada L.", "0123456789", "058")

		assert.NoError(t, err)
		assert.True(t, wallet.IsWithdrawalAccountSet)
		mockStorage.AssertExpectations(t)
		mockGateway.AssertExpectations(t)
	})

	t.Run("Gateway Rejection", func(t *testing.T) {
		mockStorage := new(storagemocks.Storage)
		mockGateway := new(gatewaymocks.PaymentGateway)
		svc := New(mockStorage, mockStorage, mockGateway, new(queuemocks.Publisher), testLogger())

		mockStorage.On("GetWalletByCustomer", mock.Anything, "user-1").
			Return(&models.Wallet{CustomerId: "user-1", Currency: "NGN"}, nil)
		mockGateway.On("CreateRecipient", mock.Anything, mock.Anything).
			Return(nil, errors.New("invalid account number"))

		_, err := svc.AddWithdrawalAccount(context.Background(), "user-1", "Ada L.", "bad", "058")

		assert.Error(t, err)
		mockStorage.AssertNotCalled(t, "SetWithdrawalDetails", mock.Anything, mock.Anything, mock.Anything)
	})
}
