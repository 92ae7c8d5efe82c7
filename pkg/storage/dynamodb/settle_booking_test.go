package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chijiooke/real-stay/pkg/models"
	"github.com/chijiooke/real-stay/pkg/storage"
	"github.com/chijiooke/real-stay/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func settlementInput() storage.SettleBookingInput {
	return storage.SettleBookingInput{
		Parent: &models.Transaction{
			Reference: "PAY-1", Type: models.TxPayment, Status: models.TxSuccess, Amount: 100000,
		},
		OwnerInflow: &models.Transaction{
			Reference: "PAY-1-owner-share", Type: models.TxWalletInflow, Status: models.TxSuccess, Amount: 90000,
		},
		CompanyInflow: &models.Transaction{
			Reference: "PAY-1-company-share", Type: models.TxWalletInflow, Status: models.TxSuccess, Amount: 10000,
		},
		OwnerShare:    90000,
		PlatformShare: 10000,
		OwnerWallet:   &models.Wallet{CustomerId: "owner-1"},
		Booking:       &models.Booking{Id: "booking-1", Status: models.BookingReserved},
	}
}

func cancelled(reasons ...string) *types.TransactionCanceledException {
	tce := &types.TransactionCanceledException{}
	for _, code := range reasons {
		tce.CancellationReasons = append(tce.CancellationReasons,
			types.CancellationReason{Code: aws.String(code)})
	}
	return tce
}

func TestSettleBooking(t *testing.T) {
	t.Run("Success Writes One Atomic Transaction", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{
			Client:                mockClient,
			BookingsTableName:     "bookings",
			TransactionsTableName: "transactions",
			WalletsTableName:      "wallets",
		}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 6 {
				return false
			}
			// Three conditional ledger puts, two wallet credits, one booking move.
			// The parent put tolerates overwriting an in-flight entry; the
			// children never overwrite anything.
			if input.TransactItems[0].Put == nil ||
				*input.TransactItems[0].Put.ConditionExpression != "attribute_not_exists(#reference) OR #status <> :committed" {
				return false
			}
			for i := 1; i < 3; i++ {
				if input.TransactItems[i].Put == nil ||
					*input.TransactItems[i].Put.ConditionExpression != "attribute_not_exists(#reference)" {
					return false
				}
			}
			for i := 3; i < 6; i++ {
				if input.TransactItems[i].Update == nil {
					return false
				}
			}
			return true
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.SettleBooking(context.Background(), settlementInput())

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Reference Is Already Processing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, BookingsTableName: "bookings", TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, cancelled("ConditionalCheckFailed", "None", "None", "None", "None", "None"))

		err := store.SettleBooking(context.Background(), settlementInput())

		assert.ErrorIs(t, err, storage.ErrAlreadyProcessing)
		mockClient.AssertExpectations(t)
	})

	t.Run("Disabled Wallet Cancels Everything", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, BookingsTableName: "bookings", TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, cancelled("None", "None", "None", "ConditionalCheckFailed", "None", "None"))

		err := store.SettleBooking(context.Background(), settlementInput())

		assert.ErrorIs(t, err, storage.ErrDepositsDisabled)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Booking Status Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, BookingsTableName: "bookings", TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, cancelled("None", "None", "None", "None", "None", "ConditionalCheckFailed"))

		err := store.SettleBooking(context.Background(), settlementInput())

		assert.ErrorIs(t, err, storage.ErrBookingStateConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unexpected Error Passes Through", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, BookingsTableName: "bookings", TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, errors.New("throughput exceeded"))

		err := store.SettleBooking(context.Background(), settlementInput())

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrAlreadyProcessing)
		mockClient.AssertExpectations(t)
	})
}

func TestCompleteOutflow(t *testing.T) {
	tx := &models.Transaction{
		Reference:  "WDR-1",
		Type:       models.TxWalletOutflow,
		Status:     models.TxOngoing,
		Amount:     600,
		CustomerId: "user-1",
	}

	t.Run("Success Debits And Marks In One Write", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			return len(input.TransactItems) == 2 &&
				input.TransactItems[0].Update != nil &&
				*input.TransactItems[0].Update.ConditionExpression == "attribute_exists(customer_id) AND can_withdraw = :enabled AND balance >= :amount" &&
				input.TransactItems[1].Update != nil
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CompleteOutflow(context.Background(), tx)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		overdrawn, _ := attributevalue.MarshalMap(&models.Wallet{
			CustomerId: "user-1", Balance: 100, CanWithdraw: true,
		})
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, cancelled("ConditionalCheckFailed", "None"))
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: overdrawn}, nil)

		err := store.CompleteOutflow(context.Background(), tx)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockClient.AssertExpectations(t)
	})

	t.Run("Blocked Wallet Is Not Debited", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		blocked, _ := attributevalue.MarshalMap(&models.Wallet{
			CustomerId: "user-1", Balance: 5000, CanWithdraw: false,
		})
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, cancelled("ConditionalCheckFailed", "None"))
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: blocked}, nil)

		err := store.CompleteOutflow(context.Background(), tx)

		assert.ErrorIs(t, err, storage.ErrWithdrawalsDisabled)
		mockClient.AssertExpectations(t)
	})

	t.Run("Redelivered Confirmation Is Stale", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, cancelled("None", "ConditionalCheckFailed"))

		err := store.CompleteOutflow(context.Background(), tx)

		assert.ErrorIs(t, err, storage.ErrStaleStatus)
		mockClient.AssertExpectations(t)
	})
}

func TestReverseOutflow(t *testing.T) {
	tx := &models.Transaction{
		Reference:  "WDR-1",
		Type:       models.TxWalletOutflow,
		Status:     models.TxSuccess,
		Amount:     600,
		CustomerId: "user-1",
	}

	t.Run("Success Re-Credits And Marks In One Write", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 2 {
				return false
			}
			credit := input.TransactItems[0].Update
			mark := input.TransactItems[1].Update
			return credit != nil &&
				*credit.UpdateExpression == "SET balance = balance + :amount, updated_at = :now, history = list_append(if_not_exists(history, :empty), :entry)" &&
				*credit.ConditionExpression == "attribute_exists(customer_id)" &&
				mark != nil &&
				*mark.ConditionExpression == "#status = :success"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.ReverseOutflow(context.Background(), tx)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Redelivered Reversal Is Stale", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, cancelled("None", "ConditionalCheckFailed"))

		err := store.ReverseOutflow(context.Background(), tx)

		assert.ErrorIs(t, err, storage.ErrStaleStatus)
		mockClient.AssertExpectations(t)
	})

	t.Run("Missing Wallet Cancels The Write", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", WalletsTableName: "wallets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, cancelled("ConditionalCheckFailed", "None"))

		err := store.ReverseOutflow(context.Background(), tx)

		assert.ErrorIs(t, err, storage.ErrWalletNotFound)
		mockClient.AssertExpectations(t)
	})
}
