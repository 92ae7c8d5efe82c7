package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chijiooke/real-stay/pkg/models"
	"github.com/chijiooke/real-stay/pkg/storage"
	"github.com/chijiooke/real-stay/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEnsureWallet(t *testing.T) {
	t.Run("Creates Inactive Wallet", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WalletsTableName: "wallets"}

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.ConditionExpression == "attribute_not_exists(customer_id)"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		wallet, err := store.EnsureWallet(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", wallet.CustomerId)
		assert.Equal(t, models.WalletInactive, wallet.Status)
		assert.False(t, wallet.CanDeposit)
		assert.False(t, wallet.CanWithdraw)
		mockClient.AssertExpectations(t)
	})

	t.Run("Converges On Existing Wallet", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WalletsTableName: "wallets"}

		existing := models.Wallet{CustomerId: "user-1", Balance: 500, Status: models.WalletActive}
		existingAV, _ := attributevalue.MarshalMap(existing)

		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: existingAV}, nil)

		wallet, err := store.EnsureWallet(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(500), wallet.Balance)
		mockClient.AssertExpectations(t)
	})
}

func TestEnsurePlatformWallet(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, WalletsTableName: "wallets"}

	mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

	wallet, err := store.EnsurePlatformWallet(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.PlatformWalletKey, wallet.CustomerId)
	assert.True(t, wallet.IsCompanyWallet)
	assert.True(t, wallet.CanDeposit)
	mockClient.AssertExpectations(t)
}

func TestCreditWallet(t *testing.T) {
	entry := models.WalletHistoryEntry{Reference: "PAY-1", Amount: 1000, Type: string(models.TxWalletInflow)}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WalletsTableName: "wallets"}

		updated, _ := attributevalue.MarshalMap(models.Wallet{CustomerId: "user-1", Balance: 1000})
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "attribute_exists(customer_id) AND can_deposit = :enabled"
		})).Return(&dynamodb.UpdateItemOutput{Attributes: updated}, nil)

		wallet, err := store.CreditWallet(context.Background(), "user-1", 1000, entry)

		assert.NoError(t, err)
		assert.Equal(t, int64(1000), wallet.Balance)
		mockClient.AssertExpectations(t)
	})

	t.Run("Deposits Disabled", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WalletsTableName: "wallets"}

		disabled, _ := attributevalue.MarshalMap(models.Wallet{CustomerId: "user-1", CanDeposit: false})
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: disabled}, nil)

		_, err := store.CreditWallet(context.Background(), "user-1", 1000, entry)

		assert.ErrorIs(t, err, storage.ErrDepositsDisabled)
		mockClient.AssertExpectations(t)
	})

	t.Run("Rejects Non-Positive Amount", func(t *testing.T) {
		store := &Store{Client: new(mocks.DynamoDBAPI), WalletsTableName: "wallets"}

		_, err := store.CreditWallet(context.Background(), "user-1", 0, entry)

		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
	})
}

func TestDebitWallet(t *testing.T) {
	entry := models.WalletHistoryEntry{Reference: "WDR-1", Amount: -600, Type: string(models.TxWalletOutflow)}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WalletsTableName: "wallets"}

		updated, _ := attributevalue.MarshalMap(models.Wallet{CustomerId: "user-1", Balance: 400})
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "attribute_exists(customer_id) AND can_withdraw = :enabled AND balance >= :amount"
		})).Return(&dynamodb.UpdateItemOutput{Attributes: updated}, nil)

		wallet, err := store.DebitWallet(context.Background(), "user-1", 600, entry)

		assert.NoError(t, err)
		assert.Equal(t, int64(400), wallet.Balance)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WalletsTableName: "wallets"}

		broke, _ := attributevalue.MarshalMap(models.Wallet{CustomerId: "user-1", Balance: 40, CanWithdraw: true})
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: broke}, nil)

		_, err := store.DebitWallet(context.Background(), "user-1", 60, entry)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockClient.AssertExpectations(t)
	})

	t.Run("Withdrawals Disabled", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WalletsTableName: "wallets"}

		frozen, _ := attributevalue.MarshalMap(models.Wallet{CustomerId: "user-1", Balance: 1000, CanWithdraw: false})
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: frozen}, nil)

		_, err := store.DebitWallet(context.Background(), "user-1", 60, entry)

		assert.ErrorIs(t, err, storage.ErrWithdrawalsDisabled)
		mockClient.AssertExpectations(t)
	})
}

func TestActivateWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WalletsTableName: "wallets"}

		active, _ := attributevalue.MarshalMap(models.Wallet{
			CustomerId: "user-1", Status: models.WalletActive, CanDeposit: true, CanWithdraw: true,
		})
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(&dynamodb.UpdateItemOutput{Attributes: active}, nil)

		wallet, err := store.ActivateWallet(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, models.WalletActive, wallet.Status)
		assert.True(t, wallet.CanWithdraw)
		mockClient.AssertExpectations(t)
	})

	t.Run("Wallet Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WalletsTableName: "wallets"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.ActivateWallet(context.Background(), "ghost")

		assert.ErrorIs(t, err, storage.ErrWalletNotFound)
		mockClient.AssertExpectations(t)
	})
}
