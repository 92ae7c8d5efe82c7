package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chijiooke/real-stay/pkg/models"
	"github.com/chijiooke/real-stay/pkg/storage"
	"github.com/google/uuid"
)

// EnsurePlatformWallet creates the singleton company wallet if absent.
// The reserved partition key makes the uniqueness constraint do the
// singleton enforcement; a losing concurrent writer re-fetches.
func (s *Store) EnsurePlatformWallet(ctx context.Context) (*models.Wallet, error) {
	now := time.Now()
	wallet := &models.Wallet{
		Id:              uuid.New().String(),
		CustomerId:      models.PlatformWalletKey,
		IsCompanyWallet: true,
		Balance:         0,
		Currency:        models.DefaultCurrency,
		Status:          models.WalletActive,
		CanWithdraw:     true,
		CanDeposit:      true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return s.createWalletIdempotent(ctx, wallet)
}

// EnsureWallet creates a wallet for the customer if one does not exist.
// New customer wallets start INACTIVE with deposits and withdrawals off
// until the external verification step activates them.
func (s *Store) EnsureWallet(ctx context.Context, customerID string) (*models.Wallet, error) {
	now := time.Now()
	wallet := &models.Wallet{
		Id:          uuid.New().String(),
		CustomerId:  customerID,
		Balance:     0,
		Currency:    models.DefaultCurrency,
		Status:      models.WalletInactive,
		CanWithdraw: false,
		CanDeposit:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.createWalletIdempotent(ctx, wallet)
}

// createWalletIdempotent puts the wallet unless one already exists for the
// key, converging concurrent creators on a single record.
func (s *Store) createWalletIdempotent(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	walletAV, err := attributevalue.MarshalMap(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.WalletsTableName),
		Item:                walletAV,
		ConditionExpression: aws.String("attribute_not_exists(customer_id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Another process beat us to it. Converge on its record.
			return s.GetWalletByCustomer(ctx, wallet.CustomerId)
		}
		return nil, fmt.Errorf("failed to create wallet in DynamoDB: %w", err)
	}

	return wallet, nil
}

// GetWalletByCustomer retrieves a customer's wallet by their customer ID.
func (s *Store) GetWalletByCustomer(ctx context.Context, customerID string) (*models.Wallet, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"customer_id": customerID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet customer ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.WalletsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrWalletNotFound
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Item, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	return &wallet, nil
}

// GetPlatformWallet retrieves the singleton company wallet.
func (s *Store) GetPlatformWallet(ctx context.Context) (*models.Wallet, error) {
	return s.GetWalletByCustomer(ctx, models.PlatformWalletKey)
}

// CreditWallet atomically increments the balance and appends a bounded
// history entry. The can_deposit gate is part of the condition expression,
// not an application-level check.
func (s *Store) CreditWallet(ctx context.Context, customerID string, amount int64, entry models.WalletHistoryEntry) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, storage.ErrInvalidAmount
	}

	wallet, err := s.mutateBalance(ctx, customerID, amount, entry,
		"SET balance = balance + :amount, updated_at = :now, history = list_append(if_not_exists(history, :empty), :entry)",
		"attribute_exists(customer_id) AND can_deposit = :enabled",
	)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, s.classifyCreditFailure(ctx, customerID)
		}
		return nil, fmt.Errorf("failed to credit wallet: %w", err)
	}

	s.trimHistory(ctx, customerID, wallet)
	return wallet, nil
}

// DebitWallet atomically decrements the balance only while the sufficient
// funds precondition and the can_withdraw gate still hold at the database
// layer, preventing lost-update races between concurrent debits.
func (s *Store) DebitWallet(ctx context.Context, customerID string, amount int64, entry models.WalletHistoryEntry) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, storage.ErrInvalidAmount
	}

	wallet, err := s.mutateBalance(ctx, customerID, amount, entry,
		"SET balance = balance - :amount, updated_at = :now, history = list_append(if_not_exists(history, :empty), :entry)",
		"attribute_exists(customer_id) AND can_withdraw = :enabled AND balance >= :amount",
	)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, s.classifyDebitFailure(ctx, customerID, amount)
		}
		return nil, fmt.Errorf("failed to debit wallet: %w", err)
	}

	s.trimHistory(ctx, customerID, wallet)
	return wallet, nil
}

func (s *Store) mutateBalance(ctx context.Context, customerID string, amount int64, entry models.WalletHistoryEntry, update, condition string) (*models.Wallet, error) {
	entryAV, err := attributevalue.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history entry: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.WalletsTableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
		UpdateExpression:    aws.String(update),
		ConditionExpression: aws.String(condition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
			":enabled": &types.AttributeValueMemberBOOL{Value: true},
			":entry":   &types.AttributeValueMemberL{Value: []types.AttributeValue{entryAV}},
			":empty":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":now":     nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		return nil, err
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Attributes, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated wallet: %w", err)
	}

	return &wallet, nil
}

// classifyCreditFailure turns a failed credit condition into a domain error.
func (s *Store) classifyCreditFailure(ctx context.Context, customerID string) error {
	wallet, err := s.GetWalletByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if !wallet.CanDeposit {
		return storage.ErrDepositsDisabled
	}
	return storage.ErrWalletNotFound
}

// classifyDebitFailure turns a failed debit condition into a domain error.
func (s *Store) classifyDebitFailure(ctx context.Context, customerID string, amount int64) error {
	wallet, err := s.GetWalletByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if !wallet.CanWithdraw {
		return storage.ErrWithdrawalsDisabled
	}
	if wallet.Balance < amount {
		return storage.ErrInsufficientFunds
	}
	return storage.ErrWalletNotFound
}

// trimHistory drops the oldest history entry once the bound is exceeded.
// Best effort: trimming losing a race is harmless and never fails the caller.
func (s *Store) trimHistory(ctx context.Context, customerID string, wallet *models.Wallet) {
	if wallet == nil || len(wallet.History) <= walletHistoryLimit {
		return
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.WalletsTableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
		UpdateExpression:    aws.String("REMOVE history[0]"),
		ConditionExpression: aws.String("size(history) > :limit"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":limit": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", walletHistoryLimit)},
		},
	}

	_, _ = s.Client.UpdateItem(ctx, input)
}

// ActivateWallet flips the wallet to ACTIVE with both gates enabled.
// Called after the external eligibility (KYC) check succeeds.
func (s *Store) ActivateWallet(ctx context.Context, customerID string) (*models.Wallet, error) {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.WalletsTableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
		UpdateExpression:    aws.String("SET #status = :active, can_withdraw = :enabled, can_deposit = :enabled, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(customer_id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":  &types.AttributeValueMemberS{Value: string(models.WalletActive)},
			":enabled": &types.AttributeValueMemberBOOL{Value: true},
			":now":     nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to activate wallet: %w", err)
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Attributes, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activated wallet: %w", err)
	}

	return &wallet, nil
}

// SetWithdrawalDetails stores the bank recipient info on the wallet.
func (s *Store) SetWithdrawalDetails(ctx context.Context, customerID string, details models.WithdrawalDetails) (*models.Wallet, error) {
	detailsAV, err := attributevalue.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal withdrawal details: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.WalletsTableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
		UpdateExpression:    aws.String("SET withdrawal_details = :details, is_withdrawal_account_set = :set, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(customer_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":details": detailsAV,
			":set":     &types.AttributeValueMemberBOOL{Value: true},
			":now":     nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to set withdrawal details: %w", err)
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Attributes, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	return &wallet, nil
}
