package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chijiooke/real-stay/pkg/models"
	"github.com/chijiooke/real-stay/pkg/storage"
	"github.com/google/uuid"
)

// CreateTransaction inserts a new ledger entry keyed by its idempotency
// reference. A second write with the same reference is collapsed into the
// first: the existing entry is fetched and returned instead of erroring.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	now := time.Now()
	tx.Id = uuid.New().String()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Item:                txAV,
		ConditionExpression: aws.String("attribute_not_exists(#reference)"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Already processed. Return the committed entry.
			return s.GetTransactionByReference(ctx, tx.Reference)
		}
		return nil, fmt.Errorf("failed to create transaction in DynamoDB: %w", err)
	}

	return tx, nil
}

// ledgerPut stamps a new entry and builds its conditional put for use inside
// a TransactWriteItems call. The reference uniqueness condition is the same
// one CreateTransaction relies on.
func (s *Store) ledgerPut(tx *models.Transaction, now time.Time) (types.TransactWriteItem, error) {
	tx.Id = uuid.New().String()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal ledger entry %s: %w", tx.Reference, err)
	}

	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(s.TransactionsTableName),
			Item:                txAV,
			ConditionExpression: aws.String("attribute_not_exists(#reference)"),
			ExpressionAttributeNames: map[string]string{
				"#reference": "reference",
			},
		},
	}, nil
}

// CreateSplitPair inserts two ledger entries linked to the same parent
// reference in one atomic write. Both commit or neither does; a duplicate
// reference on either side cancels the pair and surfaces as
// ErrAlreadyProcessing.
func (s *Store) CreateSplitPair(ctx context.Context, parentRef string, childA, childB *models.Transaction) (*models.Transaction, *models.Transaction, error) {
	now := time.Now()
	childA.ParentTransaction = parentRef
	childB.ParentTransaction = parentRef

	items := make([]types.TransactWriteItem, 0, 2)
	for _, tx := range []*models.Transaction{childA, childB} {
		item, err := s.ledgerPut(tx, now)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}

	_, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, nil, storage.ErrAlreadyProcessing
				}
			}
		}
		return nil, nil, fmt.Errorf("failed to write split pair for %s: %w", parentRef, err)
	}

	return childA, childB, nil
}

// GetTransactionByReference retrieves a ledger entry by its reference.
func (s *Store) GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"reference": reference})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction reference: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrTransactionNotFound
	}

	var tx models.Transaction
	if err := attributevalue.UnmarshalMap(result.Item, &tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}

	return &tx, nil
}

// FindActiveTransactionByBooking returns the first ledger entry for the
// booking that is not a terminal failure, or nil, nil when none exists.
func (s *Store) FindActiveTransactionByBooking(ctx context.Context, bookingID string) (*models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(bookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bookingID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bookingID": &types.AttributeValueMemberS{Value: bookingID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by booking ID: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	for i := range transactions {
		switch transactions[i].Status {
		case models.TxFailed, models.TxReversed:
			continue
		default:
			return &transactions[i], nil
		}
	}

	return nil, nil
}

// ListTransactionsByCustomer retrieves all ledger entries for a customer.
func (s *Store) ListTransactionsByCustomer(ctx context.Context, customerID string) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(customerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :customerID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customerID": &types.AttributeValueMemberS{Value: customerID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by customer ID: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	return transactions, nil
}

// UpdateTransactionStatus advances an entry's status, conditional on its
// current status still being one of `from`. A redelivered event that finds
// the entry already advanced gets ErrStaleStatus back, never a regression.
func (s *Store) UpdateTransactionStatus(ctx context.Context, reference string, from []models.TransactionStatus, to models.TransactionStatus, metaPatch map[string]string) error {
	if len(from) == 0 {
		return fmt.Errorf("at least one expected status is required")
	}

	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for status update: %w", err)
	}

	values := map[string]types.AttributeValue{
		":to":  &types.AttributeValueMemberS{Value: string(to)},
		":now": nowAV,
	}
	placeholders := make([]string, len(from))
	for i, st := range from {
		p := fmt.Sprintf(":from%d", i)
		placeholders[i] = p
		values[p] = &types.AttributeValueMemberS{Value: string(st)}
	}

	update := "SET #status = :to, updated_at = :now"
	if len(metaPatch) > 0 {
		metaAV, err := attributevalue.Marshal(metaPatch)
		if err != nil {
			return fmt.Errorf("failed to marshal meta patch: %w", err)
		}
		values[":meta"] = metaAV
		update += ", meta = :meta"
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		UpdateExpression:    aws.String(update),
		ConditionExpression: aws.String(fmt.Sprintf("attribute_exists(#reference) AND #status IN (%s)", strings.Join(placeholders, ", "))),
		ExpressionAttributeNames: map[string]string{
			"#status":    "status",
			"#reference": "reference",
		},
		ExpressionAttributeValues: values,
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrStaleStatus
		}
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	return nil
}
