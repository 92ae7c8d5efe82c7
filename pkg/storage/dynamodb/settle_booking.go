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
)

// SettleBooking commits the full settlement in a single TransactWriteItems
// call: the parent PAYMENT entry, both WALLET_INFLOW children, both wallet
// credits and the booking transition to BOOKED all succeed or none do.
// The parent's reference uniqueness condition serializes concurrent attempts
// for the same payment: the loser's whole write is cancelled and surfaces as
// ErrAlreadyProcessing.
func (s *Store) SettleBooking(ctx context.Context, in storage.SettleBookingInput) error {
	now := time.Now()

	items := make([]types.TransactWriteItem, 0, 6)

	parentItem, err := s.ledgerPut(in.Parent, now)
	if err != nil {
		return err
	}
	// The pending loop may be resuming a payment entry stuck in flight: only a
	// committed parent blocks the write, an in-flight one is overwritten.
	parentItem.Put.ConditionExpression = aws.String("attribute_not_exists(#reference) OR #status <> :committed")
	parentItem.Put.ExpressionAttributeNames["#status"] = "status"
	parentItem.Put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":committed": &types.AttributeValueMemberS{Value: string(models.TxSuccess)},
	}
	items = append(items, parentItem)

	for _, tx := range []*models.Transaction{in.OwnerInflow, in.CompanyInflow} {
		item, err := s.ledgerPut(tx, now)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for settlement: %w", err)
	}

	ownerEntry, err := attributevalue.Marshal(models.WalletHistoryEntry{
		Reference:   in.OwnerInflow.Reference,
		Amount:      in.OwnerShare,
		Type:        string(models.TxWalletInflow),
		Description: in.OwnerInflow.Description,
		CreatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal owner history entry: %w", err)
	}
	companyEntry, err := attributevalue.Marshal(models.WalletHistoryEntry{
		Reference:   in.CompanyInflow.Reference,
		Amount:      in.PlatformShare,
		Type:        string(models.TxWalletInflow),
		Description: in.CompanyInflow.Description,
		CreatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal company history entry: %w", err)
	}

	creditUpdate := func(customerID string, amount int64, entryAV types.AttributeValue) types.TransactWriteItem {
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(s.WalletsTableName),
				Key: map[string]types.AttributeValue{
					"customer_id": &types.AttributeValueMemberS{Value: customerID},
				},
				UpdateExpression:    aws.String("SET balance = balance + :amount, updated_at = :now, history = list_append(if_not_exists(history, :empty), :entry)"),
				ConditionExpression: aws.String("attribute_exists(customer_id) AND can_deposit = :enabled"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
					":enabled": &types.AttributeValueMemberBOOL{Value: true},
					":entry":   &types.AttributeValueMemberL{Value: []types.AttributeValue{entryAV}},
					":empty":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
					":now":     nowAV,
				},
			},
		}
	}

	items = append(items,
		creditUpdate(in.OwnerWallet.CustomerId, in.OwnerShare, ownerEntry),
		creditUpdate(models.PlatformWalletKey, in.PlatformShare, companyEntry),
	)

	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(s.BookingsTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: in.Booking.Id},
			},
			UpdateExpression:    aws.String("SET #status = :booked, payment_reference = :reference, updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(id) AND #status IN (:pending, :reserved)"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":booked":    &types.AttributeValueMemberS{Value: string(models.BookingBooked)},
				":pending":   &types.AttributeValueMemberS{Value: string(models.BookingPending)},
				":reserved":  &types.AttributeValueMemberS{Value: string(models.BookingReserved)},
				":reference": &types.AttributeValueMemberS{Value: in.Parent.Reference},
				":now":       nowAV,
			},
		},
	})

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return classifySettlementCancellation(tce)
		}
		return fmt.Errorf("failed to execute settlement transaction: %w", err)
	}

	return nil
}

// classifySettlementCancellation maps the positional cancellation reasons of
// the settlement write to domain errors. Item order: three ledger puts, two
// wallet credits, one booking update.
func classifySettlementCancellation(tce *types.TransactionCanceledException) error {
	for i, reason := range tce.CancellationReasons {
		if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		switch {
		case i < 3:
			return storage.ErrAlreadyProcessing
		case i < 5:
			return storage.ErrDepositsDisabled
		default:
			return storage.ErrBookingStateConflict
		}
	}
	return fmt.Errorf("settlement transaction cancelled: %w", tce)
}

// CompleteOutflow atomically debits the customer wallet for an
// already-initiated withdrawal and marks the WALLET_OUTFLOW entry SUCCESS.
// The conditional status transition makes redelivered transfer.success
// webhooks no-ops.
func (s *Store) CompleteOutflow(ctx context.Context, tx *models.Transaction) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for outflow completion: %w", err)
	}

	entryAV, err := attributevalue.Marshal(models.WalletHistoryEntry{
		Reference:   tx.Reference,
		Amount:      -tx.Amount,
		Type:        string(models.TxWalletOutflow),
		Description: tx.Description,
		CreatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(s.WalletsTableName),
					Key: map[string]types.AttributeValue{
						"customer_id": &types.AttributeValueMemberS{Value: tx.CustomerId},
					},
					UpdateExpression:    aws.String("SET balance = balance - :amount, updated_at = :now, history = list_append(if_not_exists(history, :empty), :entry)"),
					ConditionExpression: aws.String("attribute_exists(customer_id) AND can_withdraw = :enabled AND balance >= :amount"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", tx.Amount)},
						":enabled": &types.AttributeValueMemberBOOL{Value: true},
						":entry":   &types.AttributeValueMemberL{Value: []types.AttributeValue{entryAV}},
						":empty":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
						":now":     nowAV,
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(s.TransactionsTableName),
					Key: map[string]types.AttributeValue{
						"reference": &types.AttributeValueMemberS{Value: tx.Reference},
					},
					UpdateExpression:    aws.String("SET #status = :success, updated_at = :now"),
					ConditionExpression: aws.String("#status = :ongoing"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":success": &types.AttributeValueMemberS{Value: string(models.TxSuccess)},
						":ongoing": &types.AttributeValueMemberS{Value: string(models.TxOngoing)},
						":now":     nowAV,
					},
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for i, reason := range tce.CancellationReasons {
				if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
					continue
				}
				if i == 0 {
					// The debit condition covers both gates; re-fetch to tell
					// a blocked wallet apart from an overdrawn one.
					return s.classifyDebitFailure(ctx, tx.CustomerId, tx.Amount)
				}
				return storage.ErrStaleStatus
			}
		}
		return fmt.Errorf("failed to execute outflow completion: %w", err)
	}

	return nil
}

// ReverseOutflow compensates a withdrawal the provider reversed after
// confirming it: the wallet gets the debited amount back and the ledger entry
// moves SUCCESS -> REVERSED, in one atomic write. The re-credit skips the
// can_deposit gate so a blocked wallet cannot strand returned funds.
func (s *Store) ReverseOutflow(ctx context.Context, tx *models.Transaction) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for outflow reversal: %w", err)
	}

	entryAV, err := attributevalue.Marshal(models.WalletHistoryEntry{
		Reference:   tx.Reference,
		Amount:      tx.Amount,
		Type:        string(models.TxReversed),
		Description: fmt.Sprintf("Reversal of %s", tx.Reference),
		CreatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(s.WalletsTableName),
					Key: map[string]types.AttributeValue{
						"customer_id": &types.AttributeValueMemberS{Value: tx.CustomerId},
					},
					UpdateExpression:    aws.String("SET balance = balance + :amount, updated_at = :now, history = list_append(if_not_exists(history, :empty), :entry)"),
					ConditionExpression: aws.String("attribute_exists(customer_id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", tx.Amount)},
						":entry":  &types.AttributeValueMemberL{Value: []types.AttributeValue{entryAV}},
						":empty":  &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
						":now":    nowAV,
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(s.TransactionsTableName),
					Key: map[string]types.AttributeValue{
						"reference": &types.AttributeValueMemberS{Value: tx.Reference},
					},
					UpdateExpression:    aws.String("SET #status = :reversed, updated_at = :now"),
					ConditionExpression: aws.String("#status = :success"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":reversed": &types.AttributeValueMemberS{Value: string(models.TxReversed)},
						":success":  &types.AttributeValueMemberS{Value: string(models.TxSuccess)},
						":now":      nowAV,
					},
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for i, reason := range tce.CancellationReasons {
				if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
					continue
				}
				if i == 0 {
					return storage.ErrWalletNotFound
				}
				return storage.ErrStaleStatus
			}
		}
		return fmt.Errorf("failed to execute outflow reversal: %w", err)
	}

	return nil
}
