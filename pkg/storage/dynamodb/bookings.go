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

// GetBooking retrieves a booking by its ID.
func (s *Store) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.BookingsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrBookingNotFound
	}

	var booking models.Booking
	if err := attributevalue.UnmarshalMap(result.Item, &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	return &booking, nil
}

// FindOverlappingBooking returns a RESERVED or BOOKED booking on the listing
// whose date range overlaps [startDate, endDate], or nil, nil. Dates are
// ISO-8601 strings, so lexicographic comparison is chronological.
func (s *Store) FindOverlappingBooking(ctx context.Context, listingID, startDate, endDate string) (*models.Booking, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.BookingsTableName),
		IndexName:              aws.String(listingIDIndex),
		KeyConditionExpression: aws.String("listing_id = :listingID"),
		FilterExpression:       aws.String("#status IN (:reserved, :booked) AND start_date <= :end AND end_date >= :start"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":listingID": &types.AttributeValueMemberS{Value: listingID},
			":reserved":  &types.AttributeValueMemberS{Value: string(models.BookingReserved)},
			":booked":    &types.AttributeValueMemberS{Value: string(models.BookingBooked)},
			":start":     &types.AttributeValueMemberS{Value: startDate},
			":end":       &types.AttributeValueMemberS{Value: endDate},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings by listing ID: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	var booking models.Booking
	if err := attributevalue.UnmarshalMap(result.Items[0], &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	return &booking, nil
}

// CreateBooking inserts a new booking record.
func (s *Store) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	now := time.Now()
	booking.Id = uuid.New().String()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	bookingAV, err := attributevalue.MarshalMap(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.BookingsTableName),
		Item:                bookingAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create booking in DynamoDB: %w", err)
	}

	return booking, nil
}

// UpdateBookingStatus moves a booking between states, conditional on its
// current status. A BOOKED booking never silently regresses: callers must
// name the states they expect to transition from.
func (s *Store) UpdateBookingStatus(ctx context.Context, bookingID string, from []models.BookingStatus, to models.BookingStatus) (*models.Booking, error) {
	if len(from) == 0 {
		return nil, fmt.Errorf("at least one expected status is required")
	}

	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
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

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.BookingsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: bookingID},
		},
		UpdateExpression:    aws.String("SET #status = :to, updated_at = :now"),
		ConditionExpression: aws.String(fmt.Sprintf("attribute_exists(id) AND #status IN (%s)", strings.Join(placeholders, ", "))),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrBookingStateConflict
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	var booking models.Booking
	if err := attributevalue.UnmarshalMap(result.Attributes, &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated booking: %w", err)
	}

	return &booking, nil
}
