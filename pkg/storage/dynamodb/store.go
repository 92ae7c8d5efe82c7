package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chijiooke/real-stay/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
// Narrowing the client to an interface keeps the store mockable.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                DynamoDBAPI
	BookingsTableName     string
	TransactionsTableName string
	WalletsTableName      string
}

// New creates a new Store.
func New(client DynamoDBAPI, bookingsTable, transactionsTable, walletsTable string) *Store {
	return &Store{
		Client:                client,
		BookingsTableName:     bookingsTable,
		TransactionsTableName: transactionsTable,
		WalletsTableName:      walletsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

const (
	bookingIDIndex  = "booking_id-index"
	listingIDIndex  = "listing_id-index"
	customerIDIndex = "customer_id-index"
)

// walletHistoryLimit bounds the per-wallet transaction history kept inline on
// the wallet record.
const walletHistoryLimit = 20
