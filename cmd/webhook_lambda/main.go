package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chijiooke/real-stay/pkg/config"
	"github.com/chijiooke/real-stay/pkg/gateway"
	"github.com/chijiooke/real-stay/pkg/settlement"
	dydbstore "github.com/chijiooke/real-stay/pkg/storage/dynamodb"
	"github.com/chijiooke/real-stay/pkg/worker"
	"github.com/joho/godotenv"
)

var w *worker.Worker

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store := &dydbstore.Store{
		Client:                dynamodb.NewFromConfig(awsCfg),
		BookingsTableName:     cfg.BookingsTableName,
		TransactionsTableName: cfg.TransactionsTableName,
		WalletsTableName:      cfg.WalletsTableName,
	}

	paystack := gateway.NewPaystack(cfg.PaystackBaseURL, cfg.PaystackSecretKey)

	// This lambda is triggered by the queues directly, so no Consumer loops
	// are wired; only the per-message handlers run.
	w = &worker.Worker{
		Store:      store,
		Settlement: settlement.New(store, paystack, logger),
		Gateway:    paystack,
		Logger:     logger,
	}
}

// HandleRequest drains one SQS batch. Failed records are reported back so
// only they return to the queue for redelivery.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse

	for _, message := range sqsEvent.Records {
		var err error
		if arn := message.EventSourceARN; isPendingQueue(arn) {
			err = w.HandlePendingReference(ctx, message.Body)
		} else {
			err = w.HandleOutflowEvent(ctx, message.Body)
		}
		if err != nil {
			log.Printf("ERROR: failed to process SQS message %s: %v", message.MessageId, err)
			resp.BatchItemFailures = append(resp.BatchItemFailures,
				events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
		}
	}

	return resp, nil
}

func isPendingQueue(arn string) bool {
	// Queue ARNs end with the queue name.
	const suffix = "pending-confirmations"
	return len(arn) >= len(suffix) && arn[len(arn)-len(suffix):] == suffix
}

func main() {
	lambda.Start(HandleRequest)
}
