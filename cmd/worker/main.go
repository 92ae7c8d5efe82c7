package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chijiooke/real-stay/pkg/config"
	"github.com/chijiooke/real-stay/pkg/gateway"
	"github.com/chijiooke/real-stay/pkg/queue"
	"github.com/chijiooke/real-stay/pkg/settlement"
	dydbstore "github.com/chijiooke/real-stay/pkg/storage/dynamodb"
	"github.com/chijiooke/real-stay/pkg/worker"
	"github.com/joho/godotenv"
)

func main() {
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

	sqsClient := sqs.NewFromConfig(awsCfg)
	paystack := gateway.NewPaystack(cfg.PaystackBaseURL, cfg.PaystackSecretKey)

	w := &worker.Worker{
		Outflow:    queue.NewConsumer(sqsClient, cfg.OutflowQueueURL, logger),
		Pending:    queue.NewConsumer(sqsClient, cfg.PendingQueueURL, logger),
		Store:      store,
		Settlement: settlement.New(store, paystack, logger),
		Gateway:    paystack,
		Logger:     logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("reconciliation worker starting")
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("worker exited: %v", err)
	}
	logger.Info("reconciliation worker stopped")
}
