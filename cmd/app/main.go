package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chijiooke/real-stay/pkg/bookings"
	"github.com/chijiooke/real-stay/pkg/bootstrap"
	"github.com/chijiooke/real-stay/pkg/config"
	"github.com/chijiooke/real-stay/pkg/gateway"
	"github.com/chijiooke/real-stay/pkg/handlers"
	"github.com/chijiooke/real-stay/pkg/middleware"
	"github.com/chijiooke/real-stay/pkg/queue"
	"github.com/chijiooke/real-stay/pkg/settlement"
	dydbstore "github.com/chijiooke/real-stay/pkg/storage/dynamodb"
	"github.com/chijiooke/real-stay/pkg/wallets"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file (useful for local runs).
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
	outflowQueue := queue.NewSQSPublisher(sqsClient, cfg.OutflowQueueURL)
	pendingQueue := queue.NewSQSPublisher(sqsClient, cfg.PendingQueueURL)

	paystack := gateway.NewPaystack(cfg.PaystackBaseURL, cfg.PaystackSecretKey)

	// The startup sweep is idempotent, so a crash between here and serving
	// traffic just repeats it on the next boot.
	if err := bootstrap.Run(context.TODO(), store, bootstrap.StaticDirectory(cfg.BootstrapCustomerIDs), logger); err != nil {
		log.Fatalf("wallet bootstrap failed: %v", err)
	}

	handler := &handlers.Handler{
		Bookings:      bookings.New(store, logger),
		Settlement:    settlement.New(store, paystack, logger),
		Wallets:       wallets.New(store, store, paystack, pendingQueue, logger),
		WalletStore:   store,
		Ledger:        store,
		OutflowQueue:  outflowQueue,
		WebhookSecret: cfg.PaystackSecretKey,
		Logger:        logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestLogger(logger))
	handler.Routes(router)

	logger.Info("starting server", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
