package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the processes read from the environment.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	BookingsTableName     string `envconfig:"DYNAMODB_BOOKINGS_TABLE_NAME" required:"true"`
	TransactionsTableName string `envconfig:"DYNAMODB_TRANSACTIONS_TABLE_NAME" required:"true"`
	WalletsTableName      string `envconfig:"DYNAMODB_WALLETS_TABLE_NAME" required:"true"`

	OutflowQueueURL string `envconfig:"SQS_OUTFLOW_QUEUE_URL" required:"true"`
	PendingQueueURL string `envconfig:"SQS_PENDING_QUEUE_URL" required:"true"`

	PaystackBaseURL   string `envconfig:"PAYSTACK_BASE_URL" default:"https://api.paystack.co"`
	PaystackSecretKey string `envconfig:"PAYSTACK_SECRET_KEY" required:"true"`

	// BootstrapCustomerIDs seeds the startup wallet sweep. The user system
	// is external, so the sweep takes its customer list from configuration.
	BootstrapCustomerIDs []string `envconfig:"BOOTSTRAP_CUSTOMER_IDS"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
