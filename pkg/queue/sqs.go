package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSPublisher implements the Publisher interface using AWS SQS.
type SQSPublisher struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSPublisher creates a new SQSPublisher.
func NewSQSPublisher(client SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{Client: client, QueueURL: queueURL}
}

// Make sure we conform to the interface
var _ Publisher = (*SQSPublisher)(nil)

// Publish sends the payload to the SQS queue as JSON.
func (p *SQSPublisher) Publish(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for SQS: %w", err)
	}

	_, err = p.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}

// Consumer drains one SQS queue with long polling. The loop blocks on
// ReceiveMessage until items arrive or the context is cancelled; a failing
// item is logged and left on the queue for redelivery after the visibility
// timeout, so one bad event never halts the loop.
type Consumer struct {
	Client       SQSAPI
	QueueURL     string
	Logger       *slog.Logger
	RetryBackoff time.Duration
}

// NewConsumer creates a Consumer with the default retry backoff.
func NewConsumer(client SQSAPI, queueURL string, logger *slog.Logger) *Consumer {
	return &Consumer{
		Client:       client,
		QueueURL:     queueURL,
		Logger:       logger,
		RetryBackoff: time.Second,
	}
}

// Run consumes the queue until ctx is cancelled, invoking handler for every
// message and deleting messages whose handler succeeds.
func (c *Consumer) Run(ctx context.Context, handler Handler) error {
	c.Logger.Info("listening on queue", "queue", c.QueueURL)

	for {
		out, err := c.Client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(c.QueueURL),
			MaxNumberOfMessages: 1,
			WaitTimeSeconds:     20,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.Logger.Error("failed to receive from queue", "queue", c.QueueURL, "error", err)
			if err := c.sleep(ctx); err != nil {
				return err
			}
			continue
		}

		for _, msg := range out.Messages {
			if err := handler(ctx, aws.ToString(msg.Body)); err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				c.Logger.Error("failed to process queue item", "queue", c.QueueURL, "error", err)
				if err := c.sleep(ctx); err != nil {
					return err
				}
				// Leave the message for redelivery.
				continue
			}

			if _, err := c.Client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
				QueueUrl:      aws.String(c.QueueURL),
				ReceiptHandle: msg.ReceiptHandle,
			}); err != nil {
				c.Logger.Error("failed to delete processed message", "queue", c.QueueURL, "error", err)
			}
		}
	}
}

func (c *Consumer) sleep(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.RetryBackoff):
		return nil
	}
}
