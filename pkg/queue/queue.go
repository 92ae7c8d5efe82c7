package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSAPI is the subset of the SQS client used by the publisher and consumer.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Publisher defines the interface for enqueueing work onto a durable queue.
type Publisher interface {
	// Publish marshals the payload to JSON and enqueues it.
	Publish(ctx context.Context, payload any) error
}

// Handler processes one queue item. Returning an error leaves the message on
// the queue for at-least-once redelivery, so handlers must be idempotent.
type Handler func(ctx context.Context, body string) error
