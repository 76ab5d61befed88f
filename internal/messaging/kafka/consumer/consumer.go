package consumer

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/vetrivel962969-dotcom/Paperid/internal/customer"
	"github.com/vetrivel962969-dotcom/Paperid/internal/email"
	"github.com/vetrivel962969-dotcom/Paperid/internal/order"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Deps are the services the order event handlers act on. Customers and
// Mailer are optional; without them no confirmation mail is sent.
type Deps struct {
	Orders    order.Service
	Customers customer.Service
	Mailer    email.Service
}

// handleAttempts bounds how often a failing status update is retried before
// the consumer moves on.
const (
	handleAttempts = 3
	retryBackoff   = 50 * time.Millisecond
)

// ConsumeMessages applies order events until ctx is cancelled. A status
// update whose handler keeps failing is retried in place, then skipped
// without a commit. Committing any later message moves the group offset
// past it, so it is only fetched again if the consumer restarts first.
func ConsumeMessages(ctx context.Context, reader MessageReader, deps Deps, logger *zap.Logger) {
	if deps.Orders == nil {
		panic("order service cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("order.consumer")

	logger.Info("started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("consumer stopped")
				return
			}
			logger.Warn("failed to fetch message", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")
		l := logger.With(
			zap.String("event_type", eventType),
			zap.Int64("offset", msg.Offset),
		)

		switch eventType {
		case order.EventOrderStatusUpdated:
			if err := retryStatusUpdated(ctx, msg.Value, deps.Orders, l); err != nil {
				l.Error("failed to handle status update", zap.Error(err))
				continue
			}
		case order.EventOrderPlaced:
			handleOrderPlaced(ctx, msg.Value, deps, l)
		default:
			l.Debug("skipping unknown event")
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			l.Warn("failed to commit message", zap.Error(err))
		}
	}
}

func retryStatusUpdated(ctx context.Context, payload []byte, orders order.Service, logger *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= handleAttempts; attempt++ {
		if err = handleStatusUpdated(ctx, payload, orders, logger); err == nil {
			return nil
		}
		if attempt == handleAttempts {
			break
		}
		logger.Warn("status update failed, retrying", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
