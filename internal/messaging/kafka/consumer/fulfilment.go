package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/order"
	"go.uber.org/zap"
)

// MessageWriter is the part of *kafka.Writer the fulfilment loop needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Fulfil stands in for the warehouse: every ORDER_PLACED event is answered,
// after shipDelay, with an ORDER_STATUS_UPDATED event marking it Shipped.
// The placed event is committed only once the answer is written.
func Fulfil(ctx context.Context, reader MessageReader, writer MessageWriter, shipDelay time.Duration, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("fulfilment")

	logger.Info("fulfilment started", zap.Duration("ship_delay", shipDelay))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("fulfilment stopped")
				return
			}
			logger.Warn("failed to fetch message", zap.Error(err))
			continue
		}

		if getHeader(msg.Headers, "event_type") == order.EventOrderPlaced {
			if err := ship(ctx, msg, writer, shipDelay, logger); err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Error("failed to ship order", zap.Error(err))
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Warn("failed to commit message", zap.Error(err))
		}
	}
}

func ship(ctx context.Context, msg kafka.Message, writer MessageWriter, delay time.Duration, logger *zap.Logger) error {
	var placed order.OrderPlacedPayload
	if err := json.Unmarshal(msg.Value, &placed); err != nil || placed.OrderID == "" {
		logger.Warn("dropping malformed order placed event", zap.Int64("offset", msg.Offset))
		return nil
	}

	if delay > 0 {
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}

	payload, err := json.Marshal(order.StatusUpdatedPayload{
		OrderID: placed.OrderID,
		Status:  model.OrderShipped,
	})
	if err != nil {
		return err
	}

	if err := writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(placed.OrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(order.EventOrderStatusUpdated)},
			{Key: "aggregate_type", Value: []byte(order.AggregateType)},
		},
	}); err != nil {
		return err
	}

	logger.Info("order shipped", zap.String("order_id", placed.OrderID))
	return nil
}
