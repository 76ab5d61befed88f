package app

import (
	"context"
	"sync"

	"github.com/segmentio/kafka-go"
	"github.com/vetrivel962969-dotcom/Paperid/internal/messaging/kafka/consumer"
	"go.uber.org/zap"
)

// startStatusConsumer applies ORDER_STATUS_UPDATED events to the in-memory
// order repository and mails a confirmation for every ORDER_PLACED.
func (a *App) startStatusConsumer(ctx context.Context, wg *sync.WaitGroup) {
	if a.cfg.KafkaBroker == "" {
		return
	}

	reader := newKafkaReader(a.cfg.KafkaBroker, a.cfg.KafkaTopic, a.cfg.KafkaGroupID)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer reader.Close()
		consumer.ConsumeMessages(ctx, reader, consumer.Deps{
			Orders:    a.backend.Orders,
			Customers: a.backend.Customers,
			Mailer:    a.mailer,
		}, a.logger)
	}()
}

// RunFulfilment is the standalone warehouse simulator behind cmd/consumer.
// It blocks until ctx is cancelled.
func RunFulfilment(ctx context.Context, cfg Config, logger *zap.Logger) error {
	writer, err := ConnectKafkaWithRetry(ctx, cfg.KafkaBroker, cfg.KafkaTopic, 5, logger)
	if err != nil {
		return err
	}
	defer writer.Close()

	reader := newKafkaReader(cfg.KafkaBroker, cfg.KafkaTopic, "paperid-fulfilment")
	defer reader.Close()

	logger.Info("kafka reader initialized",
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group_id", "paperid-fulfilment"),
	)

	consumer.Fulfil(ctx, reader, writer, cfg.ShipDelay, logger)
	return nil
}

var _ consumer.MessageReader = (*kafka.Reader)(nil)
