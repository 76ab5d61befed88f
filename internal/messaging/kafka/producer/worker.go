package producer

import (
	"context"
	"time"

	"github.com/vetrivel962969-dotcom/Paperid/internal/outbox"
	"go.uber.org/zap"
)

const (
	PollInterval = 5 * time.Second
	batchSize    = 10
)

// ProcessOutboxEvents publishes pending outbox events every interval until
// ctx is cancelled.
func ProcessOutboxEvents(ctx context.Context, repo outbox.Repository, writer MessageWriter, interval time.Duration, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("outbox.worker")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("outbox processor started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("outbox processor stopped")
			return
		case <-ticker.C:
			if err := processPendingEvents(ctx, repo, writer, logger); err != nil {
				logger.Error("failed to process outbox events", zap.Error(err))
			}
		}
	}
}

func processPendingEvents(ctx context.Context, repo outbox.Repository, writer MessageWriter, logger *zap.Logger) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	logger.Debug("processing pending events", zap.Int("count", len(events)))

	for _, event := range events {
		l := logger.With(
			zap.String("event_id", event.ID.String()),
			zap.String("event_type", event.EventType),
		)

		if err := publishEvent(ctx, writer, event); err != nil {
			l.Warn("failed to publish event", zap.Error(err))
			_ = repo.MarkFailed(ctx, event.ID)
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			l.Error("failed to mark event as sent", zap.Error(err))
			continue
		}

		l.Debug("event published")
	}

	return nil
}
