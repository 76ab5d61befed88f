package app

import (
	"context"
	"sync"

	"github.com/vetrivel962969-dotcom/Paperid/internal/messaging/kafka/producer"
)

// startOutboxWorker publishes order events from the in-memory outbox. It
// runs in the api process because the outbox lives in that process.
func (a *App) startOutboxWorker(ctx context.Context, wg *sync.WaitGroup) {
	if a.writer == nil {
		a.logger.Info("kafka not configured, outbox events stay in memory")
		return
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		producer.ProcessOutboxEvents(ctx, a.backend.Outbox, a.writer, producer.PollInterval, a.logger)
	}()
}
