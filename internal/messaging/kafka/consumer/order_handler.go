package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vetrivel962969-dotcom/Paperid/internal/email"
	"github.com/vetrivel962969-dotcom/Paperid/internal/order"
	"go.uber.org/zap"
)

func handleStatusUpdated(ctx context.Context, payload []byte, orderService order.Service, logger *zap.Logger) error {
	var data order.StatusUpdatedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		// A malformed payload will never succeed, so it is dropped.
		logger.Warn("dropping malformed status update", zap.Error(err))
		return nil
	}

	_, err := orderService.UpdateStatus(ctx, data.OrderID, data.Status)
	switch {
	case err == nil:
		logger.Info("order status applied",
			zap.String("order_id", data.OrderID),
			zap.String("status", string(data.Status)),
		)
		return nil
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidTransition):
		logger.Warn("ignoring status update",
			zap.String("order_id", data.OrderID),
			zap.String("status", string(data.Status)),
			zap.Error(err),
		)
		return nil
	default:
		return err
	}
}

// handleOrderPlaced mails a confirmation to signed-in buyers. Mail is best
// effort: failures are logged and the event is still committed.
func handleOrderPlaced(ctx context.Context, payload []byte, deps Deps, logger *zap.Logger) {
	var data order.OrderPlacedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		logger.Warn("malformed order placed event", zap.Error(err))
		return
	}
	logger = logger.With(zap.String("order_id", data.OrderID))
	logger.Info("order placed",
		zap.String("tracking_number", data.TrackingNumber),
		zap.Int64("total", data.Total),
	)

	if data.UserID == "" || deps.Customers == nil || deps.Mailer == nil {
		return
	}
	user, err := deps.Customers.GetProfile(ctx, data.UserID)
	if err != nil {
		logger.Warn("cannot resolve buyer for confirmation", zap.String("user_id", data.UserID), zap.Error(err))
		return
	}

	err = deps.Mailer.SendOrderConfirmation(ctx, user.Email, user.Name, email.OrderConfirmation{
		OrderID:        data.OrderID,
		TrackingNumber: data.TrackingNumber,
		Total:          data.Total,
		ItemCount:      data.ItemCount,
	})
	if err != nil {
		logger.Warn("order confirmation not sent", zap.Error(err))
		return
	}
	logger.Debug("order confirmation sent")
}
