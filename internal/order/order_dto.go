package order

import "github.com/vetrivel962969-dotcom/Paperid/internal/model"

const (
	AggregateType = "ORDER"

	EventOrderPlaced        = "ORDER_PLACED"
	EventOrderStatusUpdated = "ORDER_STATUS_UPDATED"
)

type CreateOrderRequest struct {
	Items []model.CartItem `json:"items"`
}

type UpdateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// OrderPlacedPayload is published when an order is stored.
type OrderPlacedPayload struct {
	OrderID        string `json:"order_id"`
	UserID         string `json:"user_id,omitempty"`
	Total          int64  `json:"total"`
	ItemCount      int    `json:"item_count"`
	TrackingNumber string `json:"tracking_number"`
}

// StatusUpdatedPayload is consumed from fulfilment.
type StatusUpdatedPayload struct {
	OrderID string            `json:"order_id"`
	Status  model.OrderStatus `json:"status"`
}
