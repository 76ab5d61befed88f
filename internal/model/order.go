package model

import "time"

type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderDateLayout renders dates as "16 Oct 2026".
const OrderDateLayout = "2 Jan 2006"

func FormatOrderDate(t time.Time) string {
	return t.Format(OrderDateLayout)
}

type Order struct {
	ID             string      `json:"id"`
	Date           string      `json:"date"`
	Status         OrderStatus `json:"status"`
	Total          int64       `json:"total"`
	Items          []CartItem  `json:"items"`
	TrackingNumber string      `json:"trackingNumber"`
	PlacedAt       time.Time   `json:"placedAt"`
}

func (o Order) Clone() Order {
	out := o
	out.Items = CloneItems(o.Items)
	return out
}

// OrderReceipt is what the backend returns for a placed order.
type OrderReceipt struct {
	OrderID        string    `json:"orderId"`
	TrackingNumber string    `json:"trackingNumber"`
	PlacedAt       time.Time `json:"placedAt"`
}

type TrackingInfo struct {
	OrderID          string      `json:"orderId"`
	TrackingNumber   string      `json:"trackingNumber"`
	Status           OrderStatus `json:"status"`
	Location         string      `json:"location"`
	EstimatedArrival string      `json:"estimatedArrival"`
}
