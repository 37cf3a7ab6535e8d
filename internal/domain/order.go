package domain

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Payment string `json:"payment"`
}

// Order is an immutable snapshot of a collection at checkout time. The total
// is computed at placement and never re-derived. IDs are creation timestamps
// in Unix milliseconds; identity within a log is positional, so a same-tick
// collision does not corrupt the log.
type Order struct {
	ID       int64       `json:"id"`
	Items    []LineItem  `json:"items"`
	Total    float64     `json:"total"`
	Customer *Customer   `json:"customer,omitempty"`
	Date     time.Time   `json:"date"`
	Status   OrderStatus `json:"status"`
}
