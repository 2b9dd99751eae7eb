package domain

import "time"

type OrderCreatedEvent struct {
	OrderID    uint64    `json:"orderId"`
	CustomerID uint64    `json:"customerId"`
	MenuID     uint64    `json:"menuId"`
	Quantity   int64     `json:"quantity"`
	TotalPrice int64     `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderStatusEvent struct {
	OrderID uint64      `json:"orderId"`
	Status  OrderStatus `json:"status"`
}
