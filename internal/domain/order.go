package domain

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending  OrderStatus = "PENDING"
	OrderAccepted OrderStatus = "ACCEPTED"
	OrderCancel   OrderStatus = "CANCEL"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderCancel:
		return true
	}
	return false
}

type Order struct {
	ID         uint64         `json:"orderId" gorm:"primaryKey;autoIncrement"`
	CustomerID uint64         `json:"customerId" gorm:"not null;index"`
	TotalPrice int64          `json:"totalPrice" gorm:"not null"`
	Status     OrderStatus    `json:"status" gorm:"type:enum('PENDING','ACCEPTED','CANCEL');default:'PENDING'"`
	Line       OrderLine      `json:"orderLine" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// OrderLine is the single menu+quantity pairing of an order. It is created in
// the same insert as its order and never mutated afterwards.
type OrderLine struct {
	ID       uint64 `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID  uint64 `json:"-" gorm:"not null;index"`
	MenuID   uint64 `json:"menuId" gorm:"not null;index"`
	Quantity int64  `json:"quantity" gorm:"not null"`
	Menu     *Menu  `json:"menu,omitempty" gorm:"foreignKey:MenuID"`
}

// NewOrder snapshots the menu price into the order total. The total is never
// recomputed, even if the menu price changes later.
func NewOrder(customerID uint64, menu *Menu, quantity int64) *Order {
	return &Order{
		CustomerID: customerID,
		TotalPrice: menu.Price * quantity,
		Status:     OrderPending,
		Line: OrderLine{
			MenuID:   menu.ID,
			Quantity: quantity,
		},
	}
}
