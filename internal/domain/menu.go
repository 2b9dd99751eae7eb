package domain

import (
	"time"

	"gorm.io/gorm"
)

type MenuStatus string

const (
	MenuForSale MenuStatus = "FOR_SALE"
	MenuSoldOut MenuStatus = "SOLD_OUT"
)

type Menu struct {
	ID                uint64         `json:"menuId" gorm:"primaryKey;autoIncrement"`
	CategoryID        uint64         `json:"categoryId" gorm:"not null;index"`
	Name              string         `json:"name" gorm:"not null"`
	Description       string         `json:"description" gorm:"not null"`
	Image             string         `json:"image" gorm:"not null"`
	Price             int64          `json:"price" gorm:"not null"`
	Order             int            `json:"order" gorm:"column:order;not null;index"`
	AvailableQuantity int64          `json:"availableQuantity" gorm:"not null;default:0"`
	Status            MenuStatus     `json:"status" gorm:"type:enum('FOR_SALE','SOLD_OUT');default:'FOR_SALE'"`
	OwnerID           uint64         `json:"ownerId" gorm:"not null;index"`
	CreatedAt         time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

func (s MenuStatus) Valid() bool {
	return s == MenuForSale || s == MenuSoldOut
}

// Reserve takes quantity units out of stock. Draining the stock to zero (or
// past it) clamps the quantity at zero and flips the menu to SOLD_OUT, so the
// last units are still sellable in a single order.
func (m *Menu) Reserve(quantity int64) {
	if m.AvailableQuantity-quantity > 0 {
		m.AvailableQuantity -= quantity
		return
	}
	m.AvailableQuantity = 0
	m.Status = MenuSoldOut
}

// MenuChange carries the owner-editable fields of a menu update.
type MenuChange struct {
	Name        string
	Description string
	Price       int64
	Order       int
	Status      MenuStatus
}
