package services

import (
	"time"

	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
)

func CreateMockCategory(id uint64, name string, rank int) *domain.Category {
	return &domain.Category{
		ID:        id,
		Name:      name,
		Order:     rank,
		OwnerID:   TestOwnerID,
		CreatedAt: time.Now(),
	}
}

func CreateMockMenu(id, categoryID uint64, price, quantity int64) *domain.Menu {
	return &domain.Menu{
		ID:                id,
		CategoryID:        categoryID,
		Name:              TestMenuName,
		Description:       "tastes great",
		Image:             "https://images.example.com/menu.png",
		Price:             price,
		Order:             1,
		AvailableQuantity: quantity,
		Status:            domain.MenuForSale,
		OwnerID:           TestOwnerID,
	}
}

func CreateMockOrder(id, customerID, menuID uint64, quantity, totalPrice int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:         id,
		CustomerID: customerID,
		TotalPrice: totalPrice,
		Status:     status,
		Line: domain.OrderLine{
			OrderID:  id,
			MenuID:   menuID,
			Quantity: quantity,
		},
		CreatedAt: time.Now(),
	}
}

const (
	TestOwnerID    = uint64(1)
	TestCustomerID = uint64(2)
	TestCategoryID = uint64(1)
	TestMenuID     = uint64(1)
	TestOrderID    = uint64(1)
	TestMenuName   = "Test Menu"
	TestMenuPrice  = int64(5000)
)
