package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuReserve(t *testing.T) {
	tests := []struct {
		name       string
		available  int64
		quantity   int64
		wantQty    int64
		wantStatus MenuStatus
	}{
		{
			name:       "partial reservation keeps menu for sale",
			available:  10,
			quantity:   4,
			wantQty:    6,
			wantStatus: MenuForSale,
		},
		{
			name:       "ordering the last units sells out",
			available:  3,
			quantity:   3,
			wantQty:    0,
			wantStatus: MenuSoldOut,
		},
		{
			name:       "over-reservation clamps to zero",
			available:  2,
			quantity:   5,
			wantQty:    0,
			wantStatus: MenuSoldOut,
		},
		{
			name:       "one unit left after reservation stays for sale",
			available:  5,
			quantity:   4,
			wantQty:    1,
			wantStatus: MenuForSale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Menu{AvailableQuantity: tt.available, Status: MenuForSale}
			m.Reserve(tt.quantity)
			assert.Equal(t, tt.wantQty, m.AvailableQuantity)
			assert.Equal(t, tt.wantStatus, m.Status)
		})
	}
}

func TestNewOrderSnapshotsPrice(t *testing.T) {
	menu := &Menu{ID: 7, Price: 10000, AvailableQuantity: 3}

	order := NewOrder(42, menu, 3)

	assert.Equal(t, int64(30000), order.TotalPrice)
	assert.Equal(t, OrderPending, order.Status)
	assert.Equal(t, uint64(7), order.Line.MenuID)
	assert.Equal(t, int64(3), order.Line.Quantity)

	// A later price change must not leak into the placed order.
	menu.Price = 99999
	assert.Equal(t, int64(30000), order.TotalPrice)
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderPending.Valid())
	assert.True(t, OrderAccepted.Valid())
	assert.True(t, OrderCancel.Valid())
	assert.False(t, OrderStatus("SHIPPED").Valid())
	assert.False(t, OrderStatus("").Valid())
}
