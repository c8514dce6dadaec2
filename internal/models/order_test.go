package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/models"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    models.OrderStatus
		wantErr bool
	}{
		{"pending", models.OrderStatusPending, false},
		{"SHIPPED", models.OrderStatusShipped, false},
		{" Delivered ", models.OrderStatusDelivered, false},
		{"cancelled", models.OrderStatusCancelled, false},
		{"canceled", "", true},
		{"", "", true},
		{"unknown", "", true},
	}

	for _, tt := range tests {
		got, err := models.ParseStatus(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, models.OrderStatusPending.Valid())
	assert.False(t, models.OrderStatus("bogus").Valid())
}

func TestSearchFilters_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, models.SearchFilters{}.IsZero())
	assert.False(t, models.SearchFilters{CustomerID: "1"}.IsZero())
	assert.False(t, models.SearchFilters{Status: models.OrderStatusPending}.IsZero())
}

// The wire names are fixed by the order service contract.
func TestOrderDetail_WireFormat(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 3,
		"customer_id": 101,
		"customer_name": "Carla Nguyen",
		"order_date": "2025-03-05",
		"status": "shipped",
		"total_amount": 47.5,
		"avatar": "https://i.pravatar.cc/150?img=3",
		"lines": [
			{"product_id": 2, "product_name": "Mechanical Keyboard", "quantity": 1, "unit_price": 47.5, "image": "https://img.example.com/products/2.png"}
		]
	}`

	var detail models.OrderDetail
	require.NoError(t, json.Unmarshal([]byte(raw), &detail))

	assert.Equal(t, 3, detail.ID)
	assert.Equal(t, 101, detail.CustomerID)
	assert.Equal(t, "Carla Nguyen", detail.CustomerName)
	assert.Equal(t, models.OrderStatusShipped, detail.Status)
	assert.Equal(t, 47.5, detail.TotalAmount)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "Mechanical Keyboard", detail.Lines[0].ProductName)
}
