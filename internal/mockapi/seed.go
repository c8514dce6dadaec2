package mockapi

import (
	"fmt"
	"time"

	"orderdesk/internal/models"
)

// Dataset is the order data a Server serves.
type Dataset struct {
	Orders  []models.Order
	Details map[int]models.OrderDetail
}

var seedCustomers = []string{
	"Alice Johnson",
	"Bob Martinez",
	"Carla Nguyen",
	"Daniel Okafor",
	"Elena Petrova",
	"Farid Haddad",
	"Grace Kim",
	"Henrik Larsson",
}

var seedStatuses = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
	models.OrderStatusCancelled,
}

var seedProducts = []struct {
	name  string
	price float64
}{
	{"Wireless Mouse", 24.99},
	{"Mechanical Keyboard", 89.50},
	{"USB-C Hub", 42.00},
	{"Laptop Stand", 31.75},
	{"Webcam", 59.90},
	{"Desk Lamp", 18.25},
}

// Seed builds the deterministic built-in dataset: 23 orders cycling through
// a fixed set of customers and statuses, each with one to three line items.
func Seed() *Dataset {
	const orderCount = 23

	base := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	orders := make([]models.Order, 0, orderCount)
	details := make(map[int]models.OrderDetail, orderCount)

	for i := 0; i < orderCount; i++ {
		id := i + 1
		customerID := 100 + i%len(seedCustomers)

		lineCount := 1 + i%3
		lines := make([]models.ProductLine, 0, lineCount)
		total := 0.0

		for j := 0; j < lineCount; j++ {
			p := seedProducts[(i+j)%len(seedProducts)]
			qty := 1 + (i+j)%4
			lines = append(lines, models.ProductLine{
				ProductID:   (i+j)%len(seedProducts) + 1,
				ProductName: p.name,
				Quantity:    qty,
				UnitPrice:   p.price,
				Image:       fmt.Sprintf("https://img.example.com/products/%d.png", (i+j)%len(seedProducts)+1),
			})
			total += float64(qty) * p.price
		}

		order := models.Order{
			ID:           id,
			CustomerID:   customerID,
			CustomerName: seedCustomers[i%len(seedCustomers)],
			OrderDate:    base.AddDate(0, 0, i).Format("2006-01-02"),
			Status:       seedStatuses[i%len(seedStatuses)],
			TotalAmount:  total,
			Avatar:       fmt.Sprintf("https://i.pravatar.cc/150?img=%d", i%len(seedCustomers)+1),
		}

		orders = append(orders, order)
		details[id] = models.OrderDetail{Order: order, Lines: lines}
	}

	return &Dataset{Orders: orders, Details: details}
}
