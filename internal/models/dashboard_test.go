package models_test

import (
	"testing"

	"adventureland/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAddSaleCountsEveryTicket(t *testing.T) {
	dashboard := models.NewDashboard(10000)

	order := models.NewOrder(2001, "Alice")
	order.AddTicket(singleDay())
	order.AddTicket(singleDay())
	order.AddTicket(groupTicket())
	dashboard.AddSale(order)

	assert.Len(t, dashboard.SalesData, 1)
	assert.Equal(t, 2, dashboard.TicketSales["Single Day Pass"])
	assert.Equal(t, 1, dashboard.TicketSales["Group Ticket (10+)"])
}

func TestViewSalesSummary(t *testing.T) {
	dashboard := models.NewDashboard(10000)
	assert.Equal(t, "No sales recorded yet.", dashboard.ViewSalesSummary())

	order := models.NewOrder(2001, "Alice")
	order.AddTicket(singleDay())
	dashboard.AddSale(order)

	summary := dashboard.ViewSalesSummary()
	assert.True(t, len(summary) > len("Sales Summary:\n"))
	assert.Contains(t, summary, order.DisplaySummary())
	assert.Equal(t, "Sales Summary:\n"+order.DisplaySummary(), summary)
}

func TestViewTicketSales(t *testing.T) {
	dashboard := models.NewDashboard(10000)
	assert.Equal(t, "No tickets sold yet.", dashboard.ViewTicketSales())

	first := models.NewOrder(2001, "Alice")
	first.AddTicket(groupTicket())
	first.AddTicket(singleDay())
	dashboard.AddSale(first)

	second := models.NewOrder(2002, "Bob")
	second.AddTicket(singleDay())
	dashboard.AddSale(second)

	// Lines keep first-seen type order across sales.
	assert.Equal(t, "Group Ticket (10+): 1\nSingle Day Pass: 2", dashboard.ViewTicketSales())
}

func TestCapacityIsInert(t *testing.T) {
	dashboard := models.NewDashboard(3)
	for i := 0; i < 5; i++ {
		order := models.NewOrder(2001+i, "Alice")
		order.AddTicket(singleDay())
		dashboard.AddSale(order)
	}
	// Capacity is declared throughput only; nothing enforces it.
	assert.Len(t, dashboard.SalesData, 5)
	assert.Equal(t, 3, dashboard.Capacity)
}
