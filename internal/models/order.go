package models

import (
	"fmt"
	"strings"
	"time"
)

// Order is one customer's cart, and after payment their receipt. Tickets are
// stored by value: each AddTicket copies the catalog entry as it was priced
// at that moment, so later catalog edits never change a past order.
type Order struct {
	OrderID      int       `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Tickets      []Ticket  `json:"tickets"`
	TotalAmount  float64   `json:"total_amount"`
	Date         time.Time `json:"date"`
	QRCode       []byte    `json:"qr_code,omitempty"`
}

func NewOrder(orderID int, customerName string) *Order {
	return &Order{
		OrderID:      orderID,
		CustomerName: customerName,
		Date:         time.Now(),
	}
}

// AddTicket appends a line item and recomputes the running total. The same
// catalog entry may be added more than once, one unit per append.
func (o *Order) AddTicket(ticket Ticket) {
	o.Tickets = append(o.Tickets, ticket)
	o.CalculateTotal()
}

// CalculateTotal → sum of discounted prices over all line items. Safe to
// call repeatedly.
func (o *Order) CalculateTotal() float64 {
	total := 0.0
	for _, ticket := range o.Tickets {
		total += ticket.CalculatePrice()
	}
	o.TotalAmount = total
	return total
}

// DisplaySummary renders the receipt text shown to customers and in the
// admin sales summary.
func (o *Order) DisplaySummary() string {
	lines := make([]string, 0, len(o.Tickets))
	for _, ticket := range o.Tickets {
		lines = append(lines, fmt.Sprintf("%s: %.2f", ticket.TicketType, ticket.CalculatePrice()))
	}
	return fmt.Sprintf(
		"Order ID: %d\nCustomer: %s\nTickets:\n%s\nTotal: %.2f DHS\nDate: %s",
		o.OrderID,
		o.CustomerName,
		strings.Join(lines, "\n"),
		o.TotalAmount,
		o.Date.Format("2006-01-02 15:04:05"),
	)
}
