package models

import (
	"fmt"
	"strings"
)

// Dashboard is the process-wide sales ledger: every finalized order across
// all customers, plus cumulative units sold per ticket type. One instance
// exists per data store; it is injected into whatever finalizes sales so
// tests can use isolated instances.
//
// TicketSales is keyed by type label, not ID, so a re-added type with the
// same label merges into the old count. TypeOrder records first-seen order
// because map iteration would shuffle the report between runs.
type Dashboard struct {
	SalesData   []*Order       `json:"sales_data"`
	Capacity    int            `json:"capacity"`
	TicketSales map[string]int `json:"ticket_sales"`
	TypeOrder   []string       `json:"type_order"`
}

func NewDashboard(capacity int) *Dashboard {
	return &Dashboard{
		Capacity:    capacity,
		TicketSales: make(map[string]int),
	}
}

// AddSale records a finalized order: one ledger entry, one unit counted per
// ticket line in the order.
func (d *Dashboard) AddSale(order *Order) {
	d.SalesData = append(d.SalesData, order)
	for _, ticket := range order.Tickets {
		if _, seen := d.TicketSales[ticket.TicketType]; !seen {
			d.TypeOrder = append(d.TypeOrder, ticket.TicketType)
		}
		d.TicketSales[ticket.TicketType]++
	}
}

// ViewSalesSummary → every recorded order's receipt, blank-line separated.
func (d *Dashboard) ViewSalesSummary() string {
	if len(d.SalesData) == 0 {
		return "No sales recorded yet."
	}
	summaries := make([]string, 0, len(d.SalesData))
	for _, order := range d.SalesData {
		summaries = append(summaries, order.DisplaySummary())
	}
	return fmt.Sprintf("Sales Summary:\n%s", strings.Join(summaries, "\n\n"))
}

// ViewTicketSales → one "<type>: <count>" line per type in first-seen order.
func (d *Dashboard) ViewTicketSales() string {
	if len(d.TicketSales) == 0 {
		return "No tickets sold yet."
	}
	lines := make([]string, 0, len(d.TypeOrder))
	for _, ticketType := range d.TypeOrder {
		lines = append(lines, fmt.Sprintf("%s: %d", ticketType, d.TicketSales[ticketType]))
	}
	return strings.Join(lines, "\n")
}
