package booking

import "adventureland/internal/models"

// ID counter seeds. Built-in catalog entries own 101–106; admin-added
// entries start at 1001 and orders at 2001, matching ticket stock issued
// before this system existed. Customer IDs are durable and monotonic so a
// delete-then-register can never reuse an ID.
const (
	firstAdminTicketID = 1001
	firstOrderID       = 2001
	firstCustomerID    = 1
)

// counters are persisted in their own slot and bumped before each use.
type counters struct {
	NextTicketID   int `json:"next_ticket_id"`
	NextOrderID    int `json:"next_order_id"`
	NextCustomerID int `json:"next_customer_id"`
}

func defaultCounters() counters {
	return counters{
		NextTicketID:   firstAdminTicketID,
		NextOrderID:    firstOrderID,
		NextCustomerID: firstCustomerID,
	}
}

// defaultCatalog is the catalog seeded on first run, before any admin edits.
func defaultCatalog() []models.Ticket {
	return []models.Ticket{
		{TicketID: 101, TicketType: "Single Day Pass", Price: 275, Validity: "1 Day"},
		{TicketID: 102, TicketType: "Two-Day Pass", Price: 480, Validity: "2 Days"},
		{TicketID: 103, TicketType: "Annual Membership", Price: 1840, Validity: "1 Year", Discount: 0.15},
		{TicketID: 104, TicketType: "Child Ticket", Price: 185, Validity: "1 Day"},
		{TicketID: 105, TicketType: "Group Ticket (10+)", Price: 220, Validity: "1 Day", Discount: 0.2},
		{TicketID: 106, TicketType: "VIP Experience", Price: 550, Validity: "1 Day"},
	}
}
