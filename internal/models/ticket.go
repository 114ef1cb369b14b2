package models

// Ticket is one sellable catalog entry. Instances are never mutated after
// creation; price changes mean deleting the entry and adding a new one.
type Ticket struct {
	TicketID   int     `json:"ticket_id"`
	TicketType string  `json:"ticket_type"`
	Price      float64 `json:"price"`
	Validity   string  `json:"validity"`
	Discount   float64 `json:"discount"`
}

// CalculatePrice → effective unit price after the discount fraction.
func (t Ticket) CalculatePrice() float64 {
	return t.Price * (1 - t.Discount)
}
