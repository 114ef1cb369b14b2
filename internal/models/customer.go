package models

// Customer is one registered account. Email is the directory key and unique
// across accounts. PasswordHash holds a bcrypt hash, never the raw password.
type Customer struct {
	CustomerID   int      `json:"customer_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash []byte   `json:"password_hash"`
	OrderHistory []*Order `json:"order_history"`
}

// AddOrder appends a completed order to the history. The history only ever
// grows; callers are responsible for passing orders that belong to this
// customer.
func (c *Customer) AddOrder(order *Order) {
	c.OrderHistory = append(c.OrderHistory, order)
}
