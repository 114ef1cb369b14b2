package booking

import (
	"fmt"
	"sort"
	"strings"

	"adventureland/internal/logger"
	"adventureland/internal/models"
	"adventureland/internal/store"

	"github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"
)

// AdminIdentity is the single fixed administrator login. It lives outside
// the customer directory and is never persisted.
type AdminIdentity struct {
	Username string
	Password string
}

// Service owns the account directory, the catalog, the sales dashboard and
// the one active session of a running desk. Every structural mutation is
// flushed to the store before the call returns, so a restart picks up where
// the previous run stopped.
type Service struct {
	Store store.Store
	Log   *logger.Logger

	customers map[string]*models.Customer
	catalog   []models.Ticket
	dashboard *models.Dashboard
	counters  counters
	admin     AdminIdentity

	currentCustomer *models.Customer
	currentOrder    *models.Order
}

// NewService restores state from the store, seeding defaults for any slot
// that has never been written.
func NewService(st store.Store, log *logger.Logger, admin AdminIdentity, capacity int) (*Service, error) {
	s := &Service{
		Store:     st,
		Log:       log,
		customers: make(map[string]*models.Customer),
		counters:  defaultCounters(),
		admin:     admin,
	}

	if err := loadSlot(st, store.SlotCustomers, &s.customers); err != nil {
		return nil, err
	}
	if s.customers == nil {
		s.customers = make(map[string]*models.Customer)
	}

	loaded, err := loadSlotFound(st, store.SlotTickets, &s.catalog)
	if err != nil {
		return nil, err
	}
	if !loaded {
		s.catalog = defaultCatalog()
		if err := s.persistAll(store.SlotTickets); err != nil {
			return nil, err
		}
		s.logInfo("CATALOG", "seeded default catalog")
	}

	loaded, err = loadSlotFound(st, store.SlotDashboard, &s.dashboard)
	if err != nil {
		return nil, err
	}
	if !loaded || s.dashboard == nil {
		s.dashboard = models.NewDashboard(capacity)
	}
	if s.dashboard.TicketSales == nil {
		s.dashboard.TicketSales = make(map[string]int)
	}

	if err := loadSlot(st, store.SlotCounters, &s.counters); err != nil {
		return nil, err
	}

	return s, nil
}

func loadSlot(st store.Store, slot string, v any) error {
	_, err := loadSlotFound(st, slot, v)
	return err
}

// loadSlotFound reports whether the slot existed; a missing slot leaves v
// untouched so the caller's default survives.
func loadSlotFound(st store.Store, slot string, v any) (bool, error) {
	data, err := st.Load(slot)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := store.Decode(data, v); err != nil {
		return false, fmt.Errorf("restore %s: %w", slot, err)
	}
	return true, nil
}

// ---------------- ACCOUNTS ----------------

// Register creates a new customer account. The email is the directory key
// and must be unused; the password is stored as a bcrypt hash.
func (s *Service) Register(name, email, password string) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrValidation
	}
	if _, exists := s.customers[email]; exists {
		return nil, ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customer := &models.Customer{
		CustomerID:   s.counters.NextCustomerID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	s.counters.NextCustomerID++
	s.customers[email] = customer

	if err := s.persistAll(store.SlotCustomers, store.SlotCounters); err != nil {
		delete(s.customers, email)
		s.counters.NextCustomerID--
		return nil, err
	}
	s.logInfo("ACCOUNT", fmt.Sprintf("registered %s (customer %d)", email, customer.CustomerID))
	return customer, nil
}

// Authenticate starts a customer session. The comparison is exact and
// case-sensitive on the email key.
func (s *Service) Authenticate(email, password string) (*models.Customer, error) {
	customer, ok := s.customers[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(customer.PasswordHash, []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	s.currentCustomer = customer
	s.currentOrder = nil
	s.logInfo("ACCOUNT", fmt.Sprintf("login %s", email))
	return customer, nil
}

// AuthenticateAdmin checks the fixed admin identity.
func (s *Service) AuthenticateAdmin(username, password string) error {
	if username != s.admin.Username || password != s.admin.Password {
		return ErrInvalidCredentials
	}
	return nil
}

// Logout clears the session. An in-progress order is abandoned, never
// committed.
func (s *Service) Logout() {
	s.currentCustomer = nil
	s.currentOrder = nil
}

func (s *Service) CurrentCustomer() *models.Customer {
	return s.currentCustomer
}

// Accounts lists every registered customer, ordered by customer ID for a
// stable admin listing.
func (s *Service) Accounts() []*models.Customer {
	accounts := make([]*models.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		accounts = append(accounts, customer)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CustomerID < accounts[j].CustomerID
	})
	return accounts
}

// RemoveAccount deletes a customer account by its email key.
func (s *Service) RemoveAccount(email string) error {
	customer, ok := s.customers[email]
	if !ok {
		return fmt.Errorf("account %s: %w", email, ErrNotFound)
	}
	delete(s.customers, email)
	if err := s.persistAll(store.SlotCustomers); err != nil {
		s.customers[email] = customer
		return err
	}
	s.logInfo("ACCOUNT", fmt.Sprintf("removed %s", email))
	return nil
}

// ---------------- CATALOG ----------------

// Catalog returns the sellable entries in display order.
func (s *Service) Catalog() []models.Ticket {
	catalog := make([]models.Ticket, len(s.catalog))
	copy(catalog, s.catalog)
	return catalog
}

// AddCatalogEntry creates a new ticket product with the next durable ID.
func (s *Service) AddCatalogEntry(ticketType string, price float64, validity string) (models.Ticket, error) {
	if strings.TrimSpace(ticketType) == "" || price < 0 {
		return models.Ticket{}, ErrValidation
	}
	ticket := models.Ticket{
		TicketID:   s.counters.NextTicketID,
		TicketType: ticketType,
		Price:      price,
		Validity:   validity,
	}
	s.counters.NextTicketID++
	s.catalog = append(s.catalog, ticket)

	if err := s.persistAll(store.SlotTickets, store.SlotCounters); err != nil {
		s.catalog = s.catalog[:len(s.catalog)-1]
		s.counters.NextTicketID--
		return models.Ticket{}, err
	}
	s.logInfo("CATALOG", fmt.Sprintf("added %q (ticket %d)", ticketType, ticket.TicketID))
	return ticket, nil
}

// RemoveCatalogEntry deletes a catalog entry by ID. Lookup is by ID, not by
// object identity, so it behaves the same after a reload from storage.
// Orders already holding the entry keep their priced copy.
func (s *Service) RemoveCatalogEntry(ticketID int) error {
	for i, ticket := range s.catalog {
		if ticket.TicketID != ticketID {
			continue
		}
		s.catalog = append(s.catalog[:i], s.catalog[i+1:]...)
		if err := s.persistAll(store.SlotTickets); err != nil {
			s.catalog = append(s.catalog[:i], append([]models.Ticket{ticket}, s.catalog[i:]...)...)
			return err
		}
		s.logInfo("CATALOG", fmt.Sprintf("removed ticket %d", ticketID))
		return nil
	}
	return fmt.Errorf("ticket %d: %w", ticketID, ErrNotFound)
}

// ---------------- ORDERS ----------------

// AddTicketToOrder adds one unit of a catalog entry to the session's order,
// creating the order on first use.
func (s *Service) AddTicketToOrder(ticketID int) (*models.Order, error) {
	if s.currentCustomer == nil {
		return nil, ErrNoSession
	}
	ticket, err := s.catalogEntry(ticketID)
	if err != nil {
		return nil, err
	}

	if s.currentOrder == nil {
		s.currentOrder = models.NewOrder(s.counters.NextOrderID, s.currentCustomer.Name)
		s.counters.NextOrderID++
		if err := s.persistAll(store.SlotCounters); err != nil {
			s.currentOrder = nil
			s.counters.NextOrderID--
			return nil, err
		}
	}
	s.currentOrder.AddTicket(ticket)
	return s.currentOrder, nil
}

func (s *Service) catalogEntry(ticketID int) (models.Ticket, error) {
	for _, ticket := range s.catalog {
		if ticket.TicketID == ticketID {
			return ticket, nil
		}
	}
	return models.Ticket{}, fmt.Errorf("ticket %d: %w", ticketID, ErrNotFound)
}

func (s *Service) CurrentOrder() *models.Order {
	return s.currentOrder
}

// FinalizeOrder checks the active order is ready for payment and returns it.
func (s *Service) FinalizeOrder() (*models.Order, error) {
	if s.currentCustomer == nil {
		return nil, ErrNoSession
	}
	if s.currentOrder == nil || len(s.currentOrder.Tickets) == 0 {
		return nil, ErrEmptyOrder
	}
	return s.currentOrder, nil
}

// RecordPayment commits the sale: the order is appended to the customer's
// history and the dashboard ledger, both are flushed in one SaveAll, and the
// active-order slot is cleared. The method is a label only; no settlement
// happens.
func (s *Service) RecordPayment(method string) (*models.Order, error) {
	order, err := s.FinalizeOrder()
	if err != nil {
		return nil, err
	}

	if png, err := qrcode.Encode(order.DisplaySummary(), qrcode.Medium, 256); err != nil {
		s.logWarn("SALE", fmt.Sprintf("receipt QR for order %d: %v", order.OrderID, err))
	} else {
		order.QRCode = png
	}

	typesBefore := len(s.dashboard.TypeOrder)
	s.currentCustomer.AddOrder(order)
	s.dashboard.AddSale(order)

	if err := s.persistAll(store.SlotCustomers, store.SlotDashboard); err != nil {
		// Undo both appends so a retry after a transient store failure
		// cannot commit the same sale twice. The order stays active.
		history := s.currentCustomer.OrderHistory
		s.currentCustomer.OrderHistory = history[:len(history)-1]
		s.dashboard.SalesData = s.dashboard.SalesData[:len(s.dashboard.SalesData)-1]
		for _, ticket := range order.Tickets {
			s.dashboard.TicketSales[ticket.TicketType]--
			if s.dashboard.TicketSales[ticket.TicketType] == 0 {
				delete(s.dashboard.TicketSales, ticket.TicketType)
			}
		}
		s.dashboard.TypeOrder = s.dashboard.TypeOrder[:typesBefore]
		return nil, err
	}
	s.currentOrder = nil
	s.logInfo("SALE", fmt.Sprintf("order %d paid via %s, total %.2f DHS", order.OrderID, method, order.TotalAmount))
	return order, nil
}

// OrderHistory returns the logged-in customer's completed orders, oldest
// first.
func (s *Service) OrderHistory() ([]*models.Order, error) {
	if s.currentCustomer == nil {
		return nil, ErrNoSession
	}
	return s.currentCustomer.OrderHistory, nil
}

// ---------------- ADMIN VIEWS ----------------

func (s *Service) Dashboard() *models.Dashboard {
	return s.dashboard
}

func (s *Service) ViewSalesSummary() string {
	return s.dashboard.ViewSalesSummary()
}

func (s *Service) ViewTicketSales() string {
	return s.dashboard.ViewTicketSales()
}

// ---------------- PERSISTENCE ----------------

// persistAll snapshots the named slots in one store call.
func (s *Service) persistAll(slots ...string) error {
	snapshots := make(map[string][]byte, len(slots))
	for _, slot := range slots {
		var (
			data []byte
			err  error
		)
		switch slot {
		case store.SlotCustomers:
			data, err = store.Encode(s.customers)
		case store.SlotTickets:
			data, err = store.Encode(s.catalog)
		case store.SlotDashboard:
			data, err = store.Encode(s.dashboard)
		case store.SlotCounters:
			data, err = store.Encode(s.counters)
		default:
			err = fmt.Errorf("unknown slot %s", slot)
		}
		if err != nil {
			return err
		}
		snapshots[slot] = data
	}
	return s.Store.SaveAll(snapshots)
}

func (s *Service) logInfo(category, message string) {
	if s.Log != nil {
		s.Log.Info(category, message)
	}
}

func (s *Service) logWarn(category, message string) {
	if s.Log != nil {
		s.Log.Warn(category, message)
	}
}
