package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"adventureland/internal/booking"
	"adventureland/internal/config"
	"adventureland/internal/logger"
	"adventureland/internal/store"
)

// The desk is the text stand-in for the original booking screens. It only
// collects input and renders results; every rule lives in the booking
// service.
type desk struct {
	svc *booking.Service
	in  *bufio.Scanner
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Store.SQLitePath), 0o755); err != nil {
			return nil, err
		}
		bunDB, err := store.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store.NewBunStore(bunDB)
	default:
		return store.NewFileStore(cfg.Store.DataDir)
	}
}

func main() {
	_ = godotenv.Load() // Loads .env file if present

	cfg := config.Load()

	appLog, err := logger.New(cfg.LogDir)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLog.Close()

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store (%s): %v", cfg.Store.Backend, err)
	}
	defer st.Close()

	admin := booking.AdminIdentity{Username: cfg.Admin.Username, Password: cfg.Admin.Password}
	svc, err := booking.NewService(st, appLog, admin, cfg.Capacity)
	if err != nil {
		log.Fatalf("restore state: %v", err)
	}

	d := &desk{svc: svc, in: bufio.NewScanner(os.Stdin)}
	d.run()
	appLog.Info("DESK", "shutdown complete")
}

func (d *desk) prompt(label string) string {
	fmt.Print(label)
	if !d.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(d.in.Text())
}

// ---------------- LOGIN ----------------

func (d *desk) run() {
	for {
		fmt.Println("\n=== Adventure Land Ticket Booking ===")
		fmt.Println("1) Login")
		fmt.Println("2) Create account")
		fmt.Println("3) Admin login")
		fmt.Println("4) Exit")
		switch d.prompt("> ") {
		case "1":
			d.login()
		case "2":
			d.createAccount()
		case "3":
			d.adminLogin()
		case "4":
			return
		}
	}
}

func (d *desk) login() {
	email := d.prompt("Email: ")
	password := d.prompt("Password: ")
	if _, err := d.svc.Authenticate(email, password); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	d.customerMenu()
}

func (d *desk) createAccount() {
	name := d.prompt("Name: ")
	email := d.prompt("Email: ")
	password := d.prompt("Password: ")
	if _, err := d.svc.Register(name, email, password); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Account created successfully!")
}

func (d *desk) adminLogin() {
	username := d.prompt("Username: ")
	password := d.prompt("Password: ")
	if err := d.svc.AuthenticateAdmin(username, password); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	d.adminMenu()
}

// ---------------- CUSTOMER ----------------

func (d *desk) customerMenu() {
	defer d.svc.Logout()
	for {
		fmt.Printf("\nWelcome, %s\n", d.svc.CurrentCustomer().Name)
		for _, ticket := range d.svc.Catalog() {
			fmt.Printf("  %d) %s - %.2f DHS (%s)\n", ticket.TicketID, ticket.TicketType, ticket.Price, ticket.Validity)
		}
		fmt.Println("f) Finalize order  h) Order history  q) Logout")
		choice := d.prompt("> ")
		switch choice {
		case "f":
			d.payment()
		case "h":
			d.orderHistory()
		case "q":
			return
		default:
			ticketID, err := strconv.Atoi(choice)
			if err != nil {
				continue
			}
			order, err := d.svc.AddTicketToOrder(ticketID)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Added to order %d, running total %.2f DHS\n", order.OrderID, order.TotalAmount)
		}
	}
}

func (d *desk) payment() {
	order, err := d.svc.FinalizeOrder()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("\n" + order.DisplaySummary())
	fmt.Println("\nChoose payment method: 1) Credit Card  2) Debit Card")
	method := "Credit Card"
	if d.prompt("> ") == "2" {
		method = "Debit Card"
	}
	if _, err := d.svc.RecordPayment(method); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Payment successful using %s!\n", method)
}

func (d *desk) orderHistory() {
	history, err := d.svc.OrderHistory()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(history) == 0 {
		fmt.Println("No orders found.")
		return
	}
	for _, order := range history {
		fmt.Println("\n" + order.DisplaySummary())
	}
}

// ---------------- ADMIN ----------------

func (d *desk) adminMenu() {
	for {
		fmt.Printf("\n=== Admin Dashboard (daily capacity %d) ===\n", d.svc.Dashboard().Capacity)
		fmt.Println("1) Ticket sales summary")
		fmt.Println("2) Sales summary")
		fmt.Println("3) Manage tickets")
		fmt.Println("4) Manage users")
		fmt.Println("5) Back to login")
		switch d.prompt("> ") {
		case "1":
			fmt.Println(d.svc.ViewTicketSales())
		case "2":
			fmt.Println(d.svc.ViewSalesSummary())
		case "3":
			d.manageTickets()
		case "4":
			d.manageUsers()
		case "5":
			return
		}
	}
}

func (d *desk) manageTickets() {
	for _, ticket := range d.svc.Catalog() {
		fmt.Printf("  %d: %s - %.2f DHS (%s)\n", ticket.TicketID, ticket.TicketType, ticket.Price, ticket.Validity)
	}
	fmt.Println("a) Add ticket  d) Delete ticket  q) Back")
	switch d.prompt("> ") {
	case "a":
		ticketType := d.prompt("Ticket type: ")
		price, err := strconv.ParseFloat(d.prompt("Price: "), 64)
		if err != nil {
			fmt.Println("Error: invalid price")
			return
		}
		validity := d.prompt("Validity: ")
		if _, err := d.svc.AddCatalogEntry(ticketType, price, validity); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("New ticket added!")
	case "d":
		ticketID, err := strconv.Atoi(d.prompt("Ticket ID: "))
		if err != nil {
			fmt.Println("Error: invalid ticket ID")
			return
		}
		if err := d.svc.RemoveCatalogEntry(ticketID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Ticket deleted successfully!")
	}
}

func (d *desk) manageUsers() {
	for _, customer := range d.svc.Accounts() {
		fmt.Printf("  %d: %s (%s)\n", customer.CustomerID, customer.Name, customer.Email)
	}
	fmt.Println("d) Delete user  q) Back")
	if d.prompt("> ") != "d" {
		return
	}
	email := d.prompt("Email: ")
	if err := d.svc.RemoveAccount(email); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("User deleted successfully!")
}
