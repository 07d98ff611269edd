package services

import (
	"sort"

	"grosir/internal/models"
	"grosir/internal/repositories"
)

// DashboardSummary is the aggregate view shown on the portal landing
// page for one customer.
type DashboardSummary struct {
	CustomerName     string                     `json:"customer_name"`
	CurrentBalance   float64                    `json:"current_balance"`
	CreditLimit      float64                    `json:"credit_limit"`
	AvailableCredit  float64                    `json:"available_credit"`
	AccountStatus    models.AccountStatus       `json:"account_status"`
	PaymentDueDate   string                     `json:"payment_due_date"`
	PendingCartTotal float64                    `json:"pending_cart_total"`
	TotalOrders      int                        `json:"total_orders"`
	OrdersByStatus   map[models.OrderStatus]int `json:"orders_by_status"`
	ProductCount     int                        `json:"product_count"`
	LowStockCount    int                        `json:"low_stock_count"`
	MonthlySales     []MonthlySales             `json:"monthly_sales"`
}

// MonthlySales is the order-history revenue for one calendar month.
type MonthlySales struct {
	Month string  `json:"month"` // YYYY-MM
	Sales float64 `json:"sales"`
}

// DashboardService derives the landing-page aggregates from the other
// services' state. It owns no state of its own.
type DashboardService struct {
	customers repositories.CustomerRepository
	orders    *OrderService
	catalog   *CatalogService
	cart      *CartService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(customers repositories.CustomerRepository, orders *OrderService, catalog *CatalogService, cart *CartService) *DashboardService {
	return &DashboardService{
		customers: customers,
		orders:    orders,
		catalog:   catalog,
		cart:      cart,
	}
}

// Summary builds the dashboard aggregates for one customer.
func (s *DashboardService) Summary(customerID string) (*DashboardSummary, error) {
	customer, err := s.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.orders.CountByStatus()
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.GetAllOrders()
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.GetAllProducts()
	if err != nil {
		return nil, err
	}
	lowStock := 0
	for i := range products {
		level, err := s.catalog.InventoryStatus(&products[i])
		if err != nil {
			return nil, err
		}
		if level == models.StockLow || level == models.StockCritical {
			lowStock++
		}
	}

	return &DashboardSummary{
		CustomerName:     customer.Name,
		CurrentBalance:   customer.CurrentBalance,
		CreditLimit:      customer.CreditLimit,
		AvailableCredit:  customer.AvailableCredit(),
		AccountStatus:    customer.Status,
		PaymentDueDate:   customer.PaymentDueDate,
		PendingCartTotal: s.cart.Total(s.cart.Get(customerID)),
		TotalOrders:      len(orders),
		OrdersByStatus:   byStatus,
		ProductCount:     len(products),
		LowStockCount:    lowStock,
		MonthlySales:     monthlySales(orders),
	}, nil
}

// monthlySales groups order totals by calendar month, ascending.
func monthlySales(orders []models.Order) []MonthlySales {
	byMonth := make(map[string]float64)
	for _, order := range orders {
		if len(order.Date) < 7 {
			continue
		}
		byMonth[order.Date[:7]] += order.Total
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	out := make([]MonthlySales, len(months))
	for i, month := range months {
		out[i] = MonthlySales{Month: month, Sales: byMonth[month]}
	}
	return out
}
