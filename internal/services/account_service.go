package services

import (
	"encoding/json"
	"fmt"
	"log"

	"grosir/internal/models"
	"grosir/internal/repositories"
	"grosir/pkg/rabbitmq"
)

// AccountService handles customer accounts and invoice payments.
type AccountService struct {
	customers repositories.CustomerRepository
	publisher EventPublisher
}

// NewAccountService creates a new AccountService. publisher may be nil.
func NewAccountService(customers repositories.CustomerRepository, publisher EventPublisher) *AccountService {
	return &AccountService{
		customers: customers,
		publisher: publisher,
	}
}

// GetAllCustomers retrieves all customer accounts.
func (s *AccountService) GetAllCustomers() ([]models.Customer, error) {
	return s.customers.GetAll()
}

// GetCustomer retrieves a customer account by ID.
func (s *AccountService) GetCustomer(id string) (*models.Customer, error) {
	return s.customers.GetByID(id)
}

// PayInvoice applies a payment against the customer's outstanding
// balance. The amount must be positive and no greater than the balance;
// a rejected payment leaves the account untouched. A fully settled
// balance moves the account to Active, anything remaining is Overdue.
func (s *AccountService) PayInvoice(customerID string, amount float64) (*models.Customer, error) {
	customer, err := s.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, fmt.Errorf("%w: payment of %.2f must be positive", ErrInvalidPaymentAmount, amount)
	}
	if amount > customer.CurrentBalance {
		return nil, fmt.Errorf("%w: payment of %.2f exceeds balance %.2f", ErrInvalidPaymentAmount, amount, customer.CurrentBalance)
	}

	customer.CurrentBalance -= amount
	if customer.CurrentBalance <= 0 {
		customer.Status = models.AccountStatusActive
	} else {
		customer.Status = models.AccountStatusOverdue
	}

	if err := s.customers.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}

	if s.publisher != nil {
		body, err := json.Marshal(map[string]interface{}{
			"customer_id": customer.ID,
			"amount":      amount,
			"balance":     customer.CurrentBalance,
			"status":      customer.Status,
		})
		if err != nil {
			log.Printf("Failed to marshal payment event: %v", err)
		} else if err := s.publisher.Publish(rabbitmq.EventsExchange, "payment.received", body); err != nil {
			log.Printf("Warning: failed to publish payment event for %s: %v", customer.ID, err)
		}
	}

	return customer, nil
}
