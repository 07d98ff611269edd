package models

// AccountStatus is the credit standing of a customer account.
// Suspended is declared for parity with fulfillment systems but no
// operation here ever produces it.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "Active"
	AccountStatusOverdue   AccountStatus = "Overdue"
	AccountStatusSuspended AccountStatus = "Suspended"
)

// Customer is a wholesale buyer account with credit terms.
type Customer struct {
	ID             string        `json:"id" validate:"required"`
	Name           string        `json:"name" validate:"required"`
	CreditLimit    float64       `json:"credit_limit" validate:"gte=0"`
	CurrentBalance float64       `json:"current_balance"`
	PaymentDueDate string        `json:"payment_due_date"`
	Status         AccountStatus `json:"account_status"`
}

// AvailableCredit is the remaining headroom under the credit limit.
func (c Customer) AvailableCredit() float64 {
	return c.CreditLimit - c.CurrentBalance
}
