package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grosir/internal/models"
	"grosir/internal/repositories"
	"grosir/internal/services"
	"grosir/pkg/rabbitmq"
)

func newAccountFixture(t *testing.T, publisher services.EventPublisher, balance float64) (*services.AccountService, *repositories.MemoryCustomerRepository) {
	t.Helper()

	customerRepo := repositories.NewMemoryCustomerRepository()
	customerRepo.Seed(models.Customer{
		ID: "CUST001", Name: "Green Valley Bakery",
		CreditLimit: 10000, CurrentBalance: balance,
		Status: models.AccountStatusOverdue,
	})
	return services.NewAccountService(customerRepo, publisher), customerRepo
}

func TestAccountService_PayInvoiceFullBalance(t *testing.T) {
	mockPublisher := new(MockPublisher)
	mockPublisher.On("Publish", rabbitmq.EventsExchange, "payment.received", mock.Anything).Return(nil).Once()

	service, _ := newAccountFixture(t, mockPublisher, 3500)

	customer, err := service.PayInvoice("CUST001", 3500)
	require.NoError(t, err)
	assert.Equal(t, 0.0, customer.CurrentBalance)
	assert.Equal(t, models.AccountStatusActive, customer.Status)
	mockPublisher.AssertExpectations(t)
}

func TestAccountService_PartialPaymentStaysOverdue(t *testing.T) {
	service, repo := newAccountFixture(t, nil, 3500)

	customer, err := service.PayInvoice("CUST001", 1000)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, customer.CurrentBalance)
	assert.Equal(t, models.AccountStatusOverdue, customer.Status)

	// The repository holds the updated record.
	stored, err := repo.GetByID("CUST001")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, stored.CurrentBalance)
}

func TestAccountService_PaymentExceedingBalanceRejected(t *testing.T) {
	service, repo := newAccountFixture(t, nil, 3500)

	_, err := service.PayInvoice("CUST001", 3500.01)
	assert.ErrorIs(t, err, services.ErrInvalidPaymentAmount)

	// Balance is untouched after the rejection.
	stored, err := repo.GetByID("CUST001")
	require.NoError(t, err)
	assert.Equal(t, 3500.0, stored.CurrentBalance)
	assert.Equal(t, models.AccountStatusOverdue, stored.Status)
}

func TestAccountService_NonPositivePaymentRejected(t *testing.T) {
	service, repo := newAccountFixture(t, nil, 3500)

	for _, amount := range []float64{0, -1, -500} {
		_, err := service.PayInvoice("CUST001", amount)
		assert.ErrorIs(t, err, services.ErrInvalidPaymentAmount, "amount %.2f", amount)
	}

	stored, err := repo.GetByID("CUST001")
	require.NoError(t, err)
	assert.Equal(t, 3500.0, stored.CurrentBalance)
}

func TestAccountService_UnknownCustomer(t *testing.T) {
	service, _ := newAccountFixture(t, nil, 3500)

	_, err := service.PayInvoice("CUST999", 100)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
