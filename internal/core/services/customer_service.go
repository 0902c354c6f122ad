package services

import (
	"context"
	"errors"
	"log"
	"time"

	"embox/internal/adapters/persistence/models"
	"embox/internal/adapters/persistence/repositories"
	"embox/internal/core/domain"
	"embox/internal/core/membership"

	"gorm.io/gorm"
)

// CustomerService handles customer business logic. Due dates are
// derived through the calculator on every insert and renewal; the
// computed membership status is derived on every read and never stored.
type CustomerService struct {
	customerRepo repositories.CustomerRepository
	calculator   membership.Calculator
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepository, calculator membership.Calculator) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		calculator:   calculator,
	}
}

// CreateCustomerInput represents customer creation input
type CreateCustomerInput struct {
	FullName        string  `json:"full_name"`
	Phone           string  `json:"phone"`
	PlanName        string  `json:"plan_name"`
	InscriptionDate string  `json:"inscription_date"`
	ManualDueDate   string  `json:"manual_due_date"`
	MonthlyFee      float64 `json:"monthly_fee"`
}

// RenewInput represents a renewal (reactivation) input
type RenewInput struct {
	InscriptionDate string `json:"inscription_date"`
	ManualDueDate   string `json:"manual_due_date"`
}

// Create creates a customer with a derived due date and active status
func (s *CustomerService) Create(ctx context.Context, input *CreateCustomerInput) (*models.CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPhoneTaken
	}

	dueDate, err := s.calculator.DueDate(input.PlanName, input.InscriptionDate, input.ManualDueDate)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FullName:        input.FullName,
		Phone:           input.Phone,
		PlanName:        input.PlanName,
		InscriptionDate: input.InscriptionDate,
		DueDate:         dueDate,
		MonthlyFee:      input.MonthlyFee,
		Status:          domain.CustomerActive,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	log.Printf("Customer created: %s (due %s)", customer.FullName, customer.DueDate)
	return s.annotate(customer, time.Now()), nil
}

// List lists all customers ordered by due date, each annotated with the
// membership status computed against "now"
func (s *CustomerService) List(ctx context.Context) ([]*models.CustomerResponse, error) {
	customers, err := s.customerRepo.ListByDueDate(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]*models.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		result = append(result, s.annotate(customer, now))
	}
	return result, nil
}

// GetByID gets a single annotated customer
func (s *CustomerService) GetByID(ctx context.Context, id uint) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return s.annotate(customer, time.Now()), nil
}

// ListDueSoon lists active customers whose computed status is
// DUE_TODAY, DUE_TOMORROW or OVERDUE
func (s *CustomerService) ListDueSoon(ctx context.Context) ([]*models.CustomerResponse, error) {
	customers, err := s.customerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]*models.CustomerResponse, 0)
	for _, customer := range customers {
		annotated := s.annotate(customer, now)
		switch membership.Status(annotated.CalculatedStatus) {
		case membership.StatusDueToday, membership.StatusDueTomorrow, membership.StatusOverdue:
			result = append(result, annotated)
		}
	}
	return result, nil
}

// Inactivate marks a customer inactive without touching the due date
func (s *CustomerService) Inactivate(ctx context.Context, id uint) error {
	err := s.customerRepo.UpdateFields(ctx, id, map[string]interface{}{
		"status": domain.CustomerInactive,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCustomerNotFound
		}
		return err
	}

	log.Printf("Customer %d marked inactive", id)
	return nil
}

// Renew updates the inscription date after a renewal payment,
// recomputes the due date and reactivates the customer
func (s *CustomerService) Renew(ctx context.Context, id uint, input *RenewInput) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}

	dueDate, err := s.calculator.DueDate(customer.PlanName, input.InscriptionDate, input.ManualDueDate)
	if err != nil {
		return nil, err
	}

	err = s.customerRepo.UpdateFields(ctx, id, map[string]interface{}{
		"inscription_date": input.InscriptionDate,
		"due_date":         dueDate,
		"status":           domain.CustomerActive,
	})
	if err != nil {
		return nil, err
	}

	customer.InscriptionDate = input.InscriptionDate
	customer.DueDate = dueDate
	customer.Status = domain.CustomerActive

	log.Printf("Customer %d renewed (due %s)", id, dueDate)
	return s.annotate(customer, time.Now()), nil
}

// annotate builds a response with the computed membership status.
// An unparseable stored due date is reported as the status field left
// empty rather than failing the whole listing.
func (s *CustomerService) annotate(customer *models.Customer, now time.Time) *models.CustomerResponse {
	resp := customer.ToResponse()
	status, err := membership.Classify(customer.DueDate, now)
	if err != nil {
		log.Printf("Customer %d has unparseable due date %q", customer.ID, customer.DueDate)
		return resp
	}
	resp.CalculatedStatus = string(status)
	return resp
}
