package services

import (
	"context"
	"time"

	"embox/internal/adapters/persistence/models"
	"embox/internal/adapters/persistence/repositories"
	"embox/internal/core/domain"
	"embox/internal/core/membership"
)

// DashboardService aggregates the front-desk overview numbers
type DashboardService struct {
	customerRepo repositories.CustomerRepository
	txnRepo      repositories.TransactionRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(customerRepo repositories.CustomerRepository, txnRepo repositories.TransactionRepository) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		txnRepo:      txnRepo,
	}
}

// DashboardData represents the admin dashboard payload
type DashboardData struct {
	// Membership statistics
	ActiveCustomers   int64 `json:"active_customers"`
	InactiveCustomers int64 `json:"inactive_customers"`
	DueToday          int   `json:"due_today"`
	DueTomorrow       int   `json:"due_tomorrow"`
	Overdue           int   `json:"overdue"`

	// Current month ledger
	MonthIncome  float64 `json:"month_income"`
	MonthExpense float64 `json:"month_expense"`
	MonthNet     float64 `json:"month_net"`

	// Recent activity
	RecentTransactions []*models.Transaction `json:"recent_transactions"`
}

// GetDashboard returns the dashboard data computed against "now"
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}
	now := time.Now()

	active, err := s.customerRepo.CountByStatus(ctx, domain.CustomerActive)
	if err != nil {
		return nil, err
	}
	data.ActiveCustomers = active

	inactive, err := s.customerRepo.CountByStatus(ctx, domain.CustomerInactive)
	if err != nil {
		return nil, err
	}
	data.InactiveCustomers = inactive

	// Urgency counts come from the classifier, not from storage.
	customers, err := s.customerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, customer := range customers {
		status, err := membership.Classify(customer.DueDate, now)
		if err != nil {
			continue
		}
		switch status {
		case membership.StatusDueToday:
			data.DueToday++
		case membership.StatusDueTomorrow:
			data.DueTomorrow++
		case membership.StatusOverdue:
			data.Overdue++
		}
	}

	month := now.Format("2006-01")
	data.MonthIncome, err = s.txnRepo.SumByTypeAndMonth(ctx, domain.TxnIncome, month)
	if err != nil {
		return nil, err
	}
	data.MonthExpense, err = s.txnRepo.SumByTypeAndMonth(ctx, domain.TxnExpense, month)
	if err != nil {
		return nil, err
	}
	data.MonthNet = data.MonthIncome - data.MonthExpense

	data.RecentTransactions, err = s.txnRepo.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return data, nil
}
