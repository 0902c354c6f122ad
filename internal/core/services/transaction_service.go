package services

import (
	"context"
	"errors"
	"log"

	"embox/internal/adapters/persistence/models"
	"embox/internal/adapters/persistence/repositories"
	"embox/internal/core/domain"
	"embox/internal/core/membership"

	"gorm.io/gorm"
)

// TransactionService handles the income/expense ledger. Entries are
// append-only: there is no update or delete.
type TransactionService struct {
	txnRepo      repositories.TransactionRepository
	customerRepo repositories.CustomerRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txnRepo repositories.TransactionRepository, customerRepo repositories.CustomerRepository) *TransactionService {
	return &TransactionService{
		txnRepo:      txnRepo,
		customerRepo: customerRepo,
	}
}

// CreateTransactionInput represents transaction creation input
type CreateTransactionInput struct {
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Concept    string  `json:"concept"`
	Date       string  `json:"date"`
	CustomerID *uint   `json:"customer_id"`
}

// MonthlySummary represents income/expense totals for one month
type MonthlySummary struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// Create records a new ledger entry
func (s *TransactionService) Create(ctx context.Context, input *CreateTransactionInput) (*models.Transaction, error) {
	if input.Type != domain.TxnIncome && input.Type != domain.TxnExpense {
		return nil, domain.ErrInvalidTxnType
	}
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := membership.ParseDate(input.Date); err != nil {
		return nil, err
	}

	// The customer reference is a weak lookup key, but it must point at
	// a real row when supplied.
	if input.CustomerID != nil {
		if _, err := s.customerRepo.GetByID(ctx, *input.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrCustomerNotFound
			}
			return nil, err
		}
	}

	txn := &models.Transaction{
		Type:       input.Type,
		Amount:     input.Amount,
		Concept:    input.Concept,
		Date:       input.Date,
		CustomerID: input.CustomerID,
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	log.Printf("Transaction recorded: %s %.2f (%s)", txn.Type, txn.Amount, txn.Concept)
	return txn, nil
}

// GetByID gets a transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return txn, nil
}

// List lists transactions with optional month/type filters
func (s *TransactionService) List(ctx context.Context, filter repositories.TransactionFilter, offset, limit int) ([]*models.Transaction, int64, error) {
	return s.txnRepo.List(ctx, filter, offset, limit)
}

// Summary returns income/expense totals for a YYYY-MM month
func (s *TransactionService) Summary(ctx context.Context, month string) (*MonthlySummary, error) {
	income, err := s.txnRepo.SumByTypeAndMonth(ctx, domain.TxnIncome, month)
	if err != nil {
		return nil, err
	}

	expense, err := s.txnRepo.SumByTypeAndMonth(ctx, domain.TxnExpense, month)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Month:   month,
		Income:  income,
		Expense: expense,
		Net:     income - expense,
	}, nil
}
