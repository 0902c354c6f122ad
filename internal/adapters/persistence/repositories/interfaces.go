package repositories

import (
	"context"

	"embox/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByResetToken(ctx context.Context, token string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CustomerRepository defines customer repository interface
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	ListByDueDate(ctx context.Context) ([]*models.Customer, error)
	ListActive(ctx context.Context) ([]*models.Customer, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// TransactionRepository defines transaction repository interface.
// Transactions are immutable, so there is no update or delete.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	List(ctx context.Context, filter TransactionFilter, offset, limit int) ([]*models.Transaction, int64, error)
	ListByMonth(ctx context.Context, month string) ([]*models.Transaction, error)
	SumByTypeAndMonth(ctx context.Context, txnType, month string) (float64, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Transaction, error)
}

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	Month string // YYYY-MM, empty for all
	Type  string // income|expense, empty for all
}
