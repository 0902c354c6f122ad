package repositories

import (
	"context"

	"embox/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// GetByID gets a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&txn).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// List lists transactions matching the filter with pagination
func (r *transactionRepository) List(ctx context.Context, filter TransactionFilter, offset, limit int) ([]*models.Transaction, int64, error) {
	var txns []*models.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Transaction{})
	query = applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&txns).Error; err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}

// ListByMonth lists all transactions dated within a YYYY-MM month
func (r *transactionRepository) ListByMonth(ctx context.Context, month string) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("date LIKE ?", month+"-%").
		Order("date ASC, id ASC").
		Find(&txns).Error
	return txns, err
}

// SumByTypeAndMonth sums transaction amounts for a type within a month
func (r *transactionRepository) SumByTypeAndMonth(ctx context.Context, txnType, month string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("type = ? AND date LIKE ?", txnType, month+"-%").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// ListRecent lists the most recently created transactions
func (r *transactionRepository) ListRecent(ctx context.Context, limit int) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&txns).Error
	return txns, err
}

func applyFilter(query *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.Month != "" {
		query = query.Where("date LIKE ?", filter.Month+"-%")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	return query
}
