package services

import (
	"context"
	"sort"
	"strings"

	"embox/internal/adapters/persistence/models"
	"embox/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

var (
	_ repositories.UserRepository        = (*fakeUserRepo)(nil)
	_ repositories.CustomerRepository    = (*fakeCustomerRepo)(nil)
	_ repositories.TransactionRepository = (*fakeTxnRepo)(nil)
)

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByResetToken(_ context.Context, token string) (*models.User, error) {
	for _, user := range r.users {
		if user.ResetToken != nil && *user.ResetToken == token {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(context.Background(), username)
	return err == nil, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeCustomerRepo struct {
	customers map[uint]*models.Customer
	nextID    uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uint]*models.Customer), nextID: 1}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	customer.ID = r.nextID
	r.nextID++
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uint) (*models.Customer, error) {
	if customer, ok := r.customers[id]; ok {
		clone := *customer
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) UpdateFields(_ context.Context, id uint, fields map[string]interface{}) error {
	customer, ok := r.customers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["status"]; ok {
		customer.Status = v.(string)
	}
	if v, ok := fields["inscription_date"]; ok {
		customer.InscriptionDate = v.(string)
	}
	if v, ok := fields["due_date"]; ok {
		customer.DueDate = v.(string)
	}
	return nil
}

func (r *fakeCustomerRepo) ListByDueDate(_ context.Context) ([]*models.Customer, error) {
	var customers []*models.Customer
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].DueDate < customers[j].DueDate
	})
	return customers, nil
}

func (r *fakeCustomerRepo) ListActive(ctx context.Context) ([]*models.Customer, error) {
	all, _ := r.ListByDueDate(ctx)
	var active []*models.Customer
	for _, customer := range all {
		if customer.Status == "active" {
			active = append(active, customer)
		}
	}
	return active, nil
}

func (r *fakeCustomerRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	for _, customer := range r.customers {
		if customer.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCustomerRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, customer := range r.customers {
		if customer.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeTxnRepo struct {
	txns   map[uint]*models.Transaction
	nextID uint
}

func newFakeTxnRepo() *fakeTxnRepo {
	return &fakeTxnRepo{txns: make(map[uint]*models.Transaction), nextID: 1}
}

func (r *fakeTxnRepo) Create(_ context.Context, txn *models.Transaction) error {
	txn.ID = r.nextID
	r.nextID++
	r.txns[txn.ID] = txn
	return nil
}

func (r *fakeTxnRepo) GetByID(_ context.Context, id uint) (*models.Transaction, error) {
	if txn, ok := r.txns[id]; ok {
		return txn, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTxnRepo) List(ctx context.Context, filter repositories.TransactionFilter, offset, limit int) ([]*models.Transaction, int64, error) {
	var result []*models.Transaction
	for _, txn := range r.sorted() {
		if filter.Month != "" && !strings.HasPrefix(txn.Date, filter.Month+"-") {
			continue
		}
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		result = append(result, txn)
	}
	total := int64(len(result))
	if offset > len(result) {
		offset = len(result)
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, total, nil
}

func (r *fakeTxnRepo) ListByMonth(_ context.Context, month string) ([]*models.Transaction, error) {
	var result []*models.Transaction
	for _, txn := range r.sorted() {
		if strings.HasPrefix(txn.Date, month+"-") {
			result = append(result, txn)
		}
	}
	return result, nil
}

func (r *fakeTxnRepo) SumByTypeAndMonth(_ context.Context, txnType, month string) (float64, error) {
	var total float64
	for _, txn := range r.txns {
		if txn.Type == txnType && strings.HasPrefix(txn.Date, month+"-") {
			total += txn.Amount
		}
	}
	return total, nil
}

func (r *fakeTxnRepo) ListRecent(_ context.Context, limit int) ([]*models.Transaction, error) {
	txns := r.sorted()
	// Newest first, like the real repository.
	for i, j := 0, len(txns)-1; i < j; i, j = i+1, j-1 {
		txns[i], txns[j] = txns[j], txns[i]
	}
	if limit < len(txns) {
		txns = txns[:limit]
	}
	return txns, nil
}

func (r *fakeTxnRepo) sorted() []*models.Transaction {
	var txns []*models.Transaction
	for _, txn := range r.txns {
		txns = append(txns, txn)
	}
	sort.Slice(txns, func(i, j int) bool { return txns[i].ID < txns[j].ID })
	return txns
}
