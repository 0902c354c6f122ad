package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"embox/internal/adapters/persistence/models"
	"embox/internal/core/membership"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	txnRepo := newFakeTxnRepo()
	svc := NewDashboardService(customerRepo, txnRepo)

	now := time.Now()
	customers := []*models.Customer{
		{FullName: "Due Today", Phone: "1", DueDate: membership.FormatDate(now), Status: "active"},
		{FullName: "Due Tomorrow", Phone: "2", DueDate: membership.FormatDate(now.AddDate(0, 0, 1)), Status: "active"},
		{FullName: "Overdue", Phone: "3", DueDate: membership.FormatDate(now.AddDate(0, 0, -4)), Status: "active"},
		{FullName: "Fine", Phone: "4", DueDate: membership.FormatDate(now.AddDate(0, 1, 0)), Status: "active"},
		{FullName: "Gone", Phone: "5", DueDate: membership.FormatDate(now.AddDate(0, 0, -10)), Status: "inactive"},
	}
	for _, customer := range customers {
		require.NoError(t, customerRepo.Create(context.Background(), customer))
	}

	month := now.Format("2006-01")
	txns := []*models.Transaction{
		{Type: "income", Amount: 70, Concept: "Fee", Date: month + "-01"},
		{Type: "expense", Amount: 25, Concept: "Water", Date: month + "-02"},
		{Type: "income", Amount: 40, Concept: "Fee", Date: "2020-01-01"}, // old month
	}
	for _, txn := range txns {
		require.NoError(t, txnRepo.Create(context.Background(), txn))
	}

	data, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 4, data.ActiveCustomers)
	assert.EqualValues(t, 1, data.InactiveCustomers)
	assert.Equal(t, 1, data.DueToday)
	assert.Equal(t, 1, data.DueTomorrow)
	assert.Equal(t, 1, data.Overdue) // inactive overdue row excluded

	assert.Equal(t, 70.0, data.MonthIncome)
	assert.Equal(t, 25.0, data.MonthExpense)
	assert.Equal(t, 45.0, data.MonthNet)

	require.Len(t, data.RecentTransactions, 3)
	assert.Equal(t, "2020-01-01", data.RecentTransactions[0].Date) // newest insert first
}
