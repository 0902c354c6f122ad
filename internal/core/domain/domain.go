// Package domain holds the vocabulary shared by every layer: the enum
// values persisted on rows and the sentinel errors services return.
package domain

// User roles.
const (
	RoleAdmin = "admin"
)

// Customer lifecycle status persisted on the row, distinct from the
// membership status computed against today.
const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"
)

// Transaction types.
const (
	TxnIncome  = "income"
	TxnExpense = "expense"
)
