package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents users table
type User struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Username          string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password          string         `gorm:"size:255;not null" json:"-"`
	Role              string         `gorm:"size:20;default:'admin'" json:"role"`
	ResetToken        *string        `gorm:"size:64;index" json:"-"`
	ResetTokenExpires *time.Time     `json:"-"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Customer represents customers table. Dates are stored as plain
// YYYY-MM-DD calendar dates, no time-of-day component.
type Customer struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	FullName        string         `gorm:"size:100;not null" json:"full_name"`
	Phone           string         `gorm:"uniqueIndex;size:20;not null" json:"phone"`
	PlanName        string         `gorm:"size:20" json:"plan_name"`
	InscriptionDate string         `gorm:"type:date;not null" json:"inscription_date"`
	DueDate         string         `gorm:"type:date;not null;index" json:"due_date"`
	MonthlyFee      float64        `gorm:"type:decimal(10,2);default:0" json:"monthly_fee"`
	Status          string         `gorm:"size:10;default:'active';index" json:"status"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerResponse DTO. CalculatedStatus is derived on every read and
// never written back to the customers table.
type CustomerResponse struct {
	ID               uint      `json:"id"`
	FullName         string    `json:"full_name"`
	Phone            string    `json:"phone"`
	PlanName         string    `json:"plan_name"`
	InscriptionDate  string    `json:"inscription_date"`
	DueDate          string    `json:"due_date"`
	MonthlyFee       float64   `json:"monthly_fee"`
	Status           string    `json:"status"`
	CalculatedStatus string    `json:"calculated_status"`
	CreatedAt        time.Time `json:"created_at"`
}

func (c *Customer) ToResponse() *CustomerResponse {
	return &CustomerResponse{
		ID:              c.ID,
		FullName:        c.FullName,
		Phone:           c.Phone,
		PlanName:        c.PlanName,
		InscriptionDate: c.InscriptionDate,
		DueDate:         c.DueDate,
		MonthlyFee:      c.MonthlyFee,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
	}
}

// Transaction represents transactions table. Rows are append-only:
// there is no update or delete path.
type Transaction struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Type       string    `gorm:"size:10;not null;index" json:"type"`
	Amount     float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Concept    string    `gorm:"size:255;not null" json:"concept"`
	Date       string    `gorm:"type:date;not null;index" json:"date"`
	CustomerID *uint     `gorm:"index" json:"customer_id,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Customer{},
		&Transaction{},
	)
}
