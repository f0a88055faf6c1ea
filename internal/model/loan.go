package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan status values. The transition is one-way: unpaid → paid.
const (
	LoanUnpaid = "unpaid"
	LoanPaid   = "paid"
)

// Loan records credit extended to a customer. The owner is the shop owner,
// not the debtor.
type Loan struct {
	ID           uint            `gorm:"primaryKey"`
	CustomerName string          `gorm:"size:100;not null"`
	ProductTaken string          `gorm:"size:100;not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PhoneNumber  string          `gorm:"size:20;not null"`
	DateAdded    time.Time
	Status       string `gorm:"size:10;not null;default:'unpaid'"`

	UserID uint `gorm:"index;not null"`
}
