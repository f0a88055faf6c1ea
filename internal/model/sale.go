package model

import "time"

// Sale is an immutable event: one sale transaction against one product.
// Rows are never updated; they are deleted only as a cascade of product
// deletion. Ownership is transitive through the product.
type Sale struct {
	ID           uint      `gorm:"primaryKey"`
	ProductID    uint      `gorm:"index;not null"`
	QuantitySold int       `gorm:"not null"`
	SaleDate     time.Time `gorm:"type:date;index"`
}
