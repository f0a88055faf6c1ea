package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an inventory line owned by exactly one User.
//
// Quantity is the total stock ever purchased; it is set at creation and never
// decremented. Everything sold lives in the Sale ledger, and the derived
// figures below are always recomputed from that ledger — nothing derived is
// ever stored, so the stock count cannot drift from the sale events.
type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"size:100;not null"`
	Quantity      int             `gorm:"not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DateAdded     time.Time       `gorm:"type:date"`

	UserID uint `gorm:"index;not null"`

	Sales []Sale `gorm:"constraint:OnDelete:CASCADE"`
}

// ItemsSold sums the quantities of the given sale events.
// The caller passes the product's sales explicitly; there is no lazy
// relationship traversal.
func (p *Product) ItemsSold(sales []Sale) int {
	total := 0
	for _, s := range sales {
		total += s.QuantitySold
	}
	return total
}

// Remaining is initial stock minus everything sold. With no sales it equals
// the full initial quantity.
func (p *Product) Remaining(sales []Sale) int {
	return p.Quantity - p.ItemsSold(sales)
}

// ProfitPerItem is sale price minus purchase price at current prices.
func (p *Product) ProfitPerItem() decimal.Decimal {
	return p.SalePrice.Sub(p.PurchasePrice)
}

// TotalProfit is ProfitPerItem × ItemsSold, using current prices.
func (p *Product) TotalProfit(sales []Sale) decimal.Decimal {
	return p.ProfitPerItem().Mul(decimal.NewFromInt(int64(p.ItemsSold(sales))))
}
