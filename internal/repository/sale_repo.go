package repository

import (
	"context"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GlobalTotals is the all-tenant revenue/profit aggregate for the admin
// dashboard, computed with the products' current prices.
type GlobalTotals struct {
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// SaleRepository defines the data access contract for the sale ledger.
// Sale rows are append-only: there is no update method on purpose.
type SaleRepository interface {
	ListByProduct(ctx context.Context, productID uint) ([]model.Sale, error)
	ListByProducts(ctx context.Context, productIDs []uint) ([]model.Sale, error)
	Count(ctx context.Context) (int64, error)
	Totals(ctx context.Context) (*GlobalTotals, error)

	// Used inside transactions — callers must pass the tx instance.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	SumQuantityByProductTx(tx *gorm.DB, productID uint) (int, error)
	DeleteByProductTx(tx *gorm.DB, productID uint) error
	DeleteByProductsTx(tx *gorm.DB, productIDs []uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) ListByProduct(ctx context.Context, productID uint) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListByProducts(ctx context.Context, productIDs []uint) ([]model.Sale, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).Count(&count).Error
	return count, err
}

func (r *saleRepo) Totals(ctx context.Context) (*GlobalTotals, error) {
	var row struct {
		Revenue decimal.NullDecimal
		Profit  decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			SUM(s.quantity_sold * p.sale_price)                      AS revenue,
			SUM(s.quantity_sold * (p.sale_price - p.purchase_price)) AS profit
		FROM sales s
		JOIN products p ON p.id = s.product_id
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	totals := &GlobalTotals{Revenue: decimal.Zero, Profit: decimal.Zero}
	if row.Revenue.Valid {
		totals.Revenue = row.Revenue.Decimal
	}
	if row.Profit.Valid {
		totals.Profit = row.Profit.Decimal
	}
	return totals, nil
}

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) SumQuantityByProductTx(tx *gorm.DB, productID uint) (int, error) {
	var sum struct{ Total int }
	err := tx.Model(&model.Sale{}).
		Select("COALESCE(SUM(quantity_sold), 0) AS total").
		Where("product_id = ?", productID).
		Scan(&sum).Error
	return sum.Total, err
}

func (r *saleRepo) DeleteByProductTx(tx *gorm.DB, productID uint) error {
	return tx.Where("product_id = ?", productID).Delete(&model.Sale{}).Error
}

func (r *saleRepo) DeleteByProductsTx(tx *gorm.DB, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	return tx.Where("product_id IN ?", productIDs).Delete(&model.Sale{}).Error
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
