package repository

import (
	"context"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository defines the data access contract for inventory lines.
// Every owner-scoped query filters by user id in SQL so that rows belonging
// to other users surface as gorm.ErrRecordNotFound — callers cannot tell a
// foreign row from a missing one.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByIDForOwner(ctx context.Context, id, ownerID uint) (*model.Product, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Product, error)
	IDsByOwner(ctx context.Context, ownerID uint) ([]uint, error)
	Count(ctx context.Context) (int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)

	// Used inside transactions — callers must pass the tx instance.
	// FindForUpdateTx takes a row-level lock on the product for the duration
	// of the stock check-and-append.
	FindForUpdateTx(tx *gorm.DB, id, ownerID uint) (*model.Product, error)
	DeleteTx(tx *gorm.DB, id uint) error
	DeleteByOwnerTx(tx *gorm.DB, ownerID uint) error
	IDsByOwnerTx(tx *gorm.DB, ownerID uint) ([]uint, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByIDForOwner(ctx context.Context, id, ownerID uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&p).Error
	return &p, err
}

func (r *productRepo) ListByOwner(ctx context.Context, ownerID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date_added DESC, id DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) IDsByOwner(ctx context.Context, ownerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("user_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepo) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *productRepo) FindForUpdateTx(tx *gorm.DB, id, ownerID uint) (*model.Product, error) {
	var p model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&p).Error
	return &p, err
}

func (r *productRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Product{}, id).Error
}

func (r *productRepo) DeleteByOwnerTx(tx *gorm.DB, ownerID uint) error {
	return tx.Where("user_id = ?", ownerID).Delete(&model.Product{}).Error
}

func (r *productRepo) IDsByOwnerTx(tx *gorm.DB, ownerID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&model.Product{}).
		Where("user_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *productRepo) DB() *gorm.DB { return r.db }
