package repository

import (
	"context"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"

	"gorm.io/gorm"
)

// LoanRepository defines the data access contract for customer loans.
// Owner-scoped queries filter by user id in SQL (see ProductRepository).
type LoanRepository interface {
	Create(ctx context.Context, l *model.Loan) error
	FindByIDForOwner(ctx context.Context, id, ownerID uint) (*model.Loan, error)
	ListUnpaidByOwner(ctx context.Context, ownerID uint) ([]model.Loan, error)
	ListPaidByOwner(ctx context.Context, ownerID uint, limit int) ([]model.Loan, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Loan, error)
	SetStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)

	// Used inside the user-deletion cascade transaction.
	DeleteByOwnerTx(tx *gorm.DB, ownerID uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type loanRepo struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) LoanRepository { return &loanRepo{db: db} }

func (r *loanRepo) Create(ctx context.Context, l *model.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *loanRepo) FindByIDForOwner(ctx context.Context, id, ownerID uint) (*model.Loan, error) {
	var l model.Loan
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&l).Error
	return &l, err
}

func (r *loanRepo) ListUnpaidByOwner(ctx context.Context, ownerID uint) ([]model.Loan, error) {
	var loans []model.Loan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", ownerID, model.LoanUnpaid).
		Order("date_added DESC").
		Find(&loans).Error
	return loans, err
}

func (r *loanRepo) ListPaidByOwner(ctx context.Context, ownerID uint, limit int) ([]model.Loan, error) {
	var loans []model.Loan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", ownerID, model.LoanPaid).
		Order("date_added DESC").
		Limit(limit).
		Find(&loans).Error
	return loans, err
}

func (r *loanRepo) ListByOwner(ctx context.Context, ownerID uint) ([]model.Loan, error) {
	var loans []model.Loan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date_added DESC").
		Find(&loans).Error
	return loans, err
}

func (r *loanRepo) SetStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Loan{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *loanRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Loan{}, id).Error
}

func (r *loanRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Loan{}).Count(&count).Error
	return count, err
}

func (r *loanRepo) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Loan{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *loanRepo) DeleteByOwnerTx(tx *gorm.DB, ownerID uint) error {
	return tx.Where("user_id = ?", ownerID).Delete(&model.Loan{}).Error
}

func (r *loanRepo) DB() *gorm.DB { return r.db }
