package repository

import (
	"context"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"

	"gorm.io/gorm"
)

// UserRepository defines the data access contract for shop owner accounts.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	// FindByIdentity matches either the username or the email column.
	FindByIdentity(ctx context.Context, identity string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	SetActive(ctx context.Context, id uint, active bool) error
	Count(ctx context.Context) (int64, error)

	// DeleteTx removes the user row inside an already-open transaction.
	// Dependent rows are deleted first by the caller (ordered cascade).
	DeleteTx(tx *gorm.DB, id uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *userRepo) FindByIdentity(ctx context.Context, identity string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identity, identity).
		First(&u).Error
	return &u, err
}

func (r *userRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("active", active).Error
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *userRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.User{}, id).Error
}

func (r *userRepo) DB() *gorm.DB { return r.db }
