package service

import (
	"context"
	"sort"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────
// All stubs return a nil DB so runTx executes the transaction body directly.

type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByIdentity(_ context.Context, identity string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == identity || u.Email == identity {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id uint, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Active = active
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) { return int64(len(r.users)), nil }

func (r *stubUserRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) DB() *gorm.DB { return nil }

var _ repository.UserRepository = (*stubUserRepo)(nil)

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByIDForOwner(_ context.Context, id, ownerID uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) ListByOwner(_ context.Context, ownerID uint) ([]model.Product, error) {
	out := make([]model.Product, 0)
	for _, p := range r.products {
		if p.UserID == ownerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProductRepo) IDsByOwner(_ context.Context, ownerID uint) ([]uint, error) {
	return r.idsByOwner(ownerID), nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) CountByOwner(_ context.Context, ownerID uint) (int64, error) {
	return int64(len(r.idsByOwner(ownerID))), nil
}

func (r *stubProductRepo) FindForUpdateTx(_ *gorm.DB, id, ownerID uint) (*model.Product, error) {
	return r.FindByIDForOwner(context.Background(), id, ownerID)
}

func (r *stubProductRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) DeleteByOwnerTx(_ *gorm.DB, ownerID uint) error {
	for _, id := range r.idsByOwner(ownerID) {
		delete(r.products, id)
	}
	return nil
}

func (r *stubProductRepo) IDsByOwnerTx(_ *gorm.DB, ownerID uint) ([]uint, error) {
	return r.idsByOwner(ownerID), nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

func (r *stubProductRepo) idsByOwner(ownerID uint) []uint {
	ids := make([]uint, 0)
	for id, p := range r.products {
		if p.UserID == ownerID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubSaleRepo struct {
	sales  []model.Sale
	nextID uint
	totals repository.GlobalTotals
}

func newStubSaleRepo() *stubSaleRepo { return &stubSaleRepo{} }

func (r *stubSaleRepo) ListByProduct(_ context.Context, productID uint) ([]model.Sale, error) {
	out := make([]model.Sale, 0)
	for _, s := range r.sales {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSaleRepo) ListByProducts(_ context.Context, productIDs []uint) ([]model.Sale, error) {
	want := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		want[id] = true
	}
	out := make([]model.Sale, 0)
	for _, s := range r.sales {
		if want[s.ProductID] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSaleRepo) Count(_ context.Context) (int64, error) { return int64(len(r.sales)), nil }

func (r *stubSaleRepo) Totals(_ context.Context) (*repository.GlobalTotals, error) {
	t := r.totals
	return &t, nil
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	r.nextID++
	s.ID = r.nextID
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) SumQuantityByProductTx(_ *gorm.DB, productID uint) (int, error) {
	sum := 0
	for _, s := range r.sales {
		if s.ProductID == productID {
			sum += s.QuantitySold
		}
	}
	return sum, nil
}

func (r *stubSaleRepo) DeleteByProductTx(_ *gorm.DB, productID uint) error {
	return r.DeleteByProductsTx(nil, []uint{productID})
}

func (r *stubSaleRepo) DeleteByProductsTx(_ *gorm.DB, productIDs []uint) error {
	drop := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		drop[id] = true
	}
	kept := r.sales[:0]
	for _, s := range r.sales {
		if !drop[s.ProductID] {
			kept = append(kept, s)
		}
	}
	r.sales = kept
	return nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

type stubLoanRepo struct {
	loans  map[uint]*model.Loan
	nextID uint
}

func newStubLoanRepo() *stubLoanRepo {
	return &stubLoanRepo{loans: make(map[uint]*model.Loan)}
}

func (r *stubLoanRepo) Create(_ context.Context, l *model.Loan) error {
	r.nextID++
	l.ID = r.nextID
	r.loans[l.ID] = l
	return nil
}

func (r *stubLoanRepo) FindByIDForOwner(_ context.Context, id, ownerID uint) (*model.Loan, error) {
	l, ok := r.loans[id]
	if !ok || l.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (r *stubLoanRepo) ListUnpaidByOwner(_ context.Context, ownerID uint) ([]model.Loan, error) {
	return r.listByStatus(ownerID, model.LoanUnpaid, 0), nil
}

func (r *stubLoanRepo) ListPaidByOwner(_ context.Context, ownerID uint, limit int) ([]model.Loan, error) {
	return r.listByStatus(ownerID, model.LoanPaid, limit), nil
}

func (r *stubLoanRepo) ListByOwner(_ context.Context, ownerID uint) ([]model.Loan, error) {
	out := make([]model.Loan, 0)
	for _, l := range r.loans {
		if l.UserID == ownerID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubLoanRepo) SetStatus(_ context.Context, id uint, status string) error {
	l, ok := r.loans[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Status = status
	return nil
}

func (r *stubLoanRepo) Delete(_ context.Context, id uint) error {
	delete(r.loans, id)
	return nil
}

func (r *stubLoanRepo) Count(_ context.Context) (int64, error) { return int64(len(r.loans)), nil }

func (r *stubLoanRepo) CountByOwner(_ context.Context, ownerID uint) (int64, error) {
	n := int64(0)
	for _, l := range r.loans {
		if l.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *stubLoanRepo) DeleteByOwnerTx(_ *gorm.DB, ownerID uint) error {
	for id, l := range r.loans {
		if l.UserID == ownerID {
			delete(r.loans, id)
		}
	}
	return nil
}

func (r *stubLoanRepo) DB() *gorm.DB { return nil }

// listByStatus returns newest first (descending id), optionally limited.
func (r *stubLoanRepo) listByStatus(ownerID uint, status string, limit int) []model.Loan {
	out := make([]model.Loan, 0)
	for _, l := range r.loans {
		if l.UserID == ownerID && l.Status == status {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

var _ repository.LoanRepository = (*stubLoanRepo)(nil)

// dec is a test shorthand for decimal literals.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
