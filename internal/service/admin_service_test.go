package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/config"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	svc         AdminService
	userRepo    *stubUserRepo
	productRepo *stubProductRepo
	saleRepo    *stubSaleRepo
	loanRepo    *stubLoanRepo
	cfg         *config.Config
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		userRepo:    newStubUserRepo(),
		productRepo: newStubProductRepo(),
		saleRepo:    newStubSaleRepo(),
		loanRepo:    newStubLoanRepo(),
		cfg:         testConfig(),
	}
	f.svc = NewAdminService(f.userRepo, f.productRepo, f.saleRepo, f.loanRepo, f.cfg)
	return f
}

func TestAdminLogin(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	resp, err := f.svc.Login(ctx, dto.AdminLoginRequest{Username: "root", Password: "root-pass"})
	require.NoError(t, err)
	assert.Equal(t, "admin", parseScope(t, resp.AccessToken, f.cfg.JWTSecret))

	_, err = f.svc.Login(ctx, dto.AdminLoginRequest{Username: "root", Password: "nope"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	_, err = f.svc.Login(ctx, dto.AdminLoginRequest{Username: "nope", Password: "root-pass"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAdminLoginDisabledWhenUnconfigured(t *testing.T) {
	f := newAdminFixture()
	f.cfg.AdminUser = ""
	f.cfg.AdminPass = ""

	_, err := f.svc.Login(context.Background(), dto.AdminLoginRequest{Username: "", Password: ""})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAdminStats(t *testing.T) {
	f := newAdminFixture()
	f.saleRepo.totals = repository.GlobalTotals{Revenue: dec("180"), Profit: dec("90")}
	ctx := context.Background()

	authSvc := NewAuthService(f.userRepo, f.cfg, nil)
	_, err := authSvc.Register(ctx, dto.RegisterRequest{
		Username: "noman", Email: "noman@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.UsersCount)
	assert.True(t, stats.TotalRevenue.Equal(dec("180")))
	assert.True(t, stats.TotalProfit.Equal(dec("90")))
}

func TestAdminToggleActive(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	authSvc := NewAuthService(f.userRepo, f.cfg, nil)
	user, err := authSvc.Register(ctx, dto.RegisterRequest{
		Username: "noman", Email: "noman@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	active, err := f.svc.ToggleActive(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = f.svc.ToggleActive(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, active)

	_, err = f.svc.ToggleActive(ctx, 999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAdminDeleteUserCascades(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	authSvc := NewAuthService(f.userRepo, f.cfg, nil)
	productSvc := NewProductService(f.productRepo, f.saleRepo)
	saleSvc := NewSaleService(f.saleRepo, f.productRepo)
	loanSvc := NewLoanService(f.loanRepo)

	victim, err := authSvc.Register(ctx, dto.RegisterRequest{
		Username: "victim", Email: "victim@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	bystander, err := authSvc.Register(ctx, dto.RegisterRequest{
		Username: "bystander", Email: "bystander@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	for _, ownerID := range []uint{victim.ID, bystander.ID} {
		p, err := productSvc.Create(ctx, ownerID, dto.CreateProductRequest{
			Name: "Tea", Quantity: 10, PurchasePrice: dec("5"), SalePrice: dec("8"),
		})
		require.NoError(t, err)
		_, err = saleSvc.Register(ctx, ownerID, p.ID, 2)
		require.NoError(t, err)
		_, err = loanSvc.Create(ctx, ownerID, dto.CreateLoanRequest{
			CustomerName: "Ali", ProductTaken: "Tea", Amount: dec("16"), PhoneNumber: "0300",
		})
		require.NoError(t, err)
	}

	require.NoError(t, f.svc.DeleteUser(ctx, victim.ID))

	// Everything the victim owned is gone; the bystander's rows are intact.
	assert.Len(t, f.userRepo.users, 1)
	assert.Len(t, f.productRepo.products, 1)
	assert.Len(t, f.saleRepo.sales, 1)
	assert.Len(t, f.loanRepo.loans, 1)
	users, err := f.svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bystander", users[0].Username)

	assert.True(t, errors.Is(f.svc.DeleteUser(ctx, victim.ID), ErrNotFound))
}

func TestAdminUserDetail(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	authSvc := NewAuthService(f.userRepo, f.cfg, nil)
	productSvc := NewProductService(f.productRepo, f.saleRepo)
	loanSvc := NewLoanService(f.loanRepo)

	user, err := authSvc.Register(ctx, dto.RegisterRequest{
		Username: "noman", Email: "noman@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	_, err = productSvc.Create(ctx, user.ID, dto.CreateProductRequest{
		Name: "Tea", Quantity: 10, PurchasePrice: dec("5"), SalePrice: dec("8"),
	})
	require.NoError(t, err)
	_, err = loanSvc.Create(ctx, user.ID, dto.CreateLoanRequest{
		CustomerName: "Ali", ProductTaken: "Tea", Amount: dec("16"), PhoneNumber: "0300",
	})
	require.NoError(t, err)

	detail, err := f.svc.UserDetail(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "noman", detail.User.Username)
	assert.Len(t, detail.Products, 1)
	assert.Len(t, detail.Loans, 1)

	_, err = f.svc.UserDetail(ctx, 999)
	assert.True(t, errors.Is(err, ErrNotFound))
}
