package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/config"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/repository"

	"gorm.io/gorm"
)

// AdminService backs the master console. Admin identity is the fixed
// credential pair from config, entirely separate from the User table —
// holding an admin token grants nothing on user routes and vice versa.
type AdminService interface {
	Login(ctx context.Context, req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
	ListUsers(ctx context.Context) ([]dto.AdminUserResponse, error)
	UserDetail(ctx context.Context, userID uint) (*dto.AdminUserDetailResponse, error)
	// ToggleActive flips the active flag and returns the new state. Sessions
	// already issued to a deactivated user stay valid until expiry — the flag
	// gates login only.
	ToggleActive(ctx context.Context, userID uint) (bool, error)
	// DeleteUser cascades: sales of owned products, then products, then
	// loans, then the user row, all in one transaction.
	DeleteUser(ctx context.Context, userID uint) error
}

type adminService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	loanRepo    repository.LoanRepository
	cfg         *config.Config
}

func NewAdminService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	loanRepo repository.LoanRepository,
	cfg *config.Config,
) AdminService {
	return &adminService{
		userRepo:    userRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		loanRepo:    loanRepo,
		cfg:         cfg,
	}
}

func (s *adminService) Login(_ context.Context, req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	// An unset credential pair disables the console outright.
	if s.cfg.AdminUser == "" || s.cfg.AdminPass == "" {
		return nil, ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.AdminPass)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}
	token, err := generateToken(s.cfg, 0, s.cfg.AdminUser, "admin")
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
	}, nil
}

func (s *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.loanRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.saleRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AdminStatsResponse{
		UsersCount:      users,
		ProductsCount:   products,
		TotalSalesCount: sales,
		TotalLoansCount: loans,
		TotalRevenue:    totals.Revenue,
		TotalProfit:     totals.Profit,
	}, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]dto.AdminUserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		productCount, err := s.productRepo.CountByOwner(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		loanCount, err := s.loanRepo.CountByOwner(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, dto.AdminUserResponse{
			ID:            u.ID,
			Username:      u.Username,
			Email:         u.Email,
			Active:        u.Active,
			ProductsCount: productCount,
			LoansCount:    loanCount,
		})
	}
	return resp, nil
}

func (s *adminService) UserDetail(ctx context.Context, userID uint) (*dto.AdminUserDetailResponse, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	products, err := s.productRepo.ListByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(products))
	for i := range products {
		ids = append(ids, products[i].ID)
	}
	sales, err := s.saleRepo.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	salesByProduct := make(map[uint][]model.Sale, len(products))
	for _, sale := range sales {
		salesByProduct[sale.ProductID] = append(salesByProduct[sale.ProductID], sale)
	}
	loans, err := s.loanRepo.ListByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	detail := &dto.AdminUserDetailResponse{
		User: dto.AdminUserResponse{
			ID:            u.ID,
			Username:      u.Username,
			Email:         u.Email,
			Active:        u.Active,
			ProductsCount: int64(len(products)),
			LoansCount:    int64(len(loans)),
		},
		Products: make([]dto.ProductResponse, 0, len(products)),
		Loans:    make([]dto.LoanResponse, 0, len(loans)),
	}
	for i := range products {
		detail.Products = append(detail.Products, productToResponse(&products[i], salesByProduct[products[i].ID]))
	}
	for i := range loans {
		detail.Loans = append(detail.Loans, loanToResponse(&loans[i]))
	}
	return detail, nil
}

func (s *adminService) ToggleActive(ctx context.Context, userID uint) (bool, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	newState := !u.Active
	if err := s.userRepo.SetActive(ctx, u.ID, newState); err != nil {
		return false, err
	}
	return newState, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID uint) error {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return runTx(ctx, s.userRepo.DB(), func(tx *gorm.DB) error {
		ids, err := s.productRepo.IDsByOwnerTx(tx, u.ID)
		if err != nil {
			return err
		}
		if err := s.saleRepo.DeleteByProductsTx(tx, ids); err != nil {
			return err
		}
		if err := s.productRepo.DeleteByOwnerTx(tx, u.ID); err != nil {
			return err
		}
		if err := s.loanRepo.DeleteByOwnerTx(tx, u.ID); err != nil {
			return err
		}
		return s.userRepo.DeleteTx(tx, u.ID)
	})
}
