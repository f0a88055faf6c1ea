package service

import (
	"context"
	"errors"
	"time"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/repository"

	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, ownerID uint, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context, ownerID uint) ([]dto.ProductResponse, error)
	Dashboard(ctx context.Context, ownerID uint, startDate, endDate string) (*dto.DashboardResponse, error)
	Delete(ctx context.Context, ownerID, productID uint) error
}

type productService struct {
	repo     repository.ProductRepository
	saleRepo repository.SaleRepository
}

func NewProductService(repo repository.ProductRepository, saleRepo repository.SaleRepository) ProductService {
	return &productService{repo: repo, saleRepo: saleRepo}
}

func (s *productService) Create(ctx context.Context, ownerID uint, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	// Numeric fields must be non-negative; validator tags catch most of this
	// but decimals are re-checked here so a negative price can never slip in
	// through a custom-type edge case.
	if req.Quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if req.PurchasePrice.IsNegative() {
		return nil, &ValidationError{Field: "purchase_price", Reason: "must not be negative"}
	}
	if req.SalePrice.IsNegative() {
		return nil, &ValidationError{Field: "sale_price", Reason: "must not be negative"}
	}

	p := &model.Product{
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		DateAdded:     time.Now(),
		UserID:        ownerID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p, nil)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, ownerID uint) ([]dto.ProductResponse, error) {
	products, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	salesByProduct, err := s.loadSales(ctx, products)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, productToResponse(&products[i], salesByProduct[products[i].ID]))
	}
	return resp, nil
}

// Dashboard returns the owner's catalog plus, when both dates are present,
// the window analytics. An unparseable date behaves like an empty window —
// the original storefront did the same.
func (s *productService) Dashboard(ctx context.Context, ownerID uint, startDate, endDate string) (*dto.DashboardResponse, error) {
	products, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	salesByProduct, err := s.loadSales(ctx, products)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{Products: make([]dto.ProductResponse, 0, len(products))}
	for i := range products {
		resp.Products = append(resp.Products, productToResponse(&products[i], salesByProduct[products[i].ID]))
	}

	if startDate == "" || endDate == "" {
		return resp, nil
	}

	start, err1 := time.Parse("2006-01-02", startDate)
	end, err2 := time.Parse("2006-01-02", endDate)
	if err1 != nil || err2 != nil {
		resp.NoData = true
		return resp, nil
	}

	analytics, noData := WindowAnalytics(products, salesByProduct, start, end)
	resp.Analytics = analytics
	resp.NoData = noData
	return resp, nil
}

// Delete removes the product and its whole sale ledger as an ordered
// multi-step delete inside one transaction: dependents first, then the row.
func (s *productService) Delete(ctx context.Context, ownerID, productID uint) error {
	p, err := s.repo.FindByIDForOwner(ctx, productID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.saleRepo.DeleteByProductTx(tx, p.ID); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, p.ID)
	})
}

func (s *productService) loadSales(ctx context.Context, products []model.Product) (map[uint][]model.Sale, error) {
	ids := make([]uint, 0, len(products))
	for i := range products {
		ids = append(ids, products[i].ID)
	}
	sales, err := s.saleRepo.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[uint][]model.Sale, len(products))
	for _, sale := range sales {
		byProduct[sale.ProductID] = append(byProduct[sale.ProductID], sale)
	}
	return byProduct, nil
}

func productToResponse(p *model.Product, sales []model.Sale) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		DateAdded:     p.DateAdded.Format("2006-01-02"),
		ItemsSold:     p.ItemsSold(sales),
		Remaining:     p.Remaining(sales),
		ProfitPerItem: p.ProfitPerItem(),
		TotalProfit:   p.TotalProfit(sales),
	}
}
