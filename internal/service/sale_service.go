package service

import (
	"context"
	"errors"
	"time"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/repository"

	"gorm.io/gorm"
)

type SaleService interface {
	// Register appends one sale event dated today and returns the new
	// remaining stock. Quantity arrives as a float ("4" or "4.00" on the
	// wire) and is truncated to an integer.
	Register(ctx context.Context, ownerID, productID uint, rawQuantity float64) (int, error)
}

type saleService struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
}

func NewSaleService(repo repository.SaleRepository, productRepo repository.ProductRepository) SaleService {
	return &saleService{repo: repo, productRepo: productRepo}
}

// Register runs the stock check-and-append under a row-level lock on the
// product. Remaining stock is recomputed from the sale ledger inside the
// transaction, so two concurrent registrations serialize on the lock and
// cannot jointly oversell.
func (s *saleService) Register(ctx context.Context, ownerID, productID uint, rawQuantity float64) (int, error) {
	quantity := int(rawQuantity)
	if quantity <= 0 {
		return 0, &ValidationError{Field: "items_sold", Reason: "please enter a valid quantity"}
	}

	var newRemaining int
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p, err := s.productRepo.FindForUpdateTx(tx, productID, ownerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		sold, err := s.repo.SumQuantityByProductTx(tx, p.ID)
		if err != nil {
			return err
		}
		remaining := p.Quantity - sold
		if quantity > remaining {
			return &InsufficientStockError{Remaining: remaining}
		}

		sale := &model.Sale{
			ProductID:    p.ID,
			QuantitySold: quantity,
			SaleDate:     time.Now(),
		}
		if err := s.repo.CreateTx(tx, sale); err != nil {
			return err
		}
		newRemaining = remaining - quantity
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return newRemaining, nil
}
