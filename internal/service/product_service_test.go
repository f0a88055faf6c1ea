package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductRejectsNegativeNumbers(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), newStubSaleRepo())
	ctx := context.Background()

	cases := []dto.CreateProductRequest{
		{Name: "Tea", Quantity: -1, PurchasePrice: dec("5"), SalePrice: dec("8")},
		{Name: "Tea", Quantity: 1, PurchasePrice: dec("-5"), SalePrice: dec("8")},
		{Name: "Tea", Quantity: 1, PurchasePrice: dec("5"), SalePrice: dec("-8")},
	}
	for _, req := range cases {
		_, err := svc.Create(ctx, 1, req)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	}
}

func TestCreateProductDerivedFieldsStartAtZero(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), newStubSaleRepo())

	resp, err := svc.Create(context.Background(), 1, dto.CreateProductRequest{
		Name: "Tea", Quantity: 10, PurchasePrice: dec("5"), SalePrice: dec("8"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.ItemsSold)
	assert.Equal(t, 10, resp.Remaining)
	assert.True(t, resp.ProfitPerItem.Equal(dec("3")))
	assert.True(t, resp.TotalProfit.IsZero())
}

func TestDeleteProductCascadesSales(t *testing.T) {
	productRepo := newStubProductRepo()
	saleRepo := newStubSaleRepo()
	productSvc := NewProductService(productRepo, saleRepo)
	saleSvc := NewSaleService(saleRepo, productRepo)
	ctx := context.Background()

	created, err := productSvc.Create(ctx, 1, dto.CreateProductRequest{
		Name: "Tea", Quantity: 10, PurchasePrice: dec("5"), SalePrice: dec("8"),
	})
	require.NoError(t, err)
	_, err = saleSvc.Register(ctx, 1, created.ID, 4)
	require.NoError(t, err)
	require.Len(t, saleRepo.sales, 1)

	require.NoError(t, productSvc.Delete(ctx, 1, created.ID))
	assert.Empty(t, saleRepo.sales)
	assert.Empty(t, productRepo.products)
}

func TestDeleteProductOwnerIsolation(t *testing.T) {
	productRepo := newStubProductRepo()
	svc := NewProductService(productRepo, newStubSaleRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, dto.CreateProductRequest{
		Name: "Tea", Quantity: 10, PurchasePrice: dec("5"), SalePrice: dec("8"),
	})
	require.NoError(t, err)

	assert.True(t, errors.Is(svc.Delete(ctx, 2, created.ID), ErrNotFound))
	assert.Len(t, productRepo.products, 1)
}

func TestDashboardBadDatesBehaveLikeEmptyWindow(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), newStubSaleRepo())

	resp, err := svc.Dashboard(context.Background(), 1, "not-a-date", "2026-02-28")
	require.NoError(t, err)
	assert.True(t, resp.NoData)
	assert.Nil(t, resp.Analytics)
}

func TestDashboardWithoutDatesSkipsAnalytics(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), newStubSaleRepo())

	resp, err := svc.Dashboard(context.Background(), 1, "", "")
	require.NoError(t, err)
	assert.False(t, resp.NoData)
	assert.Nil(t, resp.Analytics)
}
