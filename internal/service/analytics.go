package service

import (
	"sort"
	"time"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"

	"github.com/shopspring/decimal"
)

// WindowAnalytics aggregates the owner's sale events inside the inclusive
// [start, end] date window. It returns (nil, true) when no sale falls inside
// the window — an explicit no-data answer, distinct from a window whose sales
// sum to zero.
//
// Profit is computed with the products' CURRENT prices, even for historical
// sales: editing a price retroactively changes past analytics. That is
// inherited behavior, kept on purpose.
//
// Ties for best seller and most profitable go to the lowest product id, which
// makes the result deterministic regardless of map iteration order.
func WindowAnalytics(products []model.Product, salesByProduct map[uint][]model.Sale, start, end time.Time) (*dto.AnalyticsData, bool) {
	byID := make(map[uint]*model.Product, len(products))
	ids := make([]uint, 0, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
		ids = append(ids, products[i].ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	type bucket struct {
		sold   int
		profit decimal.Decimal
	}

	buckets := make(map[uint]*bucket)
	totalSold := 0
	totalRevenue := decimal.Zero
	netProfit := decimal.Zero

	for _, id := range ids {
		p := byID[id]
		for _, sale := range salesByProduct[id] {
			if !inWindow(sale.SaleDate, start, end) {
				continue
			}
			b := buckets[id]
			if b == nil {
				b = &bucket{profit: decimal.Zero}
				buckets[id] = b
			}
			qty := decimal.NewFromInt(int64(sale.QuantitySold))
			b.sold += sale.QuantitySold
			b.profit = b.profit.Add(qty.Mul(p.ProfitPerItem()))

			totalSold += sale.QuantitySold
			totalRevenue = totalRevenue.Add(qty.Mul(p.SalePrice))
			netProfit = netProfit.Add(qty.Mul(p.ProfitPerItem()))
		}
	}

	if len(buckets) == 0 {
		return nil, true
	}

	var bestSellerID, mostProfitableID uint
	bestSold := -1
	bestProfit := decimal.Zero
	firstBucket := true
	for _, id := range ids {
		b, ok := buckets[id]
		if !ok {
			continue
		}
		if b.sold > bestSold {
			bestSold = b.sold
			bestSellerID = id
		}
		if firstBucket || b.profit.GreaterThan(bestProfit) {
			bestProfit = b.profit
			mostProfitableID = id
			firstBucket = false
		}
	}

	data := &dto.AnalyticsData{
		TotalSold:    totalSold,
		TotalRevenue: totalRevenue,
		NetProfit:    netProfit,
	}
	if p := byID[bestSellerID]; p != nil {
		r := productToResponse(p, salesByProduct[p.ID])
		data.BestSeller = &r
	}
	if p := byID[mostProfitableID]; p != nil {
		r := productToResponse(p, salesByProduct[p.ID])
		data.MostProfitable = &r
	}

	// Highest margin looks at the whole current catalog, not the window.
	if hm := highestMargin(products, ids, byID); hm != nil {
		r := productToResponse(hm, salesByProduct[hm.ID])
		data.HighestMargin = &r
	}
	return data, false
}

func highestMargin(products []model.Product, sortedIDs []uint, byID map[uint]*model.Product) *model.Product {
	if len(products) == 0 {
		return nil
	}
	var best *model.Product
	for _, id := range sortedIDs {
		p := byID[id]
		if best == nil || p.ProfitPerItem().GreaterThan(best.ProfitPerItem()) {
			best = p
		}
	}
	return best
}

// inWindow compares calendar dates, ignoring the time of day on either side.
func inWindow(t, start, end time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(s) && !d.After(e)
}
