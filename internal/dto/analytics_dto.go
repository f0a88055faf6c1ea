package dto

import "github.com/shopspring/decimal"

// AnalyticsData aggregates the owner's sales inside an inclusive date window.
// HighestMargin is window-independent: the catalog product with the largest
// profit per item, nil when the catalog is empty.
type AnalyticsData struct {
	TotalSold      int              `json:"total_sold"`
	TotalRevenue   decimal.Decimal  `json:"total_revenue"`
	NetProfit      decimal.Decimal  `json:"net_profit"`
	BestSeller     *ProductResponse `json:"best_seller"`
	MostProfitable *ProductResponse `json:"most_profitable"`
	HighestMargin  *ProductResponse `json:"highest_margin"`
}

// DashboardResponse carries the product list plus optional window analytics.
// Analytics is null and NoData true when a window was requested but no sale
// falls inside it — deliberately distinct from a window summing to zero.
type DashboardResponse struct {
	Products  []ProductResponse `json:"products"`
	Analytics *AnalyticsData    `json:"analytics"`
	NoData    bool              `json:"no_data"`
}
