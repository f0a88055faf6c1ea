package dto

import "github.com/shopspring/decimal"

// AdminStatsResponse is the aggregate view across all tenants.
type AdminStatsResponse struct {
	UsersCount      int64           `json:"users_count"`
	ProductsCount   int64           `json:"products_count"`
	TotalSalesCount int64           `json:"total_sales_count"`
	TotalLoansCount int64           `json:"total_loans_count"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
}

// AdminUserResponse lists a user together with how much they own.
type AdminUserResponse struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Active        bool   `json:"active"`
	ProductsCount int64  `json:"products_count"`
	LoansCount    int64  `json:"loans_count"`
}

type AdminUserDetailResponse struct {
	User     AdminUserResponse `json:"user"`
	Products []ProductResponse `json:"products"`
	Loans    []LoanResponse    `json:"loans"`
}
