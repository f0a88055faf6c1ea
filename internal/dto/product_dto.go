package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	// Numeric fields carry min=0 without required: zero is a legitimate
	// value (a giveaway item, stock entered later) and required would
	// reject it.
	Name          string          `json:"name"           validate:"required,min=1,max=100"`
	Quantity      int             `json:"quantity"       validate:"min=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SalePrice     decimal.Decimal `json:"sale_price"     validate:"min=0"`
}

// RegisterSaleRequest accepts the quantity as a number that may arrive as
// "4" or "4.00" — it is truncated to an integer before validation of the
// stock invariant. The field binds from JSON or form-encoded bodies.
type RegisterSaleRequest struct {
	ItemsSold float64 `json:"items_sold" form:"items_sold"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	DateAdded     string          `json:"date_added"`
	ItemsSold     int             `json:"items_sold"`
	Remaining     int             `json:"remaining"`
	ProfitPerItem decimal.Decimal `json:"profit_per_item"`
	TotalProfit   decimal.Decimal `json:"total_profit_generated"`
}

// SaleResponse answers the asynchronous-style stock update contract:
// {success, new_remaining, product_id} on success, {success, error} on
// rejection.
type SaleResponse struct {
	Success      bool   `json:"success"`
	NewRemaining int    `json:"new_remaining,omitempty"`
	ProductID    uint   `json:"product_id,omitempty"`
	Error        string `json:"error,omitempty"`
}
