package dto

import "github.com/shopspring/decimal"

// CreateRateRequest is one market-rate entry for the flat-file rate board.
type CreateRateRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=100"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Unit     string          `json:"unit"     validate:"required"`
	Category string          `json:"category" validate:"required"`
	Trend    string          `json:"trend"    validate:"required"`
}
