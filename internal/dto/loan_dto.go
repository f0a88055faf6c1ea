package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateLoanRequest struct {
	CustomerName string          `json:"customer_name" validate:"required,min=1,max=100"`
	ProductTaken string          `json:"product_taken" validate:"required,min=1,max=100"`
	Amount       decimal.Decimal `json:"amount"        validate:"min=0"`
	PhoneNumber  string          `json:"phone_number"  validate:"required,min=4,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoanResponse struct {
	ID           uint            `json:"id"`
	CustomerName string          `json:"customer_name"`
	ProductTaken string          `json:"product_taken"`
	Amount       decimal.Decimal `json:"amount"`
	PhoneNumber  string          `json:"phone_number"`
	DateAdded    string          `json:"date_added"`
	Status       string          `json:"status"`
}

// LoanListResponse splits open debts from the last settled ones, newest first.
type LoanListResponse struct {
	Unpaid  []LoanResponse `json:"unpaid"`
	History []LoanResponse `json:"history"`
}
