package handler

import (
	"fmt"
	"net/http"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/config"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/infra"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/middleware"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	svc service.LoanService
	cfg *config.Config
}

func NewLoanHandler(svc service.LoanService, cfg *config.Config) *LoanHandler {
	return &LoanHandler{svc: svc, cfg: cfg}
}

// List godoc
// @Summary Open loans plus the last settled ones
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LoanListResponse
// @Router /v1/loans [get]
func (h *LoanHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Record an unpaid loan
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateLoanRequest true "Loan"
// @Success 201 {object} dto.LoanResponse
// @Router /v1/loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var req dto.CreateLoanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// MarkPaid godoc
// @Summary Settle a loan (idempotent)
// @Tags loans
// @Security BearerAuth
// @Param id path int true "Loan id"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/loans/{id}/paid [patch]
func (h *LoanHandler) MarkPaid(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.MarkPaid(c.Request.Context(), claims.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a loan record
// @Tags loans
// @Security BearerAuth
// @Param id path int true "Loan id"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/loans/{id} [delete]
func (h *LoanHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// WhatsApp godoc
// @Summary Redirect to a wa.me chat pre-filled with the loan receipt
// @Tags loans
// @Security BearerAuth
// @Param id path int true "Loan id"
// @Success 302
// @Failure 404 {object} apierror.APIError
// @Router /v1/loans/{id}/whatsapp [get]
func (h *LoanHandler) WhatsApp(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	loan, err := h.svc.Get(c.Request.Context(), claims.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, service.WhatsAppLink(loan, h.cfg.ShopName, h.cfg.CountryCode))
}

// Receipt godoc
// @Summary Download the loan receipt as a PDF
// @Tags loans
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Loan id"
// @Success 200
// @Failure 404 {object} apierror.APIError
// @Router /v1/loans/{id}/receipt.pdf [get]
func (h *LoanHandler) Receipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	loan, err := h.svc.Get(c.Request.Context(), claims.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	pdf, err := infra.GenerateLoanReceiptPDF(loan, h.cfg.ShopName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", loan.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
