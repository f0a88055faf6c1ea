package handler

import (
	"net/http"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/middleware"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc     service.ProductService
	saleSvc service.SaleService
}

func NewProductHandler(svc service.ProductService, saleSvc service.SaleService) *ProductHandler {
	return &ProductHandler{svc: svc, saleSvc: saleSvc}
}

// List godoc
// @Summary List the caller's products with derived stock and profit fields
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProductResponse
// @Router /v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Add a product to the caller's inventory
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Router /v1/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
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

// Delete godoc
// @Summary Delete a product and its whole sale ledger
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product id"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
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

// Dashboard godoc
// @Summary Product list plus windowed analytics
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "YYYY-MM-DD; analytics need both dates"
// @Param end_date query string false "YYYY-MM-DD; analytics need both dates"
// @Success 200 {object} dto.DashboardResponse
// @Router /v1/dashboard [get]
func (h *ProductHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Dashboard(c.Request.Context(), claims.UserID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
