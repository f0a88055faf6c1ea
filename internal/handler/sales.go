package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/middleware"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterSale appends a sale against a product. The endpoint keeps a dual
// contract: callers marked X-Requested-With: XMLHttpRequest get a JSON
// {success, new_remaining, product_id} envelope; plain form posts get a
// redirect back to the referer (or the product list). The quantity binds
// from either a JSON or a form-encoded body.
//
// @Summary Register a sale of a product
// @Tags products
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product id"
// @Param body body dto.RegisterSaleRequest true "Quantity sold"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.SaleResponse
// @Router /v1/products/{id}/sales [post]
func (h *ProductHandler) RegisterSale(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.RegisterSaleRequest
	if err := c.ShouldBind(&req); err != nil {
		// A raw "items_sold=4" form value may also arrive without a content
		// type; fall back to PostForm before giving up.
		if v, convErr := strconv.ParseFloat(c.PostForm("items_sold"), 64); convErr == nil {
			req.ItemsSold = v
		} else {
			c.JSON(http.StatusBadRequest, dto.SaleResponse{Success: false, Error: "Invalid quantity"})
			return
		}
	}

	async := c.GetHeader("X-Requested-With") == "XMLHttpRequest"
	claims := middleware.GetClaims(c)

	newRemaining, err := h.saleSvc.Register(c.Request.Context(), claims.UserID, id, req.ItemsSold)
	if err != nil {
		var ve *service.ValidationError
		var ise *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, err)
		case errors.As(err, &ve), errors.As(err, &ise):
			if async {
				c.JSON(http.StatusBadRequest, dto.SaleResponse{Success: false, Error: err.Error()})
			} else {
				c.Redirect(http.StatusFound, refererOr(c, "/v1/products"))
			}
		default:
			log.Error().Err(err).Uint("product_id", id).Msg("sale registration failed")
			c.JSON(http.StatusInternalServerError, dto.SaleResponse{Success: false, Error: "Server error. Please try again."})
		}
		return
	}

	if async {
		c.JSON(http.StatusOK, dto.SaleResponse{Success: true, NewRemaining: newRemaining, ProductID: id})
		return
	}
	c.Redirect(http.StatusFound, refererOr(c, "/v1/products"))
}

func refererOr(c *gin.Context, fallback string) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return fallback
}
