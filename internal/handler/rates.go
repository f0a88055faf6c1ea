package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/apierror"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/rateboard"

	"github.com/gin-gonic/gin"
)

type RateHandler struct{ store *rateboard.Store }

func NewRateHandler(store *rateboard.Store) *RateHandler { return &RateHandler{store: store} }

// List godoc
// @Summary Current market-rate board, newest first
// @Tags rates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rateboard.Entry
// @Router /v1/rates [get]
func (h *RateHandler) List(c *gin.Context) {
	entries, err := h.store.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary Prepend a market-rate entry
// @Tags rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateRateRequest true "Rate entry"
// @Success 201 {array} rateboard.Entry
// @Router /v1/rates [post]
func (h *RateHandler) Create(c *gin.Context) {
	var req dto.CreateRateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	err := h.store.Add(rateboard.Entry{
		Name:     req.Name,
		Price:    req.Price,
		Unit:     req.Unit,
		Category: req.Category,
		Trend:    req.Trend,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	entries, err := h.store.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entries)
}

// Delete godoc
// @Summary Remove the rate entry at a list position
// @Tags rates
// @Security BearerAuth
// @Param index path int true "Zero-based position, 0 = newest"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/rates/{index} [delete]
func (h *RateHandler) Delete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid index"))
		return
	}
	if err := h.store.Delete(index); err != nil {
		if errors.Is(err, rateboard.ErrIndexOutOfRange) {
			c.JSON(http.StatusNotFound, apierror.New("Item index not found."))
			return
		}
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
