package handler

import (
	"net/http"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{ svc service.AdminService }

func NewAdminHandler(svc service.AdminService) *AdminHandler { return &AdminHandler{svc: svc} }

// Login godoc
// @Summary Master console login
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary Global counts, revenue and profit across all shops
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminStatsResponse
// @Router /v1/admin/dashboard [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListUsers godoc
// @Summary All shop owner accounts with owned counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AdminUserResponse
// @Router /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	resp, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UserDetail godoc
// @Summary One account with its products and loans
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} dto.AdminUserDetailResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/admin/users/{id} [get]
func (h *AdminHandler) UserDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.UserDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleActive godoc
// @Summary Flip an account's active flag
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200
// @Failure 404 {object} apierror.APIError
// @Router /v1/admin/users/{id}/toggle [patch]
func (h *AdminHandler) ToggleActive(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	active, err := h.svc.ToggleActive(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "active": active})
}

// DeleteUser godoc
// @Summary Delete an account and everything it owns
// @Tags admin
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
