package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/apierror"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads a numeric path parameter. Returns 0, false (response already
// written) on garbage input.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps service error kinds onto HTTP statuses. Anything
// unrecognized is treated as a storage failure: pushed to the gin error list
// for the ErrorHandler middleware, which logs it and answers with a generic
// envelope so internals never leak.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	var ise *service.InsufficientStockError
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Record not found"))
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrAccountDisabled):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case errors.Is(err, service.ErrDuplicateIdentity):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, apierror.New(ve.Error()))
	case errors.As(err, &ise):
		c.JSON(http.StatusConflict, apierror.New(ise.Error()))
	default:
		_ = c.Error(err)
	}
}
