package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	billingcategorydomain "github.com/saiteki-ops/saiteki/internal/billingcategory/domain"
	cartdomain "github.com/saiteki-ops/saiteki/internal/cart/domain"
	clientdomain "github.com/saiteki-ops/saiteki/internal/client/domain"
	ecsitedomain "github.com/saiteki-ops/saiteki/internal/ecsite/domain"
	"github.com/saiteki-ops/saiteki/internal/importer"
	productdomain "github.com/saiteki-ops/saiteki/internal/product/domain"
	productcsvdomain "github.com/saiteki-ops/saiteki/internal/productcsv/domain"
	projectdomain "github.com/saiteki-ops/saiteki/internal/project/domain"
	"github.com/saiteki-ops/saiteki/internal/salesreport"
	shipmentdomain "github.com/saiteki-ops/saiteki/internal/shipment/domain"
	warehousedomain "github.com/saiteki-ops/saiteki/internal/warehouse/domain"
	wmsdomain "github.com/saiteki-ops/saiteki/internal/wms/domain"
	wmscsvdomain "github.com/saiteki-ops/saiteki/internal/wmscsv/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    conflictErrorType(err),
			Message: "conflict",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, cartdomain.ErrInvalidName),
		errors.Is(err, cartdomain.ErrInvalidID),
		errors.Is(err, ecsitedomain.ErrInvalidName),
		errors.Is(err, ecsitedomain.ErrInvalidCart),
		errors.Is(err, ecsitedomain.ErrInvalidID),
		errors.Is(err, wmsdomain.ErrInvalidName),
		errors.Is(err, wmsdomain.ErrInvalidID),
		errors.Is(err, warehousedomain.ErrInvalidName),
		errors.Is(err, warehousedomain.ErrInvalidWMS),
		errors.Is(err, warehousedomain.ErrInvalidID),
		errors.Is(err, billingcategorydomain.ErrInvalidName),
		errors.Is(err, billingcategorydomain.ErrInvalidID),
		errors.Is(err, clientdomain.ErrInvalidName),
		errors.Is(err, clientdomain.ErrInvalidContactName),
		errors.Is(err, clientdomain.ErrInvalidID),
		errors.Is(err, projectdomain.ErrInvalidName),
		errors.Is(err, projectdomain.ErrInvalidClient),
		errors.Is(err, projectdomain.ErrInvalidID),
		errors.Is(err, productdomain.ErrInvalidCode),
		errors.Is(err, productdomain.ErrInvalidECSite),
		errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, shipmentdomain.ErrInvalidPeriod),
		errors.Is(err, shipmentdomain.ErrInvalidID),
		errors.Is(err, productcsvdomain.ErrInvalidCart),
		errors.Is(err, productcsvdomain.ErrInvalidColumn),
		errors.Is(err, productcsvdomain.ErrInvalidID),
		errors.Is(err, wmscsvdomain.ErrInvalidWMS),
		errors.Is(err, wmscsvdomain.ErrInvalidColumn),
		errors.Is(err, wmscsvdomain.ErrInvalidID),
		errors.Is(err, salesreport.ErrInvalidPeriod),
		errors.Is(err, salesreport.ErrInvalidWarehouse),
		errors.Is(err, importer.ErrInvalidID),
		errors.Is(err, importer.ErrMappingInvalid):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, productcsvdomain.ErrMappingExists),
		errors.Is(err, wmscsvdomain.ErrMappingExists),
		errors.Is(err, productdomain.ErrDuplicateCode),
		errors.Is(err, importer.ErrMappingNotConfigured):
		return true
	default:
		return false
	}
}

func conflictErrorType(err error) string {
	if errors.Is(err, importer.ErrMappingNotConfigured) {
		return "mapping_not_configured"
	}
	return "conflict"
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, cartdomain.ErrNotFound),
		errors.Is(err, ecsitedomain.ErrNotFound),
		errors.Is(err, wmsdomain.ErrNotFound),
		errors.Is(err, warehousedomain.ErrNotFound),
		errors.Is(err, billingcategorydomain.ErrNotFound),
		errors.Is(err, clientdomain.ErrNotFound),
		errors.Is(err, clientdomain.ErrContactNotFound),
		errors.Is(err, projectdomain.ErrNotFound),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, shipmentdomain.ErrNotFound),
		errors.Is(err, productcsvdomain.ErrNotFound),
		errors.Is(err, wmscsvdomain.ErrNotFound),
		errors.Is(err, importer.ErrECSiteNotFound),
		errors.Is(err, importer.ErrWarehouseNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}
