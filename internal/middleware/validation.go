package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/schoolregistry/internal/app/models/dto"
)

// BindRequest decodes the body into obj by Content-Type (JSON or XML) and runs the
// binding validators. On failure it writes a 400 response and returns false.
func BindRequest(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBind(obj)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		for _, fe := range fieldErrs {
			detail.WithDetails(formatValidationError(fe))
		}
		if len(fieldErrs) == 1 {
			detail.WithField(fieldErrs[0].Field())
		}
		RespondAbort(c, http.StatusBadRequest, dto.NewErrorResponse(detail))
		return false
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
	RespondAbort(c, http.StatusBadRequest, dto.NewErrorResponse(detail))
	return false
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
