package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message,omitempty"`
}

// BindJSON decodes the request body into out. On failure it writes a
// 400 envelope carrying the caller's message and returns false; field
// level validation failures are listed under "error".
func BindJSON(ctx *gin.Context, out interface{}, message string) bool {
	err := ctx.ShouldBindJSON(out)

	if err == nil {
		return true
	}

	var validatorErrs validator.ValidationErrors

	if errors.As(err, &validatorErrs) {
		fields := make([]FieldError, 0, len(validatorErrs))

		for _, fieldErr := range validatorErrs {
			fields = append(fields, FieldError{
				Field:   fieldErr.Field(),
				Rule:    fieldErr.Tag(),
				Message: validationMessage(fieldErr.Tag(), fieldErr.Param()),
			})
		}

		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": message,
			"error":   fields,
		})

		return false
	}

	ctx.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
		"error":   "invalid JSON body",
	})

	return false
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	default:
		if param != "" {
			return "failed " + rule + " validation (" + param + ")"
		}
		return "failed " + rule + " validation"
	}
}
