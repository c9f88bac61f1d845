package validation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// New returns the validator instance shared by all handlers.
func New() *validator.Validate {
	return validator.New()
}

// BindAndValidate decodes the JSON body into obj and runs struct validation.
// On failure it writes the 400 response itself and returns the error so the
// handler can just return.
func BindAndValidate(c *gin.Context, obj interface{}, v *validator.Validate) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return err
	}
	if err := v.Struct(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "error": err.Error()})
		return err
	}
	return nil
}

// IsValidDate reports whether the value is a YYYY-MM-DD date.
func IsValidDate(date string) bool {
	if len(date) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
