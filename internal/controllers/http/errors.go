package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
)

// statusFor maps each named service error to its fixed HTTP status and
// message. Anything unrecognized is a 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest, "The request data is not in the correct format."
	case errors.Is(err, apperr.ErrCategoryNotFound):
		return http.StatusNotFound, "That category does not exist."
	case errors.Is(err, apperr.ErrMenuNotFound):
		return http.StatusNotFound, "That menu does not exist."
	case errors.Is(err, apperr.ErrOrderNotFound):
		return http.StatusNotFound, "That order does not exist."
	case errors.Is(err, apperr.ErrPriceBelowZero):
		return http.StatusNotFound, "The menu price cannot be less than zero."
	case errors.Is(err, apperr.ErrOwnerOnly):
		return http.StatusUnauthorized, "This API is only available to owners."
	case errors.Is(err, apperr.ErrCustomerOnly):
		return http.StatusUnauthorized, "This API is only available to customers."
	case errors.Is(err, apperr.ErrLoginRequired):
		return http.StatusUnauthorized, "This service requires you to be logged in."
	}
	return http.StatusInternalServerError, "An internal server error has occurred."
}

func writeError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	c.JSON(status, gin.H{"errorMessage": msg})
}

func abortWithError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	c.AbortWithStatusJSON(status, gin.H{"errorMessage": msg})
}
