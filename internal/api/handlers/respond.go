package handlers

import (
	"net/http"

	apperrors "sales-crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondSuccess writes the success envelope around a payload
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

// respondDeleted writes the empty-body success for a delete
func respondDeleted(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// respondError maps a domain error onto its HTTP status and writes the
// error envelope
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"status": "error", "message": err.Error()})
}

// statusFor maps the error taxonomy onto HTTP status codes. Anything
// outside the taxonomy is a 500.
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsConflict(err):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondBadRequest writes a 400 for malformed request input
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": message})
}

// respondUnauthorized writes a 401 for requests with no caller identity
func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": apperrors.ErrMissingToken.Error()})
}
