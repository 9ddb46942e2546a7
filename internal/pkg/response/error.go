package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghxstship/advancing-engine/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response.
// AppErrors carry their own status code; anything else is a store or
// programming failure and surfaces as 500 without leaking detail.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if !appErr.IsClientError() {
			_ = c.Error(err) // recorded for the request logger
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	_ = c.Error(err) // recorded for the request logger
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
