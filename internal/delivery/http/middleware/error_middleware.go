package middleware

import (
	"errors"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the gin context into the JSON
// envelope. Underlying error detail is attached to the response only
// outside production; production responses carry the user-safe message.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			logger.Log.Error("unhandled error", "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			return
		}

		if appErr.Err != nil {
			logger.Log.Error("request failed",
				"kind", string(appErr.Kind),
				"status", appErr.Code,
				"error", appErr.Err)
		}

		var detail interface{}
		if !production && appErr.Err != nil {
			detail = appErr.Err.Error()
		}
		response.Error(c, appErr.Code, appErr.Message, detail)
	}
}
