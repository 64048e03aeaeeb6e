package helpers

import (
	"net/http"

	"github.com/farellandr/eventure/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorPage is rendered by the error.html template.
type ErrorPage struct {
	Status  int
	Error   string
	Message string
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.HTML(statusCode, "error.html", gin.H{
		"Title": HTTPStatusText(statusCode),
		"Base":  middleware.GetMountPrefix(c),
		"Error": ErrorPage{
			Status:  statusCode,
			Error:   HTTPStatusText(statusCode),
			Message: customMessage,
		},
	})
	c.Abort()
}

// RespondWithServerError logs err against the request and renders the 500 page
// without exposing err to the client.
func RespondWithServerError(c *gin.Context, log *zap.Logger, err error) {
	log.Error("request failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	RespondWithError(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}
