package httpx

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

func newError(c *gin.Context, status int, msg string) ErrorResponse {
	return ErrorResponse{
		Status:    status,
		Message:   msg,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	}
}

// Error writes the uniform error body and leaves the handler chain alone.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, newError(c, status, msg))
}

// Abort writes the uniform error body and stops the handler chain; used by
// middleware so rejected requests never reach the services.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, newError(c, status, msg))
}
