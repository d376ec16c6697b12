package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Created(c *gin.Context, location string, data any) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Timestamp: now(),
	})
}
