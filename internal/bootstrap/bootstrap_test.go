package bootstrap

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		logger, err := NewLogger(env)

		assert.NoError(t, err, env)
		assert.NotNil(t, logger, env)
	}
}

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	srv := NewHTTPServer(r, ServerConfig{
		Port:         "8080",
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
		IdleTimeout:  3 * time.Second,
	})

	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, r, srv.Handler)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
}
