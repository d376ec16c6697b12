package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func healthRouter(checks map[string]Check) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealth(r, checks)
	return r
}

func TestHealthz(t *testing.T) {
	r := healthRouter(nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadyz(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all checks pass", func(t *testing.T) {
		r := healthRouter(map[string]Check{"postgres": ok, "redis": ok})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","checks":{"postgres":"ok","redis":"ok"}}`, w.Body.String())
	})

	t.Run("one check fails", func(t *testing.T) {
		r := healthRouter(map[string]Check{"postgres": ok, "redis": down})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable","checks":{"postgres":"ok","redis":"connection refused"}}`, w.Body.String())
	})
}
