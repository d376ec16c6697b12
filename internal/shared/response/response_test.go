package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestError_Body(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fixed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	defer func() { now = func() time.Time { return time.Now().UTC() } }()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusServiceUnavailable, "Employee must be at least 18 years old at date of joining")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.True(t, c.IsAborted())

	var body ErrorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusServiceUnavailable, body.Status)
	assert.Equal(t, "Service Unavailable", body.Error)
	assert.Equal(t, "Employee must be at least 18 years old at date of joining", body.Message)
	assert.True(t, fixed.Equal(body.Timestamp))
}

func TestCreated_SetsLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, "/employees/7", gin.H{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/employees/7", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestNoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NoContent(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
