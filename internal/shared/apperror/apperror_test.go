package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-emprec/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and message", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "already there", http.StatusConflict)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "already there", got.Message)
	})

	t.Run("wrapped app error is found through the chain", func(t *testing.T) {
		err := fmt.Errorf("service: %w", apperror.ErrNotFound)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.ErrNotFound.Message, got.Message)
	})

	t.Run("unknown error surfaces raw message as 500", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("connection reset by peer"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "connection reset by peer", got.Message)
	})
}

func TestAppError_WithMessage(t *testing.T) {
	base := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)

	specific := base.WithMessagef("Employee not found: %d", 42)

	assert.Equal(t, "Employee not found: 42", specific.Message)
	assert.Equal(t, http.StatusNotFound, specific.HTTPStatus)
	assert.ErrorIs(t, specific, base)
}

type bindTarget struct {
	FirstName string `json:"firstName" binding:"required"`
	Age       int    `json:"age" binding:"gte=0"`
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	err := binding.Validator.ValidateStruct(&bindTarget{Age: -1})
	mapped := apperror.MapValidationError(err)

	var appErr *apperror.AppError
	assert.ErrorAs(t, mapped, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "firstName : must not be blank")
	assert.Contains(t, appErr.Message, "age : must be greater than or equal to 0")
}

func TestMapValidationError_NonValidatorError(t *testing.T) {
	mapped := apperror.MapValidationError(errors.New("unexpected EOF"))

	assert.ErrorIs(t, mapped, apperror.ErrInvalidInput)
	assert.Contains(t, mapped.(*apperror.AppError).Message, "unexpected EOF")
}
