package employeeerrors

import (
	"go-emprec/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee data",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already exists with same firstName, lastName and DOB",
		http.StatusConflict,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusConflict,
	)
	// The age rule is reported as 503; clients rely on that status.
	ErrEmployeeUnderage = apperror.New(
		apperror.CodeUnderage,
		"Employee must be at least 18 years old at date of joining",
		http.StatusServiceUnavailable,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)

// NotFound names the missing identifier in the message.
func NotFound(id any) *apperror.AppError {
	return ErrEmployeeNotFound.WithMessagef("Employee not found: %v", id)
}

// NotFoundByID is the lookup-by-id form of NotFound.
func NotFoundByID(id int64) *apperror.AppError {
	return ErrEmployeeNotFound.WithMessagef("Employee not found with ID: %d", id)
}
