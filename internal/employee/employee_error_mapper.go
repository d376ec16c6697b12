package employee

import (
	"errors"
	"strings"

	employeeerrors "go-emprec/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
	pgNumericOverflow = "22003"

	constraintEmployeeNo = "uq_employees_employee_no"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == constraintEmployeeNo {
				return employeeerrors.ErrEmployeeNumberAlreadyExists
			}
			return employeeerrors.ErrEmployeeAlreadyExists
		case pgCheckViolation:
			return employeeerrors.ErrInvalidInput.WithMessage("salary : must be greater than or equal to 0")
		case pgNumericOverflow:
			return employeeerrors.ErrInvalidInput.WithMessage(salaryOutOfBounds)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintEmployeeNo) {
		return employeeerrors.ErrEmployeeNumberAlreadyExists
	}

	return err
}
