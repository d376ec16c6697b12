package employee

import (
	"fmt"
	"strings"
	"time"

	employeeerrors "go-emprec/internal/employee/errors"

	"github.com/shopspring/decimal"
)

// MinimumJoiningAge is the youngest age, in whole years, accepted at doj.
const MinimumJoiningAge = 18

// Salary must fit the numeric(15,2) column.
const (
	SalaryIntegerDigits  = 13
	SalaryFractionDigits = 2
)

var salaryLimit = decimal.New(1, SalaryIntegerDigits)

// Fields is a request after validation: names trimmed, dates parsed.
type Fields struct {
	FirstName     string
	LastName      string
	DateOfBirth   time.Time
	DateOfJoining time.Time
	Salary        decimal.Decimal
}

// ValidateRequest checks every field of req and reports all violations in
// a single InvalidInput error.
func ValidateRequest(req EmployeeRequest) (Fields, error) {
	var (
		f          Fields
		violations []string
	)

	f.FirstName = strings.TrimSpace(req.FirstName)
	if f.FirstName == "" {
		violations = append(violations, "firstName : must not be blank")
	}

	f.LastName = strings.TrimSpace(req.LastName)
	if f.LastName == "" {
		violations = append(violations, "lastName : must not be blank")
	}

	var msg string
	if f.DateOfBirth, msg = parseDate(req.DOB); msg != "" {
		violations = append(violations, "dob : "+msg)
	}
	if f.DateOfJoining, msg = parseDate(req.DOJ); msg != "" {
		violations = append(violations, "doj : "+msg)
	}

	switch {
	case req.Salary == nil:
		violations = append(violations, "salary : must not be null")
	case req.Salary.IsNegative():
		violations = append(violations, "salary : must be greater than or equal to 0")
	case req.Salary.GreaterThanOrEqual(salaryLimit) || !req.Salary.Equal(req.Salary.Truncate(SalaryFractionDigits)):
		violations = append(violations, salaryOutOfBounds)
	default:
		f.Salary = *req.Salary
	}

	if len(violations) > 0 {
		return Fields{}, employeeerrors.ErrInvalidInput.WithMessage(strings.Join(violations, ", "))
	}
	return f, nil
}

var salaryOutOfBounds = fmt.Sprintf("salary : numeric value out of bounds (<%d digits>.<%d digits> expected)",
	SalaryIntegerDigits, SalaryFractionDigits)

func parseDate(raw string) (time.Time, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, "must not be null"
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Sprintf("must be a date in %s format", "YYYY-MM-DD")
	}
	return t, ""
}

// AgeAtJoin returns the whole calendar years between dob and doj. A year
// only counts once its anniversary has been reached, so a 29 February
// birthday is reached on 1 March in non-leap years.
func AgeAtJoin(dob, doj time.Time) int {
	years := doj.Year() - dob.Year()
	if doj.Month() < dob.Month() || (doj.Month() == dob.Month() && doj.Day() < dob.Day()) {
		years--
	}
	return years
}

// IsEligible reports whether someone born on dob may join on doj.
func IsEligible(dob, doj time.Time) bool {
	return AgeAtJoin(dob, doj) >= MinimumJoiningAge
}
