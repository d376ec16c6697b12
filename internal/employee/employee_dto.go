package employee

import "github.com/shopspring/decimal"

// DateLayout is the wire format of dob and doj.
const DateLayout = "2006-01-02"

type EmployeeRequest struct {
	FirstName string           `json:"firstName" binding:"required"`
	LastName  string           `json:"lastName" binding:"required"`
	DOB       string           `json:"dob" binding:"required"`
	DOJ       string           `json:"doj" binding:"required"`
	Salary    *decimal.Decimal `json:"salary" binding:"required"`
}

type EmployeeResponse struct {
	ID         int64           `json:"id"`
	EmployeeNo string          `json:"employeeNo"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	DOB        string          `json:"dob"`
	DOJ        string          `json:"doj"`
	Salary     decimal.Decimal `json:"salary"`
}
