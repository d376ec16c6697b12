package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// IDSequence backs both the primary key and the employee number.
const IDSequence = "employees_id_seq"

type Employee struct {
	ID            int64           `gorm:"primaryKey;autoIncrement:false"`
	EmployeeNo    string          `gorm:"column:employee_no;size:64;not null;uniqueIndex:uq_employees_employee_no"`
	FirstName     string          `gorm:"column:first_name;not null"`
	LastName      string          `gorm:"column:last_name;not null"`
	DateOfBirth   time.Time       `gorm:"column:dob;type:date;not null"`
	DateOfJoining time.Time       `gorm:"column:doj;type:date;not null"`
	Salary        decimal.Decimal `gorm:"column:salary;type:numeric(15,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Employee) TableName() string {
	return "employees"
}
