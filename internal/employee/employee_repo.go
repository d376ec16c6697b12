package employee

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	Update(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByEmployeeNo(ctx context.Context, employeeNo string) (*Employee, error)
	ExistsByNaturalKey(ctx context.Context, firstName, lastName string, dob time.Time) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn returns a session bound to ctx that runs on the caller's
// transaction when one was attached through WithTx.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.conn(ctx).Create(emp).Error
}

// Update overwrites the mutable columns only; id and employee_no stay put.
func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.conn(ctx).
		Model(emp).
		Select("first_name", "last_name", "dob", "doj", "salary", "updated_at").
		Updates(emp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	emps := make([]Employee, 0)
	err := r.conn(ctx).
		Order("id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var emp Employee
	if err := r.conn(ctx).First(&emp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindByEmployeeNo(ctx context.Context, employeeNo string) (*Employee, error) {
	var emp Employee
	if err := r.conn(ctx).First(&emp, "employee_no = ?", employeeNo).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) ExistsByNaturalKey(ctx context.Context, firstName, lastName string, dob time.Time) (bool, error) {
	var exists bool
	err := r.conn(ctx).
		Raw("SELECT EXISTS(SELECT 1 FROM employees WHERE first_name = ? AND last_name = ? AND dob = ?)",
			firstName, lastName, dob.Format(DateLayout)).
		Scan(&exists).Error
	return exists, err
}

func (r *repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn(ctx).
		Raw("SELECT EXISTS(SELECT 1 FROM employees WHERE id = ?)", id).
		Scan(&exists).Error
	return exists, err
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	return r.conn(ctx).Delete(&Employee{}, "id = ?", id).Error
}
