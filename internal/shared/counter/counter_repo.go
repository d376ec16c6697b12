package counter

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	NextValue(ctx context.Context, sequence string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// NextValue draws the next number from a PostgreSQL sequence. Values are
// handed out exactly once, even when the surrounding transaction rolls back.
func (r *repository) NextValue(ctx context.Context, sequence string) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).
		Raw(`SELECT nextval(?::regclass)`, sequence).
		Scan(&nextValue).Error
	if err != nil {
		return 0, fmt.Errorf("counter: nextval %s: %w", sequence, err)
	}
	if nextValue <= 0 {
		return 0, fmt.Errorf("counter: sequence %s returned %d", sequence, nextValue)
	}

	return nextValue, nil
}
