package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrForeignKey = errors.New("foreign key constraint violated")
	ErrDuplicate  = errors.New("unique constraint violated")
	ErrCheck      = errors.New("check constraint violated")
)

// DependentsError is returned when a restricted delete finds child rows.
type DependentsError struct {
	Table      string
	ID         string
	Dependents []string
}

func (e *DependentsError) Error() string {
	return fmt.Sprintf("%s %s has dependents in %s", e.Table, e.ID, strings.Join(e.Dependents, ", "))
}

// Classify maps driver errors onto the package sentinels so callers can
// branch with errors.Is. Unknown errors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var depErr *DependentsError
	if errors.As(err, &depErr) || errors.Is(err, ErrNotFound) {
		return err
	}

	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated), strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case strings.Contains(msg, "CHECK constraint failed"), strings.Contains(msg, "NOT NULL constraint failed"):
		return fmt.Errorf("%w: %v", ErrCheck, err)
	default:
		return err
	}
}
