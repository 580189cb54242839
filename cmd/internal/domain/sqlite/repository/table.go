package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"simplecrm/cmd/internal/domain/policy"
)

// Ordering is the column a listing is sorted by. Column must come from a
// whitelist, never straight from user input.
type Ordering struct {
	Column string
	Desc   bool
}

func (o Ordering) orderBy() clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc}
}

func eq(column string, value any) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}

func findAll[T any](ctx context.Context, db *gorm.DB, ord Ordering, conds ...clause.Expression) ([]*T, error) {
	rows := []*T{}
	q := db.WithContext(ctx)
	for _, cond := range conds {
		q = q.Where(cond)
	}
	if ord.Column != "" {
		q = q.Order(ord.orderBy())
	}

	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// findOne returns (nil, nil) when no row matches.
func findOne[T any](ctx context.Context, db *gorm.DB, key string, id any) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where(eq(key, id)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &row, nil
}

func exists(ctx context.Context, db *gorm.DB, table, column string, value any) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Table(table).
		Where(eq(column, value)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func create[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return Classify(db.WithContext(ctx).Omit(clause.Associations).Create(row).Error)
}

// deleteByRule removes the row keyed by id following rule: restricted
// children abort the delete, cascaded children go first. Everything runs in
// one transaction.
func deleteByRule(ctx context.Context, db *gorm.DB, rule policy.DeleteRule, id any) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var blocking []string
		for _, dep := range rule.Restricted {
			var count int64
			if err := tx.Table(dep.Table).Where(eq(dep.Column, id)).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				blocking = append(blocking, dep.Table)
			}
		}

		if len(blocking) > 0 {
			return &DependentsError{Table: rule.Table, ID: fmt.Sprint(id), Dependents: blocking}
		}

		for _, dep := range rule.Cascaded {
			err := tx.Exec("DELETE FROM ? WHERE ? = ?",
				clause.Table{Name: dep.Table}, clause.Column{Name: dep.Column}, id).Error
			if err != nil {
				return err
			}
		}

		res := tx.Exec("DELETE FROM ? WHERE ? = ?",
			clause.Table{Name: rule.Table}, clause.Column{Name: rule.Key}, id)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return Classify(err)
}
