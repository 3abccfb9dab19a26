package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cafes-backend/internal/model"
)

// Orderings used by list operations.
const (
	OrderByID         = "id ASC"
	OrderByDateNewest = "date DESC, id DESC"
)

// Filter restricts a list to rows whose foreign key equals Value.
type Filter struct {
	Column model.Column
	Value  int64
}

// By builds a Filter.
func By(column model.Column, id int64) Filter {
	return Filter{Column: column, Value: id}
}

// Resource implements list, get, create, full update, partial update and
// delete for one table. Every method issues its statements on the caller's
// context and returns the connection to the pool before returning.
type Resource[T any] struct {
	db    *gorm.DB
	order string
}

// NewResource returns a Resource for the table of T listed in order.
func NewResource[T any](db *gorm.DB, order string) *Resource[T] {
	return &Resource[T]{db: db, order: order}
}

// List returns every row matching all filters. No match yields an empty,
// non-nil slice.
func (r *Resource[T]) List(ctx context.Context, filters ...Filter) ([]T, error) {
	q := r.db.WithContext(ctx)
	for _, f := range filters {
		q = q.Where(clause.Eq{Column: clause.Column{Name: f.Column.Name()}, Value: f.Value})
	}

	items := make([]T, 0)
	if err := q.Order(r.order).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list failed: %w", classify(err))
	}
	return items, nil
}

// Get returns the row with the given id or ErrNotFound.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var item T
	if err := r.db.WithContext(ctx).Take(&item, id).Error; err != nil {
		var zero T
		return zero, classify(err)
	}
	return item, nil
}

// Create inserts item; the database assigns its id, which gorm writes back
// into item.
func (r *Resource[T]) Create(ctx context.Context, item *T) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("insert failed: %w", classify(err))
	}
	return nil
}

// Replace overwrites the given columns of row id. Zero affected rows is
// reported as ErrNotFound.
func (r *Resource[T]) Replace(ctx context.Context, id int64, values map[string]any) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("update failed: %w", classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Patch writes only the given assignments to row id and returns the row as
// stored afterwards. It fails with ErrInvalidInput when there is nothing to
// write and with ErrNotFound when the row does not exist.
func (r *Resource[T]) Patch(ctx context.Context, id int64, assignments []model.Assignment) (T, error) {
	var zero T
	if len(assignments) == 0 {
		return zero, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if _, err := r.Get(ctx, id); err != nil {
		return zero, err
	}

	values := make(map[string]any, len(assignments))
	for _, a := range assignments {
		values[a.Column.Name()] = a.Value
	}
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(values).Error; err != nil {
		return zero, fmt.Errorf("partial update failed: %w", classify(err))
	}
	return r.Get(ctx, id)
}

// Delete removes row id. Zero affected rows is reported as ErrNotFound.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete failed: %w", classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
