package database

import (
	"context"

	"github.com/everestllcweb-png/backend/model"
	"gorm.io/gorm"
)

// Filter is a set of column = value conditions, all of which must hold.
type Filter map[string]interface{}

// Repository is the per-collection persistence contract used by the services.
// Implementations return ErrNotFound and ErrDuplicate for the matching failures.
type Repository[T any] interface {
	Create(ctx context.Context, record *T) error
	Find(ctx context.Context, filter Filter, order ...string) ([]T, error)
	FindOne(ctx context.Context, filter Filter) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	// Save writes every field of record, inserting it when the id is unknown.
	Save(ctx context.Context, record *T) error
	// Delete removes the record permanently. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error
}

// Repositories bundles one repository per collection.
type Repositories struct {
	Admins       Repository[model.Admin]
	Settings     Repository[model.Settings]
	Sliders      Repository[model.Slider]
	Universities Repository[model.University]
	Courses      Repository[model.Course]
	Destinations Repository[model.Destination]
	Classes      Repository[model.Class]
	Blogs        Repository[model.Blog]
	Reviews      Repository[model.Review]
	Appointments Repository[model.Appointment]
	Teams        Repository[model.Team]
}

// GormRepository implements Repository on top of a GORM connection
type GormRepository[T any] struct {
	db *gorm.DB
}

// NewGormRepository creates a repository for the table backing T
func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) Create(ctx context.Context, record *T) error {
	return translateError(r.db.WithContext(ctx).Create(record).Error)
}

func (r *GormRepository[T]) Find(ctx context.Context, filter Filter, order ...string) ([]T, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	for _, clause := range order {
		query = query.Order(clause)
	}

	records := []T{}
	if err := query.Find(&records).Error; err != nil {
		return nil, translateError(err)
	}
	return records, nil
}

func (r *GormRepository[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	query := r.db.WithContext(ctx)
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}

	var record T
	if err := query.Take(&record).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

func (r *GormRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&record).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

func (r *GormRepository[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, translateError(err)
	}
	return total, nil
}

func (r *GormRepository[T]) Save(ctx context.Context, record *T) error {
	return translateError(r.db.WithContext(ctx).Save(record).Error)
}

func (r *GormRepository[T]) Delete(ctx context.Context, id string) error {
	return translateError(r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error)
}

// NewGormRepositories wires a GORM repository for every collection
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Admins:       NewGormRepository[model.Admin](db),
		Settings:     NewGormRepository[model.Settings](db),
		Sliders:      NewGormRepository[model.Slider](db),
		Universities: NewGormRepository[model.University](db),
		Courses:      NewGormRepository[model.Course](db),
		Destinations: NewGormRepository[model.Destination](db),
		Classes:      NewGormRepository[model.Class](db),
		Blogs:        NewGormRepository[model.Blog](db),
		Reviews:      NewGormRepository[model.Review](db),
		Appointments: NewGormRepository[model.Appointment](db),
		Teams:        NewGormRepository[model.Team](db),
	}
}
