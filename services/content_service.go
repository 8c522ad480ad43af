package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/everestllcweb-png/backend/database"
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2/log"
)

// ContentService is the CRUD service shared by every site collection.
type ContentService[T any] struct {
	entity     string
	repo       database.Repository[T]
	validator  *validation.Validator
	visibility VisibilityPolicy
	order      []string

	// prepare normalizes a record right before validation on create and update
	prepare func(record *T, now time.Time)
	// conflictMessage is returned when a write hits a unique constraint
	conflictMessage string

	now func() time.Time
}

// ContentOptions configures a ContentService
type ContentOptions[T any] struct {
	Entity          string
	Visibility      VisibilityPolicy
	Order           []string
	Prepare         func(record *T, now time.Time)
	ConflictMessage string
}

// NewContentService creates a CRUD service over repo
func NewContentService[T any](repo database.Repository[T], v *validation.Validator, opts ContentOptions[T]) *ContentService[T] {
	if opts.ConflictMessage == "" {
		opts.ConflictMessage = opts.Entity + " already exists"
	}
	return &ContentService[T]{
		entity:          opts.Entity,
		repo:            repo,
		validator:       v,
		visibility:      opts.Visibility,
		order:           opts.Order,
		prepare:         opts.Prepare,
		conflictMessage: opts.ConflictMessage,
		now:             time.Now,
	}
}

// SetClock replaces the time source used for stamping
func (s *ContentService[T]) SetClock(now func() time.Time) {
	s.now = now
}

// List returns every record the caller may see, in display order
func (s *ContentService[T]) List(ctx context.Context, isAdmin bool) ([]T, error) {
	records, err := s.repo.Find(ctx, s.visibility.ResolveQuery(isAdmin, nil), s.order...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.entity, err)
	}
	return records, nil
}

// Get returns one record. Records hidden from the caller are reported as not found.
func (s *ContentService[T]) Get(ctx context.Context, id string, isAdmin bool) (*T, error) {
	return s.findOne(ctx, s.visibility.ResolveQuery(isAdmin, database.Filter{"id": id}))
}

func (s *ContentService[T]) findOne(ctx context.Context, filter database.Filter) (*T, error) {
	record, err := s.repo.FindOne(ctx, filter)
	if errors.Is(err, database.ErrNotFound) {
		return nil, notFound(s.entity)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.entity, err)
	}
	return record, nil
}

// Create normalizes, validates and stores a new record
func (s *ContentService[T]) Create(ctx context.Context, record *T) (*T, error) {
	if err := s.check(record); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, s.writeError("create", err)
	}
	return record, nil
}

// Update loads the record, lets apply change the fields present in the
// request and stores the result. Fields apply does not touch keep their value.
func (s *ContentService[T]) Update(ctx context.Context, id string, apply func(record *T)) (*T, error) {
	record, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, notFound(s.entity)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.entity, err)
	}

	if apply != nil {
		apply(record)
	}
	if err := s.check(record); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, s.writeError("update", err)
	}
	return record, nil
}

// Delete removes a record. Deleting an unknown id succeeds.
func (s *ContentService[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.entity, err)
	}
	return nil
}

func (s *ContentService[T]) check(record *T) error {
	if s.prepare != nil {
		s.prepare(record, s.now())
	}
	if err := s.validator.ValidateStruct(record); err != nil {
		return invalidRecord(err)
	}
	return nil
}

func (s *ContentService[T]) writeError(op string, err error) error {
	if errors.Is(err, database.ErrDuplicate) {
		log.Warnf("%s %s rejected: %v", op, s.entity, err)
		return NewError(ErrConflict, s.conflictMessage, err)
	}
	return fmt.Errorf("failed to %s %s: %w", op, s.entity, err)
}

// Services bundles one service per collection
type Services struct {
	Auth         *AuthService
	Settings     *SettingsService
	Sliders      *ContentService[model.Slider]
	Universities *ContentService[model.University]
	Courses      *ContentService[model.Course]
	Destinations *ContentService[model.Destination]
	Classes      *ContentService[model.Class]
	Blogs        *BlogService
	Reviews      *ContentService[model.Review]
	Appointments *AppointmentService
	Teams        *ContentService[model.Team]
}

// NewServices wires every service to its repository
func NewServices(repos *database.Repositories, v *validation.Validator) *Services {
	active := VisibilityPolicy{Flag: model.FlagActive}

	return &Services{
		Auth:     NewAuthService(repos.Admins),
		Settings: NewSettingsService(repos.Settings),
		Sliders: NewContentService(repos.Sliders, v, ContentOptions[model.Slider]{
			Entity:     "Slider",
			Visibility: active,
			Order:      []string{model.OrderDisplay},
		}),
		Universities: NewContentService(repos.Universities, v, ContentOptions[model.University]{
			Entity:     "University",
			Visibility: active,
			Order:      []string{model.OrderCreatedAsc},
			Prepare:    func(u *model.University, _ time.Time) { u.Normalize() },
		}),
		Courses: NewContentService(repos.Courses, v, ContentOptions[model.Course]{
			Entity:     "Course",
			Visibility: active,
			Order:      []string{model.OrderCreatedAsc},
			Prepare:    func(c *model.Course, _ time.Time) { c.Normalize() },
		}),
		Destinations: NewContentService(repos.Destinations, v, ContentOptions[model.Destination]{
			Entity:     "Destination",
			Visibility: active,
			Order:      []string{model.OrderCreatedAsc},
		}),
		Classes: NewContentService(repos.Classes, v, ContentOptions[model.Class]{
			Entity:     "Class",
			Visibility: active,
			Order:      []string{model.OrderCreatedAsc},
		}),
		Blogs: NewBlogService(repos.Blogs, v),
		Reviews: NewContentService(repos.Reviews, v, ContentOptions[model.Review]{
			Entity:     "Review",
			Visibility: active,
			Order:      []string{model.OrderCreatedDesc},
		}),
		Appointments: NewAppointmentService(repos.Appointments, v),
		Teams: NewContentService(repos.Teams, v, ContentOptions[model.Team]{
			Entity:     "Team member",
			Visibility: active,
			Order:      []string{model.OrderDisplay, model.OrderCreatedDesc},
		}),
	}
}
