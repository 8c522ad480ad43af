package database

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/everestllcweb-png/backend/model"
	"github.com/google/uuid"
	"gorm.io/gorm/schema"
)

// MemoryRepository keeps a collection in process memory. Column names in
// filters and orderings are resolved through the GORM schema of T, so the
// same Filter works against both stores.
type MemoryRepository[T any] struct {
	mu      sync.RWMutex
	schema  *schema.Schema
	records map[string]T
	ids     []string // insertion order
	now     func() time.Time
}

var memorySchemaCache = &sync.Map{}

// NewMemoryRepository creates an empty in-memory collection for T
func NewMemoryRepository[T any]() *MemoryRepository[T] {
	sch, err := schema.Parse(new(T), memorySchemaCache, schema.NamingStrategy{})
	if err != nil {
		panic(fmt.Sprintf("memory repository: parse schema: %v", err))
	}
	if sch.PrioritizedPrimaryField == nil {
		panic(fmt.Sprintf("memory repository: %s has no primary key", sch.Name))
	}

	return &MemoryRepository[T]{
		schema:  sch,
		records: make(map[string]T),
		now:     time.Now,
	}
}

func (r *MemoryRepository[T]) Create(ctx context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(ctx, record)
}

// create inserts record; the caller holds the write lock.
func (r *MemoryRepository[T]) create(ctx context.Context, record *T) error {
	value := reflect.ValueOf(record).Elem()
	id := r.idOf(ctx, value)
	if id == "" {
		id = uuid.NewString()
		if err := r.schema.PrioritizedPrimaryField.Set(ctx, value, id); err != nil {
			return err
		}
	}
	if _, exists := r.records[id]; exists {
		return fmt.Errorf("%w: id %s", ErrDuplicate, id)
	}
	if err := r.checkUnique(ctx, id, value); err != nil {
		return err
	}

	now := r.now()
	r.setTime(ctx, value, "created_at", now, true)
	r.setTime(ctx, value, "updated_at", now, false)

	r.records[id] = *record
	r.ids = append(r.ids, id)
	return nil
}

func (r *MemoryRepository[T]) Find(ctx context.Context, filter Filter, order ...string) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := []T{}
	for _, id := range r.ids {
		record := r.records[id]
		ok, err := r.matches(ctx, &record, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, record)
		}
	}

	if err := r.sort(ctx, records, order); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MemoryRepository[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	records, err := r.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return &records[0], nil
}

func (r *MemoryRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *MemoryRepository[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	records, err := r.Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

func (r *MemoryRepository[T]) Save(ctx context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	value := reflect.ValueOf(record).Elem()
	id := r.idOf(ctx, value)
	if _, exists := r.records[id]; id == "" || !exists {
		return r.create(ctx, record)
	}

	if err := r.checkUnique(ctx, id, value); err != nil {
		return err
	}
	r.setTime(ctx, value, "updated_at", r.now(), false)
	r.records[id] = *record
	return nil
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return nil
	}
	delete(r.records, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository[T]) idOf(ctx context.Context, value reflect.Value) string {
	id, _ := r.schema.PrioritizedPrimaryField.ValueOf(ctx, value)
	s, _ := id.(string)
	return s
}

func (r *MemoryRepository[T]) setTime(ctx context.Context, value reflect.Value, column string, now time.Time, onlyIfZero bool) {
	field := r.schema.LookUpField(column)
	if field == nil {
		return
	}
	if _, zero := field.ValueOf(ctx, value); onlyIfZero && !zero {
		return
	}
	_ = field.Set(ctx, value, now)
}

// checkUnique enforces fields tagged `unique` against every other record.
func (r *MemoryRepository[T]) checkUnique(ctx context.Context, id string, value reflect.Value) error {
	for _, field := range r.schema.Fields {
		if !field.Unique || field.PrimaryKey {
			continue
		}
		candidate, _ := field.ValueOf(ctx, value)
		for otherID, other := range r.records {
			if otherID == id {
				continue
			}
			existing, _ := field.ValueOf(ctx, reflect.ValueOf(&other).Elem())
			if equalValues(existing, candidate) {
				return fmt.Errorf("%w: %s.%s", ErrDuplicate, r.schema.Table, field.DBName)
			}
		}
	}
	return nil
}

func (r *MemoryRepository[T]) matches(ctx context.Context, record *T, filter Filter) (bool, error) {
	value := reflect.ValueOf(record).Elem()
	for column, want := range filter {
		field := r.schema.LookUpField(column)
		if field == nil {
			return false, fmt.Errorf("unknown column %q on %s", column, r.schema.Table)
		}
		got, _ := field.ValueOf(ctx, value)
		if !equalValues(got, want) {
			return false, nil
		}
	}
	return true, nil
}

// sort applies ORDER BY style clauses such as "sort_order ASC".
// Ties keep insertion order.
func (r *MemoryRepository[T]) sort(ctx context.Context, records []T, order []string) error {
	type key struct {
		field *schema.Field
		desc  bool
	}

	keys := make([]key, 0, len(order))
	for _, clause := range order {
		for _, part := range strings.Split(clause, ",") {
			tokens := strings.Fields(part)
			if len(tokens) == 0 {
				continue
			}
			field := r.schema.LookUpField(strings.Trim(tokens[0], `"`))
			if field == nil {
				return fmt.Errorf("unknown order column %q on %s", tokens[0], r.schema.Table)
			}
			desc := len(tokens) > 1 && strings.EqualFold(tokens[1], "DESC")
			keys = append(keys, key{field: field, desc: desc})
		}
	}
	if len(keys) == 0 {
		return nil
	}

	sort.SliceStable(records, func(i, j int) bool {
		a := reflect.ValueOf(&records[i]).Elem()
		b := reflect.ValueOf(&records[j]).Elem()
		for _, k := range keys {
			av, _ := k.field.ValueOf(ctx, a)
			bv, _ := k.field.ValueOf(ctx, b)
			c := compareValues(av, bv)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return nil
}

func equalValues(a, b interface{}) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	return compareValues(a, b) == 0 && fmt.Sprint(a) == fmt.Sprint(b)
}

// compareValues orders the scalar kinds used by the models.
func compareValues(a, b interface{}) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return 0
	}
	switch {
	case isInt(av.Kind()) && isInt(bv.Kind()):
		return cmpOrdered(av.Int(), bv.Int())
	case isFloat(av.Kind()) && isFloat(bv.Kind()):
		return cmpOrdered(av.Float(), bv.Float())
	case av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool:
		return cmpOrdered(boolRank(av.Bool()), boolRank(bv.Bool()))
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return strings.Compare(av.String(), bv.String())
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func cmpOrdered[V int | int64 | float64](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// NewMemoryRepositories creates an empty in-memory repository for every collection
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Admins:       NewMemoryRepository[model.Admin](),
		Settings:     NewMemoryRepository[model.Settings](),
		Sliders:      NewMemoryRepository[model.Slider](),
		Universities: NewMemoryRepository[model.University](),
		Courses:      NewMemoryRepository[model.Course](),
		Destinations: NewMemoryRepository[model.Destination](),
		Classes:      NewMemoryRepository[model.Class](),
		Blogs:        NewMemoryRepository[model.Blog](),
		Reviews:      NewMemoryRepository[model.Review](),
		Appointments: NewMemoryRepository[model.Appointment](),
		Teams:        NewMemoryRepository[model.Team](),
	}
}
