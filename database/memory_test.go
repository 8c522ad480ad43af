package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/everestllcweb-png/backend/model"
)

func TestMemoryRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[model.Slider]()

	for _, s := range []model.Slider{
		{Title: "third", Order: 3, IsActive: true},
		{Title: "first", Order: 1, IsActive: false},
		{Title: "second", Order: 2, IsActive: true},
	} {
		s := s
		if err := repo.Create(ctx, &s); err != nil {
			t.Fatalf("Create(%s) error = %v", s.Title, err)
		}
		if s.ID == "" || s.CreatedAt.IsZero() {
			t.Fatalf("Create did not assign id/timestamps: %+v", s.Base)
		}
	}

	all, err := repo.Find(ctx, Filter{}, "sort_order ASC")
	if err != nil {
		t.Fatal(err)
	}
	got := ""
	for _, s := range all {
		got += s.Title + ","
	}
	if got != "first,second,third," {
		t.Errorf("order = %q", got)
	}

	active, err := repo.Find(ctx, Filter{"is_active": true}, "sort_order DESC")
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 2 || active[0].Title != "third" {
		t.Errorf("active = %+v", active)
	}

	if n, _ := repo.Count(ctx, Filter{"is_active": false}); n != 1 {
		t.Errorf("Count(inactive) = %d, want 1", n)
	}
}

func TestMemoryRepositoryUnknownColumn(t *testing.T) {
	repo := NewMemoryRepository[model.Review]()
	if _, err := repo.Find(context.Background(), Filter{"no_such_column": 1}); err == nil {
		t.Fatal("expected error for unknown column")
	}
}

func TestMemoryRepositoryUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[model.Blog]()

	first := model.Blog{Title: "A", Slug: "same"}
	if err := repo.Create(ctx, &first); err != nil {
		t.Fatal(err)
	}
	second := model.Blog{Title: "B", Slug: "same"}
	if err := repo.Create(ctx, &second); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Create duplicate slug error = %v, want ErrDuplicate", err)
	}

	other := model.Blog{Title: "C", Slug: "other"}
	if err := repo.Create(ctx, &other); err != nil {
		t.Fatal(err)
	}
	other.Slug = "same"
	if err := repo.Save(ctx, &other); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Save duplicate slug error = %v, want ErrDuplicate", err)
	}

	// Saving a record with its own slug is fine.
	first.Title = "A2"
	if err := repo.Save(ctx, &first); err != nil {
		t.Fatalf("Save own slug error = %v", err)
	}
}

func TestMemoryRepositorySaveAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[model.Settings]()

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }

	settings := model.Settings{Base: model.Base{ID: model.SettingsID}, CompanyName: "Everest"}
	if err := repo.Save(ctx, &settings); err != nil {
		t.Fatalf("Save (insert) error = %v", err)
	}

	clock = clock.Add(time.Hour)
	settings.CompanyName = "Everest LLC"
	if err := repo.Save(ctx, &settings); err != nil {
		t.Fatalf("Save (update) error = %v", err)
	}

	stored, err := repo.FindByID(ctx, model.SettingsID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.CompanyName != "Everest LLC" {
		t.Errorf("CompanyName = %q", stored.CompanyName)
	}
	if !stored.UpdatedAt.After(stored.CreatedAt) {
		t.Errorf("UpdatedAt %v not after CreatedAt %v", stored.UpdatedAt, stored.CreatedAt)
	}

	if err := repo.Delete(ctx, model.SettingsID); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, model.SettingsID); err != nil {
		t.Errorf("second Delete error = %v, want nil", err)
	}
	if _, err := repo.FindByID(ctx, model.SettingsID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID after delete error = %v, want ErrNotFound", err)
	}
}

func TestTranslateError(t *testing.T) {
	if translateError(nil) != nil {
		t.Error("nil should stay nil")
	}
	if err := translateError(errors.New("boom")); errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
		t.Errorf("plain error translated to sentinel: %v", err)
	}
}

func TestMemoryRepositoryConcurrentSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[model.Slider]()

	for i := 0; i < 200; i++ {
		slider := model.Slider{Title: "race"}
		if err := repo.Create(ctx, &slider); err != nil {
			t.Fatal(err)
		}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			saved := slider
			saved.Title = "saved"
			_ = repo.Save(ctx, &saved)
		}()
		go func() {
			defer wg.Done()
			_ = repo.Delete(ctx, slider.ID)
		}()
		wg.Wait()

		// Whatever the interleaving, lookups by id and by filter agree.
		_, byIDErr := repo.FindByID(ctx, slider.ID)
		listed, err := repo.Find(ctx, Filter{"id": slider.ID})
		if err != nil {
			t.Fatal(err)
		}
		if (byIDErr == nil) != (len(listed) == 1) {
			t.Fatalf("iteration %d: FindByID err = %v but Find returned %d records", i, byIDErr, len(listed))
		}
		_ = repo.Delete(ctx, slider.ID)
	}
}
