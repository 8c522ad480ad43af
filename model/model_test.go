package model

import (
	"testing"
	"time"
)

func TestUniversityNormalize(t *testing.T) {
	tests := []struct {
		name           string
		in             University
		wantLogo       string
		wantImage      string
		wantWebsiteURL string
		wantWebsite    string
	}{
		{
			name:           "legacy only",
			in:             University{ImageURL: "img.png", Website: "https://uni.edu"},
			wantLogo:       "img.png",
			wantImage:      "img.png",
			wantWebsiteURL: "https://uni.edu",
			wantWebsite:    "https://uni.edu",
		},
		{
			name:           "current only",
			in:             University{LogoURL: "logo.png", WebsiteURL: "https://new.edu"},
			wantLogo:       "logo.png",
			wantImage:      "logo.png",
			wantWebsiteURL: "https://new.edu",
			wantWebsite:    "https://new.edu",
		},
		{
			name:           "both set and different",
			in:             University{LogoURL: "logo.png", ImageURL: "img.png", WebsiteURL: "https://new.edu", Website: "https://old.edu"},
			wantLogo:       "logo.png",
			wantImage:      "img.png",
			wantWebsiteURL: "https://new.edu",
			wantWebsite:    "https://old.edu",
		},
		{
			name: "both empty",
			in:   University{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.in
			u.Normalize()
			if u.LogoURL != tt.wantLogo || u.ImageURL != tt.wantImage {
				t.Errorf("logo/image = %q/%q, want %q/%q", u.LogoURL, u.ImageURL, tt.wantLogo, tt.wantImage)
			}
			if u.WebsiteURL != tt.wantWebsiteURL || u.Website != tt.wantWebsite {
				t.Errorf("websiteUrl/website = %q/%q, want %q/%q", u.WebsiteURL, u.Website, tt.wantWebsiteURL, tt.wantWebsite)
			}

			// Normalizing twice changes nothing.
			again := u
			again.Normalize()
			if again != u {
				t.Errorf("Normalize is not idempotent: %+v vs %+v", again, u)
			}
		})
	}
}

func TestCourseNormalize(t *testing.T) {
	c := Course{Level: "Bachelor"}
	c.Normalize()
	if c.Category != "Bachelor" || c.Level != "Bachelor" {
		t.Errorf("level only: category=%q level=%q", c.Category, c.Level)
	}

	c = Course{Category: "Master"}
	c.Normalize()
	if c.Level != "Master" {
		t.Errorf("category only: level=%q", c.Level)
	}

	c = Course{Category: "Master", Level: "Diploma"}
	c.Normalize()
	if c.Category != "Master" || c.Level != "Diploma" {
		t.Errorf("both set: category=%q level=%q", c.Category, c.Level)
	}
}

func TestBlogNormalize(t *testing.T) {
	b := Blog{Title: "  Study in Japan ", Slug: "  Study-In-JAPAN  "}
	b.Normalize()
	if b.Slug != "study-in-japan" {
		t.Errorf("slug = %q", b.Slug)
	}
	if b.Title != "Study in Japan" {
		t.Errorf("title = %q", b.Title)
	}
}

func TestBlogStampPublished(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	draft := Blog{}
	draft.StampPublished(now)
	if draft.PublishedAt != nil {
		t.Error("draft must not get a publish time")
	}

	published := Blog{IsPublished: true}
	published.StampPublished(now)
	if published.PublishedAt == nil || !published.PublishedAt.Equal(now) {
		t.Errorf("PublishedAt = %v, want %v", published.PublishedAt, now)
	}

	later := now.Add(48 * time.Hour)
	published.StampPublished(later)
	if !published.PublishedAt.Equal(now) {
		t.Errorf("PublishedAt overwritten: %v", published.PublishedAt)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.ID != SettingsID {
		t.Errorf("ID = %q", s.ID)
	}
	if s.CompanyName == "" || s.Tagline == "" {
		t.Errorf("fallback settings missing company name or tagline: %+v", s)
	}
}

func TestBaseBeforeCreateAssignsID(t *testing.T) {
	var b Base
	if err := b.BeforeCreate(nil); err != nil {
		t.Fatal(err)
	}
	if len(b.ID) != 36 {
		t.Errorf("ID = %q, want a UUID", b.ID)
	}

	kept := Base{ID: SettingsID}
	_ = kept.BeforeCreate(nil)
	if kept.ID != SettingsID {
		t.Errorf("existing ID replaced: %q", kept.ID)
	}
}
