package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/utils/auth"
	"github.com/gofiber/fiber/v2/log"
)

// Seeder handles database seeding operations
type Seeder struct {
	repos *Repositories
}

// NewSeeder creates a new seeder instance
func NewSeeder(repos *Repositories) *Seeder {
	return &Seeder{repos: repos}
}

// EnsureAdmin creates the bootstrap admin when no admin with that username exists.
// An empty username or password disables the bootstrap.
func (s *Seeder) EnsureAdmin(username, password string) error {
	if username == "" || password == "" {
		log.Warn("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	ctx := context.Background()
	_, err := s.repos.Admins.FindOne(ctx, Filter{"username": username})
	if err == nil {
		log.Infof("Admin %q already exists, skipping", username)
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := s.repos.Admins.Create(ctx, &model.Admin{Username: username, PasswordHash: hash}); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	log.Infof("Created admin %q", username)
	return nil
}

// RunSeeds inserts sample site content into every empty collection.
// Collections that already hold records are left untouched.
func (s *Seeder) RunSeeds(ctx context.Context) error {
	log.Info("Starting database seeding...")

	if _, err := s.repos.Settings.FindByID(ctx, model.SettingsID); errors.Is(err, ErrNotFound) {
		settings := sampleSettings()
		if err := s.repos.Settings.Save(ctx, &settings); err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
		log.Info("Seeded settings")
	} else if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	if err := seedIfEmpty(ctx, "sliders", s.repos.Sliders, sampleSliders()); err != nil {
		return err
	}
	if err := seedIfEmpty(ctx, "universities", s.repos.Universities, sampleUniversities()); err != nil {
		return err
	}
	if err := seedIfEmpty(ctx, "courses", s.repos.Courses, sampleCourses()); err != nil {
		return err
	}
	if err := seedIfEmpty(ctx, "destinations", s.repos.Destinations, sampleDestinations()); err != nil {
		return err
	}
	if err := seedIfEmpty(ctx, "classes", s.repos.Classes, sampleClasses()); err != nil {
		return err
	}
	if err := seedIfEmpty(ctx, "blogs", s.repos.Blogs, sampleBlogs(time.Now().UTC())); err != nil {
		return err
	}
	if err := seedIfEmpty(ctx, "reviews", s.repos.Reviews, sampleReviews()); err != nil {
		return err
	}

	log.Info("Database seeding completed successfully")
	return nil
}

func seedIfEmpty[T any](ctx context.Context, name string, repo Repository[T], records []T) error {
	count, err := repo.Count(ctx, Filter{})
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", name, err)
	}
	if count > 0 {
		log.Infof("%s already seeded (%d records), skipping", name, count)
		return nil
	}

	for i := range records {
		if err := repo.Create(ctx, &records[i]); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
	}
	log.Infof("Seeded %d %s", len(records), name)
	return nil
}

func sampleSettings() model.Settings {
	settings := model.DefaultSettings()
	settings.Email = "info@everestworldwide.com"
	settings.Phone = "+977-1-4567890"
	settings.Mobile = settings.Phone
	settings.Address = "Kathmandu, Nepal"
	settings.Facebook = "https://facebook.com/everestworldwide"
	settings.FacebookURL = settings.Facebook
	settings.Instagram = "https://instagram.com/everestworldwide"
	settings.InstagramURL = settings.Instagram
	settings.Twitter = "https://twitter.com/everestworldwide"
	settings.Linkedin = "https://linkedin.com/company/everestworldwide"
	return settings
}

func sampleSliders() []model.Slider {
	return []model.Slider{
		{
			Title:       "Study Abroad Dreams",
			Subtitle:    "Make Them Reality",
			Description: "Expert guidance for international education opportunities",
			ImageURL:    "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=1920",
			ButtonText:  "Get Started",
			ButtonLink:  "/contact",
			Order:       1,
			IsActive:    true,
		},
		{
			Title:       "Top Universities Worldwide",
			Subtitle:    "Your Future Awaits",
			Description: "Partner institutions across USA, UK, Canada, Australia & more",
			ImageURL:    "https://images.unsplash.com/photo-1541339907198-e08756dedf3f?w=1920",
			ButtonText:  "Explore Universities",
			ButtonLink:  "/universities",
			Order:       2,
			IsActive:    true,
		},
	}
}

func sampleUniversities() []model.University {
	universities := []model.University{
		{
			Name:        "Harvard University",
			Country:     "USA",
			City:        "Cambridge, MA",
			Description: "Ivy League research university",
			ImageURL:    "https://images.unsplash.com/photo-1562774053-701939374585?w=800",
			Ranking:     "#1 USA",
			Website:     "https://www.harvard.edu",
		},
		{
			Name:        "University of Oxford",
			Country:     "UK",
			City:        "Oxford",
			Description: "Oldest university in the English-speaking world",
			ImageURL:    "https://images.unsplash.com/photo-1580229080131-e29e1e7f8c41?w=800",
			Ranking:     "#1 UK",
			Website:     "https://www.ox.ac.uk",
		},
		{
			Name:        "University of Toronto",
			Country:     "Canada",
			City:        "Toronto",
			Description: "Leading Canadian research university",
			ImageURL:    "https://images.unsplash.com/photo-1545231027-637d2f6210f8?w=800",
			Ranking:     "#1 Canada",
			Website:     "https://www.utoronto.ca",
		},
	}
	for i := range universities {
		universities[i].IsActive = true
		universities[i].Normalize()
	}
	return universities
}

func sampleCourses() []model.Course {
	courses := []model.Course{
		{Name: "Computer Science", Level: "Bachelor", Duration: "4 years", Description: "Software development, AI, and computing fundamentals", ImageURL: "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800"},
		{Name: "Business Administration", Level: "Master", Duration: "2 years", Description: "MBA program with global business focus", ImageURL: "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800"},
		{Name: "Medicine", Level: "Doctorate", Duration: "6 years", Description: "Medical degree program", ImageURL: "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=800"},
	}
	for i := range courses {
		courses[i].IsActive = true
		courses[i].Normalize()
	}
	return courses
}

func sampleDestinations() []model.Destination {
	return []model.Destination{
		{Name: "United States", Country: "USA", Description: "World-class universities and diverse study opportunities", ImageURL: "https://images.unsplash.com/photo-1485738422979-f5c462d49f74?w=800", UniversityCount: 1, IsActive: true},
		{Name: "United Kingdom", Country: "UK", Description: "Historic institutions and excellent education system", ImageURL: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800", UniversityCount: 1, IsActive: true},
		{Name: "Canada", Country: "Canada", Description: "High quality education and welcoming environment", ImageURL: "https://images.unsplash.com/photo-1503614472-8c93d56e92ce?w=800", UniversityCount: 1, IsActive: true},
		{Name: "Australia", Country: "Australia", Description: "Top-ranked universities and beautiful campuses", ImageURL: "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=800", IsActive: true},
	}
}

func sampleClasses() []model.Class {
	return []model.Class{
		{Name: "IELTS Preparation", Type: "English Test Prep", Description: "Comprehensive IELTS training for all modules", Duration: "8 weeks", Schedule: "Mon-Fri, 6:00 AM - 8:00 AM", Price: "NPR 15,000", ImageURL: "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=800", IsActive: true},
		{Name: "TOEFL Preparation", Type: "English Test Prep", Description: "Complete TOEFL iBT preparation course", Duration: "8 weeks", Schedule: "Mon-Fri, 8:00 AM - 10:00 AM", Price: "NPR 18,000", ImageURL: "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=800", IsActive: true},
		{Name: "SAT Preparation", Type: "Standardized Test", Description: "SAT Math and English preparation", Duration: "12 weeks", Schedule: "Sat-Sun, 10:00 AM - 2:00 PM", Price: "NPR 25,000", ImageURL: "https://images.unsplash.com/photo-1427504494785-3a9ca7044f45?w=800", IsActive: true},
	}
}

func sampleBlogs(now time.Time) []model.Blog {
	blogs := []model.Blog{
		{
			Title:       "Top 10 Universities in USA for International Students",
			Slug:        "top-10-universities-in-usa-for-international-students",
			Excerpt:     "Discover the best American universities welcoming international students",
			Content:     "The United States remains the top destination for international students...",
			Author:      "Admin",
			ImageURL:    "https://images.unsplash.com/photo-1562774053-701939374585?w=800",
			IsPublished: true,
		},
		{
			Title:       "How to Prepare for IELTS: Complete Guide",
			Slug:        "how-to-prepare-for-ielts-complete-guide",
			Excerpt:     "Step-by-step guide to ace your IELTS exam",
			Content:     "IELTS is one of the most important tests for studying abroad...",
			Author:      "Admin",
			ImageURL:    "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=800",
			IsPublished: true,
		},
	}
	for i := range blogs {
		blogs[i].Normalize()
		blogs[i].StampPublished(now)
	}
	return blogs
}

func sampleReviews() []model.Review {
	return []model.Review{
		{StudentName: "Rajesh Kumar", Rating: 5, Testimonial: "Excellent service! They helped me get admission to my dream university in the USA.", University: "Harvard University", Country: "USA", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400", IsActive: true},
		{StudentName: "Priya Sharma", Rating: 5, Testimonial: "Very professional and supportive throughout the entire process.", University: "University of Oxford", Country: "UK", ImageURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400", IsActive: true},
	}
}
