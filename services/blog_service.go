package services

import (
	"context"
	"strings"
	"time"

	"github.com/everestllcweb-png/backend/database"
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/utils/validation"
)

// SlugConflictMessage is returned when a blog slug is already taken
const SlugConflictMessage = "Slug already exists. Use a different title."

// BlogService manages blog posts. Drafts are only visible to admins.
type BlogService struct {
	*ContentService[model.Blog]
}

// NewBlogService creates a new blog service
func NewBlogService(repo database.Repository[model.Blog], v *validation.Validator) *BlogService {
	return &BlogService{
		ContentService: NewContentService(repo, v, ContentOptions[model.Blog]{
			Entity:          "Blog",
			Visibility:      VisibilityPolicy{Flag: model.FlagPublished},
			Order:           []string{model.OrderCreatedDesc},
			ConflictMessage: SlugConflictMessage,
			Prepare: func(b *model.Blog, now time.Time) {
				b.Normalize()
				b.StampPublished(now)
			},
		}),
	}
}

// GetBySlug returns the post addressed by slug, case-insensitively
func (s *BlogService) GetBySlug(ctx context.Context, slug string, isAdmin bool) (*model.Blog, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, notFound(s.entity)
	}
	return s.findOne(ctx, s.visibility.ResolveQuery(isAdmin, database.Filter{"slug": slug}))
}
