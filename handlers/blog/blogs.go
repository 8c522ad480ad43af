package blog

import (
	"time"

	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles blog post requests
type BlogHandler struct {
	service *services.BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{
		service: service,
	}
}

// BlogRequest represents the request body for creating or updating a post.
// publishedAt is filled in on first publish when the client leaves it out.
type BlogRequest struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	Author      *string    `json:"author"`
	ImageURL    *string    `json:"imageUrl"`
	Category    *string    `json:"category"`
	IsPublished *bool      `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (r *BlogRequest) apply(b *model.Blog) {
	validation.SetString(&b.Title, r.Title)
	validation.SetString(&b.Slug, r.Slug)
	validation.SetString(&b.Excerpt, r.Excerpt)
	// Content is rich text; keep its whitespace
	validation.SetValue(&b.Content, r.Content)
	validation.SetString(&b.Author, r.Author)
	validation.SetString(&b.ImageURL, r.ImageURL)
	validation.SetString(&b.Category, r.Category)
	validation.SetValue(&b.IsPublished, r.IsPublished)
	if r.PublishedAt != nil {
		publishedAt := r.PublishedAt.UTC()
		b.PublishedAt = &publishedAt
	}
}

// ListBlogs handles GET /api/blogs. Drafts are only listed for admins.
func (h *BlogHandler) ListBlogs(c *fiber.Ctx) error {
	blogs, err := h.service.List(c.UserContext(), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch blogs")
	}
	return response.Success(c, blogs)
}

// GetBlog handles GET /api/blogs/:id
func (h *BlogHandler) GetBlog(c *fiber.Ctx) error {
	blog, err := h.service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch blog")
	}
	return response.Success(c, blog)
}

// GetBlogBySlug handles GET /api/blogs/slug/:slug
func (h *BlogHandler) GetBlogBySlug(c *fiber.Ctx) error {
	blog, err := h.service.GetBySlug(c.UserContext(), c.Params("slug"), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch blog")
	}
	return response.Success(c, blog)
}

// CreateBlog handles POST /api/blogs
func (h *BlogHandler) CreateBlog(c *fiber.Ctx) error {
	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	blog := &model.Blog{}
	req.apply(blog)

	created, err := h.service.Create(c.UserContext(), blog)
	if err != nil {
		return response.FromError(c, err, "Failed to create blog")
	}
	return response.Created(c, created)
}

// UpdateBlog handles PUT /api/blogs/:id
func (h *BlogHandler) UpdateBlog(c *fiber.Ctx) error {
	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update blog")
	}
	return response.SuccessWithMessage(c, "Blog updated successfully", updated)
}

// DeleteBlog handles DELETE /api/blogs/:id
func (h *BlogHandler) DeleteBlog(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err, "Failed to delete blog")
	}
	return response.SuccessWithMessage(c, "Blog deleted successfully", nil)
}
