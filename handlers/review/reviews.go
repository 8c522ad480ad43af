package review

import (
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles student testimonial requests
type ReviewHandler struct {
	service *services.ContentService[model.Review]
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *services.ContentService[model.Review]) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

// ReviewRequest represents the request body for creating or updating a review
type ReviewRequest struct {
	StudentName *string `json:"studentName"`
	Testimonial *string `json:"testimonial"`
	Rating      *int    `json:"rating"`
	University  *string `json:"university"`
	Country     *string `json:"country"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

func (r *ReviewRequest) apply(review *model.Review) {
	validation.SetString(&review.StudentName, r.StudentName)
	validation.SetString(&review.Testimonial, r.Testimonial)
	validation.SetValue(&review.Rating, r.Rating)
	validation.SetString(&review.University, r.University)
	validation.SetString(&review.Country, r.Country)
	validation.SetString(&review.ImageURL, r.ImageURL)
	validation.SetValue(&review.IsActive, r.IsActive)
}

// ListReviews handles GET /api/reviews
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.service.List(c.UserContext(), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch reviews")
	}
	return response.Success(c, reviews)
}

// GetReview handles GET /api/reviews/:id
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	review, err := h.service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch review")
	}
	return response.Success(c, review)
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	review := &model.Review{IsActive: true}
	req.apply(review)

	created, err := h.service.Create(c.UserContext(), review)
	if err != nil {
		return response.FromError(c, err, "Failed to create review")
	}
	return response.Created(c, created)
}

// UpdateReview handles PUT /api/reviews/:id
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update review")
	}
	return response.SuccessWithMessage(c, "Review updated successfully", updated)
}

// DeleteReview handles DELETE /api/reviews/:id
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err, "Failed to delete review")
	}
	return response.SuccessWithMessage(c, "Review deleted successfully", nil)
}
