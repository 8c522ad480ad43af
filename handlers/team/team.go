package team

import (
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// TeamHandler handles staff bio requests
type TeamHandler struct {
	service *services.ContentService[model.Team]
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service *services.ContentService[model.Team]) *TeamHandler {
	return &TeamHandler{
		service: service,
	}
}

// TeamRequest represents the request body for creating or updating a team member
type TeamRequest struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	ImageURL *string `json:"imageUrl"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (r *TeamRequest) apply(member *model.Team) {
	validation.SetString(&member.Name, r.Name)
	validation.SetString(&member.Position, r.Position)
	validation.SetString(&member.ImageURL, r.ImageURL)
	validation.SetValue(&member.Order, r.Order)
	validation.SetValue(&member.IsActive, r.IsActive)
}

// ListTeam handles GET /api/team. Admin sessions also see hidden members.
func (h *TeamHandler) ListTeam(c *fiber.Ctx) error {
	members, err := h.service.List(c.UserContext(), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch team members")
	}
	return response.Success(c, members)
}

// ListAllTeam handles GET /api/team/all (admin only)
func (h *TeamHandler) ListAllTeam(c *fiber.Ctx) error {
	members, err := h.service.List(c.UserContext(), true)
	if err != nil {
		return response.FromError(c, err, "Failed to fetch team members")
	}
	return response.Success(c, members)
}

// CreateTeamMember handles POST /api/team
func (h *TeamHandler) CreateTeamMember(c *fiber.Ctx) error {
	var req TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member := &model.Team{IsActive: true}
	req.apply(member)

	created, err := h.service.Create(c.UserContext(), member)
	if err != nil {
		return response.FromError(c, err, "Failed to create team member")
	}
	return response.Created(c, created)
}

// UpdateTeamMember handles PUT /api/team/:id
func (h *TeamHandler) UpdateTeamMember(c *fiber.Ctx) error {
	var req TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update team member")
	}
	return response.SuccessWithMessage(c, "Team member updated successfully", updated)
}

// DeleteTeamMember handles DELETE /api/team/:id
func (h *TeamHandler) DeleteTeamMember(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err, "Failed to delete team member")
	}
	return response.SuccessWithMessage(c, "Team member deleted successfully", nil)
}
