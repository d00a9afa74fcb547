package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/dto"
	"github.com/littlesous/backend/internal/middleware"
	"github.com/littlesous/backend/internal/services"
)

type ChildHandler struct {
	childService *services.ChildService
}

func NewChildHandler(childService *services.ChildService) *ChildHandler {
	return &ChildHandler{childService: childService}
}

func (h *ChildHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.CreateChildRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	child, err := h.childService.Create(userID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(child)
}

func (h *ChildHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	children, err := h.childService.List(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"data": children})
}

func (h *ChildHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	childID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid child ID")
	}

	child, err := h.childService.Get(userID, childID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(child)
}

func (h *ChildHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	childID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid child ID")
	}

	var req dto.UpdateChildRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	child, err := h.childService.Update(userID, childID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(child)
}

func (h *ChildHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	childID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid child ID")
	}

	if err := h.childService.Delete(userID, childID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Child profile deleted"})
}
