package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/dto"
	"github.com/littlesous/backend/internal/middleware"
	"github.com/littlesous/backend/internal/services"
)

type RecipeHandler struct {
	recipeService *services.RecipeService
}

func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) ListByChild(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	childID, err := uuid.Parse(c.Params("childId"))
	if err != nil {
		return badRequest(c, "Invalid child ID")
	}

	var recipes interface{}
	if c.QueryBool("favorites") {
		recipes, err = h.recipeService.ListFavoritesByChild(userID, childID)
	} else {
		recipes, err = h.recipeService.ListByChild(userID, childID)
	}
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"data": recipes})
}

func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	recipeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid recipe ID")
	}

	recipe, err := h.recipeService.Get(userID, recipeID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(recipe)
}

func (h *RecipeHandler) SetFavorite(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	recipeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid recipe ID")
	}

	var req dto.SetFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	recipe, err := h.recipeService.SetFavorite(userID, recipeID, req.IsFavorite)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(recipe)
}

func (h *RecipeHandler) SetPrinted(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	recipeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid recipe ID")
	}

	var req dto.SetPrintedRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	recipe, err := h.recipeService.SetPrinted(userID, recipeID, req.IsPrinted)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(recipe)
}

func (h *RecipeHandler) SetMemory(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	recipeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid recipe ID")
	}

	var req dto.SetMemoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	recipe, err := h.recipeService.SetMemory(userID, recipeID, req.ChildMemory)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(recipe)
}

func (h *RecipeHandler) SetTemplate(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	recipeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid recipe ID")
	}

	var req dto.SetTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	recipe, err := h.recipeService.SetTemplate(userID, recipeID, req.TemplateType)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(recipe)
}
