package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/dto"
	"github.com/littlesous/backend/internal/middleware"
	"github.com/littlesous/backend/internal/services"
)

type InterviewHandler struct {
	interviewService *services.InterviewService
}

func NewInterviewHandler(interviewService *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

// Start begins an interview for a child, or returns the active one.
func (h *InterviewHandler) Start(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	childID, err := uuid.Parse(c.Params("childId"))
	if err != nil {
		return badRequest(c, "Invalid child ID")
	}

	interview, err := h.interviewService.Start(c.Context(), userID, childID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(interview)
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid interview ID")
	}

	interview, err := h.interviewService.Get(userID, interviewID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(interview)
}

func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid interview ID")
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.QuestionID == "" {
		return badRequest(c, "question_id is required")
	}

	interview, err := h.interviewService.SubmitAnswer(userID, interviewID, req.QuestionID, req.Answer)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(interview)
}

func (h *InterviewHandler) Complete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid interview ID")
	}

	recipe, interview, err := h.interviewService.Complete(c.Context(), userID, interviewID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"recipe": recipe, "interview": interview})
}

func (h *InterviewHandler) Abandon(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid interview ID")
	}

	interview, err := h.interviewService.Abandon(userID, interviewID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(interview)
}
