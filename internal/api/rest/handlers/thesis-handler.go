package handlers

import (
	"errors"
	"log"

	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/SundayYogurt/thesis_service/internal/helper/utils"
	"github.com/SundayYogurt/thesis_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	MsgSubmitted    = "Your thesis record has been submitted."
	MsgSubmitFailed = "Failed to submit thesis record. Please try again."
	MsgLoadFailed   = "Failed to load thesis submissions."
	MsgDeleted      = "Submission deleted successfully."
	MsgDeleteFailed = "Failed to delete submission."
)

type ThesisHandler struct {
	svc services.ThesisService
}

func NewThesisHandler(svc services.ThesisService) *ThesisHandler {
	return &ThesisHandler{svc: svc}
}

// SetupRoutes mounts the public form endpoint and the admin endpoints.
// submitGuards run before Submit (rate limiting), adminGuards before every
// admin route.
func (h *ThesisHandler) SetupRoutes(app *fiber.App, submitGuards []fiber.Handler, adminGuards []fiber.Handler) {
	api := app.Group("/api")

	// =========================
	// PUBLIC FORM
	// =========================
	submit := append(append([]fiber.Handler{}, submitGuards...), h.Submit)
	api.Post("/theses", submit...)

	// =========================
	// ADMIN
	// =========================
	admin := api.Group("/admin")
	for _, g := range adminGuards {
		admin.Use(g)
	}
	admin.Get("/theses", h.List)
	admin.Delete("/theses/:id", h.Delete)
}

func (h *ThesisHandler) Submit(ctx *fiber.Ctx) error {
	var requestBody dto.SubmitThesisRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	saved, err := h.svc.Submit(ctx.UserContext(), requestBody)
	if err != nil {
		var ve *dto.ValidationError
		if errors.As(err, &ve) {
			return utils.ResponseValidationError(ctx, ve)
		}
		log.Printf("Submission error: %v", err)
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, MsgSubmitFailed)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.ToThesisResponse(*saved))
}

func (h *ThesisHandler) List(ctx *fiber.Ctx) error {
	submissions, err := h.svc.List(ctx.UserContext())
	if err != nil {
		log.Printf("Error fetching submissions: %v", err)
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, MsgLoadFailed)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.ToThesisResponses(submissions))
}

func (h *ThesisHandler) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid submission id")
	}

	if err := h.svc.Delete(ctx.UserContext(), id); err != nil {
		log.Printf("Error deleting submission %s: %v", id, err)
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, MsgDeleteFailed)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, MsgDeleted)
}
