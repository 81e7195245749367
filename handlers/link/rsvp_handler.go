package handlers

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicRSVPHandler accepts guest responses on public invitation pages.
type PublicRSVPHandler struct {
	rsvpService services.IRSVPService
}

func NewPublicRSVPHandler() *PublicRSVPHandler {
	return &PublicRSVPHandler{rsvpService: services.NewRSVPService()}
}

// SubmitRSVP handles POST /:slug/rsvp. The invitation page posts the form
// with fetch, so the handler answers JSON either way.
func (h *PublicRSVPHandler) SubmitRSVP(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var submission services.RSVPSubmission
	if err := c.BodyParser(&submission); err != nil {
		configslog.Log.Warn("SubmitRSVP: form could not be parsed", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form data"})
	}

	if err := h.rsvpService.Submit(c.UserContext(), slug, submission); err != nil {
		statusCode := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrWeddingNotFound):
			statusCode = fiber.StatusNotFound
		case errors.Is(err, services.ErrRSVPDeadlinePassed), errors.Is(err, services.ErrRSVPNotOpen),
			errors.Is(err, services.ErrRSVPInvalidInput):
			statusCode = fiber.StatusBadRequest
		case errors.Is(err, services.ErrGuestLimitReached):
			statusCode = fiber.StatusConflict
		default:
			configslog.Log.Error("SubmitRSVP Error", zap.String("slug", slug), zap.Error(err))
		}
		return c.Status(statusCode).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Your response has been recorded. Thank you!"})
}
