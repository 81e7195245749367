package handlers

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InvitationPageHandler serves public invitation pages by slug.
type InvitationPageHandler struct {
	pageService services.IPageService
}

func NewInvitationPageHandler() *InvitationPageHandler {
	return &InvitationPageHandler{pageService: services.NewPageService()}
}

// HandleSlug resolves :slug into a public page. An expired or unfinished
// invitation renders a holding page instead of the document; the document
// itself only renders through the resolved theme view.
func (h *InvitationPageHandler) HandleSlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if len(slug) != 11 {
		return h.renderNotFound(c, "Invitation not found")
	}

	page, err := h.pageService.GetPublicPage(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrWeddingNotFound) {
			return h.renderNotFound(c, "Invitation not found")
		}
		configslog.Log.Error("HandleSlug: page build failed", zap.String("slug", slug), zap.Error(err))
		return h.renderError(c, "The invitation could not be loaded.")
	}

	switch page.Status {
	case services.PageExpired:
		return c.Status(fiber.StatusGone).Render("public/expired", fiber.Map{
			"Title": "Undangan Kedaluwarsa",
		}, "layouts/public_layout")
	case services.PagePreparing:
		return c.Render("public/preparing", fiber.Map{
			"Title": "Undangan Sedang Disiapkan",
		}, "layouts/public_layout")
	default:
		return c.Render(page.Theme.View, fiber.Map{
			"Title":    page.Data.Groom.NickName + " & " + page.Data.Bride.NickName,
			"Wedding":  page.Wedding,
			"Data":     page.Data,
			"Sections": page.Sections,
			"Messages": page.Messages,
			"RSVPOpen": page.RSVPOpen,
		}, "layouts/public_layout")
	}
}

func (h *InvitationPageHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Tidak Ditemukan",
		"Message": message,
	}, "layouts/error_layout")
}

func (h *InvitationPageHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Terjadi Kesalahan",
		"Message": message,
	}, "layouts/error_layout")
}
