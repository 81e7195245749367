package handlers

import (
	"errors"
	"net/http"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelWeddingHandler lets a member edit their single invitation.
type PanelWeddingHandler struct {
	userService     services.IUserService
	weddingService  services.IWeddingService
	templateService services.ITemplateService
}

func NewPanelWeddingHandler() *PanelWeddingHandler {
	return &PanelWeddingHandler{
		userService:     services.NewUserService(),
		weddingService:  services.NewWeddingService(),
		templateService: services.NewTemplateService(),
	}
}

// ShowEditor renders the invitation editor with the current document.
func (h *PanelWeddingHandler) ShowEditor(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	wedding, err := h.weddingService.GetOrCreateForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("ShowEditor: invitation lookup failed", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Your invitation could not be loaded.")
		return c.Redirect("/panel/home")
	}

	user, err := h.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("ShowEditor: user lookup failed", zap.Uint("userID", userID), zap.Error(err))
		return c.Redirect("/panel/home")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":   "Edit Undangan",
		"Wedding": wedding,
		"Data":    wedding.Data,
		"Limits":  user.EffectiveLimits(),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "panel/wedding/editor", "layouts/panel_layout", renderData, http.StatusOK)
}

// UpdateData saves the edited document. The editor posts the full document
// as JSON; validation errors come back as 4xx JSON so the editor can show
// them inline.
func (h *PanelWeddingHandler) UpdateData(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
	}

	var data models.WeddingData
	if err := c.BodyParser(&data); err != nil {
		configslog.Log.Warn("UpdateData: document could not be parsed", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid invitation document"})
	}

	if err := h.weddingService.UpdateData(c.UserContext(), userID, data); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrGalleryLimitExceeded) || errors.Is(err, services.ErrFeatureNotInPlan) ||
			errors.Is(err, services.ErrWeddingInvalidInput) {
			status = fiber.StatusUnprocessableEntity
		} else if errors.Is(err, services.ErrWeddingNotFound) {
			status = fiber.StatusNotFound
		} else {
			configslog.Log.Error("UpdateData failed", zap.Uint("userID", userID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Invitation saved."})
}

// ShowTemplates lists the catalog templates available to the member's plan.
func (h *PanelWeddingHandler) ShowTemplates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	user, err := h.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("ShowTemplates: user lookup failed", zap.Uint("userID", userID), zap.Error(err))
		return c.Redirect("/panel/home")
	}

	templates, err := h.templateService.GetAvailableForPlan(c.UserContext(), user.Plan)
	if err != nil {
		configslog.Log.Error("ShowTemplates: catalog lookup failed", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Templates could not be loaded.")
		return c.Redirect("/panel/home")
	}

	wedding, err := h.weddingService.GetOrCreateForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("ShowTemplates: invitation lookup failed", zap.Uint("userID", userID), zap.Error(err))
		return c.Redirect("/panel/home")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":     "Pilih Template",
		"Templates": templates,
		"Wedding":   wedding,
		"Plan":      user.Plan,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "panel/wedding/templates", "layouts/panel_layout", renderData, http.StatusOK)
}

// SelectTemplate assigns a catalog template to the invitation.
func (h *PanelWeddingHandler) SelectTemplate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid template.")
		return c.Redirect("/panel/wedding/templates", fiber.StatusSeeOther)
	}

	if err := h.weddingService.SelectTemplate(c.UserContext(), userID, uint(id)); err != nil {
		errMsg := "Template could not be selected: " + err.Error()
		if !errors.Is(err, services.ErrTemplateNotAvailable) && !errors.Is(err, services.ErrTemplateNotFound) {
			configslog.Log.Error("SelectTemplate failed", zap.Uint("userID", userID), zap.Int("templateID", id), zap.Error(err))
			errMsg = "Template could not be selected."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/wedding/templates", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Template selected.")
	return c.Redirect("/panel/wedding", fiber.StatusFound)
}

// Publish makes the invitation reachable on its public address.
func (h *PanelWeddingHandler) Publish(c *fiber.Ctx) error {
	return h.setPublished(c, true, "Invitation published.")
}

// Unpublish takes the invitation offline.
func (h *PanelWeddingHandler) Unpublish(c *fiber.Ctx) error {
	return h.setPublished(c, false, "Invitation unpublished.")
}

func (h *PanelWeddingHandler) setPublished(c *fiber.Ctx, published bool, successMsg string) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	if err := h.weddingService.SetPublished(c.UserContext(), userID, published); err != nil {
		errMsg := "Publish state could not be changed: " + err.Error()
		if !errors.Is(err, services.ErrWeddingInvalidInput) && !errors.Is(err, services.ErrWeddingNotFound) {
			configslog.Log.Error("SetPublished failed", zap.Uint("userID", userID), zap.Bool("published", published), zap.Error(err))
			errMsg = "Publish state could not be changed."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/home", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, successMsg)
	return c.Redirect("/panel/home", fiber.StatusFound)
}
