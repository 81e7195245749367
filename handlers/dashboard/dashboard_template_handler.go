package handlers

import (
	"errors"
	"net/http"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TemplateHandler is the admin view over the template catalog.
type TemplateHandler struct {
	templateService services.ITemplateService
}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{templateService: services.NewTemplateService()}
}

// ListTemplates lists the full catalog, active or not.
func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{"Title": "Template"}
	renderer.SetFlashMessages(renderData, flashData)

	templates, err := h.templateService.GetAll(c.UserContext())
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Templates could not be listed."
		configslog.Log.Error("Dashboard - ListTemplates Error", zap.Error(err))
	}
	renderData["Templates"] = templates
	return renderer.Render(c, "dashboard/templates/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ShowCreateTemplate renders the catalog entry form.
func (h *TemplateHandler) ShowCreateTemplate(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":      "Tambah Template",
		"Categories": models.TemplateCategories(),
		"FormData":   flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/templates/create", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// CreateTemplate adds a catalog entry. The slug must match a registered
// render theme, otherwise the entry would produce a broken public page.
func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login")
	}

	template := models.Template{
		Slug:       strings.TrimSpace(c.FormValue("slug")),
		Name:       strings.TrimSpace(c.FormValue("name")),
		Category:   models.TemplateCategory(strings.ToUpper(strings.TrimSpace(c.FormValue("category")))),
		PreviewURL: strings.TrimSpace(c.FormValue("preview_url")),
		IsActive:   c.FormValue("is_active", "true") != "false",
	}

	if _, err := h.templateService.Create(c.UserContext(), adminUserID, template); err != nil {
		errMsg := "Template could not be created: " + err.Error()
		if !errors.Is(err, services.ErrTemplateSlugTaken) && !errors.Is(err, services.ErrTemplateThemeMissing) &&
			!errors.Is(err, services.ErrTemplateInvalidInput) {
			configslog.Log.Error("Dashboard - CreateTemplate Error", zap.String("slug", template.Slug), zap.Error(err))
			errMsg = "Template could not be created."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, template)
		return c.Redirect("/dashboard/templates/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Template created.")
	return c.Redirect("/dashboard/templates", fiber.StatusFound)
}

// ShowUpdateTemplate renders the edit form for one entry.
func (h *TemplateHandler) ShowUpdateTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect("/dashboard/templates")
	}

	template, err := h.templateService.GetByID(c.UserContext(), uint(id))
	if err != nil {
		if !errors.Is(err, services.ErrTemplateNotFound) {
			configslog.Log.Error("Dashboard - ShowUpdateTemplate Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Template not found.")
		return c.Redirect("/dashboard/templates")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":      "Edit Template",
		"Template":   template,
		"Categories": models.TemplateCategories(),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/templates/update", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// UpdateTemplate edits a catalog entry. Slugs are immutable.
func (h *TemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	name := strings.TrimSpace(c.FormValue("name"))
	category := models.TemplateCategory(strings.ToUpper(strings.TrimSpace(c.FormValue("category"))))
	previewURL := strings.TrimSpace(c.FormValue("preview_url"))
	isActive := c.FormValue("is_active") == "true" || c.FormValue("is_active") == "on"

	if err := h.templateService.Update(c.UserContext(), adminUserID, uint(id), name, category, previewURL, isActive); err != nil {
		errMsg := "Template could not be updated: " + err.Error()
		if !errors.Is(err, services.ErrTemplateNotFound) && !errors.Is(err, services.ErrTemplateInvalidInput) {
			configslog.Log.Error("Dashboard - UpdateTemplate Error", zap.Int("id", id), zap.Error(err))
			errMsg = "Template could not be updated."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Template updated.")
	return c.Redirect("/dashboard/templates", fiber.StatusFound)
}

// DeleteTemplate removes a catalog entry.
func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
	}

	if err := h.templateService.Delete(c.UserContext(), adminUserID, uint(id)); err != nil {
		if !errors.Is(err, services.ErrTemplateNotFound) {
			configslog.Log.Error("Dashboard - DeleteTemplate Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Template could not be deleted: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Template deleted.")
	}
	return c.Redirect("/dashboard/templates", fiber.StatusSeeOther)
}
