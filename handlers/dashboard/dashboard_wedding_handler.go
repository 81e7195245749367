package handlers

import (
	"errors"
	"net/http"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/queryparams"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WeddingHandler is the admin moderation view over invitations.
type WeddingHandler struct {
	weddingService services.IWeddingService
	rsvpService    services.IRSVPService
}

func NewWeddingHandler() *WeddingHandler {
	return &WeddingHandler{
		weddingService: services.NewWeddingService(),
		rsvpService:    services.NewRSVPService(),
	}
}

// ListWeddings lists all invitations with pagination.
func (h *WeddingHandler) ListWeddings(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.weddingService.GetAllPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Undangan",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Invitations could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Wedding{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListWeddings Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/weddings/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ModeratePublish force-publishes or takes down an invitation.
func (h *WeddingHandler) ModeratePublish(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect("/dashboard/weddings", fiber.StatusSeeOther)
	}
	published := c.FormValue("published") == "true" || c.FormValue("published") == "on"

	if err := h.weddingService.ModeratePublish(c.UserContext(), adminUserID, uint(id), published); err != nil {
		if !errors.Is(err, services.ErrWeddingNotFound) {
			configslog.Log.Error("Dashboard - ModeratePublish Error", zap.Int("id", id), zap.Uint("adminUserID", adminUserID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Publish state could not be changed: "+err.Error())
		return c.Redirect("/dashboard/weddings", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Publish state updated.")
	return c.Redirect("/dashboard/weddings", fiber.StatusSeeOther)
}

// DeleteWedding soft deletes an invitation.
func (h *WeddingHandler) DeleteWedding(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect("/dashboard/weddings", fiber.StatusSeeOther)
	}

	if err := h.weddingService.DeleteWedding(c.UserContext(), adminUserID, uint(id)); err != nil {
		if !errors.Is(err, services.ErrWeddingNotFound) {
			configslog.Log.Error("Dashboard - DeleteWedding Error", zap.Int("id", id), zap.Uint("adminUserID", adminUserID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invitation could not be deleted: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Invitation deleted.")
	}
	return c.Redirect("/dashboard/weddings", fiber.StatusSeeOther)
}

// HideMessage hides or restores a guestbook message.
func (h *WeddingHandler) HideMessage(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect("/dashboard/weddings", fiber.StatusSeeOther)
	}
	hidden := c.FormValue("hidden") != "false"

	if err := h.rsvpService.SetMessageHidden(c.UserContext(), adminUserID, uint(id), hidden); err != nil {
		if !errors.Is(err, services.ErrRSVPNotFound) {
			configslog.Log.Error("Dashboard - HideMessage Error", zap.Int("id", id), zap.Uint("adminUserID", adminUserID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Message could not be moderated: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Message moderation updated.")
	}
	return c.Redirect("/dashboard/weddings", fiber.StatusSeeOther)
}
