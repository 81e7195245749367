package handlers

import (
	"net/http"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelRSVPHandler shows the member their guest responses.
type PanelRSVPHandler struct {
	rsvpService    services.IRSVPService
	weddingService services.IWeddingService
}

func NewPanelRSVPHandler() *PanelRSVPHandler {
	return &PanelRSVPHandler{
		rsvpService:    services.NewRSVPService(),
		weddingService: services.NewWeddingService(),
	}
}

// ListRSVPs renders the guest list with the attending head count.
func (h *PanelRSVPHandler) ListRSVPs(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{"Title": "Daftar Tamu"}
	renderer.SetFlashMessages(renderData, flashData)

	rsvps, err := h.rsvpService.GetForOwner(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("ListRSVPs failed", zap.Uint("userID", userID), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Guest responses could not be loaded."
		return renderer.Render(c, "panel/rsvps/list", "layouts/panel_layout", renderData, http.StatusOK)
	}

	var attending int64
	if wedding, wErr := h.weddingService.GetByUserID(c.UserContext(), userID); wErr == nil {
		if count, cErr := h.rsvpService.CountAttending(c.UserContext(), wedding.ID); cErr == nil {
			attending = count
		}
	}

	renderData["RSVPs"] = rsvps
	renderData["AttendingCount"] = attending
	return renderer.Render(c, "panel/rsvps/list", "layouts/panel_layout", renderData, http.StatusOK)
}
