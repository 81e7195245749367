package handlers

import (
	"net/http"
	"time"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func nowUTC() time.Time { return time.Now().UTC() }

// PanelHomeHandler serves the member home page.
type PanelHomeHandler struct {
	userService    services.IUserService
	weddingService services.IWeddingService
	rsvpService    services.IRSVPService
}

func NewPanelHomeHandler() *PanelHomeHandler {
	return &PanelHomeHandler{
		userService:    services.NewUserService(),
		weddingService: services.NewWeddingService(),
		rsvpService:    services.NewRSVPService(),
	}
}

// HomePage shows the invitation status, plan and attending-guest count.
func (h *PanelHomeHandler) HomePage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{"Title": "Panel"}
	renderer.SetFlashMessages(renderData, flashData)

	user, err := h.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel home: user lookup failed", zap.Uint("userID", userID), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Account details could not be loaded."
		return renderer.Render(c, "panel/home", "layouts/panel_layout", renderData, http.StatusOK)
	}

	wedding, err := h.weddingService.GetOrCreateForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel home: invitation lookup failed", zap.Uint("userID", userID), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Your invitation could not be loaded."
		return renderer.Render(c, "panel/home", "layouts/panel_layout", renderData, http.StatusOK)
	}

	attending, err := h.rsvpService.CountAttending(c.UserContext(), wedding.ID)
	if err != nil {
		configslog.Log.Error("Panel home: RSVP count failed", zap.Uint("weddingID", wedding.ID), zap.Error(err))
	}

	renderData["User"] = user
	renderData["Limits"] = user.EffectiveLimits()
	renderData["Wedding"] = wedding
	renderData["AttendingCount"] = attending
	renderData["PlanExpired"] = user.PlanExpiredAt(nowUTC())
	return renderer.Render(c, "panel/home", "layouts/panel_layout", renderData, http.StatusOK)
}
