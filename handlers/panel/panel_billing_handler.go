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

// PanelBillingHandler serves the plan overview and starts checkouts.
type PanelBillingHandler struct {
	userService  services.IUserService
	orderService services.IOrderService
}

func NewPanelBillingHandler() *PanelBillingHandler {
	return &PanelBillingHandler{
		userService:  services.NewUserService(),
		orderService: services.NewOrderService(),
	}
}

// ShowBilling lists the plan tiers and the member's past orders.
func (h *PanelBillingHandler) ShowBilling(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{"Title": "Upgrade Paket"}
	renderer.SetFlashMessages(renderData, flashData)

	user, err := h.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("ShowBilling: user lookup failed", zap.Uint("userID", userID), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Billing page could not be loaded."
		return renderer.Render(c, "panel/billing/plans", "layouts/panel_layout", renderData, http.StatusOK)
	}

	orders, err := h.orderService.GetOrdersForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("ShowBilling: order lookup failed", zap.Uint("userID", userID), zap.Error(err))
	}

	type planRow struct {
		Plan    models.Plan
		Limits  models.PlanLimits
		Current bool
	}
	var plans []planRow
	for _, plan := range models.Plans() {
		plans = append(plans, planRow{Plan: plan, Limits: models.LimitsFor(plan), Current: plan == user.Plan})
	}

	renderData["User"] = user
	renderData["Plans"] = plans
	renderData["Orders"] = orders
	return renderer.Render(c, "panel/billing/plans", "layouts/panel_layout", renderData, http.StatusOK)
}

// Checkout creates a pending order and redirects to the payment page.
func (h *PanelBillingHandler) Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	plan := models.Plan(strings.ToUpper(strings.TrimSpace(c.FormValue("plan"))))
	result, err := h.orderService.CreateCheckout(c.UserContext(), userID, plan)
	if err != nil {
		errMsg := "Checkout could not be started: " + err.Error()
		if !errors.Is(err, services.ErrOrderInvalidPlan) {
			configslog.Log.Error("Checkout failed", zap.Uint("userID", userID), zap.String("plan", string(plan)), zap.Error(err))
			errMsg = "Checkout could not be started, please try again."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/billing", fiber.StatusSeeOther)
	}

	return c.Redirect(result.CheckoutURL, fiber.StatusSeeOther)
}
