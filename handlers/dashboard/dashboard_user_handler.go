package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/queryparams"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler is the admin view over member accounts.
type UserHandler struct {
	userService services.IUserService
}

func NewUserHandler() *UserHandler {
	return &UserHandler{userService: services.NewUserService()}
}

// ListUsers lists accounts with pagination.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.userService.GetUsersPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Pengguna",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Users could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.User{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListUsers Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/users/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// SetPlan overrides a member's plan. The expiry is recomputed from the
// plan's validity window at the moment of the change.
func (h *UserHandler) SetPlan(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	plan := models.Plan(strings.ToUpper(strings.TrimSpace(c.FormValue("plan"))))
	if !plan.Valid() {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Unknown plan.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	var expiresAt *time.Time
	if days := models.LimitsFor(plan).ValidityDays; days != nil {
		t := time.Now().UTC().AddDate(0, 0, *days)
		expiresAt = &t
	}

	if err := h.userService.SetUserPlan(c.UserContext(), adminUserID, uint(id), plan, expiresAt); err != nil {
		if !errors.Is(err, services.ErrUserNotFound) {
			configslog.Log.Error("Dashboard - SetPlan Error", zap.Int("id", id), zap.Uint("adminUserID", adminUserID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Plan could not be changed: "+err.Error())
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Plan updated.")
	return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
}

// SetActive activates or deactivates an account.
func (h *UserHandler) SetActive(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}
	active := c.FormValue("active") == "true" || c.FormValue("active") == "on"

	if err := h.userService.SetUserActive(c.UserContext(), adminUserID, uint(id), active); err != nil {
		if !errors.Is(err, services.ErrUserNotFound) {
			configslog.Log.Error("Dashboard - SetActive Error", zap.Int("id", id), zap.Uint("adminUserID", adminUserID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Account state could not be changed: "+err.Error())
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Account state updated.")
	return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
}

// DeleteUser soft deletes an account.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	if err := h.userService.DeleteUser(c.UserContext(), adminUserID, uint(id)); err != nil {
		if !errors.Is(err, services.ErrUserNotFound) {
			configslog.Log.Error("Dashboard - DeleteUser Error", zap.Int("id", id), zap.Uint("adminUserID", adminUserID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Account could not be deleted: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Account deleted.")
	}
	return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
}
