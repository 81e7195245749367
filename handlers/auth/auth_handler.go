package handlers

import (
	"errors"
	"net/http"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"
	"undangan.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler serves login, registration and profile flows.
type AuthHandler struct {
	userService services.IUserService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{userService: services.NewUserService()}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{"Title": "Masuk"}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "auth/login", "layouts/auth_layout", renderData, http.StatusOK)
}

// Login authenticates and opens the session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	user, err := h.userService.Authenticate(c.UserContext(), email, password)
	if err != nil {
		errMsg := "Email or password is incorrect."
		if errors.Is(err, services.ErrAccountDeactivated) {
			errMsg = "Your account has been deactivated."
		} else if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Login failed", zap.String("email", email), zap.Error(err))
			errMsg = "Login failed, please try again."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Session could not be started after login", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Login failed, please try again.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := utils.SetUserSession(sess, user.ID, user.Name, user.IsSystem); err != nil {
		configslog.Log.Error("Session could not be saved after login", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Login failed, please try again.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	if user.IsSystem {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":    "Daftar",
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "auth/register", "layouts/auth_layout", renderData, http.StatusOK)
}

// Register creates a new account on the free plan and logs it in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	input := services.RegisterInput{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}

	user, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		errMsg := "Registration failed: " + err.Error()
		if !errors.Is(err, services.ErrEmailAlreadyInUse) && !errors.Is(err, services.ErrUserInvalidInput) {
			configslog.Log.Error("Register failed", zap.String("email", input.Email), zap.Error(err))
			errMsg = "Registration failed, please try again."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"name": input.Name, "email": input.Email})
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	sess, sessErr := utils.SessionStart(c)
	if sessErr == nil {
		_ = utils.SetUserSession(sess, user.ID, user.Name, user.IsSystem)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Welcome! Your invitation is ready to be filled in.")
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if err := utils.ClearSession(sess); err != nil {
			configslog.Log.Error("Session could not be cleared on logout", zap.Error(err))
		}
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// Profile renders the account page.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	user, err := h.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Profile lookup failed", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Profile could not be loaded.")
		return c.Redirect("/")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":  "Profil",
		"User":   user,
		"Limits": user.EffectiveLimits(),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "auth/profile", "layouts/panel_layout", renderData, http.StatusOK)
}

// UpdatePassword changes the password after checking the current one.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	current := c.FormValue("current_password")
	newPassword := c.FormValue("new_password")

	if err := h.userService.UpdatePassword(c.UserContext(), userID, current, newPassword); err != nil {
		errMsg := "Password could not be updated: " + err.Error()
		if !errors.Is(err, services.ErrInvalidCredentials) && !errors.Is(err, services.ErrUserInvalidInput) {
			configslog.Log.Error("UpdatePassword failed", zap.Uint("userID", userID), zap.Error(err))
			errMsg = "Password could not be updated."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Password updated.")
	return c.Redirect("/auth/profile", fiber.StatusFound)
}
