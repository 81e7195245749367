package middlewares

import (
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware lets only logged-in users through.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	return c.Next()
}

// GuestMiddleware is the inverse: logged-in users are sent to their home.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		if isSystem, _ := c.Locals("isSystem").(bool); isSystem {
			return c.Redirect("/dashboard/home", fiber.StatusFound)
		}
		return c.Redirect("/panel/home", fiber.StatusFound)
	}
	return c.Next()
}

// StatusMiddleware rejects deactivated accounts. Runs after AuthMiddleware.
func StatusMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	user, err := services.NewUserService().GetUserByID(c.UserContext(), userID)
	if err != nil || !user.IsActive {
		return c.Redirect("/auth/logout", fiber.StatusFound)
	}
	return c.Next()
}

// RequireSystem limits a group to administrators.
func RequireSystem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isSystem, ok := c.Locals("isSystem").(bool); !ok || !isSystem {
			return c.Status(fiber.StatusForbidden).Render("errors/403", fiber.Map{"Title": "Akses Ditolak"}, "layouts/error_layout")
		}
		return c.Next()
	}
}

// RequireUser limits a group to regular (non-admin) accounts.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isSystem, ok := c.Locals("isSystem").(bool); !ok || isSystem {
			return c.Redirect("/dashboard/home", fiber.StatusFound)
		}
		return c.Next()
	}
}
