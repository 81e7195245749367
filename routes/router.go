package routes

import (
	"undangan.link/configs"
	"undangan.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes wires the global middlewares and all route groups. The public
// slug route is registered last so the named groups win the match first.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())

	registerAuthRoutes(app)
	registerDashboardRoutes(app)
	registerPanelRoutes(app)
	registerWebhookRoutes(app)

	app.Get("/", rootRedirector)

	// Catch-all invitation address; must stay after every named group.
	registerPublicLinkRoutes(app)

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals attaches the session store and copies the
// logged-in identity into request locals.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		userID, idErr := utils.GetUserIDFromSession(sess)
		isSystem, sysErr := utils.GetIsSystemFromSession(sess)
		userName, nameOk := sess.Get("user_name").(string)
		if idErr == nil {
			c.Locals("userID", userID)
		}
		if sysErr == nil {
			c.Locals("isSystem", isSystem)
		}
		if nameOk {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

// rootRedirector sends the visitor to the right home for their role.
func rootRedirector(c *fiber.Ctx) error {
	userIDRaw := c.Locals("userID")
	isSystemRaw := c.Locals("isSystem")
	if userIDRaw == nil || isSystemRaw == nil {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	isSystem, ok := isSystemRaw.(bool)
	if !ok {
		return c.Redirect("/auth/login")
	}
	if isSystem {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Tidak Ditemukan"}, "layouts/error_layout")
	}
}
