package routes

import (
	webhook_handlers "undangan.link/handlers/webhook"

	"github.com/gofiber/fiber/v2"
)

// registerWebhookRoutes defines provider callback routes. These bypass the
// session: the payload signature is the authentication.
func registerWebhookRoutes(app *fiber.App) {
	stripeHandler := webhook_handlers.NewStripeWebhookHandler()

	app.Post("/webhook/stripe", stripeHandler.HandleStripeWebhook) // POST /webhook/stripe
}
