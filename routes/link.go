package routes

import (
	link_handlers "undangan.link/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerPublicLinkRoutes defines the public invitation routes. No auth:
// anyone with the address can open the page and respond.
func registerPublicLinkRoutes(app *fiber.App) {
	pageHandler := link_handlers.NewInvitationPageHandler()
	rsvpHandler := link_handlers.NewPublicRSVPHandler()

	app.Get("/:slug", pageHandler.HandleSlug)       // GET  /{slug}
	app.Post("/:slug/rsvp", rsvpHandler.SubmitRSVP) // POST /{slug}/rsvp
}
