package routes

import (
	panel_handlers "undangan.link/handlers/panel"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes defines the /panel routes. Only regular members
// (IsSystem == false) may enter.
func registerPanelRoutes(app *fiber.App) {
	homeHandler := panel_handlers.NewPanelHomeHandler()
	weddingHandler := panel_handlers.NewPanelWeddingHandler()
	rsvpHandler := panel_handlers.NewPanelRSVPHandler()
	billingHandler := panel_handlers.NewPanelBillingHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(
		middlewares.AuthMiddleware,
		middlewares.StatusMiddleware,
		middlewares.RequireUser(),
	)

	panelGroup.Get("/home", homeHandler.HomePage) // GET /panel/home

	// --- The member's single invitation ---
	panelGroup.Get("/wedding", weddingHandler.ShowEditor)                      // GET  /panel/wedding
	panelGroup.Put("/wedding/data", weddingHandler.UpdateData)                 // PUT  /panel/wedding/data (JSON)
	panelGroup.Post("/wedding/data", weddingHandler.UpdateData)                // POST fallback for the same endpoint
	panelGroup.Get("/wedding/templates", weddingHandler.ShowTemplates)         // GET  /panel/wedding/templates
	panelGroup.Post("/wedding/templates/:id", weddingHandler.SelectTemplate)   // POST /panel/wedding/templates/{id}
	panelGroup.Post("/wedding/publish", weddingHandler.Publish)                // POST /panel/wedding/publish
	panelGroup.Post("/wedding/unpublish", weddingHandler.Unpublish)            // POST /panel/wedding/unpublish

	// --- Guest responses ---
	panelGroup.Get("/rsvps", rsvpHandler.ListRSVPs) // GET /panel/rsvps

	// --- Billing ---
	panelGroup.Get("/billing", billingHandler.ShowBilling)       // GET  /panel/billing
	panelGroup.Post("/billing/checkout", billingHandler.Checkout) // POST /panel/billing/checkout
}
