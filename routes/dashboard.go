package routes

import (
	handlers "undangan.link/handlers/dashboard"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes defines the /dashboard routes. Only system
// administrators (IsSystem == true) may enter.
func registerDashboardRoutes(app *fiber.App) {
	homeHandler := handlers.NewHomeHandler()
	userHandler := handlers.NewUserHandler()
	weddingHandler := handlers.NewWeddingHandler()
	templateHandler := handlers.NewTemplateHandler()
	orderHandler := handlers.NewOrderHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware,
		middlewares.StatusMiddleware,
		middlewares.RequireSystem(),
	)

	dashboardGroup.Get("/home", homeHandler.HomePage) // GET /dashboard/home

	// --- User management ---
	dashboardGroup.Get("/users", userHandler.ListUsers)                // GET  /dashboard/users
	dashboardGroup.Post("/users/plan/:id", userHandler.SetPlan)        // POST /dashboard/users/plan/{id}
	dashboardGroup.Post("/users/active/:id", userHandler.SetActive)    // POST /dashboard/users/active/{id}
	dashboardGroup.Post("/users/delete/:id", userHandler.DeleteUser)   // POST /dashboard/users/delete/{id}
	dashboardGroup.Delete("/users/delete/:id", userHandler.DeleteUser) // DELETE for API/JS callers

	// --- Invitation moderation ---
	dashboardGroup.Get("/weddings", weddingHandler.ListWeddings)                   // GET  /dashboard/weddings
	dashboardGroup.Post("/weddings/publish/:id", weddingHandler.ModeratePublish)   // POST /dashboard/weddings/publish/{id}
	dashboardGroup.Post("/weddings/delete/:id", weddingHandler.DeleteWedding)      // POST /dashboard/weddings/delete/{id}
	dashboardGroup.Delete("/weddings/delete/:id", weddingHandler.DeleteWedding)    // DELETE for API/JS callers
	dashboardGroup.Post("/messages/hide/:id", weddingHandler.HideMessage)          // POST /dashboard/messages/hide/{id}

	// --- Template catalog ---
	dashboardGroup.Get("/templates", templateHandler.ListTemplates)                // GET  /dashboard/templates
	dashboardGroup.Get("/templates/create", templateHandler.ShowCreateTemplate)    // GET  /dashboard/templates/create
	dashboardGroup.Post("/templates/create", templateHandler.CreateTemplate)       // POST /dashboard/templates/create
	dashboardGroup.Get("/templates/update/:id", templateHandler.ShowUpdateTemplate) // GET  /dashboard/templates/update/{id}
	dashboardGroup.Post("/templates/update/:id", templateHandler.UpdateTemplate)   // POST /dashboard/templates/update/{id}
	dashboardGroup.Post("/templates/delete/:id", templateHandler.DeleteTemplate)   // POST /dashboard/templates/delete/{id}
	dashboardGroup.Delete("/templates/delete/:id", templateHandler.DeleteTemplate) // DELETE for API/JS callers

	// --- Orders ---
	dashboardGroup.Get("/orders", orderHandler.ListOrders) // GET /dashboard/orders
}
