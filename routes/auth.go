package routes

import (
	auth_handlers "undangan.link/handlers/auth"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := auth_handlers.NewAuthHandler()
	authGroup := app.Group("/auth")

	guestRoutes := authGroup.Group("")
	guestRoutes.Use(middlewares.GuestMiddleware)
	guestRoutes.Get("/login", authHandler.ShowLogin)
	guestRoutes.Post("/login", authHandler.Login)
	guestRoutes.Get("/register", authHandler.ShowRegister)
	guestRoutes.Post("/register", authHandler.Register)

	userRoutes := authGroup.Group("")
	userRoutes.Use(middlewares.AuthMiddleware)
	userRoutes.Get("/logout", authHandler.Logout)
	userRoutes.Post("/logout", authHandler.Logout)
	userRoutes.Get("/profile", authHandler.Profile)
	userRoutes.Post("/profile/update-password", authHandler.UpdatePassword)
}
