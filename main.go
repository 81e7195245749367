package main

import (
	"os"
	"os/signal"
	"syscall"

	"undangan.link/configs"
	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.Get()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	if cfg.AppEnv != "production" {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "undangan.link",
		ViewsLayout: "layouts/main_layout",
	})

	routes.SetupRoutes(app)

	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			configslog.Log.Fatal("Server could not be started", zap.Error(err))
		}
	}()
	configslog.SLog.Infof("Server listening on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Shutting down...")
	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("Server shutdown failed", zap.Error(err))
	}
	configslog.SLog.Info("Server stopped.")
}
