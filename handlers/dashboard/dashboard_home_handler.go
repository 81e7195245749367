package handlers

import (
	"net/http"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HomeHandler serves the admin overview page.
type HomeHandler struct {
	userService    services.IUserService
	weddingService services.IWeddingService
	orderService   services.IOrderService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		userService:    services.NewUserService(),
		weddingService: services.NewWeddingService(),
		orderService:   services.NewOrderService(),
	}
}

// HomePage shows platform-wide counts.
func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{"Title": "Dashboard"}
	renderer.SetFlashMessages(renderData, flashData)

	ctx := c.UserContext()

	userCount, err := h.userService.GetUserCount(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard home: user count failed", zap.Error(err))
	}
	weddingCount, publishedCount, err := h.weddingService.GetWeddingCounts(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard home: invitation counts failed", zap.Error(err))
	}
	paidOrders, err := h.orderService.GetPaidOrderCount(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard home: order count failed", zap.Error(err))
	}

	renderData["UserCount"] = userCount
	renderData["WeddingCount"] = weddingCount
	renderData["PublishedCount"] = publishedCount
	renderData["PaidOrderCount"] = paidOrders
	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", renderData, http.StatusOK)
}
