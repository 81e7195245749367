package handlers

import (
	"net/http"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/queryparams"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler is the admin view over plan purchases.
type OrderHandler struct {
	orderService services.IOrderService
}

func NewOrderHandler() *OrderHandler {
	return &OrderHandler{orderService: services.NewOrderService()}
}

// ListOrders lists all orders with pagination.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.orderService.GetAllPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Pesanan",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Orders could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Order{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListOrders Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/orders/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}
