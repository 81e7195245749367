package renderer

import (
	"net/http"

	"undangan.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Keys the views read flash messages from.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages copies popped flash data into the render map.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render wraps c.Render with the layout and common locals every page needs.
// status is optional; the first value wins.
func Render(c *fiber.Ctx, view string, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["CsrfToken"]; !ok {
		data["CsrfToken"] = c.Locals("csrf")
	}
	if userName, ok := c.Locals("userName").(string); ok {
		data["UserName"] = userName
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
