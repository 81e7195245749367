package flashmessages

import (
	"encoding/json"

	"undangan.link/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// FlashData is what a handler reads back after a redirect.
type FlashData struct {
	Success string
	Error   string
}

// SetFlashMessage stores a one-shot message in the session.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages pops both message slots from the session.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	var data FlashData
	sess, err := utils.SessionStart(c)
	if err != nil {
		return data, err
	}
	if msg, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = msg
		sess.Delete(FlashSuccessKey)
	}
	if msg, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = msg
		sess.Delete(FlashErrorKey)
	}
	return data, sess.Save()
}

// SetFlashFormData keeps a submitted form across a validation redirect.
// The payload is stored JSON-encoded since sessions only take primitives.
func SetFlashFormData(c *fiber.Ctx, form interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(form)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(encoded))
	return sess.Save()
}

// GetFlashFormData pops the preserved form as a generic map, or nil.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var form map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return nil
	}
	return form
}
