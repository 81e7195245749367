package handlers

import (
	"encoding/json"
	"errors"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

// StripeWebhookHandler settles orders from payment provider events.
type StripeWebhookHandler struct {
	orderService  services.IOrderService
	webhookSecret string
}

func NewStripeWebhookHandler() *StripeWebhookHandler {
	return &StripeWebhookHandler{
		orderService:  services.NewOrderService(),
		webhookSecret: configs.Get().StripeWebhookSecret,
	}
}

// HandleStripeWebhook verifies the event signature and applies the order
// transition. Stripe retries on non-2xx, so unknown orders answer 200 to
// stop the retry loop; only transient failures answer 5xx.
func (h *StripeWebhookHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	event, err := webhook.ConstructEvent(c.Body(), c.Get("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		configslog.Log.Warn("Stripe webhook signature verification failed", zap.Error(err))
		return c.SendStatus(fiber.StatusBadRequest)
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.expired":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			configslog.Log.Error("Stripe webhook payload could not be decoded",
				zap.String("eventType", string(event.Type)), zap.Error(err))
			return c.SendStatus(fiber.StatusBadRequest)
		}
		if session.ClientReferenceID == "" {
			configslog.Log.Warn("Stripe checkout session without order reference",
				zap.String("sessionID", session.ID))
			return c.SendStatus(fiber.StatusOK)
		}

		if event.Type == "checkout.session.completed" {
			err = h.orderService.CompleteOrder(c.UserContext(), session.ClientReferenceID, session.ID)
		} else {
			err = h.orderService.ExpireOrder(c.UserContext(), session.ClientReferenceID)
		}
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) || errors.Is(err, services.ErrOrderNotPending) {
				configslog.Log.Warn("Stripe webhook for an order that cannot transition",
					zap.String("orderRef", session.ClientReferenceID),
					zap.String("eventType", string(event.Type)), zap.Error(err))
				return c.SendStatus(fiber.StatusOK)
			}
			configslog.Log.Error("Stripe webhook order settlement failed",
				zap.String("orderRef", session.ClientReferenceID),
				zap.String("eventType", string(event.Type)), zap.Error(err))
			return c.SendStatus(fiber.StatusInternalServerError)
		}

	default:
		configslog.SLog.Debugf("Ignoring Stripe event type: %s", event.Type)
	}

	return c.SendStatus(fiber.StatusOK)
}
