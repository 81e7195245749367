package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"
	"undangan.link/repositories"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderServiceError is the typed error set of this service.
type OrderServiceError string

func (e OrderServiceError) Error() string { return string(e) }

const (
	ErrOrderNotFound       OrderServiceError = "order not found"
	ErrOrderInvalidPlan    OrderServiceError = "this plan cannot be purchased"
	ErrOrderCreationFailed OrderServiceError = "order could not be created"
	ErrCheckoutFailed      OrderServiceError = "payment session could not be created"
	ErrOrderNotPending     OrderServiceError = "order is not awaiting payment"
)

// CheckoutResult is what the panel redirects the user with.
type CheckoutResult struct {
	OrderRef    string
	CheckoutURL string
}

// IOrderService covers plan purchases from checkout to webhook settlement.
type IOrderService interface {
	CreateCheckout(ctx context.Context, userID uint, plan models.Plan) (*CheckoutResult, error)
	CompleteOrder(ctx context.Context, orderRef string, providerRef string) error
	ExpireOrder(ctx context.Context, orderRef string) error
	GetOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error)
	GetAllPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetPaidOrderCount(ctx context.Context) (int64, error)
}

// OrderService implements IOrderService against Stripe Checkout.
type OrderService struct {
	repo        repositories.IOrderRepository
	userService IUserService
	db          *gorm.DB
	stripe      *stripeclient.API
	baseURL     string
}

// NewOrderService builds the service with the configured Stripe client.
func NewOrderService() IOrderService {
	cfg := configs.Get()
	return &OrderService{
		repo:        repositories.NewOrderRepository(),
		userService: NewUserService(),
		db:          configs.GetDB(),
		stripe:      stripeclient.New(cfg.StripeSecretKey, nil),
		baseURL:     cfg.AppBaseURL,
	}
}

// CreateCheckout opens a pending order and a Stripe Checkout Session for it.
// The order ref travels as the session's client reference so the webhook can
// find its way back.
func (s *OrderService) CreateCheckout(ctx context.Context, userID uint, plan models.Plan) (*CheckoutResult, error) {
	limits := models.LimitsFor(plan)
	if !plan.Valid() || limits.PriceIDR <= 0 {
		return nil, ErrOrderInvalidPlan
	}
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:    user.ID,
		Ref:       uuid.NewString(),
		Plan:      plan,
		AmountIDR: limits.PriceIDR,
		Currency:  "IDR",
		Status:    models.OrderStatusPending,
		Provider:  "stripe",
	}
	ctxUser := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(ctxUser, order); err != nil {
		configslog.Log.Error("Order create failed", zap.Uint("userID", userID), zap.Error(err))
		return nil, ErrOrderCreationFailed
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(order.Ref),
		CustomerEmail:     stripe.String(user.Email),
		SuccessURL:        stripe.String(s.baseURL + "/panel/billing?status=success"),
		CancelURL:         stripe.String(s.baseURL + "/panel/billing?status=cancelled"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("idr"),
				UnitAmount: stripe.Int64(limits.PriceIDR * 100),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("undangan.link %s plan", plan)),
				},
			},
		}},
		Metadata: map[string]string{
			"order_ref": order.Ref,
			"plan":      string(plan),
		},
	}
	session, err := s.stripe.CheckoutSessions.New(params)
	if err != nil {
		configslog.Log.Error("Stripe checkout session failed", zap.String("orderRef", order.Ref), zap.Error(err))
		order.Status = models.OrderStatusFailed
		_ = s.repo.Update(ctxUser, order)
		return nil, ErrCheckoutFailed
	}

	order.ProviderRef = session.ID
	if err := s.repo.Update(ctxUser, order); err != nil {
		configslog.Log.Error("Order provider ref could not be stored", zap.String("orderRef", order.Ref), zap.Error(err))
	}

	configslog.SLog.Infof("Checkout opened: order %s, plan %s (user %d)", order.Ref, plan, userID)
	return &CheckoutResult{OrderRef: order.Ref, CheckoutURL: session.URL}, nil
}

// CompleteOrder settles a paid order and upgrades the buyer's plan in one
// transaction. Replayed webhooks are no-ops once the order left pending.
func (s *OrderService) CompleteOrder(ctx context.Context, orderRef string, providerRef string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		orderRepoTx := repositories.NewOrderRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		order, err := orderRepoTx.FindByRef(ctx, orderRef)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status == models.OrderStatusPaid {
			return nil
		}
		if order.Status != models.OrderStatusPending {
			return ErrOrderNotPending
		}

		now := time.Now().UTC()
		order.Status = models.OrderStatusPaid
		order.PaidAt = &now
		if providerRef != "" {
			order.ProviderRef = providerRef
		}
		ctxUser := models.ContextWithUserID(ctx, order.UserID)
		if err := orderRepoTx.Update(ctxUser, order); err != nil {
			return err
		}

		var expiresAt *time.Time
		if validity := models.LimitsFor(order.Plan).ValidityDays; validity != nil {
			t := now.AddDate(0, 0, *validity)
			expiresAt = &t
		}
		if err := userRepoTx.UpdatePlan(ctxUser, order.UserID, order.Plan, expiresAt); err != nil {
			return err
		}

		configslog.SLog.Infof("Order paid: %s, user %d upgraded to %s", orderRef, order.UserID, order.Plan)
		return nil
	})
}

// ExpireOrder marks an abandoned checkout. Paid orders are left alone.
func (s *OrderService) ExpireOrder(ctx context.Context, orderRef string) error {
	order, err := s.repo.FindByRef(ctx, orderRef)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.Status != models.OrderStatusPending {
		return nil
	}
	order.Status = models.OrderStatusExpired
	ctxUser := models.ContextWithUserID(ctx, order.UserID)
	return s.repo.Update(ctxUser, order)
}

func (s *OrderService) GetOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *OrderService) GetAllPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	orders, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: orders,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *OrderService) GetPaidOrderCount(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, models.OrderStatusPaid)
}

var _ IOrderService = (*OrderService)(nil)
