// Package router contains routing for the API delivery.
package router

import (
	"fitplan/internal/delivery/api/middleware"
	"fitplan/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlanHandler         *handler.PlanHandler
	ShoppingListHandler *handler.ShoppingListHandler
	BillingHandler      *handler.BillingHandler
	IdentityHandler     *handler.IdentityHandler
	NutritionHandler    *handler.NutritionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	planHandler         *handler.PlanHandler
	shoppingListHandler *handler.ShoppingListHandler
	billingHandler      *handler.BillingHandler
	identityHandler     *handler.IdentityHandler
	nutritionHandler    *handler.NutritionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		planHandler:         params.PlanHandler,
		shoppingListHandler: params.ShoppingListHandler,
		billingHandler:      params.BillingHandler,
		identityHandler:     params.IdentityHandler,
		nutritionHandler:    params.NutritionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Webhooks authenticate by signature, not by session token.
	webhooks := e.Group("/webhooks")
	{
		webhooks.POST("/stripe", r.billingHandler.StripeWebhook)
		webhooks.POST("/clerk", r.identityHandler.ClerkWebhook)
	}

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	plans := api.Group("/plans")
	{
		plans.GET("/current", r.planHandler.GetCurrentPlan)
		plans.GET("/public", r.planHandler.ListPublicPlans)
		plans.GET("/:id", r.planHandler.GetPlan)
	}

	mealPlans := api.Group("/meal-plans")
	{
		mealPlans.GET("/current", r.planHandler.GetCurrentMealPlan)
		mealPlans.POST("/regenerate", r.planHandler.RegenerateMealPlan)
	}

	shoppingLists := api.Group("/shopping-lists")
	{
		shoppingLists.POST("", r.shoppingListHandler.CreateShoppingList)
		shoppingLists.GET("/:week", r.shoppingListHandler.GetShoppingList)
	}

	api.POST("/payments/intent", r.billingHandler.CreatePaymentIntent)

	invoices := api.Group("/invoices")
	{
		invoices.GET("", r.billingHandler.ListInvoices)
		invoices.GET("/:id/pdf", r.billingHandler.DownloadInvoice)
	}

	api.POST("/nutrition/targets", r.nutritionHandler.CalculateTargets)
}
