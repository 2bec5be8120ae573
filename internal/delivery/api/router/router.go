// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"smartfit/config"
	"smartfit/internal/delivery/api/middleware"
	"smartfit/internal/delivery/api/router/handler"
	"smartfit/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	OrderHandler         *handler.OrderHandler
	CatalogHandler       *handler.CatalogHandler
	CustomizationHandler *handler.CustomizationHandler
	ShoppingHandler      *handler.ShoppingHandler
	ShopHandler          *handler.ShopHandler
	DeviceHandler        *handler.DeviceHandler
	DiagnosticsHandler   *handler.DiagnosticsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	orderHandler         *handler.OrderHandler
	catalogHandler       *handler.CatalogHandler
	customizationHandler *handler.CustomizationHandler
	shoppingHandler      *handler.ShoppingHandler
	shopHandler          *handler.ShopHandler
	deviceHandler        *handler.DeviceHandler
	diagnosticsHandler   *handler.DiagnosticsHandler
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		orderHandler:         params.OrderHandler,
		catalogHandler:       params.CatalogHandler,
		customizationHandler: params.CustomizationHandler,
		shoppingHandler:      params.ShoppingHandler,
		shopHandler:          params.ShopHandler,
		deviceHandler:        params.DeviceHandler,
		diagnosticsHandler:   params.DiagnosticsHandler,
		authMiddleware:       params.AuthMiddleware,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/activate", r.authHandler.Activate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.POST("/password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/me", r.authHandler.Me)

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/stream", r.orderHandler.StreamOrders)

		order := ordersGroup.Group("/:kind/:userId/:orderId")
		order.GET("", r.orderHandler.GetOrder)
		order.GET("/timeline", r.orderHandler.Timeline)
		order.GET("/qr", r.orderHandler.TrackingQR)
		order.POST("/cancel", r.orderHandler.CancelOrder)

		staff := r.authMiddleware.RequireRole(entity.RoleShopOwner, entity.RoleEmployee, entity.RoleAdmin)
		order.POST("/process", r.orderHandler.ProcessOrder, staff)
		order.POST("/complete", r.orderHandler.CompleteOrder, staff)
		order.POST("/reject", r.orderHandler.RejectOrder, staff)
		order.POST("/tracking", r.orderHandler.AddTrackingUpdate, staff)
		order.PUT("/shipping", r.orderHandler.UpdateShipping, staff)
		order.DELETE("/tracking/:updateId", r.orderHandler.DeleteStatusUpdate, staff)
	}

	apiV1.GET("/products", r.catalogHandler.ListProducts)

	shopsGroup := apiV1.Group("/shops")
	{
		shopsGroup.GET("/nearby", r.shopHandler.Nearby)
		shopsGroup.GET("/:shopId", r.shopHandler.GetShop)
		shopsGroup.GET("/:shopId/products", r.catalogHandler.ListShopProducts)
		shopsGroup.GET("/:shopId/products/:shoeId", r.catalogHandler.GetProduct)
		shopsGroup.GET("/:shopId/products/:shoeId/inventory", r.catalogHandler.Inventory,
			r.authMiddleware.RequireRole(entity.RoleShopOwner, entity.RoleEmployee, entity.RoleAdmin))
		shopsGroup.POST("/:shopId/reapply", r.shopHandler.ReapplyShop,
			r.authMiddleware.RequireRole(entity.RoleShopOwner))
		shopsGroup.POST("/:shopId/employees/provision", r.shopHandler.ProvisionEmployees,
			r.authMiddleware.RequireRole(entity.RoleShopOwner, entity.RoleAdmin))
	}

	customizationGroup := apiV1.Group("/customization")
	{
		customizationGroup.POST("/quote", r.catalogHandler.Quote)
		customizationGroup.GET("/models", r.customizationHandler.ListModels)

		admin := customizationGroup.Group("/models/:modelId", r.authMiddleware.RequireRole(entity.RoleAdmin))
		admin.POST("/colors/:colorKey", r.customizationHandler.UploadBodyColor)
		admin.DELETE("/colors/:colorKey", r.customizationHandler.DeleteBodyColor)
		admin.PUT("/:kind/:optionId", r.customizationHandler.UpsertComponentOption)
	}

	apiV1.GET("/wishlist", r.shoppingHandler.GetWishlist)
	apiV1.POST("/wishlist", r.shoppingHandler.ToggleWishlist)

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.shoppingHandler.ListCart)
		cartGroup.POST("", r.shoppingHandler.AddToCart)
		cartGroup.DELETE("/:itemId", r.shoppingHandler.RemoveFromCart)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	adminGroup := apiV1.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/shops", r.shopHandler.ListShops)
		adminGroup.POST("/shops/:id/approve", r.shopHandler.ApproveShop)
		adminGroup.POST("/shops/:id/reject", r.shopHandler.RejectShop)
		adminGroup.POST("/activations/reconcile", r.shopHandler.ReconcileActivations)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/ping", r.diagnosticsHandler.Ping)
		testGroup.GET("/whoami", r.diagnosticsHandler.WhoAmI, r.authMiddleware.Authenticate)
	}
}
