package routes

import (
	"fieldtech/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth          = "/auth"
	PathOrders        = "/orders"
	PathWorkflow      = "/workflow"
	PathNotifications = "/notifications"
	PathClients       = "/clients"
	PathLocations     = "/locations"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.Session)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler, directory *handlers.DirectoryHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.ListOrders)
		orders.POST("/refresh", h.Refresh)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/open", h.OpenOrder)
		orders.POST("/:id/start", h.StartOrder)
		orders.POST("/:id/complete", h.CompleteOrder)
		orders.POST("/:id/cancel", h.RequestCancel)
		orders.DELETE("/:id/cancel", h.AbortCancel)
		orders.POST("/:id/cancel/confirm", h.ConfirmCancel)
		orders.GET("/:id/location", directory.LocateOrder)
	}
}

func addMaterialRoutes(rg *gin.RouterGroup, h *handlers.MaterialHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.PUT("/:id/material-usage", h.ChooseUsage)
		orders.GET("/:id/materials", h.GetDraft)
		orders.PUT("/:id/materials/:product_id", h.SetQuantity)
		orders.POST("/:id/materials", h.Submit)
		orders.PUT("/:id/rating", h.Rate)
	}
}

func addSignatureRoutes(rg *gin.RouterGroup, h *handlers.SignatureHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.PUT("/:id/signature", h.Draft)
		orders.DELETE("/:id/signature", h.Clear)
		orders.POST("/:id/signature/submit", h.Submit)
	}
}

func addWorkflowRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	rg.GET(PathWorkflow, h.GetWorkflow)
	rg.DELETE(PathWorkflow, h.CloseWorkflow)
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.List)
		notifications.DELETE("/:id", h.Dismiss)
	}
}

func addDirectoryRoutes(rg *gin.RouterGroup, h *handlers.DirectoryHandler) {
	rg.GET(PathClients, h.ListClients)
	rg.GET(PathLocations, h.LocateOrders)
}
