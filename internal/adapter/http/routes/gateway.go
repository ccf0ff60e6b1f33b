package routes

import (
	"fieldtech/internal/adapter/http/handlers"
	"fieldtech/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// GatewayHandlers groups the reference gateway handlers.
type GatewayHandlers struct {
	ServiceOrders *handlers.ServiceOrderHandler
	Auth          *handlers.GatewayAuthHandler
}

// NewGatewayRouter builds the reference gateway router. Everything except
// login and logout needs a valid session.
func NewGatewayRouter(h GatewayHandlers, verifier middleware.TokenVerifier, loginLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName("gateway")))
	router.GET("/ping", ping)

	auth := router.Group(PathAuth)
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
	}

	protected := router.Group("", middleware.Auth(verifier))
	protected.GET(PathClients, h.ServiceOrders.ListClients)
	protected.GET("/service-orders-full", h.ServiceOrders.ListFull)

	orders := protected.Group("/service-orders/:id")
	{
		orders.PUT("/start", h.ServiceOrders.Start)
		orders.PUT("/complete", h.ServiceOrders.Complete)
		orders.PUT("/cancel", h.ServiceOrders.Cancel)
		orders.POST("/products", h.ServiceOrders.RecordProducts)
		orders.PUT("/sign", h.ServiceOrders.Sign)
	}
	return router
}
