package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "fieldtech/docs"
	"fieldtech/internal/adapter/http/handlers"
	"fieldtech/internal/adapter/http/middleware"
	"fieldtech/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// APIHandlers groups the technician API handlers.
type APIHandlers struct {
	Orders        *handlers.OrderHandler
	Materials     *handlers.MaterialHandler
	Signature     *handlers.SignatureHandler
	Notifications *handlers.NotificationHandler
	Auth          *handlers.AuthHandler
	Directory     *handlers.DirectoryHandler
}

// NewAPIRouter builds the technician API router.
func NewAPIRouter(h APIHandlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", ping)

	v1 := router.Group("/v1")
	addAuthRoutes(v1, h.Auth)
	addOrderRoutes(v1, h.Orders, h.Directory)
	addMaterialRoutes(v1, h.Materials)
	addSignatureRoutes(v1, h.Signature)
	addWorkflowRoutes(v1, h.Orders)
	addNotificationRoutes(v1, h.Notifications)
	addDirectoryRoutes(v1, h.Directory)
	return router
}

// Run serves handler on port until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, handler http.Handler, port int) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
}

func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
