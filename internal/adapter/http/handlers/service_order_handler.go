package handlers

import (
	"errors"
	"net/http"
	"time"

	"fieldtech/internal/adapter/http/dto/request"
	"fieldtech/internal/adapter/http/dto/response"
	"fieldtech/internal/adapter/http/middleware"
	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase"
	"fieldtech/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler serves the gateway REST API the technician API talks
// to. Error bodies carry "message" so clients can show it as is.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// ListClients godoc
// @Summary      List clients
// @Tags         gateway
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  entities.Client
// @Router       /clients [get]
func (h *ServiceOrderHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceOrderError(err))
		return
	}
	if clients == nil {
		clients = []entities.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

// ListFull godoc
// @Summary      Orders joined with client and products, one row per product
// @Tags         gateway
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  entities.ServiceOrderRow
// @Router       /service-orders-full [get]
func (h *ServiceOrderHandler) ListFull(c *gin.Context) {
	rows, err := h.usecase.ListFull(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceOrderError(err))
		return
	}
	if rows == nil {
		rows = []entities.ServiceOrderRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// Start godoc
// @Summary      Start a pending order
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id            path      int                               true   "Order ID"
// @Param        X-Request-ID  header    string                            false  "Client request id; replays are rejected"
// @Param        payload       body      request.StartServiceOrderRequest  false  "HH:mm:ss"
// @Success      200  {object}  response.TransitionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/start [put]
func (h *ServiceOrderHandler) Start(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.StartServiceOrderRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	o, err := h.usecase.Start(c.Request.Context(), id, middleware.ClientRequestID(c), payload.StartTime)
	if err != nil {
		writeError(c, mapServiceOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder("Service order started", o))
}

// Complete godoc
// @Summary      Complete an order in progress
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      int                                  true   "Order ID"
// @Param        payload  body      request.CompleteServiceOrderRequest  false  "End time and used products"
// @Success      200  {object}  response.TransitionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/complete [put]
func (h *ServiceOrderHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.CompleteServiceOrderRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	o, err := h.usecase.Complete(c.Request.Context(), id, middleware.ClientRequestID(c), payload.EndTime, payload.Products)
	if err != nil {
		writeError(c, mapServiceOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder("Service order completed", o))
}

// Cancel godoc
// @Summary      Cancel a pending or running order
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      int                                true   "Order ID"
// @Param        payload  body      request.CancelServiceOrderRequest  false  "Reason"
// @Success      200  {object}  response.TransitionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/cancel [put]
func (h *ServiceOrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.CancelServiceOrderRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	o, err := h.usecase.Cancel(c.Request.Context(), id, middleware.ClientRequestID(c), payload.CancelReason)
	if err != nil {
		writeError(c, mapServiceOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder("Service order cancelled", o))
}

// RecordProducts godoc
// @Summary      Record the products actually used
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      int                          true  "Order ID"
// @Param        payload  body      request.UsedProductsRequest  true  "Products"
// @Success      200  {object}  response.TransitionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/products [post]
func (h *ServiceOrderHandler) RecordProducts(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.UsedProductsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	o, err := h.usecase.RecordUsedProducts(c.Request.Context(), id, middleware.ClientRequestID(c), payload.Products)
	if err != nil {
		writeError(c, mapServiceOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder("Products recorded", o))
}

// Sign godoc
// @Summary      Attach the client signature
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      int                              true  "Order ID"
// @Param        payload  body      request.SignServiceOrderRequest  true  "Base64 image"
// @Success      200  {object}  response.TransitionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/sign [put]
func (h *ServiceOrderHandler) Sign(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.SignServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	o, err := h.usecase.Sign(c.Request.Context(), id, middleware.ClientRequestID(c), payload.Files)
	if err != nil {
		writeError(c, mapServiceOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder("Signature saved", o))
}

func mapServiceOrderError(err error) *pkg.AppError {
	var conflict *usecase.StateConflictError
	switch {
	case errors.As(err, &conflict):
		return pkg.NewDomainError("INVALID_STATE", conflict.Error(), err, http.StatusConflict).
			WithDetail("state_", string(conflict.Status))
	case errors.Is(err, usecase.ErrDuplicateRequest):
		return pkg.NewDomainError("DUPLICATE_REQUEST", "duplicate request", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainError("SERVICE_ORDER_NOT_FOUND", "Service order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidServiceOrderID):
		return errInvalidOrderID
	case errors.Is(err, usecase.ErrInvalidClockTime),
		errors.Is(err, usecase.ErrEmptyProducts),
		errors.Is(err, usecase.ErrUnknownProduct),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrEmptySignature):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// GatewayAuthHandler issues and clears gateway sessions.
type GatewayAuthHandler struct {
	usecase      usecase.ISessionUseCase
	secureCookie bool
	now          func() time.Time
}

func NewGatewayAuthHandler(uc usecase.ISessionUseCase, secureCookie bool) *GatewayAuthHandler {
	return &GatewayAuthHandler{usecase: uc, secureCookie: secureCookie, now: time.Now}
}

// Login godoc
// @Summary      Sign in; the token is returned and set as an HttpOnly cookie
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        payload  body      request.GatewayLoginRequest  true  "Credentials"
// @Success      200  {object}  response.GatewayLoginResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *GatewayAuthHandler) Login(c *gin.Context) {
	var payload request.GatewayLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	s, expiresAt, err := h.usecase.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeError(c, pkg.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password", err, http.StatusUnauthorized))
			return
		}
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}

	maxAge := int(expiresAt.Sub(h.now()).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, s.Token, maxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, response.GatewayLoginResponse{Token: s.Token, ExpiresAt: expiresAt, User: sessionUser(s.User)})
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         gateway
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       /auth/logout [post]
func (h *GatewayAuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Signed out"})
}
