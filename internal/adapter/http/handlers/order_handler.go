package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	request "fieldtech/internal/adapter/http/dto/request"
	response "fieldtech/internal/adapter/http/dto/response"
	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order list, the order workflow and the
// start/complete/cancel transitions.
type OrderHandler struct {
	usecase usecase.IOrderLifecycleUseCase
}

func NewOrderHandler(uc usecase.IOrderLifecycleUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Refresh godoc
// @Summary      Reload orders from the gateway
// @Tags         orders
// @Produce      json
// @Success      200  {array}   response.OrderResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/refresh [post]
func (h *OrderHandler) Refresh(c *gin.Context) {
	orders, err := h.usecase.Load(c.Request.Context())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ListOrders godoc
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        status  query  string  false  "pendiente, en_progreso, finalizado or cancelado"
// @Param        q       query  string  false  "free text over client, service and address"
// @Success      200  {array}   response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := usecase.OrderFilter{Query: c.Query("q")}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, err := entities.ParseOrderStatus(raw)
		if err != nil {
			writeError(c, errInvalidPayload.WithDetail("status", raw))
			return
		}
		filter.Status = status
	}
	c.JSON(http.StatusOK, response.FromOrders(h.usecase.Orders(filter)))
}

// GetOrder godoc
// @Summary      Get one order
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	order, err := h.usecase.Order(id)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// OpenOrder godoc
// @Summary      Open the order workflow on the details step
// @Tags         workflow
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  usecase.Workflow
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/open [post]
func (h *OrderHandler) OpenOrder(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	wf, err := h.usecase.Open(id)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, wf)
}

// GetWorkflow godoc
// @Summary      Current order workflow
// @Tags         workflow
// @Produce      json
// @Success      200  {object}  usecase.Workflow
// @Router       /workflow [get]
func (h *OrderHandler) GetWorkflow(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Workflow())
}

// CloseWorkflow godoc
// @Summary      Close the order workflow
// @Tags         workflow
// @Produce      json
// @Success      200  {object}  usecase.Workflow
// @Router       /workflow [delete]
func (h *OrderHandler) CloseWorkflow(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.CloseWorkflow())
}

// StartOrder godoc
// @Summary      Start a pending order
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{id}/start [post]
func (h *OrderHandler) StartOrder(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	order, err := h.usecase.Start(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CompleteOrder godoc
// @Summary      Complete an order in progress
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true   "Order ID"
// @Param        payload  body      request.CompleteOrderRequest  false  "Optional end time"
// @Success      200  {object}  response.OrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{id}/complete [post]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.CompleteOrderRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	order, err := h.usecase.Complete(c.Request.Context(), id, payload.EndTime)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RequestCancel godoc
// @Summary      Ask to cancel an order; returns the confirmation token
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.CancelRequestedResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) RequestCancel(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	token, err := h.usecase.RequestCancel(id)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.CancelRequestedResponse{OrderID: id, Token: token})
}

// ConfirmCancel godoc
// @Summary      Confirm a requested cancellation
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Order ID"
// @Param        payload  body      request.ConfirmCancelRequest  true  "Confirmation token and reason"
// @Success      200  {object}  response.OrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{id}/cancel/confirm [post]
func (h *OrderHandler) ConfirmCancel(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.ConfirmCancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	order, err := h.usecase.ConfirmCancel(c.Request.Context(), id, payload.Token, payload.Reason)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AbortCancel godoc
// @Summary      Drop a pending cancellation request
// @Tags         orders
// @Param        id   path  int  true  "Order ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/cancel [delete]
func (h *OrderHandler) AbortCancel(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	if err := h.usecase.AbortCancel(id); err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// bindOptionalJSON binds the body when there is one. It writes the error
// response and returns false on malformed input.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidPayload)
		return false
	}
	return true
}
