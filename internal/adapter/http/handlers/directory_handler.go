package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"fieldtech/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	usecase usecase.IDirectoryUseCase
}

func NewDirectoryHandler(uc usecase.IDirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{usecase: uc}
}

// ListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   entities.Client
// @Failure      502  {object}  pkg.HTTPError
// @Router       /clients [get]
func (h *DirectoryHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.Clients(c.Request.Context())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, clients)
}

// LocateOrder godoc
// @Summary      Geocode the client address of an order
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  usecase.OrderLocation
// @Failure      503  {object}  pkg.HTTPError
// @Router       /orders/{id}/location [get]
func (h *DirectoryHandler) LocateOrder(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	locations, err := h.usecase.Locate(c.Request.Context(), []int64{id})
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	if len(locations) == 0 {
		writeError(c, mapOrderError(usecase.ErrOrderNotFound))
		return
	}
	c.JSON(http.StatusOK, locations[0])
}

// LocateOrders godoc
// @Summary      Geocode several orders at once
// @Tags         orders
// @Produce      json
// @Param        order_ids  query     string  true  "Comma separated order ids"
// @Success      200  {array}   usecase.OrderLocation
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /locations [get]
func (h *DirectoryHandler) LocateOrders(c *gin.Context) {
	var ids []int64
	for _, raw := range strings.Split(c.Query("order_ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeError(c, errInvalidOrderID.WithDetail("order_id", raw))
			return
		}
		ids = append(ids, id)
	}
	locations, err := h.usecase.Locate(c.Request.Context(), ids)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, locations)
}
