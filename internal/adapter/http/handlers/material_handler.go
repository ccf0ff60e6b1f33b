package handlers

import (
	"net/http"

	request "fieldtech/internal/adapter/http/dto/request"
	response "fieldtech/internal/adapter/http/dto/response"
	"fieldtech/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MaterialHandler exposes the material reconciliation step and the rating
// of a finalized order.
type MaterialHandler struct {
	usecase usecase.IMaterialReconciliationUseCase
}

func NewMaterialHandler(uc usecase.IMaterialReconciliationUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// ChooseUsage godoc
// @Summary      Choose how much of the assigned material was used
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Order ID"
// @Param        payload  body      request.MaterialUsageRequest  true  "completo, menos or mas"
// @Success      200  {object}  response.MaterialDraftResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{id}/material-usage [put]
func (h *MaterialHandler) ChooseUsage(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.MaterialUsageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	usage, err := payload.ResolveUsage()
	if err != nil {
		writeError(c, errInvalidPayload.WithDetail("usage", payload.Usage))
		return
	}
	draft, err := h.usecase.ChooseMaterialUsage(id, usage)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialDraft(draft))
}

// GetDraft godoc
// @Summary      Current material quantities form
// @Tags         materials
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.MaterialDraftResponse
// @Router       /orders/{id}/materials [get]
func (h *MaterialHandler) GetDraft(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	draft, err := h.usecase.MaterialDraft(id)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialDraft(draft))
}

// SetQuantity godoc
// @Summary      Set the used quantity of one product
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id          path      int                              true  "Order ID"
// @Param        product_id  path      int                              true  "Product ID"
// @Param        payload     body      request.MaterialQuantityRequest  true  "Quantity"
// @Success      200  {object}  response.MaterialDraftResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/materials/{product_id} [put]
func (h *MaterialHandler) SetQuantity(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	productID, ok := pathID(c, "product_id", errInvalidProductID)
	if !ok {
		return
	}
	var payload request.MaterialQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Quantity == nil {
		writeError(c, errInvalidPayload)
		return
	}
	draft, err := h.usecase.SetMaterialQuantity(id, productID, *payload.Quantity)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialDraft(draft))
}

// Submit godoc
// @Summary      Submit the material batch
// @Description  Without products the quantities entered on the form are sent.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id       path      int                             true   "Order ID"
// @Param        payload  body      request.SubmitMaterialsRequest  false  "Explicit batch"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{id}/materials [post]
func (h *MaterialHandler) Submit(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.SubmitMaterialsRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	quantities, err := payload.ResolveQuantities()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	order, err := h.usecase.SubmitMaterials(c.Request.Context(), id, quantities)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Rate godoc
// @Summary      Rate a finalized order
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Order ID"
// @Param        payload  body      request.RatingRequest  true  "1 to 5 stars"
// @Success      200  {object}  response.OrderResponse
// @Router       /orders/{id}/rating [put]
func (h *MaterialHandler) Rate(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.RatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	order, err := h.usecase.SetRating(id, payload.Stars)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}
