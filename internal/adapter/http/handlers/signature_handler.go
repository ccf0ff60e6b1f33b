package handlers

import (
	"net/http"

	request "fieldtech/internal/adapter/http/dto/request"
	response "fieldtech/internal/adapter/http/dto/response"
	"fieldtech/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SignatureHandler struct {
	usecase usecase.ISignatureCaptureUseCase
}

func NewSignatureHandler(uc usecase.ISignatureCaptureUseCase) *SignatureHandler {
	return &SignatureHandler{usecase: uc}
}

// Draft godoc
// @Summary      Keep a signature draft for an order
// @Tags         signature
// @Accept       json
// @Param        id       path  int                       true  "Order ID"
// @Param        payload  body  request.SignatureRequest  true  "Base64 image"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders/{id}/signature [put]
func (h *SignatureHandler) Draft(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.DraftSignature(id, payload.ResolveSignature()); err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear godoc
// @Summary      Clear the signature draft
// @Tags         signature
// @Param        id  path  int  true  "Order ID"
// @Success      204
// @Router       /orders/{id}/signature [delete]
func (h *SignatureHandler) Clear(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	if err := h.usecase.ClearSignature(id); err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit godoc
// @Summary      Submit the client signature
// @Description  Without a payload the current draft is sent.
// @Tags         signature
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true   "Order ID"
// @Param        payload  body      request.SignatureRequest  false  "Base64 image"
// @Success      200  {object}  response.OrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{id}/signature/submit [post]
func (h *SignatureHandler) Submit(c *gin.Context) {
	id, ok := pathID(c, "id", errInvalidOrderID)
	if !ok {
		return
	}
	var payload request.SignatureRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	order, err := h.usecase.SubmitSignature(c.Request.Context(), id, payload.ResolveSignature())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}
