package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"fieldtech/internal/adapter/http/dto/response"
	"fieldtech/internal/adapter/http/handlers/mocks"
	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func materialRouter(h *MaterialHandler) *gin.Engine {
	r := gin.New()
	r.PUT("/v1/orders/:id/material-usage", h.ChooseUsage)
	r.GET("/v1/orders/:id/materials", h.GetDraft)
	r.PUT("/v1/orders/:id/materials/:product_id", h.SetQuantity)
	r.POST("/v1/orders/:id/materials", h.Submit)
	r.PUT("/v1/orders/:id/rating", h.Rate)
	return r
}

func TestMaterialHandler_ChooseUsage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown usage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := materialRouter(NewMaterialHandler(mocks.NewMockIMaterialReconciliationUseCase(ctrl)))

		w := serve(r, http.MethodPut, "/v1/orders/7/material-usage", `{"usage":"todo"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Details["usage"] != "todo" {
			t.Fatalf("unexpected details %+v", body.Details)
		}
	})

	t.Run("returns sorted draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialReconciliationUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().ChooseMaterialUsage(int64(7), entities.MaterialUsagePartial).
			Return(usecase.MaterialDraft{OrderID: 7, Usage: entities.MaterialUsagePartial, Quantities: map[int64]int{3: 1, 1: 2}}, nil)

		w := serve(r, http.MethodPut, "/v1/orders/7/material-usage", `{"usage":"menos"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.MaterialDraftResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got.Usage != "menos" || len(got.Quantities) != 2 || got.Quantities[0].ProductID != 1 || got.Quantities[1].ProductID != 3 {
			t.Fatalf("unexpected draft %+v", got)
		}
	})

	t.Run("order not in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialReconciliationUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().ChooseMaterialUsage(int64(7), entities.MaterialUsageFull).
			Return(usecase.MaterialDraft{}, &usecase.InvalidTransitionError{OrderID: 7, Action: "reconcile materials", Status: entities.StatusPending, Reason: "order has not started"})

		w := serve(r, http.MethodPut, "/v1/orders/7/material-usage", `{"usage":"completo"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "order has not started" || body.Details["status"] != "pendiente" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestMaterialHandler_SetQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("zero is a valid quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialReconciliationUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().SetMaterialQuantity(int64(7), int64(1), 0).
			Return(usecase.MaterialDraft{OrderID: 7, Usage: entities.MaterialUsagePartial, Quantities: map[int64]int{1: 0}}, nil)

		if w := serve(r, http.MethodPut, "/v1/orders/7/materials/1", `{"quantity":0}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := materialRouter(NewMaterialHandler(mocks.NewMockIMaterialReconciliationUseCase(ctrl)))

		if w := serve(r, http.MethodPut, "/v1/orders/7/materials/1", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid product id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := materialRouter(NewMaterialHandler(mocks.NewMockIMaterialReconciliationUseCase(ctrl)))

		w := serve(r, http.MethodPut, "/v1/orders/7/materials/x", `{"quantity":1}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_PRODUCT_ID" {
			t.Fatalf("expected INVALID_PRODUCT_ID, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialReconciliationUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().SetMaterialQuantity(int64(7), int64(1), -1).
			Return(usecase.MaterialDraft{}, fmt.Errorf("%w: quantity must not be negative", usecase.ErrInvalidInput))

		w := serve(r, http.MethodPut, "/v1/orders/7/materials/1", `{"quantity":-1}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_INPUT" {
			t.Fatalf("expected INVALID_INPUT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("product not on order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialReconciliationUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().SetMaterialQuantity(int64(7), int64(9), 1).Return(usecase.MaterialDraft{}, usecase.ErrProductNotFound)

		if w := serve(r, http.MethodPut, "/v1/orders/7/materials/9", `{"quantity":1}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("explicit batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialReconciliationUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().SubmitMaterials(gomock.Any(), int64(7), map[int64]int{1: 1, 2: 4}).
			Return(sampleOrder(entities.StatusInProgress), nil)

		w := serve(r, http.MethodPost, "/v1/orders/7/materials", `{"products":[{"product_id":1,"quantity_used":1},{"product_id":2,"quantity_used":4}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("draft batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialReconciliationUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().SubmitMaterials(gomock.Any(), int64(7), gomock.Nil()).Return(entities.ServiceOrder{}, usecase.ErrEmptyBatch)

		w := serve(r, http.MethodPost, "/v1/orders/7/materials", "")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "EMPTY_BATCH" {
			t.Fatalf("expected EMPTY_BATCH, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := materialRouter(NewMaterialHandler(mocks.NewMockIMaterialReconciliationUseCase(ctrl)))

		w := serve(r, http.MethodPost, "/v1/orders/7/materials", `{"products":[{"product_id":1,"quantity_used":1},{"product_id":1,"quantity_used":2}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_Rate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaterialReconciliationUseCase(ctrl)
	r := materialRouter(NewMaterialHandler(uc))

	rated := sampleOrder(entities.StatusFinalized)
	rated.Rating = 4
	uc.EXPECT().SetRating(int64(7), 4).Return(rated, nil)

	w := serve(r, http.MethodPut, "/v1/orders/7/rating", `{"stars":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got response.OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.Rating != 4 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestSignatureHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockISignatureCaptureUseCase) *gin.Engine {
		h := NewSignatureHandler(uc)
		r := gin.New()
		r.PUT("/v1/orders/:id/signature", h.Draft)
		r.DELETE("/v1/orders/:id/signature", h.Clear)
		r.POST("/v1/orders/:id/signature/submit", h.Submit)
		return r
	}

	t.Run("draft and clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureCaptureUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().DraftSignature(int64(7), "iVBORw0KGgo=").Return(nil)
		uc.EXPECT().ClearSignature(int64(7)).Return(nil)

		if w := serve(r, http.MethodPut, "/v1/orders/7/signature", `{"signature":"  iVBORw0KGgo=  "}`); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := serve(r, http.MethodDelete, "/v1/orders/7/signature", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("submit uses the draft when body is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureCaptureUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SubmitSignature(gomock.Any(), int64(7), "").Return(entities.ServiceOrder{}, fmt.Errorf("%w: signature is empty", usecase.ErrInvalidInput))

		w := serve(r, http.MethodPost, "/v1/orders/7/signature/submit", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "invalid input: signature is empty" {
			t.Fatalf("unexpected message %q", body.Message)
		}
	})

	t.Run("submit failure from gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureCaptureUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SubmitSignature(gomock.Any(), int64(7), "abc").
			Return(entities.ServiceOrder{}, &usecase.OperationFailedError{Action: "sign", Message: "Orden no encontrada", StatusCode: http.StatusNotFound})

		w := serve(r, http.MethodPost, "/v1/orders/7/signature/submit", `{"signature":"abc"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "Orden no encontrada" {
			t.Fatalf("expected gateway message, got %q", body.Message)
		}
	})
}
