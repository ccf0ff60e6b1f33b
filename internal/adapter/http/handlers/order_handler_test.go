package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldtech/internal/adapter/http/dto/response"
	"fieldtech/internal/adapter/http/handlers/mocks"
	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase"
	"fieldtech/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func sampleOrder(status entities.OrderStatus) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:            7,
		Client:        entities.ClientInfo{Name: "Clínica San Rafael", Address: "Calle 5 de Mayo 12, Puebla"},
		ServiceName:   "Mantenimiento de aire acondicionado",
		ScheduledDate: "2026-10-15",
		Status:        status,
		Products: []entities.Product{
			{ID: 1, Name: "Filtro", UnitPrice: decimal.RequireFromString("150.5"), Quantity: 2, QuantityUsed: 2},
		},
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes status and query filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		uc.EXPECT().Orders(usecase.OrderFilter{Status: entities.StatusPending, Query: "clinica"}).
			Return([]entities.ServiceOrder{sampleOrder(entities.StatusPending)})

		w := serve(r, http.MethodGet, "/v1/orders?status=pending&q=clinica", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []response.OrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(got) != 1 || got[0].ID != 7 || got[0].Status != "pendiente" || got[0].MaterialsTotal != "301.00" {
			t.Fatalf("unexpected body %+v", got)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderLifecycleUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		w := serve(r, http.MethodGet, "/v1/orders?status=archived", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/refresh", h.Refresh)

		uc.EXPECT().Load(gomock.Any()).Return(nil, &usecase.OperationFailedError{
			Action: "load orders", Message: "could not load orders", StatusCode: http.StatusServiceUnavailable,
		})

		w := serve(r, http.MethodPost, "/v1/orders/refresh", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Message != "could not load orders" || body.Details["gateway_status"] != float64(http.StatusServiceUnavailable) {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/refresh", h.Refresh)

		uc.EXPECT().Load(gomock.Any()).Return([]entities.ServiceOrder{sampleOrder(entities.StatusPending)}, nil)

		w := serve(r, http.MethodPost, "/v1/orders/refresh", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderLifecycleUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		for _, path := range []string{"/v1/orders/abc", "/v1/orders/0", "/v1/orders/-3"} {
			if w := serve(r, http.MethodGet, path, ""); w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", path, w.Code)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().Order(int64(99)).Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		w := serve(r, http.MethodGet, "/v1/orders/99", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "ORDER_NOT_FOUND" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})
}

func TestOrderHandler_Workflow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := gin.New()
	r.POST("/v1/orders/:id/open", h.OpenOrder)
	r.GET("/v1/workflow", h.GetWorkflow)
	r.DELETE("/v1/workflow", h.CloseWorkflow)

	uc.EXPECT().Open(int64(7)).Return(usecase.Workflow{OrderID: 7, Step: usecase.StepMaterials, Open: true}, nil)
	uc.EXPECT().Workflow().Return(usecase.Workflow{OrderID: 7, Step: usecase.StepMaterials, Open: true})
	uc.EXPECT().CloseWorkflow().Return(usecase.Workflow{})

	w := serve(r, http.MethodPost, "/v1/orders/7/open", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var wf usecase.Workflow
	if err := json.Unmarshal(w.Body.Bytes(), &wf); err != nil || wf.Step != usecase.StepMaterials || !wf.Open {
		t.Fatalf("unexpected workflow %s", w.Body.String())
	}

	if w := serve(r, http.MethodGet, "/v1/workflow", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = serve(r, http.MethodDelete, "/v1/workflow", "")
	if err := json.Unmarshal(w.Body.Bytes(), &wf); err != nil || wf.Open {
		t.Fatalf("expected closed workflow, got %s", w.Body.String())
	}
}

func TestOrderHandler_StartOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid transition", &usecase.InvalidTransitionError{OrderID: 7, Action: "start", Status: entities.StatusFinalized, Reason: "order already finalized"}, http.StatusConflict, "INVALID_TRANSITION"},
		{"in flight", usecase.ErrOperationInFlight, http.StatusConflict, "OPERATION_IN_FLIGHT"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
			h := NewOrderHandler(uc)

			r := gin.New()
			r.POST("/v1/orders/:id/start", h.StartOrder)

			uc.EXPECT().Start(gomock.Any(), int64(7)).Return(entities.ServiceOrder{}, tc.err)

			w := serve(r, http.MethodPost, "/v1/orders/7/start", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if body := decodeError(t, w); body.Code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, body.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/start", h.StartOrder)

		started := sampleOrder(entities.StatusInProgress)
		started.StartTime = "09:30:00"
		uc.EXPECT().Start(gomock.Any(), int64(7)).Return(started, nil)

		w := serve(r, http.MethodPost, "/v1/orders/7/start", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.OrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.Status != "en_progreso" || got.StartTime != "09:30:00" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestOrderHandler_CompleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without body completes now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/complete", h.CompleteOrder)

		uc.EXPECT().Complete(gomock.Any(), int64(7), "").Return(sampleOrder(entities.StatusFinalized), nil)

		if w := serve(r, http.MethodPost, "/v1/orders/7/complete", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("too early", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/complete", h.CompleteOrder)

		uc.EXPECT().Complete(gomock.Any(), int64(7), "10:02:00").
			Return(entities.ServiceOrder{}, &usecase.TooEarlyError{OrderID: 7, Elapsed: 2 * time.Minute, Minimum: 5 * time.Minute})

		w := serve(r, http.MethodPost, "/v1/orders/7/complete", `{"end_time":"10:02:00"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "TOO_EARLY" || body.Details["elapsed_minutes"] != float64(2) || body.Details["minimum_minutes"] != float64(5) {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderLifecycleUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/orders/:id/complete", h.CompleteOrder)

		if w := serve(r, http.MethodPost, "/v1/orders/7/complete", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("request, confirm and abort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/cancel", h.RequestCancel)
		r.POST("/v1/orders/:id/cancel/confirm", h.ConfirmCancel)
		r.DELETE("/v1/orders/:id/cancel", h.AbortCancel)

		cancelled := sampleOrder(entities.StatusCancelled)
		cancelled.CancelReason = "cliente ausente"
		gomock.InOrder(
			uc.EXPECT().RequestCancel(int64(7)).Return("tok-1", nil),
			uc.EXPECT().ConfirmCancel(gomock.Any(), int64(7), "tok-1", "cliente ausente").Return(cancelled, nil),
			uc.EXPECT().AbortCancel(int64(7)).Return(nil),
		)

		w := serve(r, http.MethodPost, "/v1/orders/7/cancel", "")
		var requested response.CancelRequestedResponse
		if err := json.Unmarshal(w.Body.Bytes(), &requested); err != nil || requested.Token != "tok-1" || requested.OrderID != 7 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}

		w = serve(r, http.MethodPost, "/v1/orders/7/cancel/confirm", `{"token":"tok-1","reason":"cliente ausente"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		if w := serve(r, http.MethodDelete, "/v1/orders/7/cancel", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("confirm requires token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderLifecycleUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/orders/:id/cancel/confirm", h.ConfirmCancel)

		if w := serve(r, http.MethodPost, "/v1/orders/7/cancel/confirm", `{"reason":"x"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("confirm with stale token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/cancel/confirm", h.ConfirmCancel)

		uc.EXPECT().ConfirmCancel(gomock.Any(), int64(7), "old", "").Return(entities.ServiceOrder{}, usecase.ErrCancelNotConfirmed)

		w := serve(r, http.MethodPost, "/v1/orders/7/cancel/confirm", `{"token":"old"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
