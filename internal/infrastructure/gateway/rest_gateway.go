package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg/logger"
)

const (
	DefaultTimeout  = 15 * time.Second
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 64 << 10
)

var ErrMissingBaseURL = errors.New("missing gateway base url")

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// RESTGateway talks JSON to the service order backend. It keeps the session
// token from the last login, and its cookie jar keeps whatever session cookie
// the backend sets (and clears on logout).
type RESTGateway struct {
	baseURL *url.URL
	client  *http.Client

	mu    sync.RWMutex
	token string
}

var _ interfaces.IOrderGateway = (*RESTGateway)(nil)

func NewRESTGateway(cfg Config) (*RESTGateway, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse gateway base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &RESTGateway{
		baseURL: base,
		client:  &http.Client{Timeout: cfg.Timeout, Jar: jar},
	}, nil
}

type orderState struct {
	State     string `json:"state_"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// transitionResponse accepts both {"service_order": {...}} and a bare order
// record.
type transitionResponse struct {
	ServiceOrder *orderState `json:"service_order"`
	orderState
}

func (r transitionResponse) result() interfaces.TransitionResult {
	s := r.orderState
	if r.ServiceOrder != nil {
		s = *r.ServiceOrder
	}
	return interfaces.TransitionResult{Status: s.State, StartTime: s.StartTime, EndTime: s.EndTime}
}

type usedProductsBody struct {
	Products []interfaces.UsedProduct `json:"products"`
}

func (g *RESTGateway) ListClients(ctx context.Context) ([]entities.Client, error) {
	var out []entities.Client
	if err := g.do(ctx, http.MethodGet, "/clients", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *RESTGateway) ListFullOrders(ctx context.Context) ([]entities.ServiceOrderRow, error) {
	var out []entities.ServiceOrderRow
	if err := g.do(ctx, http.MethodGet, "/service-orders-full", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *RESTGateway) StartOrder(ctx context.Context, orderID int64, req interfaces.StartOrderRequest) (interfaces.TransitionResult, error) {
	body := struct {
		StartTime string `json:"start_time,omitempty"`
	}{req.StartTime}

	var out transitionResponse
	if err := g.do(ctx, http.MethodPut, orderPath(orderID, "start"), req.RequestID, body, &out); err != nil {
		return interfaces.TransitionResult{}, err
	}
	return out.result(), nil
}

func (g *RESTGateway) CompleteOrder(ctx context.Context, orderID int64, req interfaces.CompleteOrderRequest) (interfaces.TransitionResult, error) {
	body := struct {
		EndTime  string                   `json:"end_time,omitempty"`
		Products []interfaces.UsedProduct `json:"products,omitempty"`
	}{req.EndTime, req.Products}

	var out transitionResponse
	if err := g.do(ctx, http.MethodPut, orderPath(orderID, "complete"), req.RequestID, body, &out); err != nil {
		return interfaces.TransitionResult{}, err
	}
	return out.result(), nil
}

func (g *RESTGateway) CancelOrder(ctx context.Context, orderID int64, req interfaces.CancelOrderRequest) (interfaces.TransitionResult, error) {
	body := struct {
		CancelReason string `json:"cancel_reason,omitempty"`
	}{req.Reason}

	var out transitionResponse
	if err := g.do(ctx, http.MethodPut, orderPath(orderID, "cancel"), req.RequestID, body, &out); err != nil {
		return interfaces.TransitionResult{}, err
	}
	return out.result(), nil
}

func (g *RESTGateway) SubmitUsedProducts(ctx context.Context, orderID int64, requestID string, products []interfaces.UsedProduct) error {
	return g.do(ctx, http.MethodPost, orderPath(orderID, "products"), requestID, usedProductsBody{Products: products}, nil)
}

func (g *RESTGateway) SignOrder(ctx context.Context, orderID int64, requestID string, files string) error {
	body := struct {
		Files string `json:"files"`
	}{files}
	return g.do(ctx, http.MethodPut, orderPath(orderID, "sign"), requestID, body, nil)
}

func (g *RESTGateway) Login(ctx context.Context, email, password string) (interfaces.Session, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password_"`
	}{email, password}

	var out struct {
		Token string                 `json:"token"`
		User  interfaces.SessionUser `json:"user"`
	}
	if err := g.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return interfaces.Session{}, err
	}

	g.mu.Lock()
	g.token = out.Token
	g.mu.Unlock()

	return interfaces.Session{Token: out.Token, User: out.User}, nil
}

func (g *RESTGateway) Logout(ctx context.Context) error {
	err := g.do(ctx, http.MethodPost, "/auth/logout", "", nil, nil)

	g.mu.Lock()
	g.token = ""
	g.mu.Unlock()
	return err
}

func orderPath(id int64, action string) string {
	return fmt.Sprintf("/service-orders/%d/%s", id, action)
}

// do sends one request; it never retries. Non-2xx answers become
// *interfaces.GatewayError carrying the backend's message when it sent one.
func (g *RESTGateway) do(ctx context.Context, method, path, requestID string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}
	g.mu.RLock()
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
	g.mu.RUnlock()

	started := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		logger.Warn(ctx, "gateway request failed", "method", method, "path", path, "error", err)
		return &interfaces.GatewayError{Err: err}
	}
	defer resp.Body.Close()

	logger.Debug(ctx, "gateway request", "method", method, "path", path, "status", resp.StatusCode, "latency_ms", time.Since(started).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &interfaces.GatewayError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &interfaces.GatewayError{StatusCode: resp.StatusCode, Message: "invalid response from server", Err: err}
	}
	return nil
}

// errorMessage pulls "message" or "error" out of a JSON error body.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	switch e := body.Error.(type) {
	case string:
		return e
	case map[string]any:
		if msg, ok := e["message"].(string); ok {
			return msg
		}
	}
	return ""
}
