package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownOrderStatus   = errors.New("unknown order status")
	ErrUnknownMaterialUsage = errors.New("unknown material usage")
	ErrInvariantViolation   = errors.New("service order invariant violation")
)

// OrderStatus is the lifecycle state of a service order.
//
// Wire values are the lower-case strings the gateway stores in state_.
//
//	pendiente --start--> en_progreso --complete--> finalizado
//	pendiente --cancel--> cancelado
//	en_progreso --cancel--> cancelado
type OrderStatus string

const (
	StatusUnknown    OrderStatus = ""
	StatusPending    OrderStatus = "pendiente"
	StatusInProgress OrderStatus = "en_progreso"
	StatusFinalized  OrderStatus = "finalizado"
	StatusCancelled  OrderStatus = "cancelado"
)

var orderStatusAliases = map[string]OrderStatus{
	"pendiente":   StatusPending,
	"pending":     StatusPending,
	"en_progreso": StatusInProgress,
	"en progreso": StatusInProgress,
	"in_progress": StatusInProgress,
	"finalizado":  StatusFinalized,
	"finalized":   StatusFinalized,
	"completed":   StatusFinalized,
	"cancelado":   StatusCancelled,
	"cancelled":   StatusCancelled,
	"canceled":    StatusCancelled,
}

// ParseOrderStatus normalizes a status coming from outside the process.
// Anything it does not recognize yields StatusUnknown and ErrUnknownOrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if s, ok := orderStatusAliases[key]; ok {
		return s, nil
	}
	return StatusUnknown, fmt.Errorf("%w: %q", ErrUnknownOrderStatus, raw)
}

func (s OrderStatus) String() string {
	return string(s)
}

// Label is the human-readable name shown on status badges.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusInProgress:
		return "En progreso"
	case StatusFinalized:
		return "Finalizado"
	case StatusCancelled:
		return "Cancelado"
	}
	return "Desconocido"
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusFinalized || s == StatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusFinalized || next == StatusCancelled
	}
	return false
}

// MaterialUsage classifies how much of the assigned material was consumed.
type MaterialUsage string

const (
	MaterialUsageNone    MaterialUsage = ""
	MaterialUsageFull    MaterialUsage = "completo"
	MaterialUsagePartial MaterialUsage = "menos"
	MaterialUsageExcess  MaterialUsage = "mas"
)

func ParseMaterialUsage(raw string) (MaterialUsage, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completo", "full":
		return MaterialUsageFull, nil
	case "menos", "partial":
		return MaterialUsagePartial, nil
	case "mas", "más", "excess":
		return MaterialUsageExcess, nil
	}
	return MaterialUsageNone, fmt.Errorf("%w: %q", ErrUnknownMaterialUsage, raw)
}

// NeedsQuantities is true when the technician must report per-product amounts.
func (u MaterialUsage) NeedsQuantities() bool {
	return u == MaterialUsagePartial || u == MaterialUsageExcess
}

// Product is a catalog product assigned to a service order.
//
// Quantity is what was assigned; QuantityUsed starts equal to it and is
// overwritten only by material reconciliation.
type Product struct {
	ID           int64           `json:"id_product"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Model        string          `json:"model"`
	Brand        string          `json:"brand"`
	ImageURL     string          `json:"image_url,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	QuantityUsed int             `json:"quantity_used"`
}

// Subtotal is the used quantity priced at the unit price.
func (p Product) Subtotal() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.QuantityUsed)))
}

// ClientInfo is the client data denormalized onto an order.
type ClientInfo struct {
	Name    string `json:"client_name"`
	Address string `json:"client_address"`
	Email   string `json:"client_email"`
	Phone   string `json:"client_phone"`
}

// ServiceOrder is one scheduled unit of field work.
type ServiceOrder struct {
	ID                 int64         `json:"id_service_order"`
	Client             ClientInfo    `json:"client"`
	ServiceName        string        `json:"service_name"`
	ServiceDescription string        `json:"service_description"`
	ScheduledDate      string        `json:"scheduled_date"`
	StartTime          string        `json:"start_time"`
	EndTime            string        `json:"end_time"`
	Status             OrderStatus   `json:"state_"`
	Activities         string        `json:"activities"`
	Products           []Product     `json:"products"`
	MaterialUsage      MaterialUsage `json:"material_usage,omitempty"`
	Rating             int           `json:"rating,omitempty"`
	Signature          string        `json:"signature,omitempty"`
	CancelReason       string        `json:"cancel_reason,omitempty"`
}

// Clone returns a deep copy safe to hand outside the owner of the order.
func (o ServiceOrder) Clone() ServiceOrder {
	cp := o
	if o.Products != nil {
		cp.Products = make([]Product, len(o.Products))
		copy(cp.Products, o.Products)
	}
	return cp
}

// Product looks up a line item by product id.
func (o ServiceOrder) Product(productID int64) (Product, bool) {
	for _, p := range o.Products {
		if p.ID == productID {
			return p, true
		}
	}
	return Product{}, false
}

// MaterialsTotal sums the priced used quantities of every product.
func (o ServiceOrder) MaterialsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Subtotal())
	}
	return total
}

// Validate checks the time and signature invariants tied to the status.
func (o ServiceOrder) Validate() error {
	switch o.Status {
	case StatusPending:
		if o.StartTime != "" {
			return fmt.Errorf("%w: pending order %d has start_time", ErrInvariantViolation, o.ID)
		}
	case StatusInProgress, StatusFinalized:
		if o.StartTime == "" {
			return fmt.Errorf("%w: order %d in %s without start_time", ErrInvariantViolation, o.ID, o.Status)
		}
	case StatusCancelled:
	default:
		return fmt.Errorf("%w: order %d has status %q", ErrInvariantViolation, o.ID, o.Status)
	}

	if (o.EndTime != "") != (o.Status == StatusFinalized) {
		return fmt.Errorf("%w: order %d end_time does not match status %s", ErrInvariantViolation, o.ID, o.Status)
	}
	if o.Signature != "" && o.Status != StatusFinalized {
		return fmt.Errorf("%w: order %d signed while %s", ErrInvariantViolation, o.ID, o.Status)
	}
	return nil
}
