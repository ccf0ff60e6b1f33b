package response

import (
	"sort"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase"
)

type ProductResponse struct {
	ID           int64  `json:"id_product"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Model        string `json:"model,omitempty"`
	Brand        string `json:"brand,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	QuantityUsed int    `json:"quantity_used"`
	Subtotal     string `json:"subtotal"`
}

type OrderResponse struct {
	ID                 int64               `json:"id_service_order"`
	Client             entities.ClientInfo `json:"client"`
	ServiceName        string              `json:"service_name"`
	ServiceDescription string              `json:"service_description"`
	ScheduledDate      string              `json:"scheduled_date"`
	StartTime          string              `json:"start_time,omitempty"`
	EndTime            string              `json:"end_time,omitempty"`
	Status             string              `json:"state_"`
	StatusLabel        string              `json:"status_label"`
	Activities         string              `json:"activities,omitempty"`
	Products           []ProductResponse   `json:"products"`
	MaterialsTotal     string              `json:"materials_total"`
	MaterialUsage      string              `json:"material_usage,omitempty"`
	Rating             int                 `json:"rating,omitempty"`
	Signed             bool                `json:"signed"`
	Signature          string              `json:"signature,omitempty"`
	CancelReason       string              `json:"cancel_reason,omitempty"`
}

// FromOrder renders an order. The signature, when present, is returned as a
// data URI ready to be used as an image source.
func FromOrder(o entities.ServiceOrder) OrderResponse {
	products := make([]ProductResponse, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Model:        p.Model,
			Brand:        p.Brand,
			ImageURL:     p.ImageURL,
			UnitPrice:    p.UnitPrice.StringFixed(2),
			Quantity:     p.Quantity,
			QuantityUsed: p.QuantityUsed,
			Subtotal:     p.Subtotal().StringFixed(2),
		})
	}

	resp := OrderResponse{
		ID:                 o.ID,
		Client:             o.Client,
		ServiceName:        o.ServiceName,
		ServiceDescription: o.ServiceDescription,
		ScheduledDate:      o.ScheduledDate,
		StartTime:          o.StartTime,
		EndTime:            o.EndTime,
		Status:             string(o.Status),
		StatusLabel:        o.Status.Label(),
		Activities:         o.Activities,
		Products:           products,
		MaterialsTotal:     o.MaterialsTotal().StringFixed(2),
		MaterialUsage:      string(o.MaterialUsage),
		Rating:             o.Rating,
		Signed:             o.Signature != "",
		CancelReason:       o.CancelReason,
	}
	if o.Signature != "" {
		if uri, err := entities.SignatureDataURI(o.Signature); err == nil {
			resp.Signature = uri
		}
	}
	return resp
}

func FromOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type CancelRequestedResponse struct {
	OrderID int64  `json:"order_id"`
	Token   string `json:"token"`
}

type MaterialDraftResponse struct {
	OrderID    int64                   `json:"order_id"`
	Usage      string                  `json:"usage"`
	Quantities []MaterialQuantityEntry `json:"quantities"`
}

type MaterialQuantityEntry struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// FromMaterialDraft lists quantities ordered by product id.
func FromMaterialDraft(d usecase.MaterialDraft) MaterialDraftResponse {
	resp := MaterialDraftResponse{OrderID: d.OrderID, Usage: string(d.Usage), Quantities: make([]MaterialQuantityEntry, 0, len(d.Quantities))}
	for id, qty := range d.Quantities {
		resp.Quantities = append(resp.Quantities, MaterialQuantityEntry{ProductID: id, Quantity: qty})
	}
	sort.Slice(resp.Quantities, func(i, j int) bool { return resp.Quantities[i].ProductID < resp.Quantities[j].ProductID })
	return resp
}

type SessionResponse struct {
	Token string         `json:"token,omitempty"`
	User  SessionUserDTO `json:"user"`
}

type SessionUserDTO struct {
	ID    int64  `json:"id_user"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
