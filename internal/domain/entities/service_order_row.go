package entities

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceOrderRow is one row of the gateway's full-order listing: one row per
// order × product, with the client and service denormalized. Orders without
// products come back as a single row with null product columns.
type ServiceOrderRow struct {
	ServiceOrderID     int64               `json:"id_service_order"`
	ClientName         string              `json:"client_name"`
	ClientStreet       string              `json:"client_street"`
	ClientNumber       string              `json:"client_number"`
	ClientNeighborhood string              `json:"client_neighborhood"`
	ClientCity         string              `json:"client_city"`
	ClientState        string              `json:"client_state"`
	ClientCountry      string              `json:"client_country"`
	ClientEmail        string              `json:"client_email"`
	ClientPhone        string              `json:"client_phone"`
	ServiceName        string              `json:"service_name"`
	ServiceDescription string              `json:"service_description"`
	ScheduledDate      string              `json:"scheduled_date"`
	StartTime          *string             `json:"start_time"`
	EndTime            *string             `json:"end_time"`
	State              string              `json:"state_"`
	Activities         string              `json:"activities"`
	Files              *string             `json:"files"`
	ProductID          *int64              `json:"id_product"`
	ProductName        string              `json:"product_name,omitempty"`
	ProductDescription string              `json:"product_description,omitempty"`
	QuantityUsed       *int                `json:"quantity_used"`
	SalePrice          decimal.NullDecimal `json:"sale_price"`
	Model              string              `json:"model,omitempty"`
	ManufacturerBrand  string              `json:"manufacturer_brand,omitempty"`
	ProductImage       string              `json:"product_image,omitempty"`
}

// GroupServiceOrderRows folds flat rows into orders, keeping the order in
// which each id first appears. Statuses are normalized; a missing state is
// pending and an unrecognized one stays StatusUnknown, which no transition
// accepts.
func GroupServiceOrderRows(rows []ServiceOrderRow) []ServiceOrder {
	index := make(map[int64]int, len(rows))
	orders := make([]ServiceOrder, 0, len(rows))

	for _, r := range rows {
		i, ok := index[r.ServiceOrderID]
		if !ok {
			status := StatusPending
			if strings.TrimSpace(r.State) != "" {
				status, _ = ParseOrderStatus(r.State)
			}
			orders = append(orders, ServiceOrder{
				ID: r.ServiceOrderID,
				Client: ClientInfo{
					Name:    r.ClientName,
					Address: FormatAddress(r.ClientStreet, r.ClientNumber, r.ClientNeighborhood, r.ClientCity, r.ClientState, r.ClientCountry),
					Email:   r.ClientEmail,
					Phone:   r.ClientPhone,
				},
				ServiceName:        r.ServiceName,
				ServiceDescription: r.ServiceDescription,
				ScheduledDate:      r.ScheduledDate,
				StartTime:          deref(r.StartTime),
				EndTime:            deref(r.EndTime),
				Status:             status,
				Activities:         r.Activities,
				Signature:          deref(r.Files),
			})
			i = len(orders) - 1
			index[r.ServiceOrderID] = i
		}

		if r.ProductID == nil {
			continue
		}
		qty := 0
		if r.QuantityUsed != nil {
			qty = *r.QuantityUsed
		}
		orders[i].Products = append(orders[i].Products, Product{
			ID:           *r.ProductID,
			Name:         r.ProductName,
			Description:  r.ProductDescription,
			Model:        r.Model,
			Brand:        r.ManufacturerBrand,
			ImageURL:     r.ProductImage,
			UnitPrice:    r.SalePrice.Decimal,
			Quantity:     qty,
			QuantityUsed: qty,
		})
	}
	return orders
}

// FlattenServiceOrder is the inverse of GroupServiceOrderRows for a single
// order; client carries the address parts the order only has pre-rendered.
func FlattenServiceOrder(o ServiceOrder, c Client) []ServiceOrderRow {
	base := ServiceOrderRow{
		ServiceOrderID:     o.ID,
		ClientName:         c.Name,
		ClientStreet:       c.Street,
		ClientNumber:       c.Number,
		ClientNeighborhood: c.Neighborhood,
		ClientCity:         c.City,
		ClientState:        c.State,
		ClientCountry:      c.Country,
		ClientEmail:        c.Email,
		ClientPhone:        c.Phone,
		ServiceName:        o.ServiceName,
		ServiceDescription: o.ServiceDescription,
		ScheduledDate:      o.ScheduledDate,
		StartTime:          ptrOrNil(o.StartTime),
		EndTime:            ptrOrNil(o.EndTime),
		State:              string(o.Status),
		Activities:         o.Activities,
		Files:              ptrOrNil(o.Signature),
	}
	if len(o.Products) == 0 {
		return []ServiceOrderRow{base}
	}

	products := make([]Product, len(o.Products))
	copy(products, o.Products)
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	rows := make([]ServiceOrderRow, 0, len(products))
	for _, p := range products {
		row := base
		id := p.ID
		qty := p.QuantityUsed
		row.ProductID = &id
		row.ProductName = p.Name
		row.ProductDescription = p.Description
		row.QuantityUsed = &qty
		row.SalePrice = decimal.NewNullDecimal(p.UnitPrice)
		row.Model = p.Model
		row.ManufacturerBrand = p.Brand
		row.ProductImage = p.ImageURL
		rows = append(rows, row)
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
