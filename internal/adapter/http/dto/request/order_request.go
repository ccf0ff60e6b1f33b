package request

import (
	"errors"
	"strings"

	"fieldtech/internal/domain/entities"
)

var ErrDuplicateProduct = errors.New("product listed more than once")

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CompleteOrderRequest struct {
	// EndTime is "HH:mm:ss"; empty means now.
	EndTime string `json:"end_time"`
}

type ConfirmCancelRequest struct {
	Token  string `json:"token" binding:"required"`
	Reason string `json:"reason"`
}

type MaterialUsageRequest struct {
	Usage string `json:"usage" binding:"required"`
}

func (r MaterialUsageRequest) ResolveUsage() (entities.MaterialUsage, error) {
	return entities.ParseMaterialUsage(r.Usage)
}

type MaterialQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type UsedProductRequest struct {
	ProductID    int64 `json:"product_id" binding:"required"`
	QuantityUsed int   `json:"quantity_used"`
}

// SubmitMaterialsRequest carries an explicit batch. Leaving products out
// submits the quantities already entered on the draft.
type SubmitMaterialsRequest struct {
	Products []UsedProductRequest `json:"products"`
}

// ResolveQuantities returns nil when products was omitted and a map keyed by
// product id otherwise.
func (r SubmitMaterialsRequest) ResolveQuantities() (map[int64]int, error) {
	if r.Products == nil {
		return nil, nil
	}
	out := make(map[int64]int, len(r.Products))
	for _, p := range r.Products {
		if _, dup := out[p.ProductID]; dup {
			return nil, ErrDuplicateProduct
		}
		out[p.ProductID] = p.QuantityUsed
	}
	return out, nil
}

type RatingRequest struct {
	Stars int `json:"stars" binding:"required"`
}

type SignatureRequest struct {
	Signature string `json:"signature"`
}

func (r SignatureRequest) ResolveSignature() string {
	return strings.TrimSpace(r.Signature)
}
