package request

import "fieldtech/internal/usecase/interfaces"

// Payloads accepted by the reference gateway. Field names follow the
// gateway's wire format.

type StartServiceOrderRequest struct {
	StartTime string `json:"start_time"`
}

type CompleteServiceOrderRequest struct {
	EndTime  string                   `json:"end_time"`
	Products []interfaces.UsedProduct `json:"products"`
}

type CancelServiceOrderRequest struct {
	CancelReason string `json:"cancel_reason"`
}

type UsedProductsRequest struct {
	Products []interfaces.UsedProduct `json:"products" binding:"required"`
}

type SignServiceOrderRequest struct {
	Files string `json:"files" binding:"required"`
}

type GatewayLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password_" binding:"required"`
}
