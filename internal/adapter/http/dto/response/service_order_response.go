package response

import (
	"time"

	"fieldtech/internal/domain/entities"
)

// ServiceOrderRecord is the order as the reference gateway reports it after
// a transition. Times are null until set.
type ServiceOrderRecord struct {
	ID            int64   `json:"id_service_order"`
	State         string  `json:"state_"`
	ScheduledDate string  `json:"scheduled_date"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Files         *string `json:"files"`
	CancelReason  string  `json:"cancel_reason,omitempty"`
}

type TransitionResponse struct {
	Message      string             `json:"message"`
	ServiceOrder ServiceOrderRecord `json:"service_order"`
}

func FromServiceOrder(message string, o entities.ServiceOrder) TransitionResponse {
	return TransitionResponse{
		Message: message,
		ServiceOrder: ServiceOrderRecord{
			ID:            o.ID,
			State:         string(o.Status),
			ScheduledDate: o.ScheduledDate,
			StartTime:     nullable(o.StartTime),
			EndTime:       nullable(o.EndTime),
			Files:         nullable(o.Signature),
			CancelReason:  o.CancelReason,
		},
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type GatewayLoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      SessionUserDTO `json:"user"`
}
