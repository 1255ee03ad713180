package request

import (
	"strings"
	"time"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase"
)

// StatusEmailRequest is the body of the status email route.
type StatusEmailRequest struct {
	To               string     `json:"to" binding:"required"`
	RequesterName    string     `json:"requester_name"`
	ItemName         string     `json:"item_name" binding:"required"`
	Protocol         string     `json:"protocol"`
	Status           string     `json:"status" binding:"required"`
	BuyerName        string     `json:"buyer_name"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	RejectionReason  string     `json:"rejection_reason"`
}

func (r StatusEmailRequest) ToStatusEmail() usecase.StatusEmail {
	return usecase.StatusEmail{
		To:               strings.TrimSpace(r.To),
		RequesterName:    strings.TrimSpace(r.RequesterName),
		ItemName:         strings.TrimSpace(r.ItemName),
		Protocol:         strings.TrimSpace(r.Protocol),
		Status:           entities.RequisitionStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		BuyerName:        strings.TrimSpace(r.BuyerName),
		ExpectedDelivery: r.ExpectedDelivery,
		RejectionReason:  strings.TrimSpace(r.RejectionReason),
	}
}

type ResetPasswordRequest struct {
	UserID      string `json:"user_id"`
	NewPassword string `json:"new_password"`
}
