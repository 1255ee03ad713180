package response

import "requisicoes/internal/domain/entities"

type NotificationListResponse struct {
	Items  []entities.Notification `json:"items"`
	Unread int                     `json:"unread"`
}

func FromNotifications(items []entities.Notification) NotificationListResponse {
	if items == nil {
		items = []entities.Notification{}
	}
	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	return NotificationListResponse{Items: items, Unread: unread}
}

// ResetPasswordResponse is either {"success": true} or {"error": "..."}.
type ResetPasswordResponse struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}
