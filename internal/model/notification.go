package model

type GetNotificationsRequest struct{}

type GetNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}
