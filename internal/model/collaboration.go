package model

type CreateCollaborationRequest struct {
	ReceiverUsername string `json:"receiver_username"`
	SenderName       string `json:"sender_name"`
	SenderEmail      string `json:"sender_email"`
	Message          string `json:"message"`
	ProjectID        string `json:"project_id"`
}

type CreateCollaborationResponse struct {
	ID string `json:"id"`
}

type GetCollaborationsRequest struct {
	Status string `json:"status"`
}

type GetCollaborationsResponse struct {
	Requests []CollaborationRequest `json:"requests"`
}

type ReviewCollaborationRequest struct {
	ID       string `json:"id"`
	Accepted bool   `json:"accepted"`
}

type ReviewCollaborationResponse struct{}
