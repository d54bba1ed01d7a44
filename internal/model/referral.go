package model

type CreateReferralRequest struct {
	TargetUsername string `json:"target_username"`
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
	LinkTitle      string `json:"link_title"`
	LinkURL        string `json:"link_url"`
	Description    string `json:"description"`
}

type CreateReferralResponse struct {
	ID string `json:"id"`
}

type GetReferralsRequest struct {
	Status string `json:"status"`
}

type GetReferralsResponse struct {
	Requests []ReferralRequest `json:"requests"`
}

type ReviewReferralRequest struct {
	ID       string `json:"id"`
	Approved bool   `json:"approved"`
}

type ReviewReferralResponse struct{}
