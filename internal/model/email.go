package model

type UpsertEmailTemplateRequest struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

type UpsertEmailTemplateResponse struct{}
