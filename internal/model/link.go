package model

type CreateLinkRequest struct {
	Platform    string `json:"platform"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type CreateLinkResponse Link

type GetLinksRequest struct {
	UserID string `json:"user_id"`
}

type GetLinksResponse struct {
	Links []Link `json:"links"`
}

type UpdateLinkRequest struct {
	ID          string `json:"id"`
	Platform    string `json:"platform"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type UpdateLinkResponse Link

type DeleteLinkRequest struct {
	ID string `json:"id"`
}

type DeleteLinkResponse struct{}

type LinkScore struct {
	LinkID string `json:"link_id"`
	Score  int64  `json:"score"`
}

type ReorderLinksRequest struct {
	Scores []LinkScore `json:"scores"`
}

type ReorderLinksResponse struct {
	Links []Link `json:"links"`
}

type SetFeaturedLinkRequest struct {
	ID         string `json:"id"`
	IsFeatured bool   `json:"is_featured"`
}

type SetFeaturedLinkResponse struct{}

type ClickLinkRequest struct {
	ID string `json:"id"`
}

type ClickLinkResponse struct{}

type ViewLinkRequest struct {
	ID string `json:"id"`
}

type ViewLinkResponse struct{}
