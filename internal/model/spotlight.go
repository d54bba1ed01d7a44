package model

type CreateSpotlightProjectRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type CreateSpotlightProjectResponse SpotlightProject

type GetSpotlightProjectsRequest struct {
	UserID string `json:"user_id"`
}

type GetSpotlightProjectsResponse struct {
	Projects []SpotlightProject `json:"projects"`
}

type UpdateSpotlightProjectRequest struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type UpdateSpotlightProjectResponse SpotlightProject

type PinSpotlightProjectRequest struct {
	ID       string `json:"id"`
	IsPinned bool   `json:"is_pinned"`
}

type PinSpotlightProjectResponse struct{}

type DeleteSpotlightProjectRequest struct {
	ID string `json:"id"`
}

type DeleteSpotlightProjectResponse struct{}

type AddSpotlightContributorRequest struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
}

type AddSpotlightContributorResponse struct{}

type RemoveSpotlightContributorRequest struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
}

type RemoveSpotlightContributorResponse struct{}

type ViewSpotlightProjectRequest struct {
	ID string `json:"id"`
}

type ViewSpotlightProjectResponse struct{}
