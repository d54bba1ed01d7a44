package model

type GetProfileStatsRequest struct {
	UserID string `json:"user_id"`
}

type GetProfileStatsResponse struct {
	TotalLinks  int64 `json:"total_links"`
	TotalClicks int64 `json:"total_clicks"`
	TotalViews  int64 `json:"total_views"`
	Followers   int64 `json:"followers"`
}

type GetLinkLeaderboardRequest struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit"`
}

type GetLinkLeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
