package model

import "time"

type AccessToken struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type RefreshToken struct {
	Family  string
	Counter uint64
}

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   string    `json:"created_at"`
	FollowerNum int64     `json:"follower_num,omitempty"`
	LastLoginAt time.Time `json:"-"`
}

type ShortUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

type Link struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Platform      string `json:"platform"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Description   string `json:"description"`
	Color         string `json:"color"`
	ClickCount    uint64 `json:"click_count"`
	ViewCount     uint64 `json:"view_count"`
	IsFeatured    bool   `json:"is_featured"`
	DisplayOrder  int    `json:"display_order"`
	Score         *int64 `json:"score,omitempty"`
	LastClickedAt string `json:"last_clicked_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type SocialConnection struct {
	Platform         string `json:"platform"`
	PlatformUserID   string `json:"platform_user_id"`
	PlatformUsername string `json:"platform_username"`
	ConnectedAt      string `json:"connected_at"`
	LastSyncAt       string `json:"last_sync_at,omitempty"`
}

type Notification struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Status    string         `json:"status"`
	ActionURL string         `json:"action_url,omitempty"`
	Icon      string         `json:"icon,omitempty"`
	CreatedAt string         `json:"created_at"`
}

type ReferralRequest struct {
	ID             string `json:"id"`
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
	LinkTitle      string `json:"link_title"`
	LinkURL        string `json:"link_url"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type CollaborationRequest struct {
	ID          string `json:"id"`
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
	Message     string `json:"message"`
	ProjectID   string `json:"project_id,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type SpotlightProject struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"user_id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	URL          string                 `json:"url"`
	ThumbnailURL string                 `json:"thumbnail_url"`
	IsPinned     bool                   `json:"is_pinned"`
	ViewCount    uint64                 `json:"view_count"`
	CreatedAt    string                 `json:"created_at"`
	Contributors []SpotlightContributor `json:"contributors,omitempty"`
}

type SpotlightContributor struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	AddedBy string `json:"added_by"`
}

type LeaderboardEntry struct {
	LinkID string  `json:"link_id"`
	Title  string  `json:"title"`
	Clicks float64 `json:"clicks"`
}
