package model

import (
	"time"

	"github.com/mylinked/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUser(user *entity.User, followerNum int64) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt.Format(DefaultTimeLayout),
		FollowerNum: followerNum,
	}
}

func ConvertShortUser(user *entity.User) ShortUser {
	if user == nil {
		return ShortUser{}
	}

	return ShortUser{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
	}
}

func ConvertLink(link *entity.Link) Link {
	if link == nil {
		return Link{}
	}

	converted := Link{
		ID:           link.ID,
		UserID:       link.UserID,
		Platform:     link.Platform,
		Title:        link.Title,
		URL:          link.URL,
		Description:  link.Description,
		Color:        link.Color,
		ClickCount:   link.ClickCount,
		ViewCount:    link.ViewCount,
		IsFeatured:   link.IsFeatured,
		DisplayOrder: link.DisplayOrder,
		CreatedAt:    link.CreatedAt.Format(DefaultTimeLayout),
	}

	if link.AiScore.Valid {
		score := link.AiScore.Int64
		converted.Score = &score
	}

	if link.LastClickedAt.Valid {
		converted.LastClickedAt = link.LastClickedAt.Time.Format(DefaultTimeLayout)
	}

	return converted
}

func ConvertLinks(links []entity.Link) []Link {
	converted := []Link{}
	for i := range links {
		converted = append(converted, ConvertLink(&links[i]))
	}
	return converted
}

// ConvertSocialConnection never exposes tokens to clients.
func ConvertSocialConnection(connection *entity.SocialConnection) SocialConnection {
	if connection == nil {
		return SocialConnection{}
	}

	converted := SocialConnection{
		Platform:         connection.Platform,
		PlatformUserID:   connection.PlatformUserID,
		PlatformUsername: connection.PlatformUsername,
		ConnectedAt:      connection.ConnectedAt.Format(DefaultTimeLayout),
	}

	if connection.LastSyncAt.Valid {
		converted.LastSyncAt = connection.LastSyncAt.Time.Format(DefaultTimeLayout)
	}

	return converted
}

func ConvertReferralRequest(req *entity.ReferralRequest) ReferralRequest {
	if req == nil {
		return ReferralRequest{}
	}

	return ReferralRequest{
		ID:             req.ID,
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		LinkTitle:      req.LinkTitle,
		LinkURL:        req.LinkURL,
		Description:    req.Description,
		Status:         string(req.Status),
		CreatedAt:      req.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertCollaborationRequest(req *entity.CollaborationRequest) CollaborationRequest {
	if req == nil {
		return CollaborationRequest{}
	}

	converted := CollaborationRequest{
		ID:          req.ID,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Message:     req.Message,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt.Format(DefaultTimeLayout),
	}

	if req.ProjectID.Valid {
		converted.ProjectID = req.ProjectID.String
	}

	return converted
}

func ConvertSpotlightProject(
	project *entity.SpotlightProject, contributors []entity.SpotlightContributor,
) SpotlightProject {
	if project == nil {
		return SpotlightProject{}
	}

	converted := SpotlightProject{
		ID:           project.ID,
		UserID:       project.UserID,
		Title:        project.Title,
		Description:  project.Description,
		URL:          project.URL,
		ThumbnailURL: project.ThumbnailURL,
		IsPinned:     project.IsPinned,
		ViewCount:    project.ViewCount,
		CreatedAt:    project.CreatedAt.Format(DefaultTimeLayout),
	}

	for _, c := range contributors {
		converted.Contributors = append(converted.Contributors, SpotlightContributor{
			UserID:  c.UserID,
			Role:    string(c.Role),
			AddedBy: c.AddedBy,
		})
	}

	return converted
}
