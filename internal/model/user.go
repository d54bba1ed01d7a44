package model

type GetMeRequest struct{}

type GetMeResponse User

type GetUserRequest struct {
	Username string `json:"username"`
}

type GetUserResponse User

type UpdateUserRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
}

type UpdateUserResponse User

type FollowUserRequest struct {
	UserID string `json:"user_id"`
}

type FollowUserResponse struct{}

type UnfollowUserRequest struct {
	UserID string `json:"user_id"`
}

type UnfollowUserResponse struct{}

type GetFollowersRequest struct{}

type GetFollowersResponse struct {
	Users []ShortUser `json:"users"`
}

type GetFollowingRequest struct{}

type GetFollowingResponse struct {
	Users []ShortUser `json:"users"`
}
