package model

import "net/http"

type ConnectSocialRequest struct {
	Platform string `json:"platform"`
}

type ConnectSocialResponse struct {
	RedirectURL string `json:"-"`
	State       string `json:"-"`
}

func (r ConnectSocialResponse) RedirectInfo() (int, string) {
	return http.StatusTemporaryRedirect, r.RedirectURL
}

func (r ConnectSocialResponse) SessionInfo() map[string]any {
	return map[string]any{"state": r.State}
}

type SocialCallbackRequest struct {
	Platform string `json:"platform"`
	State    string `json:"state"`
	Code     string `json:"code"`
	Error    string `json:"error"`

	// Echo of the state handed out at connect time. Served from the
	// browser session and removed once read.
	SessionState string `session:"state,delete"`
}

type SocialCallbackResponse struct {
	RedirectURL string `json:"-"`
}

func (r SocialCallbackResponse) RedirectInfo() (int, string) {
	return http.StatusTemporaryRedirect, r.RedirectURL
}

type GetSocialConnectionsRequest struct{}

type GetSocialConnectionsResponse struct {
	Connections []SocialConnection `json:"connections"`
}

type DisconnectSocialRequest struct {
	Platform string `json:"platform"`
}

type DisconnectSocialResponse struct{}
