// Package session persists the GitHub access token and user profile for
// a logged-in user and drives the post-redirect login sequence.
package session

// Profile is the subset of the GitHub user record the dashboard shows.
type Profile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// Session is what survives between runs: the bearer token and the
// profile fetched with it. Both are cleared together on logout.
type Session struct {
	Token   string   `json:"github_token"`
	Profile *Profile `json:"github_user,omitempty"`
}

// LoggedIn reports whether the session carries a token.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}
