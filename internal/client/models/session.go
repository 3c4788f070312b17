// Package models holds the client-side view of an authenticated session.
package models

// Session is what the CLI remembers between invocations. RefreshToken is
// empty when the user logged in without remember-me.
type Session struct {
	Email        string
	DisplayName  string
	AccessToken  string
	RefreshToken string
}

// CanRefresh reports whether the session holds both halves of a rotation
// request.
func (s *Session) CanRefresh() bool {
	return s != nil && s.AccessToken != "" && s.RefreshToken != ""
}
