// Package models defines the client-side data records.
package models

// Session is the logged-in state of the CLI: the identity the server
// confirmed at login plus the token pair used on subsequent calls. A nil
// session means logged out; there is no implicit global user state.
type Session struct {
	Email        string
	Name         string
	Picture      string
	AccessToken  string
	RefreshToken string
}
