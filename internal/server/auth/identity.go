// Package auth implements identity handling for the feed server: session
// token issue/verification and Google ID token verification.
package auth

// Identity is the authenticated user record carried by a session token.
// It mirrors the claims decoded from the Google ID token at login.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
