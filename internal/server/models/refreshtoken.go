// Package models defines server-side data models persisted in the database.
package models

import "time"

// RefreshToken is one opaque, rotating refresh token. The identity claims
// are denormalized onto the row so a refresh can mint a new access token
// without a users table.
type RefreshToken struct {
	ID        string
	Email     string
	Name      string
	Picture   string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
