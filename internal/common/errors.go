// Package common defines shared constants and sentinel errors used across
// client and server layers of Jec Lens. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal    = errors.New("internal error")
	ErrUnavailable = errors.New("remote request failed")

	// Authentication and authorization.
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAuthorizationDenied    = errors.New("authorization denied")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Submission and voting gates.
	ErrValidation    = errors.New("validation failed")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrAlreadyVoted  = errors.New("already voted")
)
