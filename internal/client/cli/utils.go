package cli

import (
	"errors"
	"log"

	"github.com/ayushchouksey/jeclens/internal/common"
)

// reportError logs a user-facing message for the well-known failures and
// falls back to the raw error for the rest.
func reportError(err error) {
	switch {
	case errors.Is(err, common.ErrAuthenticationRequired):
		log.Println("You need to log in first")
	case errors.Is(err, common.ErrAuthorizationDenied):
		log.Println("You are not allowed to do that")
	case errors.Is(err, common.ErrQuotaExceeded):
		log.Println("Daily post limit reached, try again tomorrow")
	case errors.Is(err, common.ErrAlreadyVoted):
		log.Println("Already voted on this one")
	case errors.Is(err, common.ErrValidation):
		log.Printf("Invalid input: %v", err)
	case errors.Is(err, common.ErrUnavailable):
		log.Println("Server unavailable, try again later")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		log.Println("Session ended, please log in again")
	default:
		log.Printf("error: %v", err)
	}
}
