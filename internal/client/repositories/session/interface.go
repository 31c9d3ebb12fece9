// Package session stores the persisted login state as key/value pairs in
// the local database, so a restarted CLI resumes the same session.
package session

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Clear(ctx context.Context) error
}
