package refreshtokens

import (
	"context"

	"github.com/ayushchouksey/jeclens/internal/server/models"
)

// Repository stores opaque refresh tokens. Tokens are rotated: a successful
// refresh deletes the old row and inserts a new one.
type Repository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	Get(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
