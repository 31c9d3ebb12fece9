package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ayushchouksey/jeclens/internal/common"
)

// googleTokenInfoURL is Google's endpoint for validating ID tokens.
const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier verifies a Google-issued ID token and returns the identity
// it asserts. Implementations must reject tokens issued for a different
// OAuth client.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// TokenInfoVerifier verifies ID tokens against Google's tokeninfo endpoint.
// Letting Google check the signature keeps the server free of key caching;
// the endpoint rejects expired and tampered tokens.
type TokenInfoVerifier struct {
	clientID string
	endpoint string
	client   *http.Client
}

func NewTokenInfoVerifier(clientID string) *TokenInfoVerifier {
	return &TokenInfoVerifier{
		clientID: clientID,
		endpoint: googleTokenInfoURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewTokenInfoVerifierForEndpoint is like NewTokenInfoVerifier but talks to
// a custom endpoint. Used in tests.
func NewTokenInfoVerifierForEndpoint(clientID, endpoint string) *TokenInfoVerifier {
	v := NewTokenInfoVerifier(clientID)
	v.endpoint = endpoint
	return v
}

type tokenInfo struct {
	Aud           string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (v *TokenInfoVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, common.ErrInvalidToken
	}

	u := v.endpoint + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// tokeninfo answers 4xx for invalid/expired tokens
	if resp.StatusCode != http.StatusOK {
		return nil, common.ErrInvalidToken
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding tokeninfo response: %w", err)
	}

	if info.Aud != v.clientID {
		return nil, fmt.Errorf("%w: token issued for another client", common.ErrInvalidToken)
	}
	if info.Email == "" || info.EmailVerified != "true" {
		return nil, fmt.Errorf("%w: missing verified email", common.ErrInvalidToken)
	}

	return &Identity{Email: info.Email, Name: info.Name, Picture: info.Picture}, nil
}
