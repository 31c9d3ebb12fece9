package facts

import (
	"fmt"
	"net/url"

	"github.com/ayushchouksey/jeclens/internal/categories"
	"github.com/ayushchouksey/jeclens/internal/common"
)

// MaxTextLength is the upper bound on the text of a fact.
const MaxTextLength = 200

// ValidateCandidate checks a submission candidate field by field, in order,
// returning on the first failure. All returned errors wrap
// common.ErrValidation.
func ValidateCandidate(c Candidate) error {
	if c.Text == "" {
		return fmt.Errorf("%w: text must not be empty", common.ErrValidation)
	}
	if len([]rune(c.Text)) > MaxTextLength {
		return fmt.Errorf("%w: text exceeds %d characters", common.ErrValidation, MaxTextLength)
	}
	if !isHTTPURL(c.Source) {
		return fmt.Errorf("%w: source must be an absolute http(s) URL", common.ErrValidation)
	}
	if c.Category == "" {
		return fmt.Errorf("%w: category must not be empty", common.ErrValidation)
	}
	if !categories.IsValid(c.Category) {
		return fmt.Errorf("%w: unknown category %q", common.ErrValidation, c.Category)
	}
	return nil
}

// isHTTPURL reports whether s parses as an absolute URL with an http or
// https scheme and a host.
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
