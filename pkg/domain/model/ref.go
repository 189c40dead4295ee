package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidRef is returned when a git ref does not look like refs/<kind>/<name>
var ErrInvalidRef = goerr.New("invalid git ref")

var refPattern = regexp.MustCompile(`^refs/([a-zA-Z]+)/(.+)$`)

// Ref is a parsed fully qualified git ref
type Ref struct {
	Kind string // heads, tags, pull, ...
	Name string // Remainder after the kind, may contain slashes
}

// ParseRef parses a ref such as refs/heads/release-1
func ParseRef(ref string) (*Ref, error) {
	m := refPattern.FindStringSubmatch(ref)
	if m == nil {
		return nil, goerr.Wrap(ErrInvalidRef, "ref must match refs/<kind>/<name>", goerr.V("ref", ref))
	}

	return &Ref{Kind: m[1], Name: m[2]}, nil
}

func (r *Ref) String() string {
	return "refs/" + r.Kind + "/" + r.Name
}
