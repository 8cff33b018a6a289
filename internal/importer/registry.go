package importer

import (
	"strings"

	"github.com/mverkerk/portfoliodb/internal/apperrors"
)

// Registry is the catalogue of available import parsers, keyed by name and by
// supported file extension.
//
// A registry is populated once at application start and passed by reference
// to anything that needs lookup; it is append-only and safe for concurrent
// reads after registration is complete.
type Registry struct {
	parsers []Parser
}

// NewRegistry creates a registry pre-populated with the given parsers.
func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{}
	for _, p := range parsers {
		r.Register(p)
	}
	return r
}

// Register appends a parser to the catalogue.
func (r *Registry) Register(p Parser) {
	r.parsers = append(r.parsers, p)
}

// Parsers returns all registered parsers in registration order.
func (r *Registry) Parsers() []Parser {
	out := make([]Parser, len(r.parsers))
	copy(out, r.parsers)
	return out
}

// ByName returns the parser registered under the exact given name.
func (r *Registry) ByName(name string) (Parser, error) {
	for _, p := range r.parsers {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, apperrors.ErrParserNotFound
}

// ByExtension returns every parser that supports the given file extension.
// Matching is case-insensitive and tolerates a missing leading dot. The
// caller disambiguates when more than one parser matches.
func (r *Registry) ByExtension(ext string) []Parser {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var matches []Parser
	for _, p := range r.parsers {
		for _, supported := range p.SupportedExtensions() {
			if strings.ToLower(supported) == ext {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}
