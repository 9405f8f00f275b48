package html

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StaticSelector always selects one manifest. It suits hosts that configure
// a single theme without a registry.
type StaticSelector struct {
	Manifest *theme.Manifest
}

var _ theme.ThemeSelector = StaticSelector{}

// Select returns the manifest under the requested variant. An unknown
// variant falls back to the base manifest.
func (s StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.Manifest == nil {
		return nil, fmt.Errorf("html: no theme manifest configured")
	}
	if name != "" && !strings.EqualFold(name, s.Manifest.Name) {
		return nil, fmt.Errorf("html: unknown theme %q", name)
	}
	if _, ok := s.Manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{
		Theme:    s.Manifest.Name,
		Variant:  variant,
		Manifest: s.Manifest,
	}, nil
}
