package html

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-stepform/pkg/stepform"
)

// StylesheetAsset is the theme asset key resolved into the stylesheet link.
const StylesheetAsset = "stepform.stylesheet"

// Renderer turns a stepform.View into the HTML of the current step.
type Renderer struct {
	engine       *Engine
	template     string
	action       string
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	logger       *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine replaces the template engine, typically one built over custom
// templates.
func WithEngine(engine *Engine) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithTemplate selects the template rendered by RenderView.
func WithTemplate(name string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.template = trimmed
		}
	}
}

// WithAction sets the form action URL.
func WithAction(action string) Option {
	return func(r *Renderer) {
		r.action = strings.TrimSpace(action)
	}
}

// WithThemeSelector resolves tokens and the stylesheet from a go-theme
// selection on every render.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(r *Renderer) {
		r.selector = selector
		r.themeName = name
		r.themeVariant = variant
	}
}

// WithLogger sets the logger used for theme resolution failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New constructs a Renderer over the embedded templates.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		template: FormTemplate,
		logger:   slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.engine == nil {
		engine, err := NewEngine()
		if err != nil {
			return nil, err
		}
		r.engine = engine
	}
	return r, nil
}

// RenderView renders view.
func (r *Renderer) RenderView(ctx context.Context, view stepform.View) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]any{
		"view":   view,
		"action": r.action,
		"theme":  r.resolveTheme(ctx),
	}
	out, err := r.engine.RenderTemplate(r.template, data)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

type cssVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type themeContext struct {
	Name       string   `json:"name,omitempty"`
	Variant    string   `json:"variant,omitempty"`
	Stylesheet string   `json:"stylesheet,omitempty"`
	Vars       []cssVar `json:"vars,omitempty"`
}

func (r *Renderer) resolveTheme(ctx context.Context) themeContext {
	if r.selector == nil {
		return themeContext{}
	}
	selection, err := r.selector.Select(r.themeName, r.themeVariant)
	if err != nil || selection == nil || selection.Manifest == nil {
		if err != nil {
			r.logger.WarnContext(ctx, "html: theme selection failed", slog.String("theme", r.themeName), slog.Any("error", err))
		}
		return themeContext{}
	}

	manifest := selection.Manifest
	tokens := make(map[string]string, len(manifest.Tokens))
	for k, v := range manifest.Tokens {
		tokens[k] = v
	}
	prefix := manifest.Assets.Prefix
	file := manifest.Assets.Files[StylesheetAsset]

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for k, v := range variant.Tokens {
			tokens[k] = v
		}
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
		if f := variant.Assets.Files[StylesheetAsset]; f != "" {
			file = f
		}
	}

	out := themeContext{
		Name:    selection.Theme,
		Variant: selection.Variant,
	}
	if file != "" {
		out.Stylesheet = joinAssetURL(prefix, file)
	}
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out.Vars = append(out.Vars, cssVar{Name: "--" + strings.TrimPrefix(name, "--"), Value: tokens[name]})
	}
	return out
}

func joinAssetURL(prefix, file string) string {
	if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
		return file
	}
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return file
	}
	return prefix + "/" + strings.TrimLeft(file, "/")
}

// ParseForm extracts the known fields from posted form values. Unknown
// names are ignored.
func ParseForm(values url.Values) map[stepform.Field]string {
	out := make(map[stepform.Field]string)
	for name, vals := range values {
		field, ok := stepform.ParseField(name)
		if !ok || len(vals) == 0 {
			continue
		}
		out[field] = vals[0]
	}
	return out
}
