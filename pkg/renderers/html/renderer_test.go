package html

import (
	"context"
	"errors"
	stdhtml "html"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-stepform/pkg/stepform"
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	base := []Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}
	r, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func render(t *testing.T, r *Renderer, view stepform.View) string {
	t.Helper()
	out, err := r.RenderView(context.Background(), view)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Errorf("expected output to contain %q\n%s", fragment, html)
		}
	}
}

func TestRenderView_ContactStepWithErrors(t *testing.T) {
	data := stepform.NewFormData()
	data[stepform.FieldName] = `Jo "The" <Boss>`
	view := stepform.BuildView(stepform.StepContact, data, stepform.ErrorMap{
		stepform.FieldEmail: "Email is required",
	})

	html := render(t, newRenderer(t, WithAction("/form")), view)

	assertContains(t, html,
		`action="/form"`,
		`data-step="1"`,
		`<legend>Contact Info</legend>`,
		`name="name"`,
		`type="email"`,
		`type="tel"`,
		`<span class="stepform-error">Email is required</span>`,
		`value="previous" disabled`,
		`value="next">Next</button>`,
		`stepform-tab is-active" title="Contact Info">Step 1`,
	)
	if strings.Contains(html, "<Boss>") {
		t.Fatalf("input value must be escaped:\n%s", html)
	}
	if strings.Contains(html, `value="submit"`) {
		t.Fatalf("submit button must not render before review")
	}
}

func TestRenderView_AddressStepEnablesPrevious(t *testing.T) {
	view := stepform.BuildView(stepform.StepAddress, stepform.NewFormData(), nil)
	html := render(t, newRenderer(t), view)

	assertContains(t, html, `name="addressLine1"`, `name="addressLine2"`, `name="zipCode"`)
	if strings.Contains(html, "disabled") {
		t.Fatalf("previous must be enabled on step two:\n%s", html)
	}
	if strings.Contains(html, "stepform-error") {
		t.Fatalf("no errors expected:\n%s", html)
	}
}

func TestRenderView_ReviewShowsEscapedValues(t *testing.T) {
	data := stepform.NewFormData()
	data[stepform.FieldName] = "Tom <tom@x.com>"
	data[stepform.FieldCity] = "A & B <i>Town</i>"
	data[stepform.FieldState] = "<script>alert(1)</script>"
	view := stepform.BuildView(stepform.StepReview, data, nil)

	html := render(t, newRenderer(t), view)

	assertContains(t, html,
		"Review Entered Data:",
		`value="submit">Submit</button>`,
	)
	for _, row := range view.Rows {
		want := "<strong>" + row.Label + ":</strong> " + stdhtml.EscapeString(row.Value) + "</p>"
		if !strings.Contains(html, want) {
			t.Errorf("review row %s: expected %q in\n%s", row.Name, want, html)
		}
	}
	if strings.Contains(html, "<script>") || strings.Contains(html, "<i>") {
		t.Fatalf("markup leaked into review:\n%s", html)
	}
	if strings.Contains(html, "<input id=") {
		t.Fatalf("review must not render inputs:\n%s", html)
	}
}

func TestRenderView_Theme(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":  "#123456",
			"radius": "4px",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				StylesheetAsset: "stepform.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{
					Files: map[string]string{StylesheetAsset: "stepform.dark.css"},
				},
			},
		},
	}

	r := newRenderer(t, WithThemeSelector(StaticSelector{Manifest: manifest}, "acme", "dark"))
	html := render(t, r, stepform.BuildView(stepform.StepContact, stepform.NewFormData(), nil))

	assertContains(t, html,
		`href="/assets/themes/acme/stepform.dark.css"`,
		`--brand: #654321;`,
		`--radius: 4px;`,
	)
}

func TestRenderView_ThemeTokensCannotCloseStyle(t *testing.T) {
	manifest := &theme.Manifest{
		Name:   "acme",
		Tokens: map[string]string{"brand": "red</style><script>alert(1)</script>"},
	}
	r := newRenderer(t, WithThemeSelector(StaticSelector{Manifest: manifest}, "acme", ""))
	html := render(t, r, stepform.BuildView(stepform.StepContact, stepform.NewFormData(), nil))

	assertContains(t, html, "--brand: red;")
	if strings.Contains(html, "<script>") || strings.Count(html, "</style>") != 1 {
		t.Fatalf("theme token escaped its style block:\n%s", html)
	}
}

type failingSelector struct{}

func (failingSelector) Select(string, string, ...theme.QueryOption) (*theme.Selection, error) {
	return nil, errors.New("registry offline")
}

func TestRenderView_ThemeFailureFallsBack(t *testing.T) {
	r := newRenderer(t, WithThemeSelector(failingSelector{}, "acme", ""))
	html := render(t, r, stepform.BuildView(stepform.StepContact, stepform.NewFormData(), nil))
	if strings.Contains(html, "<link") || strings.Contains(html, "<style>") {
		t.Fatalf("expected unthemed output:\n%s", html)
	}
}

func TestRenderView_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"compact.tmpl": {Data: []byte(`{{ view.title }}|{% for row in view.rows %}{{ row.name }}={{ row.value|trim }};{% endfor %}`)},
	}
	engine, err := NewEngine(WithFS(files))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	data := stepform.NewFormData()
	data[stepform.FieldName] = "  Jo  "

	r := newRenderer(t, WithEngine(engine), WithTemplate("compact"))
	got := render(t, r, stepform.BuildView(stepform.StepContact, data, nil))
	if diff := cmp.Diff("Contact Info|name=Jo;email=;phone=;", got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	var sink strings.Builder
	got, err := engine.RenderString(`Hello {{ who|plain }}`, map[string]any{"who": "<b>world</b>"}, &sink)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Hello world" || sink.String() != got {
		t.Fatalf("unexpected output %q (sink %q)", got, sink.String())
	}
}

func TestRenderView_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newRenderer(t).RenderView(ctx, stepform.View{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseForm(t *testing.T) {
	values := url.Values{
		"name":    {"Jo"},
		"zipCode": {"123456", "ignored"},
		"step":    {"2"},
		"action":  {"next"},
		"city":    {},
	}
	want := map[stepform.Field]string{
		stepform.FieldName:    "Jo",
		stepform.FieldZipCode: "123456",
	}
	if diff := cmp.Diff(want, ParseForm(values)); diff != "" {
		t.Fatalf("parsed mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitizePlain(t *testing.T) {
	cases := map[string]string{
		"":                      "",
		"plain":                 "plain",
		"<b>bold</b>":           "bold",
		"<img src=x onerror=y>": "",
	}
	for in, want := range cases {
		if got := SanitizePlain(in); got != want {
			t.Errorf("SanitizePlain(%q) = %q, want %q", in, got, want)
		}
	}
}
