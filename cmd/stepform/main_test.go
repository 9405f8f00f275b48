package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stepform/internal/config"
	"github.com/goliatone/go-stepform/pkg/renderers/html"
)

func TestSchemaCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := schemaCommand(nil, &buf); err != nil {
		t.Fatalf("schema: %v", err)
	}

	var doc struct {
		Type       string         `json:"type"`
		Required   []string       `json:"required"`
		Properties map[string]any `json:"properties"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode schema: %v\n%s", err, buf.String())
	}
	if doc.Type != "object" {
		t.Fatalf("expected object schema, got %q", doc.Type)
	}
	if len(doc.Properties) != 8 {
		t.Fatalf("expected 8 properties, got %d", len(doc.Properties))
	}
	if _, ok := doc.Properties["addressLine2"]; !ok {
		t.Fatalf("expected addressLine2 property")
	}
	for _, name := range doc.Required {
		if name == "addressLine2" {
			t.Fatalf("addressLine2 must stay optional")
		}
	}
}

func TestThemeManifest(t *testing.T) {
	if themeManifest(config.ThemeConfig{}) != nil {
		t.Fatalf("expected no manifest without a theme name")
	}

	manifest := themeManifest(config.ThemeConfig{
		Name:       " acme ",
		AssetsPath: "/assets",
		Stylesheet: "form.css",
		Tokens:     map[string]string{"brand": "#123456"},
	})
	if manifest == nil {
		t.Fatalf("expected manifest")
	}
	if manifest.Name != "acme" {
		t.Fatalf("expected trimmed name, got %q", manifest.Name)
	}
	want := map[string]string{html.StylesheetAsset: "form.css"}
	if diff := cmp.Diff(want, manifest.Assets.Files); diff != "" {
		t.Fatalf("asset files mismatch (-want +got):\n%s", diff)
	}
}
