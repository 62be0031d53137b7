package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	autodoc "github.com/agentflare-ai/go-autodoc"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "autodoc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFixture(t *testing.T) {
	opts, err := loadConfig("testdata/autodoc.yaml")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if _, err := autodoc.New(opts...); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestDecodePagesPreservesOrder(t *testing.T) {
	path := writeConfig(t, `
pages:
  zz.md:
    - a.B
  aa.md:
    - c.D
  mm.md:
    tag:
      - e.F
`)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	pages := decodeAll(t, data)
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	want := []string{"zz.md", "aa.md", "mm.md"}
	for i, p := range pages {
		if p.Path != want[i] {
			t.Fatalf("page %d: expected %s, got %s", i, want[i], p.Path)
		}
	}
	if _, ok := pages[0].Content.([]string); !ok {
		t.Fatalf("expected list content for zz.md, got %T", pages[0].Content)
	}
	sections, ok := pages[2].Content.([]autodoc.Section)
	if !ok {
		t.Fatalf("expected sections for mm.md, got %T", pages[2].Content)
	}
	if sections[0].Tag != "tag" || sections[0].Elements[0] != "e.F" {
		t.Fatalf("unexpected section: %+v", sections[0])
	}
}

func TestDecodePagesKeepsMalformedValues(t *testing.T) {
	path := writeConfig(t, "pages:\n  oops.md: 42\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	pages := decodeAll(t, data)
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if _, ok := pages[0].Content.(int); !ok {
		t.Fatalf("expected raw int content, got %T", pages[0].Content)
	}
}

func TestLoadConfigRejectsBadAliases(t *testing.T) {
	path := writeConfig(t, "aliases: 42\n")
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected an error for scalar aliases")
	}
}

func TestLoadConfigProjectURLMap(t *testing.T) {
	path := writeConfig(t, `
project_url:
  keras: https://github.com/keras-team/keras/blob/master
pages:
  api.md:
    - keras.Model
`)
	if _, err := loadConfig(path); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
}

func decodeAll(t *testing.T, data []byte) autodoc.Pages {
	t.Helper()
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	pages, err := decodePages(&cfg.Pages)
	if err != nil {
		t.Fatalf("decodePages: %v", err)
	}
	return pages
}
