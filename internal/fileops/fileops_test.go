package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(src, "index.md"), "# Home\n")
	writeFile(t, filepath.Join(src, "guides", "setup.md"), "# Setup\n")

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if got := readFile(t, filepath.Join(dst, "index.md")); got != "# Home\n" {
		t.Fatalf("index.md = %q", got)
	}
	if got := readFile(t, filepath.Join(dst, "guides", "setup.md")); got != "# Setup\n" {
		t.Fatalf("guides/setup.md = %q", got)
	}
}

func TestInsertInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.md")
	writeFile(t, path, "# API\n\n{{autogenerated}}\n\nFooter.\n")

	if err := InsertInFile("### Model\n", path, "autogenerated"); err != nil {
		t.Fatalf("InsertInFile: %v", err)
	}
	got := readFile(t, path)
	want := "# API\n\n### Model\n\n\nFooter.\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInsertInFileReplacesFirstOccurrence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	writeFile(t, path, "{{x}}\n{{x}}\n")

	if err := InsertInFile("one", path, "x"); err != nil {
		t.Fatalf("InsertInFile: %v", err)
	}
	if got := readFile(t, path); got != "one\n{{x}}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestInsertInFileMissingTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	writeFile(t, path, "no markers here\n")

	err := InsertInFile("text", path, "autogenerated")
	if !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "{{autogenerated}}") {
		t.Fatalf("error should name the marker: %v", err)
	}
}

func TestInsertInFileMissingFile(t *testing.T) {
	err := InsertInFile("text", filepath.Join(t.TempDir(), "absent.md"), "tag")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestCopyExamples(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "examples")
	writeFile(t, filepath.Join(src, "hello.go"), `// A minimal program.
// It greets the world.

package main

func main() {
	println("hello")
}
`)
	writeFile(t, filepath.Join(src, "train.py"), `# Trains a tiny model.
import keras
`)
	writeFile(t, filepath.Join(src, "notes.txt"), "not a source file\n")

	if err := CopyExamples(src, dst); err != nil {
		t.Fatalf("CopyExamples: %v", err)
	}

	hello := readFile(t, filepath.Join(dst, "hello.md"))
	if !strings.HasPrefix(hello, "A minimal program.\nIt greets the world.\n\n```go\n") {
		t.Fatalf("hello.md prose/fence split wrong:\n%s", hello)
	}
	if !strings.Contains(hello, "package main") || !strings.HasSuffix(hello, "\n```\n") {
		t.Fatalf("hello.md code block wrong:\n%s", hello)
	}
	if strings.Contains(hello, "// A minimal program.") {
		t.Fatalf("comment markers should be stripped from prose:\n%s", hello)
	}

	train := readFile(t, filepath.Join(dst, "train.md"))
	if !strings.HasPrefix(train, "Trains a tiny model.\n\n```python\n") {
		t.Fatalf("train.md wrong:\n%s", train)
	}

	if _, err := os.Stat(filepath.Join(dst, "notes.md")); !os.IsNotExist(err) {
		t.Fatal("unknown extensions should be skipped")
	}
}

func TestCopyExamplesNoIntro(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "raw.sh"), "set -e\nmake docs\n")
	if err := CopyExamples(src, dst); err != nil {
		t.Fatalf("CopyExamples: %v", err)
	}
	got := readFile(t, filepath.Join(dst, "raw.md"))
	if got != "```bash\nset -e\nmake docs\n```\n" {
		t.Fatalf("raw.md = %q", got)
	}
}
