// Package fileops implements the file-level collaborators of the generator:
// template copying, tag insertion, and example conversion.
package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrTagNotFound reports that a template file lacks the requested insertion
// marker.
var ErrTagNotFound = errors.New("insertion tag not found")

// CopyTree copies the directory rooted at src verbatim into dst.
func CopyTree(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	return os.CopyFS(dst, os.DirFS(src))
}

// InsertInFile replaces the {{tag}} marker in the file at path with text.
func InsertInFile(text, path, tag string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	marker := "{{" + tag + "}}"
	content := string(data)
	if !strings.Contains(content, marker) {
		return fmt.Errorf("%w: %s in %s", ErrTagNotFound, marker, path)
	}
	content = strings.Replace(content, marker, text, 1)
	return os.WriteFile(path, []byte(content), 0o644)
}

// fenceLang maps source extensions to markdown fence languages.
var fenceLang = map[string]string{
	".go": "go",
	".py": "python",
	".js": "js",
	".sh": "bash",
}

// CopyExamples converts each source file directly under src into a markdown
// page in dst: a leading line-comment block becomes prose, the remainder a
// fenced code block. Files without a known extension are skipped.
func CopyExamples(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		lang, ok := fenceLang[ext]
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(src, entry.Name()))
		if err != nil {
			return err
		}
		page := examplePage(string(data), lang)
		base := strings.TrimSuffix(entry.Name(), ext)
		if err := os.WriteFile(filepath.Join(dst, base+".md"), []byte(page), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// examplePage splits a leading comment block into prose and fences the rest.
func examplePage(src, lang string) string {
	lines := strings.Split(src, "\n")
	var prose []string
	i := 0
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case strings.HasPrefix(trimmed, "//"):
			prose = append(prose, strings.TrimSpace(strings.TrimPrefix(trimmed, "//")))
		case strings.HasPrefix(trimmed, "#") && lang != "go":
			prose = append(prose, strings.TrimSpace(strings.TrimPrefix(trimmed, "#")))
		case trimmed == "" && len(prose) > 0:
			prose = append(prose, "")
		default:
			goto done
		}
	}
done:
	code := strings.TrimSpace(strings.Join(lines[i:], "\n"))
	var b strings.Builder
	if intro := strings.TrimSpace(strings.Join(prose, "\n")); intro != "" {
		b.WriteString(intro)
		b.WriteString("\n\n")
	}
	b.WriteString("```" + lang + "\n")
	b.WriteString(code)
	b.WriteString("\n```\n")
	return b.String()
}
