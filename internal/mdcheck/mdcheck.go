// Package mdcheck verifies generated markdown: every page must parse, carry
// no leftover {{tag}} insertion markers, and only link to files that exist.
package mdcheck

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Issue describes one problem found in a generated page.
type Issue struct {
	File    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.File, i.Message)
}

var markerPattern = regexp.MustCompile(`\{\{[^{}]+\}\}`)

// CheckDir walks dir and checks every markdown file. It returns the issues
// found; an empty slice means the output is clean.
func CheckDir(dir string) ([]Issue, error) {
	var issues []Issue
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		found, err := CheckFile(path)
		if err != nil {
			return err
		}
		issues = append(issues, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// CheckFile checks a single markdown file.
func CheckFile(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var issues []Issue
	for _, marker := range markerPattern.FindAllString(string(data), -1) {
		issues = append(issues, Issue{File: path, Message: "unfilled insertion marker " + marker})
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		issues = append(issues, Issue{File: path, Message: "empty page"})
		return issues, nil
	}
	root := goldmark.New().Parser().Parse(text.NewReader(data))
	dir := filepath.Dir(path)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		var dest string
		switch node := n.(type) {
		case *gmast.Link:
			dest = string(node.Destination)
		case *gmast.Image:
			dest = string(node.Destination)
		default:
			return gmast.WalkContinue, nil
		}
		if !isLocal(dest) {
			return gmast.WalkContinue, nil
		}
		target := dest
		if i := strings.IndexByte(target, '#'); i >= 0 {
			target = target[:i]
		}
		if target == "" {
			return gmast.WalkContinue, nil
		}
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(target))); err != nil {
			issues = append(issues, Issue{File: path, Message: "broken link " + dest})
		}
		return gmast.WalkContinue, nil
	})
	return issues, nil
}

// isLocal reports whether a link destination points at the local tree rather
// than an external URL or anchor.
func isLocal(dest string) bool {
	if dest == "" || strings.HasPrefix(dest, "#") {
		return false
	}
	if u, err := url.Parse(dest); err == nil && u.Scheme != "" {
		return false
	}
	return true
}
