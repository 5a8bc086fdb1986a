package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template file names.
const (
	PostTemplate    = "post.markdown"
	CommentTemplate = "comment.html"
)

// headerFence delimits the optional metadata block.
const headerFence = "+++"

// Template is an output template with its metadata.
type Template struct {
	// Metadata from the +++ header. Other keys, such as description, are
	// allowed and ignored.
	Name string `yaml:"name"`
	Ext  string `yaml:"ext,omitempty"`

	// Template content (after the header)
	Content string `yaml:"-"`

	// Where the template was loaded from: a file path or "built-in"
	Source string `yaml:"-"`
}

// Loader resolves templates from override directories, then built-ins.
type Loader struct {
	dirs    []string
	builtin fs.FS
}

// NewLoader creates a loader that searches dirs in order before falling
// back to the embedded templates.
func NewLoader(dirs ...string) *Loader {
	return &Loader{
		dirs:    dirs,
		builtin: builtinTemplates(),
	}
}

// Load finds and loads a template by file name.
func (l *Loader) Load(filename string) (*Template, error) {
	for _, dir := range l.dirs {
		tmpl, err := loadFromPath(dir, filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		tmpl.Source = filepath.Join(dir, filename)
		return tmpl, nil
	}

	data, err := fs.ReadFile(l.builtin, filename)
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", filename, err)
	}
	tmpl, err := parseTemplate(filename, string(data))
	if err != nil {
		return nil, fmt.Errorf("built-in template %s: %w", filename, err)
	}
	tmpl.Source = "built-in"
	return tmpl, nil
}

// loadFromPath loads a template from a directory. A missing file yields an
// error matching fs.ErrNotExist.
func loadFromPath(dir, filename string) (*Template, error) {
	if dir == "" {
		return nil, fs.ErrNotExist
	}

	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(filename, string(data))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tmpl, nil
}

// parseTemplate parses a template from raw content with an optional header.
func parseTemplate(filename, raw string) (*Template, error) {
	header, content := splitHeader(raw)

	var tmpl Template
	if header != "" {
		if err := yaml.Unmarshal([]byte(header), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid header: %w", err)
		}
	}

	if tmpl.Name == "" {
		tmpl.Name = strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	tmpl.Ext = strings.TrimPrefix(tmpl.Ext, ".")
	if tmpl.Ext == "" {
		tmpl.Ext = strings.TrimPrefix(filepath.Ext(filename), ".")
	}

	tmpl.Content = content
	return &tmpl, nil
}

// splitHeader separates the +++ metadata block from the content. Content is
// returned byte for byte, starting on the line after the closing fence.
func splitHeader(raw string) (header, content string) {
	if !strings.HasPrefix(raw, headerFence+"\n") && !strings.HasPrefix(raw, headerFence+"\r\n") {
		return "", raw
	}

	rest := raw[len(headerFence):]
	before, after, ok := strings.Cut(rest, "\n"+headerFence)
	if !ok {
		return "", raw
	}

	// Drop the remainder of the closing fence line.
	_, body, _ := strings.Cut(after, "\n")
	return strings.TrimSpace(before), body
}
