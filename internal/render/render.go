package render

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// placeholder matches {{name}} with no inner whitespace.
var placeholder = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_.]*)\}\}`)

// Error reports placeholders that had no value.
type Error struct {
	Template string
	Missing  []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("template %s: no value for %s", e.Template, strings.Join(e.Missing, ", "))
}

// Render substitutes vars into the template in a single pass. Substituted
// values are not scanned for placeholders again. Any placeholder without a
// value fails the whole render.
func Render(tmpl *Template, vars map[string]string) (string, error) {
	var missing []string
	result := placeholder.ReplaceAllStringFunc(tmpl.Content, func(match string) string {
		key := match[2 : len(match)-2]
		val, ok := vars[key]
		if !ok {
			if !slices.Contains(missing, key) {
				missing = append(missing, key)
			}
			return match
		}
		return val
	})

	if len(missing) > 0 {
		return "", &Error{Template: tmpl.Name, Missing: missing}
	}
	return result, nil
}

// RenderAll renders the template once per vars entry and concatenates the
// results in order, with nothing in between.
func RenderAll(tmpl *Template, each []map[string]string) (string, error) {
	var builder strings.Builder
	for _, vars := range each {
		out, err := Render(tmpl, vars)
		if err != nil {
			return "", err
		}
		builder.WriteString(out)
	}
	return builder.String(), nil
}
