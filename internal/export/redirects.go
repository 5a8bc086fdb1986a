package export

import (
	"fmt"
	"strings"
)

// Redirect maps a WordPress post ID to its Jekyll permalink.
type Redirect struct {
	PostID string `json:"post_id"`
	URL    string `json:"url"`
}

// String formats the redirect as a short-URL table line.
func (r Redirect) String() string {
	return fmt.Sprintf(`$this->blogIds["%s"] = "%s";`, r.PostID, r.URL)
}

// RedirectTable collects redirects in insertion order.
type RedirectTable struct {
	entries []Redirect
	index   map[string]int
}

// NewRedirectTable creates an empty table.
func NewRedirectTable() *RedirectTable {
	return &RedirectTable{index: make(map[string]int)}
}

// Add records the URL for a post ID. A repeated ID keeps its position and
// takes the new URL.
func (t *RedirectTable) Add(postID, url string) {
	if i, ok := t.index[postID]; ok {
		t.entries[i].URL = url
		return
	}
	t.index[postID] = len(t.entries)
	t.entries = append(t.entries, Redirect{PostID: postID, URL: url})
}

// Redirects returns a copy of the entries.
func (t *RedirectTable) Redirects() []Redirect {
	out := make([]Redirect, len(t.entries))
	copy(out, t.entries)
	return out
}

// Format returns every redirect line, each terminated by a newline.
func (t *RedirectTable) Format() string {
	var builder strings.Builder
	for _, r := range t.entries {
		builder.WriteString(r.String())
		builder.WriteString("\n")
	}
	return builder.String()
}
