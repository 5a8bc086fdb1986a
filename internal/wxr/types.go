package wxr

import (
	"fmt"
	"strings"
)

// Category domains used by WordPress exports.
const (
	DomainCategory = "category"
	DomainTag      = "post_tag"
)

// CommentTypePingback marks an automated cross-reference comment.
const CommentTypePingback = "pingback"

// Category is one <category> element of an item.
type Category struct {
	Domain string
	Label  string
}

// RawComment is one wp:comment element of an item. Pingbacks are never
// converted, so their ID and date are optional.
type RawComment struct {
	ID        string `wxr:"wp:comment_id" validate:"required_unless=Type pingback"`
	Type      string `wxr:"wp:comment_type"`
	Author    string `wxr:"wp:comment_author"`
	AuthorURL string `wxr:"wp:comment_author_url"`
	DateGMT   string `wxr:"wp:comment_date_gmt" validate:"required_unless=Type pingback"`
	Content   string `wxr:"wp:comment_content"`
}

// Record is the typed shape of one channel item.
type Record struct {
	Title      string       `wxr:"title"`
	ID         string       `wxr:"wp:post_id" validate:"required"`
	PubDate    string       `wxr:"wp:post_date_gmt" validate:"required"`
	Slug       string       `wxr:"wp:post_name" validate:"required"`
	Excerpt    string       `wxr:"excerpt:encoded"`
	Content    string       `wxr:"content:encoded"`
	Categories []Category   `wxr:"category" validate:"-"`
	Comments   []RawComment `wxr:"wp:comment" validate:"dive"`
}

// Item is a parsed channel item: either a Record or the reason it could not
// be built.
type Item struct {
	Index  int
	Record Record
	Err    *FieldError
}

// Result holds every channel item in document order.
type Result struct {
	Title string
	Items []Item
}

// ParseError reports a document that is not a well-formed RSS feed.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing export document: %v", e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError reports required elements missing from a channel item.
type FieldError struct {
	Index  int      // zero-based position of the item in the channel
	PostID string   // empty when wp:post_id itself is missing
	Fields []string // element paths, e.g. "wp:post_name" or "wp:comment[1].wp:comment_date_gmt"
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	who := fmt.Sprintf("item %d", e.Index)
	if e.PostID != "" {
		who = fmt.Sprintf("item %d (post %s)", e.Index, e.PostID)
	}
	return fmt.Sprintf("%s: missing %s", who, strings.Join(e.Fields, ", "))
}
