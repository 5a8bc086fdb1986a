// Package post builds render-ready Jekyll posts and comments from WXR records.
package post

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gorewood/wp2jekyll/internal/wpdate"
	"github.com/gorewood/wp2jekyll/internal/wxr"
)

// Default output extensions.
const (
	DefaultPostExt    = "markdown"
	DefaultCommentExt = "html"
)

// NoComments is the includeComments value for posts without comments.
const NoComments = "none"

// excerptWrapper matches a single-line <p>...</p> wrapper.
var excerptWrapper = regexp.MustCompile(`<p>(.+)</p>`)

// Options controls how records are turned into posts.
type Options struct {
	PostExt        string // post file extension, without the dot
	CommentExt     string // comments file extension, without the dot
	CategoriesOnly bool   // drop post_tag labels from categories
}

// Post is the render-ready form of one export record.
type Post struct {
	Title      string
	ID         string
	PubDate    string
	Published  wpdate.Date
	Slug       string
	Excerpt    string
	Content    string
	Categories string
	Comments   []Comment

	FileName         string
	CommentsFileName string
	URL              string
	IncludeComments  string
}

// Comment is the render-ready form of one non-pingback comment.
type Comment struct {
	ID         string
	Content    string
	AuthorName string
	AuthorURL  string
	When       string
	Ordinal    int64
}

// New builds a Post from a record. It fails with a *wpdate.ParseError when
// the post or one of its comments carries a malformed date.
func New(rec wxr.Record, opts Options) (*Post, error) {
	opts = withDefaults(opts)

	published, err := wpdate.Parse(rec.PubDate)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", rec.ID, err)
	}

	comments, err := buildComments(rec.Comments)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", rec.ID, err)
	}

	p := &Post{
		Title:      EscapeTitle(rec.Title),
		ID:         rec.ID,
		PubDate:    rec.PubDate,
		Published:  published,
		Slug:       rec.Slug,
		Excerpt:    StripParagraph(rec.Excerpt),
		Content:    rec.Content,
		Categories: Categories(rec.Categories, opts.CategoriesOnly),
		Comments:   comments,

		FileName:         published.Day() + "-" + rec.Slug + "." + opts.PostExt,
		CommentsFileName: "comments-" + rec.ID + "." + opts.CommentExt,
		URL:              published.MonthPath() + rec.Slug,
	}

	p.IncludeComments = NoComments
	if p.HasComments() {
		p.IncludeComments = p.CommentsFileName
	}

	return p, nil
}

// withDefaults fills in empty extensions.
func withDefaults(opts Options) Options {
	if opts.PostExt == "" {
		opts.PostExt = DefaultPostExt
	}
	if opts.CommentExt == "" {
		opts.CommentExt = DefaultCommentExt
	}
	return opts
}

// buildComments converts raw comments in document order, dropping pingbacks.
func buildComments(raw []wxr.RawComment) ([]Comment, error) {
	comments := make([]Comment, 0, len(raw))
	for _, rc := range raw {
		if rc.Type == wxr.CommentTypePingback {
			continue
		}

		when, err := wpdate.Parse(rc.DateGMT)
		if err != nil {
			return nil, fmt.Errorf("comment %s: %w", rc.ID, err)
		}

		comments = append(comments, Comment{
			ID:         rc.ID,
			Content:    strings.TrimSpace(rc.Content),
			AuthorName: rc.Author,
			AuthorURL:  rc.AuthorURL,
			When:       when.Display(),
			Ordinal:    when.Ordinal(),
		})
	}
	return comments, nil
}

// HasComments reports whether a comments file should be written.
func (p *Post) HasComments() bool {
	return len(p.Comments) > 0
}

// SortedComments returns a copy of the comments in ascending ordinal order.
// Comments with equal ordinals keep their document order.
func (p *Post) SortedComments() []Comment {
	sorted := slices.Clone(p.Comments)
	slices.SortStableFunc(sorted, func(a, b Comment) int {
		return cmp.Compare(a.Ordinal, b.Ordinal)
	})
	return sorted
}

// Fields returns the post template variables.
func (p *Post) Fields() map[string]string {
	return map[string]string{
		"title":           p.Title,
		"post_id":         p.ID,
		"pubdate":         p.PubDate,
		"excerpt":         p.Excerpt,
		"content":         p.Content,
		"categories":      p.Categories,
		"includeComments": p.IncludeComments,
	}
}

// CommentFields returns the comment template variables for every comment,
// in ascending ordinal order.
func (p *Post) CommentFields() []map[string]string {
	sorted := p.SortedComments()
	fields := make([]map[string]string, 0, len(sorted))
	for _, c := range sorted {
		fields = append(fields, c.Fields())
	}
	return fields
}

// Fields returns the comment template variables.
func (c Comment) Fields() map[string]string {
	return map[string]string{
		"comment_id": c.ID,
		"content":    c.Content,
		"who.name":   c.AuthorName,
		"who.url":    c.AuthorURL,
		"when":       c.When,
		"ordinal":    strconv.FormatInt(c.Ordinal, 10),
	}
}

// EscapeTitle backslash-escapes double quotes so the title can sit inside a
// quoted YAML string.
func EscapeTitle(title string) string {
	return strings.ReplaceAll(title, `"`, `\"`)
}

// StripParagraph removes the first single-line <p>...</p> wrapper.
// Nested or multiple paragraphs are left as they are past the first match.
func StripParagraph(excerpt string) string {
	loc := excerptWrapper.FindStringSubmatchIndex(excerpt)
	if loc == nil {
		return excerpt
	}
	return excerpt[:loc[0]] + excerpt[loc[2]:loc[3]] + excerpt[loc[1]:]
}

// Categories joins category slugs, each prefixed with a space.
// Tags are included unless categoriesOnly is set.
func Categories(cats []wxr.Category, categoriesOnly bool) string {
	lower := cases.Lower(language.Und)

	var builder strings.Builder
	for _, cat := range cats {
		if categoriesOnly && cat.Domain != wxr.DomainCategory {
			continue
		}
		builder.WriteString(" ")
		builder.WriteString(Hyphenate(lower.String(cat.Label)))
	}
	return builder.String()
}

// Hyphenate replaces every whitespace rune with a hyphen.
func Hyphenate(label string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, label)
}
