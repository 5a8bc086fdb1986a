package wxr

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/mmcdole/gofeed/rss"
)

// Parser reads WXR documents.
type Parser struct {
	rssParser *rss.Parser
	validate  *validator.Validate
}

// NewParser creates a new WXR parser.
func NewParser() *Parser {
	validate := validator.New()
	// Report WXR element names instead of Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("wxr")
	})

	return &Parser{
		rssParser: &rss.Parser{},
		validate:  validate,
	}
}

// Parse reads a whole export document with a default Parser.
func Parse(r io.Reader) (*Result, error) {
	return NewParser().Parse(r)
}

// Parse reads a whole export document. It fails only when the document is
// not a well-formed RSS feed; incomplete items are reported per item.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	feed, err := p.rssParser.Parse(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	result := &Result{
		Title: feed.Title,
		Items: make([]Item, 0, len(feed.Items)),
	}
	for i, rssItem := range feed.Items {
		record := toRecord(rssItem)
		item := Item{Index: i, Record: record}
		if ferr := p.check(i, record); ferr != nil {
			item.Err = ferr
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}

// check validates required elements and converts validator output into a
// FieldError naming the missing elements.
func (p *Parser) check(index int, record Record) *FieldError {
	err := p.validate.Struct(record)
	if err == nil {
		return nil
	}

	ferr := &FieldError{Index: index, PostID: record.ID}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		ferr.Fields = []string{err.Error()}
		return ferr
	}
	for _, fe := range verrs {
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		ferr.Fields = append(ferr.Fields, path)
	}
	return ferr
}

// toRecord maps a gofeed RSS item onto a Record.
func toRecord(item *rss.Item) Record {
	wp := item.Extensions["wp"]

	record := Record{
		Title:   item.Title,
		ID:      firstValue(wp, "post_id"),
		PubDate: firstValue(wp, "post_date_gmt"),
		Slug:    firstValue(wp, "post_name"),
		Excerpt: firstValue(item.Extensions["excerpt"], "encoded"),
		Content: item.Content,
	}

	record.Categories = make([]Category, 0, len(item.Categories))
	for _, cat := range item.Categories {
		if cat == nil {
			continue
		}
		record.Categories = append(record.Categories, Category{
			Domain: cat.Domain,
			Label:  cat.Value,
		})
	}

	record.Comments = make([]RawComment, 0, len(wp["comment"]))
	for _, c := range wp["comment"] {
		record.Comments = append(record.Comments, RawComment{
			ID:        firstValue(c.Children, "comment_id"),
			Type:      firstValue(c.Children, "comment_type"),
			Author:    firstValue(c.Children, "comment_author"),
			AuthorURL: firstValue(c.Children, "comment_author_url"),
			DateGMT:   firstValue(c.Children, "comment_date_gmt"),
			Content:   firstValue(c.Children, "comment_content"),
		})
	}

	return record
}

// firstValue returns the text of the first element with the given local name.
func firstValue(elements map[string][]ext.Extension, name string) string {
	values := elements[name]
	if len(values) == 0 {
		return ""
	}
	return values[0].Value
}

// String describes the record for log lines.
func (r Record) String() string {
	return fmt.Sprintf("post %s (%s)", r.ID, r.Slug)
}
