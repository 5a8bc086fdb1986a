// Package wpdate parses WordPress export timestamps and formats them for
// post filenames, permalinks and comment bylines.
package wpdate

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the timestamp format used by wp:post_date_gmt and wp:comment_date_gmt.
const Layout = "2006-01-02 15:04:05"

// ParseError reports a timestamp that does not match Layout.
type ParseError struct {
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q (want YYYY-MM-DD HH:MM:SS)", e.Value)
}

// Unwrap returns the underlying time parse error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Date is a parsed UTC export timestamp.
type Date struct {
	t time.Time
}

// Parse parses a "YYYY-MM-DD HH:MM:SS" timestamp as UTC.
func Parse(value string) (Date, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return Date{}, &ParseError{Value: value, Err: err}
	}
	return Date{t: t}, nil
}

// Ordinal returns seconds since the Unix epoch, used to order comments.
func (d Date) Ordinal() int64 {
	return d.t.Unix()
}

// Day formats the date as YYYY-MM-DD.
func (d Date) Day() string {
	return d.t.Format("2006-01-02")
}

// MonthPath formats the date as /YYYY/MM/.
func (d Date) MonthPath() string {
	return d.t.Format("/2006/01/")
}

// Display formats the date for comment bylines, e.g. "6 Mar 2014 at 9:00 am".
func (d Date) Display() string {
	return d.t.Format("2 Jan 2006 at 3:04 pm")
}
