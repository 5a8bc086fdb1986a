// Package wxr reads WordPress eXtended RSS (WXR) export documents.
//
// A WXR file is an RSS 2.0 feed whose items carry WordPress data in the
// wp:, content: and excerpt: namespaces. Parsing is delegated to the gofeed
// RSS parser; this package maps each channel item onto a typed Record:
//
//	result, err := wxr.Parse(bytes.NewReader(data))
//	for _, item := range result.Items {
//		if item.Err != nil {
//			// missing wp:post_id, wp:post_date_gmt, ...
//			continue
//		}
//		use(item.Record)
//	}
//
// # Required Fields
//
// An item must carry wp:post_id, wp:post_date_gmt and wp:post_name, and
// every wp:comment other than a pingback must carry wp:comment_id and
// wp:comment_date_gmt. Items
// that do not are reported as a *FieldError in place of their Record so
// the caller can decide to skip them; the rest of the document is still
// returned. Title, excerpt, content and comment author fields may be empty.
//
// # Categories
//
// Every <category> element is kept along with its domain attribute
// ("category" or "post_tag"), so callers can tell tags from categories.
package wxr
