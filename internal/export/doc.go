// Package export writes rendered posts to disk and formats the redirect
// table printed at the end of a conversion.
//
// # Files
//
// Each rendered post and comments file is written with WriteFile:
//
//	path, err := export.WriteFile(postsDir, p.FileName, text)
//
// WriteFile creates or truncates the target and returns once the data has
// been written and the file closed. Failures come back as a *WriteError so
// callers can report them and carry on with the next file.
//
// # Redirect Table
//
// A RedirectTable collects post ID to permalink pairs in the order posts
// were converted. A post ID seen twice keeps its first position and takes
// the latest URL. Each pair formats as a PHP assignment for a short-URL
// script:
//
//	$this->blogIds["42"] = "/2014/03/hello-world";
package export
