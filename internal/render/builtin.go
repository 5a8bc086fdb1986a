package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/post.markdown templates/comment.html
var builtinFS embed.FS

// builtinTemplates returns the embedded templates rooted at templates/.
func builtinTemplates() fs.FS {
	sub, err := fs.Sub(builtinFS, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "templates" is valid.
		panic(err)
	}
	return sub
}
