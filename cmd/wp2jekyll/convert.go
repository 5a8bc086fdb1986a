package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/wp2jekyll/internal/config"
	"github.com/gorewood/wp2jekyll/internal/export"
	"github.com/gorewood/wp2jekyll/internal/output"
	"github.com/gorewood/wp2jekyll/internal/post"
	"github.com/gorewood/wp2jekyll/internal/render"
	"github.com/gorewood/wp2jekyll/internal/wxr"
)

// convertOptions holds the converter's flag values.
type convertOptions struct {
	templatesDir   string
	categoriesOnly bool
}

// convertReport is the --json summary of a run.
type convertReport struct {
	Posts     int               `json:"posts"`
	Comments  int               `json:"comments"`
	Redirects []export.Redirect `json:"redirects"`
	Skipped   []string          `json:"skipped"`
	Failed    []string          `json:"failed"`
}

// converter turns export records into files. It runs on one goroutine and
// every write finishes before the next record starts.
type converter struct {
	printer     *output.Printer
	postTmpl    *render.Template
	commentTmpl *render.Template
	opts        post.Options
	postsDir    string
	commentsDir string

	table  *export.RedirectTable
	report convertReport
}

// runConvert executes the conversion.
func runConvert(cmd *cobra.Command, args []string, opts convertOptions) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	if len(args) != 3 {
		err := output.NewUserError(fmt.Sprintf("expected 3 arguments, got %d\nUsage: %s", len(args), cmd.UseLine()))
		printer.Error(err)
		return err
	}
	inputPath, postsDir, commentsDir := args[0], args[1], args[2]

	result, err := readExport(printer, inputPath)
	if err != nil {
		return err
	}

	conv, err := newConverter(printer, opts, postsDir, commentsDir)
	if err != nil {
		return err
	}

	printer.Section("Generating Markdown Files")
	if err := conv.convertAll(cmd.Context(), result.Items); err != nil {
		sysErr := output.NewSystemErrorWithCause("conversion interrupted", err)
		printer.Error(sysErr)
		return sysErr
	}

	return conv.finish()
}

// readExport reads and parses the whole export document.
func readExport(printer *output.Printer, path string) (*wxr.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("failed to read %s: %v", path, err), err)
		printer.Error(sysErr)
		return nil, sysErr
	}

	result, err := wxr.Parse(bytes.NewReader(data))
	if err != nil {
		userErr := output.NewUserErrorWithCause(fmt.Sprintf("%s: %v", path, err), err)
		printer.Error(userErr)
		return nil, userErr
	}
	return result, nil
}

// newConverter loads both templates and prepares the output directories.
func newConverter(printer *output.Printer, opts convertOptions, postsDir, commentsDir string) (*converter, error) {
	loader := render.NewLoader(config.TemplateDirs(opts.templatesDir)...)

	postTmpl, err := loader.Load(render.PostTemplate)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("failed to load post template: %v", err), err)
		printer.Error(sysErr)
		return nil, sysErr
	}
	commentTmpl, err := loader.Load(render.CommentTemplate)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("failed to load comment template: %v", err), err)
		printer.Error(sysErr)
		return nil, sysErr
	}

	for _, dir := range []string{postsDir, commentsDir} {
		if err := export.EnsureDir(dir); err != nil {
			sysErr := output.NewSystemErrorWithCause(err.Error(), err)
			printer.Error(sysErr)
			return nil, sysErr
		}
	}

	return &converter{
		printer:     printer,
		postTmpl:    postTmpl,
		commentTmpl: commentTmpl,
		opts: post.Options{
			PostExt:        postTmpl.Ext,
			CommentExt:     commentTmpl.Ext,
			CategoriesOnly: opts.categoriesOnly,
		},
		postsDir:    postsDir,
		commentsDir: commentsDir,
		table:       export.NewRedirectTable(),
		report: convertReport{
			Skipped: []string{},
			Failed:  []string{},
		},
	}, nil
}

// convertAll processes items in document order. It stops early only when
// ctx is cancelled.
func (c *converter) convertAll(ctx context.Context, items []wxr.Item) error {
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.convertItem(item)
	}
	return nil
}

// convertItem writes the post and comments files for one item. Problems are
// reported as warnings and never stop the run.
func (c *converter) convertItem(item wxr.Item) {
	if item.Err != nil {
		c.skip("skipping %v", item.Err)
		return
	}

	p, err := post.New(item.Record, c.opts)
	if err != nil {
		c.skip("skipping item %d: %v", item.Index, err)
		return
	}
	c.table.Add(p.ID, p.URL)

	if c.writePost(p) {
		c.report.Posts++
	}
	if p.HasComments() && c.writeComments(p) {
		c.report.Comments++
	}
}

// writePost renders and writes the post file.
func (c *converter) writePost(p *post.Post) bool {
	text, err := render.Render(c.postTmpl, p.Fields())
	if err != nil {
		c.fail("post %s: %v (%s)", p.ID, err, c.postTmpl.Source)
		return false
	}
	path, err := export.WriteFile(c.postsDir, p.FileName, text)
	if err != nil {
		c.fail("%v", err)
		return false
	}
	c.printer.Wrote(path)
	return true
}

// writeComments renders every comment and writes the comments file.
func (c *converter) writeComments(p *post.Post) bool {
	text, err := render.RenderAll(c.commentTmpl, p.CommentFields())
	if err != nil {
		c.fail("comments for post %s: %v (%s)", p.ID, err, c.commentTmpl.Source)
		return false
	}
	path, err := export.WriteFile(c.commentsDir, p.CommentsFileName, text)
	if err != nil {
		c.fail("%v", err)
		return false
	}
	c.printer.WroteComments(path)
	return true
}

// skip records an item that produced no files.
func (c *converter) skip(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.report.Skipped = append(c.report.Skipped, msg)
	if !c.printer.IsJSON() {
		c.printer.Warn("%s", msg)
	}
}

// fail records a file that could not be rendered or written.
func (c *converter) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.report.Failed = append(c.report.Failed, msg)
	if !c.printer.IsJSON() {
		c.printer.Warn("%s", msg)
	}
}

// finish prints the redirect table and the run summary.
func (c *converter) finish() error {
	c.report.Redirects = c.table.Redirects()

	if c.printer.IsJSON() {
		return c.printer.WriteJSON(c.report)
	}

	c.printer.Section("URLs (for shorturl)")
	c.printer.Print("%s", c.table.Format())

	c.printer.Section("Summary")
	c.printer.KeyValue("Posts", strconv.Itoa(c.report.Posts))
	c.printer.KeyValue("Comment files", strconv.Itoa(c.report.Comments))
	c.printer.KeyValue("Post template", c.postTmpl.Source)
	c.printer.KeyValue("Comment template", c.commentTmpl.Source)
	if n := len(c.report.Skipped); n > 0 {
		c.printer.KeyValue("Skipped", strconv.Itoa(n))
	}
	if n := len(c.report.Failed); n > 0 {
		c.printer.KeyValue("Failed", strconv.Itoa(n))
	}
	c.printer.Println()
	c.printer.Success(fmt.Sprintf("Converted %d posts", c.report.Posts))
	return nil
}
