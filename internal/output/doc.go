// Package output provides console output and exit codes for the wp2jekyll CLI.
//
// # Printer
//
// The Printer handles format switching based on the --json flag and TTY
// detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, useColor(cmd)).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Section("Generating Markdown Files")
//	printer.Wrote(path)          // ">> _posts/2014-03-05-hello-world.markdown"
//	printer.WroteComments(path)  // "*> _includes/comments-42.html"
//	printer.Warn("skipping %s: %v", rec, err)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), progress lines are dropped and
// results are written as JSON documents:
//
//	// Success: {"posts": 2, "comments": 1, "redirects": [...], "skipped": [...], "failed": []}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// Human-readable output uses lipgloss styles that are disabled when output
// is piped, unless --color always is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Wrong arguments, unparseable export document
//	output.ExitSystemError // 2: Unreadable input, missing templates, I/O error
//
// Per-record problems (missing fields, bad dates, failed writes) are
// warnings and do not change the exit code.
package output
