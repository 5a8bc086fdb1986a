// Package main provides the entry point for the wp2jekyll CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/wp2jekyll/internal/config"
	"github.com/gorewood/wp2jekyll/internal/envfile"
	"github.com/gorewood/wp2jekyll/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Environment variables that supply flag defaults.
const (
	envPrefix         = "WP2JEKYLL_"
	envTemplates      = envPrefix + "TEMPLATES"
	envCategoriesOnly = envPrefix + "CATEGORIES_ONLY"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color flag against TTY detection on stdout.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	err := fang.Execute(ctx, cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the wp2jekyll CLI.
func newRootCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "wp2jekyll <export.xml> <posts-dir> <comments-dir>",
		Short: "Convert a WordPress export into Jekyll posts",
		Long: `wp2jekyll - Convert a WordPress WXR export into Jekyll source files.

For every post in the export it writes:
  - <posts-dir>/YYYY-MM-DD-<slug>.markdown   Jekyll post with front matter
  - <comments-dir>/comments-<id>.html        the post's comments (when it has any)

Pingbacks are dropped. When all posts are written, a table mapping WordPress
post IDs to Jekyll permalinks is printed for short-URL redirects.

Templates can be overridden by placing post.markdown or comment.html in
--templates <dir>, .wp2jekyll/templates/ or ~/.config/wp2jekyll/templates/.

Examples:
  wp2jekyll export.xml _posts _includes              # Convert with built-in templates
  wp2jekyll export.xml _posts _includes --json       # Machine-readable summary
  wp2jekyll export.xml _posts _includes --categories-only`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	// Check --color, load .env.local, .env, then the global env file, and fill
	// unset flags from WP2JEKYLL_* variables. Explicit flags always win.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		color, _ := cmd.Flags().GetString("color")
		if err := output.ValidateColorMode(color); err != nil {
			return err
		}
		loadEnvFiles()
		return applyEnvDefaults(cmd)
	}

	// Add persistent --json and --color flags
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always or never")

	cmd.Flags().StringVar(&opts.templatesDir, "templates", "", "Directory with post.markdown/comment.html overrides (env "+envTemplates+")")
	cmd.Flags().BoolVar(&opts.categoriesOnly, "categories-only", false, "Only use WordPress categories, not tags (env "+envCategoriesOnly+")")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. ~/.config/wp2jekyll/env
func loadEnvFiles() {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	_ = envfile.LoadAll(envPrefix, paths...)
}

// applyEnvDefaults sets flags the user did not pass from the environment.
func applyEnvDefaults(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("templates") {
		if dir := os.Getenv(envTemplates); dir != "" {
			if err := cmd.Flags().Set("templates", dir); err != nil {
				return output.NewUserErrorWithCause(envTemplates+": "+err.Error(), err)
			}
		}
	}

	if !cmd.Flags().Changed("categories-only") {
		if raw := os.Getenv(envCategoriesOnly); raw != "" {
			if _, err := strconv.ParseBool(raw); err != nil {
				return output.NewUserErrorWithCause(
					fmt.Sprintf("%s must be true or false, got %q", envCategoriesOnly, raw), err)
			}
			if err := cmd.Flags().Set("categories-only", raw); err != nil {
				return output.NewUserErrorWithCause(envCategoriesOnly+": "+err.Error(), err)
			}
		}
	}
	return nil
}
