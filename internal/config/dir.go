// Package config resolves where wp2jekyll looks for user configuration.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the configuration directory.
const AppName = "wp2jekyll"

// ProjectDir is the per-site directory checked before the global one.
const ProjectDir = ".wp2jekyll"

// Dir returns the wp2jekyll configuration directory.
//
// Resolution:
//   - $WP2JEKYLL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/wp2jekyll if set (respects XDG on any platform)
//   - %AppData%/wp2jekyll on Windows
//   - ~/.config/wp2jekyll on macOS and Linux
func Dir() string {
	if dir := os.Getenv("WP2JEKYLL_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// TemplateDirs returns the template override directories in lookup order:
// the explicit directory (if any), the project directory, then the global
// configuration directory.
func TemplateDirs(explicit string) []string {
	var dirs []string
	if explicit != "" {
		dirs = append(dirs, explicit)
	}
	dirs = append(dirs, filepath.Join(ProjectDir, "templates"))
	if dir := Dir(); dir != "" {
		dirs = append(dirs, filepath.Join(dir, "templates"))
	}
	return dirs
}
