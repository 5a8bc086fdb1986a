package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	// Clear overrides
	t.Setenv("WP2JEKYLL_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != AppName {
			t.Errorf("Dir() = %q, want path ending in %q", dir, AppName)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("WP2JEKYLL_CONFIG_HOME", "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("WP2JEKYLL_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", AppName) {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", AppName))
	}
}

func TestTemplateDirs(t *testing.T) {
	t.Setenv("WP2JEKYLL_CONFIG_HOME", "/cfg")

	tests := []struct {
		name     string
		explicit string
		want     []string
	}{
		{
			name:     "no explicit dir",
			explicit: "",
			want:     []string{filepath.Join(".wp2jekyll", "templates"), filepath.Join("/cfg", "templates")},
		},
		{
			name:     "explicit dir first",
			explicit: "/site/tpl",
			want:     []string{"/site/tpl", filepath.Join(".wp2jekyll", "templates"), filepath.Join("/cfg", "templates")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TemplateDirs(tt.explicit)
			if len(got) != len(tt.want) {
				t.Fatalf("TemplateDirs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("TemplateDirs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
