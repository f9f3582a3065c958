package data

import (
	"errors"
	"path/filepath"
	"testing"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestSaveDirectory(t *testing.T) {
	suffix := filepath.Join("Pixelgamix", "BreakoutParty")
	tests := []struct {
		name string
		goos string
		vars map[string]string
		want string
	}{
		{"windows", "windows", map[string]string{"USERPROFILE": "/users/bob"},
			filepath.Join("/users/bob", "Documents", "SavedGames", suffix)},
		{"mac", "darwin", map[string]string{"HOME": "/Users/bob"},
			filepath.Join("/Users/bob", "Library", "Application Support", suffix)},
		{"linux xdg", "linux", map[string]string{"HOME": "/home/bob", "XDG_DATA_HOME": "/data"},
			filepath.Join("/data", suffix)},
		{"linux home", "linux", map[string]string{"HOME": "/home/bob"},
			filepath.Join("/home/bob", ".local", "share", suffix)},
		{"bsd", "freebsd", map[string]string{"HOME": "/home/bob"},
			filepath.Join("/home/bob", ".local", "share", suffix)},
		{"no home", "linux", nil, "."},
		{"no profile", "windows", nil, "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SaveDirectory(tt.goos, env(tt.vars))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSaveDirectoryUnsupported(t *testing.T) {
	for _, goos := range []string{"js", "wasip1", "plan9"} {
		if _, err := SaveDirectory(goos, env(nil)); !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("%s: err = %v, want ErrUnsupportedPlatform", goos, err)
		}
	}
}
