package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsEmptyPath(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestLoadSettingsFile(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Settings
		wantErr bool
	}{
		{
			name: "override",
			body: "window_scale = 2\nlog_level = \"debug\"\nseed = 42\n",
			want: Settings{WindowScale: 2, LogLevel: "debug", Seed: 42},
		},
		{
			name: "scale floor",
			body: "window_scale = 0\n",
			want: Settings{WindowScale: 1, LogLevel: "info"},
		},
		{
			name:    "unknown key",
			body:    "volume = 3\n",
			wantErr: true,
		},
		{
			name:    "broken",
			body:    "window_scale = \n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := LoadSettings(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
