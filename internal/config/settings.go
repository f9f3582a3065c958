// internal/config/settings.go
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings — параметры запуска, которые можно переопределить TOML-файлом
type Settings struct {
	WindowScale int    `toml:"window_scale"`
	Fullscreen  bool   `toml:"fullscreen"`
	LogLevel    string `toml:"log_level"`
	Seed        uint64 `toml:"seed"` // 0 — сид от часов
	SaveDir     string `toml:"save_dir"`
}

// DefaultSettings — настройки без файла
func DefaultSettings() Settings {
	return Settings{
		WindowScale: WindowScale,
		LogLevel:    "info",
	}
}

// LoadSettings читает path поверх значений по умолчанию. Пустой путь — только умолчания.
// Неизвестные ключи — ошибка.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("failed to decode settings %q: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return s, fmt.Errorf("unknown settings keys in %q: %v", path, keys)
	}
	if s.WindowScale < 1 {
		s.WindowScale = 1
	}
	return s, nil
}
