// internal/data/savedir.go
package data

import (
	"breakout-party/internal/config"
	"errors"
	"fmt"
	"path/filepath"
)

// ErrUnsupportedPlatform — для ОС не известен каталог сохранений.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// SaveDirectory выбирает каталог сохранений по ОС. getenv передается
// снаружи (обычно os.Getenv), goos — runtime.GOOS.
func SaveDirectory(goos string, getenv func(string) string) (string, error) {
	suffix := filepath.Join(config.CompanyName, config.GameName)
	switch goos {
	case "windows":
		home := getenv("USERPROFILE")
		if home == "" {
			return ".", nil
		}
		return filepath.Join(home, "Documents", "SavedGames", suffix), nil
	case "darwin":
		home := getenv("HOME")
		if home == "" {
			return ".", nil
		}
		return filepath.Join(home, "Library", "Application Support", suffix), nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		if xdg := getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, suffix), nil
		}
		home := getenv("HOME")
		if home == "" {
			return ".", nil
		}
		return filepath.Join(home, ".local", "share", suffix), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
}
