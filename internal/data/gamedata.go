// internal/data/gamedata.go
package data

import (
	"breakout-party/internal/config"
	"breakout-party/internal/utils"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

const (
	MaxHighscoreCount = 6
	NameLength        = 3
	DefaultName       = "AAA"
)

// Highscore — одна строка таблицы рекордов.
type Highscore struct {
	ID    uuid.UUID `toml:"id"`
	Name  string    `toml:"name"`
	Date  time.Time `toml:"date"`
	Level int       `toml:"level"`
	Score int       `toml:"score"`
}

// Gamedata — все, что переживает перезапуск игры.
type Gamedata struct {
	SoundVolume float64     `toml:"sound_volume"`
	MusicVolume float64     `toml:"music_volume"`
	Highscores  []Highscore `toml:"highscores"`
}

// NewGamedata возвращает данные первого запуска: полная громкость и
// таблица, заполненная по убыванию.
func NewGamedata(now time.Time) *Gamedata {
	d := &Gamedata{SoundVolume: 1, MusicVolume: 1}
	d.Highscores = defaultHighscores(now, MaxHighscoreCount)
	return d
}

func defaultHighscores(now time.Time, n int) []Highscore {
	list := make([]Highscore, 0, n)
	for i := n - 1; i >= 0; i-- {
		level := i*2 + 1
		list = append(list, Highscore{
			ID:    uuid.New(),
			Name:  DefaultName,
			Date:  now,
			Level: level,
			Score: level * 30,
		})
	}
	return list
}

// Qualifies сообщает, попадет ли score в таблицу.
func (d *Gamedata) Qualifies(score int) bool {
	return d.rank(score) < MaxHighscoreCount
}

func (d *Gamedata) rank(score int) int {
	for i, h := range d.Highscores {
		if score > h.Score {
			return i
		}
	}
	return len(d.Highscores)
}

// Insert вставляет результат на свое место, сдвигая остальные вниз, и
// обрезает таблицу. Возвращает индекс новой строки или -1.
func (d *Gamedata) Insert(level, score int, now time.Time) int {
	i := d.rank(score)
	if i >= MaxHighscoreCount {
		return -1
	}
	entry := Highscore{ID: uuid.New(), Name: DefaultName, Date: now, Level: level, Score: score}
	d.Highscores = append(d.Highscores, Highscore{})
	copy(d.Highscores[i+1:], d.Highscores[i:])
	d.Highscores[i] = entry
	if len(d.Highscores) > MaxHighscoreCount {
		d.Highscores = d.Highscores[:MaxHighscoreCount]
	}
	return i
}

// normalize чинит данные, отредактированные руками.
func (d *Gamedata) normalize(now time.Time) {
	d.SoundVolume = utils.Clamp(d.SoundVolume, 0, 1)
	d.MusicVolume = utils.Clamp(d.MusicVolume, 0, 1)
	for i := range d.Highscores {
		h := &d.Highscores[i]
		h.Name = SanitizeName(h.Name)
		if h.ID == uuid.Nil {
			h.ID = uuid.New()
		}
	}
	sort.SliceStable(d.Highscores, func(i, j int) bool {
		return d.Highscores[i].Score > d.Highscores[j].Score
	})
	if len(d.Highscores) > MaxHighscoreCount {
		d.Highscores = d.Highscores[:MaxHighscoreCount]
	}
	if missing := MaxHighscoreCount - len(d.Highscores); missing > 0 {
		// Добиваем таблицу строками ниже последнего результата
		for _, h := range defaultHighscores(now, MaxHighscoreCount) {
			if len(d.Highscores) == MaxHighscoreCount {
				break
			}
			if last := len(d.Highscores); last == 0 || h.Score <= d.Highscores[last-1].Score {
				d.Highscores = append(d.Highscores, h)
			}
		}
		for len(d.Highscores) < MaxHighscoreCount {
			d.Highscores = append(d.Highscores, Highscore{ID: uuid.New(), Name: DefaultName, Date: now})
		}
	}
}

// SanitizeName приводит имя к трем заглавным латинским буквам.
func SanitizeName(name string) string {
	out := []byte(DefaultName)
	for i := 0; i < NameLength && i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			out[i] = c
		}
	}
	return string(out)
}

// Load читает сохранение из dir. Отсутствующий файл — не ошибка:
// возвращаются данные первого запуска.
func Load(dir string, now time.Time) (*Gamedata, error) {
	path := filepath.Join(dir, config.SaveFile)
	d := &Gamedata{SoundVolume: 1, MusicVolume: 1}
	if _, err := toml.DecodeFile(path, d); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewGamedata(now), nil
		}
		return nil, fmt.Errorf("failed to load %q: %w", path, err)
	}
	d.normalize(now)
	return d, nil
}

// Save пишет данные во временный файл и переименовывает его, чтобы
// оборванная запись не портила прежнее сохранение.
func (d *Gamedata) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, config.SaveFile)
	tmp, err := os.CreateTemp(dir, config.SaveFile+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(d); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode gamedata: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write gamedata: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %q: %w", path, err)
	}
	return nil
}
