// internal/audio/manager.go
package audio

import (
	"breakout-party/internal/utils"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Output — устройство, которое забирает сэмплы из микшера в своем
// потоке. Lock/Unlock защищают микшер от одновременного чтения.
type Output interface {
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// Silent — выход без устройства: звуки не ставятся в очередь вовсе.
type Silent struct{}

func (Silent) Play(beep.Streamer) {}
func (Silent) Lock()              {}
func (Silent) Unlock()            {}

// SoundManager синтезирует эффекты при первом обращении, кеширует их
// в буферах и смешивает с музыкой.
type SoundManager struct {
	out    Output
	silent bool
	logger *log.Logger

	mu      sync.Mutex
	mixer   *beep.Mixer
	sounds  [soundCount]*beep.Buffer
	tracks  map[MusicTrack]*beep.Buffer
	current MusicTrack
	music   *beep.Ctrl
	volume  *effects.Volume

	soundVolume float64
	musicVolume float64
}

// NewSoundManager подключает микшер к out. nil равнозначен Silent.
func NewSoundManager(out Output, logger *log.Logger) *SoundManager {
	if out == nil {
		out = Silent{}
	}
	if logger == nil {
		logger = log.Default()
	}
	_, silent := out.(Silent)
	sm := &SoundManager{
		out:         out,
		silent:      silent,
		logger:      logger,
		mixer:       &beep.Mixer{},
		tracks:      make(map[MusicTrack]*beep.Buffer),
		soundVolume: 1,
		musicVolume: 1,
	}
	if !silent {
		out.Play(sm.mixer)
	}
	return sm
}

// Silent сообщает, что звук никуда не выводится.
func (sm *SoundManager) Silent() bool { return sm.silent }

func (sm *SoundManager) sound(e SoundEffect) *beep.Buffer {
	if sm.sounds[e] == nil {
		sm.sounds[e] = sm.synthesize(e.String(), soundNotes[e])
	}
	return sm.sounds[e]
}

func (sm *SoundManager) track(m MusicTrack) *beep.Buffer {
	buf, ok := sm.tracks[m]
	if !ok {
		buf = sm.synthesize(m.String(), musicNotes[m])
		sm.tracks[m] = buf
	}
	return buf
}

// synthesize рендерит ноты в буфер. Ошибки синтеза не фатальны:
// сломанные ноты звучат паузой.
func (sm *SoundManager) synthesize(name string, notes []note) *beep.Buffer {
	s, err := melody(notes...)
	if err != nil {
		sm.logger.Warn("sound synthesized with gaps", "sound", name, "err", err)
	}
	return render(s)
}

// Play запускает эффект поверх уже звучащих.
func (sm *SoundManager) Play(e SoundEffect) {
	if e < 0 || e >= soundCount {
		sm.logger.Warn("unknown sound effect", "effect", int(e))
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.silent || sm.soundVolume <= 0 {
		return
	}

	buf := sm.sound(e)
	s := withVolume(buf.Streamer(0, buf.Len()), sm.soundVolume)
	sm.out.Lock()
	sm.mixer.Add(s)
	sm.out.Unlock()
}

// PlayMusic переключает фоновый трек. Повторный запуск того же трека
// ничего не делает, MusicNone останавливает музыку.
func (sm *SoundManager) PlayMusic(m MusicTrack) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if m == sm.current {
		return
	}
	sm.logger.Debug("music", "from", sm.current, "to", m)
	sm.current = m

	sm.out.Lock()
	defer sm.out.Unlock()
	if sm.music != nil {
		// Ctrl без потока заканчивается, и микшер его выбрасывает
		sm.music.Streamer = nil
		sm.music, sm.volume = nil, nil
	}
	if m == MusicNone || sm.silent {
		return
	}
	if _, ok := musicNotes[m]; !ok {
		sm.logger.Warn("unknown music track", "track", int(m))
		return
	}

	buf := sm.track(m)
	sm.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	sm.volume = withVolume(sm.music, sm.musicVolume)
	sm.mixer.Add(sm.volume)
}

// Music — текущий трек.
func (sm *SoundManager) Music() MusicTrack {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.current
}

func (sm *SoundManager) SoundVolume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.soundVolume
}

// SetSoundVolume применяется к эффектам, запущенным после вызова.
func (sm *SoundManager) SetSoundVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.soundVolume = utils.Clamp(v, 0, 1)
}

func (sm *SoundManager) MusicVolume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicVolume
}

// SetMusicVolume меняет громкость сразу, в том числе у звучащего трека.
func (sm *SoundManager) SetMusicVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.musicVolume = utils.Clamp(v, 0, 1)
	if sm.volume != nil {
		sm.out.Lock()
		setVolume(sm.volume, sm.musicVolume)
		sm.out.Unlock()
	}
}

// Active — число потоков в микшере, включая музыку.
func (sm *SoundManager) Active() int {
	sm.out.Lock()
	defer sm.out.Unlock()
	return sm.mixer.Len()
}

// Close глушит все.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()
	sm.music, sm.volume = nil, nil
	sm.current = MusicNone
}
