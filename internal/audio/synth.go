// internal/audio/synth.go
package audio

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate — частота всех синтезированных звуков.
const SampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// envelope обрезает поток до duration с линейными атакой и затуханием
type envelope struct {
	streamer        beep.Streamer
	pos, total      int
	attack, release int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		total:    SampleRate.N(duration),
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume переводит линейную громкость 0..1 в логарифмическую шкалу beep.
// log2(0) = -Inf, поэтому ноль — это тишина.
func withVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, vol)
	return v
}

func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(vol), false
}

type wave int

const (
	waveSine wave = iota
	waveSquare
)

type note struct {
	freq     float64 // 0 — пауза
	duration time.Duration
	wave     wave
	gain     float64
}

// oscillator — бесконечная волна нужной формы; частота 0 дает тишину.
func oscillator(w wave, freq float64) (beep.Streamer, error) {
	if freq <= 0 {
		return generators.Silence(-1), nil
	}
	if w == waveSquare {
		return generators.SquareTone(SampleRate, freq)
	}
	return generators.SineTone(SampleRate, freq)
}

func tone(n note) (beep.Streamer, error) {
	osc, err := oscillator(n.wave, n.freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.2f Hz: %w", n.freq, err)
	}
	shaped := newEnvelope(osc, n.duration, 5*time.Millisecond, n.duration/3)
	gain := n.gain
	if gain == 0 {
		gain = 1
	}
	return withVolume(shaped, gain), nil
}

// melody склеивает ноты. Ноты, которые не удалось синтезировать,
// заменяются паузой той же длины, ошибки возвращаются вместе.
func melody(notes ...note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, len(notes))
	var errs []error
	for i, n := range notes {
		t, err := tone(n)
		if err != nil {
			errs = append(errs, err)
			t = generators.Silence(SampleRate.N(n.duration))
		}
		parts[i] = t
	}
	return beep.Seq(parts...), errors.Join(errs...)
}

const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC3 = 130.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteF3 = 174.61
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// soundNotes описывает каждый эффект короткой мелодией
var soundNotes = [soundCount][]note{
	BallLost:     {{noteG4, ms(90), waveSquare, 0.3}, {noteE4, ms(90), waveSquare, 0.3}, {noteC4, ms(180), waveSquare, 0.3}},
	BlockDestroy: {{noteC5, ms(40), waveSquare, 0.25}, {noteG5, ms(80), waveSquare, 0.25}},
	BlockHit:     {{noteE5, ms(50), waveSquare, 0.2}},
	GameOver:     {{noteC4, ms(200), waveSine, 0.5}, {noteG3, ms(200), waveSine, 0.5}, {noteC3, ms(500), waveSine, 0.5}},
	LevelUp:      {{noteC4, ms(80), waveSquare, 0.25}, {noteE4, ms(80), waveSquare, 0.25}, {noteG4, ms(80), waveSquare, 0.25}, {noteC5, ms(200), waveSquare, 0.25}},
	MenuBack:     {{noteG4, ms(50), waveSine, 0.5}, {noteC4, ms(70), waveSine, 0.5}},
	MenuSelect:   {{noteA4, ms(40), waveSine, 0.4}},
	MenuValidate: {{noteC5, ms(50), waveSine, 0.5}, {noteG5, ms(90), waveSine, 0.5}},
	PaddleHit:    {{noteC4, ms(40), waveSquare, 0.2}},
}

// musicNotes — один проход трека; играется по кругу
var musicNotes = map[MusicTrack][]note{
	TitleMusic: {
		{noteC4, ms(300), waveSine, 0.3}, {noteE4, ms(300), waveSine, 0.3},
		{noteG4, ms(300), waveSine, 0.3}, {noteE4, ms(300), waveSine, 0.3},
		{noteA3, ms(300), waveSine, 0.3}, {noteC4, ms(300), waveSine, 0.3},
		{noteE4, ms(600), waveSine, 0.3}, {0, ms(300), waveSine, 0},
	},
	GameMusic: {
		{noteC3, ms(150), waveSquare, 0.12}, {noteC4, ms(150), waveSquare, 0.12},
		{noteG3, ms(150), waveSquare, 0.12}, {noteC4, ms(150), waveSquare, 0.12},
		{noteF3, ms(150), waveSquare, 0.12}, {noteC4, ms(150), waveSquare, 0.12},
		{noteG3, ms(150), waveSquare, 0.12}, {noteG4, ms(150), waveSquare, 0.12},
	},
}

// render проигрывает поток в буфер, чтобы потом запускать его без синтеза
func render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}
