// internal/draw/recorder.go
package draw

import "image/color"

// Call — одна записанная операция рисования
type Call struct {
	Sprite   string
	Text     string
	Frame    int
	X, Y     float64
	Rotation float64
	Tint     color.Color
}

// Recorder — Canvas для тестов: запоминает, что нарисовано. Текст
// меряется как моноширинный.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) DrawSprite(name string, frame int, x, y, rotation, _ float64, tint color.Color) {
	r.Calls = append(r.Calls, Call{Sprite: name, Frame: frame, X: x, Y: y, Rotation: rotation, Tint: tint})
}

func (r *Recorder) DrawText(s string, x, y float64, _ Font, tint color.Color) {
	r.Calls = append(r.Calls, Call{Text: s, X: x, Y: y, Tint: tint})
}

func (r *Recorder) MeasureText(s string, font Font) float64 {
	w := 7.0
	if font == FontTitle {
		w = 14
	}
	return float64(len(s)) * w
}

// Sprites — вызовы, рисовавшие спрайт name
func (r *Recorder) Sprites(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Sprite == name {
			out = append(out, c)
		}
	}
	return out
}

// HasText — была ли нарисована строка s
func (r *Recorder) HasText(s string) bool {
	for _, c := range r.Calls {
		if c.Text == s {
			return true
		}
	}
	return false
}

func (r *Recorder) Reset() { r.Calls = nil }
