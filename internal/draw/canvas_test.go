package draw

import (
	"image/color"
	"testing"
)

func TestFade(t *testing.T) {
	tests := []struct {
		a    float64
		want uint8
	}{
		{1, 255},
		{0, 0},
		{-3, 0},
		{7, 255},
		{0.5, 127},
	}
	for _, tt := range tests {
		got := Fade(color.White, tt.a).(color.NRGBA)
		if got.A != tt.want {
			t.Errorf("Fade(white, %v).A = %d, want %d", tt.a, got.A, tt.want)
		}
	}
}

func TestPulseStaysBright(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := Pulse(float64(i) * 0.013).(color.RGBA)
		if c.R < 100 {
			t.Fatalf("pulse too dark: %v", c)
		}
	}
}

func TestCenterX(t *testing.T) {
	r := &Recorder{}
	if got := CenterX(r, "abcd", FontText, 320); got != 160-14 {
		t.Errorf("CenterX = %v", got)
	}
}
