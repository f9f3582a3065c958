// Package speakerout выводит звук на системное устройство через beep/speaker.
package speakerout

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker реализует audio.Output.
type Speaker struct{}

// New открывает устройство. Буфер в 100 мс, как и частота, постоянны
// на все время работы процесса.
func New(sr beep.SampleRate) (Speaker, error) {
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return Speaker{}, fmt.Errorf("failed to open audio device: %w", err)
	}
	return Speaker{}, nil
}

func (Speaker) Play(s beep.Streamer) { speaker.Play(s) }
func (Speaker) Lock()                { speaker.Lock() }
func (Speaker) Unlock()              { speaker.Unlock() }

// Close освобождает устройство.
func (Speaker) Close() { speaker.Close() }
