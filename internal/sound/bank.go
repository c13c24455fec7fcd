package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	resampleQuality = 4
)

var bankFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Bank holds one decoded buffer per cue, all at the same sample rate.
type Bank struct {
	buffers map[core.Cue]*beep.Buffer
}

// Buffer returns the decoded buffer for cue.
func (b *Bank) Buffer(cue core.Cue) (*beep.Buffer, bool) {
	buf, ok := b.buffers[cue]
	return buf, ok
}

// LoadBank decodes <dir>/<cue>.wav for every cue. Any missing or
// undecodable file fails the whole bank with ErrAssetsUnavailable.
func LoadBank(dir string) (*Bank, error) {
	bank := &Bank{buffers: make(map[core.Cue]*beep.Buffer, len(core.AllCues))}

	for _, cue := range core.AllCues {
		path := filepath.Join(dir, string(cue)+".wav")
		buf, err := loadWAV(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAssetsUnavailable, path, err)
		}
		bank.buffers[cue] = buf
	}
	return bank, nil
}

func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(bankFormat)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("empty audio stream")
	}
	return buf, nil
}

// SynthBank renders a built-in chiptune version of every cue.
func SynthBank() *Bank {
	bank := &Bank{buffers: make(map[core.Cue]*beep.Buffer, len(core.AllCues))}

	render := func(cue core.Cue, d time.Duration, gen beep.Streamer) {
		buf := beep.NewBuffer(bankFormat)
		buf.Append(beep.Take(sampleRate.N(d), gen))
		bank.buffers[cue] = buf
	}

	render(core.CueWing, 90*time.Millisecond, NewSweepGenerator(sampleRate, 500, 1100, 0.25))
	render(core.CuePoint, 220*time.Millisecond, NewChimeGenerator(sampleRate, 988, 1319, 60*time.Millisecond))
	render(core.CueHit, 140*time.Millisecond, NewNoiseGenerator(sampleRate, 1, 14))
	render(core.CueDie, 450*time.Millisecond, NewSweepGenerator(sampleRate, 700, 140, 0.3))
	render(core.CueSwoosh, 260*time.Millisecond, NewNoiseGenerator(sampleRate, 7, 6))

	return bank
}
