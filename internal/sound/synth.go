package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator generates a sine tone gliding linearly between two
// frequencies over half a second, with an exponential fade.
type SweepGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	amplitude float64
	pos       int
	phase     float64
}

// NewSweepGenerator creates a sweep from one frequency to another.
func NewSweepGenerator(sr beep.SampleRate, from, to, amplitude float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, amplitude: amplitude}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	span := float64(g.sr.N(time.Second / 2))
	for i := range samples {
		progress := math.Min(float64(g.pos)/span, 1)
		freq := g.from + (g.to-g.from)*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		t := float64(g.pos) / float64(g.sr)
		sample := g.amplitude * math.Exp(-t*4) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ChimeGenerator plays two notes back to back, the second one ringing out.
type ChimeGenerator struct {
	sr           beep.SampleRate
	first, final float64
	split        int
	pos          int
}

// NewChimeGenerator creates a two-note chime switching notes after firstLen.
func NewChimeGenerator(sr beep.SampleRate, first, final float64, firstLen time.Duration) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, first: first, final: final, split: sr.N(firstLen)}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq, local := g.first, g.pos
		if g.pos >= g.split {
			freq, local = g.final, g.pos-g.split
		}
		t := float64(local) / float64(g.sr)

		// Square-ish tone with a fast decay
		tone := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(2*math.Pi*freq*3*t)
		sample := 0.2 * math.Exp(-t*10) * tone

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// NoiseGenerator generates a low-passed noise burst. attack is in
// milliseconds, decay is the exponential decay rate per second.
type NoiseGenerator struct {
	sr     beep.SampleRate
	attack float64
	decay  float64
	pos    int
	seed   int64
	last   float64
}

// NewNoiseGenerator creates a noise burst generator.
func NewNoiseGenerator(sr beep.SampleRate, attack, decay float64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, attack: attack, decay: decay, seed: 1}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(t*1000/g.attack, 1) * math.Exp(-t*g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.last = 0.8*g.last + 0.2*noise

		sample := 0.6 * envelope * g.last

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
