package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BeepPlayer plays cues from a Bank through the system speaker.
type BeepPlayer struct {
	mu     sync.Mutex
	bank   *Bank
	mixer  *beep.Mixer
	voices map[core.Cue]*beep.Ctrl // Latest voice per cue
	closed bool
}

// NewBeepPlayer opens the speaker and starts the mixer.
func NewBeepPlayer(bank *Bank) (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAudioDevice, err)
	}

	p := &BeepPlayer{
		bank:   bank,
		mixer:  &beep.Mixer{},
		voices: make(map[core.Cue]*beep.Ctrl),
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts cue from the beginning, cutting off its previous voice.
func (p *BeepPlayer) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	buf, ok := p.bank.Buffer(cue)
	if !ok {
		return
	}

	voice := &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len())}

	speaker.Lock()
	if prev := p.voices[cue]; prev != nil {
		// A nil streamer drains immediately and the mixer drops it.
		prev.Streamer = nil
	}
	p.mixer.Add(voice)
	speaker.Unlock()

	p.voices[cue] = voice
}

// PlayAfter mixes cue in after delay of silence, so the delay follows the
// speaker clock. Unlike Play it does not cut off earlier voices of cue.
func (p *BeepPlayer) PlayAfter(cue core.Cue, delay time.Duration, started func()) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if started == nil {
		started = func() {}
	}
	buf, ok := p.bank.Buffer(cue)
	if p.closed || !ok {
		started()
		return func() {}
	}

	voice := &beep.Ctrl{Streamer: beep.Seq(
		beep.Silence(sampleRate.N(delay)),
		beep.Callback(started),
		buf.Streamer(0, buf.Len()),
	)}

	speaker.Lock()
	p.mixer.Add(voice)
	speaker.Unlock()

	return func() {
		speaker.Lock()
		voice.Streamer = nil
		speaker.Unlock()
	}
}

// Close silences all voices. Later calls to Play are ignored.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	p.voices = make(map[core.Cue]*beep.Ctrl)
	p.closed = true
}

var _ DelayedPlayer = (*BeepPlayer)(nil)
