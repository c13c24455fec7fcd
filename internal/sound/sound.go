// Package sound plays the game's named cues. The simulation only emits
// core.SoundEvent values; a Dispatcher turns them into fire-and-forget
// playback on a Player.
package sound

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	// ErrAssetsUnavailable is returned when cue assets cannot be loaded.
	// The game must not start without them.
	ErrAssetsUnavailable = errors.New("sound: assets unavailable")

	// ErrNoAudioDevice is returned when the audio output cannot be opened.
	ErrNoAudioDevice = errors.New("sound: no audio device")
)

// Player plays named cues. Play must not block and must be safe to call
// from any goroutine. Replaying a cue restarts it; different cues overlap.
type Player interface {
	Play(cue core.Cue)
	Close()
}

// DelayedPlayer is a Player that can delay a cue on its own audio timeline.
// started runs when the cue begins; the returned function cancels it.
type DelayedPlayer interface {
	Player
	PlayAfter(cue core.Cue, delay time.Duration, started func()) (cancel func())
}

// Nop is a Player that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Cue) {}

// Close does nothing.
func (Nop) Close() {}
