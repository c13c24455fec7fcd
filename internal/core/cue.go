package core

import "time"

// Cue names a sound effect the game asks the presentation layer to play.
type Cue string

const (
	CueWing   Cue = "wing"
	CuePoint  Cue = "point"
	CueHit    Cue = "hit"
	CueDie    Cue = "die"
	CueSwoosh Cue = "swoosh"
)

// AllCues lists every cue the game can emit, in a stable order.
var AllCues = []Cue{CueWing, CuePoint, CueHit, CueDie, CueSwoosh}

// SoundEvent is a cue emitted by a simulation step.
// Delay is zero for immediate cues.
type SoundEvent struct {
	Cue   Cue
	Delay time.Duration
}
