// Package flappy implements the Flappy Bird simulation: avatar physics,
// obstacle generation, collision detection, scoring and the game phases.
// It has no knowledge of terminals or audio; presentation reads a Snapshot
// and plays the sound events each step returns.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase governs which update rules apply.
type Phase int

const (
	PhasePlaying         Phase = iota // Physics, obstacles and scoring advance
	PhaseFalling                      // Collided; avatar drops to the ground
	PhaseAwaitingRestart              // Avatar rests on the ground
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseFalling:
		return "Falling"
	case PhaseAwaitingRestart:
		return "AwaitingRestart"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Step and Activate.
type StepResult struct {
	Phase     Phase
	Score     int
	Collision Collision
	Events    []core.SoundEvent
}

// State is the complete simulation of one game session. It has a single
// writer: the frame driver calling Step and Activate.
type State struct {
	cfg       config.WorldConfig
	gen       *Generator
	avatar    Avatar
	obstacles []Obstacle // Leftmost first
	frame     int
	score     int
	highScore int // Survives restarts
	phase     Phase

	groundOffset float64 // Scroll position of the ground band, in (-width, 0]
}

// New creates a simulation. cfg must have passed Validate; src seeds the
// obstacle generator.
func New(cfg config.WorldConfig, src rand.Source) *State {
	s := &State{
		cfg:       cfg,
		gen:       NewGenerator(cfg.Obstacles, src),
		obstacles: make([]Obstacle, 0, 4),
	}
	s.reset()
	return s
}

// reset restores everything except the high score.
func (s *State) reset() {
	s.avatar = newAvatar(s.cfg)
	s.obstacles = s.obstacles[:0]
	s.frame = 0
	s.score = 0
	s.groundOffset = 0
	s.phase = PhasePlaying
}

// Step advances the simulation by one frame.
func (s *State) Step() StepResult {
	switch s.phase {
	case PhasePlaying:
		return s.stepPlaying()
	case PhaseFalling:
		s.stepFalling()
	}
	return s.result(CollisionNone, nil)
}

func (s *State) stepPlaying() StepResult {
	a := &s.avatar
	a.Velocity += s.cfg.Physics.Gravity
	a.Y += a.Velocity
	s.tilt()

	groundY := s.cfg.GroundY()
	if o, ok := s.gen.MaybeSpawn(s.frame, s.cfg.World.Width, groundY); ok {
		s.obstacles = append(s.obstacles, o)
	}
	s.scroll()

	var events []core.SoundEvent
	hit := Detect(a.Hitbox(s.cfg.Avatar.HitboxMargin), groundY, s.obstacles)
	switch hit {
	case CollisionGround:
		a.Y = s.restY()
		s.phase = PhaseFalling
		events = s.crashEvents()
	case CollisionObstacle:
		s.phase = PhaseFalling
		events = s.crashEvents()
	}

	// A crash frame still scores the obstacles already behind the avatar.
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Passed && o.Right() < a.X {
			o.Passed = true
			s.score++
			events = append(events, core.SoundEvent{Cue: core.CuePoint})
		}
	}

	s.frame++
	return s.result(hit, events)
}

// scroll moves obstacles and the ground left and drops obstacles that left the world.
func (s *State) scroll() {
	speed := s.cfg.Physics.ScrollSpeed

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= speed
		if !o.OffScreen() {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	s.groundOffset -= speed
	if s.groundOffset <= -s.cfg.World.Width {
		s.groundOffset = 0
	}
}

// tilt updates the cosmetic rotation while playing: nose up when rising,
// tipping forward while falling.
func (s *State) tilt() {
	a := &s.avatar
	if a.Velocity < 0 {
		a.Rotation = degToRad(s.cfg.Avatar.FlapAngle)
		return
	}
	a.Rotation = s.clampTilt(a.Rotation + degToRad(s.cfg.Avatar.TiltRate))
}

// clampTilt keeps a rotation between the flap angle and the maximum tilt.
func (s *State) clampTilt(rotation float64) float64 {
	return core.ClampF(rotation, degToRad(s.cfg.Avatar.FlapAngle), degToRad(s.cfg.Avatar.MaxTilt))
}

// stepFalling drops the avatar with the steeper fall gravity until it rests on the ground.
func (s *State) stepFalling() {
	a := &s.avatar
	rest := s.restY()
	if a.Y < rest {
		a.Velocity += s.cfg.Physics.FallGravity
		a.Y += a.Velocity
		a.Rotation = s.clampTilt(a.Rotation + degToRad(s.cfg.Avatar.FallSpin))
	}
	if a.Y >= rest {
		a.Y = rest
		s.phase = PhaseAwaitingRestart
	}
}

// crashEvents returns the hit cue and the delayed die cue.
func (s *State) crashEvents() []core.SoundEvent {
	return []core.SoundEvent{
		{Cue: core.CueHit},
		{Cue: core.CueDie, Delay: s.cfg.Timing.DieDelay},
	}
}

// Activate applies the single player action: flap while playing, restart
// once the avatar rests on the ground. It does nothing while falling.
func (s *State) Activate() StepResult {
	switch s.phase {
	case PhasePlaying:
		s.avatar.Velocity = s.cfg.Physics.FlapImpulse
		s.avatar.Rotation = degToRad(s.cfg.Avatar.FlapAngle)
		return s.result(CollisionNone, []core.SoundEvent{{Cue: core.CueWing}})

	case PhaseAwaitingRestart:
		if s.avatar.Y < s.restY()-s.cfg.Avatar.RestartTolerance {
			break
		}
		s.highScore = max(s.highScore, s.score)
		s.reset()
		return s.result(CollisionNone, []core.SoundEvent{{Cue: core.CueSwoosh}})
	}
	return s.result(CollisionNone, nil)
}

// restY is the avatar's y when resting on the ground.
func (s *State) restY() float64 {
	return s.cfg.GroundY() - s.avatar.Height
}

func (s *State) result(hit Collision, events []core.SoundEvent) StepResult {
	return StepResult{
		Phase:     s.phase,
		Score:     s.score,
		Collision: hit,
		Events:    events,
	}
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Score returns the score of the current round.
func (s *State) Score() int {
	return s.score
}

// HighScore returns the best score of the session, excluding the current round.
func (s *State) HighScore() int {
	return s.highScore
}
