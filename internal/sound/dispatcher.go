package sound

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Scheduler runs f after d and returns a function that cancels it.
type Scheduler func(d time.Duration, f func()) (cancel func())

// AfterFunc schedules with time.AfterFunc.
func AfterFunc(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// Dispatcher plays the sound events of a simulation step. Immediate cues
// play at once; delayed cues are scheduled and never block the caller.
type Dispatcher struct {
	player   Player
	schedule Scheduler

	mu      sync.Mutex
	nextID  int
	pending map[int]func()
}

// NewDispatcher creates a dispatcher. A nil schedule uses AfterFunc.
func NewDispatcher(player Player, schedule Scheduler) *Dispatcher {
	if schedule == nil {
		schedule = AfterFunc
	}
	return &Dispatcher{
		player:   player,
		schedule: schedule,
		pending:  make(map[int]func()),
	}
}

// Dispatch plays or schedules every event in order.
func (d *Dispatcher) Dispatch(events []core.SoundEvent) {
	for _, e := range events {
		if e.Delay <= 0 {
			d.player.Play(e.Cue)
			continue
		}
		d.later(e)
	}
}

// later delays e on the player's own timeline when it has one, and on the
// scheduler otherwise. d.mu is never held while calling into the player.
func (d *Dispatcher) later(e core.SoundEvent) {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.pending[id] = func() {}
	d.mu.Unlock()

	done := func() bool {
		d.mu.Lock()
		defer d.mu.Unlock()
		_, live := d.pending[id]
		delete(d.pending, id)
		return live
	}

	var cancel func()
	if dp, ok := d.player.(DelayedPlayer); ok {
		cancel = dp.PlayAfter(e.Cue, e.Delay, func() { done() })
	} else {
		cancel = d.schedule(e.Delay, func() {
			if done() {
				d.player.Play(e.Cue)
			}
		})
	}

	d.mu.Lock()
	_, live := d.pending[id]
	if live {
		d.pending[id] = cancel
	}
	d.mu.Unlock()

	// Stopped while scheduling.
	if !live {
		cancel()
	}
}

// Pending returns the number of scheduled cues that have not played yet.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels every scheduled cue.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	cancels := make([]func(), 0, len(d.pending))
	for id, cancel := range d.pending {
		cancels = append(cancels, cancel)
		delete(d.pending, id)
	}
	d.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}
