package flappy

// Snapshot is a read-only copy of the simulation for presentation.
type Snapshot struct {
	WorldWidth   float64
	WorldHeight  float64
	GroundY      float64
	GroundOffset float64
	Avatar       Avatar
	Obstacles    []Obstacle
	Frame        int
	Score        int
	HighScore    int
	Phase        Phase
}

// GameOver reports whether the game-over banner should be shown.
func (s Snapshot) GameOver() bool {
	return s.Phase != PhasePlaying
}

// Snapshot copies the current state. Mutating the result does not affect the simulation.
func (s *State) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.obstacles))
	copy(obstacles, s.obstacles)

	return Snapshot{
		WorldWidth:   s.cfg.World.Width,
		WorldHeight:  s.cfg.World.Height,
		GroundY:      s.cfg.GroundY(),
		GroundOffset: s.groundOffset,
		Avatar:       s.avatar,
		Obstacles:    obstacles,
		Frame:        s.frame,
		Score:        s.score,
		HighScore:    s.highScore,
		Phase:        s.phase,
	}
}
