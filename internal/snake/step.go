package snake

// UpdateDirection returns a state with the requested travel direction
// applied. A request that exactly reverses the current direction is
// silently ignored while the snake is longer than one segment, since it
// would drive the head straight into the neck.
func UpdateDirection(s State, requested Direction) State {
	if requested == s.Dir.Opposite() && len(s.Body) > 1 {
		return s
	}
	s.Dir = requested
	return s
}

// Step advances the simulation by one tick and returns the next state.
// The input state is never mutated. Stepping a finished game is a no-op.
//
// Order of evaluation: wall collision, self collision (the vacating tail
// cell does not count unless the snake grows this tick), food and growth,
// plain movement. Filling the board ends the game as a win.
func Step(s State, rng Rand) State {
	if !s.Alive {
		return s
	}

	head := s.Head().Add(s.Dir.Vector())

	if !s.InBounds(head) {
		s.Alive = false
		return s
	}

	grow := head == s.Food

	// The tail cell is vacated this tick unless the snake grows, so it is
	// excluded from the collision check.
	checkLen := len(s.Body)
	if !grow {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if s.Body[i] == head {
			s.Alive = false
			return s
		}
	}

	next := make([]Point, 0, len(s.Body)+1)
	next = append(next, head)
	next = append(next, s.Body...)

	if grow {
		reward := s.Reward
		if reward <= 0 {
			reward = ScoreReward
		}
		s.Score += reward
		if len(next) == s.Width*s.Height {
			// Board full: nowhere left for food.
			s.Body = next
			s.Alive = false
			s.Won = true
			return s
		}
		food, err := SpawnFood(next, s.Width, s.Height, rng)
		if err != nil {
			// Unreachable after the full-board check; treat as a win anyway.
			s.Body = next
			s.Alive = false
			s.Won = true
			return s
		}
		s.Food = food
	} else {
		next = next[:len(next)-1]
	}

	s.Body = next
	return s
}
