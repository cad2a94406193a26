package engine

// chargePenalty deducts whole points for time spent on the grass or in a
// closed shoulder. The fractional remainder carries over between frames in a
// zone and is forgotten as soon as the player is clear.
func (e *Engine) chargePenalty(s *RunState, events []Event) []Event {
	box := s.Player.Rect()
	s.OnGrass = e.road.OnGrass(box)
	s.InClosedShoulder = !s.ShoulderOpen && e.road.InShoulder(box)

	if !s.InPenaltyZone() {
		s.PenaltyAccumulator = 0
		return events
	}

	s.PenaltyAccumulator += e.penaltyPerFrame
	if s.PenaltyAccumulator < 1 {
		return events
	}

	points := int(s.PenaltyAccumulator)
	s.PenaltyAccumulator -= float64(points)

	before := s.Score
	s.Score -= points
	if s.Score < 0 {
		s.Score = 0
	}
	if s.Score == before {
		return events
	}
	return append(events, Event{Kind: EventPenalty, Value: before - s.Score})
}

// updateShoulder runs the shoulder's duty cycle, starting closed
func (e *Engine) updateShoulder(s *RunState, events []Event) []Event {
	if !e.road.HasShoulder() {
		return events
	}

	s.ShoulderTimer++
	if s.ShoulderOpen {
		if s.ShoulderTimer >= e.shoulderOpen {
			s.ShoulderOpen = false
			s.ShoulderTimer = 0
			events = append(events, Event{Kind: EventShoulderClosed, Text: "SHOULDER CLOSED"})
		}
		return events
	}

	if s.ShoulderTimer >= e.shoulderClosed {
		s.ShoulderOpen = true
		s.ShoulderTimer = 0
		events = append(events, Event{Kind: EventShoulderOpened, Text: "SHOULDER OPEN"})
	}
	return events
}
