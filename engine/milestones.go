package engine

// checkSpawnMilestone shortens the spawn interval each time the score enters
// a new band. The recorded level keeps it to once per band even when the score
// dips and climbs back.
func (e *Engine) checkSpawnMilestone(s *RunState, events []Event) []Event {
	d := e.cfg.Difficulty

	level := s.Score / d.SpawnMilestone
	if level <= s.LastMilestoneLevel || s.Score <= 0 {
		return events
	}
	s.LastMilestoneLevel = level

	s.SpawnInterval = floorScale(s.SpawnInterval, d.SpawnDecay)
	if s.SpawnInterval < d.MinSpawnInterval {
		s.SpawnInterval = d.MinSpawnInterval
	}
	return append(events, Event{Kind: EventSpawnRateUp, Value: s.SpawnInterval})
}

// checkLaneMilestone widens the road by one lane per crossed milestone, with
// each gap to the next milestone half again as long as the last.
func (e *Engine) checkLaneMilestone(s *RunState, events []Event) []Event {
	d := e.cfg.Difficulty

	if s.Score < s.NextLaneMilestone {
		return events
	}

	if s.NumLanes >= d.MaxLanes {
		s.NextLaneMilestone = LaneMilestoneSentinel
		return append(events, maxLanesEvent(s.NumLanes))
	}

	s.NumLanes++
	s.Traffic.Lanes = e.road.LaneCenters(s.NumLanes)

	s.NextLaneMilestone += s.LaneMilestoneInterval
	s.LaneMilestoneInterval = floorScale(s.LaneMilestoneInterval, d.LaneIntervalGrowth)
	return append(events, laneAddedEvent(s.NumLanes))
}
