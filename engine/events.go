package engine

import "fmt"

// EventKind identifies what happened during a frame
type EventKind int

const (
	EventCarPassed EventKind = iota
	EventSpawnRateUp
	EventLaneAdded
	EventMaxLanes
	EventPenalty
	EventShoulderOpened
	EventShoulderClosed
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventCarPassed:
		return "car-passed"
	case EventSpawnRateUp:
		return "spawn-rate-up"
	case EventLaneAdded:
		return "lane-added"
	case EventMaxLanes:
		return "max-lanes"
	case EventPenalty:
		return "penalty"
	case EventShoulderOpened:
		return "shoulder-opened"
	case EventShoulderClosed:
		return "shoulder-closed"
	case EventGameOver:
		return "game-over"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a discrete notice emitted by Step for the presentation layer
type Event struct {
	Kind EventKind
	// Text is the banner to show, when the event has one
	Text string
	// Value depends on Kind: points awarded or deducted, the new lane count,
	// the new spawn interval or the final score.
	Value        int
	CarID        int64
	NewHighScore bool
}

func laneAddedEvent(numLanes int) Event {
	return Event{Kind: EventLaneAdded, Text: fmt.Sprintf("NEW LANE! %d LANES!", numLanes), Value: numLanes}
}

func maxLanesEvent(numLanes int) Event {
	return Event{Kind: EventMaxLanes, Text: "MAX LANES!", Value: numLanes}
}
