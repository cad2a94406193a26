// Package engine advances a Car Dodge run one frame at a time.
//
// Engine.Step is a transition from one RunState to the next given the keys
// held during the frame. It scales traffic speed with the score, applies the
// spawn-rate and lane-count milestones, moves the player, charges penalty
// zones, advances and spawns traffic and finally tests for a collision, which
// ends the run. Everything a frontend needs to draw or announce comes back as
// a Snapshot and a list of Events; the engine never renders or plays sounds.
//
// Session wraps an Engine with the lifecycle of a game: start, restart, tick
// and persisting the high score when a run ends.
package engine
