package road

import (
	"github.com/golangdaddy/cardodge/config"
)

// Road describes the playfield geometry: grass borders on both sides, an
// optional shoulder strip right of the left grass, and the lanes between.
type Road struct {
	Width         float64 // Canvas width
	Height        float64 // Canvas height
	GrassWidth    float64 // Width of each grass border
	ShoulderWidth float64 // Width of the left shoulder, 0 when there is none
	DashPeriod    float64 // Lane dash pattern length (dash + gap)
	ScrollSpeed   float64 // Dash scroll per frame
}

// New builds the road geometry from a configuration
func New(cfg *config.Config) *Road {
	r := &Road{
		Width:       cfg.Playfield.Width,
		Height:      cfg.Playfield.Height,
		GrassWidth:  cfg.Playfield.GrassWidth,
		DashPeriod:  cfg.Playfield.DashPeriod,
		ScrollSpeed: cfg.Playfield.RoadSpeed,
	}
	if cfg.Shoulder.Enabled {
		r.ShoulderWidth = cfg.Shoulder.Width
	}
	return r
}

// HasShoulder reports whether the road has a shoulder strip
func (r *Road) HasShoulder() bool {
	return r.ShoulderWidth > 0
}

// DrivableLeft returns the x of the left edge of the lanes
func (r *Road) DrivableLeft() float64 {
	return r.GrassWidth + r.ShoulderWidth
}

// DrivableRight returns the x of the right edge of the lanes
func (r *Road) DrivableRight() float64 {
	return r.Width - r.GrassWidth
}

// DrivableWidth returns the width shared by all lanes
func (r *Road) DrivableWidth() float64 {
	return r.DrivableRight() - r.DrivableLeft()
}

// LaneWidth returns the width of a single lane when numLanes share the road.
// numLanes must be positive; the configuration never allows fewer than 3.
func (r *Road) LaneWidth(numLanes int) float64 {
	if numLanes <= 0 {
		panic("road: lane count must be positive")
	}
	return r.DrivableWidth() / float64(numLanes)
}

// LaneCenters returns the x of each lane's center, left to right
func (r *Road) LaneCenters(numLanes int) []float64 {
	laneWidth := r.LaneWidth(numLanes)
	centers := make([]float64, numLanes)
	for i := range centers {
		centers[i] = r.DrivableLeft() + laneWidth*float64(i) + laneWidth/2
	}
	return centers
}

// LaneDividers returns the x of the dashed markers between adjacent lanes
func (r *Road) LaneDividers(numLanes int) []float64 {
	laneWidth := r.LaneWidth(numLanes)
	dividers := make([]float64, 0, numLanes-1)
	for i := 1; i < numLanes; i++ {
		dividers = append(dividers, r.DrivableLeft()+laneWidth*float64(i))
	}
	return dividers
}

// GrassZones returns the left and right grass borders
func (r *Road) GrassZones() [2]Rect {
	return [2]Rect{
		{X: 0, Y: 0, W: r.GrassWidth, H: r.Height},
		{X: r.Width - r.GrassWidth, Y: 0, W: r.GrassWidth, H: r.Height},
	}
}

// OnGrass reports whether the box touches either grass border
func (r *Road) OnGrass(box Rect) bool {
	for _, zone := range r.GrassZones() {
		if box.Intersects(zone) {
			return true
		}
	}
	return false
}

// ShoulderRect returns the shoulder strip; it is empty when there is none
func (r *Road) ShoulderRect() Rect {
	return Rect{X: r.GrassWidth, Y: 0, W: r.ShoulderWidth, H: r.Height}
}

// InShoulder reports whether the box touches the shoulder strip
func (r *Road) InShoulder(box Rect) bool {
	return r.HasShoulder() && box.Intersects(r.ShoulderRect())
}

// Scroll advances the lane-dash offset by one frame, wrapping at the dash period
func (r *Road) Scroll(offset float64) float64 {
	offset += r.ScrollSpeed
	if offset >= r.DashPeriod {
		offset = 0
	}
	return offset
}
