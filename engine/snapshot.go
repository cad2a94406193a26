package engine

import (
	"image/color"

	"github.com/golangdaddy/cardodge/road"
)

// CarView is a traffic car as the renderer sees it
type CarView struct {
	Rect  road.Rect
	Color color.RGBA
}

// Snapshot is a read-only view of a run for renderers and HUDs
type Snapshot struct {
	Width, Height float64

	Player  road.Rect
	Traffic []CarView

	NumLanes     int
	LaneCenters  []float64
	LaneDividers []float64
	RoadLeft     float64
	RoadRight    float64
	GrassWidth   float64
	RoadOffset   float64

	HasShoulder      bool
	Shoulder         road.Rect
	ShoulderOpen     bool
	OnGrass          bool
	InClosedShoulder bool
	PenaltyRate      float64 // points per second lost in a penalty zone

	Score           int
	HighScore       int
	DisplaySpeed    int
	DisplayDistance int
	CarsDodged      int

	Active bool
	Over   bool
}

// Snapshot builds a view of s; the slices are fresh copies
func (e *Engine) Snapshot(s RunState) Snapshot {
	traffic := make([]CarView, 0, len(s.Traffic.Cars))
	for _, car := range s.Traffic.Cars {
		traffic = append(traffic, CarView{Rect: car.Rect(), Color: car.Color})
	}

	return Snapshot{
		Width:            e.road.Width,
		Height:           e.road.Height,
		Player:           s.Player.Rect(),
		Traffic:          traffic,
		NumLanes:         s.NumLanes,
		LaneCenters:      append([]float64(nil), s.Traffic.Lanes...),
		LaneDividers:     e.road.LaneDividers(s.NumLanes),
		RoadLeft:         e.road.DrivableLeft(),
		RoadRight:        e.road.DrivableRight(),
		GrassWidth:       e.road.GrassWidth,
		RoadOffset:       s.RoadOffset,
		HasShoulder:      e.road.HasShoulder(),
		Shoulder:         e.road.ShoulderRect(),
		ShoulderOpen:     s.ShoulderOpen,
		OnGrass:          s.OnGrass,
		InClosedShoulder: s.InClosedShoulder,
		PenaltyRate:      e.cfg.Penalty.PointsPerSecond,
		Score:            s.Score,
		HighScore:        s.HighScore,
		DisplaySpeed:     s.DisplaySpeed(e.cfg.Playfield.SpeedFactor),
		DisplayDistance:  s.DisplayDistance(),
		CarsDodged:       s.CarsDodged,
		Active:           s.Active,
		Over:             s.Over,
	}
}
