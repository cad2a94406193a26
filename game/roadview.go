package game

import (
	"image/color"

	"github.com/golangdaddy/cardodge/background"
	"github.com/golangdaddy/cardodge/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	verge        = color.RGBA{0x44, 0x44, 0x44, 255}
	roadSurface  = color.RGBA{0x55, 0x55, 0x55, 255}
	laneMarker   = color.RGBA{0xFF, 0xFF, 0xFF, 255}
	roadEdge     = color.RGBA{0xFF, 0xD7, 0x00, 255}
	shoulderOpen = color.RGBA{0x4a, 0x4a, 0x4a, 255}
	hazardRed    = color.RGBA{0xC0, 0x10, 0x10, 255}
	hazardWhite  = color.RGBA{0xEE, 0xEE, 0xEE, 255}
)

const (
	dashLength = 20
	laneLine   = 3
	edgeLine   = 4
	hazardBand = 20
)

// RoadView draws the playfield from engine snapshots
type RoadView struct {
	grass *ebiten.Image
}

// NewRoadView renders the verge texture for a playfield
func NewRoadView(grassWidth, height int, seed int64) *RoadView {
	gen := background.NewGenerator(grassWidth, height)
	return &RoadView{
		grass: gen.GenerateGrass(seed),
	}
}

// Draw renders road, shoulder, traffic and player, shifted by (dx, dy)
func (rv *RoadView) Draw(screen *ebiten.Image, snap engine.Snapshot, dx, dy float64) {
	screen.Fill(verge)

	rv.drawGrass(screen, snap, dx, dy)

	left := snap.GrassWidth
	right := snap.Width - snap.GrassWidth
	vector.DrawFilledRect(screen, float32(left+dx), float32(dy), float32(right-left), float32(snap.Height), roadSurface, false)

	if snap.HasShoulder {
		rv.drawShoulder(screen, snap, dx, dy)
	}

	for _, x := range snap.LaneDividers {
		drawDashedLine(screen, x+dx, snap.RoadOffset+dy, snap.Height+dy, laneMarker)
	}

	// Solid edges where the tarmac meets the grass
	vector.StrokeLine(screen, float32(left+dx), float32(dy), float32(left+dx), float32(snap.Height+dy), edgeLine, roadEdge, false)
	vector.StrokeLine(screen, float32(right+dx), float32(dy), float32(right+dx), float32(snap.Height+dy), edgeLine, roadEdge, false)

	drawTraffic(screen, snap, dx, dy)
	drawPlayer(screen, snap, dx, dy)
}

// drawGrass tiles the verge texture down both borders, scrolled with the road
func (rv *RoadView) drawGrass(screen *ebiten.Image, snap engine.Snapshot, dx, dy float64) {
	tileHeight := float64(rv.grass.Bounds().Dy())
	for _, x := range []float64{0, snap.Width - snap.GrassWidth} {
		for y := snap.RoadOffset - tileHeight; y < snap.Height; y += tileHeight {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x+dx, y+dy)
			screen.DrawImage(rv.grass, op)
		}
	}
}

// drawShoulder paints the strip as hazard bands while closed and as a
// dashed-off extra lane while open.
func (rv *RoadView) drawShoulder(screen *ebiten.Image, snap engine.Snapshot, dx, dy float64) {
	s := snap.Shoulder
	x := float32(s.X + dx)
	w := float32(s.W)

	if snap.ShoulderOpen {
		vector.DrawFilledRect(screen, x, float32(dy), w, float32(snap.Height), shoulderOpen, false)
		drawDashedLine(screen, s.Right()+dx, snap.RoadOffset+dy, snap.Height+dy, laneMarker)
		return
	}

	// Bands scroll with the road so the strip reads as part of it
	start := snap.RoadOffset - 2*hazardBand
	for y, i := start, 0; y < snap.Height; y, i = y+hazardBand, i+1 {
		clr := hazardRed
		if i%2 == 1 {
			clr = hazardWhite
		}
		vector.DrawFilledRect(screen, x, float32(y+dy), w, hazardBand, clr, false)
	}
	vector.StrokeLine(screen, float32(s.Right()+dx), float32(dy), float32(s.Right()+dx), float32(snap.Height+dy), edgeLine, roadEdge, false)
}

// drawDashedLine draws a vertical 20-on 20-off line starting at top
func drawDashedLine(screen *ebiten.Image, x, top, bottom float64, clr color.Color) {
	for y := top; y < bottom; y += 2 * dashLength {
		end := y + dashLength
		if end > bottom {
			end = bottom
		}
		vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(end), laneLine, clr, false)
	}
}
