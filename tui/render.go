package tui

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/cardodge/engine"
)

// Rows reserved above the playfield for the score bar and notices
const hudRows = 2

// Cell is one terminal character
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Viewport is where the playfield lands on the terminal
type Viewport struct {
	X, Y       int // Top-left cell of the playfield
	Cols, Rows int
}

// FitViewport sizes the playfield to the terminal, keeping its aspect ratio
// with cells twice as tall as they are wide.
func FitViewport(termW, termH int, fieldW, fieldH float64) Viewport {
	rows := termH - hudRows
	if rows < 1 {
		rows = 1
	}
	cols := int(math.Round(float64(rows) * fieldW / fieldH * 2))
	if cols > termW {
		cols = termW
		rows = int(math.Round(float64(cols) * fieldH / fieldW / 2))
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Viewport{
		X:    (termW - cols) / 2,
		Y:    hudRows,
		Cols: cols,
		Rows: rows,
	}
}

var (
	styleRoad       = tcell.StyleDefault.Background(tcell.NewRGBColor(0x55, 0x55, 0x55))
	styleGrass      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x4a, 0x80, 0x2a)).Background(tcell.NewRGBColor(0x2d, 0x50, 0x16))
	styleShoulder   = tcell.StyleDefault.Background(tcell.NewRGBColor(0x4a, 0x4a, 0x4a))
	styleHazard     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xEE, 0xEE, 0xEE)).Background(tcell.NewRGBColor(0xC0, 0x10, 0x10))
	styleLaneMarker = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0x55, 0x55, 0x55))
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xFF, 0x00, 0x00))
)

// Layout runes
const (
	runeGrass    = '░'
	runeHazard   = '▚'
	runeDash     = '┆'
	runeCar      = '█'
	runeWarning  = '▒'
	dashPeriod   = 40.0
	dashOnLength = 20.0
)

// RenderField rasterises a snapshot into a Rows x Cols grid. Each cell is
// sampled at its center in playfield coordinates.
func RenderField(snap engine.Snapshot, vp Viewport) [][]Cell {
	cellW := snap.Width / float64(vp.Cols)
	cellH := snap.Height / float64(vp.Rows)

	grid := make([][]Cell, vp.Rows)
	for r := range grid {
		grid[r] = make([]Cell, vp.Cols)
		py := (float64(r) + 0.5) * cellH
		for c := range grid[r] {
			px := (float64(c) + 0.5) * cellW
			grid[r][c] = groundCell(snap, px, py, cellW)
		}
	}

	for _, tc := range snap.Traffic {
		style := tcell.StyleDefault.Foreground(rgb(tc.Color))
		paintRect(grid, tc.Rect.X, tc.Rect.Y, tc.Rect.Right(), tc.Rect.Bottom(), cellW, cellH, Cell{Rune: runeCar, Style: style})
	}

	player := Cell{Rune: runeCar, Style: stylePlayer}
	if snap.Active && (snap.OnGrass || snap.InClosedShoulder) {
		player.Rune = runeWarning
	}
	p := snap.Player
	paintRect(grid, p.X, p.Y, p.Right(), p.Bottom(), cellW, cellH, player)
	return grid
}

// groundCell picks what lies under a sample point
func groundCell(snap engine.Snapshot, px, py, cellW float64) Cell {
	if px < snap.GrassWidth || px > snap.Width-snap.GrassWidth {
		return Cell{Rune: runeGrass, Style: styleGrass}
	}

	if snap.HasShoulder && px >= snap.Shoulder.X && px < snap.Shoulder.Right() {
		if snap.ShoulderOpen {
			return Cell{Rune: ' ', Style: styleShoulder}
		}
		return Cell{Rune: runeHazard, Style: styleHazard}
	}

	for _, x := range snap.LaneDividers {
		if math.Abs(px-x) < cellW/2 && dashVisible(py, snap.RoadOffset) {
			return Cell{Rune: runeDash, Style: styleLaneMarker}
		}
	}
	return Cell{Rune: ' ', Style: styleRoad}
}

// dashVisible reports whether y falls on the painted part of a lane marker
// whose dashes start at offset.
func dashVisible(y, offset float64) bool {
	if y < offset {
		return false
	}
	return math.Mod(y-offset, dashPeriod) < dashOnLength
}

// paintRect fills every cell whose center lies inside the box
func paintRect(grid [][]Cell, left, top, right, bottom, cellW, cellH float64, cell Cell) {
	for r := range grid {
		py := (float64(r) + 0.5) * cellH
		if py < top || py >= bottom {
			continue
		}
		for c := range grid[r] {
			px := (float64(c) + 0.5) * cellW
			if px < left || px >= right {
				continue
			}
			// Keep the road underneath as the background
			_, bg, _ := grid[r][c].Style.Decompose()
			grid[r][c] = Cell{Rune: cell.Rune, Style: cell.Style.Background(bg)}
		}
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
