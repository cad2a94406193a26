package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// GrassColor is the base color of the verge
var GrassColor = color.RGBA{0x2d, 0x50, 0x16, 255}

// Generator creates roadside textures
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateGrass creates a verge strip that tiles vertically, so it can be
// scrolled with the road.
func (g *Generator) GenerateGrass(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	img.WritePixels(g.GrassPixels(seed))
	return img
}

// GrassPixels renders the verge into an RGBA buffer
func (g *Generator) GrassPixels(seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	pix := make([]byte, 4*g.Width*g.Height)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = GrassColor.R, GrassColor.G, GrassColor.B, 255
	}

	// Speckle the base with lighter and darker blades
	for i := 0; i < g.Width*g.Height/8; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(60 + rng.Intn(40))
		g.set(pix, x, y, color.RGBA{0x25, shade, 0x12, 255})
	}

	// Tufts, thinning out in waves down the strip
	for y := 0; y < g.Height; y += 12 {
		density := 0.4 + 0.3*math.Sin(float64(y)*0.02)
		for x := 0; x < g.Width; x += 6 + rng.Intn(10) {
			if rng.Float64() > density {
				continue
			}
			g.drawTuft(pix, x+rng.Intn(6)-3, y+rng.Intn(8)-4, rng)
		}
	}
	return pix
}

// drawTuft draws a small round clump, wrapping vertically
func (g *Generator) drawTuft(pix []byte, x, y int, rng *rand.Rand) {
	radius := 2 + rng.Intn(3)
	c := color.RGBA{
		uint8(30 + rng.Intn(30)),
		uint8(90 + rng.Intn(50)),
		uint8(20 + rng.Intn(20)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(pix, x+dx, (y+dy+g.Height)%g.Height, c)
			}
		}
	}
}

func (g *Generator) set(pix []byte, x, y int, c color.RGBA) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	i := 4 * (y*g.Width + x)
	pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
}
