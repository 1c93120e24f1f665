package tilt

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Quad corner order: top-left, top-right, bottom-right, bottom-left.
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// glareShaderSrc shades a card from its local pixel coordinates. Pointer and
// Background are fractions of the card size.
const glareShaderSrc = `//kage:unit pixels
package main

var Size vec2
var Pointer vec2
var Background vec2
var Glow float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	uv := src / Size
	glare := Glow * clamp(1.0-distance(uv, Pointer)*1.6, 0.0, 1.0) * 0.55
	band := 0.5 + 0.5*sin((uv.x+uv.y)*12.0+(Background.x+Background.y)*6.0)
	rgb := color.rgb*(0.85+0.15*band) + vec3(glare)*color.a
	return vec4(clamp(rgb, vec3(0.0), vec3(1.0)), color.a)
}
`

// --- Lazy shader compilation (single-threaded, compiled once per process) ---

var glareShader *ebiten.Shader

func ensureGlareShader() *ebiten.Shader {
	if glareShader == nil {
		s, err := ebiten.NewShader([]byte(glareShaderSrc))
		if err != nil {
			panic("tilt: failed to compile glare shader: " + err.Error())
		}
		glareShader = s
	}
	return glareShader
}

// ProjectQuad returns the screen-space corners of r after rotating it about
// its center by rotateX and rotateY degrees and applying a perspective
// projection with the viewer perspective pixels in front of the plane.
//
// Rotation follows CSS: Y grows downward, Z grows toward the viewer, and
// rotateY is applied after rotateX. A positive rotateY pushes the right edge
// away; a negative rotateX pushes the bottom edge away.
func ProjectQuad(r Rect, rotateX, rotateY, perspective float64) [4]Vec2 {
	c := r.Center()
	hw, hh := r.Width/2, r.Height/2
	corners := [4]Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	sx, cx := math.Sincos(rotateX * math.Pi / 180)
	sy, cy := math.Sincos(rotateY * math.Pi / 180)

	var out [4]Vec2
	for i, p := range corners {
		// rotateX
		y1 := p.Y * cx
		z1 := p.Y * sx
		// rotateY
		x2 := p.X*cy + z1*sy
		z2 := -p.X*sy + z1*cy

		s := 1.0
		if perspective > 0 {
			s = perspective / (perspective - z2)
		}
		out[i] = Vec2{X: c.X + x2*s, Y: c.Y + y1*s}
	}
	return out
}

// cardVertices builds the shader vertices for a projected card.
func cardVertices(quad [4]Vec2, w, h float64, tint Color) []ebiten.Vertex {
	src := [4]Vec2{{0, 0}, {w, 0}, {w, h}, {0, h}}
	r, g, b, a := float32(tint.R*tint.A), float32(tint.G*tint.A), float32(tint.B*tint.A), float32(tint.A)
	vs := make([]ebiten.Vertex, 4)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX: float32(quad[i].X), DstY: float32(quad[i].Y),
			SrcX: float32(src[i].X), SrcY: float32(src[i].Y),
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	return vs
}

// Draw renders every card onto screen in order.
func (b *Board) Draw(screen *ebiten.Image) {
	if b.ClearColor.A > 0 {
		screen.Fill(b.ClearColor.toRGBA())
	}
	for _, c := range b.cards {
		b.drawCard(screen, c)
	}
	if b.ShowFPS {
		b.fps.draw(screen)
	}
}

func (b *Board) drawCard(screen *ebiten.Image, c *Card) {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	p := c.engine.Params()
	quad := ProjectQuad(c.Bounds, p.RotateX, p.RotateY, c.cfg.Perspective)

	opts := &ebiten.DrawTrianglesShaderOptions{
		Uniforms: map[string]any{
			"Size":       []float32{float32(w), float32(h)},
			"Pointer":    []float32{float32(p.PointerFromLeft), float32(p.PointerFromTop)},
			"Background": []float32{float32(p.BackgroundX / 100), float32(p.BackgroundY / 100)},
			"Glow":       float32(c.glow),
		},
	}
	screen.DrawTrianglesShader(cardVertices(quad, w, h, c.Color), quadIndices, ensureGlareShader(), opts)

	if b.debug {
		ebitenutil.DebugPrintAt(screen, c.Name, int(c.Bounds.X)+6, int(c.Bounds.Y)+4)
	}
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R*c.A, 0, 1) * 255),
		G: uint8(clamp(c.G*c.A, 0, 1) * 255),
		B: uint8(clamp(c.B*c.A, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}
