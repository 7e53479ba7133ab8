// Package window shows frames in a desktop window with ebiten.
package window

import (
	"context"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/asciicubes"
	"github.com/smasonuk/asciicubes/display"
)

// Debug font glyphs are 6x16 pixels; each cell is a glyph plus a spacer.
const (
	cellWidth  = 12
	cellHeight = 16
)

type Game struct {
	ctx    context.Context
	src    display.Source
	frames int
	count  int
	fb     *asciicubes.FrameBuffer
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.frames > 0 && g.count >= g.frames {
		return ebiten.Termination
	}
	g.fb = g.src.Frame()
	display.LogStats(g.count, g.fb)
	g.src.Advance(time.Now())
	g.count++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.fb == nil {
		return
	}
	var line strings.Builder
	for i := 0; i < g.fb.Height; i++ {
		line.Reset()
		for j, c := range g.fb.ScreenRow(i) {
			if c.Filled {
				tile := display.RGBA(c.Color)
				tile.A = 96
				vector.DrawFilledRect(screen, float32(j*cellWidth), float32(i*cellHeight), cellWidth, cellHeight, tile, false)
			}
			line.WriteRune(c.Glyph)
			line.WriteByte(' ')
		}
		ebitenutil.DebugPrintAt(screen, line.String(), 0, i*cellHeight)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width(), g.height()
}

func (g *Game) width() int {
	if g.fb == nil {
		return cellWidth
	}
	return g.fb.Width * cellWidth
}

func (g *Game) height() int {
	if g.fb == nil {
		return cellHeight
	}
	return g.fb.Height * cellHeight
}

// Run opens a window sized for a width x height grid and animates src at the
// given interval until ctx ends, the window closes, or frames have been shown.
func Run(ctx context.Context, src display.Source, width, height int, interval time.Duration, frames int) error {
	g := &Game{ctx: ctx, src: src, frames: frames, fb: src.Frame()}
	ebiten.SetWindowSize(width*cellWidth, height*cellHeight)
	ebiten.SetWindowTitle("asciicubes")
	ebiten.SetTPS(max(1, int(time.Second/interval)))
	return ebiten.RunGame(g)
}
