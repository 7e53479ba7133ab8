package display

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/smasonuk/asciicubes"
)

// ANSI streams frames to a writer using escape sequences. Every cell is
// followed by a blank column so the picture keeps a roughly square aspect.
type ANSI struct {
	out     *termenv.Output
	started bool
}

func NewANSI(w io.Writer, opts ...termenv.OutputOption) *ANSI {
	return &ANSI{out: termenv.NewOutput(w, opts...)}
}

func (a *ANSI) Print(fb *asciicubes.FrameBuffer) error {
	if !a.started {
		a.out.HideCursor()
		a.out.ClearScreen()
		a.started = true
	} else {
		a.out.MoveCursor(1, 1)
	}
	_, err := io.WriteString(a.out, a.render(fb))
	return err
}

func (a *ANSI) render(fb *asciicubes.FrameBuffer) string {
	var sb strings.Builder
	sb.Grow(fb.Height * (fb.Width*2 + 1))
	for i := 0; i < fb.Height; i++ {
		for _, c := range fb.ScreenRow(i) {
			glyph := string(c.Glyph)
			if col := termenvColor(c.Color); col != nil {
				glyph = a.out.String(glyph).Foreground(col).String()
			}
			sb.WriteString(glyph)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Close restores the cursor.
func (a *ANSI) Close() error {
	if a.started {
		a.out.ShowCursor()
	}
	return nil
}
