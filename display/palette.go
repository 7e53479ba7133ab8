package display

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/smasonuk/asciicubes"
)

func termenvColor(c asciicubes.Color) termenv.Color {
	switch c {
	case asciicubes.ColorRed:
		return termenv.ANSIRed
	case asciicubes.ColorGreen:
		return termenv.ANSIGreen
	case asciicubes.ColorYellow:
		return termenv.ANSIYellow
	case asciicubes.ColorBlue:
		return termenv.ANSIBlue
	case asciicubes.ColorMagenta:
		return termenv.ANSIMagenta
	case asciicubes.ColorCyan:
		return termenv.ANSICyan
	case asciicubes.ColorWhite:
		return termenv.ANSIWhite
	}
	return nil
}

func tcellStyle(c asciicubes.Color) tcell.Style {
	style := tcell.StyleDefault
	switch c {
	case asciicubes.ColorRed:
		return style.Foreground(tcell.ColorRed)
	case asciicubes.ColorGreen:
		return style.Foreground(tcell.ColorLime)
	case asciicubes.ColorYellow:
		return style.Foreground(tcell.ColorYellow)
	case asciicubes.ColorBlue:
		return style.Foreground(tcell.ColorBlue)
	case asciicubes.ColorMagenta:
		return style.Foreground(tcell.ColorFuchsia)
	case asciicubes.ColorCyan:
		return style.Foreground(tcell.ColorAqua)
	case asciicubes.ColorWhite:
		return style.Foreground(tcell.ColorWhite)
	}
	return style
}

// RGBA is the color used by pixel printers. ColorNone is light gray.
func RGBA(c asciicubes.Color) color.RGBA {
	switch c {
	case asciicubes.ColorRed:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case asciicubes.ColorGreen:
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	case asciicubes.ColorYellow:
		return color.RGBA{R: 255, G: 255, B: 0, A: 255}
	case asciicubes.ColorBlue:
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case asciicubes.ColorMagenta:
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	case asciicubes.ColorCyan:
		return color.RGBA{R: 0, G: 255, B: 255, A: 255}
	case asciicubes.ColorWhite:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: 200, G: 200, B: 200, A: 255}
}
