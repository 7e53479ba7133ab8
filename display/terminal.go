package display

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/smasonuk/asciicubes"
)

// Terminal draws frames full screen with tcell. Cells are two columns wide.
type Terminal struct {
	screen tcell.Screen
}

func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create screen: %w", err)
	}
	return NewTerminalWithScreen(screen)
}

// NewTerminalWithScreen initialises screen and takes ownership of it.
func NewTerminalWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("could not initialise screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen}, nil
}

// Listen polls input until the screen is closed and calls cancel on q, Esc or
// Ctrl-C.
func (t *Terminal) Listen(cancel context.CancelFunc) {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					cancel()
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		}
	}()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (t *Terminal) Print(fb *asciicubes.FrameBuffer) error {
	t.screen.Clear()
	for i := 0; i < fb.Height; i++ {
		for j, c := range fb.ScreenRow(i) {
			t.screen.SetContent(j*2, i, c.Glyph, nil, tcellStyle(c.Color))
		}
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}
