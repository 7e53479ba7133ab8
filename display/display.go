// Package display prints frame buffers. Printers never touch geometry; they
// only read cells.
package display

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/smasonuk/asciicubes"
)

// Source is an animation that can render its current state and move on.
// *asciicubes.World satisfies it.
type Source interface {
	Frame() *asciicubes.FrameBuffer
	Advance(now time.Time)
}

type Printer interface {
	Print(fb *asciicubes.FrameBuffer) error
}

// statsEvery is how often (in frames) render stats are logged.
const statsEvery = 100

type Loop struct {
	Interval time.Duration
	// Frames stops the loop after that many frames. Zero runs until ctx ends.
	Frames int
	Now    func() time.Time
}

// Run renders, prints and advances src once per interval. It returns nil when
// ctx is cancelled or the frame limit is reached.
func (l Loop) Run(ctx context.Context, src Source, p Printer) error {
	now := l.Now
	if now == nil {
		now = time.Now
	}
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for n := 0; l.Frames <= 0 || n < l.Frames; n++ {
		if ctx.Err() != nil {
			return nil
		}
		fb := src.Frame()
		if err := p.Print(fb); err != nil {
			return fmt.Errorf("print frame %d: %w", n, err)
		}
		LogStats(n, fb)
		src.Advance(now())

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func LogStats(frame int, fb *asciicubes.FrameBuffer) {
	if frame%statsEvery != 0 {
		return
	}
	s := fb.Stats
	log.Printf("Frame %d: points %d, drawn %d, occluded %d, clipped %d, behind camera %d",
		frame, s.Points, s.Drawn, s.Occluded, s.Clipped, s.BehindCamera)
}
