package render

import (
	"fmt"
	"time"

	"github.com/milk9111/walkthedog/common"
)

// FrameRateLocation is where the overlay prints its counter.
var FrameRateLocation = common.Point{X: 400, Y: 100}

// FrameRate counts drawn frames and publishes the count once per second of
// accumulated frame time.
type FrameRate struct {
	counted int
	total   time.Duration
	rate    int
}

// Observe records one drawn frame that took frameTime.
func (f *FrameRate) Observe(frameTime time.Duration) {
	f.counted++
	f.total += frameTime
	if f.total > time.Second {
		f.rate = f.counted
		f.total = 0
		f.counted = 0
	}
}

// Rate is the last published frames-per-second value.
func (f *FrameRate) Rate() int {
	return f.rate
}

func (f *FrameRate) Draw(r Renderer) error {
	if err := r.DrawText(fmt.Sprintf("Frame Rate %d", f.rate), FrameRateLocation); err != nil {
		return fmt.Errorf("render: draw frame rate: %w", err)
	}
	return nil
}
