// Package counter computes the frames of the home page's counting
// animation.
package counter

import (
	"context"
	"math"
	"time"
)

const (
	Duration = 1500 * time.Millisecond
	Frame    = 16 * time.Millisecond
)

// Frames returns the values shown on each tick, ending exactly at target.
// A target of zero or less yields a single frame.
func Frames(target int) []int {
	if target <= 0 {
		return []int{max(target, 0)}
	}
	inc := float64(target) / (float64(Duration) / float64(Frame))
	var out []int
	for cur := inc; ; cur += inc {
		if cur >= float64(target) {
			return append(out, target)
		}
		out = append(out, int(math.Floor(cur)))
	}
}

// Run calls set with each frame, one per Frame interval, until the frames
// run out or ctx is done. The ticker is stopped on every exit path.
func Run(ctx context.Context, target int, set func(int)) {
	frames := Frames(target)
	if len(frames) == 1 {
		set(frames[0])
		return
	}
	t := time.NewTicker(Frame)
	defer t.Stop()
	for _, v := range frames {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			set(v)
		}
	}
}
