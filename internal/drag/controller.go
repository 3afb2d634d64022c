// Package drag turns pointer gestures on a day column into rounded,
// minimum-duration time ranges ready for category capture.
package drag

import "time"

// State is the controller's position in its gesture lifecycle.
type State int

const (
	// StateIdle means no gesture is in progress.
	StateIdle State = iota
	// StateDragging means the pointer is down and the selection overlay
	// is being resized.
	StateDragging
	// StatePendingCategory means a rounded range has been captured and
	// the category picker is open. The overlay persists so the timeframe
	// stays visible while the user chooses.
	StatePendingCategory
)

// SnapMinutes is the rounding grid for drag selections. Start rounds
// down, end rounds up, and anything shorter than one snap is discarded.
const SnapMinutes = 15

// PendingChunk is a tentative, not-yet-committed time range held until
// the user supplies a category or title, or cancels.
type PendingChunk struct {
	Start time.Time
	End   time.Time
}

// Controller is a pointer-event state machine for drag-to-create.
// It is unit-agnostic: offsets are pixels from the top of the day grid
// (below the header), converted to minutes via PixelsPerHour.
type Controller struct {
	PixelsPerHour float64
	StartHour     int // first visible hour of the grid

	state    State
	day      time.Time // local midnight of the column being dragged
	anchorPx float64
	cursorPx float64
	pending  *PendingChunk
}

// NewController creates a controller for a grid with the given scale.
func NewController(pixelsPerHour float64, startHour int) *Controller {
	return &Controller{PixelsPerHour: pixelsPerHour, StartHour: startHour}
}

func (c *Controller) State() State { return c.state }

// Begin starts a drag on the column anchored at dayStart. It is a no-op
// unless the controller is idle: a pointer-down on an existing item or
// during a pending capture must not open a second gesture.
func (c *Controller) Begin(dayStart time.Time, offsetPx float64) {
	if c.state != StateIdle {
		return
	}
	c.state = StateDragging
	c.day = dayStart
	c.anchorPx = offsetPx
	c.cursorPx = offsetPx
}

// Move resizes the selection toward the current pointer offset. Dragging
// upward past the anchor is allowed.
func (c *Controller) Move(offsetPx float64) {
	if c.state != StateDragging {
		return
	}
	c.cursorPx = offsetPx
}

// Overlay returns the provisional selection span in pixels (low, high)
// while a gesture or pending capture is visible.
func (c *Controller) Overlay() (low, high float64, ok bool) {
	switch c.state {
	case StateDragging:
		low, high = c.anchorPx, c.cursorPx
		if low > high {
			low, high = high, low
		}
		return low, high, true
	case StatePendingCategory:
		low = c.timeToPx(c.pending.Start)
		high = c.timeToPx(c.pending.End)
		return low, high, true
	}
	return 0, 0, false
}

// OverlayDay returns the day column the overlay belongs to.
func (c *Controller) OverlayDay() time.Time { return c.day }

// OverlayRange returns the overlay's time span: the raw pointer span while
// dragging, the rounded chunk while the category step is open.
func (c *Controller) OverlayRange() (start, end time.Time, ok bool) {
	switch c.state {
	case StateDragging:
		low, high := c.anchorPx, c.cursorPx
		if low > high {
			low, high = high, low
		}
		return c.pxToTime(low), c.pxToTime(high), true
	case StatePendingCategory:
		return c.pending.Start, c.pending.End, true
	}
	return time.Time{}, time.Time{}, false
}

// Release ends the drag: the pixel span becomes a minute range, the start
// rounds down and the end rounds up to the snap grid. A rounded duration
// below one snap discards the selection and returns to idle.
func (c *Controller) Release() (PendingChunk, bool) {
	if c.state != StateDragging {
		return PendingChunk{}, false
	}
	low, high := c.anchorPx, c.cursorPx
	if low > high {
		low, high = high, low
	}

	start := RoundDown(c.pxToTime(low))
	end := RoundUp(c.pxToTime(high))
	if end.Sub(start) < SnapMinutes*time.Minute {
		c.reset()
		return PendingChunk{}, false
	}

	c.pending = &PendingChunk{Start: start, End: end}
	c.state = StatePendingCategory
	return *c.pending, true
}

// Pending returns the captured chunk while the category step is open.
func (c *Controller) Pending() (PendingChunk, bool) {
	if c.pending == nil {
		return PendingChunk{}, false
	}
	return *c.pending, true
}

// Commit consumes the pending chunk after the user supplied a category
// or title. The overlay disappears and the controller returns to idle.
func (c *Controller) Commit() (PendingChunk, bool) {
	if c.state != StatePendingCategory {
		return PendingChunk{}, false
	}
	chunk := *c.pending
	c.reset()
	return chunk, true
}

// Cancel discards the pending chunk or an in-flight drag.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.pending = nil
	c.anchorPx = 0
	c.cursorPx = 0
}

func (c *Controller) pxToTime(px float64) time.Time {
	minutes := float64(c.StartHour)*60 + px/c.PixelsPerHour*60
	return c.day.Add(time.Duration(minutes * float64(time.Minute)))
}

func (c *Controller) timeToPx(t time.Time) float64 {
	minutes := t.Sub(c.day).Minutes() - float64(c.StartHour)*60
	return minutes / 60 * c.PixelsPerHour
}

// RoundDown snaps t down to the previous snap boundary.
func RoundDown(t time.Time) time.Time {
	return t.Truncate(SnapMinutes * time.Minute)
}

// RoundUp snaps t up to the next snap boundary. Aligned times are
// unchanged, so rounding is idempotent.
func RoundUp(t time.Time) time.Time {
	down := t.Truncate(SnapMinutes * time.Minute)
	if down.Equal(t) {
		return t
	}
	return down.Add(SnapMinutes * time.Minute)
}

// QuickRange computes the bypass range for a quick log: the selected
// duration ending now. No snapping is applied; the caller chose explicit
// times.
func QuickRange(now time.Time, d time.Duration) PendingChunk {
	return PendingChunk{Start: now.Add(-d), End: now}
}
