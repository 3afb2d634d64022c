package drag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestController uses a 60px/h grid starting at midnight so pixel
// offsets read directly as minutes.
func newTestController() (*Controller, time.Time) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	return NewController(60, 0), day
}

func minutesPx(hour, min int) float64 {
	return float64(hour*60 + min)
}

func TestRelease_RoundsOutward(t *testing.T) {
	c, day := newTestController()

	// 10:07 → 10:21 rounds to 10:00–10:30.
	c.Begin(day, minutesPx(10, 7))
	c.Move(minutesPx(10, 21))
	chunk, ok := c.Release()

	require.True(t, ok)
	assert.Equal(t, day.Add(10*time.Hour), chunk.Start)
	assert.Equal(t, day.Add(10*time.Hour+30*time.Minute), chunk.End)
	assert.Equal(t, StatePendingCategory, c.State())
}

func TestRelease_ShortDragStillAcceptedAfterRounding(t *testing.T) {
	c, day := newTestController()

	// 10:05 → 10:10 rounds to 10:00–10:15: exactly one snap, accepted.
	c.Begin(day, minutesPx(10, 5))
	c.Move(minutesPx(10, 10))
	chunk, ok := c.Release()

	require.True(t, ok)
	assert.Equal(t, day.Add(10*time.Hour), chunk.Start)
	assert.Equal(t, day.Add(10*time.Hour+15*time.Minute), chunk.End)
}

func TestRelease_SubSnapSelectionDiscarded(t *testing.T) {
	c, day := newTestController()

	// A click with no movement on a snap boundary rounds to an empty range.
	c.Begin(day, minutesPx(10, 0))
	_, ok := c.Release()

	assert.False(t, ok, "empty rounded range produces no chunk")
	assert.Equal(t, StateIdle, c.State(), "controller resets with no side effects")

	_, pending := c.Pending()
	assert.False(t, pending)
}

func TestRelease_UpwardDragNormalizes(t *testing.T) {
	c, day := newTestController()

	c.Begin(day, minutesPx(11, 0))
	c.Move(minutesPx(10, 0))
	chunk, ok := c.Release()

	require.True(t, ok)
	assert.Equal(t, day.Add(10*time.Hour), chunk.Start)
	assert.Equal(t, day.Add(11*time.Hour), chunk.End)
}

func TestBegin_IgnoredWhilePending(t *testing.T) {
	c, day := newTestController()

	c.Begin(day, minutesPx(10, 0))
	c.Move(minutesPx(11, 0))
	_, ok := c.Release()
	require.True(t, ok)

	// A new pointer-down during the category step must not restart.
	c.Begin(day, minutesPx(14, 0))
	assert.Equal(t, StatePendingCategory, c.State())

	chunk, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, day.Add(10*time.Hour), chunk.Start)
}

func TestOverlay_PersistsThroughPendingCategory(t *testing.T) {
	c, day := newTestController()

	c.Begin(day, minutesPx(10, 7))
	c.Move(minutesPx(10, 21))

	low, high, ok := c.Overlay()
	require.True(t, ok)
	assert.InDelta(t, minutesPx(10, 7), low, 0.001, "raw span while dragging")
	assert.InDelta(t, minutesPx(10, 21), high, 0.001)

	_, released := c.Release()
	require.True(t, released)

	low, high, ok = c.Overlay()
	require.True(t, ok, "overlay persists while the picker is open")
	assert.InDelta(t, minutesPx(10, 0), low, 0.001, "rounded span once pending")
	assert.InDelta(t, minutesPx(10, 30), high, 0.001)

	start, end, ok := c.OverlayRange()
	require.True(t, ok)
	assert.Equal(t, day.Add(10*time.Hour), start)
	assert.Equal(t, day.Add(10*time.Hour+30*time.Minute), end)
}

func TestCommit_ConsumesPendingChunk(t *testing.T) {
	c, day := newTestController()

	c.Begin(day, minutesPx(9, 0))
	c.Move(minutesPx(10, 0))
	_, ok := c.Release()
	require.True(t, ok)

	chunk, ok := c.Commit()
	require.True(t, ok)
	assert.Equal(t, day.Add(9*time.Hour), chunk.Start)

	assert.Equal(t, StateIdle, c.State())
	_, _, overlayOk := c.Overlay()
	assert.False(t, overlayOk, "overlay disappears after commit")

	_, again := c.Commit()
	assert.False(t, again, "double commit is a no-op")
}

func TestCancel_DiscardsAtAnyStage(t *testing.T) {
	c, day := newTestController()

	c.Begin(day, minutesPx(9, 0))
	c.Cancel()
	assert.Equal(t, StateIdle, c.State())

	c.Begin(day, minutesPx(9, 0))
	c.Move(minutesPx(10, 0))
	_, ok := c.Release()
	require.True(t, ok)

	c.Cancel()
	assert.Equal(t, StateIdle, c.State())
	_, pending := c.Pending()
	assert.False(t, pending, "cancel during the category step discards the chunk")
}

func TestRounding_Idempotent(t *testing.T) {
	aligned := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, aligned, RoundDown(aligned))
	assert.Equal(t, aligned, RoundUp(aligned), "aligned times are unchanged")
	assert.Equal(t, RoundUp(aligned), RoundUp(RoundUp(aligned)))
	assert.Equal(t, RoundDown(aligned), RoundDown(RoundDown(aligned)))
}

func TestRounding_Direction(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, base, RoundDown(base.Add(14*time.Minute)))
	assert.Equal(t, base.Add(15*time.Minute), RoundUp(base.Add(time.Minute)))
	assert.Equal(t, base.Add(15*time.Minute), RoundUp(base.Add(14*time.Minute)))
}

func TestStartHourOffset(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	c := NewController(60, 7) // grid starts at 07:00

	// Pixel 0 is 07:00, pixel 120 is 09:00.
	c.Begin(day, 0)
	c.Move(120)
	chunk, ok := c.Release()

	require.True(t, ok)
	assert.Equal(t, day.Add(7*time.Hour), chunk.Start)
	assert.Equal(t, day.Add(9*time.Hour), chunk.End)
}

func TestQuickRange_EndsNow(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 7, 0, 0, time.Local)

	chunk := QuickRange(now, 30*time.Minute)
	assert.Equal(t, now, chunk.End)
	assert.Equal(t, now.Add(-30*time.Minute), chunk.Start, "no snapping on quick logs")
}
