package layout

import "time"

// Geometry defaults, applied when the corresponding Window field is zero.
const (
	defaultMinHeightPx = 14.0
	defaultGutterPct   = 1.5
	defaultMinWidthPx  = 40.0
)

const minutesPerDay = 24 * 60

// Window describes the visible portion of a day column and its scale.
type Window struct {
	StartHour     int // first visible hour, inclusive
	EndHour       int // last visible hour, exclusive
	PixelsPerHour float64
	HeaderHeight  float64

	// DayWidth is the full pixel width of one day column. When zero the
	// minimum-width floor is not applied (width stays purely fractional).
	DayWidth float64

	// Zero values fall back to the package defaults.
	MinHeight float64
	GutterPct float64
	MinWidth  float64
}

// Box is the rendered position of one slot inside a day column.
// Vertical units are pixels; horizontal units are percent of the column.
type Box struct {
	Top      float64
	Height   float64
	LeftPct  float64
	WidthPct float64
}

// Place maps a layout slot onto the day column anchored at dayStart
// (a local midnight). It returns ok=false when the item's clipped range
// is empty, which happens for multi-day segments falling entirely inside
// hidden hours.
func Place(slot Slot, dayStart time.Time, w Window) (Box, bool) {
	startMin := minutesInto(dayStart, slot.Item.Interval.Start)
	endMin := minutesInto(dayStart, slot.Item.Interval.End)

	visStart := float64(w.StartHour * 60)
	visEnd := float64(w.EndHour * 60)
	if startMin < visStart {
		startMin = visStart
	}
	if endMin > visEnd {
		endMin = visEnd
	}
	if endMin <= startMin {
		return Box{}, false
	}

	minHeight := w.MinHeight
	if minHeight == 0 {
		minHeight = defaultMinHeightPx
	}
	top := w.HeaderHeight + (startMin-visStart)*w.PixelsPerHour/60
	height := (endMin - startMin) * w.PixelsPerHour / 60
	if height < minHeight {
		// Floor keeps degenerate short items clickable.
		height = minHeight
	}

	gutter := w.GutterPct
	if gutter == 0 {
		gutter = defaultGutterPct
	}
	cols := float64(slot.ColumnsInGroup)
	left := float64(slot.Column) / cols * 100
	width := 100/cols - gutter
	if w.DayWidth > 0 {
		minWidth := w.MinWidth
		if minWidth == 0 {
			minWidth = defaultMinWidthPx
		}
		if minPct := minWidth / w.DayWidth * 100; width < minPct {
			width = minPct
		}
	}
	if width > 100-left {
		width = 100 - left
	}

	return Box{
		Top:      top,
		Height:   height,
		LeftPct:  left + gutter/2,
		WidthPct: width,
	}, true
}

// minutesInto returns t as minutes since dayStart, clamped to the day.
func minutesInto(dayStart, t time.Time) float64 {
	m := t.Sub(dayStart).Minutes()
	if m < 0 {
		return 0
	}
	if m > minutesPerDay {
		return minutesPerDay
	}
	return m
}
