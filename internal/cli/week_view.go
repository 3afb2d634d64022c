package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weekgrid/internal/cli/formatter"
	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/alexanderramin/weekgrid/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

var (
	blockFg      = lipgloss.Color("#282828")
	styleOverlay = lipgloss.NewStyle().Background(formatter.ColorFg).Foreground(blockFg)
	styleMore    = lipgloss.NewStyle().Foreground(formatter.ColorDim).Bold(true)
	styleHourDot = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

// placedBox pairs a layout slot with its resolved grid geometry.
type placedBox struct {
	slot layout.Slot
	box  layout.Box
}

func (m weekModel) window(colWidth int) layout.Window {
	return layout.Window{
		StartHour:     m.startHour,
		EndHour:       m.endHour,
		PixelsPerHour: rowsPerHour,
		DayWidth:      float64(colWidth),
		MinHeight:     1,
		MinWidth:      4,
		GutterPct:     0.5,
	}
}

// itemsForDay returns the render pool for one day column, read from the
// store so optimistic entries appear immediately.
func (m weekModel) itemsForDay(dayIdx int) []domain.CalendarItem {
	if m.week == nil {
		return nil
	}
	dayIv := domain.TimeInterval{
		Start: m.week.DayStart(dayIdx),
		End:   m.week.DayStart(dayIdx + 1),
	}
	var pool []domain.CalendarItem
	pool = append(pool, m.store.Planned()...)
	if !m.hideLogged {
		pool = append(pool, m.store.Logged()...)
	}
	var out []domain.CalendarItem
	for _, it := range pool {
		if it.Interval.Overlaps(dayIv) {
			out = append(out, it)
		}
	}
	return out
}

func (m weekModel) maxColumns() int {
	if m.hideLogged {
		return layout.MaxColumnsPlanned
	}
	return layout.MaxColumnsCombined
}

// placedBoxes lays out and places one day column.
func (m weekModel) placedBoxes(dayIdx, colWidth int) []placedBox {
	if m.week == nil {
		return nil
	}
	slots := layout.Layout(m.itemsForDay(dayIdx), m.maxColumns())
	win := m.window(colWidth)
	dayStart := m.week.DayStart(dayIdx)

	var out []placedBox
	for _, slot := range slots {
		if box, ok := layout.Place(slot, dayStart, win); ok {
			out = append(out, placedBox{slot: slot, box: box})
		}
	}
	return out
}

// hitItem reports whether the terminal coordinate lands on a rendered
// item block; drags may only start on empty column space.
func (m weekModel) hitItem(dayIdx, x int, px float64) bool {
	colWidth := m.dayWidth()
	xInCol := x - gutterWidth - dayIdx*colWidth
	for _, pb := range m.placedBoxes(dayIdx, colWidth) {
		top := int(pb.box.Top)
		bottom := top + cellSpan(pb.box.Height)
		left := int(pb.box.LeftPct / 100 * float64(colWidth))
		right := left + cellSpan(pb.box.WidthPct/100*float64(colWidth))
		if int(px) >= top && int(px) < bottom && xInCol >= left && xInCol < right {
			return true
		}
	}
	return false
}

func cellSpan(v float64) int {
	n := int(v)
	if n < 1 {
		return 1
	}
	return n
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m weekModel) View() string {
	if m.quitting {
		return ""
	}

	colWidth := m.dayWidth()
	var sections []string
	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderHeadings(colWidth))
	sections = append(sections, m.renderAllDayStrip(colWidth))
	sections = append(sections, m.renderGrid(colWidth)...)

	if m.picker != nil {
		sections = append(sections, "", m.picker.form.View())
	} else {
		sections = append(sections, formatter.Dim(strings.Repeat("─", max(m.width, 20))))
		sections = append(sections, m.renderStatusBar())
	}

	return strings.Join(sections, "\n")
}

func (m weekModel) renderTitle() string {
	title := formatter.StyleHeader.Render("weekgrid")
	rangeStr := formatter.Dim(fmt.Sprintf("%s – %s",
		formatter.HumanDate(m.weekStart),
		formatter.HumanDate(m.weekStart.AddDate(0, 0, m.days-1))))
	out := title + "  " + rangeStr
	if m.loading {
		out += "  " + formatter.Dim("loading…")
	}
	if m.store != nil && m.store.HasOptimistic() {
		out += "  " + formatter.StyleYellow.Render("syncing…")
	}
	return out
}

func (m weekModel) renderHeadings(colWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for i := 0; i < m.days; i++ {
		day := m.weekStart.AddDate(0, 0, i)
		b.WriteString(formatter.Bold(padCenter(formatter.DayHeading(day), colWidth)))
	}
	return b.String()
}

// renderAllDayStrip shows each all-day item once, in the first day column
// it touches. All-day items never enter the overlap layout.
func (m weekModel) renderAllDayStrip(colWidth int) string {
	cells := make([]string, m.days)
	if m.week != nil {
		for _, it := range m.week.AllDay {
			idx := m.firstTouchedDay(it)
			if idx >= 0 && idx < m.days && cells[idx] == "" {
				label := formatter.Truncate("◆ "+it.Title, colWidth-1)
				cells[idx] = formatter.CategoryStyle(it.Category).Render(padRight(label, colWidth))
			}
		}
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for i := 0; i < m.days; i++ {
		if cells[i] == "" {
			b.WriteString(strings.Repeat(" ", colWidth))
		} else {
			b.WriteString(cells[i])
		}
	}
	return b.String()
}

func (m weekModel) firstTouchedDay(it domain.CalendarItem) int {
	for i := 0; i < m.days; i++ {
		dayIv := domain.TimeInterval{Start: m.week.DayStart(i), End: m.week.DayStart(i + 1)}
		if it.Interval.Overlaps(dayIv) {
			return i
		}
	}
	return -1
}

func (m weekModel) renderGrid(colWidth int) []string {
	gridRows := int(float64(m.endHour-m.startHour) * rowsPerHour)
	hourStep := int(rowsPerHour)

	columns := make([][]string, m.days)
	for d := 0; d < m.days; d++ {
		columns[d] = m.renderDayColumn(d, colWidth, gridRows)
	}

	rows := make([]string, gridRows)
	for r := 0; r < gridRows; r++ {
		var b strings.Builder
		if r%hourStep == 0 {
			b.WriteString(formatter.Dim(fmt.Sprintf("%02d:00 ", m.startHour+r/hourStep)))
		} else {
			b.WriteString(strings.Repeat(" ", gutterWidth))
		}
		for d := 0; d < m.days; d++ {
			b.WriteString(columns[d][r])
		}
		rows[r] = b.String()
	}
	return rows
}

// gridCell is one terminal cell of a day column canvas.
type gridCell struct {
	ch    rune
	style lipgloss.Style
}

func (m weekModel) renderDayColumn(dayIdx, colWidth, gridRows int) []string {
	hourStep := int(rowsPerHour)
	canvas := make([][]gridCell, gridRows)
	for r := range canvas {
		canvas[r] = make([]gridCell, colWidth)
		for c := range canvas[r] {
			if r%hourStep == 0 {
				canvas[r][c] = gridCell{ch: '·', style: styleHourDot}
			} else {
				canvas[r][c] = gridCell{ch: ' '}
			}
		}
	}

	for _, pb := range m.placedBoxes(dayIdx, colWidth) {
		m.paintBox(canvas, pb, colWidth)
	}
	m.paintOverlay(canvas, dayIdx, colWidth)

	rows := make([]string, gridRows)
	for r := range canvas {
		var b strings.Builder
		for _, cell := range canvas[r] {
			b.WriteString(cell.style.Render(string(cell.ch)))
		}
		rows[r] = b.String()
	}
	return rows
}

func (m weekModel) paintBox(canvas [][]gridCell, pb placedBox, colWidth int) {
	it := pb.slot.Item
	top := int(pb.box.Top)
	height := cellSpan(pb.box.Height)
	left := int(pb.box.LeftPct / 100 * float64(colWidth))
	width := cellSpan(pb.box.WidthPct / 100 * float64(colWidth))

	var style lipgloss.Style
	var fill rune
	switch {
	case it.IsOverflow():
		style, fill = styleMore, '░'
	case it.Kind == domain.KindPlanned:
		style, fill = formatter.CategoryStyle(it.Category), '░'
	default:
		style = lipgloss.NewStyle().
			Background(formatter.CategoryColor(it.Category)).
			Foreground(blockFg)
		if it.Unconfirmed {
			style = style.Faint(true)
		}
		fill = ' '
	}

	label := blockLabel(it, width)
	for r := top; r < top+height && r < len(canvas); r++ {
		for c := left; c < left+width && c < colWidth; c++ {
			ch := fill
			if r == top && c-left < len([]rune(label)) {
				ch = []rune(label)[c-left]
			}
			canvas[r][c] = gridCell{ch: ch, style: style}
		}
	}
}

func blockLabel(it domain.CalendarItem, width int) string {
	label := it.Title
	if label == "" {
		label = it.Category
	}
	if it.IsOverflow() {
		label = it.Title
	} else if width >= 12 {
		label = formatter.FormatClock(it.Interval.Start.Local()) + " " + label
	}
	if it.Unconfirmed {
		label += "*"
	}
	return formatter.Truncate(label, width)
}

// paintOverlay draws the drag selection (or the persisting pending
// selection while the category picker is open) over the column.
func (m weekModel) paintOverlay(canvas [][]gridCell, dayIdx, colWidth int) {
	if m.week == nil {
		return
	}
	low, high, ok := m.ctrl.Overlay()
	if !ok || !m.ctrl.OverlayDay().Equal(m.week.DayStart(dayIdx)) {
		return
	}
	start, end, _ := m.ctrl.OverlayRange()
	label := formatter.Truncate(formatter.FormatRange(start.Local(), end.Local()), colWidth)

	top := int(low)
	bottom := int(high)
	if bottom < top+1 {
		bottom = top + 1
	}
	for r := top; r < bottom && r < len(canvas); r++ {
		if r < 0 {
			continue
		}
		for c := 0; c < colWidth; c++ {
			ch := ' '
			if r == top && c < len([]rune(label)) {
				ch = []rune(label)[c]
			}
			canvas[r][c] = gridCell{ch: ch, style: styleOverlay}
		}
	}
}

func (m weekModel) renderStatusBar() string {
	hints := []string{
		formatter.Dim("drag: log"),
		formatter.Dim("n: quick log"),
		formatter.Dim("u: undo"),
		formatter.Dim("←/→: week"),
		formatter.Dim("p: planned only"),
		formatter.Dim("[/]: hours"),
		formatter.Dim("q: quit"),
	}
	bar := strings.Join(hints, "  ")
	if m.status != "" {
		bar += "  " + formatter.StyleYellow.Render(m.status)
	}
	return bar
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
