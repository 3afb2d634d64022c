package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/alexanderramin/weekgrid/internal/drag"
	"github.com/alexanderramin/weekgrid/internal/service"
	"github.com/alexanderramin/weekgrid/internal/store"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type weekKeyMap struct {
	Quit         key.Binding
	PrevWeek     key.Binding
	NextWeek     key.Binding
	Today        key.Binding
	Refresh      key.Binding
	Undo         key.Binding
	PlannedOnly  key.Binding
	QuickLog     key.Binding
	EarlierHours key.Binding
	LaterHours   key.Binding
	Cancel       key.Binding
}

var weekKeys = weekKeyMap{
	Quit:         key.NewBinding(key.WithKeys("q")),
	PrevWeek:     key.NewBinding(key.WithKeys("left", "h")),
	NextWeek:     key.NewBinding(key.WithKeys("right", "l")),
	Today:        key.NewBinding(key.WithKeys("t")),
	Refresh:      key.NewBinding(key.WithKeys("r")),
	Undo:         key.NewBinding(key.WithKeys("u")),
	PlannedOnly:  key.NewBinding(key.WithKeys("p")),
	QuickLog:     key.NewBinding(key.WithKeys("n")),
	EarlierHours: key.NewBinding(key.WithKeys("[")),
	LaterHours:   key.NewBinding(key.WithKeys("]")),
	Cancel:       key.NewBinding(key.WithKeys("esc")),
}

// Grid metrics. Vertical "pixels" are terminal rows: two rows per hour,
// one per drag snap step.
const (
	rowsPerHour = 2.0
	gutterWidth = 6
	headerRows  = 3 // title, day headings, all-day strip
	footerRows  = 2 // separator, status/help

	defaultStartHour = 7
	defaultQuickMin  = 30
)

// ── messages ─────────────────────────────────────────────────────────────────

type weekLoadedMsg struct {
	week *service.WeekData
	err  error
}

type categoriesLoadedMsg struct {
	cats []api.CategoryRecord
	err  error
}

// entryMutatedMsg reports the async outcome of a create, delete, or edit.
type entryMutatedMsg struct {
	verb string
	id   string
	err  error
}

type undoneMsg struct {
	summary string
	err     error
}

// ── model ────────────────────────────────────────────────────────────────────

// weekModel is the root bubbletea Model for the week timeline. All state
// mutation happens in Update on the event loop; network calls run as
// commands whose results land here as messages, and every mutation is
// followed by a full week refresh so a stale response can only lose to a
// newer snapshot, never corrupt one.
type weekModel struct {
	app   *App
	store *store.Store
	ctrl  *drag.Controller

	weekStart time.Time
	days      int
	week      *service.WeekData

	categories []api.CategoryRecord
	picker     *categoryPicker

	startHour int
	endHour   int

	lastQuickMin int
	hideLogged   bool
	loading      bool
	status       string
	width        int
	height       int
	quitting     bool
}

func newWeekModel(app *App, weekStart time.Time, days int) weekModel {
	return weekModel{
		app:          app,
		store:        app.Store,
		ctrl:         drag.NewController(rowsPerHour, defaultStartHour),
		weekStart:    weekStart,
		days:         days,
		startHour:    defaultStartHour,
		endHour:      defaultStartHour + 12,
		lastQuickMin: defaultQuickMin,
		loading:      true,
	}
}

func (m weekModel) Init() tea.Cmd {
	return tea.Batch(m.loadWeek(), m.loadCategories())
}

// ── commands ─────────────────────────────────────────────────────────────────
// Commands run on their own goroutines, so they are pure network I/O:
// every store or undo-slot mutation happens in Update when the result
// message lands on the event loop.

func (m weekModel) loadWeek() tea.Cmd {
	start, days := m.weekStart, m.days
	app := m.app
	return func() tea.Msg {
		week, err := app.Timeline.BuildWeek(context.Background(), start, days)
		return weekLoadedMsg{week: week, err: err}
	}
}

func (m weekModel) loadCategories() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		cats, err := app.Categories.List(context.Background())
		return categoriesLoadedMsg{cats: cats, err: err}
	}
}

func (m weekModel) createEntry(in service.LogInput) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		id, err := app.Logs.Create(context.Background(), in)
		return entryMutatedMsg{verb: "logged", id: id, err: err}
	}
}

func (m weekModel) performUndo(action store.UndoAction) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		summary, err := app.Logs.PerformUndo(context.Background(), action)
		return undoneMsg{summary: summary, err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (m weekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fitVisibleHours()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case weekLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = errorStatus(msg.err)
			return m, nil
		}
		m.week = msg.week
		// Full snapshot replace: optimistic entries are dropped whether
		// the create behind them succeeded or not.
		m.store.ApplyRefresh(msg.week.Planned, msg.week.Logged)
		return m, nil

	case categoriesLoadedMsg:
		if msg.err != nil {
			m.status = errorStatus(msg.err)
			return m, nil
		}
		m.categories = msg.cats
		return m, nil

	case entryMutatedMsg:
		if msg.err != nil {
			m.status = errorStatus(msg.err)
		} else {
			m.app.Logs.RecordCreate(msg.id)
			m.status = msg.verb + " ✓"
		}
		// Success and failure both resolve through a refresh; on failure
		// it is the rollback that drops the optimistic entry.
		return m, m.loadWeek()

	case undoneMsg:
		if msg.err != nil {
			m.status = errorStatus(msg.err)
		} else {
			m.status = msg.summary
		}
		return m, m.loadWeek()
	}

	if m.picker != nil {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m weekModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.picker != nil {
		if msg.Type == tea.KeyEsc {
			// Closing without input discards the pending chunk.
			m.ctrl.Cancel()
			m.picker = nil
			return m, nil
		}
		return m.updatePicker(msg)
	}

	switch {
	case key.Matches(msg, weekKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, weekKeys.PrevWeek):
		m.weekStart = m.weekStart.AddDate(0, 0, -7)
		m.loading = true
		return m, m.loadWeek()

	case key.Matches(msg, weekKeys.NextWeek):
		m.weekStart = m.weekStart.AddDate(0, 0, 7)
		m.loading = true
		return m, m.loadWeek()

	case key.Matches(msg, weekKeys.Today):
		m.weekStart = weekAnchor(time.Now())
		m.loading = true
		return m, m.loadWeek()

	case key.Matches(msg, weekKeys.Refresh):
		m.loading = true
		return m, m.loadWeek()

	case key.Matches(msg, weekKeys.Undo):
		// Consume the slot and apply the local removal here, on the loop;
		// the command only carries the network call.
		action, ok := m.app.Logs.TakeUndo()
		if !ok {
			m.status = "nothing to undo"
			return m, nil
		}
		return m, m.performUndo(action)

	case key.Matches(msg, weekKeys.PlannedOnly):
		// Planned-only view; the layout runs with the tighter column cap.
		m.hideLogged = !m.hideLogged
		return m, nil

	case key.Matches(msg, weekKeys.QuickLog):
		// Quick log bypasses dragging entirely.
		m.picker = newQuickPicker(m.categories, m.lastQuickMin)
		return m, m.picker.form.Init()

	case key.Matches(msg, weekKeys.EarlierHours):
		if m.startHour > 0 {
			m.shiftVisibleHours(-1)
		}
		return m, nil

	case key.Matches(msg, weekKeys.LaterHours):
		if m.endHour < 24 {
			m.shiftVisibleHours(1)
		}
		return m, nil

	case key.Matches(msg, weekKeys.Cancel):
		m.ctrl.Cancel()
		return m, nil
	}

	return m, nil
}

func (m weekModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		return m, nil
	}

	dayIdx, px, onGrid := m.gridPosition(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onGrid || m.week == nil {
			return m, nil
		}
		// Only empty column space starts a drag.
		if m.hitItem(dayIdx, msg.X, px) {
			return m, nil
		}
		m.ctrl.Begin(m.week.DayStart(dayIdx), px)

	case tea.MouseActionMotion:
		if onGrid {
			m.ctrl.Move(px)
		}

	case tea.MouseActionRelease:
		chunk, ok := m.ctrl.Release()
		if !ok {
			return m, nil
		}
		// The overlay persists, marked pending, while the user chooses.
		m.picker = newChunkPicker(chunk, m.categories)
		return m, m.picker.form.Init()
	}

	return m, nil
}

func (m weekModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.picker.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.picker.form = f
	}

	switch m.picker.form.State {
	case huh.StateCompleted:
		return m.commitPicker(cmd)
	case huh.StateAborted:
		m.ctrl.Cancel()
		m.picker = nil
		return m, nil
	}
	return m, cmd
}

// commitPicker turns the finished capture step into an optimistic entry
// and fires the backing create request.
func (m weekModel) commitPicker(pending tea.Cmd) (tea.Model, tea.Cmd) {
	picker := m.picker
	id, name, ok := picker.resolve(m.categories)
	if !ok {
		// Validation failure stays local: prompt again, keep the chunk.
		m.status = "pick a category or type a title"
		if picker.chunk != nil {
			m.picker = newChunkPicker(*picker.chunk, m.categories)
		} else {
			m.picker = newQuickPicker(m.categories, m.lastQuickMin)
		}
		return m, tea.Batch(pending, m.picker.form.Init())
	}

	var interval domain.TimeInterval
	if picker.chunk != nil {
		chunk, committed := m.ctrl.Commit()
		if !committed {
			chunk = *picker.chunk
		}
		interval = domain.TimeInterval{Start: chunk.Start, End: chunk.End}
	} else {
		minutes := parsePositiveInt(picker.duration, m.lastQuickMin)
		m.lastQuickMin = minutes
		q := drag.QuickRange(time.Now(), time.Duration(minutes)*time.Minute)
		interval = domain.TimeInterval{Start: q.Start, End: q.End}
	}

	in := service.LogInput{
		Interval:   interval,
		CategoryID: id,
		Category:   name,
		Title:      strings.TrimSpace(picker.title),
	}
	m.app.Logs.CommitOptimistic(in)
	m.picker = nil
	m.status = ""
	return m, tea.Batch(pending, m.createEntry(in))
}

// ── geometry helpers ─────────────────────────────────────────────────────────

// fitVisibleHours sizes the visible hour window to the terminal height.
func (m *weekModel) fitVisibleHours() {
	if m.height <= headerRows+footerRows {
		return
	}
	gridRows := m.height - headerRows - footerRows
	hours := int(float64(gridRows) / rowsPerHour)
	if hours < 4 {
		hours = 4
	}
	if hours > 24 {
		hours = 24
	}
	m.endHour = m.startHour + hours
	if m.endHour > 24 {
		m.startHour = 24 - hours
		m.endHour = 24
	}
}

func (m *weekModel) shiftVisibleHours(delta int) {
	hours := m.endHour - m.startHour
	m.startHour += delta
	if m.startHour < 0 {
		m.startHour = 0
	}
	if m.startHour+hours > 24 {
		m.startHour = 24 - hours
	}
	m.endHour = m.startHour + hours
	m.ctrl.StartHour = m.startHour
}

func (m weekModel) dayWidth() int {
	if m.width <= gutterWidth || m.days == 0 {
		return 18
	}
	w := (m.width - gutterWidth) / m.days
	if w < 8 {
		w = 8
	}
	return w
}

// gridPosition maps terminal coordinates to a day index and a pixel (row)
// offset inside the hour grid.
func (m weekModel) gridPosition(x, y int) (dayIdx int, px float64, ok bool) {
	gridRows := int(float64(m.endHour-m.startHour) * rowsPerHour)
	row := y - headerRows
	col := x - gutterWidth
	if row < 0 || row >= gridRows || col < 0 {
		return 0, 0, false
	}
	dayIdx = col / m.dayWidth()
	if dayIdx >= m.days {
		return 0, 0, false
	}
	return dayIdx, float64(row), true
}

func errorStatus(err error) string {
	return "error: " + err.Error() + " (view refreshed)"
}
