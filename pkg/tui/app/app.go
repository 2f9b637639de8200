// Package app wires the calendar views, the event form, and the
// keyboard-driven reschedule flow into one Bubble Tea program.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	appsvc "almanac/pkg/app"
	"almanac/pkg/calendar"
	"almanac/pkg/store"
	"almanac/pkg/dates"
	"almanac/pkg/event"
	"almanac/pkg/tui/components/agenda"
	"almanac/pkg/tui/components/editor"
	"almanac/pkg/tui/components/monthgrid"
	"almanac/pkg/tui/components/weekgrid"
	"almanac/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeEdit
	modeMove
	modeHelp
)

const normalHelp = "←→↑↓ select · [/] month · t today · m/w/l views · a add · e edit · d delete · r move · tab next event · ? help · q quit"

// Model contains the UI state.
type Model struct {
	svc *appsvc.Service
	ctx context.Context

	cal  calendar.State
	mode mode

	week *weekgrid.Model
	list *agenda.Model
	form *editor.Model

	editingID string

	moveID   string
	moveDay  time.Time
	moveSlot int

	eventIdx int

	status string
	th     theme.Theme

	termWidth  int
	termHeight int

	now func() time.Time
}

// New creates the UI model backed by the service.
func New(svc *appsvc.Service, view calendar.View) Model {
	now := time.Now()
	m := Model{
		svc:    svc,
		ctx:    context.Background(),
		cal:    calendar.NewState(now).SetView(view).Select(dates.StartOfDay(now)),
		week:   weekgrid.New(),
		list:   agenda.New(),
		status: normalHelp,
		th:     theme.Default(),
		now:    time.Now,
	}
	m.refresh()
	return m
}

// Run launches the program.
func Run(svc *appsvc.Service, view calendar.View) error {
	p := tea.NewProgram(New(svc, view), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every interaction is one synchronous
// state transition followed by a redraw.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		m.refresh()
		return m, nil

	case tea.KeyPressMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeMove:
			return m.updateMove(msg)
		case modeHelp:
			m.mode = modeNormal
			m.status = normalHelp
			return m, nil
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.mode = modeHelp
		return m, nil

	case "m":
		m.cal = m.cal.SetView(calendar.ViewMonth)
	case "w":
		m.cal = m.cal.SetView(calendar.ViewWeek)
	case "l":
		m.cal = m.cal.SetView(calendar.ViewList)

	case "]":
		if m.cal.View == calendar.ViewWeek {
			m.cal = m.cal.NextWeek()
		} else {
			m.cal = m.cal.NextMonth()
		}
		m.eventIdx = 0
	case "[":
		if m.cal.View == calendar.ViewWeek {
			m.cal = m.cal.PreviousWeek()
		} else {
			m.cal = m.cal.PreviousMonth()
		}
		m.eventIdx = 0

	case "t":
		today := dates.StartOfDay(m.now())
		m.cal = m.cal.GoTo(m.now()).Select(today)
		m.eventIdx = 0

	case "left":
		m.moveSelection(-1)
	case "right":
		m.moveSelection(1)
	case "up":
		m.moveSelection(-7)
	case "down":
		m.moveSelection(7)

	case "tab":
		if n := len(m.dayEvents()); n > 0 {
			m.eventIdx = (m.eventIdx + 1) % n
		}

	case "j":
		m.scroll(1)
	case "k":
		m.scroll(-1)

	case "a":
		m.openAdd()
		return m, nil
	case "e":
		m.openEdit()
		return m, nil
	case "d":
		m.deleteCurrent()
	case "r":
		m.startMove()
		return m, nil

	case "esc":
		m.cal = m.cal.ClearSelection()
		m.eventIdx = 0
	}

	m.refresh()
	return m, nil
}

func (m Model) updateEdit(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeNormal
		m.form = nil
		m.editingID = ""
		m.status = normalHelp
		m.refresh()
		return m, nil

	case "enter":
		m.submitForm()
		m.refresh()
		return m, nil
	}

	cmd := m.form.Update(key)
	return m, cmd
}

func (m *Model) submitForm() {
	draft, parseErrs := m.form.Draft()
	if parseErrs != nil {
		m.form.SetErrors(parseErrs)
		return
	}

	var err error
	var e *event.Event
	if m.editingID == "" {
		e, err = m.svc.Add(m.ctx, draft)
	} else {
		e, err = m.svc.Update(m.ctx, m.editingID, patchFrom(draft))
	}

	if err != nil {
		var ve *event.ValidationError
		if errors.As(err, &ve) {
			m.form.SetErrors(ve.Fields())
			return
		}
		m.status = err.Error()
		return
	}

	m.mode = modeNormal
	m.form = nil
	m.editingID = ""
	m.cal = m.cal.GoTo(e.Start.Time).Select(dates.StartOfDay(e.Start.Time))
	m.status = fmt.Sprintf("saved %q", e.Title)

	if overlap, oerr := m.svc.Overlapping(m.ctx, e); oerr == nil && overlap {
		m.status = fmt.Sprintf("saved %q — overlaps another event that day", e.Title)
	}
}

func patchFrom(d event.Draft) store.Patch {
	return store.Patch{
		Title:       &d.Title,
		Description: &d.Description,
		Start:       &d.Start,
		End:         &d.End,
		Color:       &d.Color,
		Category:    &d.Category,
	}
}

func (m Model) updateMove(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeNormal
		m.moveID = ""
		m.status = normalHelp
		m.refresh()
		return m, nil

	case "left":
		m.moveDay = m.moveDay.AddDate(0, 0, -1)
	case "right":
		m.moveDay = m.moveDay.AddDate(0, 0, 1)
	case "up":
		if m.moveSlot > 0 {
			m.moveSlot--
		}
	case "down":
		if m.moveSlot < 47 {
			m.moveSlot++
		}

	case "enter":
		slot := dates.TimeSlots()[m.moveSlot]
		moved, err := m.svc.Reschedule(m.ctx, m.moveID, m.moveDay, slot)
		if err != nil {
			m.status = err.Error()
			m.refresh()
			return m, nil
		}
		m.mode = modeNormal
		m.moveID = ""
		m.cal = m.cal.GoTo(moved.Start.Time).Select(dates.StartOfDay(moved.Start.Time))
		m.status = fmt.Sprintf("moved %q to %s %s", moved.Title,
			dates.Format(moved.Start.Time, ""), dates.Format(moved.Start.Time, "HH:mm"))
		m.refresh()
		return m, nil
	}

	m.cal = m.cal.GoTo(m.moveDay).Select(dates.StartOfDay(m.moveDay))
	m.refresh()
	return m, nil
}

func (m *Model) moveSelection(deltaDays int) {
	day := m.selectedDay().AddDate(0, 0, deltaDays)
	m.cal = m.cal.Select(day)
	if day.Month() != m.cal.Current.Local().Month() || day.Year() != m.cal.Current.Local().Year() {
		m.cal = m.cal.GoTo(day)
	}
	m.eventIdx = 0
}

func (m *Model) scroll(delta int) {
	switch m.cal.View {
	case calendar.ViewWeek:
		m.week.ScrollBy(delta)
	case calendar.ViewList:
		m.list.ScrollBy(delta)
	}
}

func (m *Model) openAdd() {
	m.form = editor.New("New event")
	day := m.selectedDay()
	start := day.Add(9 * time.Hour)
	m.form.PrefillTimes(start, start.Add(time.Hour))
	m.mode = modeEdit
	m.editingID = ""
	m.status = "adding event"
}

func (m *Model) openEdit() {
	e := m.currentEvent()
	if e == nil {
		m.status = "no event selected"
		return
	}
	m.form = editor.New("Edit event")
	m.form.Prefill(e)
	m.mode = modeEdit
	m.editingID = e.ID
	m.status = fmt.Sprintf("editing %q", e.Title)
}

func (m *Model) deleteCurrent() {
	e := m.currentEvent()
	if e == nil {
		m.status = "no event selected"
		return
	}
	if err := m.svc.Delete(m.ctx, e.ID); err != nil {
		m.status = err.Error()
		return
	}
	m.eventIdx = 0
	m.status = fmt.Sprintf("deleted %q", e.Title)
}

func (m *Model) startMove() {
	e := m.currentEvent()
	if e == nil {
		m.status = "no event selected"
		return
	}
	m.mode = modeMove
	m.moveID = e.ID
	m.moveDay = dates.StartOfDay(e.Start.Time)
	m.moveSlot = dates.SlotIndex(e.Start.Time)
	m.cal = m.cal.SetView(calendar.ViewWeek)
	m.status = fmt.Sprintf("moving %q: arrows pick day and slot, enter drops, esc cancels", e.Title)
	m.refresh()
}

func (m *Model) selectedDay() time.Time {
	if m.cal.Selected != nil {
		return dates.StartOfDay(*m.cal.Selected)
	}
	return dates.StartOfDay(m.cal.Current)
}

func (m *Model) dayEvents() []*event.Event {
	events, err := m.svc.On(m.ctx, m.selectedDay())
	if err != nil {
		return nil
	}
	return events
}

func (m *Model) currentEvent() *event.Event {
	events := m.dayEvents()
	if len(events) == 0 {
		return nil
	}
	if m.eventIdx >= len(events) {
		m.eventIdx = len(events) - 1
	}
	return events[m.eventIdx]
}

func (m *Model) applySizes() {
	w := m.termWidth
	h := m.termHeight - 2 // status line + header
	if h < 4 {
		h = 4
	}
	m.week.SetSize(w, h)
	m.list.SetSize(w, h)
}

func (m *Model) refresh() {
	events, err := m.svc.Events(m.ctx)
	if err != nil {
		m.status = err.Error()
		return
	}

	cursorSlot := -1
	cursorDay := time.Time{}
	if m.mode == modeMove {
		cursorSlot = m.moveSlot
		cursorDay = m.moveDay
	}
	m.week.SetWeek(m.cal.Current, events, m.now(), cursorSlot, cursorDay)
	if m.mode == modeMove {
		m.week.ScrollTo(m.moveSlot)
	}

	grouped := event.GroupByDate(events)
	m.list.SetEvents(grouped, event.DayKeys(grouped))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.mode == modeHelp {
		return m.helpView()
	}

	var body string
	switch m.cal.View {
	case calendar.ViewWeek:
		body = m.week.View()
	case calendar.ViewList:
		body = m.list.View()
	default:
		body = m.monthView()
	}

	header := m.th.Header.Render(dates.Format(m.cal.Current, "MMMM yyyy"))
	screen := lipgloss.JoinVertical(lipgloss.Left, header, body, m.th.Status.Render(m.status))

	if m.mode == modeEdit && m.form != nil {
		overlay := m.form.View()
		if m.termWidth > 0 && m.termHeight > 0 {
			return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}
	return screen
}

func (m Model) monthView() string {
	grid := monthgrid.Render(monthgrid.BuildCells(m.cal, m.now(), m.mustEvents()), monthgrid.DefaultOptions())

	var detail []string
	day := m.selectedDay()
	detail = append(detail, "", m.th.GroupHeading.Render(dates.Format(day, "EEEE, MMMM d, yyyy")))

	events := m.dayEvents()
	if len(events) == 0 {
		detail = append(detail, m.th.Help.Render("  no events — a adds one"))
	}
	for i, e := range events {
		cursor := "  "
		if i == m.eventIdx {
			cursor = "▸ "
		}
		span := fmt.Sprintf("%s–%s",
			dates.Format(e.Start.Time, "HH:mm"),
			dates.Format(e.End.Time, "HH:mm"))
		line := cursor + m.th.Help.Render(span) + "  " + m.th.EventLine.Render(e.Title)
		if event.Overlaps(e, m.mustEvents()) {
			line += m.th.FieldError.Render(" ‼")
		}
		detail = append(detail, line)
	}

	return grid + strings.Join(detail, "\n")
}

func (m Model) mustEvents() []*event.Event {
	events, err := m.svc.Events(m.ctx)
	if err != nil {
		return nil
	}
	return events
}

func (m Model) helpView() string {
	rows := []string{
		m.th.Header.Render("almanac"),
		"",
		"←→↑↓    select day",
		"[ ]     previous / next month (week in week view)",
		"t       jump to today",
		"m w l   month, week, list views",
		"tab     cycle events on the selected day",
		"a e d   add, edit, delete",
		"r       move the selected event (arrows, then enter)",
		"j k     scroll week and list views",
		"q       quit",
		"",
		m.th.Help.Render("press any key to return"),
	}
	return strings.Join(rows, "\n")
}
