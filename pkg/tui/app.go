// Package tui renders the planner dashboard as an interactive terminal app.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/studyplan/pkg/auth"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/quote"
	"tableflip.dev/studyplan/pkg/schedule"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/view"
)

// Tab identifies the visible pane.
type Tab int

const (
	TabDashboard Tab = iota
	TabTasks
	TabGoals
	TabTimeline
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabTasks:
		return "Tasks"
	case TabGoals:
		return "Goals"
	case TabTimeline:
		return "Timeline"
	}
	return "?"
}

// tickMsg drives the periodic reminder sweep.
type tickMsg time.Time

// changeMsg reports that another process wrote to the planner files.
type changeMsg store.Event

// Model is the bubbletea model for the planner dashboard.
type Model struct {
	store    *planner.Store
	identity *auth.Identity
	interval time.Duration
	changes  <-chan store.Event

	tab      Tab
	selected int
	width    int

	bar     progress.Model
	banners []schedule.Notification
	status  string

	now func() time.Time
}

// New builds the dashboard model. A non-positive interval falls back to the
// scheduler default. changes may be nil when no file watcher is available;
// the dashboard then only sees its own writes.
func New(store *planner.Store, identity *auth.Identity, interval time.Duration, changes <-chan store.Event) *Model {
	if interval <= 0 {
		interval = schedule.DefaultInterval
	}
	return &Model{
		store:    store,
		identity: identity,
		interval: interval,
		changes:  changes,
		bar:      progress.New(progress.WithDefaultGradient()),
		now:      time.Now,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitForChange())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.changes
		if !ok {
			return nil
		}
		return changeMsg(ev)
	}
}

// mine reports whether a change event touches the logged-in user's records.
// Invalidations cannot be attributed to a record, so they always count.
func (m *Model) mine(ev store.Event) bool {
	if ev.Type == store.EventStoreInvalidated {
		return true
	}
	if m.identity == nil {
		return true
	}
	return strings.HasPrefix(ev.Key, m.identity.ID+"/")
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 12
		if m.bar.Width > 40 {
			m.bar.Width = 40
		}

	case tickMsg:
		fired, err := schedule.New(m.store, m.interval).CheckNow(time.Time(msg))
		if err != nil {
			m.status = err.Error()
		}
		m.banners = append(m.banners, fired...)
		return m, m.tick()

	case changeMsg:
		if m.mine(store.Event(msg)) {
			if err := m.store.Reload(); err != nil {
				m.status = err.Error()
			}
			if m.selected >= m.selectableCount() {
				m.selected = 0
			}
		}
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			m.selected = 0
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.selected = 0
		case "down", "j":
			if m.selected < m.selectableCount()-1 {
				m.selected++
			}
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case " ", "enter":
			if m.tab == TabTasks {
				tasks := m.store.Tasks()
				if m.selected < len(tasks) {
					if _, err := m.store.ToggleTask(tasks[m.selected].ID); err != nil {
						m.status = err.Error()
					} else {
						m.status = ""
					}
				}
			}
		case "x":
			m.banners = nil
		}
	}

	return m, nil
}

func (m *Model) selectableCount() int {
	if m.tab == TabTasks {
		return len(m.store.Tasks())
	}
	return 0
}

func (m *Model) View() string {
	var b strings.Builder

	for _, n := range m.banners {
		b.WriteString(bannerStyle.Render(fmt.Sprintf("⏰ %s", n.Title)))
		if n.Message != "" {
			b.WriteString(faintStyle.Render("  " + n.Message))
		}
		b.WriteString("\n")
	}
	if len(m.banners) > 0 {
		b.WriteString(faintStyle.Render("press x to dismiss"))
		b.WriteString("\n\n")
	}

	var tabs []string
	for t := TabDashboard; t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	b.WriteString(strings.Join(tabs, "|"))
	b.WriteString("\n\n")

	switch m.tab {
	case TabDashboard:
		b.WriteString(m.viewDashboard())
	case TabTasks:
		b.WriteString(m.viewTasks())
	case TabGoals:
		b.WriteString(m.viewGoals())
	case TabTimeline:
		b.WriteString(m.viewTimeline())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(overdueStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: switch  j/k: move  space: toggle  q: quit"))
	return b.String()
}

func (m *Model) viewDashboard() string {
	now := m.now()
	tasks := m.store.Tasks()
	goals := m.store.Goals()
	stats := view.Statistics(tasks, goals)

	var b strings.Builder
	if m.identity != nil {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s Welcome back, %s!", quote.Greeting(now), m.identity.FirstName)))
	} else {
		b.WriteString(titleStyle.Render(quote.Greeting(now)))
	}
	b.WriteString("\n")
	q := quote.Daily(now)
	b.WriteString(faintStyle.Render(fmt.Sprintf("%q - %s", q.Text, q.Author)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("tasks %d  completed %d  pending %d  goals %d\n\n",
		stats.TotalTasks, stats.CompletedTasks, stats.PendingTasks, stats.TotalGoals))

	ratio := view.ProgressRatio(tasks)
	b.WriteString(m.bar.ViewAs(float64(ratio) / 100))
	b.WriteString(fmt.Sprintf(" %d%%\n\n", ratio))

	b.WriteString(titleStyle.Render("Today"))
	b.WriteString("\n")
	today := view.TodayTasks(tasks, now)
	if len(today) == 0 {
		b.WriteString(faintStyle.Render("no tasks for today"))
		b.WriteString("\n")
	}
	for _, t := range today {
		b.WriteString(m.taskLine(t, now, false))
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Upcoming deadlines"))
	b.WriteString("\n")
	upcoming := view.UpcomingDeadlines(tasks, now, 0)
	if len(upcoming) == 0 {
		b.WriteString(faintStyle.Render("no upcoming deadlines"))
		b.WriteString("\n")
	}
	for _, t := range upcoming {
		b.WriteString(m.taskLine(t, now, false))
	}

	return b.String()
}

func (m *Model) viewTasks() string {
	now := m.now()
	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		return faintStyle.Render("no tasks found") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		b.WriteString(m.taskLine(t, now, i == m.selected))
	}
	return b.String()
}

func (m *Model) taskLine(t *planner.Task, now time.Time, selected bool) string {
	mark := "●"
	if t.Completed {
		mark = "✘"
	}
	pstyle := priorityStyle(string(view.PriorityColor(t.Priority)))
	line := fmt.Sprintf("%s %s %s %s", mark, t.Title,
		pstyle.Render(strings.ToUpper(string(t.Priority))),
		faintStyle.Render(view.TimeUntil(t.DueDate.Time, now)))

	switch {
	case selected:
		line = selectedStyle.Render("> ") + line
	default:
		line = "  " + line
	}
	if t.Completed {
		line = completedStyle.Render(line)
	}
	return line + "\n"
}

func (m *Model) viewGoals() string {
	goals := m.store.Goals()
	if len(goals) == 0 {
		return faintStyle.Render("no goals set") + "\n"
	}

	var b strings.Builder
	for _, g := range goals {
		b.WriteString(fmt.Sprintf("%s %d%%\n", g.Title, g.Progress))
		b.WriteString(m.bar.ViewAs(float64(g.Progress) / 100))
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("target " + g.TargetDate.Local().Format("Jan 2, 2006")))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m *Model) viewTimeline() string {
	now := m.now()
	items := view.Timeline(m.store.Tasks(), m.store.Goals(), now)
	if len(items) == 0 {
		return faintStyle.Render("no timeline data available") + "\n"
	}

	var b strings.Builder
	for _, item := range items {
		line := fmt.Sprintf("%-4s %s  %s", item.Kind, item.Title,
			faintStyle.Render(item.Date.Local().Format("Jan 2, 2006 3:04 PM")))
		switch {
		case item.Completed:
			line = completedStyle.Render(line)
		case item.Overdue:
			line = overdueStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
