package tui

import (
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/repository"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	notes     []*model.Note
	tasks     []*model.Task
	reminders []*model.Reminder

	repo *repository.Repository

	// UI state
	width         int
	height        int
	err           error
	message       string
	messageExp    time.Time
	showDrawings  bool
	showCompleted bool

	// Configuration
	refreshInterval time.Duration
	maxPerSection   int
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Repo            *repository.Repository
	RefreshInterval time.Duration
	MaxPerSection   int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.MaxPerSection == 0 {
		config.MaxPerSection = 5
	}

	return &DashboardModel{
		repo:            config.Repo,
		refreshInterval: config.RefreshInterval,
		maxPerSection:   config.MaxPerSection,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.loadData()
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "n":
		m.showDrawings = !m.showDrawings
		m.loadData()
		if m.showDrawings {
			m.setMessage("Showing drawings", 2*time.Second)
		} else {
			m.setMessage("Hiding drawings", 2*time.Second)
		}
		return m, nil

	case "t":
		m.showCompleted = !m.showCompleted
		m.loadData()
		if m.showCompleted {
			m.setMessage("Showing completed tasks", 2*time.Second)
		} else {
			m.setMessage("Hiding completed tasks", 2*time.Second)
		}
		return m, nil

	case "r":
		// Refresh data
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	// Header
	header := m.renderHeader()
	sections = append(sections, header)

	// Error message
	if m.err != nil {
		errBox := StyleError.Render(fmt.Sprintf("Error: %v", m.err))
		sections = append(sections, errBox)
	}

	// Status message
	if m.message != "" {
		msgBox := StyleWarning.Render(m.message)
		sections = append(sections, msgBox)
	}

	// Notes, tasks, reminders
	sections = append(sections, NewNotesComponent(m.notes, m.width, m.maxPerSection).View())
	sections = append(sections, NewTasksComponent(m.tasks, m.width, m.maxPerSection).View())
	sections = append(sections, NewRemindersComponent(m.reminders, m.width, m.maxPerSection).View())

	// Help bar
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("NotePal Dashboard")
	now := time.Now().Format("Mon Jan 2, 15:04:05")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// loadData loads all data from the repository.
func (m *DashboardModel) loadData() {
	if err := m.repo.Reload(); err != nil {
		m.err = err
		return
	}

	// Notes, text-only unless drawings are toggled on
	m.notes = nil
	for _, n := range m.repo.SortedNotes() {
		if n.IsDrawing() && !m.showDrawings {
			continue
		}
		m.notes = append(m.notes, n)
	}

	// Tasks by due date, completed hidden by default
	m.tasks = nil
	for _, t := range m.repo.SortedTasks() {
		if t.Completed && !m.showCompleted {
			continue
		}
		m.tasks = append(m.tasks, t)
	}

	// Upcoming reminders, soonest first
	m.reminders = m.repo.PendingReminders()
	sort.SliceStable(m.reminders, func(i, j int) bool {
		return m.reminders[i].DateTime.Before(m.reminders[j].DateTime)
	})

	m.err = nil
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
