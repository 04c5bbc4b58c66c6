// Package tui provides a Bubble Tea terminal user interface for tagrename.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/tagrename/internal/config"
	"github.com/handiism/tagrename/internal/format"
	"github.com/handiism/tagrename/internal/metadata"
	"github.com/handiism/tagrename/internal/rename"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// sampleRecord feeds the live template preview on the input screen.
var sampleRecord = metadata.StaticRecord{
	AlbumValue:  "Music Has the Right to Children",
	ArtistValue: "Boards of Canada",
	TitleValue:  "Roygbiv",
	TrackValue:  7,
	YearValue:   1998,
}

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateReview
	StateApplying
	StateComplete
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	paths     []string
	plans     []rename.Plan
	err       error

	// Apply context
	ctx    context.Context
	cancel context.CancelFunc

	planner *rename.Planner

	applied int32
	total   int32

	width  int
	height int
}

// NewModel creates a new TUI model for the given input paths.
func NewModel(settings *config.Settings, paths []string) Model {
	ti := textinput.New()
	ti.Placeholder = "%track %artist - %title"
	ti.SetValue(settings.Template)
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		paths:     paths,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ScanDoneMsg is sent when planning completes.
	ScanDoneMsg struct {
		Plans   []rename.Plan
		Planner *rename.Planner
		Err     error
	}

	// ApplyDoneMsg is sent when all renames are applied.
	ApplyDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput || m.state == StateReview {
				return m, tea.Quit
			}
			if m.state == StateScanning || m.state == StateApplying {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateScanning
				return m, tea.Batch(m.scanFiles(), m.spinner.Tick)
			}
			if m.state == StateReview {
				m.state = StateApplying
				return m, tea.Batch(m.applyPlans(), m.tickProgress())
			}

		case "s":
			if m.state == StateInput {
				m.settings.SanitizeFileNames = !m.settings.SanitizeFileNames
			}

		case "b":
			if m.state == StateReview {
				m.state = StateInput
				m.plans = nil
				m.textInput.Focus()
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another pass over the same paths
				m.state = StateInput
				m.plans = nil
				m.planner = nil
				m.err = nil
				m.applied = 0
				m.total = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ScanDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.plans = msg.Plans
			m.planner = msg.Planner
			m.state = StateReview
		}

	case ApplyDoneMsg:
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.planner != nil && m.state == StateApplying {
			_, applied, total := m.planner.GetProgress()
			m.applied = applied
			m.total = total

			var percent float64
			if total > 0 {
				percent = float64(applied) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🏷  tagrename"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Rename audio files from their tags"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateReview:
		b.WriteString(m.viewReview())
	case StateApplying:
		b.WriteString(m.viewApplying())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Filename template:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Live preview against a sample record
	if template := m.textInput.Value(); template != "" {
		f, err := format.Compile(template)
		if err == nil {
			var name string
			name, err = f.Render(sampleRecord)
			if err == nil {
				b.WriteString(dimStyle.Render("Preview: "))
				b.WriteString(pathStyle.Render(name + ".mp3"))
			}
		}
		if err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Invalid template: %v", err)))
		}
		b.WriteString("\n\n")
	}

	sanitizeCheck := "[ ]"
	if m.settings.SanitizeFileNames {
		sanitizeCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Sanitize file names (s)\n", sanitizeCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Files: %d", len(m.paths))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Reading tags from %d file(s)...", len(m.paths))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf("Planned %d rename(s):", len(m.plans))))
	b.WriteString("\n\n")

	// Keep the list within the window
	maxRows := len(m.plans)
	if m.height > 10 && maxRows > m.height-10 {
		maxRows = m.height - 10
	}
	for _, plan := range m.plans[:maxRows] {
		if plan.NewPath == plan.Path {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  = %s", plan.Path)))
		} else {
			b.WriteString(fmt.Sprintf("  %s\n", dimStyle.Render(plan.Path)))
			b.WriteString(pathStyle.Render(fmt.Sprintf("  → %s", plan.NewPath)))
		}
		b.WriteString("\n")
	}
	if maxRows < len(m.plans) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … and %d more", len(m.plans)-maxRows)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewApplying() string {
	var b strings.Builder

	var percent float64
	if m.total > 0 {
		percent = float64(m.applied) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Renamed: %d/%d", m.applied, m.total)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewComplete() string {
	box := boxStyle.Render(fmt.Sprintf(
		"✨ Done!\n\n"+
			"Files renamed: %d/%d",
		m.applied,
		m.total,
	))
	return box
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: scan • s: sanitize • esc: quit"
	case StateScanning:
		return "esc: cancel"
	case StateReview:
		return "enter: apply renames • b: back • esc: quit"
	case StateApplying:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: start over • q: quit"
	}
	return ""
}

// scanFiles plans the renames in the background.
func (m *Model) scanFiles() tea.Cmd {
	template := m.textInput.Value()
	ctx := m.ctx

	return func() tea.Msg {
		planner := rename.NewPlanner(m.settings, metadata.NewID3Source(), nil)
		plans, err := planner.PlanAll(ctx, template, m.paths)
		return ScanDoneMsg{
			Plans:   plans,
			Planner: planner,
			Err:     err,
		}
	}
}

// applyPlans performs the renames in the background.
func (m *Model) applyPlans() tea.Cmd {
	planner := m.planner
	plans := m.plans
	ctx := m.ctx

	return func() tea.Msg {
		if planner == nil {
			return ApplyDoneMsg{Err: fmt.Errorf("no plans")}
		}
		return ApplyDoneMsg{Err: planner.Apply(ctx, plans)}
	}
}

// Run starts the TUI application over the given input paths.
func Run(settings *config.Settings, paths []string) error {
	p := tea.NewProgram(NewModel(settings, paths), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
