// Package tui is the interactive stopwatch screen. It drives the timer state
// machine from the event loop and hands finished sessions to the entry
// service for billing.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"control-horas/internal/config"
	"control-horas/internal/domain"
	"control-horas/internal/errors"
	"control-horas/internal/format"
	"control-horas/internal/services"
	"control-horas/internal/timer"
	"control-horas/internal/validation"
)

type tickMsg time.Time

type dateTickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func dateTickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return dateTickMsg(t)
	})
}

// Model is the Bubble Tea model for the stopwatch screen.
type Model struct {
	session   services.SessionService
	clock     services.Clock
	stopwatch *timer.Stopwatch

	tripTypes  []string
	tripIndex  int
	customTrip string
	editing    bool

	date        string
	dateInput   string
	editingDate bool
	dateCustom  bool
	dates       *validation.Validator

	dark  bool
	theme Theme

	status   string
	failed   bool
	width    int
	height   int
	quitting bool
}

// NewModel builds the screen from the wired services. The theme preference
// is read once at startup; toggles are persisted best-effort.
func NewModel(ctx context.Context, session services.SessionService, cfg *config.Config, clock services.Clock) Model {
	dark := session.Theme(ctx)
	tripTypes := append([]string{}, cfg.Form.TripTypes...)
	tripTypes = append(tripTypes, domain.TripCustom)

	return Model{
		session:   session,
		clock:     clock,
		stopwatch: timer.NewStopwatch(stopwatchClock{clock}),
		tripTypes: tripTypes,
		date:      clock.Now().Format("2006-01-02"),
		dates:     validation.NewValidator(),
		dark:      dark,
		theme:     ThemeFor(dark),
	}
}

// stopwatchClock adapts the service clock to the timer package.
type stopwatchClock struct {
	clock services.Clock
}

func (c stopwatchClock) Now() time.Time {
	return c.clock.Now()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), dateTickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickCmd()

	case dateTickMsg:
		if m.quitting {
			return m, nil
		}
		// The default date tracks the clock until the user pins one.
		if !m.dateCustom {
			m.date = m.clock.Now().Format("2006-01-02")
		}
		return m, dateTickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}
	if m.editingDate {
		return m.handleDateKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case " ":
		if m.stopwatch.Running() {
			m.stopwatch.Stop()
		} else {
			m.stopwatch.Start()
		}
		m.status = ""
		return m, nil

	case "r":
		m.stopwatch.Reset()
		m.status = ""
		return m, nil

	case "t":
		m.tripIndex = (m.tripIndex + 1) % len(m.tripTypes)
		if m.tripTypes[m.tripIndex] == domain.TripCustom {
			m.editing = true
		}
		return m, nil

	case "f":
		m.editingDate = true
		m.dateInput = m.date
		m.status = ""
		return m, nil

	case "d":
		m.dark = !m.dark
		m.theme = ThemeFor(m.dark)
		m.session.SetTheme(context.Background(), m.dark)
		return m, nil

	case "s", "enter":
		return m.save()
	}

	return m, nil
}

// handleEditKey collects the custom trip label one rune at a time.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		return m, nil
	case tea.KeyEscape:
		m.editing = false
		m.customTrip = ""
		m.tripIndex = 0
		return m, nil
	case tea.KeyBackspace:
		if len(m.customTrip) > 0 {
			runes := []rune(m.customTrip)
			m.customTrip = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.customTrip += " "
		return m, nil
	case tea.KeyRunes:
		m.customTrip += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// handleDateKey collects the entry date. Confirming a valid date pins it so
// the minute tick stops tracking the clock; confirming an empty field goes
// back to following today.
func (m Model) handleDateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.dateInput == "" {
			m.editingDate = false
			m.dateCustom = false
			m.date = m.clock.Now().Format("2006-01-02")
			return m, nil
		}
		if !m.dates.IsValidISODate(m.dateInput) {
			m.status = "Fecha inválida, use AAAA-MM-DD"
			m.failed = true
			return m, nil
		}
		m.date = m.dateInput
		m.dateCustom = true
		m.editingDate = false
		m.status = ""
		m.failed = false
		return m, nil
	case tea.KeyEscape:
		m.editingDate = false
		m.dateInput = ""
		return m, nil
	case tea.KeyBackspace:
		if len(m.dateInput) > 0 {
			m.dateInput = m.dateInput[:len(m.dateInput)-1]
		}
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || r == '-' {
				m.dateInput += string(r)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) save() (tea.Model, tea.Cmd) {
	m.stopwatch.Stop()

	input := domain.EntryInput{
		Mode:         domain.ModeTimer,
		TripType:     m.tripTypes[m.tripIndex],
		CustomTrip:   m.customTrip,
		Date:         m.date,
		TimerSeconds: m.stopwatch.ElapsedSeconds(),
	}

	entry, err := m.session.Add(context.Background(), input)
	if err != nil {
		m.status = errors.GetUserMessage(err)
		m.failed = true
		return m, nil
	}

	m.stopwatch.Reset()
	m.customTrip = ""
	m.tripIndex = 0
	m.status = fmt.Sprintf("Guardado: %s por %s", entry.TripType, format.Currency("$", entry.Cost))
	m.failed = false
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	t := m.theme

	state := t.Stopped.Render("detenido")
	if m.stopwatch.Running() {
		state = t.Running.Render("corriendo")
	}

	trip := m.tripTypes[m.tripIndex]
	if trip == domain.TripCustom {
		label := m.customTrip
		if m.editing {
			label += "_"
		}
		trip = fmt.Sprintf("otro: %s", label)
	}

	displayDate := m.date
	if d, err := format.DateForDisplay(m.date); err == nil {
		displayDate = d
	}
	if m.editingDate {
		displayDate = m.dateInput + "_"
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Control de Horas"))
	b.WriteString("\n\n")
	b.WriteString(t.Clock.Render(format.Duration(m.stopwatch.ElapsedSeconds())))
	b.WriteString("  ")
	b.WriteString(state)
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render("Tipo de viaje: "))
	b.WriteString(t.Value.Render(trip))
	b.WriteString("\n")
	b.WriteString(t.Label.Render("Fecha:         "))
	b.WriteString(t.Value.Render(displayDate))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(t.ErrorMsg.Render(m.status))
		} else {
			b.WriteString(t.Status.Render(m.status))
		}
		b.WriteString("\n")
	}

	help := "espacio iniciar/parar · s guardar · r reiniciar · t tipo · f fecha · d tema · q salir"
	switch {
	case m.editing:
		help = "escriba el tipo · enter confirmar · esc cancelar"
	case m.editingDate:
		help = "escriba la fecha AAAA-MM-DD · enter confirmar · esc cancelar"
	}
	b.WriteString("\n")
	b.WriteString(t.Help.Render(help))

	frame := t.Frame.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
	}
	return frame
}

// Launch runs the stopwatch screen until the user quits.
func Launch(ctx context.Context, session services.SessionService, cfg *config.Config, clock services.Clock) error {
	m := NewModel(ctx, session, cfg, clock)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapError(err, errors.ErrorTypeInvalidInput, "interactive screen failed")
	}
	return nil
}
