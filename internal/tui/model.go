// Package tui plays the results reveal in the terminal: a progress bar
// filling to the share of planning hours, then counters easing up to each
// figure.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/planning-trap/pkg/animate"
	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/format"
	"github.com/iwvelando/planning-trap/pkg/output"
)

const (
	maxBarWidth = 60
	shakeStep   = 50 * time.Millisecond
)

type frameMsg time.Time

// Model is the bubbletea model of the results reveal.
type Model struct {
	display  output.Display
	timeline animate.Timeline
	interval time.Duration
	bar      progress.Model
	styles   Styles

	start    time.Time
	elapsed  time.Duration
	finished bool
}

// New creates the reveal for d.
func New(d output.Display) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return Model{
		display:  d,
		timeline: animate.NewTimeline(d.Result.DirectCost, d.Result.OpportunityCost, d.Result.TotalDamage),
		interval: constants.DefaultAnimationInterval,
		bar:      bar,
		styles:   DefaultStyles(),
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update advances the clock. Any of q, esc or ctrl+c skips to the final
// figures.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		if m.start.IsZero() {
			m.start = now
		}
		m.elapsed = now.Sub(m.start)
		if m.elapsed >= m.timeline.End() {
			return m.finish()
		}
		return m, tick(m.interval)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m.finish()
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > maxBarWidth {
			width = maxBarWidth
		}
		if width > 0 {
			m.bar.Width = width
		}
	}
	return m, nil
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	m.elapsed = m.timeline.End()
	m.finished = true
	return m, tea.Quit
}

// Finished reports whether the reveal has completed.
func (m Model) Finished() bool {
	return m.finished
}

// View renders the reveal at the current elapsed time.
func (m Model) View() string {
	var sb strings.Builder
	d := m.display

	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Planning trap: %d weeks, %s hours", d.Weeks, d.TotalHours)))
	sb.WriteString("\n\n")

	if m.elapsed < m.timeline.ProgressAt {
		return sb.String()
	}
	sb.WriteString(m.bar.ViewAs(float64(d.ProgressPercent) / 100))
	sb.WriteString(fmt.Sprintf(" %d%%\n\n", d.ProgressPercent))

	if m.elapsed < m.timeline.ResultsAt {
		return sb.String()
	}

	m.row(&sb, "Direct cost", m.styles.Value.Render(format.WholeDollars(m.timeline.DirectCost.At(m.elapsed))))
	m.row(&sb, "Opportunity cost", m.styles.Value.Render(format.WholeDollars(m.timeline.OpportunityCost.At(m.elapsed))))

	damageStyle := m.styles.Damage
	if d.HighDamage {
		damageStyle = m.styles.HighDamage
	}
	if m.timeline.Shaking(m.elapsed) && (m.elapsed/shakeStep)%2 == 0 {
		damageStyle = damageStyle.PaddingLeft(1)
	}
	m.row(&sb, "Total damage", damageStyle.Render(format.WholeDollars(m.timeline.TotalDamage.At(m.elapsed))))
	m.row(&sb, "Products lost", m.styles.Value.Render(format.Number(int64(d.ProductsLost))))

	sb.WriteString(m.styles.Insight.Render(d.Insight))
	sb.WriteString("\n")
	if !m.finished {
		sb.WriteString(m.styles.Hint.Render("press q to skip"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) row(sb *strings.Builder, label, value string) {
	sb.WriteString(m.styles.Label.Render(label))
	sb.WriteString(value)
	sb.WriteString("\n")
}

// Run plays the reveal until it completes, the user skips it or ctx ends.
func Run(ctx context.Context, d output.Display, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(New(d), opts...).Run(); err != nil {
		return fmt.Errorf("failed to run results animation: %w", err)
	}
	return nil
}
