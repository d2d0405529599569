package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/planning-trap/internal/engine"
	"github.com/iwvelando/planning-trap/pkg/output"
	"github.com/iwvelando/planning-trap/pkg/testutil"
)

func defaultDisplay() output.Display {
	r := testutil.DefaultResult()
	return output.NewDisplay(r, engine.SelectInsight(r.TotalDamage))
}

func step(t *testing.T, m tea.Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestRevealTimeline(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := New(defaultDisplay())

	m, cmd := step(t, m, frameMsg(start))
	if cmd == nil {
		t.Fatal("expected another frame to be scheduled")
	}
	view := m.View()
	if strings.Contains(view, "%") {
		t.Errorf("progress bar shown before its delay:\n%s", view)
	}

	m, _ = step(t, m, frameMsg(start.Add(200*time.Millisecond)))
	view = m.View()
	if !strings.Contains(view, "16%") {
		t.Errorf("expected progress percentage after 200ms:\n%s", view)
	}
	if strings.Contains(view, "Direct cost") {
		t.Errorf("results shown before their delay:\n%s", view)
	}

	m, _ = step(t, m, frameMsg(start.Add(time.Second)))
	view = m.View()
	if !strings.Contains(view, "Direct cost") || !strings.Contains(view, "Products lost") {
		t.Errorf("expected results after 1s:\n%s", view)
	}
	if strings.Contains(view, "$15,000") {
		t.Errorf("total damage should still be counting at 1s:\n%s", view)
	}
	if m.Finished() {
		t.Fatal("reveal finished early")
	}

	m, cmd = step(t, m, frameMsg(start.Add(3*time.Second)))
	if !m.Finished() {
		t.Fatal("expected reveal to finish after the timeline ends")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}

	view = m.View()
	for _, want := range []string{"$6,000", "$9,000", "$15,000", "10", "That's a used car worth of overthinking."} {
		if !strings.Contains(view, want) {
			t.Errorf("final view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "press q") {
		t.Errorf("skip hint shown after finishing")
	}
}

func TestSkipShowsFinalFigures(t *testing.T) {
	m := New(defaultDisplay())
	m, _ = step(t, m, frameMsg(time.Now()))

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.Finished() || cmd == nil {
		t.Fatal("expected q to finish the reveal")
	}
	if !strings.Contains(m.View(), "$15,000") {
		t.Errorf("expected final total after skip:\n%s", m.View())
	}
}

func TestWindowResizeCapsBar(t *testing.T) {
	m := New(defaultDisplay())
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	if m.bar.Width != maxBarWidth {
		t.Errorf("bar width = %d, expected %d", m.bar.Width, maxBarWidth)
	}
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 30, Height: 40})
	if m.bar.Width != 26 {
		t.Errorf("bar width = %d, expected 26", m.bar.Width)
	}
}

func TestRunCompletes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := Run(ctx, defaultDisplay(),
		tea.WithInput(bytes.NewReader(nil)),
		tea.WithOutput(io.Writer(&out)),
		tea.WithoutSignals(),
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
