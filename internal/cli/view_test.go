package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/logtrack/pkg/core/catalog"
)

func buildLoader(calls map[string]int) sceneLoader {
	return func(name string) (*catalog.Scene, error) {
		calls[name]++
		def, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		return def.Build()
	}
}

func sizedModel(t *testing.T, load sceneLoader) viewModel {
	t.Helper()
	m := newViewModel(catalog.All(), load, false)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(viewModel)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestViewModelToggles(t *testing.T) {
	m := sizedModel(t, buildLoader(map[string]int{}))

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		check func(viewModel) bool
	}{
		{"space stops rotation", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, func(m viewModel) bool { return !m.rotating }},
		{"l hides labels", runes("l"), func(m viewModel) bool { return !m.labels }},
		{"r resets angle", runes("r"), func(m viewModel) bool { return m.theta == 0 }},
	}

	m.theta = 1
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := m.Update(tt.msg)
			m = next.(viewModel)
			if !tt.check(m) {
				t.Errorf("state after %q not updated (status %q)", tt.msg.String(), m.status)
			}
		})
	}
}

func TestViewModelFrames(t *testing.T) {
	m := sizedModel(t, buildLoader(map[string]int{}))

	next, cmd := m.Update(frameMsg{})
	m = next.(viewModel)
	if m.theta <= 0 {
		t.Errorf("theta = %v after a frame, want > 0", m.theta)
	}
	if cmd == nil {
		t.Error("frame did not schedule the next one")
	}

	m.rotating = false
	before := m.theta
	next, _ = m.Update(frameMsg{})
	if got := next.(viewModel).theta; got != before {
		t.Errorf("paused theta moved from %v to %v", before, got)
	}
}

func TestViewModelQuit(t *testing.T) {
	m := sizedModel(t, buildLoader(map[string]int{}))
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestViewModelRendersSelection(t *testing.T) {
	calls := map[string]int{}
	m := sizedModel(t, buildLoader(calls))
	m.selectExample("three")

	out := m.View()
	if !strings.Contains(out, "logtrack") || !strings.Contains(out, "three") {
		t.Errorf("view missing header or list entry:\n%s", out)
	}
	if !strings.ContainsFunc(out, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("preview has no braille cells")
	}

	m.View()
	if calls["three"] != 1 {
		t.Errorf("scene generated %d times, want 1", calls["three"])
	}
}

func TestViewModelLoadError(t *testing.T) {
	m := sizedModel(t, func(string) (*catalog.Scene, error) { return nil, errors.New("boom") })
	if out := m.View(); !strings.Contains(out, "boom") {
		t.Errorf("error not shown:\n%s", out)
	}
}

func TestViewModelEmptyBeforeResize(t *testing.T) {
	m := newViewModel(catalog.All(), buildLoader(map[string]int{}), false)
	if got := m.View(); got != "" {
		t.Errorf("View before resize = %q, want empty", got)
	}
}
