package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/logtrack/pkg/core/catalog"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	"github.com/matzehuels/logtrack/pkg/pipeline"
	"github.com/matzehuels/logtrack/pkg/render/terminal"
)

// viewCommand opens the interactive terminal preview.
func (c *CLI) viewCommand() *cobra.Command {
	var noCache, plain bool

	cmd := &cobra.Command{
		Use:   "view [example]",
		Short: "Preview the scenes as animated braille in the terminal",
		Long: `Opens a two-pane viewer: the built-in scenes on the left and a braille
rendering of the selected scene on the right, rotating about the vertical axis.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, noCache, nil)
			if err != nil {
				return err
			}
			defer runner.Close()

			m := newViewModel(catalog.All(), runnerLoader(ctx, runner), !plain)
			if len(args) == 1 {
				e, err := catalog.ParseExample(args[0])
				if err != nil {
					return err
				}
				m.selectExample(string(e))
			}

			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the cache entirely")
	cmd.Flags().BoolVar(&plain, "plain", false, "draw without ANSI colours")
	return cmd
}

// sceneLoader produces the scene for a built-in example name.
type sceneLoader func(name string) (*catalog.Scene, error)

func runnerLoader(ctx context.Context, r *pipeline.Runner) sceneLoader {
	return func(name string) (*catalog.Scene, error) {
		return r.Generate(ctx, pipeline.Options{Example: name})
	}
}

// =============================================================================
// Model
// =============================================================================

const (
	viewFPS        = 30
	viewRevolution = 8 * time.Second
	sidebarWidth   = 30
)

// frameMsg advances the animation by one frame.
type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(time.Second/viewFPS, func(t time.Time) tea.Msg { return frameMsg(t) })
}

type viewKeys struct {
	Rotate key.Binding
	Labels key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func (k viewKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Labels, k.Reset, k.Quit}
}

func (k viewKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var defaultViewKeys = viewKeys{
	Rotate: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "rotate")),
	Labels: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "labels")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type exampleItem struct{ def catalog.Definition }

func (i exampleItem) Title() string       { return string(i.def.Name) }
func (i exampleItem) Description() string { return i.def.Title }
func (i exampleItem) FilterValue() string { return string(i.def.Name) + " " + i.def.Title }

// viewModel is the bubbletea model behind `logtrack view`.
type viewModel struct {
	width, height int

	list list.Model
	keys viewKeys
	help help.Model

	load   sceneLoader
	scenes map[string]*catalog.Scene
	errs   map[string]error

	rotating bool
	theta    float64
	labels   bool
	color    bool
	status   string
}

func newViewModel(defs []catalog.Definition, load sceneLoader, colored bool) viewModel {
	items := make([]list.Item, len(defs))
	for i, d := range defs {
		items[i] = exampleItem{def: d}
	}
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(colorGreen).BorderLeftForeground(colorGreen)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.Foreground(colorGray).BorderLeftForeground(colorGreen)

	l := list.New(items, d, 0, 0)
	l.Title = "Scenes"
	l.Styles.Title = l.Styles.Title.Background(colorGreen)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return viewModel{
		list:     l,
		keys:     defaultViewKeys,
		help:     help.New(),
		load:     load,
		scenes:   make(map[string]*catalog.Scene),
		errs:     make(map[string]error),
		rotating: true,
		labels:   true,
		color:    colored,
		status:   "ready",
	}
}

func (m *viewModel) selectExample(name string) {
	for i, it := range m.list.Items() {
		if it.(exampleItem).Title() == name {
			m.list.Select(i)
			return
		}
	}
}

// selected returns the primitives of the highlighted scene, generating
// them on first use.
func (m viewModel) selected() (string, []primitive.Primitive, error) {
	it, ok := m.list.SelectedItem().(exampleItem)
	if !ok {
		return "", nil, nil
	}
	name := string(it.def.Name)
	if s, ok := m.scenes[name]; ok {
		return name, s.Primitives, nil
	}
	if err, ok := m.errs[name]; ok {
		return name, nil, err
	}
	s, err := m.load(name)
	if err != nil {
		m.errs[name] = err
		return name, nil, err
	}
	m.scenes[name] = s
	return name, s.Primitives, nil
}

func (m viewModel) Init() tea.Cmd { return nextFrame() }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(sidebarWidth-2, max(m.height-3, 4))
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		if m.rotating {
			step := 2 * math.Pi / (viewRevolution.Seconds() * viewFPS)
			m.theta = math.Mod(m.theta+step, 2*math.Pi)
		}
		return m, nextFrame()

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Rotate):
			m.rotating = !m.rotating
			m.status = fmt.Sprintf("rotation: %v", onOff(m.rotating))
			return m, nil
		case key.Matches(msg, m.keys.Labels):
			m.labels = !m.labels
			m.status = fmt.Sprintf("labels: %v", onOff(m.labels))
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.theta = 0
			m.status = "view reset"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := StyleTitle.Render(" logtrack ") + StyleDim.Render("─ well-log preview")
	bodyHeight := max(m.height-3, 4)
	previewWidth := max(m.width-sidebarWidth-1, 10)

	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(bodyHeight).Render(m.list.View())
	preview := lipgloss.NewStyle().Width(previewWidth).Height(bodyHeight).
		Render(m.renderPreview(previewWidth, bodyHeight))
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", preview)

	status := StyleDim.Render(fmt.Sprintf(" %s · θ %3.0f° ", m.status, m.theta*180/math.Pi))
	footer := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m viewModel) renderPreview(w, h int) string {
	name, prims, err := m.selected()
	switch {
	case err != nil:
		return StyleWarning.Render(fmt.Sprintf("%s: %v", name, err))
	case len(prims) == 0:
		return StyleDim.Render("nothing to draw")
	}
	opts := []terminal.Option{terminal.WithRotation(m.theta)}
	if m.color {
		opts = append(opts, terminal.WithColor())
	}
	if m.labels {
		opts = append(opts, terminal.WithLabels())
	}
	return strings.Join(terminal.Render(prims, w, h, opts...), "\n")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
