package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algebra/internal/router"
	"github.com/abhisek/algebra/internal/screen"
	"github.com/abhisek/algebra/internal/screens/home"
	"github.com/abhisek/algebra/internal/screens/practice"
	"github.com/abhisek/algebra/internal/session"
	"github.com/abhisek/algebra/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// StartTopic opens a practice screen for this topic on launch.
	// Empty starts at the topic list.
	StartTopic string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	engine *session.Engine
	router *router.Router
	start  screen.Screen
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(engine *session.Engine, opts Options) AppModel {
	m := AppModel{
		engine: engine,
		router: router.New(home.New(engine)),
	}
	if opts.StartTopic != "" {
		m.start = practice.New(engine, opts.StartTopic)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.start != nil {
		return m.router.Push(m.start)
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.engine.State()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Level:  st.UserLevel,
		Score:  st.Score,
		Streak: st.Streak,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(engine *session.Engine, opts Options) error {
	p := tea.NewProgram(newAppModel(engine, opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
