package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algebra/internal/router"
	"github.com/abhisek/algebra/internal/screen"
	"github.com/abhisek/algebra/internal/screens/history"
	"github.com/abhisek/algebra/internal/screens/practice"
	"github.com/abhisek/algebra/internal/screens/summary"
	"github.com/abhisek/algebra/internal/session"
	"github.com/abhisek/algebra/internal/ui/components"
	"github.com/abhisek/algebra/internal/ui/layout"
)

// fullLayoutHeight is the content height needed for the block title and
// stats bar above the menu.
const fullLayoutHeight = 32

// HomeScreen lists the catalog topics and the session pages.
type HomeScreen struct {
	engine *session.Engine
	menu   components.Menu
	topics int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(engine *session.Engine) *HomeScreen {
	h := &HomeScreen{engine: engine}
	h.menu = components.NewMenu(h.items())
	return h
}

func (h *HomeScreen) items() []components.MenuItem {
	st := h.engine.State()
	topics := h.engine.ListTopics()
	h.topics = len(topics)

	items := make([]components.MenuItem, 0, len(topics)+3)
	for _, t := range topics {
		id := t.ID
		items = append(items, components.MenuItem{
			Label:  t.DisplayName,
			Detail: masteryDetail(st.Mastery[id]),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: practice.New(h.engine, id)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Summary", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: summary.New(h.engine.Summary(), h.engine.ListTopics())}
			}
		}},
		components.MenuItem{Label: "History", Disabled: len(st.History) == 0, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.engine.History())}
			}
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume rebuilds the menu so mastery details reflect the latest answers.
func (h *HomeScreen) Resume() tea.Cmd {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.items())
	if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < fullLayoutHeight

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderStatsBar(h.engine.State(), cw))
	}
	sections = append(sections, renderMenu(h.menu, cw))

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Topics"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
