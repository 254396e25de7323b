package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algebra/internal/catalog"
	"github.com/abhisek/algebra/internal/router"
	"github.com/abhisek/algebra/internal/screens/practice"
	"github.com/abhisek/algebra/internal/screens/summary"
	"github.com/abhisek/algebra/internal/session"
)

func newEngine(t *testing.T) *session.Engine {
	t.Helper()
	return session.New(catalog.Default(), session.WithSessionID("home-test"))
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestHomeScreen_ListsTopicsAndPages(t *testing.T) {
	e := newEngine(t)
	h := New(e)

	topics := e.ListTopics()
	if got, want := len(h.menu.Items), len(topics)+3; got != want {
		t.Fatalf("menu items = %d, want %d", got, want)
	}
	if h.menu.Items[0].Label != topics[0].DisplayName {
		t.Errorf("first item = %q, want %q", h.menu.Items[0].Label, topics[0].DisplayName)
	}
	last := h.menu.Items[len(h.menu.Items)-3:]
	for i, want := range []string{"Summary", "History", "Quit"} {
		if last[i].Label != want {
			t.Errorf("item %d = %q, want %q", i, last[i].Label, want)
		}
	}
	if !last[1].Disabled {
		t.Error("History should be disabled before any answer")
	}
}

func TestHomeScreen_EnterOpensPractice(t *testing.T) {
	h := New(newEngine(t))
	_, cmd := h.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("enter on a topic should push a screen")
	}
	if _, ok := push.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("pushed %T, want *practice.PracticeScreen", push.Screen)
	}
}

func TestHomeScreen_SummaryItem(t *testing.T) {
	h := New(newEngine(t))
	h.menu.Selected = h.topics

	_, cmd := h.Update(enter())
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("enter on Summary should push a screen")
	}
	if _, ok := push.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("pushed %T, want *summary.SummaryScreen", push.Screen)
	}
}

func TestHomeScreen_ResumeRefreshesMastery(t *testing.T) {
	e := newEngine(t)
	h := New(e)
	h.menu.Selected = 1

	if err := e.SelectOption("(1, 1)"); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if _, err := e.SubmitAnswer(""); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	h.Resume()

	if h.menu.Selected != 1 {
		t.Errorf("selection = %d after resume, want 1", h.menu.Selected)
	}
	if h.menu.Items[h.topics+1].Disabled {
		t.Error("History should be enabled after an answer")
	}
	if h.menu.Items[0].Detail != "0/1" {
		t.Errorf("quadratic detail = %q, want %q", h.menu.Items[0].Detail, "0/1")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(newEngine(t))

	full := h.View(100, 40)
	if !strings.Contains(full, "GOAL") {
		t.Error("full layout should show the stats bar")
	}

	compact := h.View(80, 24)
	if !strings.Contains(compact, "A · L · G · E · B · R · A") {
		t.Error("compact layout should use the one-line title")
	}
	if strings.Contains(compact, "GOAL") {
		t.Error("compact layout should hide the stats bar")
	}
}
