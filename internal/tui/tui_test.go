package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/memo/internal/app"
	"github.com/rcliao/memo/internal/model"
	"github.com/rcliao/memo/internal/store"
	"github.com/rcliao/memo/internal/view"
)

func newTestModel(t *testing.T) (*Model, *app.App) {
	t.Helper()
	ctx := context.Background()
	a, err := app.New(ctx, store.NewPersistence(store.NewMemKV()), app.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return New(ctx, a), a
}

func keys(m *Model, seq ...string) {
	for _, k := range seq {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestAddFlow(t *testing.T) {
	m, a := newTestModel(t)

	keys(m, "a", "Buy milk", "enter", "errand, home", "enter")
	if m.mode != modeAddPriority {
		t.Fatalf("expected priority step, got mode %d", m.mode)
	}
	// replace the default "1" with "3"
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	keys(m, "3", "enter")

	active := a.Store().Active()
	if len(active) != 1 {
		t.Fatalf("expected 1 memo, got %d", len(active))
	}
	got := active[0]
	if got.Text != "Buy milk" || got.Priority != 3 || len(got.Tags) != 2 {
		t.Errorf("unexpected memo %+v", got)
	}
	if m.mode != modeBrowse {
		t.Error("expected to return to browse mode")
	}
	if !strings.Contains(m.View(), "Buy milk") {
		t.Error("view should show the new memo")
	}
}

func TestAddBlankCancels(t *testing.T) {
	m, a := newTestModel(t)
	keys(m, "a", "   ", "enter")
	if m.mode != modeBrowse || len(a.Store().Active()) != 0 {
		t.Error("blank text should end the add flow without creating a memo")
	}
}

func TestArchiveRestoreAndConfirmDelete(t *testing.T) {
	ctx := context.Background()
	m, a := newTestModel(t)
	a.Add(ctx, "Call Bob", 1, "")
	a.Add(ctx, "Buy milk", 3, "errand")
	m.sync()

	keys(m, "x")
	if len(a.Store().Archived()) != 1 || a.Store().Archived()[0].Text != "Buy milk" {
		t.Fatalf("expected Buy milk archived, got %+v", a.Store().Archived())
	}

	keys(m, "v")
	if a.State().Mode != view.Archive {
		t.Fatal("expected archive view")
	}

	keys(m, "d")
	if m.mode != modeConfirm {
		t.Fatal("expected confirmation mode")
	}
	if !strings.Contains(m.View(), "cannot be undone") {
		t.Error("expected confirmation banner")
	}
	keys(m, "n")
	if len(a.Store().Archived()) != 1 {
		t.Fatal("cancel must keep the memo")
	}

	keys(m, "r")
	if len(a.Store().Archived()) != 0 || a.Store().Active()[0].Text != "Buy milk" {
		t.Fatal("restore failed")
	}

	keys(m, "v", "x", "v", "d", "y")
	if len(a.Store().Archived()) != 0 {
		t.Error("confirmed delete should remove the memo")
	}
	if len(a.Store().Active()) != 1 {
		t.Errorf("expected 1 active memo left, got %d", len(a.Store().Active()))
	}
}

func TestPrioritySortAndEdit(t *testing.T) {
	ctx := context.Background()
	m, a := newTestModel(t)
	a.Add(ctx, "low", 1, "")
	a.Add(ctx, "high", 2, "")
	m.sync()

	keys(m, "j", "5", "s")
	if a.Store().Active()[0].Text != "low" || a.Store().Active()[0].Priority != 5 {
		t.Fatalf("expected low promoted and sorted first, got %+v", a.Store().Active())
	}

	keys(m, "k", "e", "!", "enter")
	if a.Store().Active()[0].Text != "low!" {
		t.Errorf("edit failed, got %q", a.Store().Active()[0].Text)
	}
}

func TestSearchAndTagKeys(t *testing.T) {
	ctx := context.Background()
	m, a := newTestModel(t)
	a.Add(ctx, "Buy milk", 3, "errand")
	a.Add(ctx, "Fix bike", 2, "home")
	m.sync()

	keys(m, "/", "MILK")
	if got := a.Displayed(); len(got) != 1 || got[0].Text != "Buy milk" {
		t.Errorf("live search failed: %+v", got)
	}
	keys(m, "esc")
	if a.State().Search != "" || len(a.Displayed()) != 2 {
		t.Error("esc should clear the search")
	}

	keys(m, "]")
	if a.State().ActiveTag != "home" {
		t.Errorf("expected first tag home, got %q", a.State().ActiveTag)
	}
	keys(m, "0")
	if a.State().ActiveTag != "" {
		t.Error("0 should clear the tag filter")
	}
}

func TestThemeKey(t *testing.T) {
	m, a := newTestModel(t)
	keys(m, "t")
	if a.Theme() != model.ThemeDark {
		t.Errorf("expected dark theme, got %q", a.Theme())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
