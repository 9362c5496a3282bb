// Package tui hosts the Bubble Tea program for interactive memo editing.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/memo/internal/app"
	"github.com/rcliao/memo/internal/model"
	"github.com/rcliao/memo/internal/view"
)

type mode int

const (
	modeBrowse mode = iota
	modeAddText
	modeAddTags
	modeAddPriority
	modeEdit
	modeSearch
	modeConfirm
)

const helpMain = "j/k move · a add · e edit · 1-5 priority · x archive · s sort · / search · [ ] tag · 0 all tags · v archive view · t theme · q quit"
const helpArchive = "j/k move · r restore · d delete · / search · v memos view · t theme · q quit"

var statusStyle = lipgloss.NewStyle().Faint(true)

// Model is the Bubble Tea model wrapping an app.App.
type Model struct {
	ctx    context.Context
	app    *app.App
	cursor int
	mode   mode
	input  textinput.Model
	status string

	draftText string
	draftTags string
	editID    int64
}

// New returns a Model driving a.
func New(ctx context.Context, a *app.App) *Model {
	ti := textinput.New()
	ti.CharLimit = 2000
	ti.Width = 60

	m := &Model{ctx: ctx, app: a, input: ti}
	m.sync()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.app.Renderer().Width = msg.Width - 4
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeBrowse:
			cmd = m.browseKey(msg)
		case modeConfirm:
			m.confirmKey(msg)
		default:
			cmd = m.inputKey(msg)
		}
	}
	m.sync()
	return m, cmd
}

// sync keeps the cursor inside the displayed list and hands it to the app.
func (m *Model) sync() {
	n := len(m.app.Displayed())
	switch {
	case n == 0:
		m.cursor = -1
	case m.cursor < 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	}
	m.app.SetCursor(m.cursor)
}

func (m *Model) selected() (model.Memo, bool) {
	shown := m.app.Displayed()
	if m.cursor < 0 || m.cursor >= len(shown) {
		return model.Memo{}, false
	}
	return shown[m.cursor], true
}

func (m *Model) browseKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""
	mainView := m.app.State().Mode == view.Main
	key := msg.String()

	switch key {
	case "q":
		return tea.Quit
	case "j", "down":
		m.cursor++
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "v":
		m.app.ToggleView()
		m.cursor = 0
	case "t":
		theme, err := m.app.ToggleTheme(m.ctx)
		m.report(err, "theme: "+string(theme))
	case "/":
		m.input.SetValue(m.app.State().Search)
		return m.startInput(modeSearch, "search: ")
	case "]":
		m.app.CycleTag(1)
	case "[":
		m.app.CycleTag(-1)
	case "0":
		m.app.SelectTag("")
	}

	if mainView {
		switch key {
		case "a":
			m.input.SetValue("")
			return m.startInput(modeAddText, "new memo: ")
		case "s":
			_, err := m.app.Sort(m.ctx)
			m.report(err, "sorted by priority")
		case "1", "2", "3", "4", "5":
			if sel, ok := m.selected(); ok {
				p, _ := strconv.Atoi(key)
				_, err := m.app.SetPriority(m.ctx, sel.ID, p)
				m.report(err, "")
			}
		case "e":
			if sel, ok := m.selected(); ok {
				m.editID = sel.ID
				m.input.SetValue(sel.Text)
				return m.startInput(modeEdit, "edit: ")
			}
		case "x":
			if sel, ok := m.selected(); ok {
				_, err := m.app.Archive(m.ctx, sel.ID)
				m.report(err, "archived")
			}
		}
		return nil
	}

	switch key {
	case "r":
		if sel, ok := m.selected(); ok {
			_, err := m.app.Restore(m.ctx, sel.ID)
			m.report(err, "restored")
		}
	case "d":
		if sel, ok := m.selected(); ok && m.app.RequestDelete(sel.ID) {
			m.mode = modeConfirm
		}
	}
	return nil
}

func (m *Model) confirmKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "Y":
		ok, err := m.app.ConfirmDelete(m.ctx)
		if ok {
			m.report(err, "deleted permanently")
		} else {
			m.report(err, "")
		}
		m.mode = modeBrowse
	case "n", "N", "esc":
		m.app.CancelDelete()
		m.status = "delete cancelled"
		m.mode = modeBrowse
	}
}

func (m *Model) startInput(md mode, prompt string) tea.Cmd {
	m.mode = md
	m.input.Prompt = prompt
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) endInput() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) inputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if m.mode == modeSearch {
			m.app.SetSearch("")
		}
		m.endInput()
		return nil
	case "enter":
		m.commit()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeSearch {
		m.app.SetSearch(m.input.Value())
	}
	return cmd
}

// commit finishes the current input step.
func (m *Model) commit() {
	value := m.input.Value()

	switch m.mode {
	case modeAddText:
		if strings.TrimSpace(value) == "" {
			m.endInput()
			return
		}
		m.draftText = value
		m.input.SetValue("")
		m.input.Prompt = "tags (comma-separated): "
		m.mode = modeAddTags
		return
	case modeAddTags:
		m.draftTags = value
		m.input.SetValue(strconv.Itoa(model.DefaultPriority))
		m.input.CursorEnd()
		m.input.Prompt = "priority (1-5): "
		m.mode = modeAddPriority
		return
	case modeAddPriority:
		p, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			p = model.DefaultPriority
		}
		_, ok, err := m.app.Add(m.ctx, m.draftText, p, m.draftTags)
		if ok {
			m.cursor = 0
		}
		m.report(err, "added")
		m.draftText, m.draftTags = "", ""
	case modeEdit:
		_, err := m.app.EditText(m.ctx, m.editID, value)
		m.report(err, "saved")
	case modeSearch:
		m.app.SetSearch(value)
	}
	m.endInput()
}

func (m *Model) report(err error, ok string) {
	if err != nil {
		m.status = "error: " + err.Error()
		return
	}
	m.status = ok
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.app.Render())

	if m.mode != modeBrowse && m.mode != modeConfirm {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	help := helpMain
	if m.app.State().Mode == view.Archive {
		help = helpArchive
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s  (%d shown)", help, len(m.app.Displayed()))))
	return b.String()
}
