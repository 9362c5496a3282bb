// Package render turns view state into a styled text frame. Rendering is a
// pure function of its input: the same Frame always yields the same output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/memo/internal/model"
	"github.com/rcliao/memo/internal/view"
)

// Placeholder is shown instead of the list when nothing matches.
const Placeholder = "No memos to show."

// Frame is everything the renderer needs to draw one screen.
type Frame struct {
	State         view.State
	Memos         []model.Memo // already filtered
	Tags          []string     // distinct active tags for the filter bar
	Cursor        int          // index into Memos, -1 for none
	PendingDelete *model.Memo
}

// Chrome says which view-specific controls are visible.
type Chrome struct {
	Input  bool
	Sort   bool
	Search bool
	TagBar bool
}

// Layout returns the controls visible in mode.
func Layout(mode view.Mode) Chrome {
	isMain := mode == view.Main
	return Chrome{Input: isMain, Sort: isMain, Search: true, TagBar: isMain}
}

// Renderer draws frames with a theme palette.
type Renderer struct {
	theme  model.Theme
	styles styles
	Width  int // card width, 0 to size cards to their content
}

// New returns a Renderer for theme.
func New(theme model.Theme) *Renderer {
	r := &Renderer{}
	r.SetTheme(theme)
	return r
}

// SetTheme applies theme to subsequent renders.
func (r *Renderer) SetTheme(theme model.Theme) {
	r.theme = theme
	r.styles = newStyles(paletteFor(theme))
}

// Theme returns the active theme.
func (r *Renderer) Theme() model.Theme { return r.theme }

// Render draws f.
func (r *Renderer) Render(f Frame) string {
	st := r.styles
	chrome := Layout(f.State.Mode)

	var b strings.Builder
	b.WriteString(r.header(f.State.Mode))
	b.WriteString("\n")

	if chrome.Input {
		b.WriteString(st.control.Render("[+ new memo]"))
		if chrome.Sort {
			b.WriteString(" ")
			b.WriteString(st.control.Render("[sort by priority]"))
		}
		b.WriteString("\n")
	}
	if chrome.Search {
		term := f.State.Search
		if term == "" {
			term = st.muted.Render("type / to search")
		}
		b.WriteString(st.label.Render("Search: ") + term + "\n")
	}
	if chrome.TagBar && len(f.Tags) > 0 {
		b.WriteString(r.tagBar(f.Tags, f.State.ActiveTag))
		b.WriteString("\n")
	}
	if f.PendingDelete != nil {
		b.WriteString(st.warning.Render(fmt.Sprintf(
			"Permanently delete %q? This cannot be undone. [y] confirm  [n] cancel",
			preview(f.PendingDelete.Text))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(f.Memos) == 0 {
		b.WriteString(st.muted.Render(Placeholder))
		b.WriteString("\n")
		return b.String()
	}

	for i, m := range f.Memos {
		b.WriteString(r.card(m, f.State.Mode, i == f.Cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) header(mode view.Mode) string {
	title := "Memos"
	toggle := "[view archive]"
	if mode == view.Archive {
		title = "Archive"
		toggle = "[view memos]"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.title.Render(title),
		" ",
		r.styles.control.Render(toggle),
		" ",
		r.styles.muted.Render("theme: "+string(r.theme)),
	)
}

func (r *Renderer) tagBar(tags []string, active string) string {
	chips := []string{r.chip("All tags", active == "")}
	for _, t := range tags {
		chips = append(chips, r.chip(t, t == active))
	}
	return strings.Join(chips, " ")
}

func (r *Renderer) chip(name string, selected bool) string {
	if selected {
		return r.styles.chipActive.Render("*" + name)
	}
	return r.styles.chip.Render(name)
}

// card renders one memo: priority control, text, tag chips, timestamp and
// the actions available in mode.
func (r *Renderer) card(m model.Memo, mode view.Mode, selected bool) string {
	st := r.styles
	archived := mode == view.Archive

	var priority, actions, text string
	if archived {
		priority = st.label.Render(fmt.Sprintf("Priority %d", m.Priority))
		actions = st.control.Render("[restore]") + " " + st.danger.Render("[delete]")
		text = st.readOnly.Render(m.Text)
	} else {
		priority = st.priority(m.Priority).Render(fmt.Sprintf("Priority ▾ %d", m.Priority))
		actions = st.control.Render("[archive]")
		text = st.text.Render(m.Text)
	}

	top := priority + "  " + actions
	lines := []string{top, text}

	if len(m.Tags) > 0 {
		chips := make([]string, len(m.Tags))
		for i, t := range m.Tags {
			chips[i] = st.chip.Render("#" + t)
		}
		lines = append(lines, strings.Join(chips, " "))
	}
	lines = append(lines, st.muted.Render(fmt.Sprintf("%s  id:%d", m.Timestamp, m.ID)))

	box := st.card
	if selected {
		box = st.cardSelected
	}
	if r.Width > 0 {
		box = box.Width(r.Width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 40 {
		return string(r[:40]) + "..."
	}
	return s
}
