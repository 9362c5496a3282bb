// Package view derives what is displayed from the memo sequences and the
// current view state. Everything here is a pure function.
package view

import (
	"strings"

	"github.com/rcliao/memo/internal/model"
)

// Mode selects which sequence is displayed.
type Mode string

const (
	Main    Mode = "main"
	Archive Mode = "archive"
)

// State is the ephemeral, unpersisted view state.
type State struct {
	Mode      Mode
	ActiveTag string // only applies in Main
	Search    string
}

// NewState returns the initial state: main view, no filters.
func NewState() State {
	return State{Mode: Main}
}

// ToggleView switches between main and archive and clears the tag filter.
func (s *State) ToggleView() {
	if s.Mode == Archive {
		s.Mode = Main
	} else {
		s.Mode = Archive
	}
	s.ActiveTag = ""
}

// SelectTag sets the tag filter. Selecting the active tag again clears it.
func (s *State) SelectTag(tag string) {
	if tag == s.ActiveTag {
		s.ActiveTag = ""
		return
	}
	s.ActiveTag = tag
}

// ClearTag removes the tag filter.
func (s *State) ClearTag() { s.ActiveTag = "" }

// SetSearch sets the free-text search term.
func (s *State) SetSearch(term string) { s.Search = term }

// Filter returns the memos to display, in source order.
func Filter(active, archived []model.Memo, st State) []model.Memo {
	source := active
	if st.Mode == Archive {
		source = archived
	}

	term := strings.ToLower(st.Search)
	out := []model.Memo{}
	for _, m := range source {
		if !MatchesSearch(m, term) {
			continue
		}
		if st.Mode == Main && st.ActiveTag != "" && !m.HasTag(st.ActiveTag) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// MatchesSearch reports whether lowered term is a substring of m's text or
// of any of its tags, ignoring case. An empty term matches everything.
func MatchesSearch(m model.Memo, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Text), term) {
		return true
	}
	for _, t := range m.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// Tags returns the distinct tags of the active memos in first-seen order.
func Tags(active []model.Memo) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, m := range active {
		for _, t := range m.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// CycleTag returns the tag after (step=1) or before (step=-1) current in
// tags, passing through "" (no filter) between the ends.
func CycleTag(tags []string, current string, step int) string {
	if len(tags) == 0 {
		return ""
	}
	// position 0 is "no filter", 1..n are tags
	pos := 0
	for i, t := range tags {
		if t == current {
			pos = i + 1
		}
	}
	n := len(tags) + 1
	pos = ((pos+step)%n + n) % n
	if pos == 0 {
		return ""
	}
	return tags[pos-1]
}
