// Package model defines the core memo data types.
package model

import (
	"strings"
	"time"
)

// Priority bounds.
const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = MinPriority
)

// UnknownTimestamp is stored for memos loaded without a timestamp.
const UnknownTimestamp = "N/A"

// TimestampLayout is the human-readable layout used for memo timestamps.
const TimestampLayout = "2006-01-02 15:04"

// Memo represents a single note.
type Memo struct {
	ID        int64    `json:"id"`
	Text      string   `json:"text"`
	Priority  int      `json:"priority"`
	Timestamp string   `json:"timestamp"`
	Tags      []string `json:"tags"`
}

// Clone returns a copy of m that shares no memory with it.
func (m Memo) Clone() Memo {
	c := m
	c.Tags = append([]string{}, m.Tags...)
	return c
}

// HasTag reports whether m carries tag exactly (case-sensitive).
func (m Memo) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Theme is the display theme flag.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns the theme named by s, falling back to light.
func ParseTheme(s string) Theme {
	if Theme(strings.TrimSpace(s)) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ClampPriority forces p into [MinPriority, MaxPriority].
func ClampPriority(p int) int {
	if p < MinPriority {
		return MinPriority
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}

// FormatTimestamp renders t in TimestampLayout using local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// CleanTags trims every tag and drops empty ones. Duplicates are kept.
func CleanTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ParseTags splits a comma-separated tag list.
func ParseTags(csv string) []string {
	if csv == "" {
		return []string{}
	}
	return CleanTags(strings.Split(csv, ","))
}
