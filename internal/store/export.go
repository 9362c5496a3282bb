package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rcliao/memo/internal/model"
)

// Export returns the full persisted state.
func (p *Persistence) Export(ctx context.Context) (Snapshot, error) {
	return p.Load(ctx)
}

// ParseDocument reads an import document. It accepts the format produced by
// Export ({"active": [...], "archived": [...], "theme": "..."}) as well as a
// raw localStorage dump, where each record key maps to its string value.
// An empty Theme means the document did not carry one.
func ParseDocument(data []byte) (Snapshot, error) {
	var snap Snapshot

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return snap, fmt.Errorf("parse document: %w", err)
	}

	snap.Active = memoList(fields, "active", KeyActive)
	snap.Archived = memoList(fields, "archived", KeyArchived)

	var theme string
	if raw, ok := fields[KeyTheme]; ok && json.Unmarshal(raw, &theme) == nil && theme != "" {
		snap.Theme = model.ParseTheme(theme)
	}
	return snap, nil
}

// memoList decodes the list under name, or under dumpKey when the value is
// a JSON string holding the list (localStorage style).
func memoList(fields map[string]json.RawMessage, name, dumpKey string) []model.Memo {
	if raw, ok := fields[name]; ok {
		return DecodeMemos(raw)
	}
	if raw, ok := fields[dumpKey]; ok {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return DecodeMemos([]byte(s))
		}
		return DecodeMemos(raw)
	}
	return []model.Memo{}
}
