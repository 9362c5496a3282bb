package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rcliao/memo/internal/model"
)

// Snapshot is the full persisted state.
type Snapshot struct {
	Active   []model.Memo `json:"active"`
	Archived []model.Memo `json:"archived"`
	Theme    model.Theme  `json:"theme"`
}

// Persistence reads and writes the memo records on top of a KV.
type Persistence struct {
	kv KV
}

// NewPersistence wraps kv.
func NewPersistence(kv KV) *Persistence {
	return &Persistence{kv: kv}
}

// KV returns the underlying key-value store.
func (p *Persistence) KV() KV { return p.kv }

// Load reads all three records. Absent records yield empty lists and the
// light theme; malformed fields are defaulted, never reported.
func (p *Persistence) Load(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{Active: []model.Memo{}, Archived: []model.Memo{}, Theme: model.ThemeLight}

	raw, ok, err := p.kv.Get(ctx, KeyActive)
	if err != nil {
		return snap, fmt.Errorf("load active: %w", err)
	}
	if ok {
		snap.Active = DecodeMemos([]byte(raw))
	}

	raw, ok, err = p.kv.Get(ctx, KeyArchived)
	if err != nil {
		return snap, fmt.Errorf("load archived: %w", err)
	}
	if ok {
		snap.Archived = DecodeMemos([]byte(raw))
	}

	raw, ok, err = p.kv.Get(ctx, KeyTheme)
	if err != nil {
		return snap, fmt.Errorf("load theme: %w", err)
	}
	if ok {
		snap.Theme = model.ParseTheme(raw)
	}

	return snap, nil
}

// SaveActive overwrites the active memo record.
func (p *Persistence) SaveActive(ctx context.Context, memos []model.Memo) error {
	return p.saveMemos(ctx, KeyActive, memos)
}

// SaveArchived overwrites the archived memo record.
func (p *Persistence) SaveArchived(ctx context.Context, memos []model.Memo) error {
	return p.saveMemos(ctx, KeyArchived, memos)
}

// SaveTheme overwrites the theme record.
func (p *Persistence) SaveTheme(ctx context.Context, theme model.Theme) error {
	return p.kv.Put(ctx, KeyTheme, string(theme))
}

func (p *Persistence) saveMemos(ctx context.Context, key string, memos []model.Memo) error {
	b, err := EncodeMemos(memos)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return p.kv.Put(ctx, key, string(b))
}

// EncodeMemos serializes memos as a JSON array. A nil slice encodes as [].
func EncodeMemos(memos []model.Memo) ([]byte, error) {
	out := make([]model.Memo, len(memos))
	for i, m := range memos {
		out[i] = m.Clone()
	}
	return json.Marshal(out)
}

// DecodeMemos parses a JSON array of memos, one field at a time. Anything
// that fails to decode takes its default: priority 1, timestamp "N/A",
// empty tags. Elements that are not objects, or whose text is missing or not
// a string, are dropped.
func DecodeMemos(data []byte) []model.Memo {
	memos := []model.Memo{}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return memos
	}

	for _, el := range elems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(el, &fields); err != nil || fields == nil {
			continue
		}
		if m, ok := decodeMemo(fields); ok {
			memos = append(memos, m)
		}
	}
	return memos
}

func decodeMemo(fields map[string]json.RawMessage) (model.Memo, bool) {
	m := model.Memo{
		Priority:  model.DefaultPriority,
		Timestamp: model.UnknownTimestamp,
		Tags:      []string{},
	}

	var num float64
	if raw, ok := fields["id"]; ok && json.Unmarshal(raw, &num) == nil {
		m.ID = int64(num)
	}

	var text *string
	if raw, ok := fields["text"]; !ok || json.Unmarshal(raw, &text) != nil || text == nil {
		return model.Memo{}, false
	}
	m.Text = *text

	num = 0
	if raw, ok := fields["priority"]; ok && json.Unmarshal(raw, &num) == nil && int(num) != 0 {
		m.Priority = model.ClampPriority(int(num))
	}

	var ts string
	if raw, ok := fields["timestamp"]; ok && json.Unmarshal(raw, &ts) == nil && ts != "" {
		m.Timestamp = ts
	}

	var tags []json.RawMessage
	if raw, ok := fields["tags"]; ok && json.Unmarshal(raw, &tags) == nil {
		var names []string
		for _, t := range tags {
			var s string
			if json.Unmarshal(t, &s) == nil {
				names = append(names, s)
			}
		}
		m.Tags = model.CleanTags(names)
	}

	return m, true
}
