package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/rcliao/memo/internal/model"
)

func TestLoadEmpty(t *testing.T) {
	p := NewPersistence(NewMemKV())

	snap, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Active) != 0 || len(snap.Archived) != 0 {
		t.Errorf("expected empty lists, got %d/%d", len(snap.Active), len(snap.Archived))
	}
	if snap.Active == nil || snap.Archived == nil {
		t.Error("expected non-nil empty lists")
	}
	if snap.Theme != model.ThemeLight {
		t.Errorf("expected default light theme, got %q", snap.Theme)
	}
}

func TestLoadDefaultsMissingFields(t *testing.T) {
	ctx := context.Background()
	kv := NewMemKV()
	kv.Put(ctx, KeyActive, `[{"id": 1700000000000, "text": "old memo"}]`)

	snap, err := NewPersistence(kv).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Active) != 1 {
		t.Fatalf("expected 1 memo, got %d", len(snap.Active))
	}
	m := snap.Active[0]
	if m.Priority != 1 {
		t.Errorf("expected priority 1, got %d", m.Priority)
	}
	if m.Tags == nil || len(m.Tags) != 0 {
		t.Errorf("expected empty tags, got %#v", m.Tags)
	}
	if m.Timestamp != model.UnknownTimestamp {
		t.Errorf("expected %q timestamp, got %q", model.UnknownTimestamp, m.Timestamp)
	}
	if m.ID != 1700000000000 || m.Text != "old memo" {
		t.Errorf("unexpected memo %+v", m)
	}
}

func TestDecodeMemosTolerant(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []model.Memo
	}{
		{
			name: "NotArray",
			in:   `{"oops": true}`,
			want: []model.Memo{},
		},
		{
			name: "Garbage",
			in:   `not json`,
			want: []model.Memo{},
		},
		{
			name: "SkipsNonObjects",
			in:   `[1, "x", null, {"id": 2, "text": "ok", "priority": 4, "timestamp": "2024-01-02 03:04", "tags": ["a"]}]`,
			want: []model.Memo{{ID: 2, Text: "ok", Priority: 4, Timestamp: "2024-01-02 03:04", Tags: []string{"a"}}},
		},
		{
			name: "BadFieldTypes",
			in:   `[{"id": 3, "text": "t", "priority": "high", "timestamp": 12, "tags": "a,b"}]`,
			want: []model.Memo{{ID: 3, Text: "t", Priority: 1, Timestamp: "N/A", Tags: []string{}}},
		},
		{
			name: "ZeroPriorityAndNullTags",
			in:   `[{"id": 4, "text": "t", "priority": 0, "tags": null}]`,
			want: []model.Memo{{ID: 4, Text: "t", Priority: 1, Timestamp: "N/A", Tags: []string{}}},
		},
		{
			name: "OutOfRangePriorityClamped",
			in:   `[{"id": 5, "text": "t", "priority": 9}]`,
			want: []model.Memo{{ID: 5, Text: "t", Priority: 5, Timestamp: "N/A", Tags: []string{}}},
		},
		{
			name: "SkipsMissingOrNonStringText",
			in:   `[{"id": 7}, {"id": 8, "text": 42}, {"id": 9, "text": null}, {"id": 10, "text": ""}]`,
			want: []model.Memo{{ID: 10, Text: "", Priority: 1, Timestamp: "N/A", Tags: []string{}}},
		},
		{
			name: "MixedTagElements",
			in:   `[{"id": 6, "text": "t", "tags": [" a ", 7, "", "b"]}]`,
			want: []model.Memo{{ID: 6, Text: "t", Priority: 1, Timestamp: "N/A", Tags: []string{"a", "b"}}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DecodeMemos([]byte(c.in))
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("got %#v, want %#v", got, c.want)
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := NewSQLiteKV(dir + "/memo.db")
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	p := NewPersistence(kv)

	active := []model.Memo{{ID: 2, Text: "Call Bob", Priority: 1, Timestamp: "2024-05-01 10:00", Tags: []string{}}}
	archived := []model.Memo{{ID: 1, Text: "Buy milk", Priority: 3, Timestamp: "2024-05-01 09:00", Tags: []string{"errand"}}}

	if err := p.SaveActive(ctx, active); err != nil {
		t.Fatal(err)
	}
	if err := p.SaveArchived(ctx, archived); err != nil {
		t.Fatal(err)
	}
	if err := p.SaveTheme(ctx, model.ThemeDark); err != nil {
		t.Fatal(err)
	}

	snap, err := p.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(snap.Active, active) {
		t.Errorf("active mismatch: %#v", snap.Active)
	}
	if !reflect.DeepEqual(snap.Archived, archived) {
		t.Errorf("archived mismatch: %#v", snap.Archived)
	}
	if snap.Theme != model.ThemeDark {
		t.Errorf("expected dark theme, got %q", snap.Theme)
	}
}

func TestEncodeNilTags(t *testing.T) {
	b, err := EncodeMemos([]model.Memo{{ID: 1, Text: "x", Priority: 1}})
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"id":1,"text":"x","priority":1,"timestamp":"","tags":[]}]`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}

	b, _ = EncodeMemos(nil)
	if string(b) != "[]" {
		t.Errorf("expected [], got %s", b)
	}
}

func TestUnknownThemeDefaultsLight(t *testing.T) {
	ctx := context.Background()
	kv := NewMemKV()
	kv.Put(ctx, KeyTheme, "solarized")

	snap, _ := NewPersistence(kv).Load(ctx)
	if snap.Theme != model.ThemeLight {
		t.Errorf("expected light, got %q", snap.Theme)
	}
}

func TestParseDocument(t *testing.T) {
	t.Run("Export", func(t *testing.T) {
		snap, err := ParseDocument([]byte(`{"active":[{"id":1,"text":"a"}],"archived":[],"theme":"dark"}`))
		if err != nil {
			t.Fatal(err)
		}
		if len(snap.Active) != 1 || snap.Active[0].Priority != 1 {
			t.Errorf("unexpected active %#v", snap.Active)
		}
		if snap.Theme != model.ThemeDark {
			t.Errorf("expected dark, got %q", snap.Theme)
		}
	})

	t.Run("LocalStorageDump", func(t *testing.T) {
		doc := `{"memos":"[{\"id\":1,\"text\":\"a\",\"tags\":[\"x\"]}]","archivedMemos":"[{\"id\":2,\"text\":\"b\"}]"}`
		snap, err := ParseDocument([]byte(doc))
		if err != nil {
			t.Fatal(err)
		}
		if len(snap.Active) != 1 || snap.Active[0].Tags[0] != "x" {
			t.Errorf("unexpected active %#v", snap.Active)
		}
		if len(snap.Archived) != 1 || snap.Archived[0].ID != 2 {
			t.Errorf("unexpected archived %#v", snap.Archived)
		}
		if snap.Theme != "" {
			t.Errorf("expected no theme, got %q", snap.Theme)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := ParseDocument([]byte(`[1,2]`)); err == nil {
			t.Error("expected error for non-object document")
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	kv := NewMemKV()
	p := NewPersistence(kv)
	p.SaveActive(ctx, []model.Memo{
		{ID: 1, Text: "a", Priority: 3, Tags: []string{"x", "y"}},
		{ID: 2, Text: "b", Priority: 3, Tags: []string{"x"}},
	})
	p.SaveArchived(ctx, []model.Memo{{ID: 3, Text: "c", Priority: 1, Tags: []string{"z"}}})

	st, err := p.Stats(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if st.ActiveMemos != 2 || st.ArchivedMemos != 1 {
		t.Errorf("unexpected counts %d/%d", st.ActiveMemos, st.ArchivedMemos)
	}
	if st.DistinctTags != 2 {
		t.Errorf("expected 2 distinct active tags, got %d", st.DistinctTags)
	}
	if st.PriorityCounts[3] != 2 {
		t.Errorf("expected 2 memos at priority 3, got %d", st.PriorityCounts[3])
	}
	if len(st.Records) != 2 {
		t.Errorf("expected 2 records, got %d", len(st.Records))
	}
}
