package store

import (
	"context"
	"os"

	"github.com/rcliao/memo/internal/model"
)

// Stats holds storage statistics.
type Stats struct {
	DBPath         string      `json:"db_path"`
	DBSizeBytes    int64       `json:"db_size_bytes"`
	ActiveMemos    int         `json:"active_memos"`
	ArchivedMemos  int         `json:"archived_memos"`
	DistinctTags   int         `json:"distinct_tags"`
	PriorityCounts map[int]int `json:"priority_counts"`
	Theme          model.Theme `json:"theme"`
	Records        []Record    `json:"records"`
}

// Stats returns statistics for the persisted state.
func (p *Persistence) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, PriorityCounts: map[int]int{}}

	// DB file size
	if dbPath != "" {
		if info, err := os.Stat(dbPath); err == nil {
			st.DBSizeBytes = info.Size()
		}
	}

	snap, err := p.Load(ctx)
	if err != nil {
		return st, err
	}
	st.ActiveMemos = len(snap.Active)
	st.ArchivedMemos = len(snap.Archived)
	st.Theme = snap.Theme

	seen := map[string]bool{}
	for _, m := range snap.Active {
		st.PriorityCounts[m.Priority]++
		for _, t := range m.Tags {
			seen[t] = true
		}
	}
	st.DistinctTags = len(seen)

	st.Records, err = p.kv.Records(ctx)
	if err != nil {
		return st, err
	}
	return st, nil
}
