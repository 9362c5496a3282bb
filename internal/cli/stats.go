package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rcliao/memo/internal/store"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show storage statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			st, err := s.persist.Stats(cmd.Context(), opts.getDBPath())
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			opts.emit(cmd, st, formatStats(st))
			return nil
		},
	}
}

func formatStats(st *store.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "db:       %s (%s)\n", st.DBPath, humanize.Bytes(uint64(st.DBSizeBytes)))
	fmt.Fprintf(&b, "active:   %s\n", humanize.Comma(int64(st.ActiveMemos)))
	fmt.Fprintf(&b, "archived: %s\n", humanize.Comma(int64(st.ArchivedMemos)))
	fmt.Fprintf(&b, "tags:     %d\n", st.DistinctTags)
	fmt.Fprintf(&b, "theme:    %s\n", st.Theme)
	for p := 5; p >= 1; p-- {
		if n := st.PriorityCounts[p]; n > 0 {
			fmt.Fprintf(&b, "  priority %d: %d\n", p, n)
		}
	}
	for _, r := range st.Records {
		updated := r.UpdatedAt
		if t, err := time.Parse(time.RFC3339, r.UpdatedAt); err == nil {
			updated = humanize.Time(t)
		}
		fmt.Fprintf(&b, "record %-13s rev %s, written %s\n", r.Key, r.Rev, updated)
	}
	return strings.TrimRight(b.String(), "\n")
}
