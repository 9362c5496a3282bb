// Package cli implements the memo CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rcliao/memo/internal/app"
	"github.com/rcliao/memo/internal/store"
)

// options holds the values of the persistent flags.
type options struct {
	dbPath  string
	format  string
	verbose bool
	log     *slog.Logger
}

// NewRootCmd builds the top-level command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "memo",
		Short:         "Tag, prioritize and archive short notes",
		Long:          "A tiny note keeper. Memos live in a local SQLite file; archive what you are done with, restore or delete it later.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	root.PersistentFlags().StringVarP(&opts.dbPath, "db", "d", "", "Database path (default: $MEMO_DB or ~/.memo/memo.db)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", envOr("MEMO_FORMAT", "text"), "Output format: text or json")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging on stderr")

	root.AddCommand(
		newAddCmd(opts),
		newEditCmd(opts),
		newPriorityCmd(opts),
		newArchiveCmd(opts),
		newRestoreCmd(opts),
		newRmCmd(opts),
		newSortCmd(opts),
		newListCmd(opts),
		newSearchCmd(opts),
		newTagsCmd(opts),
		newThemeCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newStatsCmd(opts),
		newTUICmd(opts),
	)
	return root
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (o *options) getDBPath() string {
	if o.dbPath != "" {
		return o.dbPath
	}
	if env := os.Getenv("MEMO_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".memo", "memo.db")
}

func (o *options) logger() *slog.Logger {
	if o.log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.log
}

// session is an opened database plus the app built on it.
type session struct {
	kv      *store.SQLiteKV
	persist *store.Persistence
	app     *app.App
}

func (s *session) Close() error { return s.kv.Close() }

func (o *options) open(cmd *cobra.Command) (*session, error) {
	kv, err := store.NewSQLiteKV(o.getDBPath())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	p := store.NewPersistence(kv)
	a, err := app.New(cmd.Context(), p, app.Options{Logger: o.logger()})
	if err != nil {
		kv.Close()
		return nil, err
	}
	return &session{kv: kv, persist: p, app: a}, nil
}

func (o *options) jsonOutput() bool { return o.format == "json" }

// emit writes v as JSON in json mode, or text otherwise.
func (o *options) emit(cmd *cobra.Command, v any, text string) {
	w := cmd.OutOrStdout()
	if o.jsonOutput() {
		b, _ := json.MarshalIndent(v, "", "  ")
		fmt.Fprintln(w, string(b))
		return
	}
	if text != "" {
		fmt.Fprintln(w, text)
	}
}

// result is the JSON shape for actions on a single memo.
type result struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id,omitempty"`
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid memo id %q", s)
	}
	return id, nil
}
