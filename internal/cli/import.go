package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/memo/internal/store"
)

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import memos from JSON",
		Long: "Import memos from JSON (file or stdin). Accepts the format produced by export, or a " +
			"localStorage dump with \"memos\", \"archivedMemos\" and \"theme\" keys. Memos whose id already exists are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			doc, err := store.ParseDocument(data)
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			imported, err := s.app.Store().Import(cmd.Context(), doc.Active, doc.Archived)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			if doc.Theme != "" {
				if _, err := s.app.SetTheme(cmd.Context(), doc.Theme); err != nil {
					return err
				}
			}

			opts.emit(cmd, map[string]any{"ok": true, "imported": imported}, fmt.Sprintf("imported %d", imported))
			return nil
		},
	}
}
