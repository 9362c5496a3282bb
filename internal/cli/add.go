package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/memo/internal/model"
)

func newAddCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Create a memo",
		Long:  "Create a memo. Text can be a positional arg or piped via stdin. Blank text is ignored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, _ := cmd.Flags().GetInt("priority")
			tags, _ := cmd.Flags().GetString("tags")

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			m, ok, err := s.app.Add(cmd.Context(), text, priority, tags)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			if !ok {
				opts.emit(cmd, result{OK: false}, "")
				return nil
			}
			opts.emit(cmd, m, fmt.Sprintf("added %d", m.ID))
			return nil
		},
	}

	cmd.Flags().IntP("priority", "p", model.DefaultPriority, "Priority 1-5")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	return cmd
}

// readText takes text from the positional args, or from stdin when it is
// piped.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
			return "", nil
		}
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
