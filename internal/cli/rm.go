package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRmCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Permanently delete an archived memo",
		Long:  "Permanently delete an archived memo. Asks for confirmation unless --yes is given. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.app.RequestDelete(id) {
				opts.emit(cmd, result{OK: false, ID: id}, fmt.Sprintf("no archived memo %d", id))
				return nil
			}

			if !yes {
				m, _ := s.app.PendingDelete()
				fmt.Fprintf(cmd.ErrOrStderr(), "Permanently delete %d %q? This cannot be undone. [y/N] ", id, m.Text)
				if !confirmed(cmd) {
					s.app.CancelDelete()
					opts.emit(cmd, result{OK: false, ID: id}, "cancelled")
					return nil
				}
			}

			ok, err := s.app.ConfirmDelete(cmd.Context())
			if err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			opts.emit(cmd, result{OK: ok, ID: id}, outcome(ok, "deleted", id))
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// confirmed reads one line of input and reports whether it is a yes.
func confirmed(cmd *cobra.Command) bool {
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
