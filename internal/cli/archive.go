package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newArchiveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Move an active memo to the archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ok, err := s.app.Archive(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("archive: %w", err)
			}
			opts.emit(cmd, result{OK: ok, ID: id}, outcome(ok, "archived", id))
			return nil
		},
	}
}

func newRestoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Move an archived memo back to the active list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ok, err := s.app.Restore(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("restore: %w", err)
			}
			opts.emit(cmd, result{OK: ok, ID: id}, outcome(ok, "restored", id))
			return nil
		},
	}
}

func newSortCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Order active memos by descending priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := s.app.Sort(cmd.Context()); err != nil {
				return fmt.Errorf("sort: %w", err)
			}
			if opts.jsonOutput() {
				opts.emit(cmd, s.app.Displayed(), "")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), s.app.Render())
			return nil
		},
	}
}
