package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newEditCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> [text]",
		Short: "Replace the text of an active memo",
		Long:  "Replace the text of an active memo and refresh its timestamp. Text can be given after the id or piped via stdin.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			text, err := readText(cmd, args[1:])
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("edit: no text given for memo %d; pass it after the id or pipe it via stdin", id)
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ok, err := s.app.EditText(cmd.Context(), id, text)
			if err != nil {
				return fmt.Errorf("edit: %w", err)
			}
			opts.emit(cmd, result{OK: ok, ID: id}, outcome(ok, "edited", id))
			return nil
		},
	}
}

func newPriorityCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "priority <id> <1-5>",
		Short: "Set the priority of an active memo",
		Long:  "Set the priority of an active memo. Values outside 1-5 are clamped.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			level, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid priority %q", args[1])
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ok, err := s.app.SetPriority(cmd.Context(), id, level)
			if err != nil {
				return fmt.Errorf("priority: %w", err)
			}
			opts.emit(cmd, result{OK: ok, ID: id}, outcome(ok, "updated", id))
			return nil
		},
	}
}

// outcome is the text-mode line for an action on one memo.
func outcome(ok bool, verb string, id int64) string {
	if ok {
		return fmt.Sprintf("%s %d", verb, id)
	}
	return fmt.Sprintf("no such memo %d", id)
}
