package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/memo/internal/view"
)

func newListCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List memos",
		Long:  "List active memos, or archived ones with --archive. Filter by tag (active only) and by search text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, _ := cmd.Flags().GetBool("archive")
			tag, _ := cmd.Flags().GetString("tag")
			search, _ := cmd.Flags().GetString("search")
			return runList(cmd, opts, archive, tag, search)
		},
	}

	cmd.Flags().BoolP("archive", "a", false, "Show the archive")
	cmd.Flags().StringP("tag", "t", "", "Only memos carrying this exact tag (active view)")
	cmd.Flags().StringP("search", "s", "", "Case-insensitive text or tag search")
	return cmd
}

func newSearchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search memos by text or tag",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, _ := cmd.Flags().GetBool("archive")
			return runList(cmd, opts, archive, "", strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolP("archive", "a", false, "Search the archive")
	return cmd
}

func runList(cmd *cobra.Command, opts *options, archive bool, tag, search string) error {
	s, err := opts.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if archive {
		s.app.SetView(view.Archive)
	}
	if tag != "" {
		s.app.SelectTag(tag)
	}
	s.app.SetSearch(search)

	if opts.jsonOutput() {
		opts.emit(cmd, s.app.Displayed(), "")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), s.app.Render())
	return nil
}
