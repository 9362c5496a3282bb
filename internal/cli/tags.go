package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newTagsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the distinct tags of active memos",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			tags := s.app.Tags()
			opts.emit(cmd, tags, strings.Join(tags, "\n"))
			return nil
		},
	}
}
