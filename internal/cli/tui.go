package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/memo/internal/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive memo board",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			return tui.Run(cmd.Context(), s.app)
		},
	}
}
