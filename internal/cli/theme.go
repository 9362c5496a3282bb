package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/memo/internal/model"
)

func newThemeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the display theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			theme := s.app.Theme()
			if len(args) == 1 {
				switch args[0] {
				case "toggle":
					theme, err = s.app.ToggleTheme(cmd.Context())
				case string(model.ThemeLight), string(model.ThemeDark):
					theme, err = s.app.SetTheme(cmd.Context(), model.Theme(args[0]))
				default:
					return fmt.Errorf("unknown theme %q (use light, dark or toggle)", args[0])
				}
				if err != nil {
					return err
				}
			}

			opts.emit(cmd, map[string]model.Theme{"theme": theme}, string(theme))
			return nil
		},
	}
}
