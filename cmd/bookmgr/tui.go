package main

import (
	"github.com/Veraticus/bookmgr/internal/tui"
	"github.com/Veraticus/bookmgr/internal/tui/themes"
	"github.com/spf13/cobra"
)

func (a *app) tuiCmd() *cobra.Command {
	var (
		theme     string
		altScreen bool
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen interface",
		Long:  `Browse, add and remove books in a full-screen terminal interface.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, closeStore, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			return tui.Run(
				tui.WithCatalog(cat),
				tui.WithContext(cmd.Context()),
				tui.WithTheme(themes.ByName(theme)),
				tui.WithAltScreen(altScreen),
			)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "default", "color theme (default, catppuccin)")
	cmd.Flags().BoolVar(&altScreen, "alt-screen", true, "use the alternate screen buffer")

	return cmd
}
