package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ytget/tubedl/internal/config"
	"github.com/ytget/tubedl/internal/platform"
)

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the saved download folder in the file manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, ok := a.env.Prefs.Load().Get(config.PrefPath)
			if !ok {
				return fmt.Errorf("no download folder saved; use: tubedl prefs set path DIR")
			}
			return platform.OpenFolder(dir)
		},
	}
}
