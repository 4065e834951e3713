// Package cli implements the tubedl terminal commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd(a *app, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tubedl",
		Short:         "TubeDL downloads videos and playlists with yt-dlp",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.in = cmd.InOrStdin()
			a.out = cmd.OutOrStdout()
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newMenuCmd(a),
		newGetCmd(a),
		newBatchCmd(a),
		newPrefsCmd(a),
		newInspectCmd(a),
		newHistoryCmd(a),
		newOpenCmd(a),
	)
	return cmd
}

// Execute runs the tubedl command line and exits non-zero on failure
func Execute(version string) {
	a := &app{}
	cmd := newRootCmd(a, version)
	if err := cmd.Execute(); err != nil {
		if !isReported(err) {
			PrintError(os.Stderr, fmt.Sprint(err))
		}
		os.Exit(1)
	}
}
