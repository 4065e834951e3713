package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ytget/tubedl/internal/config"
	"github.com/ytget/tubedl/internal/download"
	"github.com/ytget/tubedl/internal/model"
)

func newGetCmd(a *app) *cobra.Command {
	var collection bool
	var dest string

	cmd := &cobra.Command{
		Use:   "get [URL] [--collection] [--dest DIR]",
		Short: "Download one video or playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := model.KindSingle
			if collection {
				kind = model.KindCollection
			}

			prefs := a.env.Prefs.Load()
			req := download.NewRequest(args[0], kind, prefs)
			req.Destination = resolveDestination(dest, prefs)

			run, closeFn := a.runner()
			defer closeFn()

			log.Debug().Str("op", "cli/get").Str("url", req.URL).Str("dest", req.Destination).Msg("Starting download")
			return reported(run(cmd.Context(), req))
		},
	}

	cmd.Flags().BoolVarP(&collection, "collection", "c", false, "Treat the URL as a playlist")
	cmd.Flags().StringVarP(&dest, "dest", "d", "", "Destination folder (defaults to the saved folder, then the current directory)")
	return cmd
}

// resolveDestination picks the flag value, then the saved folder, then the
// working directory
func resolveDestination(flag string, prefs config.Preferences) string {
	if flag != "" {
		return flag
	}
	if saved, ok := prefs.Get(config.PrefPath); ok {
		return saved
	}
	return workingDir()
}
