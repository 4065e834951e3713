package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/ytget/tubedl/internal/model"
	"github.com/ytget/tubedl/internal/platform"
)

func newInspectCmd(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "inspect [URL]",
		Short: "List the entries of a playlist without downloading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lister := platform.NewCollectionLister()
			lister.SetTimeout(timeout)

			collection, err := lister.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printCollection(a.out, collection)
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", platform.DefaultListTimeout, "Listing timeout (eg. 30s, 2m)")
	return cmd
}

func printCollection(w io.Writer, c *model.Collection) {
	PrintHeader(w, fmt.Sprintf("Playlist %s (%d items)", c.ID, c.Len()))
	for _, entry := range c.Entries {
		fmt.Fprintf(w, "%4d. %s\n", entry.Index, entry.Title)
		fmt.Fprintf(w, "      %s\n", FStream(entry.URL))
	}
}
