package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/ytget/tubedl/internal/history"
	"github.com/ytget/tubedl/internal/model"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [--limit N]",
		Short: "Show recent downloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.env.OpenHistory()
			if err != nil {
				return fmt.Errorf("failed to open history: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printHistory(a.out, entries, time.Now())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultRecentLimit, "Number of entries to show")
	return cmd
}

func printHistory(w io.Writer, entries []history.Entry, now time.Time) {
	if len(entries) == 0 {
		PrintInfo(w, "No downloads yet")
		return
	}
	for _, e := range entries {
		symbol := FSuccess(StyleSymbols["pass"])
		if e.State == model.RunStateFailed {
			symbol = FError(StyleSymbols["fail"])
		}
		when := humanize.RelTime(e.FinishedAt, now, "ago", "from now")
		fmt.Fprintf(w, "%s %-8s %s %s\n", symbol, e.Kind.Label(), e.URL, FStream(when))
		if e.Message != "" {
			fmt.Fprintf(w, "    %s\n", FError(e.Message))
		}
	}
}
