package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/ytget/tubedl/internal/config"
	"github.com/ytget/tubedl/internal/ffmpeg"
	"github.com/ytget/tubedl/internal/platform"
)

var prefKeys = []string{config.PrefPath, config.PrefCookies, config.PrefFFmpeg}

func newPrefsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the remembered folder, cookie file and ffmpeg path",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			showPrefs(a.out, a.env.Prefs.Path(), a.env.Prefs.Load())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set [KEY] [VALUE]",
		Short: "Store a preference (path, cookies or ffmpeg)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := normalizePrefKey(args[0])
			if err != nil {
				return err
			}
			value, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("invalid path %q: %w", args[1], err)
			}

			checkPref(cmd.Context(), a, key, value)

			if err := a.env.Prefs.Save(config.Preferences{key: value}); err != nil {
				return fmt.Errorf("failed to save preferences: %w", err)
			}
			PrintSuccess(a.out, fmt.Sprintf("%s = %s", key, value))
			return nil
		},
	})
	return cmd
}

// normalizePrefKey accepts the stored key names and a few aliases
func normalizePrefKey(key string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case config.PrefPath, "dest", "destination", "folder":
		return config.PrefPath, nil
	case config.PrefCookies, "cookie", "cookie-file":
		return config.PrefCookies, nil
	case config.PrefFFmpeg, "helper", "helper-tool":
		return config.PrefFFmpeg, nil
	default:
		return "", fmt.Errorf("unknown preference %q (expected one of: %s)", key, strings.Join(prefKeys, ", "))
	}
}

// checkPref warns about values that will not work, without blocking the save
func checkPref(ctx context.Context, a *app, key, value string) {
	info, err := os.Stat(value)
	if err != nil {
		PrintWarning(a.out, fmt.Sprintf("%s does not exist yet", value))
		return
	}

	switch key {
	case config.PrefPath:
		if !info.IsDir() {
			PrintWarning(a.out, fmt.Sprintf("%s is not a folder", value))
		}
	case config.PrefFFmpeg:
		version, err := ffmpeg.DetectVersion(ctx, value)
		if err != nil {
			PrintWarning(a.out, fmt.Sprintf("%s does not look like ffmpeg: %v", value, err))
			return
		}
		PrintInfo(a.out, "ffmpeg "+version)
	}
}

func showPrefs(w io.Writer, file string, prefs config.Preferences) {
	PrintHeader(w, "Preferences")
	fmt.Fprintf(w, "%s %s\n", StyleSymbols["arrow"], FStream(file))
	for _, key := range prefKeys {
		value, ok := prefs.Get(key)
		if !ok {
			fmt.Fprintf(w, "  %-8s %s\n", key, FWarning("(unset)"))
			continue
		}
		fmt.Fprintf(w, "  %-8s %s\n", key, FDetail(value))
		if key == config.PrefPath {
			if free, err := platform.FreeSpace(value); err == nil {
				fmt.Fprintf(w, "  %-8s %s\n", "", FStream(humanize.Bytes(free)+" free"))
			}
		}
	}
}
