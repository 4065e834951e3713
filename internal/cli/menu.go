package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ytget/tubedl/internal/download"
	"github.com/ytget/tubedl/internal/model"
)

const menuTitle = "Youtube Downloader"

// Menu options
const (
	choiceSingle     = "1"
	choiceCollection = "2"
	choiceQuit       = "3"
)

var errQuit = errors.New("quit")

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu (default when no command is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd.Context())
		},
	}
}

// parseMenuChoice maps a menu answer to a download kind, or errQuit
func parseMenuChoice(answer string) (model.Kind, error) {
	switch strings.TrimSpace(answer) {
	case choiceSingle:
		return model.KindSingle, nil
	case choiceCollection:
		return model.KindCollection, nil
	case choiceQuit:
		return "", errQuit
	default:
		return "", fmt.Errorf("invalid choice %q", answer)
	}
}

// prefsHint tells how to store a path the menu cannot ask for
func prefsHint(err error) string {
	var ve *download.ValidationError
	if !errors.As(err, &ve) {
		return ""
	}
	switch ve.Field {
	case download.FieldCookies:
		return "Set it once with: tubedl prefs set cookies /path/to/cookies.txt"
	case download.FieldFFmpeg:
		return "Set it once with: tubedl prefs set ffmpeg /path/to/ffmpeg"
	default:
		return ""
	}
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (a *app) runMenu(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	run, closeFn := a.runner()
	defer closeFn()

	m := &menu{
		in:   bufio.NewScanner(a.in),
		out:  a.out,
		run:  run,
		cwd:  workingDir(),
		base: func(url string, kind model.Kind) model.DownloadRequest {
			return download.NewRequest(url, kind, a.env.Prefs.Load())
		},
	}
	return m.loop(ctx)
}

// menu is the numbered interactive loop
type menu struct {
	in   *bufio.Scanner
	out  io.Writer
	run  runFunc
	cwd  string
	base func(url string, kind model.Kind) model.DownloadRequest
}

func (m *menu) printMenu() {
	PrintBanner(m.out, menuTitle)
	fmt.Fprintln(m.out, "1 - Download a video")
	fmt.Fprintln(m.out, "2 - Download a playlist")
	fmt.Fprintln(m.out, "3 - Quit")
}

// prompt prints question and reads one line. ok is false at end of input.
func (m *menu) prompt(question string) (string, bool) {
	fmt.Fprint(m.out, FInfo(question))
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) quit() error {
	fmt.Fprintln(m.out, FWarning("Closing the program..."))
	return nil
}

func (m *menu) loop(ctx context.Context) error {
	m.printMenu()
	for {
		answer, ok := m.prompt("Choose an option (1, 2, 3): ")
		if !ok {
			return m.quit()
		}

		kind, err := parseMenuChoice(answer)
		if errors.Is(err, errQuit) {
			return m.quit()
		}
		if err != nil {
			PrintError(m.out, "Invalid choice!")
			continue
		}

		question := "Enter the video URL -> "
		if kind == model.KindCollection {
			question = "Enter the playlist URL -> "
		}
		url, ok := m.prompt(question)
		if !ok {
			return m.quit()
		}

		dest := m.cwd
		choose, ok := m.prompt("Choose a destination for the media? (y/n) -> ")
		if !ok {
			return m.quit()
		}
		if isYes(choose) {
			dir, ok := m.prompt("Destination folder -> ")
			if !ok {
				return m.quit()
			}
			if dir != "" {
				dest = dir
			}
		}

		req := m.base(url, kind)
		req.Destination = dest
		if err := m.run(ctx, req); err == nil {
			PrintInfo(m.out, "Download finished: "+dest)
		} else {
			log.Debug().Str("op", "cli/menu").Err(err).Msg("Menu download failed")
			if hint := prefsHint(err); hint != "" {
				PrintInfo(m.out, hint)
			}
		}

		again, ok := m.prompt("Do you want to continue? (y/n) -> ")
		if !ok || !isYes(again) {
			return m.quit()
		}
		fmt.Fprintln(m.out, FSuccess(strings.Repeat("-", 15)+" Restarting "+strings.Repeat("-", 15)))
		m.printMenu()
	}
}
