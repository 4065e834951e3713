// Package ffmpeg checks that a picked helper tool is a runnable ffmpeg.
package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Version check constants
const (
	VersionFlag         = "-version"
	VersionMarker       = "version"
	ProgramName         = "ffmpeg"
	DefaultVersionTimeout = 10 * time.Second
)

// ErrNotFFmpeg is returned when the executable does not identify as ffmpeg
var ErrNotFFmpeg = errors.New("not an ffmpeg executable")

// DetectVersion runs "<path> -version" and returns the reported version
func DetectVersion(ctx context.Context, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("ffmpeg path is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultVersionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, VersionFlag)
	out, err := cmd.Output()
	if err != nil {
		log.Debug().Str("op", "ffmpeg/version").Str("path", path).Err(err).Msg("ffmpeg version check failed")
		return "", fmt.Errorf("failed to run %s: %w", path, err)
	}

	version, err := ParseVersion(out)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("op", "ffmpeg/version").Str("path", path).Str("version", version).Msg("ffmpeg found")
	return version, nil
}

// ParseVersion extracts the version token from the first line of
// "ffmpeg -version" output, e.g. "ffmpeg version 6.1.1 Copyright ..."
func ParseVersion(output []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	if !scanner.Scan() {
		return "", ErrNotFFmpeg
	}

	fields := strings.Fields(scanner.Text())
	if len(fields) < 3 || fields[0] != ProgramName || fields[1] != VersionMarker {
		return "", ErrNotFFmpeg
	}
	return fields[2], nil
}
