package download

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/tubedl/internal/model"
)

var (
	// ErrBusy is returned when a download is requested while another runs
	ErrBusy = errors.New("a download is already in progress")

	// ErrInvalidURL marks downloader failures caused by a malformed or
	// unsupported URL
	ErrInvalidURL = errors.New("the URL format is invalid or not supported")
)

// Markers yt-dlp prints for URLs it cannot handle
var invalidURLMarkers = []string{"is not a valid URL", "Unsupported URL"}

// ValidationError reports a required input that is missing
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// EngineError is the failure reported by the downloader itself
type EngineError struct {
	Message string
}

func (e *EngineError) Error() string {
	return e.Message
}

// Classify maps a downloader error to the failure category shown to the
// user. Invalid URL failures are wrapped so that errors.Is(err,
// ErrInvalidURL) holds.
func Classify(err error) (model.FailureKind, error) {
	if err == nil {
		return model.FailureNone, nil
	}

	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		for _, marker := range invalidURLMarkers {
			if strings.Contains(engineErr.Message, marker) {
				return model.FailureInvalidURL, fmt.Errorf("%w: %w", ErrInvalidURL, err)
			}
		}
	}
	return model.FailureDownload, err
}
