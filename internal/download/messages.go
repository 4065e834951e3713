package download

import (
	"errors"
	"fmt"

	"github.com/ytget/tubedl/internal/model"
)

// Notification titles
const (
	TitleWarning       = "Error"
	TitleSuccess       = "Success"
	TitleInvalidURL    = "Invalid URL"
	TitleDownloadError = "Download Error"
)

// SuccessMessage is shown when a download of kind completes
func SuccessMessage(kind model.Kind) string {
	return fmt.Sprintf("%s download completed!", kind.Label())
}

// FailureMessage returns the title and text shown for a failed download
func FailureMessage(kind model.FailureKind, err error) (string, string) {
	if kind == model.FailureInvalidURL {
		return TitleInvalidURL, "The URL format is invalid or not supported."
	}
	detail := "unknown error"
	if err != nil {
		detail = err.Error()
	}
	return TitleDownloadError, "Download failed:\n" + detail
}

// WarningText returns the English text of a warning passed to Display.Warn
func WarningText(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBusy):
		return MsgBusy
	case errors.As(err, &ve):
		return ve.Message
	default:
		return err.Error()
	}
}
