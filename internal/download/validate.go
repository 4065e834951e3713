package download

import (
	"strings"

	"github.com/ytget/tubedl/internal/model"
)

// Validation field names
const (
	FieldURL         = "url"
	FieldDestination = "destination"
	FieldCookies     = "cookies"
	FieldFFmpeg      = "ffmpeg"
)

// Policy selects which optional inputs are mandatory
type Policy struct {
	RequireCookies bool
	RequireFFmpeg  bool
}

// Validator checks one input of a request
type Validator struct {
	Field   string
	Message string
	Valid   func(req model.DownloadRequest) bool
}

// Validators returns the ordered checks applied before a download starts
func Validators(policy Policy) []Validator {
	validators := []Validator{
		{
			Field:   FieldURL,
			Message: "Please enter a valid URL.",
			Valid:   func(r model.DownloadRequest) bool { return notBlank(r.URL) },
		},
		{
			Field:   FieldDestination,
			Message: "Please select a download folder.",
			Valid:   func(r model.DownloadRequest) bool { return notBlank(r.Destination) },
		},
	}
	if policy.RequireCookies {
		validators = append(validators, Validator{
			Field:   FieldCookies,
			Message: "Please select a cookie file.",
			Valid:   func(r model.DownloadRequest) bool { return notBlank(r.CookieFile) },
		})
	}
	if policy.RequireFFmpeg {
		validators = append(validators, Validator{
			Field:   FieldFFmpeg,
			Message: "Please select the FFmpeg file.",
			Valid:   func(r model.DownloadRequest) bool { return notBlank(r.HelperTool) },
		})
	}
	return validators
}

// Validate runs validators in order and returns the first failure as a
// *ValidationError
func Validate(req model.DownloadRequest, validators []Validator) error {
	for _, v := range validators {
		if !v.Valid(req) {
			return &ValidationError{Field: v.Field, Message: v.Message}
		}
	}
	return nil
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
