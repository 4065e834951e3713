package download

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ytget/tubedl/internal/config"
	"github.com/ytget/tubedl/internal/model"
)

// NewRequest builds a request for url from the stored preferences
func NewRequest(url string, kind model.Kind, prefs config.Preferences) model.DownloadRequest {
	dest, _ := prefs.Get(config.PrefPath)
	cookies, _ := prefs.Get(config.PrefCookies)
	ffmpeg, _ := prefs.Get(config.PrefFFmpeg)

	return model.DownloadRequest{
		ID:          generateRequestID(),
		URL:         strings.TrimSpace(url),
		Kind:        kind,
		Destination: dest,
		CookieFile:  cookies,
		HelperTool:  ffmpeg,
	}
}

func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "dl-" + uuid.NewString()
	}
	return "dl-" + id.String()
}
