package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/ytget/tubedl/internal/model"
	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultListTimeout = 60 * time.Second
)

// URL parameters
const (
	PlaylistParam = "list"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s&list=%s"
)

// CollectionLister lists the entries of a playlist before downloading it
type CollectionLister struct {
	timeout time.Duration
}

// NewCollectionLister creates a new lister
func NewCollectionLister() *CollectionLister {
	return &CollectionLister{
		timeout: DefaultListTimeout,
	}
}

// SetTimeout sets the timeout for listing operations
func (c *CollectionLister) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// List fetches the entries of the playlist referenced by rawURL
func (c *CollectionLister) List(ctx context.Context, rawURL string) (*model.Collection, error) {
	playlistID, err := ExtractPlaylistID(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	log.Debug().Str("op", "platform/list").Str("playlist", playlistID).Msg("Listing collection")

	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	collection := &model.Collection{ID: playlistID, URL: rawURL}
	for _, it := range items {
		collection.AddEntry(&model.CollectionEntry{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID, playlistID),
		})
	}
	return collection, nil
}

// ExtractPlaylistID returns the value of the "list" query parameter
func ExtractPlaylistID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid playlist URL %q: %w", rawURL, err)
	}
	id := u.Query().Get(PlaylistParam)
	if id == "" {
		return "", fmt.Errorf("could not extract playlist ID from URL: %s", rawURL)
	}
	return id, nil
}
