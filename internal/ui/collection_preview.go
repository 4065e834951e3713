package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/tubedl/internal/model"
	"github.com/ytget/tubedl/internal/platform"
)

// ShowCollectionPreview lists the playlist behind rawURL in a dialog. The
// listing runs in the background behind a spinner.
func ShowCollectionPreview(window fyne.Window, localization *Localization, lister *platform.CollectionLister, rawURL string) {
	if _, err := platform.ExtractPlaylistID(rawURL); err != nil {
		dialog.ShowInformation(localization.GetText(KeyPreview), localization.GetText(KeyNoPlaylistInURL), window)
		return
	}

	spinner := widget.NewProgressBarInfinite()
	waiting := dialog.NewCustomWithoutButtons(localization.GetText(KeyListing), spinner, window)
	waiting.Show()

	go func() {
		collection, err := lister.List(context.Background(), rawURL)
		fyne.Do(func() {
			waiting.Hide()
			if err != nil {
				log.Error().Str("op", "ui/preview").Str("url", rawURL).Err(err).Msg("Failed to list collection")
				dialog.ShowError(err, window)
				return
			}
			showCollection(window, localization, collection)
		})
	}()
}

// showCollection shows the entries of collection in a scrollable list
func showCollection(window fyne.Window, localization *Localization, collection *model.Collection) {
	lines := previewLines(collection, PreviewRowLimit)

	list := widget.NewList(
		func() int {
			return len(lines)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(lines[id])
		},
	)

	title := fmt.Sprintf("%s (%d)", localization.GetText(KeyPreview), collection.Len())
	d := dialog.NewCustom(title, localization.GetText(KeyCancel), container.NewScroll(list), window)
	d.Resize(fyne.NewSize(PreviewWidth, PreviewHeight))
	d.Show()
}

// previewLines formats at most limit entries as "N. Title". Entries past
// the limit collapse into a trailing "..." line.
func previewLines(collection *model.Collection, limit int) []string {
	if collection == nil {
		return nil
	}
	lines := make([]string, 0, min(collection.Len(), limit)+1)
	for i, entry := range collection.Entries {
		if i == limit {
			lines = append(lines, platform.PathEllipsis)
			break
		}
		title := entry.Title
		if title == "" {
			title = entry.ID
		}
		lines = append(lines, fmt.Sprintf(PreviewIndexFormat, entry.Index, title))
	}
	return lines
}
