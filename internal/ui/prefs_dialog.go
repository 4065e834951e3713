package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/tubedl/internal/config"
)

// PrefsDialog edits the three stored paths at once
type PrefsDialog struct {
	store        *config.PreferenceStore
	window       fyne.Window
	localization *Localization
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	folderEntry  *widget.Entry
	cookiesEntry *widget.Entry
	ffmpegEntry  *widget.Entry
}

// NewPrefsDialog creates a new preferences dialog. onSaved runs after a
// successful save.
func NewPrefsDialog(window fyne.Window, store *config.PreferenceStore, localization *Localization, onSaved func()) *PrefsDialog {
	pd := &PrefsDialog{
		store:        store,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	pd.createUI()
	return pd
}

// Show displays the dialog filled with the stored values
func (pd *PrefsDialog) Show() {
	pd.loadCurrent()
	pd.dialog.Show()
}

// createUI creates the dialog UI
func (pd *PrefsDialog) createUI() {
	t := pd.localization.GetText

	pd.folderEntry = widget.NewEntry()
	pd.cookiesEntry = widget.NewEntry()
	pd.ffmpegEntry = widget.NewEntry()

	browseFolder := widget.NewButton(t(KeyLocateDirectory), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			pd.folderEntry.SetText(uri.Path())
		}, pd.window)
	})

	form := widget.NewForm(
		widget.NewFormItem(t(KeyLocateDirectory), container.NewBorder(nil, nil, nil, browseFolder, pd.folderEntry)),
		widget.NewFormItem(t(KeyLocateCookies), pd.cookiesEntry),
		widget.NewFormItem(t(KeyLocateFFmpeg), pd.ffmpegEntry),
	)

	pd.dialog = dialog.NewCustomConfirm(
		t(KeyPreferences),
		t(KeySave),
		t(KeyCancel),
		form,
		pd.onSave,
		pd.window,
	)
	pd.dialog.Resize(fyne.NewSize(PrefsDialogW, PrefsDialogH))
}

// loadCurrent copies the stored values into the entries
func (pd *PrefsDialog) loadCurrent() {
	prefs := pd.store.Load()
	pd.folderEntry.SetText(prefs[config.PrefPath])
	pd.cookiesEntry.SetText(prefs[config.PrefCookies])
	pd.ffmpegEntry.SetText(prefs[config.PrefFFmpeg])
}

// values returns the entries as a partial preference update. Cleared
// entries are stored empty, which reads back as unset.
func (pd *PrefsDialog) values() config.Preferences {
	return config.Preferences{
		config.PrefPath:    pd.folderEntry.Text,
		config.PrefCookies: pd.cookiesEntry.Text,
		config.PrefFFmpeg:  pd.ffmpegEntry.Text,
	}
}

// onSave handles saving the preferences
func (pd *PrefsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := pd.store.Save(pd.values()); err != nil {
		log.Error().Str("op", "ui/prefs_dialog").Err(err).Msg("Failed to save preferences")
		dialog.ShowError(err, pd.window)
		return
	}

	if pd.onSaved != nil {
		pd.onSaved()
	}
}
