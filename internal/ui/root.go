package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/ytget/tubedl/internal/config"
	"github.com/ytget/tubedl/internal/download"
	"github.com/ytget/tubedl/internal/ffmpeg"
	"github.com/ytget/tubedl/internal/model"
	"github.com/ytget/tubedl/internal/platform"
)

// Starter accepts download requests from the window
type Starter interface {
	Start(req model.DownloadRequest) error
}

// RootUI represents the main window. It implements download.Display.
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	store        *config.PreferenceStore
	lister       *platform.CollectionLister
	policy       download.Policy
	localization *Localization
	svc          Starter

	kind     model.Kind
	busy     bool
	progress binding.Float
	status   binding.String

	mainMenu  *fyne.MainMenu
	prefsItem *fyne.MenuItem

	urlLabel     *widget.Label
	urlEntry     *widget.Entry
	kindLabel    *widget.Label
	kindRadio    *widget.RadioGroup
	downloadBtn  *widget.Button
	previewBtn   *widget.Button
	folderBtn    *widget.Button
	cookiesBtn   *widget.Button
	ffmpegBtn    *widget.Button
	openBtn      *widget.Button
	folderLabel  *widget.Label
	cookiesLabel *widget.Label
	ffmpegLabel  *widget.Label
}

var _ download.Display = (*RootUI)(nil)

// warningKeys maps validated fields to their localized warnings
var warningKeys = map[string]string{
	download.FieldURL:         KeyWantURL,
	download.FieldDestination: KeyWantFolder,
	download.FieldCookies:     KeyWantCookies,
	download.FieldFFmpeg:      KeyWantFFmpeg,
}

// NewRootUI creates and initializes the main UI. SetService must be called
// before the window is shown.
func NewRootUI(app fyne.App, window fyne.Window, store *config.PreferenceStore, policy download.Policy) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(app.Preferences().StringWithFallback(AppPrefLanguage, DefaultLanguage))

	ui := &RootUI{
		app:          app,
		window:       window,
		store:        store,
		lister:       platform.NewCollectionLister(),
		policy:       policy,
		localization: localization,
		kind:         model.KindSingle,
		progress:     binding.NewFloat(),
		status:       binding.NewString(),
	}

	ui.setupUI()
	return ui
}

// SetService connects the window to the download service
func (ui *RootUI) SetService(svc Starter) {
	ui.svc = svc
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.kindLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.kindRadio = widget.NewRadioGroup(nil, ui.onKindChanged)
	ui.kindRadio.Horizontal = true
	ui.kindRadio.Required = true

	ui.downloadBtn = widget.NewButton("", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.previewBtn = widget.NewButton("", ui.onPreviewClick)

	ui.folderBtn = widget.NewButton("", ui.onLocateFolder)
	ui.cookiesBtn = widget.NewButton("", ui.onLocateCookies)
	ui.ffmpegBtn = widget.NewButton("", ui.onLocateFFmpeg)
	ui.openBtn = widget.NewButton("", ui.onOpenFolder)
	ui.openBtn.Importance = widget.LowImportance

	ui.folderLabel = widget.NewLabel("")
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis
	ui.cookiesLabel = widget.NewLabel("")
	ui.cookiesLabel.Truncation = fyne.TextTruncateEllipsis
	ui.ffmpegLabel = widget.NewLabel("")
	ui.ffmpegLabel.Truncation = fyne.TextTruncateEllipsis

	progressBar := widget.NewProgressBarWithData(ui.progress)
	statusLabel := widget.NewLabelWithData(ui.status)
	statusLabel.Alignment = fyne.TextAlignCenter

	urlColumn := container.NewVBox(
		ui.urlLabel,
		container.NewGridWrap(fyne.NewSize(URLEntryWidth, ui.urlEntry.MinSize().Height), ui.urlEntry),
		ui.kindLabel,
		ui.kindRadio,
		container.NewHBox(ui.downloadBtn, ui.previewBtn),
	)

	pathsColumn := container.NewVBox(
		ui.folderBtn,
		ui.folderLabel,
		ui.cookiesBtn,
		ui.cookiesLabel,
		ui.ffmpegBtn,
		ui.ffmpegLabel,
		ui.openBtn,
	)

	columns := container.NewGridWithColumns(2,
		container.NewGridWrap(fyne.NewSize(ColumnMinWidth, urlColumn.MinSize().Height), urlColumn),
		pathsColumn,
	)

	content := container.NewBorder(nil, container.NewVBox(progressBar, statusLabel), nil, nil, container.NewPadded(columns))
	ui.window.SetContent(content)

	ui.refreshUITexts()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	ui.prefsItem = fyne.NewMenuItem(ui.localization.GetText(KeyPreferences), ui.onShowPreferences)
	ui.prefsItem.Disabled = ui.busy

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	names := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.LanguageCodes() {
		langCode := code
		langItem := fyne.NewMenuItem(names[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.mainMenu = fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), ui.prefsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(ui.mainMenu)
}

// onLanguageChange switches the UI language and remembers the choice
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.app.Preferences().SetString(AppPrefLanguage, ui.localization.GetCurrentLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.urlLabel.SetText(t(KeyEnterURL))
	ui.urlEntry.SetPlaceHolder(t(KeyURLPlaceholder))
	ui.kindLabel.SetText(t(KeyLinkType))
	ui.downloadBtn.SetText(t(KeyDownload))
	ui.previewBtn.SetText(t(KeyPreview))
	ui.folderBtn.SetText(t(KeyLocateDirectory))
	ui.cookiesBtn.SetText(t(KeyLocateCookies))
	ui.ffmpegBtn.SetText(t(KeyLocateFFmpeg))
	ui.openBtn.SetText(t(KeyOpenFolder))

	kind := ui.kind
	ui.kindRadio.Options = []string{t(KeyVideo), t(KeyPlaylist)}
	ui.kindRadio.SetSelected(ui.kindText(kind))
	ui.kindRadio.Refresh()

	ui.refreshPathLabels()
}

// kindText returns the radio label for kind in the current language
func (ui *RootUI) kindText(kind model.Kind) string {
	if kind == model.KindCollection {
		return ui.localization.GetText(KeyPlaylist)
	}
	return ui.localization.GetText(KeyVideo)
}

func (ui *RootUI) onKindChanged(selected string) {
	switch selected {
	case ui.localization.GetText(KeyPlaylist):
		ui.kind = model.KindCollection
	case ui.localization.GetText(KeyVideo):
		ui.kind = model.KindSingle
	}
}

// refreshPathLabels shows the stored paths in their shortened form
func (ui *RootUI) refreshPathLabels() {
	prefs := ui.store.Load()

	folder := ui.pathText(prefs, config.PrefPath, KeyNoFolder, true)
	if dir, ok := prefs.Get(config.PrefPath); ok {
		if free, err := platform.FreeSpace(dir); err == nil {
			folder += MiddleDotSeparator + humanize.Bytes(free) + " " + ui.localization.GetText(KeyFreeSpace)
		}
	}
	ui.folderLabel.SetText(folder)
	ui.cookiesLabel.SetText(ui.pathText(prefs, config.PrefCookies, KeyNoCookies, ui.policy.RequireCookies))
	ui.ffmpegLabel.SetText(ui.pathText(prefs, config.PrefFFmpeg, KeyNoFFmpeg, ui.policy.RequireFFmpeg))
}

// pathText returns the label for a stored path or the placeholder for an
// unset one
func (ui *RootUI) pathText(prefs config.Preferences, key, emptyKey string, required bool) string {
	if value, ok := prefs.Get(key); ok {
		return platform.ShortenPath(value, ShortPathLength)
	}
	text := ui.localization.GetText(emptyKey)
	if required {
		text += MiddleDotSeparator + ui.localization.GetText(KeyRequired)
	}
	return text
}

// savePref stores one preference and refreshes the path labels
func (ui *RootUI) savePref(key, value string) {
	if err := ui.store.Save(config.Preferences{key: value}); err != nil {
		log.Error().Str("op", "ui/save_pref").Str("key", key).Err(err).Msg("Failed to save preference")
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorSavingPrefs), err))
		return
	}
	ui.refreshPathLabels()
}

// onDownloadClick submits the current form to the download service
func (ui *RootUI) onDownloadClick() {
	if ui.svc == nil {
		return
	}

	req := download.NewRequest(ui.urlEntry.Text, ui.kind, ui.store.Load())
	if err := ui.svc.Start(req); err != nil {
		// The service has already told the user
		log.Debug().Str("op", "ui/download").Str("url", req.URL).Err(err).Msg("Request not started")
		return
	}
	log.Info().Str("op", "ui/download").Str("task", req.ID).Str("url", req.URL).Msg("Download started")
}

func (ui *RootUI) onLocateFolder() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.savePref(config.PrefPath, uri.Path())
	}, ui.window)
	if start := ui.folderPickerStart(); start != "" {
		if location, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			fd.SetLocation(location)
		}
	}
	fd.Show()
}

// folderPickerStart returns the saved folder, else the user's Downloads
// folder, else "" when neither exists
func (ui *RootUI) folderPickerStart() string {
	candidates := make([]string, 0, 2)
	if dir, ok := ui.store.Load().Get(config.PrefPath); ok {
		candidates = append(candidates, dir)
	}
	if dir, err := platform.GetHomeDownloadsDir(); err == nil {
		candidates = append(candidates, dir)
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

func (ui *RootUI) onLocateCookies() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		ui.savePref(config.PrefCookies, rc.URI().Path())
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{CookieFileExt}))
	fd.Show()
}

func (ui *RootUI) onLocateFFmpeg() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		path := rc.URI().Path()
		ui.savePref(config.PrefFFmpeg, path)
		go ui.checkFFmpeg(path)
	}, ui.window)
	if runtime.GOOS == "windows" {
		fd.SetFilter(storage.NewExtensionFileFilter([]string{WindowsExecutable}))
	}
	fd.Show()
}

// checkFFmpeg warns when path does not run as ffmpeg. The path is kept
// either way.
func (ui *RootUI) checkFFmpeg(path string) {
	version, err := ffmpeg.DetectVersion(context.Background(), path)
	if err != nil {
		log.Warn().Str("op", "ui/check_ffmpeg").Str("path", path).Err(err).Msg("Selected helper tool is not ffmpeg")
		ui.warn(ui.localization.GetText(KeyNotFFmpeg))
		return
	}
	log.Info().Str("op", "ui/check_ffmpeg").Str("version", version).Msg("FFmpeg located")
}

func (ui *RootUI) onOpenFolder() {
	dir, ok := ui.store.Load().Get(config.PrefPath)
	if !ok {
		ui.warn(ui.localization.GetText(KeyNoFolder))
		return
	}
	if err := platform.OpenFolder(dir); err != nil {
		log.Error().Str("op", "ui/open_folder").Str("dir", dir).Err(err).Msg("Failed to open folder")
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpenFolder), err))
	}
}

func (ui *RootUI) onPreviewClick() {
	ShowCollectionPreview(ui.window, ui.localization, ui.lister, ui.urlEntry.Text)
}

func (ui *RootUI) onShowPreferences() {
	if ui.busy {
		return
	}
	NewPrefsDialog(ui.window, ui.store, ui.localization, func() {
		ui.refreshPathLabels()
		ui.app.SendNotification(fyne.NewNotification(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyPrefsSaved)))
	}).Show()
}

func (ui *RootUI) showError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, ui.window)
	})
}

// SetControlsEnabled enables or disables every control that starts a
// download or changes the stored paths
func (ui *RootUI) SetControlsEnabled(enabled bool) {
	fyne.Do(func() {
		ui.busy = !enabled
		controls := []fyne.Disableable{
			ui.downloadBtn, ui.previewBtn, ui.urlEntry, ui.kindRadio,
			ui.folderBtn, ui.cookiesBtn, ui.ffmpegBtn, ui.openBtn,
		}
		for _, w := range controls {
			if enabled {
				w.Enable()
			} else {
				w.Disable()
			}
		}
		ui.prefsItem.Disabled = ui.busy
		ui.mainMenu.Refresh()
	})
}

// SetProgress updates the progress bar
func (ui *RootUI) SetProgress(fraction float64) {
	if err := ui.progress.Set(fraction); err != nil {
		log.Debug().Str("op", "ui/progress").Err(err).Msg("Failed to set progress")
	}
}

// SetStatus updates the status line under the progress bar
func (ui *RootUI) SetStatus(text string) {
	if err := ui.status.Set(text); err != nil {
		log.Debug().Str("op", "ui/status").Err(err).Msg("Failed to set status")
	}
}

// Warn shows a rejected request in the current language
func (ui *RootUI) Warn(err error) {
	ui.warn(ui.warningText(err))
}

// warningText localizes ErrBusy and validation errors
func (ui *RootUI) warningText(err error) string {
	if errors.Is(err, download.ErrBusy) {
		return ui.localization.GetText(KeyBusy)
	}
	var ve *download.ValidationError
	if errors.As(err, &ve) {
		if key, ok := warningKeys[ve.Field]; ok {
			return ui.localization.GetText(key)
		}
	}
	return download.WarningText(err)
}

// warn shows a blocking warning
func (ui *RootUI) warn(message string) {
	fyne.Do(func() {
		dialog.ShowInformation(download.TitleWarning, message, ui.window)
	})
}

// NotifySuccess reports a finished download
func (ui *RootUI) NotifySuccess(kind model.Kind) {
	message := download.SuccessMessage(kind)
	ui.app.SendNotification(fyne.NewNotification(download.TitleSuccess, message))
	fyne.Do(func() {
		dialog.ShowInformation(download.TitleSuccess, message, ui.window)
	})
}

// NotifyFailure reports a failed download
func (ui *RootUI) NotifyFailure(kind model.FailureKind, err error) {
	title, text := download.FailureMessage(kind, err)
	fyne.Do(func() {
		dialog.ShowInformation(title, text, ui.window)
	})
}
