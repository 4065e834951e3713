package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyEnterURL         = "enter_url"
	KeyURLPlaceholder   = "url_placeholder"
	KeyDownload         = "download"
	KeyLinkType         = "link_type"
	KeyVideo            = "video"
	KeyPlaylist         = "playlist"
	KeyLocateDirectory  = "locate_directory"
	KeyLocateCookies    = "locate_cookies"
	KeyLocateFFmpeg     = "locate_ffmpeg"
	KeyRequired         = "required"
	KeyNoFolder         = "no_folder"
	KeyNoCookies        = "no_cookies"
	KeyNoFFmpeg         = "no_ffmpeg"
	KeyOpenFolder       = "open_folder"
	KeyPreview          = "preview"
	KeyPreferences      = "preferences"
	KeyLanguage         = "language"
	KeyFile             = "file"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyPrefsSaved       = "prefs_saved"
	KeyErrorOpenFolder  = "error_open_folder"
	KeyNotFFmpeg        = "not_ffmpeg"
	KeyListing          = "listing"
	KeyNoPlaylistInURL  = "no_playlist_in_url"
	KeyFreeSpace        = "free_space"
	KeyErrorSavingPrefs = "error_saving_prefs"
	KeyBusy             = "busy"
	KeyWantURL          = "want_url"
	KeyWantFolder       = "want_folder"
	KeyWantCookies      = "want_cookies"
	KeyWantFFmpeg       = "want_ffmpeg"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
		"ru": "Русский",
		"pt": "Português",
	}
}

// LanguageCodes returns the available language codes in a stable order
func (l *Localization) LanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.texts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "TubeDL",
		KeyEnterURL:         "Enter a URL",
		KeyURLPlaceholder:   "https://youtube.com/...",
		KeyDownload:         "Download",
		KeyLinkType:         "Link Type",
		KeyVideo:            "Video",
		KeyPlaylist:         "Playlist",
		KeyLocateDirectory:  "Locate directory",
		KeyLocateCookies:    "Locate Cookies",
		KeyLocateFFmpeg:     "Locate FFmpeg",
		KeyRequired:         "Required",
		KeyNoFolder:         "No Folder selected",
		KeyNoCookies:        "Cookies not found",
		KeyNoFFmpeg:         "FFmpeg not found",
		KeyOpenFolder:       "Open folder",
		KeyPreview:          "Preview playlist",
		KeyPreferences:      "Preferences",
		KeyLanguage:         "Language",
		KeyFile:             "File",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyPrefsSaved:       "Preferences saved",
		KeyErrorOpenFolder:  "Error opening folder",
		KeyNotFFmpeg:        "The selected file does not look like FFmpeg",
		KeyListing:          "Listing playlist...",
		KeyNoPlaylistInURL:  "The URL does not reference a playlist",
		KeyFreeSpace:        "free",
		KeyErrorSavingPrefs: "Error saving preferences",
		KeyBusy:             "A download is already in progress. Please wait for it to finish.",
		KeyWantURL:          "Please enter a valid URL.",
		KeyWantFolder:       "Please select a download folder.",
		KeyWantCookies:      "Please select a cookie file.",
		KeyWantFFmpeg:       "Please select the FFmpeg file.",
	}

	l.texts["fr"] = map[string]string{
		KeyAppTitle:         "TubeDL",
		KeyEnterURL:         "Entrez une URL",
		KeyDownload:         "Télécharger",
		KeyLinkType:         "Type de lien",
		KeyVideo:            "Vidéo",
		KeyPlaylist:         "Playlist",
		KeyLocateDirectory:  "Choisir le dossier",
		KeyLocateCookies:    "Choisir les cookies",
		KeyLocateFFmpeg:     "Choisir FFmpeg",
		KeyRequired:         "Requis",
		KeyNoFolder:         "Aucun dossier choisi",
		KeyNoCookies:        "Cookies introuvables",
		KeyNoFFmpeg:         "FFmpeg introuvable",
		KeyOpenFolder:       "Ouvrir le dossier",
		KeyPreview:          "Aperçu de la playlist",
		KeyPreferences:      "Préférences",
		KeyLanguage:         "Langue",
		KeyFile:             "Fichier",
		KeySave:             "Enregistrer",
		KeyCancel:           "Annuler",
		KeyPrefsSaved:       "Préférences enregistrées",
		KeyErrorOpenFolder:  "Erreur à l'ouverture du dossier",
		KeyNotFFmpeg:        "Le fichier choisi ne semble pas être FFmpeg",
		KeyListing:          "Lecture de la playlist...",
		KeyNoPlaylistInURL:  "L'URL ne désigne pas une playlist",
		KeyFreeSpace:        "libres",
		KeyErrorSavingPrefs: "Erreur d'enregistrement des préférences",
		KeyBusy:             "Un téléchargement est déjà en cours. Veuillez patienter.",
		KeyWantURL:          "Veuillez saisir une URL valide.",
		KeyWantFolder:       "Veuillez choisir un dossier de téléchargement.",
		KeyWantCookies:      "Veuillez choisir un fichier de cookies.",
		KeyWantFFmpeg:       "Veuillez choisir le fichier FFmpeg.",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "TubeDL",
		KeyEnterURL:         "Введите URL",
		KeyDownload:         "Скачать",
		KeyLinkType:         "Тип ссылки",
		KeyVideo:            "Видео",
		KeyPlaylist:         "Плейлист",
		KeyLocateDirectory:  "Выбрать папку",
		KeyLocateCookies:    "Выбрать cookies",
		KeyLocateFFmpeg:     "Выбрать FFmpeg",
		KeyRequired:         "Обязательно",
		KeyNoFolder:         "Папка не выбрана",
		KeyNoCookies:        "Cookies не найдены",
		KeyNoFFmpeg:         "FFmpeg не найден",
		KeyOpenFolder:       "Открыть папку",
		KeyPreview:          "Просмотр плейлиста",
		KeyPreferences:      "Настройки",
		KeyLanguage:         "Язык",
		KeyFile:             "Файл",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyPrefsSaved:       "Настройки сохранены",
		KeyErrorOpenFolder:  "Ошибка открытия папки",
		KeyNotFFmpeg:        "Выбранный файл не похож на FFmpeg",
		KeyListing:          "Загрузка списка...",
		KeyNoPlaylistInURL:  "URL не содержит плейлист",
		KeyFreeSpace:        "свободно",
		KeyErrorSavingPrefs: "Ошибка сохранения настроек",
		KeyBusy:             "Загрузка уже идёт. Дождитесь её завершения.",
		KeyWantURL:          "Введите корректный URL.",
		KeyWantFolder:       "Выберите папку для загрузки.",
		KeyWantCookies:      "Выберите файл cookies.",
		KeyWantFFmpeg:       "Выберите файл FFmpeg.",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "TubeDL",
		KeyEnterURL:         "Digite uma URL",
		KeyDownload:         "Baixar",
		KeyLinkType:         "Tipo de link",
		KeyVideo:            "Vídeo",
		KeyPlaylist:         "Playlist",
		KeyLocateDirectory:  "Escolher pasta",
		KeyLocateCookies:    "Escolher cookies",
		KeyLocateFFmpeg:     "Escolher FFmpeg",
		KeyRequired:         "Obrigatório",
		KeyNoFolder:         "Nenhuma pasta selecionada",
		KeyNoCookies:        "Cookies não encontrados",
		KeyNoFFmpeg:         "FFmpeg não encontrado",
		KeyOpenFolder:       "Abrir pasta",
		KeyPreview:          "Visualizar playlist",
		KeyPreferences:      "Preferências",
		KeyLanguage:         "Idioma",
		KeyFile:             "Arquivo",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyPrefsSaved:       "Preferências salvas",
		KeyErrorOpenFolder:  "Erro ao abrir pasta",
		KeyNotFFmpeg:        "O arquivo selecionado não parece ser o FFmpeg",
		KeyListing:          "Listando playlist...",
		KeyNoPlaylistInURL:  "A URL não contém uma playlist",
		KeyFreeSpace:        "livres",
		KeyErrorSavingPrefs: "Erro ao salvar preferências",
		KeyBusy:             "Um download já está em andamento. Aguarde a conclusão.",
		KeyWantURL:          "Digite uma URL válida.",
		KeyWantFolder:       "Selecione uma pasta de download.",
		KeyWantCookies:      "Selecione um arquivo de cookies.",
		KeyWantFFmpeg:       "Selecione o arquivo do FFmpeg.",
	}
}
