package ui

// Window
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 500
)

// Path labels
const (
	ShortPathLength = 25
)

// Layout sizing
const (
	ColumnMinWidth  float32 = 250
	URLEntryWidth   float32 = 250
	PreviewWidth    float32 = 520
	PreviewHeight   float32 = 400
	PrefsDialogW    float32 = 500
	PrefsDialogH    float32 = 300
	PreviewRowLimit         = 500
)

// File dialog filters
const (
	CookieFileExt     = ".txt"
	WindowsExecutable = ".exe"
)

// App preference keys (stored with the window toolkit, not in the
// location file)
const (
	AppPrefLanguage = "language"
	DefaultLanguage = "en"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	PreviewIndexFormat = "%d. %s"
)
