package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 220
)

// Dialog sizing
const (
	DialogWidth  float32 = 640
	DialogHeight float32 = 480

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 420
)

// Progress bar
const (
	// minProgressMax is the bar bound used while the track length is unknown
	minProgressMax = 1.0
)

// Text fragments
const (
	ExtensionSeparator = ", "
)
