package ui

// Package ui contains the Fyne-based desktop user interface for the player.
// It renders the controller's labels, wires buttons and menus to transport
// actions, and runs the controller's timers on the Fyne event loop. All UI
// strings are localized via Localization.
