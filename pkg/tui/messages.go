package tui

import (
	"github.com/forecourt/forecourt-cli/pkg/models"
)

type sessionState int

const (
	dashboardView sessionState = iota
	settingsView
	creditorsView
)

// StatusMsg shows a transient message in the status bar.
type StatusMsg string

// ErrorStatusMsg shows a transient error message in the status bar.
type ErrorStatusMsg string

// SwitchViewMsg asks the app to route to another view.
type SwitchViewMsg struct {
	view sessionState
}

// statusExpiredMsg dismisses the status banner. The generation guards
// against an old timer clearing a newer message.
type statusExpiredMsg struct {
	generation int
}

// documentLoadedMsg delivers the settings document fetch result. When
// the fetch failed, doc is the empty default and fetchErr carries the
// reason for the banner.
type documentLoadedMsg struct {
	doc      *models.SettingsDocument
	fetchErr error
}

// salesLoadedMsg delivers the dashboard sales summary.
type salesLoadedMsg struct {
	points []models.SalesPoint
	err    error
}

// creditorsLoadedMsg delivers the creditor directory.
type creditorsLoadedMsg struct {
	creditors []models.Creditor
	err       error
}

// commitResultMsg reports the outcome of a gate commit that ran as a
// background command.
type commitResultMsg struct {
	err error
}
