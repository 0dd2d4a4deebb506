package tui

import (
	"github.com/MKhiriev/newslog-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type noticeMsg struct {
	notice models.Notice
}

type flowStartedMsg struct {
	label string
	run   func() (models.SyncReport, error)
}

type flowDoneMsg struct {
	label  string
	report models.SyncReport
	err    error
}

type settingsLoadedMsg struct {
	settings models.Settings
	err      error
}

type settingsSavedMsg struct {
	err error
}

type resetDoneMsg struct {
	what string
	err  error
}

type historyLoadedMsg struct {
	runs []models.SyncRun
	err  error
}

// runFlow asks the root model to run fn. The root starts it unless another
// flow is still running.
func runFlow(label string, fn func() (models.SyncReport, error)) tea.Cmd {
	return func() tea.Msg { return flowStartedMsg{label: label, run: fn} }
}

// execFlow runs the flow off the event loop and reports its outcome.
func execFlow(msg flowStartedMsg) tea.Cmd {
	return func() tea.Msg {
		report, err := msg.run()
		return flowDoneMsg{label: msg.label, report: report, err: err}
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
