package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type syncModel struct {
	spinner spinner.Model
	running bool
	label   string
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{spinner: s}
}

func (m syncModel) start(label string) (syncModel, tea.Cmd) {
	m.running = true
	m.label = label
	return m, m.spinner.Tick
}

func (m syncModel) stop() syncModel {
	m.running = false
	m.label = ""
	return m
}

func (m syncModel) update(msg spinner.TickMsg) (syncModel, tea.Cmd) {
	if !m.running {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m syncModel) View() string {
	if !m.running {
		return ""
	}
	return m.spinner.View() + " " + m.label + "..."
}
