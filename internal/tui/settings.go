// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/service"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldUsername = iota
	fieldAPIKey
	fieldHighlightsFolder
	fieldBundleFolder
)

const (
	resetHighlights = "highlights"
	resetBundles    = "bundles"
)

// SettingsModel edits the identity and the vault folders and resets the
// sync history.
type SettingsModel struct {
	ctx      context.Context
	settings service.SettingsService

	inputs []textinput.Model
	focus  int

	loaded      models.Settings
	saving      bool
	status      string
	errMsg      string
	showError   bool
	confirm     confirmModel
	showConfirm bool
	pending     string
}

func NewSettingsModel(ctx context.Context, settings service.SettingsService) *SettingsModel {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		return in
	}

	username := newInput("username", 128)
	apiKey := newInput("api key", 256)
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.EchoCharacter = '*'

	m := &SettingsModel{
		ctx:      ctx,
		settings: settings,
		inputs: []textinput.Model{
			username,
			apiKey,
			newInput("Highlights", 512),
			newInput("Bundles", 512),
		},
	}
	m.inputs[fieldUsername].Focus()
	return m
}

func (m *SettingsModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return tea.Batch(textinput.Blink, m.cmdLoad())
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			m.showError = true
			return m, nil
		}
		m.loaded = msg.settings
		m.inputs[fieldUsername].SetValue(msg.settings.Username)
		m.inputs[fieldAPIKey].SetValue(msg.settings.APIKey)
		m.inputs[fieldHighlightsFolder].SetValue(msg.settings.OutputFolderPath)
		m.inputs[fieldBundleFolder].SetValue(msg.settings.BundleFolderPath)
		return m, nil

	case settingsSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			m.showError = true
			return m, nil
		}
		m.status = "Settings saved."
		return m, m.cmdLoad()

	case resetDoneMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			m.showError = true
			return m, nil
		}
		m.status = "Reset " + msg.what + " history."
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if m.showError {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.showError = false
		}
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.showConfirm = false
			return m, m.cmdReset(m.pending)
		case key.Matches(keyMsg, keys.no):
			m.showConfirm = false
			m.pending = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageMenu)
	case key.Matches(keyMsg, keys.tab):
		m.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.resetHistory):
		m.askReset(resetHighlights, "Reset highlight sync history? The next sync downloads everything.")
		return m, nil
	case key.Matches(keyMsg, keys.resetBundles):
		m.askReset(resetBundles, "Forget every downloaded bundle date?")
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.status = ""
		return m, m.cmdSave()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	if m.showError {
		return errorOverlayModel{message: m.errMsg}.View()
	}
	if m.showConfirm {
		return m.confirm.View()
	}

	labels := []string{"Username", "API key", "Highlights folder", "Bundle folder"}

	var b strings.Builder
	b.WriteString("Field              │ Value\n")
	b.WriteString("───────────────────┼────────────────────────────────────────────\n")
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("%-18s │ [", labels[i]))
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	b.WriteString("\nLast highlights sync │ ")
	b.WriteString(valueOrDash(m.loaded.LastSyncDate))
	b.WriteString(fmt.Sprintf("\nDownloaded bundles   │ %d dates\n", len(m.loaded.DownloadedDates)))

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: save │ ctrl+r: reset highlights │ ctrl+b: reset bundles")
}

func (m *SettingsModel) askReset(what, question string) {
	m.pending = what
	m.confirm = confirmModel{message: question}
	m.showConfirm = true
}

func (m *SettingsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	settings := m.settings

	return func() tea.Msg {
		s, err := settings.Get(ctx)
		return settingsLoadedMsg{settings: s, err: err}
	}
}

func (m *SettingsModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	settings := m.settings
	identity := models.Identity{
		Username: m.inputs[fieldUsername].Value(),
		APIKey:   m.inputs[fieldAPIKey].Value(),
	}
	highlights := m.inputs[fieldHighlightsFolder].Value()
	bundles := m.inputs[fieldBundleFolder].Value()

	return func() tea.Msg {
		if err := settings.SetIdentity(ctx, identity); err != nil {
			return settingsSavedMsg{err: err}
		}
		if err := settings.SetOutputFolder(ctx, highlights); err != nil {
			return settingsSavedMsg{err: err}
		}
		return settingsSavedMsg{err: settings.SetBundleFolder(ctx, bundles)}
	}
}

func (m *SettingsModel) cmdReset(what string) tea.Cmd {
	ctx := m.ctx
	settings := m.settings

	return func() tea.Msg {
		var err error
		if what == resetHighlights {
			err = settings.ResetHighlightHistory(ctx)
		} else {
			err = settings.ResetBundleHistory(ctx)
		}
		return resetDoneMsg{what: what, err: err}
	}
}

func (m *SettingsModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SettingsModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
