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
	tea "github.com/charmbracelet/bubbletea"
)

const historyLimit = 20

// HistoryModel lists the most recent sync runs.
type HistoryModel struct {
	ctx      context.Context
	settings service.SettingsService

	runs    []models.SyncRun
	loading bool
	errMsg  string
}

func NewHistoryModel(ctx context.Context, settings service.SettingsService) *HistoryModel {
	return &HistoryModel{ctx: ctx, settings: settings}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.runs = msg.runs
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu)
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdLoad()
		}
	}

	return m, nil
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.errMsg != "":
		b.WriteString("Error: ")
		b.WriteString(m.errMsg)
	case len(m.runs) == 0:
		b.WriteString("No sync runs yet.")
	default:
		b.WriteString(fmt.Sprintf("%-19s │ %-10s │ %-16s │ %-9s │ %5s │ %5s\n", "Started", "Kind", "Target", "Status", "OK", "Fail"))
		b.WriteString(strings.Repeat("─", 80))
		b.WriteString("\n")
		for _, run := range m.runs {
			b.WriteString(fmt.Sprintf("%-19s │ %-10s │ %-16s │ %-9s │ %5d │ %5d\n",
				run.StartedAt.Local().Format("2006-01-02 15:04:05"),
				run.Kind,
				fitText(valueOrDash(run.Target), 16),
				run.Status,
				run.Succeeded,
				run.Failed,
			))
		}
	}

	return renderPage("SYNC HISTORY", strings.TrimRight(b.String(), "\n"), "esc: back │ r: refresh")
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	settings := m.settings

	return func() tea.Msg {
		runs, err := settings.History(ctx, historyLimit)
		return historyLoadedMsg{runs: runs, err: err}
	}
}
