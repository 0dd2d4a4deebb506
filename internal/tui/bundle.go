// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/newslog-sync/internal/service"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BundleModel asks for a calendar date and downloads its daily bundles.
// The input starts with today's date.
type BundleModel struct {
	ctx    context.Context
	bundle service.BundleService
	now    func() time.Time

	input  textinput.Model
	errMsg string
	result string
}

func NewBundleModel(ctx context.Context, bundle service.BundleService, now func() time.Time) *BundleModel {
	input := textinput.New()
	input.Placeholder = models.DateLayout
	input.CharLimit = len(models.DateLayout)
	input.Width = 12
	input.Focus()

	return &BundleModel{ctx: ctx, bundle: bundle, now: now, input: input}
}

func (m *BundleModel) Init() tea.Cmd {
	if m.input.Value() == "" {
		m.input.SetValue(m.now().Format(models.DateLayout))
	}
	m.errMsg = ""
	m.result = ""
	return textinput.Blink
}

func (m *BundleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(flowDoneMsg); ok {
		if done.err == nil {
			m.result = done.report.Target + ": " + formatReport(done.report)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageMenu)
		case key.Matches(keyMsg, keys.enter):
			date, errMsg := validateDate(strings.TrimSpace(m.input.Value()))
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}
			m.errMsg = ""
			m.result = ""
			return m, m.cmdDownload(date)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *BundleModel) View() string {
	var b strings.Builder
	b.WriteString("Date │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.result != "" {
		b.WriteString("\n")
		b.WriteString(m.result)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("DAILY BUNDLE", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: download")
}

func (m *BundleModel) cmdDownload(date string) tea.Cmd {
	ctx := m.ctx
	bundle := m.bundle

	return runFlow("Bundle "+date, func() (models.SyncReport, error) {
		return bundle.DownloadDailyBundle(ctx, date)
	})
}
