// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/service"
	"github.com/MKhiriev/newslog-sync/internal/utils"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UploadModel asks for the path of a clippings export and uploads it.
type UploadModel struct {
	ctx    context.Context
	upload service.UploadService

	input  textinput.Model
	errMsg string
	result string
}

func NewUploadModel(ctx context.Context, upload service.UploadService) *UploadModel {
	input := textinput.New()
	input.Placeholder = "/media/Kindle/documents/" + utils.ClippingsFileName
	input.CharLimit = 1024
	input.Width = 60
	input.Focus()

	return &UploadModel{ctx: ctx, upload: upload, input: input}
}

func (m *UploadModel) Init() tea.Cmd {
	m.errMsg = ""
	m.result = ""
	return textinput.Blink
}

func (m *UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(flowDoneMsg); ok {
		if done.err == nil {
			m.result = "Uploaded " + done.report.Target
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageMenu)
		case key.Matches(keyMsg, keys.enter):
			p := strings.TrimSpace(m.input.Value())
			if p == "" {
				m.errMsg = "Enter the path of the clippings file."
				return m, nil
			}
			m.errMsg = ""
			m.result = ""
			return m, m.cmdUpload(p)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UploadModel) View() string {
	var b strings.Builder
	b.WriteString("File │ [")
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

	return renderPage("UPLOAD CLIPPINGS", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: upload")
}

func (m *UploadModel) cmdUpload(p string) tea.Cmd {
	ctx := m.ctx
	upload := m.upload

	return runFlow("Upload", func() (models.SyncReport, error) {
		return upload.UploadClippings(ctx, p)
	})
}
