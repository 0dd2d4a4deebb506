// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/newslog-sync/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	infoPrefix    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("✓")
	warningPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("!")
	errorPrefix   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("✗")
)

// LineNotifier prints every notice as one line to the wrapped writer. It is
// used by the non-interactive actions in place of the TUI status line.
type LineNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewLineNotifier(out io.Writer) *LineNotifier {
	return &LineNotifier{out: out}
}

// Notify implements service.Notifier.
func (n *LineNotifier) Notify(notice models.Notice) {
	var prefix string
	switch notice.Level {
	case models.NoticeError:
		prefix = errorPrefix
	case models.NoticeWarning:
		prefix = warningPrefix
	default:
		prefix = infoPrefix
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s %s\n", prefix, notice.Message)
}
