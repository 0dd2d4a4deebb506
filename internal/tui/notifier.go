// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	"github.com/MKhiriev/newslog-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Notifier delivers service notices to the running program, where they are
// shown in the status line. Notices sent while no program runs are dropped.
type Notifier struct {
	mu      sync.Mutex
	program *tea.Program
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

// Notify implements service.Notifier.
func (n *Notifier) Notify(notice models.Notice) {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()

	if p != nil {
		p.Send(noticeMsg{notice: notice})
	}
}
