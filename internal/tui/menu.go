package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/service"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	page  string
}

type MenuModel struct {
	ctx        context.Context
	highlights service.HighlightsService

	items []menuItem
	idx   int
	last  string
}

func NewMenuModel(ctx context.Context, highlights service.HighlightsService) *MenuModel {
	return &MenuModel{
		ctx:        ctx,
		highlights: highlights,
		items: []menuItem{
			{title: "Upload clippings", page: pageUpload},
			{title: "Download highlights"},
			{title: "Download daily bundle", page: pageBundle},
			{title: "Settings", page: pageSettings},
			{title: "Sync history", page: pageHistory},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(flowDoneMsg); ok {
		if done.err == nil {
			m.last = done.label + ": " + formatReport(done.report)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item := m.items[m.idx]
		if item.page != "" {
			return m, navigate(item.page)
		}
		return m, m.cmdSyncHighlights()
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("#")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // selection marker and space

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.last != "" {
		b.WriteString("Last run: ")
		b.WriteString(m.last)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage("NEWSLOG SYNC", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ c: copy folder path │ v: version")
}

func (m *MenuModel) cmdSyncHighlights() tea.Cmd {
	ctx := m.ctx
	highlights := m.highlights

	return runFlow("Highlights", func() (models.SyncReport, error) {
		return highlights.SyncHighlights(ctx)
	})
}
