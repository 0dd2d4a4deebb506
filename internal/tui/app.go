package tui

import (
	"path/filepath"

	"github.com/MKhiriev/newslog-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) owns the status line: notices, the running-flow spinner and the
// folder of the last finished download
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentPage string

	buildInfo models.AppBuildInfo
	vaultRoot string

	sync       syncModel
	notice     models.Notice
	lastFolder string
	haveFolder bool

	writeClipboard func(string) error

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, vaultRoot string) RootModel {
	return RootModel{
		pages:          pages,
		current:        pages[startPage],
		currentPage:    startPage,
		buildInfo:      buildInfo,
		vaultRoot:      vaultRoot,
		sync:           newSyncModel(),
		writeClipboard: clipboard.WriteAll,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global hotkeys.
		if key.Matches(msg, keys.quit) {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if r.currentPage == pageMenu {
			switch {
			case key.Matches(msg, keys.version):
				r.showBuildInfo = true
				return r, nil
			case key.Matches(msg, keys.copy):
				r.copyLastFolder()
				return r, nil
			}
		}

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.currentPage = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case noticeMsg:
		r.notice = msg.notice
		return r, nil

	case flowStartedMsg:
		// one flow at a time
		if r.sync.running {
			r.notice = models.Notice{Level: models.NoticeWarning, Message: "Wait for " + r.sync.label + " to finish."}
			return r, nil
		}
		var cmd tea.Cmd
		r.sync, cmd = r.sync.start(msg.label)
		return r, tea.Batch(cmd, execFlow(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		r.sync, cmd = r.sync.update(msg)
		return r, cmd

	case flowDoneMsg:
		r.sync = r.sync.stop()
		if msg.err == nil && msg.report.Succeeded > 0 {
			r.lastFolder = msg.report.Folder
			r.haveFolder = true
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentPage] = updated
	return r, cmd
}

func (r *RootModel) copyLastFolder() {
	if !r.haveFolder {
		r.notice = models.Notice{Level: models.NoticeWarning, Message: "Nothing downloaded yet."}
		return
	}

	p := filepath.Join(r.vaultRoot, filepath.FromSlash(r.lastFolder))
	if err := r.writeClipboard(p); err != nil {
		r.notice = models.Notice{Level: models.NoticeError, Message: "Copy failed: " + err.Error()}
		return
	}
	r.notice = models.Notice{Level: models.NoticeInfo, Message: "Copied " + p}
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	page := renderPage("NEWSLOG SYNC", "", "")
	if r.current != nil {
		page = r.current.View()
	}

	status := renderNotice(r.notice)
	if r.sync.running {
		status = r.sync.View()
	}
	if status != "" {
		page += "\n\n  " + status
	}

	return appStyle.Render(page)
}
