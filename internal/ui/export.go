package ui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/talentdesk/internal/export"
	"github.com/five82/talentdesk/internal/recruit"
)

type exportedMsg struct {
	resource recruit.Resource
	path     string
	rows     int
	err      error
}

// exportCmd writes the rows currently visible in p to an xlsx file.
func (m Model) exportCmd(p pane) tea.Cmd {
	if !p.proj.Loaded {
		return func() tea.Msg {
			return exportedMsg{resource: p.def.Resource(), err: fmt.Errorf("%s not loaded yet", p.def.Title())}
		}
	}
	res := p.def.Resource()
	path := filepath.Join(m.exportDir, export.FileName(string(res), m.now()))
	sheet := export.FromProjection(p.def.Title(), p.proj)
	return func() tea.Msg {
		if err := export.SaveFile(path, sheet); err != nil {
			return exportedMsg{resource: res, err: err}
		}
		return exportedMsg{resource: res, path: path, rows: len(sheet.Rows)}
	}
}
