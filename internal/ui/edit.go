package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/five82/talentdesk/internal/logger"
	"github.com/five82/talentdesk/internal/recruit"
	"github.com/five82/talentdesk/internal/state"
)

const (
	editNotes = iota
	editScore
)

type roundSavedMsg struct {
	round recruit.InterviewRound
	err   error
}

func newEditInputs() [2]textinput.Model {
	notes := textinput.New()
	notes.Prompt = "notes: "
	notes.Placeholder = "interviewer notes"
	notes.CharLimit = 500

	score := textinput.New()
	score.Prompt = "score: "
	score.Placeholder = "-"
	score.CharLimit = 6
	score.Width = 6

	return [2]textinput.Model{notes, score}
}

// beginEdit starts editing the selected interview round.
func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	p := m.current()
	if p == nil || p.def.Resource() != recruit.InterviewRounds || m.fetcher == nil {
		return m, nil
	}
	id, ok := p.selectedID()
	if !ok {
		return m, nil
	}
	round, ok := findRound(m.snapshot, id)
	if !ok {
		return m, nil
	}

	draft := roundDraft{Notes: round.Notes}
	if round.Score.Valid {
		draft.Score = round.Score.Decimal.String()
	}
	m.edit.Begin(id, draft)
	m.editInput[editNotes].SetValue(draft.Notes)
	m.editInput[editScore].SetValue(draft.Score)
	for i := range m.editInput {
		m.editInput[i].CursorEnd()
	}
	m.editInput[editScore].Blur()
	m.editField = editNotes
	return m, m.editInput[editNotes].Focus()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.edit.Cancel()
		m.blurEditInputs()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.editInput[m.editField].Blur()
		m.editField = (m.editField + 1) % len(m.editInput)
		return m, m.editInput[m.editField].Focus()

	case key.Matches(msg, m.keys.Confirm):
		patch, err := parseDraft(*m.edit.Draft)
		if err != nil {
			m.setNotice(err.Error(), true)
			return m, nil
		}
		id, _, ok := m.edit.Commit()
		m.blurEditInputs()
		if !ok {
			return m, nil
		}
		m.setNotice(fmt.Sprintf("Saving interview #%d...", id), false)
		return m, saveRoundCmd(m, id, patch)
	}

	var cmd tea.Cmd
	m.editInput[m.editField], cmd = m.editInput[m.editField].Update(msg)
	m.edit.SetDraft(roundDraft{
		Notes: m.editInput[editNotes].Value(),
		Score: m.editInput[editScore].Value(),
	})
	return m, cmd
}

func (m *Model) blurEditInputs() {
	for i := range m.editInput {
		m.editInput[i].Blur()
	}
}

func (m Model) handleRoundSaved(msg roundSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("update interview round failed", zap.Error(msg.err))
		m.setNotice("Save failed: "+msg.err.Error(), true)
		return m, nil
	}
	m.log.Info("updated interview round",
		zap.Int64("id", msg.round.ID),
		zap.String("notes", logger.TruncateForLog(msg.round.Notes, 80)),
	)
	m.setNotice(fmt.Sprintf("Saved interview #%d", msg.round.ID), false)
	if m.store == nil {
		return m, nil
	}
	m.store.ApplyRound(msg.round)
	return m, fetchSnapshotCmd(m.store)
}

// parseDraft validates a draft. An empty score clears it.
func parseDraft(d roundDraft) (recruit.RoundPatch, error) {
	patch := recruit.RoundPatch{Notes: strings.TrimSpace(d.Notes)}
	raw := strings.TrimSpace(d.Score)
	if raw == "" {
		return patch, nil
	}
	score, err := decimal.NewFromString(raw)
	if err != nil {
		return patch, fmt.Errorf("invalid score %q", raw)
	}
	if score.IsNegative() {
		return patch, fmt.Errorf("score must not be negative")
	}
	patch.Score = decimal.NewNullDecimal(score)
	return patch, nil
}

func saveRoundCmd(m Model, id int64, patch recruit.RoundPatch) tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		round, err := fetcher.UpdateInterviewRound(ctx, id, patch)
		if err != nil {
			return roundSavedMsg{err: fmt.Errorf("update interview round %d: %w", id, err)}
		}
		return roundSavedMsg{round: round}
	}
}

func findRound(snap state.Snapshot, id int64) (recruit.InterviewRound, bool) {
	rows := state.Rows[recruit.InterviewRound](snap, recruit.InterviewRounds).Data
	i := slices.IndexFunc(rows, func(r recruit.InterviewRound) bool { return r.ID == id })
	if i < 0 {
		return recruit.InterviewRound{}, false
	}
	return rows[i], true
}

// renderEditRow renders the inputs in place of the edited row.
func (m Model) renderEditRow(width int) string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	notesWidth := max(width-56, 10)
	m.editInput[editNotes].Width = notesWidth
	line := m.editInput[editNotes].View() + bg.Spaces(2) + m.editInput[editScore].View() +
		bg.Spaces(2) + bg.Render("enter save · esc cancel", styles.FaintText)
	return bg.FillLine(line, width)
}
