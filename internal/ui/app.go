package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/talentdesk/internal/prefs"
	"github.com/five82/talentdesk/internal/recruit"
	"github.com/five82/talentdesk/internal/state"
	"github.com/five82/talentdesk/internal/table"
	"github.com/five82/talentdesk/internal/toolbar"
	"github.com/five82/talentdesk/internal/views"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   recruit.Fetcher
	Store     *state.Store
	Views     []views.Definition
	Prefs     prefs.Prefs
	PrefsPath string
	ExportDir string
	PollTick  time.Duration
	Logger    *zap.Logger

	// ToolbarOptions are passed to every view's toolbar.
	ToolbarOptions []toolbar.Option
}

// roundDraft is the editable part of an interview round.
type roundDraft struct {
	Notes string
	Score string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	fetcher   recruit.Fetcher
	store     *state.Store
	log       *zap.Logger
	prefs     prefs.Prefs
	prefsPath string
	exportDir string
	pollTick  time.Duration
	now       func() time.Time

	theme    Theme
	keys     keyMap
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	snapshot    state.Snapshot
	lastUpdated time.Time

	panes  []pane
	active int

	edit      table.EditState[int64, roundDraft]
	editInput [2]textinput.Model
	editField int

	// notice is a transient message shown in the header.
	notice      string
	noticeError bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	defs := opts.Views
	if len(defs) == 0 {
		defs = views.All()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	m := Model{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		store:     opts.Store,
		log:       log,
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
		exportDir: opts.ExportDir,
		pollTick:  pollTick,
		now:       time.Now,
		theme:     GetTheme(opts.Prefs.Theme),
		keys:      DefaultKeyMap(),
		spinner:   sp,
		panes:     make([]pane, 0, len(defs)),
		editInput: newEditInputs(),
	}
	for _, def := range defs {
		p := newPane(def, opts.ToolbarOptions...)
		if opt := opts.Prefs.SortFor(string(def.Resource())); opt != "" {
			p.bar.SelectSort(opt)
		}
		m.panes = append(m.panes, p)
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	m.syncPanes()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = m.now()
		m.syncPanes()
		return m, nil

	case toolbar.CommitMsg:
		var cmds []tea.Cmd
		for i := range m.panes {
			var cmd tea.Cmd
			m.panes[i].bar, cmd = m.panes[i].bar.Update(msg)
			cmds = append(cmds, cmd)
		}
		m.syncPanes()
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case roundSavedMsg:
		return m.handleRoundSaved(msg)

	case exportedMsg:
		if msg.err != nil {
			m.log.Warn("export failed", zap.String("resource", string(msg.resource)), zap.Error(msg.err))
			m.setNotice("Export failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.log.Info("exported view",
			zap.String("resource", string(msg.resource)),
			zap.String("path", msg.path),
			zap.Int("rows", msg.rows),
		)
		m.setNotice("Exported "+msg.path, false)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.edit.Editing() {
		return m.handleEditKey(msg)
	}
	p := m.current()
	if p == nil {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	if p.bar.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()

	case key.Matches(msg, m.keys.NextView):
		m.switchPane(1)

	case key.Matches(msg, m.keys.PrevView):
		m.switchPane(-1)

	case key.Matches(msg, m.keys.Search):
		return m, p.bar.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		p.bar.ClearSearch()
		m.notice = ""

	case key.Matches(msg, m.keys.CycleSort):
		if !p.bar.Config().Sort {
			return m, nil
		}
		p.bar.CycleSort()
		m.prefs = m.prefs.WithSort(string(p.def.Resource()), p.bar.SortOption())
		m.savePrefs()

	case key.Matches(msg, m.keys.CycleFilter):
		p.cyclePreset()

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd(*p)

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()

	case key.Matches(msg, m.keys.Up):
		p.move(-1)
	case key.Matches(msg, m.keys.Down):
		p.move(1)
	case key.Matches(msg, m.keys.Top):
		p.selected = 0
		p.clampSelection()
	case key.Matches(msg, m.keys.Bottom):
		p.selected = len(p.proj.Rows) - 1
		p.clampSelection()
	case key.Matches(msg, m.keys.PageUp):
		p.move(-m.bodyHeight())
	case key.Matches(msg, m.keys.PageDown):
		p.move(m.bodyHeight())
	}

	m.syncPanes()
	return m, nil
}

// handleSearchKey routes keys to the focused search field. Enter applies
// the search at once; esc leaves the field and lets the pending search
// settle on its own.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.current()
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		p.bar.Flush()
		p.bar.Blur()
	case key.Matches(msg, m.keys.Cancel):
		p.bar.Blur()
	default:
		var cmd tea.Cmd
		p.bar, cmd = p.bar.Update(msg)
		m.syncPanes()
		return m, cmd
	}
	m.syncPanes()
	return m, nil
}

func (m *Model) current() *pane {
	if m.active < 0 || m.active >= len(m.panes) {
		return nil
	}
	return &m.panes[m.active]
}

func (m *Model) switchPane(delta int) {
	n := len(m.panes)
	if n == 0 {
		return
	}
	if p := m.current(); p != nil {
		p.bar.Blur()
	}
	m.active = ((m.active+delta)%n + n) % n
	m.notice = ""
	m.syncPanes()
}

// syncPanes refreshes the projection of the active pane. Inactive panes
// are recomputed when they become active.
func (m *Model) syncPanes() {
	if p := m.current(); p != nil {
		p.sync(m.snapshot)
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

func (m *Model) setNotice(text string, isError bool) {
	m.notice = text
	m.noticeError = isError
}

// bodyHeight is the number of rows visible in the table body.
func (m Model) bodyHeight() int {
	// header, tabs, command bar, box borders, toolbar line, column header
	return max(m.height-7, 1)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderPane())
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
