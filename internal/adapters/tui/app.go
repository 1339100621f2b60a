package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"sportlog/internal/adapters/tui/views"
	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
	"sportlog/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewEntries ViewState = iota
	ViewFilter
	ViewHelp
	ViewConfirmDelete
)

// App is the main TUI application model
type App struct {
	book     *domain.Logbook
	store    ports.Storage
	editor   ports.EditorOpener
	launcher ports.FileLauncher
	logger   *slog.Logger

	// filter is shared with the entry browser and kept consistent with the
	// sport-type graph by a listener
	filter *domain.FilterCriteria

	state      ViewState
	entries    *views.EntriesModel
	filterView *views.FilterModel
	help       *views.HelpModel
	confirm    *views.ConfirmDeleteModel

	dirty  bool
	detach []func()

	width  int
	height int
}

// NewApp creates a new TUI application over a loaded logbook.
// The editor and launcher may be nil, disabling comment editing and HRM files.
func NewApp(book *domain.Logbook, store ports.Storage, ed ports.EditorOpener, launcher ports.FileLauncher, logger *slog.Logger, filter *domain.FilterCriteria) *App {
	a := &App{
		book:       book,
		store:      store,
		editor:     ed,
		launcher:   launcher,
		logger:     logger,
		filter:     filter,
		state:      ViewEntries,
		filterView: views.NewFilterModel(book),
		help:       views.NewHelpModel(),
		confirm:    views.NewConfirmDeleteModel(),
	}
	a.entries = views.NewEntriesModel(book, filter)
	a.listen()
	return a
}

// listen marks the browser stale on every collection change
func (a *App) listen() {
	stale := func() { a.dirty = true }

	exID := a.book.Exercises.AddListener(func(*domain.Exercise) { stale() })
	noteID := a.book.Notes.AddListener(func(*domain.Note) { stale() })
	weightID := a.book.Weights.AddListener(func(*domain.Weight) { stale() })
	stID := a.book.SportTypes.AddListener(func(*domain.SportType) {
		domain.UpdateFilterReferences(a.book.SportTypes, a.filter)
		stale()
	})

	a.detach = []func(){
		func() { a.book.Exercises.RemoveListener(exID) },
		func() { a.book.Notes.RemoveListener(noteID) },
		func() { a.book.Weights.RemoveListener(weightID) },
		func() { a.book.SportTypes.RemoveListener(stID) },
	}
}

// Close unregisters the collection listeners
func (a *App) Close() {
	for _, fn := range a.detach {
		fn()
	}
	a.detach = nil
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.entries.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.update(msg)
	if a.dirty {
		a.dirty = false
		a.entries.Refresh()
	}
	return model, cmd
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.entries.SetSize(msg.Width, msg.Height)
		a.filterView.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToFilterMsg:
		a.state = ViewFilter
		a.filterView.Load(a.filter)
		return a, a.filterView.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToEntriesMsg:
		a.state = ViewEntries
		return a, nil

	case views.SwitchToConfirmDeleteMsg:
		a.state = ViewConfirmDelete
		a.confirm.SetTarget(msg.Entry, msg.Summary)
		return a, nil

	case views.FilterAppliedMsg:
		*a.filter = *msg.Criteria
		a.state = ViewEntries
		a.dirty = true
		return a, nil

	case views.DeleteConfirmedMsg:
		a.state = ViewEntries
		a.deleteEntry(msg.Entry)
		return a, nil

	case views.EditCommentMsg:
		return a, a.editComment(msg)

	case commentEditedMsg:
		a.finishEdit(msg)
		return a, nil

	case views.OpenHRMMsg:
		a.openHRM(msg.Path)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewEntries:
		_, cmd = a.entries.Update(msg)
	case ViewFilter:
		_, cmd = a.filterView.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	case ViewConfirmDelete:
		_, cmd = a.confirm.Update(msg)
	}

	return a, cmd
}

func (a *App) deleteEntry(ref views.EntryRef) {
	ctx := context.Background()
	result, err := commands.NewDeleteEntryCommand(a.book, ref.Kind, ref.ID).Execute(ctx)
	if err != nil {
		a.entries.SetMessage(err.Error(), true)
		return
	}
	if a.save(ctx) {
		a.entries.SetMessage(result.Message, false)
	}
}

type commentEditedMsg struct {
	entry views.EntryRef
	path  string
	err   error
}

func (a *App) editComment(msg views.EditCommentMsg) tea.Cmd {
	if a.editor == nil {
		a.entries.SetMessage("No editor configured", true)
		return nil
	}

	path, err := a.editor.WriteScratch(msg.Comment)
	if err != nil {
		a.entries.SetMessage(err.Error(), true)
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return commentEditedMsg{entry: msg.Entry, path: path, err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return commentEditedMsg{entry: msg.Entry, path: path, err: err}
	})
}

func (a *App) finishEdit(msg commentEditedMsg) {
	text, readErr := a.editor.ReadScratch(msg.path)
	if msg.err != nil {
		a.entries.SetMessage("Editor failed: "+msg.err.Error(), true)
		return
	}
	if readErr != nil {
		a.entries.SetMessage(readErr.Error(), true)
		return
	}

	ctx := context.Background()
	result, err := commands.NewSetCommentCommand(a.book, msg.entry.Kind, msg.entry.ID, text).Execute(ctx)
	if err != nil {
		a.entries.SetMessage(err.Error(), true)
		return
	}
	if a.save(ctx) {
		a.entries.SetMessage(result.Message, false)
	}
}

func (a *App) openHRM(path string) {
	if a.launcher == nil {
		a.entries.SetMessage("Opening HRM files is not supported", true)
		return
	}
	if err := a.launcher.Open(path); err != nil {
		a.logger.Warn("failed to open HRM file", "path", path, "error", err)
		a.entries.SetMessage(err.Error(), true)
		return
	}
	a.entries.SetMessage("Opened "+path, false)
}

// save persists the logbook, reporting failures in the browser
func (a *App) save(ctx context.Context) bool {
	if err := commands.NewSaveCommand(a.store, a.logger, a.book).Execute(ctx); err != nil {
		a.logger.Error("save failed", "error", err)
		a.entries.SetMessage(err.Error(), true)
		return false
	}
	return true
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewFilter:
		return a.filterView.View()
	case ViewHelp:
		return a.help.View()
	case ViewConfirmDelete:
		return a.confirm.View()
	default:
		return a.entries.View()
	}
}
