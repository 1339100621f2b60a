package tui

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportlog/internal/adapters/tui/views"
	"sportlog/internal/domain"
	"sportlog/internal/domain/domaintest"
	"sportlog/internal/logging"
)

type memoryStorage struct {
	book    *domain.Logbook
	saved   int
	saveErr error
}

func (m *memoryStorage) Load(ctx context.Context) (*domain.Logbook, error) {
	return m.book, nil
}

func (m *memoryStorage) Save(ctx context.Context, book *domain.Logbook) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.book = book
	m.saved++
	return nil
}

func (m *memoryStorage) Close() error {
	return nil
}

// scriptedEditor returns a fixed text for every scratch file
type scriptedEditor struct {
	written string
	edited  string
}

func (e *scriptedEditor) OpenFile(path string) error { return nil }

func (e *scriptedEditor) Command(path string) (*exec.Cmd, error) {
	return exec.Command("true"), nil
}

func (e *scriptedEditor) WriteScratch(text string) (string, error) {
	e.written = text
	return "scratch.txt", nil
}

func (e *scriptedEditor) ReadScratch(path string) (string, error) {
	return e.edited, nil
}

// recordingLauncher remembers the opened paths
type recordingLauncher struct {
	opened []string
	err    error
}

func (l *recordingLauncher) Open(path string) error {
	if l.err != nil {
		return l.err
	}
	l.opened = append(l.opened, path)
	return nil
}

func newTestApp(t *testing.T) (*App, *memoryStorage, *scriptedEditor) {
	t.Helper()
	book := domaintest.NewLogbook()
	store := &memoryStorage{book: book}
	ed := &scriptedEditor{}
	app := NewApp(book, store, ed, &recordingLauncher{}, logging.Discard(), domaintest.NewFilter(domain.EntryKindExercise))
	t.Cleanup(app.Close)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app, store, ed
}

func TestApp_DeleteEntry(t *testing.T) {
	app, store, _ := newTestApp(t)

	app.Update(views.SwitchToConfirmDeleteMsg{
		Entry:   views.EntryRef{Kind: domain.EntryKindExercise, ID: 3},
		Summary: "exercise 3",
	})
	assert.Equal(t, ViewConfirmDelete, app.state)
	assert.Contains(t, app.View(), "exercise 3")

	app.Update(views.DeleteConfirmedMsg{Entry: views.EntryRef{Kind: domain.EntryKindExercise, ID: 3}})

	assert.Equal(t, ViewEntries, app.state)
	assert.False(t, app.book.Exercises.Contains(3))
	assert.Equal(t, 1, store.saved)
	assert.Equal(t, "Deleted exercise 3", app.entries.Message)
	ref, ok := app.entries.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, ref.ID)
}

func TestApp_DeleteUnknownEntry(t *testing.T) {
	app, store, _ := newTestApp(t)

	app.Update(views.DeleteConfirmedMsg{Entry: views.EntryRef{Kind: domain.EntryKindWeight, ID: 42}})

	assert.Equal(t, 0, store.saved)
	assert.True(t, app.entries.MessageErr)
	assert.Contains(t, app.entries.Message, "weight 42 not found")
}

func TestApp_SaveFailureIsReported(t *testing.T) {
	app, store, _ := newTestApp(t)
	store.saveErr = errors.New("disk full")

	app.Update(views.DeleteConfirmedMsg{Entry: views.EntryRef{Kind: domain.EntryKindExercise, ID: 1}})

	assert.True(t, app.entries.MessageErr)
	assert.Contains(t, app.entries.Message, "disk full")
}

func TestApp_EditComment(t *testing.T) {
	app, store, ed := newTestApp(t)
	ref := views.EntryRef{Kind: domain.EntryKindExercise, ID: 2}

	_, cmd := app.Update(views.EditCommentMsg{Entry: ref, Comment: "DummyExercise 2"})
	require.NotNil(t, cmd)
	assert.Equal(t, "DummyExercise 2", ed.written)

	ed.edited = "Windy ride"
	app.Update(commentEditedMsg{entry: ref, path: "scratch.txt"})

	e, ok := app.book.Exercises.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Windy ride", e.Comment)
	assert.Equal(t, 1, store.saved)
}

func TestApp_EditorFailureKeepsComment(t *testing.T) {
	app, store, ed := newTestApp(t)
	ed.edited = "ignored"

	app.Update(commentEditedMsg{
		entry: views.EntryRef{Kind: domain.EntryKindExercise, ID: 1},
		path:  "scratch.txt",
		err:   errors.New("exit status 1"),
	})

	e, _ := app.book.Exercises.ByID(1)
	assert.Equal(t, "DummyExercise 1", e.Comment)
	assert.Equal(t, 0, store.saved)
	assert.Contains(t, app.entries.Message, "Editor failed")
}

func TestApp_ApplyFilter(t *testing.T) {
	app, _, _ := newTestApp(t)

	app.Update(views.SwitchToFilterMsg{})
	assert.Equal(t, ViewFilter, app.state)

	criteria := domaintest.NewFilter(domain.EntryKindWeight)
	app.Update(views.FilterAppliedMsg{Criteria: criteria})

	assert.Equal(t, ViewEntries, app.state)
	assert.Equal(t, domain.EntryKindWeight, app.filter.Kind)
	assert.NotSame(t, criteria, app.filter)
	ref, ok := app.entries.Selected()
	require.True(t, ok)
	assert.Equal(t, views.EntryRef{Kind: domain.EntryKindWeight, ID: 2}, ref)
}

func TestApp_SportTypeChangesRebindFilter(t *testing.T) {
	app, _, _ := newTestApp(t)
	cycling, _ := app.book.SportTypes.ByID(1)
	app.filter.SportType = cycling

	renamed := cycling.Clone()
	renamed.Name = "Bike"
	app.book.SportTypes.Set(renamed)
	assert.Same(t, renamed, app.filter.SportType)

	app.book.SportTypes.RemoveByID(1)
	assert.Nil(t, app.filter.SportType)
}

func TestApp_CloseRemovesListeners(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Close()

	app.book.Weights.RemoveByID(1)
	assert.False(t, app.dirty)
}

func TestApp_HelpRoundTrip(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, ViewHelp, app.state)
	assert.Contains(t, app.View(), "Sportlog Help")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, ViewEntries, app.state)
}

func TestApp_OpenHRMFile(t *testing.T) {
	app, _, _ := newTestApp(t)
	launcher := app.launcher.(*recordingLauncher)

	// exercise 3 is selected first and has an HRM file
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, []string{"/hrm/03033001.hrm"}, launcher.opened)
	assert.Equal(t, "Opened /hrm/03033001.hrm", app.entries.Message)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	assert.Nil(t, cmd)
	assert.Equal(t, "No HRM file recorded", app.entries.Message)

	launcher.err = errors.New("HRM file not available")
	app.Update(views.OpenHRMMsg{Path: "/hrm/03033001.hrm"})
	assert.True(t, app.entries.MessageErr)
	assert.Len(t, launcher.opened, 1)
}
