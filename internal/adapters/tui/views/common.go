package views

import "sportlog/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// EntryRef identifies an entry across kinds
type EntryRef struct {
	Kind domain.EntryKind
	ID   int
}

// Messages for view switching
type SwitchToFilterMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToEntriesMsg struct{}

type SwitchToConfirmDeleteMsg struct {
	Entry   EntryRef
	Summary string
}

// FilterAppliedMsg carries the criteria accepted in the filter editor
type FilterAppliedMsg struct {
	Criteria *domain.FilterCriteria
}

// DeleteConfirmedMsg asks the app to delete an entry
type DeleteConfirmedMsg struct {
	Entry EntryRef
}

// EditCommentMsg asks the app to edit an entry comment in the external editor
type EditCommentMsg struct {
	Entry   EntryRef
	Comment string
}

// OpenHRMMsg asks the app to open a heart-rate monitor file
type OpenHRMMsg struct {
	Path string
}
