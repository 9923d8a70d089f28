package table

// EditState tracks the single row being edited inline by a list and its
// draft. It is owned by the list that renders the rows and passed down to
// row renderers by value.
type EditState[ID comparable, D any] struct {
	EditingRowID *ID
	Draft        *D
}

// Editing reports whether any row is being edited.
func (s EditState[ID, D]) Editing() bool {
	return s.EditingRowID != nil
}

// IsEditing reports whether id is the row being edited.
func (s EditState[ID, D]) IsEditing(id ID) bool {
	return s.EditingRowID != nil && *s.EditingRowID == id
}

// Begin starts editing id with an initial draft, discarding any other draft.
func (s *EditState[ID, D]) Begin(id ID, draft D) {
	s.EditingRowID = &id
	s.Draft = &draft
}

// SetDraft replaces the draft of the row being edited. It is a no-op when
// nothing is being edited.
func (s *EditState[ID, D]) SetDraft(draft D) {
	if s.EditingRowID == nil {
		return
	}
	s.Draft = &draft
}

// Commit ends editing and returns the edited row and its draft.
func (s *EditState[ID, D]) Commit() (ID, D, bool) {
	var (
		id    ID
		draft D
	)
	if s.EditingRowID == nil || s.Draft == nil {
		return id, draft, false
	}
	id, draft = *s.EditingRowID, *s.Draft
	s.Cancel()
	return id, draft, true
}

// Cancel ends editing and drops the draft.
func (s *EditState[ID, D]) Cancel() {
	s.EditingRowID = nil
	s.Draft = nil
}
