package roster

import (
	"context"
	"sync"
)

// DeleteFlow is the two-step delete confirmation:
// idle -> pending(id) -> confirmed (deleted) or cancelled, both back to idle.
type DeleteFlow struct {
	editor *Editor

	mu      sync.Mutex
	pending string
	active  bool
}

// NewDeleteFlow creates an idle flow that deletes through editor
func NewDeleteFlow(editor *Editor) *DeleteFlow {
	return &DeleteFlow{editor: editor}
}

// Request marks id for deletion, replacing any earlier request
func (f *DeleteFlow) Request(id string) {
	f.mu.Lock()
	f.pending, f.active = id, true
	f.mu.Unlock()
}

// Pending returns the id awaiting confirmation
func (f *DeleteFlow) Pending() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending, f.active
}

// Cancel returns to idle without deleting
func (f *DeleteFlow) Cancel() {
	f.mu.Lock()
	f.pending, f.active = "", false
	f.mu.Unlock()
}

// Confirm deletes the pending id. The request is consumed whether or not
// the delete succeeds.
func (f *DeleteFlow) Confirm(ctx context.Context) error {
	f.mu.Lock()
	id, ok := f.pending, f.active
	f.pending, f.active = "", false
	f.mu.Unlock()

	if !ok {
		return ErrNothingPending
	}
	return f.editor.Delete(ctx, id)
}
