package roster

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/remote"
)

// Credentials reports the stored bearer credential, if any.
// *session.Holder satisfies it.
type Credentials interface {
	Token() (string, bool)
}

// State is the editor modal state
type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Mode says what an open editor will do on submit
type Mode int

const (
	ModeNone Mode = iota
	ModeCreating
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	default:
		return "none"
	}
}

// Editor performs guarded writes against the remote roster and keeps the
// directory in step. It also carries the create/edit form state:
// closed -> open -> submitting -> closed, falling back to open on failure.
type Editor struct {
	creds  Credentials
	client remote.Client
	dir    *Directory
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	mode    Mode
	draft   model.Player
	message string
}

// NewEditor creates a closed editor
func NewEditor(creds Credentials, client remote.Client, dir *Directory, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Editor{
		creds:  creds,
		client: client,
		dir:    dir,
		logger: logger,
	}
}

// Form state

// OpenCreate opens the form with an empty draft
func (e *Editor) OpenCreate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateOpen
	e.mode = ModeCreating
	e.draft = model.Player{}
	e.message = ""
}

// OpenEdit opens the form on a copy of an existing player
func (e *Editor) OpenEdit(p model.Player) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateOpen
	e.mode = ModeEditing
	e.draft = p
	e.message = ""
}

// Close discards the draft
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateClosed
	e.mode = ModeNone
	e.draft = model.Player{}
}

// State returns the current form state
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Mode returns what the open form is for
func (e *Editor) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Draft returns a copy of the values entered so far
func (e *Editor) Draft() model.Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Message returns the last outcome shown to the user
func (e *Editor) Message() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message
}

// UpdateDraft edits the draft in place; it is ignored unless the form is open
func (e *Editor) UpdateDraft(fn func(*model.Player)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateOpen {
		return
	}
	fn(&e.draft)
}

// Submit sends the draft. On success the form closes; on failure it stays
// open with the draft intact and Message describing the problem.
func (e *Editor) Submit(ctx context.Context) error {
	e.mu.Lock()
	switch e.state {
	case StateClosed:
		e.mu.Unlock()
		return ErrNotOpen
	case StateSubmitting:
		e.mu.Unlock()
		return ErrSubmitting
	}
	e.state = StateSubmitting
	mode, draft := e.mode, e.draft
	e.mu.Unlock()

	var (
		err error
		msg string
	)
	if mode == ModeEditing {
		_, err = e.Update(ctx, draft.ID, draft)
		msg = MsgUpdated
	} else {
		_, err = e.Create(ctx, draft)
		msg = MsgCreated
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = StateOpen
		e.message = UserMessage(err)
		return err
	}
	e.state = StateClosed
	e.mode = ModeNone
	e.draft = model.Player{}
	e.message = msg
	return nil
}

// Writes

func (e *Editor) token() (string, error) {
	token, ok := e.creds.Token()
	if !ok {
		return "", model.ErrUnauthorized
	}
	return token, nil
}

// Create sends a new player and refreshes the directory from the server
func (e *Editor) Create(ctx context.Context, draft model.Player) (model.Player, error) {
	token, err := e.token()
	if err != nil {
		return model.Player{}, err
	}

	draft.ID = ""
	if err := draft.Validate(); err != nil {
		return model.Player{}, err
	}

	created, err := e.client.CreatePlayer(ctx, token, draft)
	if err != nil {
		return model.Player{}, fmt.Errorf("create player: %w", err)
	}

	e.logger.Info("player created", slog.String("id", created.ID), slog.String("nombre", created.Nombre))
	e.refresh(ctx)
	return created, nil
}

// Update replaces the whole record stored under id
func (e *Editor) Update(ctx context.Context, id string, record model.Player) (model.Player, error) {
	token, err := e.token()
	if err != nil {
		return model.Player{}, err
	}

	if id == "" {
		return model.Player{}, model.ErrPlayerNotFound
	}
	record.ID = id
	if err := record.Validate(); err != nil {
		return model.Player{}, err
	}

	updated, err := e.client.UpdatePlayer(ctx, token, id, record)
	if err != nil {
		return model.Player{}, fmt.Errorf("update player %s: %w", id, err)
	}

	e.logger.Info("player updated", slog.String("id", id))
	e.refresh(ctx)
	return updated, nil
}

// Delete removes id remotely, then drops it from the local list without
// refetching. The list may disagree with the server until the next refresh.
func (e *Editor) Delete(ctx context.Context, id string) error {
	token, err := e.token()
	if err != nil {
		return err
	}

	if err := e.client.DeletePlayer(ctx, token, id); err != nil {
		return fmt.Errorf("delete player %s: %w", id, err)
	}

	e.logger.Info("player deleted", slog.String("id", id))
	if e.dir != nil {
		e.dir.Remove(id)
	}
	return nil
}

// RecordFeedback adds delta to the statistics of p as given and sends the
// result as a full update. There is no concurrency control: two feedback
// submissions built from the same snapshot overwrite each other.
func (e *Editor) RecordFeedback(ctx context.Context, p model.Player, delta model.Delta) (model.Player, error) {
	token, err := e.token()
	if err != nil {
		return model.Player{}, err
	}

	if err := delta.Validate(); err != nil {
		return model.Player{}, err
	}
	if p.IsNew() {
		return model.Player{}, model.ErrPlayerNotFound
	}

	updated, err := e.client.UpdatePlayer(ctx, token, p.ID, model.ApplyDelta(p, delta))
	if err != nil {
		return model.Player{}, fmt.Errorf("record feedback for %s: %w", p.ID, err)
	}

	e.logger.Info("feedback recorded",
		slog.String("id", p.ID),
		slog.Int("goles", delta.Goles),
		slog.Int("asistencias", delta.Asistencias),
		slog.Int("ganados", delta.PartidosGanados),
		slog.Int("perdidos", delta.PartidosPerdidos),
	)
	e.refresh(ctx)
	return updated, nil
}

// refresh failures do not undo a write that already succeeded
func (e *Editor) refresh(ctx context.Context) {
	if e.dir == nil {
		return
	}
	if err := e.dir.Refresh(ctx); err != nil {
		e.logger.Warn("player list may be stale", slog.String("error", err.Error()))
	}
}
