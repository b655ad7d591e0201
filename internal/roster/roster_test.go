package roster

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/remote"
	"github.com/hipolitesport/roster/internal/remote/fake"
	"github.com/hipolitesport/roster/internal/testutil"
)

// staticCredentials stands in for a session: empty means nothing stored
type staticCredentials string

func (c staticCredentials) Token() (string, bool) {
	return string(c), c != ""
}

func seedPlayers() []model.Player {
	return []model.Player{
		{ID: "1", Nombre: "Ana", Goles: 5, Asistencias: 7, PartidosGanados: 3, PartidosPerdidos: 1},
		{ID: "2", Nombre: "Beto", Goles: 9, Asistencias: 2, PartidosGanados: 2, PartidosPerdidos: 2},
		{ID: "3", Nombre: "Carmen", Goles: 5, Asistencias: 7},
		{ID: "4", Nombre: "Dario", Goles: 0, Asistencias: 0},
	}
}

func names(players []model.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Nombre
	}
	return out
}

// Directory tests

type DirectorySuite struct {
	suite.Suite
	client *fake.Client
	dir    *Directory
	ctx    context.Context
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) SetupTest() {
	s.client = fake.New(seedPlayers()...)
	s.dir = NewDirectory(s.client, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *DirectorySuite) TestEmptyBeforeRefresh() {
	s.False(s.dir.Loaded())
	s.Empty(s.dir.Players())
}

func (s *DirectorySuite) TestGoalsLeaderboardIsDescendingAndStable() {
	s.Require().NoError(s.dir.Refresh(s.ctx))

	s.Equal([]string{"Beto", "Ana", "Carmen", "Dario"}, names(s.dir.TopScorers()))
	s.Equal(names(s.dir.TopScorers()), names(s.dir.Players()))
}

func (s *DirectorySuite) TestAssistsLeaderboardIsDescendingAndStable() {
	s.Require().NoError(s.dir.Refresh(s.ctx))

	s.Equal([]string{"Ana", "Carmen", "Beto", "Dario"}, names(s.dir.TopAssists()))
}

func (s *DirectorySuite) TestLeaderboardsIndependentOfFetchOrder() {
	seeds := seedPlayers()
	orders := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}

	for _, order := range orders {
		var shuffled []model.Player
		for _, i := range order {
			shuffled = append(shuffled, seeds[i])
		}
		dir := NewDirectory(fake.New(shuffled...), nil)
		s.Require().NoError(dir.Refresh(s.ctx))

		for _, stat := range []Stat{StatGoals, StatAssists} {
			board := dir.Leaderboard(stat)
			s.Len(board, len(seeds))
			for i := 1; i < len(board); i++ {
				s.GreaterOrEqual(stat.of(board[i-1]), stat.of(board[i]), "order %v stat %s", order, stat)
			}
		}
	}
}

func (s *DirectorySuite) TestBetoRanksBeforeAna() {
	client := fake.New(
		model.Player{ID: "1", Nombre: "Ana", Goles: 5},
		model.Player{ID: "2", Nombre: "Beto", Goles: 9},
	)
	dir := NewDirectory(client, nil)
	s.Require().NoError(dir.Refresh(s.ctx))

	s.Equal([]string{"Beto", "Ana"}, names(dir.TopScorers()))
}

func (s *DirectorySuite) TestLeaderboardDoesNotReorderStoredList() {
	s.Require().NoError(s.dir.Refresh(s.ctx))

	_ = s.dir.TopAssists()
	_ = s.dir.TopScorers()

	p, ok := s.dir.Find("1")
	s.True(ok)
	s.Equal("Ana", p.Nombre)
	s.Equal([]string{"Ana", "Carmen", "Beto", "Dario"}, names(s.dir.TopAssists()))
}

func (s *DirectorySuite) TestMatchesPlayedForEveryDisplayedRecord() {
	s.Require().NoError(s.dir.Refresh(s.ctx))

	for _, p := range s.dir.Players() {
		s.Equal(p.PartidosGanados+p.PartidosPerdidos, p.MatchesPlayed(), p.Nombre)
	}
}

func (s *DirectorySuite) TestRefreshFailureKeepsPreviousList() {
	s.Require().NoError(s.dir.Refresh(s.ctx))
	s.client.Err = &remote.TransportError{Op: "GET /jugadores", Err: errors.New("connection refused")}

	err := s.dir.Refresh(s.ctx)
	s.Error(err)
	s.Equal(MsgConnection, UserMessage(err))
	s.Len(s.dir.Players(), 4)
}

func (s *DirectorySuite) TestRemoveFiltersById() {
	s.Require().NoError(s.dir.Refresh(s.ctx))

	s.dir.Remove("2")

	_, ok := s.dir.Find("2")
	s.False(ok)
	s.Len(s.dir.Players(), 3)
}

func TestParseStat(t *testing.T) {
	for in, want := range map[string]Stat{"": StatGoals, "goals": StatGoals, "Goles": StatGoals, "assists": StatAssists, "asistencias": StatAssists} {
		got, err := ParseStat(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseStat("tarjetas")
	assert.Error(t, err)
}

// Editor tests

type EditorSuite struct {
	suite.Suite
	client *fake.Client
	dir    *Directory
	editor *Editor
	ctx    context.Context
}

func TestEditorSuite(t *testing.T) {
	suite.Run(t, new(EditorSuite))
}

func (s *EditorSuite) SetupTest() {
	s.ctx = context.Background()
	s.client = fake.New(seedPlayers()...)
	s.dir = NewDirectory(s.client, testutil.NopLogger())
	s.Require().NoError(s.dir.Refresh(s.ctx))
	s.editor = NewEditor(staticCredentials("tok"), s.client, s.dir, testutil.NopLogger())
}

func (s *EditorSuite) signedOut() *Editor {
	return NewEditor(staticCredentials(""), s.client, s.dir, testutil.NopLogger())
}

func (s *EditorSuite) TestWritesWithoutCredentialMakeNoCalls() {
	editor := s.signedOut()
	before := s.client.Calls()
	ana, _ := s.dir.Find("1")

	_, err := editor.Create(s.ctx, model.Player{Nombre: "Carla"})
	s.ErrorIs(err, model.ErrUnauthorized)

	_, err = editor.Update(s.ctx, "1", ana)
	s.ErrorIs(err, model.ErrUnauthorized)

	err = editor.Delete(s.ctx, "1")
	s.ErrorIs(err, model.ErrUnauthorized)

	_, err = editor.RecordFeedback(s.ctx, ana, model.Delta{Goles: 1})
	s.ErrorIs(err, model.ErrUnauthorized)

	editor.OpenCreate()
	editor.UpdateDraft(func(p *model.Player) { p.Nombre = "Carla" })
	err = editor.Submit(s.ctx)
	s.ErrorIs(err, model.ErrUnauthorized)
	s.Equal(MsgUnauthorized, editor.Message())

	s.Equal(before, s.client.Calls())
}

func (s *EditorSuite) TestCreateRefetchesAndIncludesServerID() {
	listsBefore := s.client.Calls().List

	created, err := s.editor.Create(s.ctx, model.Player{Nombre: "Carla", Goles: 0})
	s.Require().NoError(err)

	s.NotEmpty(created.ID)
	s.Equal(listsBefore+1, s.client.Calls().List)
	found, ok := s.dir.Find(created.ID)
	s.Require().True(ok)
	s.Equal("Carla", found.Nombre)
}

func (s *EditorSuite) TestCreateIgnoresDraftID() {
	created, err := s.editor.Create(s.ctx, model.Player{ID: "1", Nombre: "Carla"})
	s.Require().NoError(err)

	s.NotEqual("1", created.ID)
	ana, _ := s.client.Stored("1")
	s.Equal("Ana", ana.Nombre)
}

func (s *EditorSuite) TestCreateRequiresName() {
	_, err := s.editor.Create(s.ctx, model.Player{Goles: 3})

	s.ErrorIs(err, model.ErrNameRequired)
	s.Equal(0, s.client.Calls().Create)
}

func (s *EditorSuite) TestUpdateSendsWholeRecord() {
	ana, _ := s.dir.Find("1")
	ana.Apodo = "La Flecha"
	ana.Goles = 1

	_, err := s.editor.Update(s.ctx, "1", ana)
	s.Require().NoError(err)

	stored, _ := s.client.Stored("1")
	s.Equal("La Flecha", stored.Apodo)
	s.Equal(1, stored.Goles, "absolute values may be overwritten downwards")
	s.Equal(ana.Asistencias, stored.Asistencias)
}

func (s *EditorSuite) TestUpdateUnknownPlayerSurfacesServerMessage() {
	_, err := s.editor.Update(s.ctx, "99", model.Player{Nombre: "Nadie"})

	var apiErr *remote.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusNotFound, apiErr.Status)
	s.Equal("Player not found", UserMessage(err))
}

func (s *EditorSuite) TestDeleteRemovesLocallyWithoutRefetch() {
	listsBefore := s.client.Calls().List

	s.Require().NoError(s.editor.Delete(s.ctx, "2"))

	_, ok := s.dir.Find("2")
	s.False(ok)
	s.Equal(listsBefore, s.client.Calls().List)
	_, stillStored := s.client.Stored("2")
	s.False(stillStored)
}

func (s *EditorSuite) TestDeleteFailureKeepsLocalList() {
	s.client.Err = &remote.APIError{Status: http.StatusInternalServerError, Message: "boom"}

	err := s.editor.Delete(s.ctx, "2")

	s.Error(err)
	_, ok := s.dir.Find("2")
	s.True(ok)
}

func (s *EditorSuite) TestRecordFeedbackIsAdditive() {
	ana, _ := s.dir.Find("1")

	updated, err := s.editor.RecordFeedback(s.ctx, ana, model.Delta{Goles: 2, Asistencias: 1, PartidosGanados: 1, PartidosPerdidos: 0})
	s.Require().NoError(err)

	s.Equal(7, updated.Goles)
	s.Equal(8, updated.Asistencias)
	s.Equal(4, updated.PartidosGanados)
	s.Equal(1, updated.PartidosPerdidos)
	refreshed, _ := s.dir.Find("1")
	s.Equal(7, refreshed.Goles)
}

func (s *EditorSuite) TestRecordFeedbackZeroDeltaAfterwardsChangesNothing() {
	ana, _ := s.dir.Find("1")
	d := model.Delta{Goles: 1, Asistencias: 2, PartidosGanados: 3, PartidosPerdidos: 4}

	first, err := s.editor.RecordFeedback(s.ctx, ana, d)
	s.Require().NoError(err)
	second, err := s.editor.RecordFeedback(s.ctx, first, model.Delta{})
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *EditorSuite) TestRecordFeedbackRejectsNegativeDelta() {
	ana, _ := s.dir.Find("1")

	_, err := s.editor.RecordFeedback(s.ctx, ana, model.Delta{Goles: -1})

	s.ErrorIs(err, model.ErrNegativeDelta)
	s.Equal(0, s.client.Calls().Update)
}

func (s *EditorSuite) TestRecordFeedbackNeedsPersistedPlayer() {
	_, err := s.editor.RecordFeedback(s.ctx, model.Player{Nombre: "Nuevo"}, model.Delta{Goles: 1})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Two feedback submissions built from the same snapshot: the second full
// update overwrites the first, so one delta is lost. This is how the
// workflow behaves; nothing in the client serializes the two.
func (s *EditorSuite) TestConcurrentFeedbackLosesAnUpdate() {
	snapshot, _ := s.dir.Find("1")

	_, err := s.editor.RecordFeedback(s.ctx, snapshot, model.Delta{Goles: 2})
	s.Require().NoError(err)
	_, err = s.editor.RecordFeedback(s.ctx, snapshot, model.Delta{Goles: 3})
	s.Require().NoError(err)

	stored, _ := s.client.Stored("1")
	s.Equal(snapshot.Goles+3, stored.Goles)
	s.NotEqual(snapshot.Goles+5, stored.Goles)
}

// Form state machine tests

func (s *EditorSuite) TestSubmitWhenClosed() {
	s.ErrorIs(s.editor.Submit(s.ctx), ErrNotOpen)
	s.Equal(StateClosed, s.editor.State())
}

func (s *EditorSuite) TestCreateFlowClosesOnSuccess() {
	s.editor.OpenCreate()
	s.Equal(StateOpen, s.editor.State())
	s.Equal(ModeCreating, s.editor.Mode())

	s.editor.UpdateDraft(func(p *model.Player) {
		p.Nombre = "Carla"
		p.Posicion = model.PositionMidfielder
	})
	s.Require().NoError(s.editor.Submit(s.ctx))

	s.Equal(StateClosed, s.editor.State())
	s.Equal(ModeNone, s.editor.Mode())
	s.Equal(MsgCreated, s.editor.Message())
	s.Len(s.dir.Players(), 5)
}

func (s *EditorSuite) TestFailedSubmitReturnsToOpenKeepingDraft() {
	s.editor.OpenCreate()
	s.editor.UpdateDraft(func(p *model.Player) {
		p.Apodo = "Sin nombre"
		p.Goles = 4
	})

	err := s.editor.Submit(s.ctx)

	s.ErrorIs(err, model.ErrNameRequired)
	s.Equal(StateOpen, s.editor.State())
	s.Equal(MsgNameRequired, s.editor.Message())
	s.Equal("Sin nombre", s.editor.Draft().Apodo)
	s.Equal(4, s.editor.Draft().Goles)
}

func (s *EditorSuite) TestEditFlowUpdatesExisting() {
	beto, _ := s.dir.Find("2")
	s.editor.OpenEdit(beto)
	s.Equal(ModeEditing, s.editor.Mode())

	s.editor.UpdateDraft(func(p *model.Player) { p.Nacionalidad = "Perú" })
	s.Require().NoError(s.editor.Submit(s.ctx))

	stored, _ := s.client.Stored("2")
	s.Equal("Perú", stored.Nacionalidad)
	s.Equal(MsgUpdated, s.editor.Message())
}

func (s *EditorSuite) TestServerFailureKeepsFormOpen() {
	beto, _ := s.dir.Find("2")
	s.editor.OpenEdit(beto)
	s.client.Err = &remote.APIError{Status: http.StatusBadRequest, Message: "Datos inválidos"}

	err := s.editor.Submit(s.ctx)

	s.Error(err)
	s.Equal(StateOpen, s.editor.State())
	s.Equal("Datos inválidos", s.editor.Message())
	s.Equal("2", s.editor.Draft().ID)
}

func (s *EditorSuite) TestUpdateDraftIgnoredWhenClosed() {
	s.editor.UpdateDraft(func(p *model.Player) { p.Nombre = "Fantasma" })
	s.Empty(s.editor.Draft().Nombre)
}

func (s *EditorSuite) TestCloseDiscardsDraft() {
	s.editor.OpenCreate()
	s.editor.UpdateDraft(func(p *model.Player) { p.Nombre = "Carla" })

	s.editor.Close()

	s.Equal(StateClosed, s.editor.State())
	s.Empty(s.editor.Draft().Nombre)
}

// Delete confirmation tests

func (s *EditorSuite) TestDeleteFlowConfirm() {
	flow := NewDeleteFlow(s.editor)

	flow.Request("3")
	id, ok := flow.Pending()
	s.True(ok)
	s.Equal("3", id)

	s.Require().NoError(flow.Confirm(s.ctx))

	_, ok = flow.Pending()
	s.False(ok)
	_, found := s.dir.Find("3")
	s.False(found)
}

func (s *EditorSuite) TestDeleteFlowCancel() {
	flow := NewDeleteFlow(s.editor)

	flow.Request("3")
	flow.Cancel()

	_, ok := flow.Pending()
	s.False(ok)
	s.ErrorIs(flow.Confirm(s.ctx), ErrNothingPending)
	s.Equal(0, s.client.Calls().Delete)
}

func (s *EditorSuite) TestDeleteFlowConsumesRequestOnFailure() {
	flow := NewDeleteFlow(s.signedOut())

	flow.Request("3")
	err := flow.Confirm(s.ctx)

	s.ErrorIs(err, model.ErrUnauthorized)
	_, ok := flow.Pending()
	s.False(ok)
}

// Message mapping

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{model.ErrUnauthorized, MsgUnauthorized},
		{fmt.Errorf("wrapped: %w", model.ErrForbidden), MsgForbidden},
		{model.ErrInvalidCredential, MsgSessionExpired},
		{model.ErrNameRequired, MsgNameRequired},
		{model.ErrNegativeDelta, "Feedback increments must not be negative"},
		{&remote.TransportError{Op: "GET /jugadores", Err: errors.New("dial tcp")}, MsgConnection},
		{fmt.Errorf("create: %w", &remote.APIError{Status: 400, Message: "Nombre duplicado"}), "Nombre duplicado"},
		{errors.New("something odd"), MsgUnexpectedError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UserMessage(tt.err))
	}
}
