package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hipolitesport/roster/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{ID: "p1", Nombre: "Ana", Goles: 5}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal("Ana", retrieved.Nombre)
	s.Equal(5, retrieved.Goles)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestStoredPlayerIsACopy() {
	player := &model.Player{ID: "p1", Nombre: "Ana"}
	_ = s.storage.SavePlayer(s.ctx, player)

	player.Nombre = "Changed"

	retrieved, _ := s.storage.GetPlayer(s.ctx, "p1")
	s.Equal("Ana", retrieved.Nombre)
}

func (s *StorageSuite) TestListKeepsInsertionOrder() {
	for _, p := range []model.Player{{ID: "c", Nombre: "Carla"}, {ID: "a", Nombre: "Ana"}, {ID: "b", Nombre: "Beto"}} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, &p))
	}

	// Replacing keeps the original position
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "c", Nombre: "Carla", Goles: 3}))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("c", players[0].ID)
	s.Equal(3, players[0].Goles)
	s.Equal("a", players[1].ID)
	s.Equal("b", players[2].ID)
}

func (s *StorageSuite) TestListEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *StorageSuite) TestDeletePlayer() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p1", Nombre: "Ana"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p2", Nombre: "Beto"})

	err := s.storage.DeletePlayer(s.ctx, "p1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "p1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, _ := s.storage.ListPlayers(s.ctx)
	s.Require().Len(players, 1)
	s.Equal("p2", players[0].ID)
}

func (s *StorageSuite) TestDeleteMissingPlayer() {
	err := s.storage.DeletePlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{ID: "u1", Correo: "admin@club.test", PasswordHash: "hash", Rol: model.RoleAdmin}

	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	retrieved, err := s.storage.GetAccount(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal("admin@club.test", retrieved.Correo)
	s.Equal(model.RoleAdmin, retrieved.Rol)
}

func (s *StorageSuite) TestGetAccountByEmailIgnoresCase() {
	_ = s.storage.SaveAccount(s.ctx, &model.Account{ID: "u1", Correo: "Admin@Club.test"})

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "admin@club.TEST")
	s.Require().NoError(err)
	s.Equal("u1", retrieved.ID)
}

func (s *StorageSuite) TestChangingEmailDropsOldIndex() {
	_ = s.storage.SaveAccount(s.ctx, &model.Account{ID: "u1", Correo: "old@club.test"})
	_ = s.storage.SaveAccount(s.ctx, &model.Account{ID: "u1", Correo: "new@club.test"})

	_, err := s.storage.GetAccountByEmail(s.ctx, "old@club.test")
	s.ErrorIs(err, model.ErrAccountNotFound)

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "new@club.test")
	s.Require().NoError(err)
	s.Equal("u1", retrieved.ID)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)

	_, err = s.storage.GetAccountByEmail(s.ctx, "nobody@club.test")
	s.ErrorIs(err, model.ErrAccountNotFound)
}
