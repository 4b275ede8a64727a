package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rugbyops/zoneclips/internal/dependencies/mocks"
	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/sessions"
)

type StoreSuite struct {
	suite.Suite
	clock *mocks.MockClock
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	s.store = New(s.clock, sessions.Config{TTL: 24 * time.Hour})
	s.ctx = context.Background()
}

func (s *StoreSuite) snapshot() model.Session {
	return model.Session{
		Email:  "alice@club.fr",
		Role:   model.RolePlayer,
		Status: model.StatusActive,
	}
}

func (s *StoreSuite) TestCreateAndGet() {
	token, err := s.store.Create(s.ctx, s.snapshot())
	s.Require().NoError(err)
	s.NotEmpty(token)

	session, err := s.store.Get(s.ctx, token)
	s.Require().NoError(err)
	s.Equal(token, session.Token)
	s.Equal("alice@club.fr", session.Email)
	s.True(session.Authenticated())
}

func (s *StoreSuite) TestTokensAreUnique() {
	t1, _ := s.store.Create(s.ctx, s.snapshot())
	t2, _ := s.store.Create(s.ctx, s.snapshot())
	s.NotEqual(t1, t2)
}

func (s *StoreSuite) TestGetUnknownToken() {
	_, err := s.store.Get(s.ctx, "sess_unknown")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StoreSuite) TestGetExpiredToken() {
	token, _ := s.store.Create(s.ctx, s.snapshot())

	s.clock.Advance(25 * time.Hour)

	_, err := s.store.Get(s.ctx, token)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StoreSuite) TestDeleteRemovesSession() {
	token, _ := s.store.Create(s.ctx, s.snapshot())

	s.Require().NoError(s.store.Delete(s.ctx, token))

	_, err := s.store.Get(s.ctx, token)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StoreSuite) TestDeleteUnknownTokenIsNoop() {
	s.NoError(s.store.Delete(s.ctx, "sess_unknown"))
}

func (s *StoreSuite) TestGetReturnsCopy() {
	token, _ := s.store.Create(s.ctx, s.snapshot())

	first, err := s.store.Get(s.ctx, token)
	s.Require().NoError(err)
	first.Email = "mutated@club.fr"

	second, err := s.store.Get(s.ctx, token)
	s.Require().NoError(err)
	s.Equal("alice@club.fr", second.Email)
}

func (s *StoreSuite) TestCleanExpiredRemovesOnlyExpired() {
	expired, _ := s.store.Create(s.ctx, s.snapshot())

	s.clock.Advance(25 * time.Hour)
	fresh, _ := s.store.Create(s.ctx, s.snapshot())

	s.store.CleanExpired()

	_, err := s.store.Get(s.ctx, expired)
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.store.Get(s.ctx, fresh)
	s.NoError(err)
}
