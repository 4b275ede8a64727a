package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rugbyops/zoneclips/internal/model"
)

func TestUsersRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	users := []model.User{
		{Email: "a@club.fr", PasswordHash: "h1", Status: model.StatusActive, Role: model.RoleAdmin},
		{Email: "b@club.fr", PasswordHash: "h2", Status: model.StatusInactive, Role: model.RolePlayer},
	}
	require.NoError(t, s.SaveUsers(ctx, users))

	loaded, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, loaded)
}

func TestVideosRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	videos := []model.Video{
		{Zone: model.ZoneMidfield, Title: "Scrum", URL: "https://v.example/1"},
		{Zone: model.Zone22mLeft, Title: "Lineout", URL: "https://v.example/2"},
	}
	require.NoError(t, s.SaveVideos(ctx, videos))

	loaded, err := s.LoadVideos(ctx)
	require.NoError(t, err)
	assert.Equal(t, videos, loaded)
}

func TestEmptyCollectionsByDefault(t *testing.T) {
	s := New()
	ctx := context.Background()

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	videos, err := s.LoadVideos(ctx)
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestLoadReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveUsers(ctx, []model.User{{Email: "a@club.fr"}}))

	loaded, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	loaded[0].Email = "mutated@club.fr"

	again, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@club.fr", again[0].Email)
}
