package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/storage/memory"
	"github.com/rugbyops/zoneclips/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func clip(zone model.Zone, title, url string) model.Video {
	return model.Video{Zone: zone, Title: title, URL: url}
}

// Add + List tests

func (s *ServiceSuite) TestAddAppendsInOrder() {
	s.Require().NoError(s.service.Add(s.ctx, clip(model.ZoneMidfield, "Scrum turnover", "https://v.example/1")))
	s.Require().NoError(s.service.Add(s.ctx, clip(model.Zone22mLeft, "Lineout steal", "https://v.example/2")))

	videos, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(videos, 2)
	s.Equal("Scrum turnover", videos[0].Title)
	s.Equal("Lineout steal", videos[1].Title)
}

func (s *ServiceSuite) TestAddDoesNotDeduplicateURLs() {
	v := clip(model.ZoneMidfield, "Scrum turnover", "https://v.example/1")
	_ = s.service.Add(s.ctx, v)
	_ = s.service.Add(s.ctx, v)

	videos, _ := s.service.List(s.ctx)
	s.Len(videos, 2)
}

// ListByZone tests

func (s *ServiceSuite) TestListByZoneGroupsUnderDeclaredZone() {
	_ = s.service.Add(s.ctx, clip(model.Zone40mRight, "Kick return", "https://v.example/1"))

	grouped, err := s.service.ListByZone(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(grouped[model.Zone40mRight], 1)
	s.Equal("Kick return", grouped[model.Zone40mRight][0].Title)

	// The clip appears in exactly one group
	total := 0
	for _, vs := range grouped {
		total += len(vs)
	}
	s.Equal(1, total)
}

func (s *ServiceSuite) TestListByZoneMapsEveryKnownZone() {
	grouped, err := s.service.ListByZone(s.ctx)
	s.Require().NoError(err)

	s.Len(grouped, len(model.Zones()))
	for _, zone := range model.Zones() {
		vs, ok := grouped[zone]
		s.True(ok)
		s.Empty(vs)
	}
}

func (s *ServiceSuite) TestListByZoneExcludesUnknownZones() {
	legacy := []model.Video{
		clip("half-terrain", "Legacy clip", "https://v.example/old"),
		clip(model.ZoneMidfield, "Current clip", "https://v.example/new"),
	}
	s.Require().NoError(s.storage.SaveVideos(s.ctx, legacy))

	grouped, err := s.service.ListByZone(s.ctx)
	s.Require().NoError(err)

	total := 0
	for _, vs := range grouped {
		total += len(vs)
	}
	s.Equal(1, total)

	// The raw listing still carries the legacy record
	videos, _ := s.service.List(s.ctx)
	s.Len(videos, 2)
}

// Edit tests

func (s *ServiceSuite) TestEditReplacesFirstMatch() {
	_ = s.service.Add(s.ctx, clip(model.ZoneMidfield, "Old title", "https://v.example/1"))
	_ = s.service.Add(s.ctx, clip(model.Zone22mLeft, "Other", "https://v.example/2"))

	updated := clip(model.Zone22mRight, "New title", "https://v.example/1b")
	s.Require().NoError(s.service.Edit(s.ctx, "https://v.example/1", updated))

	videos, _ := s.service.List(s.ctx)
	s.Require().Len(videos, 2)
	s.Equal(updated, videos[0])
	s.Equal("https://v.example/2", videos[1].URL)
}

func (s *ServiceSuite) TestEditNoOpWhenURLMissing() {
	original := clip(model.ZoneMidfield, "Keep me", "https://v.example/1")
	_ = s.service.Add(s.ctx, original)

	err := s.service.Edit(s.ctx, "https://v.example/absent", clip(model.Zone22mLeft, "X", "https://v.example/x"))
	s.ErrorIs(err, model.ErrVideoNotFound)

	videos, _ := s.service.List(s.ctx)
	s.Require().Len(videos, 1)
	s.Equal(original, videos[0])
}

// Delete tests

func (s *ServiceSuite) TestDeleteRemovesAllMatches() {
	dup := clip(model.ZoneMidfield, "Dup", "https://v.example/dup")
	_ = s.service.Add(s.ctx, dup)
	_ = s.service.Add(s.ctx, clip(model.Zone40mLeft, "Keep", "https://v.example/keep"))
	_ = s.service.Add(s.ctx, dup)

	s.Require().NoError(s.service.Delete(s.ctx, "https://v.example/dup"))

	videos, _ := s.service.List(s.ctx)
	s.Require().Len(videos, 1)
	s.Equal("https://v.example/keep", videos[0].URL)
}

func (s *ServiceSuite) TestDeleteIsIdempotent() {
	_ = s.service.Add(s.ctx, clip(model.ZoneMidfield, "Only", "https://v.example/1"))

	s.Require().NoError(s.service.Delete(s.ctx, "https://v.example/1"))
	s.Require().NoError(s.service.Delete(s.ctx, "https://v.example/1"))

	videos, _ := s.service.List(s.ctx)
	s.Empty(videos)
}
