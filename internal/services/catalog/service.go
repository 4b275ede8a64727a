package catalog

import (
	"context"
	"log/slog"

	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/storage"
)

// Service manages the video collection.
// URL is the addressing key for edit and delete; add performs no
// uniqueness check, matching the source data's conventions.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new catalog service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// List returns the full video collection in stored order
func (s *Service) List(ctx context.Context) ([]model.Video, error) {
	return s.storage.LoadVideos(ctx)
}

// ListByZone partitions the collection by the known zone set.
// Every known zone maps to a slice, empty when it has no clips. Records
// whose stored zone is not in the set appear in no group; they remain
// visible on the raw List used by the admin page.
func (s *Service) ListByZone(ctx context.Context) (map[model.Zone][]model.Video, error) {
	videos, err := s.storage.LoadVideos(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[model.Zone][]model.Video, len(model.Zones()))
	for _, zone := range model.Zones() {
		grouped[zone] = []model.Video{}
	}
	for _, v := range videos {
		if _, ok := grouped[v.Zone]; ok {
			grouped[v.Zone] = append(grouped[v.Zone], v)
		}
	}
	return grouped, nil
}

// Add appends a video to the collection
func (s *Service) Add(ctx context.Context, video model.Video) error {
	videos, err := s.storage.LoadVideos(ctx)
	if err != nil {
		return err
	}

	videos = append(videos, video)
	if err := s.storage.SaveVideos(ctx, videos); err != nil {
		return err
	}

	s.logger.Info("video added",
		slog.String("zone", string(video.Zone)),
		slog.String("url", video.URL),
	)
	return nil
}

// Edit replaces the first video whose URL matches oldURL.
// The collection is untouched when no record matches.
func (s *Service) Edit(ctx context.Context, oldURL string, video model.Video) error {
	videos, err := s.storage.LoadVideos(ctx)
	if err != nil {
		return err
	}

	for i := range videos {
		if videos[i].URL == oldURL {
			videos[i] = video
			if err := s.storage.SaveVideos(ctx, videos); err != nil {
				return err
			}
			s.logger.Info("video edited",
				slog.String("old_url", oldURL),
				slog.String("url", video.URL),
			)
			return nil
		}
	}

	return model.ErrVideoNotFound
}

// Delete removes every video with the given URL. Idempotent: deleting a
// URL with no matches leaves the collection as it is.
func (s *Service) Delete(ctx context.Context, url string) error {
	videos, err := s.storage.LoadVideos(ctx)
	if err != nil {
		return err
	}

	remaining := videos[:0:0]
	for _, v := range videos {
		if v.URL != url {
			remaining = append(remaining, v)
		}
	}

	if err := s.storage.SaveVideos(ctx, remaining); err != nil {
		return err
	}

	if removed := len(videos) - len(remaining); removed > 0 {
		s.logger.Info("video deleted", slog.String("url", url), slog.Int("removed", removed))
	}
	return nil
}
