package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/storage"
)

// Storage persists each collection as a single flat JSON document.
// Every save replaces the whole document via write-temp-then-rename, so a
// crash mid-write never leaves a truncated file behind.
type Storage struct {
	usersPath  string
	videosPath string

	// Serializes writers per document; readers of a half-renamed file are
	// protected by the rename itself, not by this lock.
	usersMu  sync.Mutex
	videosMu sync.Mutex
}

// New creates a file storage over the given document paths
func New(usersPath, videosPath string) *Storage {
	return &Storage{
		usersPath:  usersPath,
		videosPath: videosPath,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Init creates empty documents for any path that does not exist yet.
// Existing documents are left untouched.
func (s *Storage) Init() error {
	if err := seedDocument(s.usersPath); err != nil {
		return err
	}
	return seedDocument(s.videosPath)
}

func seedDocument(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return writeDocument(path, []struct{}{})
}

// User collection

func (s *Storage) LoadUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := readDocument(s.usersPath, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Storage) SaveUsers(ctx context.Context, users []model.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	if users == nil {
		users = []model.User{}
	}
	return writeDocument(s.usersPath, users)
}

// Video collection

func (s *Storage) LoadVideos(ctx context.Context) ([]model.Video, error) {
	var videos []model.Video
	if err := readDocument(s.videosPath, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *Storage) SaveVideos(ctx context.Context, videos []model.Video) error {
	s.videosMu.Lock()
	defer s.videosMu.Unlock()
	if videos == nil {
		videos = []model.Video{}
	}
	return writeDocument(s.videosPath, videos)
}

func readDocument(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", model.ErrStoreUnavailable, path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: parse %s: %v", model.ErrStoreUnavailable, path, err)
	}
	return nil
}

func writeDocument(path string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: temp for %s: %v", model.ErrStoreUnavailable, path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", model.ErrStoreUnavailable, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", model.ErrStoreUnavailable, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", model.ErrStoreUnavailable, path, err)
	}
	return nil
}
