package account

import (
	"context"
	"log/slog"

	"github.com/rugbyops/zoneclips/internal/credentials"
	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/sessions"
	"github.com/rugbyops/zoneclips/internal/storage"
)

// Service handles registration, login and admin management of accounts.
// Every operation re-reads the user collection, mutates it in memory and
// rewrites it in full; nothing is cached across requests.
type Service struct {
	storage  storage.Storage
	sessions sessions.Store
	hasher   *credentials.Hasher
	logger   *slog.Logger
}

// New creates a new account service
func New(store storage.Storage, sessionStore sessions.Store, hasher *credentials.Hasher, logger *slog.Logger) *Service {
	return &Service{
		storage:  store,
		sessions: sessionStore,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register creates a new account with a hashed password.
// New accounts always start as inactive players; an admin has to activate
// them before they can log in.
func (s *Service) Register(ctx context.Context, email, password string) error {
	return s.CreateUser(ctx, email, password, model.RolePlayer, model.StatusInactive)
}

// CreateUser inserts an account with an explicit role and status.
// This is the offline bootstrap path: the web surface only ever produces
// inactive players, so the first admin comes from here.
func (s *Service) CreateUser(ctx context.Context, email, password string, role model.Role, status model.Status) error {
	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == email {
			return model.ErrDuplicateEmail
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	users = append(users, model.User{
		Email:        email,
		PasswordHash: hash,
		Status:       status,
		Role:         role,
	})

	if err := s.storage.SaveUsers(ctx, users); err != nil {
		return err
	}

	s.logger.Info("user created",
		slog.String("email", email),
		slog.String("role", string(role)),
		slog.String("status", string(status)),
	)
	return nil
}

// Login verifies credentials and establishes a session snapshot.
// The snapshot copies email, role and status from the record at login time
// and is trusted as-is until the session ends.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Session, error) {
	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	var user *model.User
	for i := range users {
		if users[i].Email == email {
			user = &users[i]
			break
		}
	}

	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return nil, model.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, model.ErrInactiveAccount
	}

	snapshot := model.Session{
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}

	token, err := s.sessions.Create(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	snapshot.Token = token

	s.logger.Info("user logged in", slog.String("email", email), slog.String("role", string(user.Role)))
	return &snapshot, nil
}

// Logout destroys the session unconditionally; unknown tokens are a no-op
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ListUsers returns the full user collection in stored order
func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.storage.LoadUsers(ctx)
}

// ToggleStatus flips the account between active and inactive.
// Existing sessions for the account keep their login-time snapshot; the
// change only affects future logins.
func (s *Service) ToggleStatus(ctx context.Context, email string) (model.Status, error) {
	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return "", err
	}

	for i := range users {
		if users[i].Email == email {
			users[i].Status = users[i].Status.Toggled()
			if err := s.storage.SaveUsers(ctx, users); err != nil {
				return "", err
			}
			s.logger.Info("user status changed",
				slog.String("email", email),
				slog.String("status", string(users[i].Status)),
			)
			return users[i].Status, nil
		}
	}

	return "", model.ErrUserNotFound
}

// SetRole changes the account's role.
// Like status changes, this does not touch existing sessions.
func (s *Service) SetRole(ctx context.Context, email string, role model.Role) error {
	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].Email == email {
			users[i].Role = role
			if err := s.storage.SaveUsers(ctx, users); err != nil {
				return err
			}
			s.logger.Info("user role changed",
				slog.String("email", email),
				slog.String("role", string(role)),
			)
			return nil
		}
	}

	return model.ErrUserNotFound
}

// DeleteUser removes every record matching the email.
// Admins cannot delete the account they are logged in as.
func (s *Service) DeleteUser(ctx context.Context, requesterEmail, email string) error {
	if requesterEmail == email {
		return model.ErrSelfDelete
	}

	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return err
	}

	remaining := users[:0:0]
	for _, u := range users {
		if u.Email != email {
			remaining = append(remaining, u)
		}
	}

	if len(remaining) == len(users) {
		return model.ErrUserNotFound
	}

	if err := s.storage.SaveUsers(ctx, remaining); err != nil {
		return err
	}

	s.logger.Info("user deleted", slog.String("email", email))
	return nil
}
