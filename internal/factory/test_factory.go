package factory

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rugbyops/zoneclips/internal/dependencies/clock"
	"github.com/rugbyops/zoneclips/internal/sessions"
	sessionmemory "github.com/rugbyops/zoneclips/internal/sessions/memory"
	storagememory "github.com/rugbyops/zoneclips/internal/storage/memory"
	"github.com/rugbyops/zoneclips/internal/testutil"
)

// NewTest wires an App entirely in memory for tests: memory storage,
// memory sessions, minimum bcrypt cost for speed, discarded logs.
func NewTest(clk clock.Clock) *App {
	if clk == nil {
		clk = clock.New()
	}

	store := storagememory.New()
	sessionStore := sessionmemory.New(clk, sessions.DefaultConfig())

	return newWithDependencies(store, sessionStore, clk, bcrypt.MinCost, testutil.NopLogger())
}
