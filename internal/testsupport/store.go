package testsupport

import (
	"testing"

	"holocron/internal/charcache"
	"holocron/internal/config"
	"holocron/internal/logging"
)

// MustOpenStore opens the cache store described by cfg.
func MustOpenStore(t testing.TB, cfg *config.Config) *charcache.Store {
	t.Helper()

	store, err := charcache.Open(cfg.Cache.Path, cfg.Cache.Backend, logging.NewNop())
	if err != nil {
		t.Fatalf("charcache.Open: %v", err)
	}
	return store
}
