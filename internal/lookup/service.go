package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"holocron/internal/charcache"
	"holocron/internal/logging"
	"holocron/internal/swapi"
)

// Fixed user-facing messages.
const (
	NotFoundMessage   = "The force is not strong within you"
	EmptyCacheMessage = "Cache is empty."
	RemovedMessage    = "removed cache"
)

// Repository is the persistence contract the service needs from the cache store.
type Repository interface {
	Load(ctx context.Context) (charcache.Cache, error)
	Save(ctx context.Context, cache charcache.Cache) error
	Clear() (bool, error)
}

var _ Repository = (*charcache.Store)(nil)

// Service runs lookups against a repository and an API client, writing
// human-readable output to out.
type Service struct {
	repo     Repository
	client   swapi.Searcher
	out      io.Writer
	logger   *slog.Logger
	now      func() time.Time
	colorize bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the capture timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithColor enables ANSI colour on headings and the not-found line.
func WithColor(enabled bool) Option {
	return func(s *Service) {
		s.colorize = enabled
	}
}

// NewService wires a Service. client may be nil for cache-only commands.
func NewService(repo Repository, client swapi.Searcher, out io.Writer, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		client: client,
		out:    out,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "lookup")
	return s
}

// Search prints the character stored under name, fetching and caching it on
// a miss. With withWorld set it also fetches and prints the homeworld.
func (s *Service) Search(ctx context.Context, name string, withWorld bool) error {
	if name == "" {
		return errors.New("name must not be empty")
	}
	logger := logging.WithContext(ctx, s.logger)

	cache, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	entry, hit := cache[name]
	if hit {
		logger.Debug("cache hit", logging.String("name", name))
	} else {
		if s.client == nil {
			return errors.New("search requires an api client")
		}
		started := time.Now()
		character, err := s.client.SearchPeople(ctx, name)
		elapsed := time.Since(started)
		if err != nil {
			if !isMiss(ctx, err) {
				return fmt.Errorf("search %q: %w", name, err)
			}
			logger.Debug("character lookup missed",
				logging.String("name", name),
				logging.String("cause", missCause(err)),
				logging.Duration("elapsed", elapsed),
				logging.Error(err))
			s.println(s.paint(ansiRed, NotFoundMessage))
			return nil
		}

		entry = charcache.Entry{Character: *character, CachedAt: s.now()}
		cache[name] = entry
		if err := s.repo.Save(ctx, cache); err != nil {
			return err
		}
		logger.Info("cached character",
			logging.String("name", name),
			logging.String("character", character.Name),
			logging.Duration("elapsed", elapsed))
	}

	writeCharacter(s.out, entry.Character)

	if withWorld {
		if err := s.printHomeworld(ctx, entry.Character); err != nil {
			return err
		}
	}

	s.println("cached: " + formatStamp(entry.CachedAt))
	return nil
}

func (s *Service) printHomeworld(ctx context.Context, character swapi.Character) error {
	if s.client == nil {
		return errors.New("homeworld lookup requires an api client")
	}
	planet, err := s.client.GetPlanet(ctx, character.Homeworld)
	if err != nil {
		return fmt.Errorf("fetch homeworld of %s: %w", character.Name, err)
	}
	orbit, err := planet.Orbit()
	if err != nil {
		return err
	}
	rotation, err := planet.Rotation()
	if err != nil {
		return err
	}

	s.println("")
	s.println(s.paint(ansiBlue, "Homeworld"))
	s.println(separator)
	writeHomeworld(s.out, *planet, orbit/earthYearDays, rotation/earthDayHours)
	return nil
}

// ShowCache prints every cached entry, or EmptyCacheMessage when there are none.
func (s *Service) ShowCache(ctx context.Context) error {
	entries, err := s.Cached(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.println(EmptyCacheMessage)
		return nil
	}
	for _, entry := range entries {
		writeCacheEntry(s.out, entry)
	}
	return nil
}

// Cached returns the cached entries in capture order.
func (s *Service) Cached(ctx context.Context) ([]charcache.NamedEntry, error) {
	cache, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return cache.Entries(), nil
}

// CleanCache deletes the backing store. It prints RemovedMessage only when
// something was deleted.
func (s *Service) CleanCache() error {
	removed, err := s.repo.Clear()
	if err != nil {
		return err
	}
	if removed {
		s.println(RemovedMessage)
	}
	return nil
}

func (s *Service) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Service) paint(color, text string) string {
	if !s.colorize {
		return text
	}
	return color + text + ansiReset
}

// isMiss reports whether a people search error should surface as the
// not-found message rather than a failure.
func isMiss(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, swapi.ErrNotFound) {
		return true
	}
	var statusErr *swapi.StatusError
	if errors.As(err, &statusErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func missCause(err error) string {
	var statusErr *swapi.StatusError
	switch {
	case errors.Is(err, swapi.ErrNotFound):
		return "no_result"
	case errors.As(err, &statusErr):
		return "http_status"
	default:
		return "transport"
	}
}
