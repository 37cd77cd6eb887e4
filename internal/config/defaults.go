package config

const (
	defaultAPIBaseURL        = "https://www.swapi.tech/api"
	defaultAPITimeoutSeconds = 0
	defaultCacheBackend      = BackendJSON
	defaultJSONCachePath     = "holocron_cache.json"
	defaultSQLiteCachePath   = "holocron_cache.db"
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"
)

// Cache backend identifiers accepted in cache.backend.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default returns a Config populated with repository defaults. The cache path
// is left empty so normalization can pick the file name matching the backend.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultAPIBaseURL,
			TimeoutSeconds: defaultAPITimeoutSeconds,
		},
		Cache: Cache{
			Backend: defaultCacheBackend,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
