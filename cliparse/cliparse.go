package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DefaultPort          = 3000
	DefaultRecentLimit   = 6
	DefaultCacheTTL      = 30 * time.Second
	DefaultRenderTimeout = 2 * time.Second
	DefaultFetchTimeout  = 10 * time.Second
)

type Config struct {
	Port         int
	Env          string
	DatabaseURL  string
	DatabaseType string
	APIURL       string
	RecentLimit  int

	CacheTTL      time.Duration
	RenderTimeout time.Duration
	FetchTimeout  time.Duration
}

// IsProduction reports whether the server runs with the production profile
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction || c.Env == "prod"
}

// ParseFlags reads flags, then the environment (and .env), then defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	fs := flag.NewFlagSet("hackathons", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Env, "e", "", "Environment (production or development)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.APIURL, "api", "", "Base URL of a remote hackathon API (replaces the database)")
	fs.IntVar(&cfg.RecentLimit, "recent", 0, "Number of recent hackathons on the home page")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", 0, "How long query results stay fresh")
	fs.DurationVar(&cfg.RenderTimeout, "render-timeout", 0, "How long a page waits for data before showing the loading state")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", 0, "Upper bound for a single data fetch")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.Env == "" {
		cfg.Env = os.Getenv("APP_ENV")
		if cfg.Env == "" {
			cfg.Env = EnvDevelopment
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("API_URL")
	}
	if cfg.DatabaseURL == "" && cfg.APIURL == "" {
		return Config{}, errors.New("database URL or API URL required (use -d/DATABASE_URL or -api/API_URL)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.RecentLimit == 0 {
		n, err := intFromEnv("RECENT_LIMIT", DefaultRecentLimit)
		if err != nil {
			return Config{}, err
		}
		cfg.RecentLimit = n
	}
	if cfg.RecentLimit < 0 {
		return Config{}, errors.New("recent limit must be positive")
	}

	var err error
	if cfg.CacheTTL, err = durationFromEnv(cfg.CacheTTL, "CACHE_TTL", DefaultCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.RenderTimeout, err = durationFromEnv(cfg.RenderTimeout, "RENDER_TIMEOUT", DefaultRenderTimeout); err != nil {
		return Config{}, err
	}
	if cfg.FetchTimeout, err = durationFromEnv(cfg.FetchTimeout, "FETCH_TIMEOUT", DefaultFetchTimeout); err != nil {
		return Config{}, err
	}
	for name, d := range map[string]time.Duration{
		"cache ttl":      cfg.CacheTTL,
		"render timeout": cfg.RenderTimeout,
		"fetch timeout":  cfg.FetchTimeout,
	} {
		if d <= 0 {
			return Config{}, fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}

	return cfg, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return n, nil
}

func durationFromEnv(current time.Duration, key string, fallback time.Duration) (time.Duration, error) {
	if current != 0 {
		return current, nil
	}
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return d, nil
}
