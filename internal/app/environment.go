package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/claraboia/jcreader/internal/config"
	"github.com/claraboia/jcreader/internal/domain"
)

// GetEnvAsString returns the variable's value, or fallback when it is unset.
func GetEnvAsString(name, fallback string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		return fallback
	}
	return s
}

func MustGetEnvAsInt(ctx context.Context, name string, fallback int) int {
	s, exists := os.LookupEnv(name)
	if !exists {
		return fallback
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as int",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as int [%s]: %s", name, s))
	}

	return v
}

func MustGetEnvAsDuration(ctx context.Context, name string, fallback time.Duration) time.Duration {
	s, exists := os.LookupEnv(name)
	if !exists {
		return fallback
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}

// applyEnvOverrides lets JCREADER_* variables win over the config file.
func applyEnvOverrides(ctx context.Context, cfg *config.Config) {
	cfg.BaseURL = GetEnvAsString("JCREADER_BASE_URL", cfg.BaseURL)
	cfg.FeedURL = GetEnvAsString("JCREADER_FEED_URL", cfg.FeedURL)
	cfg.Storage.Driver = GetEnvAsString("JCREADER_STORAGE_DRIVER", cfg.Storage.Driver)
	cfg.Storage.SQLitePath = GetEnvAsString("JCREADER_SQLITE_PATH", cfg.Storage.SQLitePath)
	cfg.Storage.MySQLURI = GetEnvAsString("JCREADER_MYSQL_URI", cfg.Storage.MySQLURI)
	cfg.Feed.PageSize = MustGetEnvAsInt(ctx, "JCREADER_PAGE_SIZE", cfg.Feed.PageSize)
	cfg.CookieMaxAge = MustGetEnvAsDuration(ctx, "JCREADER_COOKIE_MAX_AGE", cfg.CookieMaxAgeDuration()).String()
}
