package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/danielhkuo/panchayat/election"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	LogLevel string
	Format   string
	Sort     string
	EnvFile  string
}

// Level returns the configured slog level. ApplyEnv has already rejected
// values that do not parse.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewFlagSet returns the shared flags bound to cfg
func NewFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("panchayat", pflag.ContinueOnError)

	fs.StringVarP(&cfg.LogLevel, "log-level", "l", "", "Log level: debug, info, warn, error")
	fs.StringVarP(&cfg.Format, "format", "f", "", "Output format: text or json")
	fs.StringVarP(&cfg.Sort, "sort", "s", "", "Result order: votes, name or party")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "Load environment variables from this file")

	return fs
}

// ParseFlags parses args and fills anything left unset from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := NewFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv fills unset fields from environment variables, after loading the
// optional env file, then applies defaults and validates. Variables already
// present in the environment win over the env file.
func ApplyEnv(cfg *Config) error {
	if cfg.EnvFile == "" {
		cfg.EnvFile = os.Getenv("PANCHAYAT_ENV_FILE")
	}
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	if cfg.Format == "" {
		cfg.Format = os.Getenv("PANCHAYAT_FORMAT")
		if cfg.Format == "" {
			cfg.Format = FormatText
		}
	}
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return errors.New("format must be text or json")
	}

	if cfg.Sort == "" {
		cfg.Sort = os.Getenv("PANCHAYAT_SORT")
		if cfg.Sort == "" {
			cfg.Sort = election.SortVotes
		}
	}
	if !slices.Contains([]string{election.SortVotes, election.SortName, election.SortParty}, cfg.Sort) {
		return errors.New("sort must be votes, name or party")
	}

	return nil
}
