package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultPort         = 5001
	DefaultBasePath     = "/api"
	DefaultMaxOpenConns = 10
)

type Config struct {
	Port         int
	DatabaseURL  string
	BasePath     string
	BcryptCost   int
	MaxOpenConns int
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("turtle-records", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.BasePath, "base-path", "", "Path prefix for all API routes")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", 0, "bcrypt cost for password hashes")
	fs.IntVar(&cfg.MaxOpenConns, "max-open-conns", 0, "Maximum open database connections")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error
	if cfg.Port == 0 {
		if cfg.Port, err = intFromEnv("PORT", DefaultPort); err != nil {
			return Config{}, err
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.BasePath == "" {
		cfg.BasePath = os.Getenv("BASE_PATH")
		if cfg.BasePath == "" {
			cfg.BasePath = DefaultBasePath
		}
	}
	cfg.BasePath = normalizeBasePath(cfg.BasePath)

	if cfg.BcryptCost == 0 {
		if cfg.BcryptCost, err = intFromEnv("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
			return Config{}, err
		}
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, errors.New("bcrypt cost out of range")
	}

	if cfg.MaxOpenConns == 0 {
		if cfg.MaxOpenConns, err = intFromEnv("DB_MAX_OPEN_CONNS", DefaultMaxOpenConns); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func intFromEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid " + key + " env variable")
	}
	return n, nil
}

// "/" and "" both mean no prefix; otherwise a leading slash and no trailing one.
func normalizeBasePath(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
