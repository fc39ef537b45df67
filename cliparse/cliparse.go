package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = 5000
	defaultDatabaseType  = "postgres"
	defaultDBHost        = "localhost"
	defaultDBName        = "ps_project"
	defaultDBUser        = "postgres"
	defaultDBSSLMode     = "disable"
	defaultVoteRateLimit = 5
)

type Config struct {
	Port          int
	DatabaseType  string
	DatabaseURL   string
	DBHost        string
	DBName        string
	DBUser        string
	DBPassword    string
	DBSSLMode     string
	DBTimeout     time.Duration
	AdminPassword string
	VoteRateLimit float64
	TrustProxy    bool
	IssueTokens   int
	RegisterToken string
}

// ParseFlags reads flags, then environment variables, then the .env file.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string
	rate := -1.0

	flags := flag.NewFlagSet("pollsvc", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres) or file path (sqlite)")
	flags.DurationVar(&cfg.DBTimeout, "db-timeout", 0, "Per-request store timeout (0 disables)")
	flags.Float64Var(&rate, "vote-rate", -1, "Votes per second per client (0 disables)")
	flags.StringVar(&envFile, "env-file", ".env", "Path to a .env file")
	flags.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Take client IPs from X-Forwarded-For / X-Real-IP")

	// Secrets (prefer env variables, but allow CLI for dev)
	flags.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin password for results (prefer env)")

	// Provisioning mode
	flags.IntVar(&cfg.IssueTokens, "issue-tokens", 0, "Issue N voter tokens, print them and exit")
	flags.StringVar(&cfg.RegisterToken, "register-token", "", "Register one voter token and exit")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", defaultDatabaseType)
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, fmt.Errorf("unsupported database type %q (use postgres or sqlite)", cfg.DatabaseType)
	}

	cfg.DBHost = envOr("DB_HOST", defaultDBHost)
	cfg.DBName = envOr("DB_NAME", defaultDBName)
	cfg.DBUser = envOr("DB_USER", defaultDBUser)
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBSSLMode = envOr("DB_SSLMODE", defaultDBSSLMode)

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			return Config{}, errors.New("database path required for sqlite (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = cfg.PostgresURL()
	}

	if cfg.DBTimeout == 0 {
		if s := os.Getenv("DB_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid DB_TIMEOUT env variable")
			}
			cfg.DBTimeout = d
		}
	}

	cfg.VoteRateLimit = rate
	if cfg.VoteRateLimit < 0 {
		cfg.VoteRateLimit = defaultVoteRateLimit
		if s := os.Getenv("VOTE_RATE_LIMIT"); s != "" {
			r, err := strconv.ParseFloat(s, 64)
			if err != nil || r < 0 {
				return Config{}, errors.New("invalid VOTE_RATE_LIMIT env variable")
			}
			cfg.VoteRateLimit = r
		}
	}

	if !cfg.TrustProxy {
		if s := os.Getenv("TRUST_PROXY"); s != "" {
			v, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid TRUST_PROXY env variable")
			}
			cfg.TrustProxy = v
		}
	}

	if cfg.IssueTokens > 0 && cfg.RegisterToken != "" {
		return Config{}, errors.New("use only one of -issue-tokens and -register-token")
	}

	// Secrets - MUST be provided
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	return cfg, nil
}

// PostgresURL builds a connection URL from the DB_* settings.
func (c Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     c.DBHost,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
