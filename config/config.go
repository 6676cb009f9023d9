package config

import (
	"flag"
	"os"
	"sync"
)

const (
	defaultServerAddr = ":8080"
	defaultLogLevel   = "info"
)

type Config struct {
	ServerAddr string
	LogLevel   string
	TiersFile  string
	// Admin GraphQL API and webhook credentials come from the environment
	// only; their absence is reported per-request as a configuration error.
	AdminGraphQLEndpoint string
	AdminAPIToken        string
	WebhookSecret        string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "server address")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.TiersFile, "t", "", "club tier table file (yaml)")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if tiersFileEnv := os.Getenv("TIERS_FILE"); tiersFileEnv != "" {
			cfg.TiersFile = tiersFileEnv
		}

		cfg.AdminGraphQLEndpoint = os.Getenv("PRIVATE_ADMIN_GRAPHQL_API_ENDPOINT")
		cfg.AdminAPIToken = os.Getenv("PRIVATE_ADMIN_GRAPHQL_API_TOKEN")
		cfg.WebhookSecret = os.Getenv("SHOPIFY_WEBHOOK_SECRET")

		singleton = &cfg
	})

	return singleton, nil
}
