// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"planpaineis_propostas/pkg"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
)

type Config struct {
	// StoreEndpoint is the DynamoDB endpoint URL, or the Postgres DSN without
	// password when StoreDriver is postgres.
	StoreEndpoint string `env:"STORE_ENDPOINT,required,notEmpty"`
	// StoreCredential is "<access key id>:<secret>" for DynamoDB and S3, or the
	// database password for Postgres.
	StoreCredential string `env:"STORE_CREDENTIAL,required,notEmpty"`
	StoreDriver     string `env:"STORE_DRIVER" envDefault:"dynamodb"`

	AWSRegion     string `env:"AWS_REGION" envDefault:"us-east-1"`
	ProfilesTable string `env:"PROFILES_TABLE" envDefault:"sales_profiles"`
	ProductsTable string `env:"PRODUCTS_TABLE" envDefault:"products"`
	CoversTable   string `env:"COVERS_TABLE" envDefault:"cover_images"`
	CountersTable string `env:"COUNTERS_TABLE" envDefault:"counters"`

	AssetsBucket        string `env:"ASSETS_BUCKET" envDefault:"images"`
	AssetsPublicBaseURL string `env:"ASSETS_PUBLIC_BASE_URL"`
	S3Endpoint          string `env:"S3_ENDPOINT"`
	// S3Credential, when set, replaces StoreCredential for object storage.
	// Required in practice with the postgres driver.
	S3Credential string `env:"S3_CREDENTIAL"`

	LegacyDBPath string `env:"LEGACY_DB_PATH" envDefault:"data/local_storage.db"`

	AssetCacheMaxEntries int           `env:"ASSET_CACHE_MAX_ENTRIES" envDefault:"0"`
	AssetCacheRedisAddr  string        `env:"ASSET_CACHE_REDIS_ADDR"`
	AssetCacheTTL        time.Duration `env:"ASSET_CACHE_TTL" envDefault:"24h"`

	RenderCapabilityTimeout time.Duration `env:"RENDER_CAPABILITY_TIMEOUT" envDefault:"15s"`
	RenderOutputDir         string        `env:"RENDER_OUTPUT_DIR" envDefault:"out"`
	BrowserBin              string        `env:"BROWSER_BIN"`

	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		if missing := missingKeys(err); len(missing) > 0 {
			return Config{}, &pkg.ConfigurationError{Missing: missing, Err: err}
		}
		return Config{}, &pkg.ConfigurationError{Err: fmt.Errorf("parse env: %w", err)}
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	switch cfg.StoreDriver {
	case DriverDynamoDB, DriverPostgres:
	default:
		return Config{}, &pkg.ConfigurationError{Err: fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)}
	}
	if cfg.AssetCacheMaxEntries < 0 {
		return Config{}, &pkg.ConfigurationError{Err: fmt.Errorf("ASSET_CACHE_MAX_ENTRIES must be >= 0")}
	}
	return cfg, nil
}

func missingKeys(err error) []string {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return nil
	}
	var keys []string
	for _, e := range agg.Errors {
		var notSet env.EnvVarIsNotSetError
		var empty env.EmptyVarError
		switch {
		case errors.As(e, &notSet):
			keys = append(keys, notSet.Key)
		case errors.As(e, &empty):
			keys = append(keys, empty.Key)
		}
	}
	return keys
}

// AccessKey and SecretKey split StoreCredential. A credential with no colon
// is used for both, which is enough for local emulators.
func (c Config) AccessKey() string {
	k, _, _ := strings.Cut(c.StoreCredential, ":")
	return k
}

func (c Config) SecretKey() string {
	k, s, ok := strings.Cut(c.StoreCredential, ":")
	if !ok {
		return k
	}
	return s
}

// S3Keys splits S3Credential the same way, falling back to the store keys.
func (c Config) S3Keys() (string, string) {
	if c.S3Credential == "" {
		return c.AccessKey(), c.SecretKey()
	}
	k, s, ok := strings.Cut(c.S3Credential, ":")
	if !ok {
		return k, k
	}
	return k, s
}

// PostgresDSN appends the credential to the configured DSN.
func (c Config) PostgresDSN() string {
	return strings.TrimSpace(c.StoreEndpoint) + " password=" + c.StoreCredential
}

func (c Config) Addr() string {
	return ":" + c.HTTPPort
}
