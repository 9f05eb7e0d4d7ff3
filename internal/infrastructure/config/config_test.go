package config

import (
	"errors"
	"testing"
	"time"

	"planpaineis_propostas/pkg"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"STORE_ENDPOINT":   "http://localhost:8000",
		"STORE_CREDENTIAL": "local:secret",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.StoreDriver != DriverDynamoDB {
		t.Fatalf("expected dynamodb driver, got %q", cfg.StoreDriver)
	}
	if cfg.RenderCapabilityTimeout != 15*time.Second {
		t.Fatalf("expected 15s capability timeout, got %v", cfg.RenderCapabilityTimeout)
	}
	if cfg.AssetCacheMaxEntries != 0 {
		t.Fatalf("expected unbounded cache, got %d", cfg.AssetCacheMaxEntries)
	}
	if cfg.AssetsBucket != "images" {
		t.Fatalf("expected images bucket, got %q", cfg.AssetsBucket)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Addr())
	}
	if cfg.AccessKey() != "local" || cfg.SecretKey() != "secret" {
		t.Fatalf("expected split credential, got %q %q", cfg.AccessKey(), cfg.SecretKey())
	}
}

func TestLoadFrom_MissingRequired(t *testing.T) {
	_, err := LoadFrom(map[string]string{})

	var cfgErr *pkg.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if len(cfgErr.Missing) != 2 {
		t.Fatalf("expected two missing keys, got %v", cfgErr.Missing)
	}
	seen := map[string]bool{}
	for _, k := range cfgErr.Missing {
		seen[k] = true
	}
	if !seen["STORE_ENDPOINT"] || !seen["STORE_CREDENTIAL"] {
		t.Fatalf("expected STORE_ENDPOINT and STORE_CREDENTIAL, got %v", cfgErr.Missing)
	}
}

func TestLoadFrom_EmptyRequired(t *testing.T) {
	_, err := LoadFrom(map[string]string{
		"STORE_ENDPOINT":   "",
		"STORE_CREDENTIAL": "x",
	})

	var cfgErr *pkg.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if len(cfgErr.Missing) != 1 || cfgErr.Missing[0] != "STORE_ENDPOINT" {
		t.Fatalf("expected STORE_ENDPOINT missing, got %v", cfgErr.Missing)
	}
}

func TestLoadFrom_UnknownDriver(t *testing.T) {
	_, err := LoadFrom(map[string]string{
		"STORE_ENDPOINT":   "x",
		"STORE_CREDENTIAL": "y",
		"STORE_DRIVER":     "mongo",
	})

	var cfgErr *pkg.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestLoadFrom_InvalidDuration(t *testing.T) {
	_, err := LoadFrom(map[string]string{
		"STORE_ENDPOINT":            "x",
		"STORE_CREDENTIAL":          "y",
		"RENDER_CAPABILITY_TIMEOUT": "soon",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{StoreEndpoint: "host=db user=postgres dbname=propostas port=5432 sslmode=disable ", StoreCredential: "pw"}
	want := "host=db user=postgres dbname=propostas port=5432 sslmode=disable password=pw"
	if got := cfg.PostgresDSN(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestS3Keys(t *testing.T) {
	cfg := Config{StoreCredential: "AKIA:secret"}
	if a, s := cfg.S3Keys(); a != "AKIA" || s != "secret" {
		t.Fatalf("expected store keys, got %q %q", a, s)
	}

	cfg = Config{StoreCredential: "dbpassword", S3Credential: "s3key:s3secret"}
	if a, s := cfg.S3Keys(); a != "s3key" || s != "s3secret" {
		t.Fatalf("expected s3 keys, got %q %q", a, s)
	}
}
