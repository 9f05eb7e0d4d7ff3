package pkg

import (
	"fmt"
	"time"
)

// ConfigurationError is fatal: required environment values are missing.
type ConfigurationError struct {
	Missing []string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("configuration error: missing %v", e.Missing)
	}
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// StoreError wraps any data store gateway failure.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Collection: collection, Err: err}
}

// UploadError wraps an object storage upload failure.
type UploadError struct {
	FileName string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.FileName, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// MigrationError reports the collection whose insert failed.
type MigrationError struct {
	Collection string
	Err        error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration of %s failed: %v", e.Collection, e.Err)
}

func (e *MigrationError) Unwrap() error { return e.Err }

// CapabilityTimeoutError is returned before any export side effect happens.
type CapabilityTimeoutError struct {
	Timeout time.Duration
	Missing []string
}

func (e *CapabilityTimeoutError) Error() string {
	return fmt.Sprintf("render capabilities unavailable after %s: %v", e.Timeout, e.Missing)
}

// RenderCaptureError is a raster capture or PDF assembly failure.
type RenderCaptureError struct {
	Stage string
	Err   error
}

func (e *RenderCaptureError) Error() string {
	return fmt.Sprintf("render %s failed: %v", e.Stage, e.Err)
}

func (e *RenderCaptureError) Unwrap() error { return e.Err }
