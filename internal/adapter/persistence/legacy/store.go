// Package legacy reads the data the offline version of the app kept on the
// device and records whether it has been copied to the remote store.
package legacy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/usecase/interfaces"
)

const (
	bucketName = "local_storage"

	KeySalesProfiles = "planpaineis_salesProfiles"
	KeyProducts      = "planpaineis_products"
	KeyCoverImages   = "planpaineis_coverImages"
	KeyMigrationDone = "supabase_migration_v1_done"

	migrationDoneValue = "true"
)

// Keys lists the collection keys Import understands.
var Keys = []string{KeySalesProfiles, KeyProducts, KeyCoverImages}

var ErrNotArray = errors.New("legacy value is not a JSON array")

// Store is a BoltDB file holding one bucket of string keys to JSON values.
type Store struct {
	db *bbolt.DB
}

var _ interfaces.ILegacyStore = (*Store)(nil)

func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("legacy storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create legacy storage dir: %w", err)
		}
	}
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open legacy storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) SalesProfiles(ctx context.Context) ([]entities.SalesProfile, error) {
	var recs []salesProfileRecord
	if err := s.readList(ctx, KeySalesProfiles, &recs); err != nil {
		return nil, err
	}
	out := make([]entities.SalesProfile, len(recs))
	for i, r := range recs {
		out[i] = r.toEntity()
	}
	return out, nil
}

func (s *Store) Products(ctx context.Context) ([]entities.Product, error) {
	var recs []productRecord
	if err := s.readList(ctx, KeyProducts, &recs); err != nil {
		return nil, err
	}
	out := make([]entities.Product, len(recs))
	for i, r := range recs {
		out[i] = r.toEntity()
	}
	return out, nil
}

func (s *Store) CoverImages(ctx context.Context) ([]entities.CoverImage, error) {
	var recs []coverImageRecord
	if err := s.readList(ctx, KeyCoverImages, &recs); err != nil {
		return nil, err
	}
	out := make([]entities.CoverImage, len(recs))
	for i, r := range recs {
		out[i] = r.toEntity()
	}
	return out, nil
}

func (s *Store) MigrationDone(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, KeyMigrationDone)
	if err != nil {
		return false, err
	}
	return string(v) == migrationDoneValue, nil
}

func (s *Store) MarkMigrationDone(ctx context.Context) error {
	return s.put(ctx, KeyMigrationDone, []byte(migrationDoneValue))
}

// Put stores a raw JSON array under one of the collection keys.
func (s *Store) Put(ctx context.Context, key string, raw []byte) error {
	var probe []json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotArray, key, err)
	}
	return s.put(ctx, key, raw)
}

// Import seeds the store from <dir>/<key>.json for every collection key
// present in dir. It returns the keys it imported.
func (s *Store) Import(ctx context.Context, dir string) ([]string, error) {
	var imported []string
	for _, key := range Keys {
		raw, err := os.ReadFile(filepath.Join(dir, key+".json"))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return imported, fmt.Errorf("read %s: %w", key, err)
		}
		if err := s.Put(ctx, key, raw); err != nil {
			return imported, err
		}
		imported = append(imported, key)
	}
	return imported, nil
}

// readList decodes the JSON array stored at key. A missing key is an empty list.
func (s *Store) readList(ctx context.Context, key string, dst any) error {
	v, err := s.get(ctx, key)
	if err != nil {
		return err
	}
	if len(v) == 0 {
		v = []byte("[]")
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("legacy storage is not configured")
	}
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		if v := bucket.Get([]byte(key)); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

func (s *Store) put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("legacy storage is not configured")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		return bucket.Put([]byte(key), value)
	})
}

func (s *Store) ensureBucket() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return fmt.Errorf("create %s bucket: %w", bucketName, err)
		}
		return nil
	})
}
