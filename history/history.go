// Package history records workspace folders the user has picked.
package history

import (
	"cmp"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tutu/codeark/internal/types"
)

const keyPrefix = "folder:"

// Store is a Badger-backed set of recent folders keyed by path.
type Store struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens (or creates) the store in dir.
func Open(dir string) (*Store, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a store that keeps nothing on disk.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record marks path as selected now. Selecting a path again moves it to
// the front.
func (s *Store) Record(path string) error {
	entry := types.RecentFolder{
		Path:       path,
		Name:       filepath.Base(path),
		SelectedAt: s.now().UnixMilli(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal recent folder: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(path), data)
	})
	if err != nil {
		return fmt.Errorf("record %q: %w", path, err)
	}
	return nil
}

// Forget removes path. Unknown paths are ignored.
func (s *Store) Forget(path string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(path))
	})
	if err != nil {
		return fmt.Errorf("forget %q: %w", path, err)
	}
	return nil
}

// List returns up to limit folders, most recently selected first.
// limit <= 0 returns everything.
func (s *Store) List(limit int) ([]types.RecentFolder, error) {
	var out []types.RecentFolder

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var f types.RecentFolder
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &f)
			})
			if err != nil {
				return fmt.Errorf("decode %q: %w", it.Item().Key(), err)
			}
			out = append(out, f)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list recent folders: %w", err)
	}

	slices.SortStableFunc(out, func(a, b types.RecentFolder) int {
		return cmp.Compare(b.SelectedAt, a.SelectedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func key(path string) []byte {
	return []byte(keyPrefix + path)
}
