// Package snapshot persists ledger state snapshots so the chain follower can
// roll back behind a fork point after a reorg instead of re-parsing from
// genesis.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/state"
)

var bucketSnapshots = []byte("snapshots")

// ErrNoSnapshot is returned when the store holds no persisted snapshot.
var ErrNoSnapshot = errors.New("no snapshot persisted")

// Store keeps gob-encoded ledger snapshots in a bbolt database, keyed by
// big-endian chain height so a cursor walk yields height order.
type Store struct {
	db *bbolt.DB
}

// OpenStore opens or creates the bbolt database at dbPath. The parent
// directory is created if it does not exist.
func OpenStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("snapshot: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("snapshot: create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Put persists a snapshot keyed by its chain height, overwriting any
// snapshot previously stored at that height.
func (s *Store) Put(snap *state.State) error {
	if snap == nil {
		return errors.New("snapshot: nil state")
	}
	data, err := encodeGob(snap)
	if err != nil {
		return fmt.Errorf("snapshot: encode state at height %d: %w", snap.ChainHeight, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketSnapshots).Put(heightKey(snap.ChainHeight), data); err != nil {
			return fmt.Errorf("snapshot: put height %d: %w", snap.ChainHeight, err)
		}
		return nil
	})
}

// Latest returns the snapshot with the greatest chain height, or
// ErrNoSnapshot if none is stored.
func (s *Store) Latest() (*state.State, error) {
	var snap state.State
	err := s.db.View(func(tx *bbolt.Tx) error {
		k, v := tx.Bucket(bucketSnapshots).Cursor().Last()
		if k == nil {
			return ErrNoSnapshot
		}
		if err := decodeGob(v, &snap); err != nil {
			return fmt.Errorf("snapshot: decode latest: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Delete removes the snapshot stored at height. Deleting a height that holds
// no snapshot is a no-op.
func (s *Store) Delete(height int32) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketSnapshots).Delete(heightKey(height)); err != nil {
			return fmt.Errorf("snapshot: delete height %d: %w", height, err)
		}
		return nil
	})
}

// Heights returns the chain heights of all stored snapshots in ascending order.
func (s *Store) Heights() ([]int32, error) {
	var heights []int32
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSnapshots).ForEach(func(k, _ []byte) error {
			heights = append(heights, heightFromKey(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: list heights: %w", err)
	}
	return heights, nil
}

// Prune deletes older snapshots so at most keep remain.
func (s *Store) Prune(keep int) error {
	if keep < 1 {
		return fmt.Errorf("snapshot: keep must be positive, got %d", keep)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		excess := b.Stats().KeyN - keep
		c := b.Cursor()
		for k, _ := c.First(); k != nil && excess > 0; k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return fmt.Errorf("snapshot: prune height %d: %w", heightFromKey(k), err)
			}
			excess--
		}
		return nil
	})
}

// heightKey encodes a chain height as a 4-byte big-endian key for sorted
// storage. Heights are never negative.
func heightKey(h int32) []byte {
	k := make([]byte, 4)
	binary.BigEndian.PutUint32(k, uint32(h))
	return k
}

func heightFromKey(k []byte) int32 {
	return int32(binary.BigEndian.Uint32(k))
}

func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
