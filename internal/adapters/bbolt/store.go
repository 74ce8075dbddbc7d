// Package bbolt implements the ports.Storage interface using bbolt (embedded
// B+ tree). Each project gets its own top-level bucket with a "history"
// sub-bucket of JSON-serialized records keyed by a monotonic sequence number.
// Writes are transactional — a crash mid-write cannot corrupt previously
// committed records.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/rkeating/reli/internal/ports"
)

var bucketHistory = []byte("history")

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AppendRecord appends one record to a project's history. Keys are the
// bucket's NextSequence encoded big-endian so byte order equals insertion
// order.
func (s *Store) AppendRecord(projectID string, rec *ports.Record) error {
	if rec == nil {
		return fmt.Errorf("nil record")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		proj, err := tx.CreateBucketIfNotExists([]byte(projectID))
		if err != nil {
			return err
		}
		hist, err := proj.CreateBucketIfNotExists(bucketHistory)
		if err != nil {
			return err
		}
		seq, err := hist.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return hist.Put(key, data)
	})
}

// ListRecords returns up to limit records for a project, newest first.
// A limit <= 0 returns all records. A missing project yields an empty slice.
func (s *Store) ListRecords(projectID string, limit int) ([]*ports.Record, error) {
	var out []*ports.Record

	err := s.db.View(func(tx *bolt.Tx) error {
		proj := tx.Bucket([]byte(projectID))
		if proj == nil {
			return nil
		}
		hist := proj.Bucket(bucketHistory)
		if hist == nil {
			return nil
		}

		c := hist.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}
			var rec ports.Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("unmarshal record %x: %w", k, err)
			}
			out = append(out, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteProject removes all stored data for a project. Idempotent: deleting
// a project that was never stored is not an error.
func (s *Store) DeleteProject(projectID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(projectID)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(projectID))
	})
}
