// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package rainbow

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Snapshot persistence on BadgerDB. Entries are keyed by big-endian
// prime so badger's key order is the table's sort order; a meta key
// records the expected count so torn snapshots are detected on load.

const (
	entryKeyPrefix = "rainbow/entry/"
	metaKey        = "rainbow/meta"
)

// StoreConfig configures the snapshot store.
type StoreConfig struct {
	// Path is the directory for BadgerDB files. Ignored when
	// InMemory is true.
	Path string

	// InMemory keeps the snapshot off disk. Useful for testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives badger's internal logging. Nil disables it.
	Logger *slog.Logger
}

// DefaultStoreConfig returns a durable on-disk configuration.
func DefaultStoreConfig(path string) StoreConfig {
	return StoreConfig{Path: path, SyncWrites: true}
}

// InMemoryStoreConfig returns a diskless configuration for tests.
func InMemoryStoreConfig() StoreConfig {
	return StoreConfig{InMemory: true}
}

// Store persists frozen tables to BadgerDB.
type Store struct {
	db *badger.DB
}

// badgerLogger adapts slog to badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenStore opens the snapshot database. Callers must Close it.
func OpenStore(cfg StoreConfig) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("rainbow: store path is required for persistent snapshots")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create snapshot directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// entryKey builds the key for one prime: keys compare in prime order.
func entryKey(p uint64) []byte {
	key := make([]byte, len(entryKeyPrefix)+8)
	copy(key, entryKeyPrefix)
	binary.BigEndian.PutUint64(key[len(entryKeyPrefix):], p)
	return key
}

// Save writes the table as a snapshot, replacing any prior one. The
// meta key goes in last so a partially written snapshot fails to
// load instead of loading short.
func (s *Store) Save(ctx context.Context, t *Table) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("rainbow: save canceled: %w", err)
	}
	if err := s.db.DropPrefix([]byte(entryKeyPrefix)); err != nil {
		return fmt.Errorf("clear prior snapshot: %w", err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(metaKey))
	}); err != nil {
		return fmt.Errorf("clear prior snapshot meta: %w", err)
	}

	batch := s.db.NewWriteBatch()
	defer batch.Cancel()
	for i := 0; i < t.Size(); i++ {
		if i%1024 == 0 && ctx.Err() != nil {
			return fmt.Errorf("rainbow: save canceled: %w", ctx.Err())
		}
		e, err := t.Entry(i)
		if err != nil {
			return err
		}
		val := make([]byte, 8+1+2)
		binary.BigEndian.PutUint64(val, e.Index)
		val[8] = byte(e.Position.Ring)
		binary.BigEndian.PutUint16(val[9:], uint16(e.Position.Pos))
		if err := batch.Set(entryKey(e.Prime), val); err != nil {
			return fmt.Errorf("write entry for prime %d: %w", e.Prime, err)
		}
	}
	if err := batch.Flush(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}

	meta := make([]byte, 8)
	binary.BigEndian.PutUint64(meta, uint64(t.Size()))
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(metaKey), meta)
	}); err != nil {
		return fmt.Errorf("write snapshot meta: %w", err)
	}
	return nil
}

// Load rebuilds a frozen table from the snapshot. Missing meta,
// short entry counts, or broken cache invariants fail with
// ErrCorrupt wrapped details; an absent snapshot fails with
// ErrNotFound.
func (s *Store) Load(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rainbow: load canceled: %w", err)
	}

	var expected uint64
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("%w: bad meta length", ErrCorrupt)
			}
			expected = binary.BigEndian.Uint64(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	t := New(int(expected))
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := item.Key()
			prime := binary.BigEndian.Uint64(key[len(entryKeyPrefix):])
			var index uint64
			var ring, pos int
			if err := item.Value(func(val []byte) error {
				if len(val) != 8+1+2 {
					return fmt.Errorf("%w: bad entry length for prime %d", ErrCorrupt, prime)
				}
				index = binary.BigEndian.Uint64(val)
				ring = int(val[8])
				pos = int(binary.BigEndian.Uint16(val[9:]))
				return nil
			}); err != nil {
				return err
			}
			if index != t.MaxIndex()+1 {
				return fmt.Errorf("%w: prime %d has index %d, want %d",
					ErrCorrupt, prime, index, t.MaxIndex()+1)
			}
			if err := t.Insert(prime); err != nil {
				return fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			if e, _ := t.Entry(t.Size() - 1); e.Position.Ring != ring || e.Position.Pos != pos {
				return fmt.Errorf("%w: prime %d stored position (%d, %d) does not match its index",
					ErrCorrupt, prime, ring, pos)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if t.MaxIndex() != expected {
		return nil, fmt.Errorf("%w: snapshot holds %d entries, meta says %d",
			ErrCorrupt, t.MaxIndex(), expected)
	}
	t.Freeze()
	return t, nil
}
