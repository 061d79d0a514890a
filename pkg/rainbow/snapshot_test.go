// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package rainbow

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(InMemoryStoreConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	table := populateFirst(t, 100)
	require.NoError(t, store.Save(ctx, table))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Frozen(), "loaded snapshots are read-only")
	assert.Equal(t, table.Size(), loaded.Size())
	assert.True(t, bytes.Equal(table.Bytes(), loaded.Bytes()))

	index, _, err := loaded.LookupByPrime(97)
	require.NoError(t, err)
	assert.Equal(t, uint64(25), index)
}

func TestLoadWithoutSnapshot(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveReplacesPriorSnapshot(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, populateFirst(t, 100)))
	small := populateFirst(t, 10)
	require.NoError(t, store.Save(ctx, small))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Size())
	assert.Equal(t, uint64(29), loaded.MaxPrime())
}

func TestSaveOnDisk(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultStoreConfig(dir)
	cfg.SyncWrites = false // keep the test fast
	store, err := OpenStore(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, populateFirst(t, 25)))
	require.NoError(t, store.Close())

	// A fresh handle on the same directory sees the snapshot.
	reopened, err := OpenStore(cfg)
	require.NoError(t, err)
	defer reopened.Close()
	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(97), loaded.MaxPrime())
}
