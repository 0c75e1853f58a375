package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockTable_SerializesSameSession(t *testing.T) {
	var table lockTable
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = table.withLock("session-1", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestLockTable_StableShardPerSession(t *testing.T) {
	var table lockTable
	assert.Same(t, table.shard("session-1"), table.shard("session-1"))
}

func TestLockTable_PropagatesError(t *testing.T) {
	var table lockTable
	want := errors.New("boom")

	err := table.withLock("session-1", func() error { return want })
	require.ErrorIs(t, err, want)

	// The lock is released even after an error.
	done := make(chan struct{})
	go func() {
		_ = table.withLock("session-1", func() error { return nil })
		close(done)
	}()
	<-done
}
