package session

import (
	"hash/fnv"
	"sync"
)

const lockShards = 32

// lockTable serializes mutating work per session within one process. Sessions
// hash onto a fixed set of shards; two sessions sharing a shard serialize
// against each other, which is acceptable at rehearsal concurrency. Cross-
// replica safety comes from the conditional status updates underneath, not
// from here.
type lockTable struct {
	shards [lockShards]sync.Mutex
}

func (t *lockTable) shard(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &t.shards[h.Sum32()%lockShards]
}

// withLock runs fn while holding the session's shard lock.
func (t *lockTable) withLock(sessionID string, fn func() error) error {
	mu := t.shard(sessionID)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
