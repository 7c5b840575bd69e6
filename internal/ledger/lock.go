package ledger

import "sync"

// lockTable hands out one mutex per ledger entry id so concurrent settlement
// attempts against the same entry are serialized before the precondition
// checks run. Mutexes are kept for the life of the process; the table is
// bounded by the number of distinct entries settled.
type lockTable struct {
	mu    *sync.Mutex
	locks map[uint]*sync.Mutex
}

func newLockTable() lockTable {
	return lockTable{mu: &sync.Mutex{}, locks: make(map[uint]*sync.Mutex)}
}

// lock acquires the mutex for id and returns its release function.
func (t lockTable) lock(id uint) func() {
	t.mu.Lock()
	l, ok := t.locks[id]
	if !ok {
		l = &sync.Mutex{}
		t.locks[id] = l
	}
	t.mu.Unlock()
	l.Lock()
	return l.Unlock
}
