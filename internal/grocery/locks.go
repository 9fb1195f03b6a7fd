package grocery

import "sync"

// planLocks serializes regenerations per weekly-plan id so one request's
// insert cannot be wiped by another's delete.
type planLocks struct {
	mu    sync.Mutex
	plans map[int64]*sync.Mutex
}

func newPlanLocks() *planLocks {
	return &planLocks{plans: make(map[int64]*sync.Mutex)}
}

// lock acquires the mutex for a plan id and returns its unlock func.
func (l *planLocks) lock(planID int64) func() {
	l.mu.Lock()
	m, ok := l.plans[planID]
	if !ok {
		m = &sync.Mutex{}
		l.plans[planID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
