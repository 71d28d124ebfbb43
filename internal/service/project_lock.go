package service

import "sync"

// projectLocks hands out one mutex per project ID. Entries are dropped once
// no goroutine holds or waits on them.
type projectLocks struct {
	mu    sync.Mutex
	locks map[string]*projectLock
}

type projectLock struct {
	mu   sync.Mutex
	refs int
}

func newProjectLocks() *projectLocks {
	return &projectLocks{locks: make(map[string]*projectLock)}
}

// Lock blocks until the project's mutex is held and returns its release func.
func (p *projectLocks) Lock(projectID string) func() {
	p.mu.Lock()
	l, ok := p.locks[projectID]
	if !ok {
		l = &projectLock{}
		p.locks[projectID] = l
	}
	l.refs++
	p.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, projectID)
		}
		p.mu.Unlock()
	}
}

func (p *projectLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
