package main

import "sync"

// Sessions tracks which room each live connection is bound to. A connection
// without an entry is unbound.
type Sessions struct {
	bindings map[string]string
	lock     sync.RWMutex
}

func NewSessions() *Sessions {
	return &Sessions{bindings: make(map[string]string)}
}

func (s *Sessions) Bind(connID, roomCode string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.bindings[connID] = roomCode
}

// Unbind is idempotent: unbinding an unknown connection is a no-op.
func (s *Sessions) Unbind(connID string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.bindings, connID)
}

func (s *Sessions) Lookup(connID string) (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	code, bound := s.bindings[connID]
	return code, bound
}
