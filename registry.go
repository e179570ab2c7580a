package main

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
)

const codeRetryLimit = 1000

type Registry struct {
	rooms           map[string]*Room
	newCode         func() string
	enforceCapacity bool
	lock            sync.RWMutex
}

func NewRegistry(enforceCapacity bool) *Registry {
	return &Registry{rooms: make(map[string]*Room), newCode: GenerateRoomCode, enforceCapacity: enforceCapacity}
}

func (g *Registry) CreateRoom(hostConnID, hostName string, capacity int) string {
	g.lock.Lock()
	defer g.lock.Unlock()
	code := g.newCode()
	for attempt := 0; ; attempt++ {
		if _, exists := g.rooms[code]; !exists {
			break
		}
		// must never overwrite a live room
		if attempt >= codeRetryLimit {
			panic("room code space exhausted!")
		}
		code = g.newCode()
	}
	g.rooms[code] = NewRoom(code, hostConnID, hostName, capacity)
	return code
}

func (g *Registry) JoinRoom(code, connID, name string) (int, []string, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	room, exists := g.rooms[code]
	if !exists {
		return 0, nil, ErrRoomNotFound
	}
	if g.enforceCapacity && room.Capacity > 0 && len(room.Members) >= room.Capacity {
		return 0, nil, ErrRoomFull
	}
	slot := room.addMember(connID, name)
	return slot, room.snapshot().Names(), nil
}

// RemoveMember tolerates a missing room or member, since quits can race with
// room deletion and disconnects.
func (g *Registry) RemoveMember(code, connID string) {
	g.lock.Lock()
	defer g.lock.Unlock()
	room, exists := g.rooms[code]
	if !exists {
		return
	}
	room.removeMember(connID)
}

func (g *Registry) DeleteRoom(code string) error {
	g.lock.Lock()
	defer g.lock.Unlock()
	if _, exists := g.rooms[code]; !exists {
		return ErrRoomNotFound
	}
	delete(g.rooms, code)
	return nil
}

func (g *Registry) Snapshot(code string) (RoomSnapshot, bool) {
	g.lock.RLock()
	defer g.lock.RUnlock()
	room, exists := g.rooms[code]
	if !exists {
		return RoomSnapshot{}, false
	}
	return room.snapshot(), true
}

func (g *Registry) RoomCount() int {
	g.lock.RLock()
	defer g.lock.RUnlock()
	return len(g.rooms)
}

// Sweep drops rooms with no activity for longer than ttl and reports how many
// were removed.
func (g *Registry) Sweep(ttl time.Duration) int {
	g.lock.Lock()
	defer g.lock.Unlock()
	cutoff := time.Now().Add(-ttl)
	swept := 0
	for code, room := range g.rooms {
		if room.lastActive.Before(cutoff) {
			delete(g.rooms, code)
			swept++
		}
	}
	return swept
}
