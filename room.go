package main

import (
	"slices"
	"time"
)

type Member struct {
	ConnID string
	Name   string
	Slot   int
}

type Room struct {
	Code       string
	HostConnID string
	Capacity   int
	Members    []Member
	nextSlot   int
	lastActive time.Time
}

func NewRoom(code, hostConnID, hostName string, capacity int) *Room {
	room := &Room{Code: code, HostConnID: hostConnID, Capacity: capacity}
	room.addMember(hostConnID, hostName)
	return room
}

// Slots are assigned from a counter and never reused, so removing a member
// does not renumber the players that stay.
func (r *Room) addMember(connID, name string) int {
	slot := r.nextSlot
	r.nextSlot++
	r.Members = append(r.Members, Member{ConnID: connID, Name: name, Slot: slot})
	r.touch()
	return slot
}

func (r *Room) removeMember(connID string) bool {
	for i, member := range r.Members {
		if member.ConnID == connID {
			r.Members = slices.Delete(r.Members, i, i+1)
			r.touch()
			return true
		}
	}
	return false
}

func (r *Room) touch() {
	r.lastActive = time.Now()
}

func (r *Room) snapshot() RoomSnapshot {
	return RoomSnapshot{
		Code:       r.Code,
		HostConnID: r.HostConnID,
		Capacity:   r.Capacity,
		Members:    slices.Clone(r.Members),
	}
}

// RoomSnapshot is a copy handed out for payload enrichment, detached from the
// registry's live record.
type RoomSnapshot struct {
	Code       string
	HostConnID string
	Capacity   int
	Members    []Member
}

func (s RoomSnapshot) Names() []string {
	names := make([]string, len(s.Members))
	for i, member := range s.Members {
		names[i] = member.Name
	}
	return names
}

func (s RoomSnapshot) ConnIDs() []string {
	ids := make([]string, len(s.Members))
	for i, member := range s.Members {
		ids[i] = member.ConnID
	}
	return ids
}
