package main

import "testing"

func TestSessionsBindAndLookup(t *testing.T) {
	sessions := NewSessions()
	if _, bound := sessions.Lookup("conn-a"); bound {
		t.Errorf("fresh connection reported bound")
	}
	sessions.Bind("conn-a", "123456")
	code, bound := sessions.Lookup("conn-a")
	if !bound || code != "123456" {
		t.Errorf("wrong binding expected: 123456 got: %v bound: %v", code, bound)
	}
}

func TestSessionsUnbindIsIdempotent(t *testing.T) {
	sessions := NewSessions()
	sessions.Bind("conn-a", "123456")
	sessions.Unbind("conn-a")
	sessions.Unbind("conn-a")
	sessions.Unbind("conn-never-bound")
	if _, bound := sessions.Lookup("conn-a"); bound {
		t.Errorf("connection still bound after unbind")
	}
}
