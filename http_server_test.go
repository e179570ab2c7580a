package main

import (
	"encoding/json"
	"net"
	"net/http/httptest"
	"testing"

	"github.com/gobwas/ws/wsutil"
)

func TestHealthRoute(t *testing.T) {
	handler := NewHTTPServer(newTestRelay(false))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest("GET", "/", nil))
	if res.Code != 200 {
		t.Errorf("wrong status expected: 200 got: %d", res.Code)
	}
	if res.Body.String() != "Relay server is running" {
		t.Errorf("wrong body: %v", res.Body.String())
	}
}

func TestServeConnCreateRoom(t *testing.T) {
	relay := newTestRelay(false)
	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		relay.ServeConn(server, "pipe")
		close(done)
	}()

	wsutil.WriteClientText(client, MarshalJSON(map[string]any{"type": "createRoom", "hostName": "Alice", "numOfPlayer": 4}))
	data, err := wsutil.ReadServerText(client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var created RoomCreatedMessage
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("incorrect json sent: %v", err)
	}
	if created.Type != "roomCreated" {
		t.Errorf("wrong type expected: roomCreated got: %v", created.Type)
	}
	if created.PlayerID != 0 {
		t.Errorf("wrong playerId expected: 0 got: %d", created.PlayerID)
	}
	if len(created.PlayerNames) != 1 || created.PlayerNames[0] != "Alice" {
		t.Errorf("wrong playerNames: %v", created.PlayerNames)
	}
	if relay.registry.RoomCount() != 1 {
		t.Errorf("room not registered")
	}

	client.Close()
	<-done

	snapshot, exists := relay.registry.Snapshot(created.RoomCode)
	if !exists {
		t.Fatalf("disconnect deleted the room")
	}
	if len(snapshot.Members) != 1 {
		t.Errorf("disconnect mutated membership: %v", snapshot.Members)
	}
}
