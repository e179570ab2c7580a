package main

import (
	"errors"
	"sync"
)

// Relay owns the live connection table and turns inbound events into
// registry calls plus fan-out. It never interprets game state.
type Relay struct {
	registry *Registry
	sessions *Sessions
	clients  map[string]*Client
	lock     sync.RWMutex
}

func NewRelay(registry *Registry, sessions *Sessions) *Relay {
	return &Relay{registry: registry, sessions: sessions, clients: make(map[string]*Client)}
}

func (r *Relay) Connect(client *Client) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.clients[client.ID] = client
}

// Disconnect unbinds the session and drops the client. The room keeps the
// member until an explicit roomQuit arrives.
func (r *Relay) Disconnect(connID string) {
	if roomCode, bound := r.sessions.Lookup(connID); bound {
		LogLeftRoom(roomCode, connID)
	}
	r.sessions.Unbind(connID)
	r.lock.Lock()
	defer r.lock.Unlock()
	client, exists := r.clients[connID]
	if !exists {
		return
	}
	delete(r.clients, connID)
	client.Close()
}

func (r *Relay) HandleEvent(senderID string, data []byte) {
	message, err := ParseMessage(data)
	if err != nil {
		return
	}
	if err := message.Validate(); err != nil {
		r.sendError(senderID, "Malformed event payload!")
		return
	}
	switch m := message.(type) {
	case CreateRoomMessage:
		r.handleCreateRoom(senderID, m)
	case JoinRoomMessage:
		r.handleJoinRoom(senderID, m)
	case RollDiceMessage:
		r.broadcastTo(m.RoomCode, MarshalJSON(DiceRolledMessage{
			Type:               "diceRolled",
			RoomCode:           m.RoomCode,
			Dice1Result:        m.Dice1Result,
			Dice2Result:        m.Dice2Result,
			NumberOfDiceToRoll: m.NumberOfDiceToRoll,
		}), senderID)
	case ExtraRollDiceMessage:
		r.broadcastTo(m.RoomCode, MarshalJSON(ExtraDiceRolledMessage{
			Type:               "extraDiceRolled",
			RoomCode:           m.RoomCode,
			ShouldRollAgain:    m.ShouldRollAgain,
			NumberOfDiceToRoll: m.NumberOfDiceToRoll,
			Dice1Result:        m.Dice1Result,
			Dice2Result:        m.Dice2Result,
		}), senderID)
	case NextTurnMessage:
		r.broadcastTo(m.RoomCode, MarshalJSON(DoNextTurnMessage{
			Type:     "doNextTurn",
			RoomCode: m.RoomCode,
		}), senderID)
	case CenterCardPurchaseMessage:
		r.broadcastTo(m.RoomCode, MarshalJSON(CenterCardPurchasedMessage{
			Type:             "centerCardPurchased",
			RoomCode:         m.RoomCode,
			PurchasePlayerID: m.PurchasePlayerID,
			BuildingIndex:    m.BuildingIndex,
			BuildingCost:     m.BuildingCost,
		}), senderID)
	case MajorCardPurchaseMessage:
		r.handleMajorCardPurchase(senderID, m)
	case GameStartMessage:
		r.handleGameStart(m)
	case RoomQuitMessage:
		r.registry.RemoveMember(m.RoomCode, m.SocketID)
		r.sessions.Unbind(m.SocketID)
	case GameWonMessage:
		if err := r.registry.DeleteRoom(m.RoomCode); err != nil {
			LogRoomNotFound(m.RoomCode)
			return
		}
		LogDeletedRoom(m.RoomCode)
	}
}

func (r *Relay) handleCreateRoom(senderID string, m CreateRoomMessage) {
	code := r.registry.CreateRoom(senderID, m.HostName, m.NumOfPlayer)
	r.sessions.Bind(senderID, code)
	snapshot, _ := r.registry.Snapshot(code)
	r.sendTo(senderID, MarshalJSON(RoomCreatedMessage{
		Type:        "roomCreated",
		RoomCode:    code,
		PlayerID:    0,
		SocketID:    senderID,
		PlayerNames: snapshot.Names(),
	}))
	LogCreatedRoom(code)
}

func (r *Relay) handleJoinRoom(senderID string, m JoinRoomMessage) {
	slot, names, err := r.registry.JoinRoom(m.RoomCode, senderID, m.UserName)
	if errors.Is(err, ErrRoomNotFound) {
		r.sendError(senderID, "Room not found!")
		return
	}
	if errors.Is(err, ErrRoomFull) {
		r.sendError(senderID, "Room is full!")
		return
	}
	r.sessions.Bind(senderID, m.RoomCode)
	r.broadcastTo(m.RoomCode, MarshalJSON(RoomJoinedMessage{
		Type:        "roomJoined",
		RoomCode:    m.RoomCode,
		PlayerID:    slot,
		SocketID:    senderID,
		PlayerNames: names,
	}), "")
	LogJoinedRoom(m.RoomCode, slot)
}

func (r *Relay) handleMajorCardPurchase(senderID string, m MajorCardPurchaseMessage) {
	// Names are read from the registry at relay time so the payload reflects
	// the room as it is now, not as the purchaser saw it.
	snapshot, exists := r.registry.Snapshot(m.RoomCode)
	if !exists {
		LogRoomNotFound(m.RoomCode)
		return
	}
	r.broadcastTo(m.RoomCode, MarshalJSON(MajorCardPurchasedMessage{
		Type:             "majorCardPurchased",
		RoomCode:         m.RoomCode,
		PurchasePlayerID: m.PurchasePlayerID,
		BuildingIndex:    m.BuildingIndex,
		BuildingCost:     m.BuildingCost,
		PlayerNames:      snapshot.Names(),
	}), senderID)
}

func (r *Relay) handleGameStart(m GameStartMessage) {
	snapshot, exists := r.registry.Snapshot(m.RoomCode)
	if !exists {
		LogRoomNotFound(m.RoomCode)
		return
	}
	r.broadcastTo(m.RoomCode, MarshalJSON(GameStartedMessage{
		Type:        "gameStarted",
		RoomCode:    m.RoomCode,
		Players:     snapshot.ConnIDs(),
		PlayerNames: snapshot.Names(),
		NumOfPlayer: snapshot.Capacity,
	}), "")
	LogStartedGame(m.RoomCode)
}

func (r *Relay) sendError(connID, message string) {
	r.sendTo(connID, MarshalJSON(ErrorMessage{Type: "error", Message: message}))
}

func (r *Relay) sendTo(connID string, payload []byte) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	client, exists := r.clients[connID]
	if !exists {
		return
	}
	if !client.Send(payload) {
		LogDroppedFrame(connID)
	}
}

// broadcastTo delivers one frame to every room member's live connection,
// skipping excludeID when set. A room that vanished by relay time is a no-op.
func (r *Relay) broadcastTo(roomCode string, payload []byte, excludeID string) {
	snapshot, exists := r.registry.Snapshot(roomCode)
	if !exists {
		LogRoomNotFound(roomCode)
		return
	}
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, member := range snapshot.Members {
		if member.ConnID == excludeID {
			continue
		}
		client, connected := r.clients[member.ConnID]
		if !connected {
			continue
		}
		if !client.Send(payload) {
			LogDroppedFrame(member.ConnID)
		}
	}
}
