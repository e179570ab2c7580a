package main

import (
	"errors"
	"testing"
)

func TestParseMessageTypes(t *testing.T) {
	message, err := ParseMessage([]byte(`{"type":"createRoom","hostName":"Alice","numOfPlayer":4}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	create, ok := message.(CreateRoomMessage)
	if !ok {
		t.Fatalf("wrong message type: %T", message)
	}
	if create.HostName != "Alice" || create.NumOfPlayer != 4 {
		t.Errorf("wrong fields: %+v", create)
	}

	message, _ = ParseMessage([]byte(`{"type":"rollDice","roomCode":"123456","numberOfDiceToRoll":2,"dice1Result":3,"dice2Result":5}`))
	roll, ok := message.(RollDiceMessage)
	if !ok {
		t.Fatalf("wrong message type: %T", message)
	}
	if roll.Dice1Result != 3 || roll.Dice2Result != 5 || roll.NumberOfDiceToRoll != 2 {
		t.Errorf("wrong fields: %+v", roll)
	}
}

func TestParseMessageUndefinedType(t *testing.T) {
	_, err := ParseMessage([]byte(`{"type":"teleport","roomCode":"123456"}`))
	if !errors.Is(err, ErrUndefinedType) {
		t.Errorf("expected ErrUndefinedType got: %v", err)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		message InboundMessage
	}{
		{"createRoom without host name", CreateRoomMessage{NumOfPlayer: 4}},
		{"createRoom without player count", CreateRoomMessage{HostName: "Alice"}},
		{"joinRoom without code", JoinRoomMessage{UserName: "Bob"}},
		{"joinRoom without name", JoinRoomMessage{RoomCode: "123456"}},
		{"rollDice without code", RollDiceMessage{Dice1Result: 3}},
		{"extraRollDice without code", ExtraRollDiceMessage{ShouldRollAgain: true}},
		{"nextTurn without code", NextTurnMessage{}},
		{"centerCardPurchase without code", CenterCardPurchaseMessage{BuildingIndex: 1}},
		{"majorCardPurchase without code", MajorCardPurchaseMessage{BuildingIndex: 1}},
		{"gameStart without code", GameStartMessage{}},
		{"roomQuit without socket id", RoomQuitMessage{RoomCode: "123456"}},
		{"gameWon without code", GameWonMessage{}},
	}
	for _, c := range cases {
		if err := c.message.Validate(); !errors.Is(err, ErrMalformedEvent) {
			t.Errorf("%v: expected ErrMalformedEvent got: %v", c.name, err)
		}
	}
}

func TestValidateAcceptsCompletePayloads(t *testing.T) {
	cases := []InboundMessage{
		CreateRoomMessage{HostName: "Alice", NumOfPlayer: 4},
		JoinRoomMessage{RoomCode: "123456", UserName: "Bob"},
		RollDiceMessage{RoomCode: "123456"},
		ExtraRollDiceMessage{RoomCode: "123456"},
		NextTurnMessage{RoomCode: "123456"},
		CenterCardPurchaseMessage{RoomCode: "123456"},
		MajorCardPurchaseMessage{RoomCode: "123456"},
		GameStartMessage{RoomCode: "123456"},
		RoomQuitMessage{RoomCode: "123456", SocketID: "conn-a"},
		GameWonMessage{RoomCode: "123456"},
	}
	for _, message := range cases {
		if err := message.Validate(); err != nil {
			t.Errorf("%T: unexpected error: %v", message, err)
		}
	}
}
