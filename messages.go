package main

import "errors"

var (
	ErrUndefinedType  = errors.New("undefined event type")
	ErrMalformedEvent = errors.New("malformed event payload")
)

type InboundMessage interface {
	Validate() error
}

type CreateRoomMessage struct {
	HostName    string `json:"hostName"`
	NumOfPlayer int    `json:"numOfPlayer"`
}

func (m CreateRoomMessage) Validate() error {
	if m.HostName == "" || m.NumOfPlayer <= 0 {
		return ErrMalformedEvent
	}
	return nil
}

type JoinRoomMessage struct {
	RoomCode string `json:"roomCode"`
	UserName string `json:"userName"`
}

func (m JoinRoomMessage) Validate() error {
	if m.RoomCode == "" || m.UserName == "" {
		return ErrMalformedEvent
	}
	return nil
}

type RollDiceMessage struct {
	RoomCode           string `json:"roomCode"`
	NumberOfDiceToRoll int    `json:"numberOfDiceToRoll"`
	Dice1Result        int    `json:"dice1Result"`
	Dice2Result        int    `json:"dice2Result"`
}

func (m RollDiceMessage) Validate() error {
	if m.RoomCode == "" {
		return ErrMalformedEvent
	}
	return nil
}

type ExtraRollDiceMessage struct {
	RoomCode           string `json:"roomCode"`
	ShouldRollAgain    bool   `json:"shouldRollAgain"`
	NumberOfDiceToRoll int    `json:"numberOfDiceToRoll"`
	Dice1Result        int    `json:"dice1Result"`
	Dice2Result        int    `json:"dice2Result"`
}

func (m ExtraRollDiceMessage) Validate() error {
	if m.RoomCode == "" {
		return ErrMalformedEvent
	}
	return nil
}

type NextTurnMessage struct {
	RoomCode string `json:"roomCode"`
}

func (m NextTurnMessage) Validate() error {
	if m.RoomCode == "" {
		return ErrMalformedEvent
	}
	return nil
}

type CenterCardPurchaseMessage struct {
	RoomCode         string `json:"roomCode"`
	PurchasePlayerID int    `json:"purchasePlayerId"`
	BuildingIndex    int    `json:"buildingIndex"`
	BuildingCost     int    `json:"buildingCost"`
}

func (m CenterCardPurchaseMessage) Validate() error {
	if m.RoomCode == "" {
		return ErrMalformedEvent
	}
	return nil
}

type MajorCardPurchaseMessage struct {
	RoomCode         string `json:"roomCode"`
	PurchasePlayerID int    `json:"purchasePlayerId"`
	BuildingIndex    int    `json:"buildingIndex"`
	BuildingCost     int    `json:"buildingCost"`
}

func (m MajorCardPurchaseMessage) Validate() error {
	if m.RoomCode == "" {
		return ErrMalformedEvent
	}
	return nil
}

type GameStartMessage struct {
	RoomCode string `json:"roomCode"`
}

func (m GameStartMessage) Validate() error {
	if m.RoomCode == "" {
		return ErrMalformedEvent
	}
	return nil
}

type RoomQuitMessage struct {
	RoomCode string `json:"roomCode"`
	SocketID string `json:"socketID"`
}

func (m RoomQuitMessage) Validate() error {
	if m.RoomCode == "" || m.SocketID == "" {
		return ErrMalformedEvent
	}
	return nil
}

type GameWonMessage struct {
	RoomCode string `json:"roomCode"`
}

func (m GameWonMessage) Validate() error {
	if m.RoomCode == "" {
		return ErrMalformedEvent
	}
	return nil
}

// ParseMessage returns one of the inbound message structs.
func ParseMessage(data []byte) (InboundMessage, error) {
	tag := UnmarshalJSON[struct {
		Type string `json:"type"`
	}](data)
	var message InboundMessage
	switch tag.Type {
	case "createRoom":
		message = UnmarshalJSON[CreateRoomMessage](data)
	case "joinRoom":
		message = UnmarshalJSON[JoinRoomMessage](data)
	case "rollDice":
		message = UnmarshalJSON[RollDiceMessage](data)
	case "extraRollDice":
		message = UnmarshalJSON[ExtraRollDiceMessage](data)
	case "nextTurn":
		message = UnmarshalJSON[NextTurnMessage](data)
	case "centerCardPurchase":
		message = UnmarshalJSON[CenterCardPurchaseMessage](data)
	case "majorCardPurchase":
		message = UnmarshalJSON[MajorCardPurchaseMessage](data)
	case "gameStart":
		message = UnmarshalJSON[GameStartMessage](data)
	case "roomQuit":
		message = UnmarshalJSON[RoomQuitMessage](data)
	case "gameWon":
		message = UnmarshalJSON[GameWonMessage](data)
	default:
		return nil, ErrUndefinedType
	}
	return message, nil
}

type RoomCreatedMessage struct {
	Type        string   `json:"type"`
	RoomCode    string   `json:"roomCode"`
	PlayerID    int      `json:"playerId"`
	SocketID    string   `json:"socketID"`
	PlayerNames []string `json:"playerNames"`
}

type RoomJoinedMessage struct {
	Type        string   `json:"type"`
	RoomCode    string   `json:"roomCode"`
	PlayerID    int      `json:"playerId"`
	SocketID    string   `json:"socketID"`
	PlayerNames []string `json:"playerNames"`
}

type DiceRolledMessage struct {
	Type               string `json:"type"`
	RoomCode           string `json:"roomCode"`
	Dice1Result        int    `json:"dice1Result"`
	Dice2Result        int    `json:"dice2Result"`
	NumberOfDiceToRoll int    `json:"numberOfDiceToRoll"`
}

type ExtraDiceRolledMessage struct {
	Type               string `json:"type"`
	RoomCode           string `json:"roomCode"`
	ShouldRollAgain    bool   `json:"shouldRollAgain"`
	NumberOfDiceToRoll int    `json:"numberOfDiceToRoll"`
	Dice1Result        int    `json:"dice1Result"`
	Dice2Result        int    `json:"dice2Result"`
}

type DoNextTurnMessage struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
}

type CenterCardPurchasedMessage struct {
	Type             string `json:"type"`
	RoomCode         string `json:"roomCode"`
	PurchasePlayerID int    `json:"purchasePlayerId"`
	BuildingIndex    int    `json:"buildingIndex"`
	BuildingCost     int    `json:"buildingCost"`
}

type MajorCardPurchasedMessage struct {
	Type             string   `json:"type"`
	RoomCode         string   `json:"roomCode"`
	PurchasePlayerID int      `json:"purchasePlayerId"`
	BuildingIndex    int      `json:"buildingIndex"`
	BuildingCost     int      `json:"buildingCost"`
	PlayerNames      []string `json:"playerNames"`
}

type GameStartedMessage struct {
	Type        string   `json:"type"`
	RoomCode    string   `json:"roomCode"`
	Players     []string `json:"players"`
	PlayerNames []string `json:"playerNames"`
	NumOfPlayer int      `json:"numOfPlayer"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
