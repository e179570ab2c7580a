package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

type ConnLogger struct {
	zerolog zerolog.Logger
}

func GetConnLogger(ip string, connID string) ConnLogger {
	return ConnLogger{log.With().Str("ip", ip).Str("conn-id", connID).Logger()}
}

func (l ConnLogger) Connected() {
	l.zerolog.Info().Msg("Client connected")
}

func (l ConnLogger) Disconnected() {
	l.zerolog.Info().Msg("Client disconnected")
}

func LogCreatedRoom(roomCode string) {
	log.Info().Str("room-code", roomCode).Msg("Room created")
}

func LogJoinedRoom(roomCode string, playerID int) {
	log.Info().Str("room-code", roomCode).Int("player-id", playerID).Msg("Room joined")
}

func LogLeftRoom(roomCode string, connID string) {
	log.Info().Str("room-code", roomCode).Str("conn-id", connID).Msg("Left room")
}

func LogStartedGame(roomCode string) {
	log.Info().Str("room-code", roomCode).Msg("Game started")
}

func LogDeletedRoom(roomCode string) {
	log.Info().Str("room-code", roomCode).Msg("Room deleted after game completion")
}

func LogRoomNotFound(roomCode string) {
	log.Debug().Str("room-code", roomCode).Msg("Room not found")
}

func LogDroppedFrame(connID string) {
	log.Warn().Str("conn-id", connID).Msg("Send queue full, frame dropped")
}

func LogSweptRooms(count int) {
	log.Info().Int("count", count).Msg("Swept idle rooms")
}

func LogStartedServer(port string) {
	log.Info().Msgf("Starting server on port %v", port)
}

func LogErrorWhileUpgradingHTTP(err error) {
	log.Error().Err(err).Msg("Error while upgrading HTTP")
}
