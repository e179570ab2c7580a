package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	EnforceCapacity bool
	RoomIdleTTL     time.Duration
}

func MustLoadConfig() *Config {
	godotenv.Load()
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	enforceCapacity := os.Getenv("ENFORCE_CAPACITY") == "true"
	roomIdleTTL := time.Duration(0)
	if raw := os.Getenv("ROOM_IDLE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			panic("ROOM_IDLE_TTL is not a valid duration!")
		}
		roomIdleTTL = parsed
	}
	return &Config{port, enforceCapacity, roomIdleTTL}
}
