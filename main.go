package main

import (
	"net/http"
	"time"
)

func main() {
	config := MustLoadConfig()
	registry := NewRegistry(config.EnforceCapacity)
	sessions := NewSessions()
	relay := NewRelay(registry, sessions)

	if config.RoomIdleTTL > 0 {
		go func() {
			ticker := time.NewTicker(config.RoomIdleTTL)
			for range ticker.C {
				if swept := registry.Sweep(config.RoomIdleTTL); swept > 0 {
					LogSweptRooms(swept)
				}
			}
		}()
	}

	LogStartedServer(config.Port)
	http.ListenAndServe(":"+config.Port, NewHTTPServer(relay))
}
