package main

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/google/uuid"
)

type HTTPHandler struct {
	Relay *Relay
}

func NewHTTPServer(relay *Relay) http.Handler {
	httpHandler := HTTPHandler{relay}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RealIP)
	r.Use(httprate.Limit(60, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint)))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Relay server is running"))
	})
	r.Get("/ws", httpHandler.websocket())
	return r
}

func (h HTTPHandler) websocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			LogErrorWhileUpgradingHTTP(err)
			return
		}
		h.Relay.ServeConn(conn, r.RemoteAddr)
	}
}

// ServeConn runs one connection's read loop until the peer goes away. The
// member stays in its room after disconnect; only the session binding and
// the live client entry are dropped.
func (r *Relay) ServeConn(conn net.Conn, remoteAddr string) {
	defer conn.Close()
	client := NewClient(uuid.NewString())
	r.Connect(client)
	go client.WritePump(conn)
	logger := GetConnLogger(remoteAddr, client.ID)
	logger.Connected()
	for {
		msg, err := wsutil.ReadClientText(conn)
		if err != nil {
			break
		}
		r.HandleEvent(client.ID, msg)
	}
	r.Disconnect(client.ID)
	logger.Disconnected()
}
