// Package observe streams engine events to local spectators over websocket.
package observe

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"git.lost.host/meutraa/dreamdirect/internal/engine"
	"git.lost.host/meutraa/dreamdirect/internal/game"
)

// Messages queued per client before new ones are dropped
const clientBuffer = 256

type Bootstrap struct {
	Level game.Level `json:"level"`
	Seed  int64      `json:"seed"`
}

type Message struct {
	Type  string        `json:"type"`
	Event *engine.Event `json:"event,omitempty"`
	// Live arrows, sent with frame messages
	Arrows []game.Snapshot `json:"arrows,omitempty"`
	Beat   float64         `json:"beat"`
}

type Server struct {
	log *log.Logger

	upgrader websocket.Upgrader
	nextID   atomic.Uint64
	dropped  atomic.Uint64

	mu        sync.Mutex
	clients   map[uint64]chan []byte
	bootstrap Bootstrap
}

func NewServer(logger *log.Logger) *Server {
	if nil == logger {
		logger = log.Default()
	}
	return &Server{
		log:     logger,
		clients: map[uint64]chan []byte{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // loopback only
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/bootstrap", s.BootstrapHandler())
	mux.Handle("/observe", s.WSHandler())
	return mux
}

// SetBootstrap replaces what new spectators receive from /bootstrap.
func (s *Server) SetBootstrap(b Bootstrap) {
	s.mu.Lock()
	s.bootstrap = b
	s.mu.Unlock()
}

func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Dropped counts messages discarded because a client fell behind.
func (s *Server) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Server) PublishEvent(beat float64, ev engine.Event) {
	s.publish(Message{Type: "event", Event: &ev, Beat: beat})
}

func (s *Server) PublishFrame(beat float64, arrows []game.Snapshot) {
	s.publish(Message{Type: "frame", Arrows: arrows, Beat: beat})
}

// publish never blocks the caller.
func (s *Server) publish(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.clients) == 0 {
		return
	}
	b, err := json.Marshal(m)
	if err != nil {
		s.log.Println("unable to marshal", m.Type, err)
		return
	}
	for _, out := range s.clients {
		select {
		case out <- b:
		default:
			s.dropped.Add(1)
		}
	}
}

func (s *Server) BootstrapHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}
		s.mu.Lock()
		b := s.bootstrap
		s.mu.Unlock()

		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(b)
	}
}

func (s *Server) WSHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		id := s.nextID.Add(1)
		out := make(chan []byte, clientBuffer)
		s.mu.Lock()
		s.clients[id] = out
		s.mu.Unlock()
		s.log.Printf("spectator %d joined from %v", id, r.RemoteAddr)
		defer func() {
			s.mu.Lock()
			delete(s.clients, id)
			s.mu.Unlock()
			s.log.Printf("spectator %d left", id)
		}()

		// Spectators never send; reading only notices the close.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-closed:
				return
			case b := <-out:
				_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					return
				}
			}
		}
	}
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
