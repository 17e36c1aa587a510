// Package live раздаёт чертежи по websocket: ведущий присылает параметры
// фигуры, а собранную сцену получают все подключённые зрители.
package live

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/service"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// ============================================================
// Server
// ============================================================

type Server struct {
	engine *service.Engine
	hub    *Hub

	mu       sync.Mutex
	sequence uint64
}

func NewServer(engine *service.Engine, hub *Hub) *Server {
	return &Server{engine: engine, hub: hub}
}

// ServeHTTP поднимает websocket и читает намерения клиента до разрыва.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("[LIVE] Accept error: %v", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	clientID := uuid.NewString()
	if err := s.hub.Join(conn, clientID); err != nil {
		log.Printf("[LIVE] Client %s join failed: %v", clientID, err)
		return
	}
	defer s.hub.Remove(conn)
	log.Printf("[LIVE] Client %s connected, total %d", clientID, s.hub.Len())

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			log.Printf("[LIVE] Client %s disconnected: %v", clientID, websocket.CloseStatus(err))
			return
		}
		s.handle(ctx, conn, clientID, data)
	}
}

func (s *Server) handle(ctx context.Context, conn *websocket.Conn, clientID string, data []byte) {
	var intent Intent
	if err := json.Unmarshal(data, &intent); err != nil {
		s.reject(conn, "invalid JSON message")
		return
	}

	res, err := s.engine.Build(intent.Type, intent.Payload)
	if err != nil {
		log.Printf("[LIVE] Client %s: %v", clientID, err)
		s.reject(conn, err.Error())
		return
	}
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequence++
	msg, err := json.Marshal(Envelope{Type: TypeScene, Sequence: s.sequence, ClientID: clientID, Payload: res})
	if err != nil {
		log.Printf("[LIVE] Encode scene: %v", err)
		return
	}
	s.hub.Broadcast(s.sequence, msg)
}

// reject отвечает ошибкой только отправителю.
func (s *Server) reject(conn *websocket.Conn, reason string) {
	msg, _ := json.Marshal(Envelope{Type: TypeError, Sequence: s.current(), Error: reason})
	_ = send(conn, msg)
}

func (s *Server) current() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sequence
}
