package live

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 3 * time.Second

// Hub хранит подключённых клиентов и последнюю разосланную сцену,
// чтобы новый зритель сразу видел текущий чертёж.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	last    []byte
	lastSeq uint64
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Join отправляет клиенту hello и последнюю сцену и только потом
// регистрирует его. Всё происходит под тем же замком, что и Broadcast,
// поэтому новая рассылка не может прийти раньше повтора.
func (h *Hub) Join(conn *websocket.Conn, clientID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	hello, err := json.Marshal(Envelope{Type: TypeHello, Sequence: h.lastSeq, ClientID: clientID})
	if err != nil {
		return err
	}
	if err := send(conn, hello); err != nil {
		return err
	}
	if h.last != nil {
		if err := send(conn, h.last); err != nil {
			return err
		}
	}
	h.clients[conn] = struct{}{}
	return nil
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast отправляет сцену с номером seq всем; клиенты, не принявшие её
// за writeTimeout, отключаются.
func (h *Hub) Broadcast(seq uint64, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = message
	h.lastSeq = seq
	for conn := range h.clients {
		if err := send(conn, message); err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
}

func send(conn *websocket.Conn, message []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, message)
}
