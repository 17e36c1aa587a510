package live

import "encoding/json"

// ============================================================
// Envelopes
// ============================================================

const (
	TypeHello = "hello"
	TypeScene = "scene"
	TypeError = "error"
)

// Intent — сообщение клиента: "solid" или "polygon" с телом запроса на чертёж.
type Intent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Envelope — сообщение сервера. Sequence растёт с каждой разосланной сценой.
type Envelope struct {
	Type     string `json:"type"`
	Sequence uint64 `json:"sequence"`
	ClientID string `json:"clientId,omitempty"`
	Payload  any    `json:"payload,omitempty"`
	Error    string `json:"error,omitempty"`
}
