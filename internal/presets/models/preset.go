package models

import "encoding/json"

// ============================================================
// Preset Model
// ============================================================

// Preset — сохранённый запрос на чертёж. Payload хранится как есть и
// пересобирается в сцену при каждом обращении.
type Preset struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Shape     string          `json:"shape"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt string          `json:"created_at"`
}
