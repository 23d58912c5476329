package domain

import "encoding/json"

// InternalCommand - событие для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	ConnID  string          // Соединение, от которого пришло событие
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
