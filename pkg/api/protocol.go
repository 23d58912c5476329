package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Типы сообщений СЕРВЕР -> КЛИЕНТ
const (
	// MsgIdentity отправляется только новому соединению: его ID
	MsgIdentity = "IDENTITY"
	// MsgItem - снимок предмета (или null, если предмета нет)
	MsgItem = "ITEM"
	// MsgPlayers - полный упорядоченный список игроков. Никогда не дельта.
	MsgPlayers = "PLAYERS"
)

// Действия КЛИЕНТ -> СЕРВЕР
const (
	ActionUpdatePlayer = "UPDATE_PLAYER"
	ActionUpdateItem   = "UPDATE_ITEM"
)

// ErrEmptyPayload - сообщение пришло без данных
var ErrEmptyPayload = errors.New("empty payload")

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerMessage это корневой объект, который сервер отправляет клиенту.
// Payload кодируется один раз и рассылается всем подписчикам как есть.
type ServerMessage struct {
	// Type - одно из MsgIdentity, MsgItem, MsgPlayers
	Type string `json:"type"`

	// Payload - данные, структура зависит от Type
	Payload json.RawMessage `json:"payload"`
}

// IdentityPayload - ответ на подключение
type IdentityPayload struct {
	ConnID string `json:"connId"`
}

// NewServerMessage кодирует payload в сообщение. nil кодируется как JSON null.
func NewServerMessage(msgType string, payload any) (ServerMessage, error) {
	if msgType == "" {
		return ServerMessage{}, errors.New("message type is empty")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return ServerMessage{}, fmt.Errorf("encode %s payload: %w", msgType, err)
	}
	return ServerMessage{Type: msgType, Payload: raw}, nil
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия (UPDATE_PLAYER, UPDATE_ITEM).
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// NewClientCommand кодирует payload в команду
func NewClientCommand(action string, payload any) (ClientCommand, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return ClientCommand{}, fmt.Errorf("encode %s payload: %w", action, err)
	}
	return ClientCommand{Action: action, Payload: raw}, nil
}

// DecodePayload распаковывает данные сообщения в T.
// Пустой payload и JSON null считаются ошибкой.
func DecodePayload[T any](raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 || string(raw) == "null" {
		return out, ErrEmptyPayload
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}
