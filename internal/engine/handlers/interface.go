package handlers

import (
	"apple-chase/internal/domain"
	"encoding/json"
	"errors"
)

// ErrUnknownSession - команда пришла от соединения, которое сервер не знает
// (не было CONNECT или уже был DISCONNECT)
var ErrUnknownSession = errors.New("unknown session")

// StateStore описывает мутации хранилища, доступные хендлерам.
// engine.Store неявно реализует этот интерфейс.
type StateStore interface {
	UpsertPlayer(p domain.Player) bool
	SetItem(item *domain.Collectible)
}

// Context передает хендлеру хранилище и отправителя команды.
type Context struct {
	Store  StateStore
	ConnID string // Соединение, от имени которого выполняется команда
}

// Broadcast - какой снимок разослать после команды
type Broadcast uint8

const (
	BroadcastNone Broadcast = iota
	BroadcastPlayers
	BroadcastItem
)

// Result - возвращает результат выполнения команды.
// Хендлер НЕ рассылает ничего сам, он говорит сервису, что разослать.
type Result struct {
	Broadcast Broadcast
	Activate  bool   // Перевести сессию в active
	Msg       string // Текст для лога (debug)
}

// HandlerFunc - это контракт для любой команды (UPDATE_PLAYER, UPDATE_ITEM).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)
