package engine

import (
	"errors"
	"fmt"
)

// SessionState - состояние соединения в протоколе синхронизации
type SessionState uint8

const (
	StateConnecting SessionState = iota
	StateIdentified
	StateActive
	StateDisconnected
)

var sessionStateNames = map[SessionState]string{
	StateConnecting:   "connecting",
	StateIdentified:   "identified",
	StateActive:       "active",
	StateDisconnected: "disconnected",
}

func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText нужен для JSON в debug-ручках
func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Разрешенные переходы. Отключиться можно из любого живого состояния.
var sessionTransitions = map[SessionState][]SessionState{
	StateConnecting: {StateIdentified, StateDisconnected},
	StateIdentified: {StateActive, StateDisconnected},
	StateActive:     {StateDisconnected},
}

// ErrInvalidTransition - переход не предусмотрен протоколом
var ErrInvalidTransition = errors.New("invalid session transition")

// Session - одно соединение с точки зрения протокола
type Session struct {
	ConnID string
	State  SessionState
}

// NewSession создает сессию в состоянии connecting
func NewSession(connID string) *Session {
	return &Session{ConnID: connID, State: StateConnecting}
}

// Transition переводит сессию в новое состояние
func (s *Session) Transition(to SessionState) error {
	for _, allowed := range sessionTransitions[s.State] {
		if allowed == to {
			s.State = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.State, to)
}

// Receives сообщает, получает ли сессия рассылки предмета
func (s *Session) Receives() bool {
	return s.State == StateIdentified || s.State == StateActive
}
