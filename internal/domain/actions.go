package domain

import "strings"

// ActionType - Внутренний числовой идентификатор события протокола
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionConnect
	ActionUpdatePlayer
	ActionUpdateItem
	ActionDisconnect
)

// Маппинг для конвертации JSON -> Domain.
// CONNECT и DISCONNECT клиент не присылает: их порождает транспорт.
var actionStringToCmd = map[string]ActionType{
	"UPDATE_PLAYER": ActionUpdatePlayer,
	"UPDATE_ITEM":   ActionUpdateItem,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionConnect:      "CONNECT",
	ActionUpdatePlayer: "UPDATE_PLAYER",
	ActionUpdateItem:   "UPDATE_ITEM",
	ActionDisconnect:   "DISCONNECT",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Known сообщает, что значение соответствует событию протокола
func (a ActionType) Known() bool {
	_, ok := actionCmdToString[a]
	return ok
}
