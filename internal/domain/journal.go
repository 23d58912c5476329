package domain

import (
	"encoding/json"
	"time"
)

// JournalRecord - одно примененное к хранилищу событие
type JournalRecord struct {
	Seq     int             `json:"seq"`
	ConnID  string          `json:"connId"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Journal - лента событий релея за время работы процесса.
// Нужна только для отладки: по ней можно воспроизвести состояние оффлайн.
type Journal struct {
	StartedAt int64           `json:"startedAt"` // Unix seconds
	Records   []JournalRecord `json:"records"`
}

// NewJournal создает пустую ленту
func NewJournal() *Journal {
	return &Journal{
		StartedAt: time.Now().Unix(),
		Records:   make([]JournalRecord, 0, 64),
	}
}

// Append дописывает событие и присваивает ему порядковый номер
func (j *Journal) Append(cmd InternalCommand) {
	j.Records = append(j.Records, JournalRecord{
		Seq:     len(j.Records) + 1,
		ConnID:  cmd.ConnID,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}

// Len - количество записей
func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	return len(j.Records)
}
