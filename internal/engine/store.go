package engine

import "apple-chase/internal/domain"

// Store - авторитетное состояние релея: упорядоченный список игроков
// и единственный активный предмет.
//
// Store не потокобезопасен: им владеет горутина GameService.Run,
// все мутации идут последовательно через ее inbox.
type Store struct {
	players []domain.Player
	item    *domain.Collectible
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{players: make([]domain.Player, 0, 16)}
}

// UpsertPlayer заменяет игрока с тем же ID на его месте в списке или добавляет в конец.
// Возвращает true, если игрок добавлен.
// Лимита на количество игроков нет.
func (s *Store) UpsertPlayer(p domain.Player) bool {
	for i := range s.players {
		if s.players[i].ID == p.ID {
			s.players[i] = p
			return false
		}
	}
	s.players = append(s.players, p)
	return true
}

// RemovePlayer удаляет всех игроков с данным ID соединения, сохраняя порядок остальных.
// Возвращает количество удаленных; для неизвестного соединения это 0, а не ошибка.
func (s *Store) RemovePlayer(connID string) int {
	kept := s.players[:0]
	removed := 0
	for _, p := range s.players {
		if p.ConnID == connID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	// Обнуляем хвост, чтобы не держать строки удаленных игроков
	for i := len(kept); i < len(s.players); i++ {
		s.players[i] = domain.Player{}
	}
	s.players = kept
	return removed
}

// SetItem безусловно заменяет предмет (последняя запись побеждает).
// Кто прислал предмет и было ли столкновение, не проверяется. nil убирает предмет.
func (s *Store) SetItem(item *domain.Collectible) {
	s.item = item.Clone()
}

// Players возвращает копию списка игроков для рассылки
func (s *Store) Players() []domain.Player {
	out := make([]domain.Player, len(s.players))
	copy(out, s.players)
	return out
}

// Item возвращает копию текущего предмета (nil, если его нет)
func (s *Store) Item() *domain.Collectible {
	return s.item.Clone()
}

// Len - количество игроков
func (s *Store) Len() int {
	return len(s.players)
}
