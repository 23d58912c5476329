package domain

import "fmt"

// RankOf считает место игрока self среди all (1 - лучший).
// Ниже self стоят игроки с меньшим счетом, а при равном счете - с большим ID.
// Сам self (по ID) не учитывается. total = len(all).
func RankOf(self Player, all []Player) (current, total int) {
	below := 0
	for _, other := range all {
		if other.ID == self.ID {
			continue
		}
		if other.Score < self.Score || (other.Score == self.Score && other.ID > self.ID) {
			below++
		}
	}
	total = len(all)
	return total - below, total
}

// FormatRank форматирует рейтинг так, как его рисует клиент
func FormatRank(current, total int) string {
	return fmt.Sprintf("Rank: %d / %d", current, total)
}
