package systems

import (
	"apple-chase/internal/domain"
	"sort"
)

// LeaderboardEntry - строка таблицы лидеров
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	ID     int64  `json:"id"`
	Score  int    `json:"score"`
	ConnID string `json:"socketId"`
}

// Less задает полный порядок игроков, согласованный с domain.RankOf:
// больший счет выше, при равенстве выше меньший ID.
func Less(a, b domain.Player) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.ID < b.ID
}

// Leaderboard сортирует копию списка и проставляет места.
// Входной срез не меняется.
func Leaderboard(players []domain.Player) []LeaderboardEntry {
	sorted := make([]domain.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool { return Less(sorted[i], sorted[j]) })

	entries := make([]LeaderboardEntry, 0, len(sorted))
	for i, p := range sorted {
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			ID:     p.ID,
			Score:  p.Score,
			ConnID: p.ConnID,
		})
	}
	return entries
}
