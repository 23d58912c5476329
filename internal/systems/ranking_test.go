package systems

import (
	"apple-chase/internal/domain"
	"testing"
)

func TestLeaderboard_MatchesRankOf(t *testing.T) {
	players := []domain.Player{
		{ID: 4, Score: 2}, {ID: 1, Score: 5}, {ID: 3, Score: 2}, {ID: 2, Score: 0},
	}

	board := Leaderboard(players)
	if len(board) != len(players) {
		t.Fatalf("Expected %d entries, got %d", len(players), len(board))
	}

	wantOrder := []int64{1, 3, 4, 2}
	for i, e := range board {
		if e.ID != wantOrder[i] {
			t.Errorf("position %d: got id %d, want %d", i, e.ID, wantOrder[i])
		}
		if e.Rank != i+1 {
			t.Errorf("position %d: got rank %d", i, e.Rank)
		}
	}

	// Место в таблице должно совпадать с тем, что клиент считает локально
	for _, p := range players {
		current, _ := domain.RankOf(p, players)
		for _, e := range board {
			if e.ID == p.ID && e.Rank != current {
				t.Errorf("player %d: leaderboard rank %d, RankOf %d", p.ID, e.Rank, current)
			}
		}
	}

	// Входной срез не тронут
	if players[0].ID != 4 {
		t.Error("Leaderboard mutated its input")
	}
}

func TestLeaderboard_Empty(t *testing.T) {
	if got := Leaderboard(nil); len(got) != 0 {
		t.Errorf("Expected empty board, got %v", got)
	}
}
