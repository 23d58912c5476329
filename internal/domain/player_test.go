package domain

import (
	"math"
	"math/rand"
	"testing"
)

var allDirections = []Direction{
	DirectionNone, DirectionUp, DirectionDown, DirectionLeft, DirectionRight,
	DirectionUpLeft, DirectionUpRight, DirectionDownLeft, DirectionDownRight,
}

func testBounds() Bounds {
	return Bounds{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000}
}

func TestMove_AdjustsPosition(t *testing.T) {
	p := &Player{ID: 1, X: 100, Y: 100, AvatarSize: 10, Bounds: testBounds()}

	p.Move(DirectionRight, 5)
	if p.X != 105 || p.Y != 100 {
		t.Errorf("Expected pos (105,100), got (%d,%d)", p.X, p.Y)
	}

	p.Move(DirectionLeft, 10)
	if p.X != 95 || p.Y != 100 {
		t.Errorf("Expected pos (95,100), got (%d,%d)", p.X, p.Y)
	}

	p.Move(DirectionDownRight, 3)
	if p.X != 98 || p.Y != 103 {
		t.Errorf("Expected pos (98,103), got (%d,%d)", p.X, p.Y)
	}
}

func TestMove_FourWaySetIgnoresDiagonals(t *testing.T) {
	p := &Player{X: 50, Y: 50, Bounds: testBounds(), Movement: Movement{Set: MoveSet4}}

	p.Move(DirectionUpLeft, 5)
	if p.X != 50 || p.Y != 50 {
		t.Errorf("Diagonal should be a no-op in 4-way set, got (%d,%d)", p.X, p.Y)
	}

	p.Move(DirectionUp, 5)
	if p.Y != 45 {
		t.Errorf("Expected y=45, got %d", p.Y)
	}
}

func TestMove_ClampPolicy(t *testing.T) {
	p := &Player{X: 3, Y: 998, Bounds: testBounds()}

	p.Move(DirectionDownLeft, 10)
	if p.X != 0 || p.Y != 1000 {
		t.Errorf("Expected clamp to (0,1000), got (%d,%d)", p.X, p.Y)
	}
}

func TestMove_RejectPolicy(t *testing.T) {
	p := &Player{X: 3, Y: 500, Bounds: testBounds(), Movement: Movement{Policy: MoveReject}}

	// По X шаг выходит за границу и отбрасывается, по Y - проходит
	p.Move(DirectionDownLeft, 10)
	if p.X != 3 || p.Y != 510 {
		t.Errorf("Expected (3,510), got (%d,%d)", p.X, p.Y)
	}
}

func TestMove_NoOpIsIdempotent(t *testing.T) {
	p := &Player{X: 42, Y: 24, Bounds: testBounds()}
	for i := 0; i < 10; i++ {
		p.Move(DirectionNone, 7)
		p.Move(DirectionUp, 0)
		p.Move(DirectionUp, -5)
	}
	if p.X != 42 || p.Y != 24 {
		t.Errorf("No-op moves changed position to (%d,%d)", p.X, p.Y)
	}
}

func TestMove_NeverLeavesBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Bounds{MinX: 10, MinY: 60, MaxX: 590, MaxY: 430}
	speeds := []int{-3, 0, 1, 5, 40, 1000, math.MaxInt32, math.MaxInt}

	for _, policy := range []MovePolicy{MoveClamp, MoveReject} {
		for _, set := range []MoveSet{MoveSet4, MoveSet8} {
			// Стартуем в том числе далеко за границами
			p := &Player{
				X:        rng.Intn(4000) - 2000,
				Y:        rng.Intn(4000) - 2000,
				Bounds:   b,
				Movement: Movement{Set: set, Policy: policy},
			}
			for i := 0; i < 2000; i++ {
				dir := allDirections[rng.Intn(len(allDirections))]
				speed := speeds[rng.Intn(len(speeds))]
				p.Move(dir, speed)
				if !b.Contains(p.X, p.Y) {
					t.Fatalf("policy=%s set=%s: (%d,%d) out of bounds after %s/%d",
						policy, set, p.X, p.Y, dir, speed)
				}
			}
		}
	}
}

func TestCollide(t *testing.T) {
	p := &Player{X: 100, Y: 100, AvatarSize: 10}

	tests := []struct {
		name string
		item *Collectible
		want bool
	}{
		{"same corner", &Collectible{X: 100, Y: 100, Size: 5}, true},
		{"fully inside", &Collectible{X: 103, Y: 104, Size: 5}, true},
		{"touching far edges", &Collectible{X: 105, Y: 105, Size: 5}, true},
		{"exceeds y bound", &Collectible{X: 105, Y: 108, Size: 5}, false},
		{"exceeds x bound", &Collectible{X: 108, Y: 100, Size: 5}, false},
		{"left of player", &Collectible{X: 99, Y: 100, Size: 5}, false},
		{"above player", &Collectible{X: 100, Y: 99, Size: 5}, false},
		// Пересекается, но не вложен: containment, а не overlap
		{"overlapping only", &Collectible{X: 95, Y: 95, Size: 10}, false},
		{"item bigger than avatar", &Collectible{X: 100, Y: 100, Size: 11}, false},
		{"nil item", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Collide(tt.item); got != tt.want {
				t.Errorf("Collide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollect_ScoreNeverDecreases(t *testing.T) {
	p := &Player{X: 100, Y: 100, AvatarSize: 10}

	if !p.Collect(&Collectible{X: 100, Y: 100, Size: 5, Value: 1}) {
		t.Fatal("Expected item to be collected")
	}
	if p.Score != 1 {
		t.Errorf("Expected score 1, got %d", p.Score)
	}

	p.Collect(&Collectible{X: 100, Y: 100, Size: 5, Value: -4})
	if p.Score != 1 {
		t.Errorf("Negative value must not lower score, got %d", p.Score)
	}

	if p.Collect(&Collectible{X: 500, Y: 500, Size: 5, Value: 1}) {
		t.Error("Expected miss for far item")
	}
	if p.Score != 1 {
		t.Errorf("Miss changed score to %d", p.Score)
	}
}

func TestNewPlayer_ClampsSpawn(t *testing.T) {
	arena := DefaultArena()
	p := NewPlayer(1, -50, 10000, arena)

	b := arena.PlayerBounds()
	if p.X != b.MinX || p.Y != b.MaxY {
		t.Errorf("Expected spawn clamped to (%d,%d), got (%d,%d)", b.MinX, b.MaxY, p.X, p.Y)
	}
	if p.Score != 0 {
		t.Errorf("New player must start with zero score, got %d", p.Score)
	}
}
