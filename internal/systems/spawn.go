package systems

import (
	"apple-chase/internal/domain"
	"apple-chase/pkg/utils"
	"math/rand"
)

// SpawnPlayer создает игрока в случайной точке поля с нулевым счетом.
// ID берется из времени создания, как в браузерном клиенте.
func SpawnPlayer(rng *rand.Rand, arena domain.Arena, movement domain.Movement) *domain.Player {
	b := arena.PlayerBounds()
	x := utils.RandomCoord(rng, b.MinX, b.MaxX, arena.MoveStep)
	y := utils.RandomCoord(rng, b.MinY, b.MaxY, arena.MoveStep)

	p := domain.NewPlayer(utils.TimestampID(), x, y, arena)
	p.Movement = movement
	return p
}

// SpawnItem создает новый предмет в случайной точке поля
func SpawnItem(rng *rand.Rand, arena domain.Arena) *domain.Collectible {
	b := arena.ItemBounds()
	x := utils.RandomCoord(rng, b.MinX, b.MaxX, arena.MoveStep)
	y := utils.RandomCoord(rng, b.MinY, b.MaxY, arena.MoveStep)
	return domain.NewCollectible(utils.TimestampID(), x, y, arena)
}

// StepToward выбирает направление, которое приближает левый верхний угол игрока
// к позиции, где предмет окажется внутри аватара. DirectionNone - уже на месте.
// В наборе из 4 направлений сначала выравнивается ось Y.
func StepToward(p *domain.Player, item *domain.Collectible) domain.Direction {
	if item == nil {
		return domain.DirectionNone
	}

	// Подходящая позиция игрока по оси: item - (avatar - size) <= pos <= item
	dx := axisStep(p.X, item.X-(p.AvatarSize-item.Size), item.X)
	dy := axisStep(p.Y, item.Y-(p.AvatarSize-item.Size), item.Y)
	if p.Movement.Set == domain.MoveSet4 && dx != 0 && dy != 0 {
		dx = 0
	}

	switch {
	case dx < 0 && dy < 0:
		return domain.DirectionUpLeft
	case dx > 0 && dy < 0:
		return domain.DirectionUpRight
	case dx < 0 && dy > 0:
		return domain.DirectionDownLeft
	case dx > 0 && dy > 0:
		return domain.DirectionDownRight
	case dy < 0:
		return domain.DirectionUp
	case dy > 0:
		return domain.DirectionDown
	case dx < 0:
		return domain.DirectionLeft
	case dx > 0:
		return domain.DirectionRight
	}
	return domain.DirectionNone
}

func axisStep(pos, lo, hi int) int {
	switch {
	case pos < lo:
		return 1
	case pos > hi:
		return -1
	}
	return 0
}
