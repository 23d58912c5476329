package domain

import "strings"

// Direction - одно из восьми направлений по компасу
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionUpLeft
	DirectionUpRight
	DirectionDownLeft
	DirectionDownRight
)

// Клиент склеивает направление из частей: "up" + "left" = "upleft"
var directionFromString = map[string]Direction{
	"up":        DirectionUp,
	"down":      DirectionDown,
	"left":      DirectionLeft,
	"right":     DirectionRight,
	"upleft":    DirectionUpLeft,
	"upright":   DirectionUpRight,
	"downleft":  DirectionDownLeft,
	"downright": DirectionDownRight,
}

var directionToString = map[Direction]string{
	DirectionUp:        "up",
	DirectionDown:      "down",
	DirectionLeft:      "left",
	DirectionRight:     "right",
	DirectionUpLeft:    "upleft",
	DirectionUpRight:   "upright",
	DirectionDownLeft:  "downleft",
	DirectionDownRight: "downright",
}

// ParseDirection конвертирует строку клиента в Direction.
// Неизвестная строка дает DirectionNone (ход на месте).
func ParseDirection(s string) Direction {
	if d, ok := directionFromString[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d
	}
	return DirectionNone
}

func (d Direction) String() string {
	if s, ok := directionToString[d]; ok {
		return s
	}
	return "none"
}

// Delta возвращает единичный вектор направления (ось Y смотрит вниз, как на canvas)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	case DirectionUpLeft:
		return -1, -1
	case DirectionUpRight:
		return 1, -1
	case DirectionDownLeft:
		return -1, 1
	case DirectionDownRight:
		return 1, 1
	}
	return 0, 0
}

// IsDiagonal true для четырех составных направлений
func (d Direction) IsDiagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

// MoveSet - набор разрешенных направлений
type MoveSet uint8

const (
	// MoveSet8 - все восемь направлений (текущий клиент)
	MoveSet8 MoveSet = iota
	// MoveSet4 - только оси; диагонали считаются ходом на месте
	MoveSet4
)

// Allows сообщает, разрешено ли направление в этом наборе
func (s MoveSet) Allows(d Direction) bool {
	if d == DirectionNone {
		return false
	}
	if s == MoveSet4 {
		return !d.IsDiagonal()
	}
	return true
}

// ParseMoveSet понимает "4" и "8"; все остальное - MoveSet8
func ParseMoveSet(s string) MoveSet {
	if strings.TrimSpace(s) == "4" {
		return MoveSet4
	}
	return MoveSet8
}

func (s MoveSet) String() string {
	if s == MoveSet4 {
		return "4"
	}
	return "8"
}

// MovePolicy - что делать с шагом, который выводит за границы
type MovePolicy uint8

const (
	// MoveClamp - сдвинуть и прижать к границе
	MoveClamp MovePolicy = iota
	// MoveReject - шаг по оси, выходящий за границу, отбрасывается целиком
	MoveReject
)

// ParseMovePolicy понимает "clamp" и "reject"; по умолчанию MoveClamp
func ParseMovePolicy(s string) MovePolicy {
	if strings.EqualFold(strings.TrimSpace(s), "reject") {
		return MoveReject
	}
	return MoveClamp
}

func (p MovePolicy) String() string {
	if p == MoveReject {
		return "reject"
	}
	return "clamp"
}

// Movement - параметры модели движения, общие для всех игроков
type Movement struct {
	Set    MoveSet
	Policy MovePolicy
}
