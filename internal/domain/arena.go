package domain

// Bounds - допустимый прямоугольник для левого верхнего угла сущности.
// Границы включительные: [MinX, MaxX] x [MinY, MaxY].
type Bounds struct {
	MinX int `json:"minX"`
	MinY int `json:"minY"`
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}

// Contains проверяет, лежит ли точка внутри границ
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Clamp возвращает ближайшую к (x, y) точку внутри границ.
// Если границы вырождены (Min > Max), побеждает Min.
func (b Bounds) Clamp(x, y int) (int, int) {
	return clampAxis(x, b.MinX, b.MaxX), clampAxis(y, b.MinY, b.MaxY)
}

func clampAxis(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Arena описывает игровое поле так, как его рисует клиент:
// рамка, шапка с заголовком и рейтингом, и зона игры под ней.
type Arena struct {
	Width        int
	Height       int
	HeaderHeight int
	Border       int
	AvatarSize   int
	ItemSize     int
	MoveStep     int
}

// DefaultArena возвращает поле с размерами браузерного клиента
func DefaultArena() Arena {
	return Arena{
		Width:        DefaultCanvasWidth,
		Height:       DefaultCanvasHeight,
		HeaderHeight: DefaultHeaderHeight,
		Border:       DefaultBorder,
		AvatarSize:   DefaultAvatarSize,
		ItemSize:     DefaultItemSize,
		MoveStep:     DefaultMoveStep,
	}
}

// PlayBounds - зона игры целиком (без учета размера сущности)
func (a Arena) PlayBounds() Bounds {
	return Bounds{
		MinX: a.Border,
		MinY: a.HeaderHeight + 2*a.Border,
		MaxX: a.Width - a.Border,
		MaxY: a.Height - a.Border,
	}
}

// PlayerBounds - где может стоять левый верхний угол аватара
func (a Arena) PlayerBounds() Bounds {
	return a.boundsFor(a.AvatarSize)
}

// ItemBounds - где может появиться левый верхний угол предмета
func (a Arena) ItemBounds() Bounds {
	return a.boundsFor(a.ItemSize)
}

func (a Arena) boundsFor(size int) Bounds {
	b := a.PlayBounds()
	b.MaxX -= size
	b.MaxY -= size
	return b
}
