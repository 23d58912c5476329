package domain

// Collectible - единственный общий предмет, за которым гоняются игроки.
// В любой момент существует не больше одного.
type Collectible struct {
	ID    int64 `json:"id"` // Время создания в мс
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Value int   `json:"value"`
	Size  int   `json:"itemSize"`
}

// NewCollectible создает предмет стандартной ценности в границах поля
func NewCollectible(id int64, x, y int, arena Arena) *Collectible {
	x, y = arena.ItemBounds().Clamp(x, y)
	return &Collectible{
		ID:    id,
		X:     x,
		Y:     y,
		Value: DefaultItemValue,
		Size:  arena.ItemSize,
	}
}

// Clone возвращает независимую копию (nil остается nil)
func (c *Collectible) Clone() *Collectible {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
