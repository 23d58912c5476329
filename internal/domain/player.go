package domain

// maxStep ограничивает скорость, чтобы сдвиг не переполнил int
const maxStep = 1 << 24

// Player - аватар игрока. Создается клиентом в начале сессии,
// сервер хранит последнюю присланную копию.
type Player struct {
	ID         int64  `json:"id"`       // Стабильный ID (время создания в мс)
	ConnID     string `json:"socketId"` // ID соединения, выдается сервером
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Score      int    `json:"score"`
	AvatarSize int    `json:"avatarSize"`
	Bounds     Bounds `json:"bounds"`

	// Movement не передается по сети: это локальная настройка клиента
	Movement Movement `json:"-"`
}

// NewPlayer создает игрока с нулевым счетом в границах поля
func NewPlayer(id int64, x, y int, arena Arena) *Player {
	p := &Player{
		ID:         id,
		X:          x,
		Y:          y,
		AvatarSize: arena.AvatarSize,
		Bounds:     arena.PlayerBounds(),
	}
	p.X, p.Y = p.Bounds.Clamp(p.X, p.Y)
	return p
}

// Coords возвращает текущую позицию
func (p *Player) Coords() (int, int) {
	return p.X, p.Y
}

// Move сдвигает игрока на speed пикселей по направлению dir.
// После любого вызова позиция гарантированно внутри Bounds.
func (p *Player) Move(dir Direction, speed int) {
	if speed > maxStep {
		speed = maxStep
	}

	if speed > 0 && p.Movement.Set.Allows(dir) {
		dx, dy := dir.Delta()
		nx := p.X + dx*speed
		ny := p.Y + dy*speed

		switch p.Movement.Policy {
		case MoveReject:
			// Как в 4-х направленном клиенте: ось двигается только если остается в границах
			if dx != 0 && nx >= p.Bounds.MinX && nx <= p.Bounds.MaxX {
				p.X = nx
			}
			if dy != 0 && ny >= p.Bounds.MinY && ny <= p.Bounds.MaxY {
				p.Y = ny
			}
		default:
			p.X, p.Y = nx, ny
		}
	}

	p.X, p.Y = p.Bounds.Clamp(p.X, p.Y)
}

// Collide - проверка "вложенности": предмет должен целиком лежать внутри аватара.
// Это не обычное пересечение AABB.
func (p *Player) Collide(item *Collectible) bool {
	if item == nil {
		return false
	}
	return item.X >= p.X &&
		item.Y >= p.Y &&
		item.X+item.Size <= p.X+p.AvatarSize &&
		item.Y+item.Size <= p.Y+p.AvatarSize
}

// Collect засчитывает предмет, если игрок его накрыл. Счет никогда не уменьшается.
func (p *Player) Collect(item *Collectible) bool {
	if !p.Collide(item) {
		return false
	}
	if item.Value > 0 {
		p.Score += item.Value
	}
	return true
}

// Rank возвращает строку рейтинга для шапки: "Rank: 1 / 3"
func (p *Player) Rank(all []Player) string {
	return FormatRank(RankOf(*p, all))
}
