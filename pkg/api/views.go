package api

import "apple-chase/internal/domain"

// PlayerView - игрок на проводе. Имена полей совпадают с объектом Player браузерного клиента.
type PlayerView struct {
	ID         int64  `json:"id"`
	SocketID   string `json:"socketId"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Score      int    `json:"score"`
	AvatarSize int    `json:"avatarSize"`
	PlayerMinX int    `json:"playerMinX"`
	PlayerMinY int    `json:"playerMinY"`
	PlayerMaxX int    `json:"playerMaxX"`
	PlayerMaxY int    `json:"playerMaxY"`
}

// CollectibleView - предмет на проводе
type CollectibleView struct {
	ID       int64 `json:"id"`
	X        int   `json:"x"`
	Y        int   `json:"y"`
	Value    int   `json:"value"`
	ItemSize int   `json:"itemSize"`
}

// NewPlayerView конвертирует доменного игрока в DTO
func NewPlayerView(p domain.Player) PlayerView {
	return PlayerView{
		ID:         p.ID,
		SocketID:   p.ConnID,
		X:          p.X,
		Y:          p.Y,
		Score:      p.Score,
		AvatarSize: p.AvatarSize,
		PlayerMinX: p.Bounds.MinX,
		PlayerMinY: p.Bounds.MinY,
		PlayerMaxX: p.Bounds.MaxX,
		PlayerMaxY: p.Bounds.MaxY,
	}
}

// NewPlayerViews собирает список для MsgPlayers. Всегда не-nil, чтобы на проводе был [].
func NewPlayerViews(players []domain.Player) []PlayerView {
	views := make([]PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, NewPlayerView(p))
	}
	return views
}

// ToDomain конвертирует DTO в доменного игрока.
// Отсутствующие размеры и границы получают значения по умолчанию клиента.
func (v PlayerView) ToDomain() domain.Player {
	p := domain.Player{
		ID:         v.ID,
		ConnID:     v.SocketID,
		X:          v.X,
		Y:          v.Y,
		Score:      v.Score,
		AvatarSize: v.AvatarSize,
		Bounds: domain.Bounds{
			MinX: v.PlayerMinX,
			MinY: v.PlayerMinY,
			MaxX: v.PlayerMaxX,
			MaxY: v.PlayerMaxY,
		},
	}
	if p.AvatarSize == 0 {
		p.AvatarSize = domain.FallbackAvatarSize
	}
	if p.Bounds == (domain.Bounds{}) {
		p.Bounds = domain.Bounds{MaxX: domain.FallbackMaxCoord, MaxY: domain.FallbackMaxCoord}
	}
	return p
}

// NewCollectibleView конвертирует предмет в DTO. nil остается nil (на проводе null).
func NewCollectibleView(c *domain.Collectible) *CollectibleView {
	if c == nil {
		return nil
	}
	return &CollectibleView{
		ID:       c.ID,
		X:        c.X,
		Y:        c.Y,
		Value:    c.Value,
		ItemSize: c.Size,
	}
}

// ToDomain конвертирует DTO в доменный предмет
func (v CollectibleView) ToDomain() *domain.Collectible {
	size := v.ItemSize
	if size == 0 {
		size = domain.FallbackItemSize
	}
	return &domain.Collectible{
		ID:    v.ID,
		X:     v.X,
		Y:     v.Y,
		Value: v.Value,
		Size:  size,
	}
}
