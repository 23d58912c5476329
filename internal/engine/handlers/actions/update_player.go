package actions

import (
	"apple-chase/internal/engine/handlers"
	"apple-chase/pkg/api"
	"fmt"
)

// HandleUpdatePlayer - клиент прислал полную запись своего игрока.
// Запись вставляется или заменяется целиком, затем всем активным уходит список игроков.
func HandleUpdatePlayer(ctx handlers.Context, v api.PlayerView) (handlers.Result, error) {
	p := v.ToDomain()

	// ID соединения ставит сервер: иначе при отключении игрока не найти
	p.ConnID = ctx.ConnID

	inserted := ctx.Store.UpsertPlayer(p)

	msg := fmt.Sprintf("player %d updated at (%d,%d) score=%d", p.ID, p.X, p.Y, p.Score)
	if inserted {
		msg = fmt.Sprintf("player %d joined at (%d,%d)", p.ID, p.X, p.Y)
	}

	return handlers.Result{
		Broadcast: handlers.BroadcastPlayers,
		Activate:  true,
		Msg:       msg,
	}, nil
}
