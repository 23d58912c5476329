package actions

import (
	"apple-chase/internal/engine/handlers"
	"apple-chase/pkg/api"
	"fmt"
)

// HandleUpdateItem - клиент считает, что подобрал предмет, и прислал новый.
// Последняя запись побеждает: владение и столкновение не проверяются.
func HandleUpdateItem(ctx handlers.Context, v api.CollectibleView) (handlers.Result, error) {
	item := v.ToDomain()
	ctx.Store.SetItem(item)

	return handlers.Result{
		Broadcast: handlers.BroadcastItem,
		Msg:       fmt.Sprintf("item %d placed at (%d,%d)", item.ID, item.X, item.Y),
	}, nil
}
