package domain

// Геометрия игрового поля по умолчанию (canvas 640x480 в браузерном клиенте).
const (
	DefaultCanvasWidth  = 640
	DefaultCanvasHeight = 480
	DefaultHeaderHeight = 40
	DefaultBorder       = 10

	DefaultAvatarSize = 40
	DefaultItemSize   = 20

	// DefaultMoveStep - шаг одного перемещения в пикселях
	DefaultMoveStep = 1
	// DefaultItemValue - сколько очков дает один подобранный предмет
	DefaultItemValue = 1
)

// Размеры по умолчанию, если клиент их не прислал (Player.mjs / Collectible.mjs)
const (
	FallbackAvatarSize = 10
	FallbackItemSize   = 5
	FallbackMaxCoord   = 1000
)
