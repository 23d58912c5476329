package engine

// Config хранит параметры запуска движка
type Config struct {
	// InboxSize - емкость очереди событий. Транспорт блокируется, если она полна.
	InboxSize int
	// RecordJournal - писать ли примененные события в Journal
	RecordJournal bool
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		InboxSize:     256,
		RecordJournal: true,
	}
}
