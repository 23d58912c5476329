package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log = logrus.New()

// Options - настройки логгера. Пустые поля берутся из окружения.
type Options struct {
	Level  string    // debug, info, warn, error
	Format string    // json | text
	Output io.Writer // по умолчанию os.Stdout
}

// Init инициализирует глобальный логгер из LOG_LEVEL и LOG_FORMAT.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	Configure(Options{})
}

// Configure применяет явные настройки (флаги командной строки имеют приоритет над env).
func Configure(opts Options) {
	// 1. Уровень логирования. По умолчанию - "info".
	if opts.Level == "" {
		opts.Level = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	if opts.Format == "" {
		opts.Format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Куда писать логи.
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	Log.SetOutput(opts.Output)
}

// ForConn возвращает запись лога с привязкой к соединению
func ForConn(connID string) *logrus.Entry {
	return Log.WithField("conn_id", connID)
}
