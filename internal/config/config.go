package config

import (
	"apple-chase/pkg/logger"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load подгружает переменные из .env (или переданных файлов).
// Отсутствующий файл не ошибка; уже заданные переменные окружения не перетираются.
func Load(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
		logger.Log.WithField("file", f).Debug("Environment loaded")
	}
	return nil
}

// Env возвращает первую непустую переменную из keys или fallback
func Env(fallback string, keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return fallback
}

// EnvInt читает целое; мусор в переменной дает fallback с предупреждением
func EnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Log.WithField("key", key).Warnf("invalid int %q, using %d", v, fallback)
		return fallback
	}
	return n
}

// EnvDuration читает длительность в формате time.ParseDuration
func EnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Log.WithField("key", key).Warnf("invalid duration %q, using %s", v, fallback)
		return fallback
	}
	return d
}

// Server - параметры релея. Флаги командной строки перекрывают эти значения.
type Server struct {
	Port       string
	JournalDir string // пусто - журнал не сохраняется
	ReplayPath string
	InboxSize  int
}

func ServerFromEnv() Server {
	return Server{
		Port:       Env("3000", "APPLE_PORT", "PORT"),
		JournalDir: Env("", "APPLE_JOURNAL_DIR"),
		InboxSize:  EnvInt("APPLE_INBOX_SIZE", 256),
	}
}

// Bot - параметры нагрузочных агентов
type Bot struct {
	URL        string
	Bots       int
	Rate       time.Duration // период шага каждого бота
	Duration   time.Duration // 0 - до Ctrl+C
	MovePolicy string
	MoveSet    string
}

func BotFromEnv() Bot {
	return Bot{
		URL:        Env("ws://localhost:3000/ws", "APPLE_BOT_URL"),
		Bots:       EnvInt("APPLE_BOTS", 4),
		Rate:       EnvDuration("APPLE_BOT_RATE", 50*time.Millisecond),
		Duration:   EnvDuration("APPLE_BOT_DURATION", 0),
		MovePolicy: Env("clamp", "APPLE_MOVE_POLICY"),
		MoveSet:    Env("8", "APPLE_MOVE_SET"),
	}
}
