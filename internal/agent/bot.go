package agent

import (
	"apple-chase/internal/domain"
	"apple-chase/internal/systems"
	"apple-chase/pkg/api"
	"apple-chase/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Config - параметры одного бота
type Config struct {
	URL      string
	Arena    domain.Arena
	Movement domain.Movement
	Rate     time.Duration // период шага
	Speed    int           // пикселей за шаг, 0 - Arena.MoveStep
	Seed     int64
}

// conn - то, что бот использует от WebSocket. В тестах подменяется.
type conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
}

// Stats - что бот знает о себе
type Stats struct {
	ConnID    string
	PlayerID  int64
	Score     int
	Rank      string
	Collected int
	Players   int
}

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Это ВНЕШНИЙ клиент: он подключается к релею через WebSocket так же,
// как браузер, и ведет всю игровую логику у себя.
//
// Жизненный цикл:
//  1. IDENTITY -> создает своего игрока в случайной точке и шлет UPDATE_PLAYER.
//  2. ITEM null -> создает предмет сам и шлет UPDATE_ITEM; иначе запоминает предмет.
//  3. PLAYERS -> заменяет свой список целиком и пересчитывает место.
//  4. Каждый тик шагает к предмету; накрыл его - шлет новый предмет, затем себя.
type Bot struct {
	Name string

	cfg Config
	rng *rand.Rand
	log *logrus.Entry

	wmu  sync.Mutex // gorilla допускает только одного писателя
	conn conn

	mu        sync.Mutex
	connID    string
	me        *domain.Player
	item      *domain.Collectible
	players   []domain.Player
	rank      string
	collected int
}

func NewBot(name string, cfg Config) *Bot {
	if cfg.Rate <= 0 {
		cfg.Rate = 50 * time.Millisecond
	}
	if cfg.Speed <= 0 {
		cfg.Speed = cfg.Arena.MoveStep
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Bot{
		Name: name,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
		log:  logger.Log.WithField("bot", name),
	}
}

// Run подключается и играет до отмены ctx или обрыва соединения
func (b *Bot) Run(ctx context.Context) error {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, b.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", b.cfg.URL, err)
	}
	defer ws.Close()
	b.conn = ws
	b.log.Info("[BOT] Connected")

	readErr := make(chan error, 1)
	go func() { readErr <- b.readLoop() }()

	ticker := time.NewTicker(b.cfg.Rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			if err := ws.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(time.Second)); err != nil {
				b.log.WithError(err).Debug("close frame failed")
			}
			b.log.WithField("score", b.Stats().Score).Info("[BOT] Shut down")
			return nil
		case err := <-readErr:
			return err
		case <-ticker.C:
			if err := b.step(); err != nil {
				return err
			}
		}
	}
}

func (b *Bot) readLoop() error {
	for {
		var msg api.ServerMessage
		if err := b.conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		if err := b.handle(msg); err != nil {
			b.log.WithError(err).WithField("type", msg.Type).Warn("[BOT] Bad server message")
		}
	}
}

// handle применяет сообщение сервера к локальному состоянию
func (b *Bot) handle(msg api.ServerMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch msg.Type {
	case api.MsgIdentity:
		id, err := api.DecodePayload[api.IdentityPayload](msg.Payload)
		if err != nil {
			return err
		}
		b.connID = id.ConnID
		b.me = systems.SpawnPlayer(b.rng, b.cfg.Arena, b.cfg.Movement)
		b.me.ConnID = id.ConnID
		b.log.WithField("conn_id", id.ConnID).Info("[BOT] Identified")
		return b.send(api.ActionUpdatePlayer, api.NewPlayerView(*b.me))

	case api.MsgItem:
		view, err := api.DecodePayload[api.CollectibleView](msg.Payload)
		if errors.Is(err, api.ErrEmptyPayload) {
			// Предмета нет ни у кого: создаем первый
			b.item = systems.SpawnItem(b.rng, b.cfg.Arena)
			return b.send(api.ActionUpdateItem, api.NewCollectibleView(b.item))
		}
		if err != nil {
			return err
		}
		b.item = view.ToDomain()
		return nil

	case api.MsgPlayers:
		var views []api.PlayerView
		if err := json.Unmarshal(msg.Payload, &views); err != nil {
			return err
		}
		b.players = make([]domain.Player, 0, len(views))
		for _, v := range views {
			b.players = append(b.players, v.ToDomain())
		}
		if b.me != nil {
			b.rank = b.me.Rank(b.players)
		}
		return nil
	}

	return fmt.Errorf("unknown message type %q", msg.Type)
}

// step - один тик: шаг к предмету, сбор, отправка себя
func (b *Bot) step() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.me == nil {
		return nil
	}

	if b.item != nil {
		b.me.Move(systems.StepToward(b.me, b.item), b.cfg.Speed)

		if b.me.Collect(b.item) {
			b.collected++
			b.log.WithField("score", b.me.Score).Debug("[BOT] Item collected")
			b.item = systems.SpawnItem(b.rng, b.cfg.Arena)
			if err := b.send(api.ActionUpdateItem, api.NewCollectibleView(b.item)); err != nil {
				return err
			}
		}
	}

	return b.send(api.ActionUpdatePlayer, api.NewPlayerView(*b.me))
}

func (b *Bot) send(action string, payload any) error {
	cmd, err := api.NewClientCommand(action, payload)
	if err != nil {
		return err
	}

	b.wmu.Lock()
	defer b.wmu.Unlock()
	if b.conn == nil {
		return errors.New("bot is not connected")
	}
	return b.conn.WriteJSON(cmd)
}

// Stats возвращает снимок состояния бота
func (b *Bot) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Stats{
		ConnID:    b.connID,
		Rank:      b.rank,
		Collected: b.collected,
		Players:   len(b.players),
	}
	if b.me != nil {
		s.PlayerID = b.me.ID
		s.Score = b.me.Score
	}
	return s
}
